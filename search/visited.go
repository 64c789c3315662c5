package search

import (
	"sync"

	"lampmc/controller"
)

// Visited records the shortest trace length at which each controller state has been reached.
//
// Is safe to use from multiple goroutines.
type Visited struct {
	sync.RWMutex
	depth map[controller.Fingerprint]int
}

func NewVisited() *Visited {
	return &Visited{
		depth: make(map[controller.Fingerprint]int),
	}
}

// Visit records that the state was reached with a trace of the provided length.
//
// Returns false if the state already was reached by a trace that is not longer. The state should then not be explored again.
// Otherwise the new length is recorded and true is returned.
func (v *Visited) Visit(fp controller.Fingerprint, depth int) bool {
	v.Lock()
	defer v.Unlock()
	if d, ok := v.depth[fp]; ok && d <= depth {
		return false
	}
	v.depth[fp] = depth
	return true
}

// Returns the shortest recorded trace length for the state and whether the state has been reached
func (v *Visited) Depth(fp controller.Fingerprint) (int, bool) {
	v.RLock()
	defer v.RUnlock()
	d, ok := v.depth[fp]
	return d, ok
}

// Returns the number of distinct states reached
func (v *Visited) Len() int {
	v.RLock()
	defer v.RUnlock()
	return len(v.depth)
}
