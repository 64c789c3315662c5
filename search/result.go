package search

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/slices"

	"lampmc/controller"
	"lampmc/monitor"
	"lampmc/report"
	"lampmc/tree"
)

// Counters collected while searching
type Stats struct {
	// Number of nodes whose successors were computed
	Expanded int
	// Number of simulated ticks
	Generated int
	// Number of successors discarded because their state was already reached by a trace that is not longer
	Pruned int
	// Number of distinct controller states reached, including the reset state
	States int
	// Length of the longest simulated trace
	Depth int
}

// Result is the outcome of a bounded search.
type Result struct {
	// Identifies the check that produced the result. Empty unless set by the caller.
	RunID   string
	Variant controller.Variant
	Horizon int

	// True if a counterexample was found. If false no trace of length at most Horizon breaks a property.
	Found bool
	// The shortest counterexample. The violation happens at its last tick. nil if Found is false.
	Trace     []controller.Input
	Violation *monitor.Violation

	Stats   Stats
	Elapsed time.Duration

	root *tree.Tree[Step]
}

// Generate a response
// Returns two parameters, result, and description.
// Result is true if all properties hold up to the horizon, false otherwise.
// Description is the formatted report of the result.
func (r *Result) Response() (bool, string) {
	return !r.Found, report.String(r.Trace, r.Violation, r.Horizon)
}

// Export the counterexample so that it can be replayed.
// Returns an empty slice if no counterexample was found.
func (r *Result) Export() []controller.Input {
	if r.Trace == nil {
		return []controller.Input{}
	}
	return slices.Clone(r.Trace)
}

// Write the Newick representation of the explored search tree to the writer.
//
// Only successors that were explored, and the counterexample, are part of the tree.
func (r *Result) WriteTree(w io.Writer) error {
	if r.root == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, r.root.Newick())
	return err
}

// Returns the number of nodes in the explored search tree, including the root
func (r *Result) TreeSize() int {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}
