package search

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errSkippedNode = errors.New("search: node before the first violation was not expanded")

// Explore one breadth first level at a time.
//
// The nodes of a level are expanded concurrently, then merged in queue order on this goroutine.
// The merge is identical to the sequential search, so both report the same counterexample.
func (s *Search) parallel(ctx context.Context, ex *exploration, first node) error {
	level := []node{first}
	for depth := 0; len(level) > 0 && depth < s.horizon; depth++ {
		s.logger.Debug("Expanding level", zap.Int("depth", depth), zap.Int("frontier", len(level)))

		outcomes, err := s.expandLevel(ctx, level)
		if err != nil {
			return err
		}

		next := make([]node, 0, 2*len(level))
		for i, n := range level {
			if outcomes[i] == nil {
				return errSkippedNode
			}
			children, done := ex.merge(n, outcomes[i])
			if done {
				return nil
			}
			next = append(next, children...)
		}
		level = next
	}
	return nil
}

// Expand all nodes of a level using the worker pool.
//
// Nodes ordered after the earliest node known to produce a violation are skipped and left nil.
func (s *Search) expandLevel(ctx context.Context, level []node) ([][]outcome, error) {
	outcomes := make([][]outcome, len(level))

	var earliest atomic.Int64
	earliest.Store(int64(len(level)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range level {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if int64(i) > earliest.Load() {
				return nil
			}
			out := s.expand(level[i])
			outcomes[i] = out
			if out[len(out)-1].violation != nil {
				lowerTo(&earliest, int64(i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func lowerTo(v *atomic.Int64, i int64) {
	for {
		cur := v.Load()
		if i >= cur || v.CompareAndSwap(cur, i) {
			return
		}
	}
}
