package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lampmc/controller"
	"lampmc/monitor"
	"lampmc/simulator"
	"lampmc/tree"
)

// The default bound on the trace length
const DefaultHorizon = controller.InitialTimerValue + 5

var (
	ErrInvalidHorizon = errors.New("search: horizon must be at least 1")
	ErrInvalidWorkers = errors.New("search: workers must be at least 1")
)

// Step is the payload of a node in the search tree: the input consumed at a tick
type Step struct {
	Tick  int
	Input controller.Input
}

func (s Step) String() string {
	if s.Tick < 0 {
		return "reset"
	}
	return fmt.Sprintf("%v:%v", s.Tick, s.Input)
}

// Search explores every input sequence up to the horizon in breadth first order.
//
// Since all traces of length k are explored before any trace of length k+1, the first counterexample found is a shortest one.
// Among counterexamples of the same length the one first in input enumeration order is reported.
type Search struct {
	sim     simulator.Simulator
	horizon int
	workers int
	logger  *zap.Logger
}

// Create a new search
//
// horizon is the maximum length of the explored traces.
//
// workers is the number of goroutines expanding a breadth first level. With one worker the search runs on the calling goroutine.
func New(sim simulator.Simulator, horizon int, workers int, logger *zap.Logger) (*Search, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidHorizon, horizon)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWorkers, workers)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Search{
		sim:     sim,
		horizon: horizon,
		workers: workers,
		logger:  logger,
	}, nil
}

// A node in the frontier
type node struct {
	t     *tree.Tree[Step]
	state controller.State
	// The raw press of the last tick. false for the reset state.
	lastPress bool
}

// The result of simulating one input from a node
type outcome struct {
	input     controller.Input
	state     controller.State
	violation *monitor.Violation
}

// The bookkeeping of one search. Only modified from a single goroutine.
type exploration struct {
	root      *tree.Tree[Step]
	visited   *Visited
	stats     Stats
	found     *tree.Tree[Step]
	violation *monitor.Violation
}

func (s *Search) newExploration() (*exploration, node) {
	root := tree.New(Step{Tick: -1})
	reset := s.sim.Reset()
	visited := NewVisited()
	visited.Visit(reset.Fingerprint(), 0)
	ex := &exploration{
		root:    root,
		visited: visited,
	}
	return ex, node{t: root, state: reset}
}

// Run the search. Returns an error only if the context is cancelled before the search completes.
func (s *Search) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	ex, first := s.newExploration()

	var err error
	if s.workers > 1 {
		err = s.parallel(ctx, ex, first)
	} else {
		err = s.sequential(ctx, ex, first)
	}
	if err != nil {
		return nil, fmt.Errorf("search interrupted: %w", err)
	}

	ex.stats.States = ex.visited.Len()
	res := &Result{
		Variant: s.sim.Variant(),
		Horizon: s.horizon,
		Stats:   ex.stats,
		Elapsed: time.Since(start),
		root:    ex.root,
	}
	if ex.violation != nil {
		res.Found = true
		res.Trace = inputs(ex.found.Path())
		res.Violation = ex.violation
	}
	return res, nil
}

func (s *Search) sequential(ctx context.Context, ex *exploration, first node) error {
	queue := []node{first}
	depth := -1
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := queue[0]
		queue = queue[1:]

		if n.t.Depth() >= s.horizon {
			continue
		}
		if n.t.Depth() > depth {
			depth = n.t.Depth()
			s.logger.Debug("Expanding level", zap.Int("depth", depth), zap.Int("frontier", len(queue)+1))
		}

		children, done := ex.merge(n, s.expand(n))
		if done {
			return nil
		}
		queue = append(queue, children...)
	}
	return nil
}

// Simulate every input from the node in enumeration order.
// Stops after the first violation since later inputs can not produce a better counterexample.
//
// Does not touch the exploration and is safe to call concurrently.
func (s *Search) expand(n node) []outcome {
	k := n.t.Depth()
	out := make([]outcome, 0, 4)
	for _, in := range controller.Inputs() {
		state, _, v := s.sim.Tick(n.state.Copy(), k, in.Press, in.Motion, n.lastPress)
		out = append(out, outcome{input: in, state: state, violation: v})
		if v != nil {
			break
		}
	}
	return out
}

// Apply the outcomes of expanding n, in order.
//
// Returns the successors that should be explored, and true if a violation was found and the search is over.
func (ex *exploration) merge(n node, outcomes []outcome) ([]node, bool) {
	k := n.t.Depth()
	ex.stats.Expanded++
	if k+1 > ex.stats.Depth {
		ex.stats.Depth = k + 1
	}

	children := make([]node, 0, len(outcomes))
	for _, o := range outcomes {
		ex.stats.Generated++
		step := Step{Tick: k, Input: o.input}
		if o.violation != nil {
			ex.found = n.t.AddChild(step)
			ex.violation = o.violation
			return children, true
		}
		if !ex.visited.Visit(o.state.Fingerprint(), k+1) {
			ex.stats.Pruned++
			continue
		}
		children = append(children, node{
			t:         n.t.AddChild(step),
			state:     o.state,
			lastPress: o.input.Press,
		})
	}
	return children, false
}

func inputs(path []Step) []controller.Input {
	out := make([]controller.Input, len(path))
	for i, step := range path {
		out[i] = step.Input
	}
	return out
}
