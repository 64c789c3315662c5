package lampmc

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lampmc/config"
	"lampmc/controller"
	"lampmc/search"
	"lampmc/simulator"
)

// Check searches for the shortest input sequence that breaks a property of the lamp controller.
//
// Every input sequence up to the horizon is explored.
// The result either holds the shortest counterexample or states that none exists up to the horizon.
// This is a bounded result and not a proof for longer sequences.
//
// Returns an error if the configuration is invalid, the context is cancelled, or the search tree can not be exported.
func Check(ctx context.Context, opts ...CheckOption) (*search.Result, error) {
	var (
		horizon = search.DefaultHorizon
		workers = 1
		variant = controller.VariantCorrect
		logger  = zap.NewNop()
		runID   = ""

		export []io.Writer
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case config.HorizonOption:
			horizon = t.Horizon
		case config.WorkersOption:
			workers = t.N
		case config.VariantOption:
			variant = t.Variant
		case config.LoggerOption:
			if t.Logger != nil {
				logger = t.Logger
			}
		case config.ExportOption:
			export = append(export, t.W)
		case config.RunIDOption:
			runID = t.ID
		}
	}
	if runID == "" {
		runID = uuid.NewString()
	}
	logger = logger.With(
		zap.String("run_id", runID),
		zap.Stringer("variant", variant),
		zap.Int("horizon", horizon),
		zap.Int("workers", workers),
	)

	s, err := search.New(simulator.New(variant), horizon, workers, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting bounded search")
	res, err := s.Run(ctx)
	if err != nil {
		logger.Warn("Bounded search did not complete", zap.Error(err))
		return nil, err
	}
	res.RunID = runID

	for _, w := range export {
		if err := res.WriteTree(w); err != nil {
			return nil, fmt.Errorf("unable to export search tree: %w", err)
		}
	}

	fields := []zap.Field{
		zap.Int("expanded", res.Stats.Expanded),
		zap.Int("states", res.Stats.States),
		zap.Int("pruned", res.Stats.Pruned),
		zap.Duration("elapsed", res.Elapsed),
	}
	if res.Found {
		logger.Info("Counterexample found", append(fields,
			zap.String("property", string(res.Violation.Property)),
			zap.Int("tick", res.Violation.Tick),
		)...)
	} else {
		logger.Info("No counterexample found up to the horizon", fields...)
	}
	return res, nil
}
