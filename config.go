package lampmc

import (
	"io"

	"go.uber.org/zap"

	"lampmc/config"
	"lampmc/controller"
)

// CheckOption configures a check. See Check for the defaults.
type CheckOption interface {
	CheckOpt()
}

// Configure the maximum length of the explored traces.
//
// Default value is controller.InitialTimerValue + 5.
//
// Counterexamples longer than the horizon are not found.
func Horizon(h int) CheckOption {
	return config.HorizonOption{Horizon: h}
}

// Configure the number of goroutines expanding each breadth first level.
//
// Default value is 1.
//
// The reported counterexample does not depend on the number of workers.
func Workers(n int) CheckOption {
	return config.WorkersOption{N: n}
}

// Check the provided controller variant instead of the correct controller
func WithVariant(v controller.Variant) CheckOption {
	return config.VariantOption{Variant: v}
}

// Log the progress of the check to the provided logger
func WithLogger(logger *zap.Logger) CheckOption {
	return config.LoggerOption{Logger: logger}
}

// Write the explored search tree in Newick format to the writer
//
// Can be applied multiple times to add multiple writers.
func Export(w io.Writer) CheckOption {
	return config.ExportOption{W: w}
}

// Use the provided identifier for the check instead of a random one
func WithRunID(id string) CheckOption {
	return config.RunIDOption{ID: id}
}

// Convert a configuration file into options.
//
// Zero values in the file are skipped so that the defaults apply.
// The export path is not converted since the caller owns the file.
func FileOptions(f *config.File) ([]CheckOption, error) {
	opts := []CheckOption{}
	if f.Horizon != 0 {
		opts = append(opts, Horizon(f.Horizon))
	}
	if f.Workers != 0 {
		opts = append(opts, Workers(f.Workers))
	}
	if f.Variant != "" {
		v, err := controller.ParseVariant(f.Variant)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithVariant(v))
	}
	return opts, nil
}
