package config

import (
	"io"

	"go.uber.org/zap"

	"lampmc/controller"
)

// Configures the maximum length of the explored traces

// Default value is controller.InitialTimerValue + 5
type HorizonOption struct{ Horizon int }

func (ho HorizonOption) CheckOpt() {}

// Configures the number of goroutines expanding each breadth first level

// Default value is 1, which searches on the calling goroutine
type WorkersOption struct{ N int }

func (wo WorkersOption) CheckOpt() {}

// Configures the controller variant that is checked

// Default value is controller.VariantCorrect
type VariantOption struct{ Variant controller.Variant }

func (vo VariantOption) CheckOpt() {}

// Configures the logger used during the check

// Default value is a no-op logger
type LoggerOption struct{ Logger *zap.Logger }

func (lo LoggerOption) CheckOpt() {}

// Configures io.writers that the explored search tree will be exported to

// Can be applied multiple times to add multiple io.writers.
// Default value is no writers.
type ExportOption struct {
	W io.Writer
}

func (eo ExportOption) CheckOpt() {}

// Configures the identifier of the check

// Default value is a random UUID
type RunIDOption struct{ ID string }

func (ro RunIDOption) CheckOpt() {}
