// Package pipeline turns persisted step configuration into runnable logic
// and executes it: the step registry, the builder, and the sequential
// runner.
package pipeline

import (
	"context"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/trading"
	"github.com/quantpipe/quantpipe/internal/types"
)

// Category groups step kinds for UI display. It has no behavioral effect
// inside the engine.
type Category string

const (
	CategoryValidation Category = "VALIDATION"
	CategorySignal     Category = "SIGNAL"
	CategoryExecution  Category = "EXECUTION"
)

// Step is a runtime-bound unit of execution, closed over its validated
// parameters and injected dependencies.
type Step interface {
	// Key returns the step kind key this step was built from.
	Key() string
	// Execute runs the step against the context and votes on the next
	// outcome.
	Execute(ctx context.Context, tc types.TradingContext) types.StepResult
}

// Dependencies carries the external ports step factories close over.
type Dependencies struct {
	Logger    *logger.Logger
	Candles   trading.CandleRepository
	Positions trading.PositionReader
	Executor  trading.TradeExecutor
}

// Factory builds an executable step from validated parameters and injected
// dependencies.
type Factory func(p params.ValidatedParams, deps Dependencies) Step

// StepDefinition is the static metadata for a step kind. Registered once at
// startup and never mutated.
type StepDefinition struct {
	// Key uniquely identifies the step kind.
	Key         string
	Name        string
	Description string
	Category    Category
	Icon        string
	Params      []params.ParameterDef
	Factory     Factory
}

// StepConfig is the persisted configuration of one pipeline step, consumed
// by the builder.
type StepConfig struct {
	// StepKey references a registered step kind. Unknown keys are skipped
	// by the builder; configuration may reference a kind that was later
	// removed.
	StepKey string `yaml:"step" json:"step_type_key"`
	// Order positions the step within its pipeline, ascending.
	Order     int               `yaml:"order" json:"order"`
	IsEnabled bool              `yaml:"enabled" json:"is_enabled"`
	Parameters map[string]string `yaml:"parameters" json:"parameters"`
}
