package steps

import (
	"context"
	"fmt"

	"github.com/moznion/go-optional"

	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// CheckPositionKey is the step kind key of the position check step.
const CheckPositionKey = "check_position"

// CheckPositionDefinition declares the position check step: it loads the
// pipeline's open position, if any, into the context.
func CheckPositionDefinition() pipeline.StepDefinition {
	return pipeline.StepDefinition{
		Key:         CheckPositionKey,
		Name:        "Check Position",
		Description: "Loads the pipeline's open position into the context",
		Category:    pipeline.CategoryValidation,
		Icon:        "search",
		Params:      nil,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			return &checkPositionStep{deps: deps}
		},
	}
}

type checkPositionStep struct {
	deps pipeline.Dependencies
}

func (s *checkPositionStep) Key() string { return CheckPositionKey }

func (s *checkPositionStep) Execute(ctx context.Context, tc types.TradingContext) types.StepResult {
	position, err := s.deps.Positions.GetOpenPosition(ctx, tc.PipelineID)
	if err != nil {
		return types.Fail(fmt.Sprintf("%s: failed to load position: %v", CheckPositionKey, err))
	}

	updated := tc.Clone()

	if position.IsNone() {
		updated.Action = types.ActionNone
		return types.Continue(updated, "no open position")
	}

	open := position.Unwrap()
	entryPrice, _ := open.EntryPrice.Float64()
	quantity, _ := open.Quantity.Float64()

	updated.Action = types.ActionHold
	updated.BuyPrice = optional.Some(entryPrice)
	updated.Quantity = optional.Some(quantity)
	updated.ActiveOrderID = optional.Some(open.BuyOrderID)

	return types.Continue(updated, fmt.Sprintf("holding %v %s from order %s", quantity, open.Symbol, open.BuyOrderID))
}
