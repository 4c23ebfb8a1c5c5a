package steps

import (
	"context"
	"fmt"

	"github.com/moznion/go-optional"

	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// PositionGateKey is the step kind key of the position gate step.
const PositionGateKey = "position_gate"

// PositionGateDefinition declares the position gate: a defense against a
// stale position snapshot that guarantees no redundant entry while a
// position or order is already active.
func PositionGateDefinition() pipeline.StepDefinition {
	return pipeline.StepDefinition{
		Key:         PositionGateKey,
		Name:        "Position Gate",
		Description: "Blocks redundant entries while a position or order is active",
		Category:    pipeline.CategoryValidation,
		Icon:        "shield",
		Params:      nil,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			return &positionGateStep{deps: deps}
		},
	}
}

type positionGateStep struct {
	deps pipeline.Dependencies
}

func (s *positionGateStep) Key() string { return PositionGateKey }

func (s *positionGateStep) Execute(ctx context.Context, tc types.TradingContext) types.StepResult {
	// The gate only acts on a clean slate. Any other state passes through
	// unchanged.
	if tc.ActiveOrderID.IsSome() || tc.Action != types.ActionNone {
		return types.Continue(tc, "gate passed through")
	}

	position, err := s.deps.Positions.GetOpenPosition(ctx, tc.PipelineID)
	if err != nil {
		// Soft halt: the gate failing to re-check is not a pipeline error.
		return types.Stop(fmt.Sprintf("%s: position re-check failed: %v", PositionGateKey, err))
	}

	if position.IsSome() {
		open := position.Unwrap()

		updated := tc.Clone()
		updated.ActiveOrderID = optional.Some(open.BuyOrderID)

		return types.Continue(updated, fmt.Sprintf("already positioned via order %s", open.BuyOrderID))
	}

	return types.Continue(tc, "no active position, ready for entry")
}
