package steps

import (
	"context"
	"fmt"

	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// EntryKey is the step kind key of the entry step.
const EntryKey = "entry"

// EntryDefinition declares the entry step: it aggregates the signal weights
// into a total, resolves the effective action against the thresholds, and
// drives order placement through the trade executor.
func EntryDefinition() pipeline.StepDefinition {
	stepParams := []params.ParameterDef{
		params.Decimal(paramTradeAmount, "Trade Amount", "Quote-currency amount spent per entry", 0, 1e12).WithRequired(),
		params.Decimal(paramBuyThreshold, "Buy Threshold", "Total signal weight above which to buy", -100, 100).WithDefault("0.5"),
		params.Decimal(paramSellThreshold, "Sell Threshold", "Total signal weight below which to sell", -100, 100).WithDefault("-0.5"),
	}

	return pipeline.StepDefinition{
		Key:         EntryKey,
		Name:        "Entry",
		Description: "Places orders based on the aggregated signal weights",
		Category:    pipeline.CategoryExecution,
		Icon:        "log-in",
		Params:      stepParams,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			return &entryStep{
				deps:          deps,
				tradeAmount:   p.GetDecimal(paramTradeAmount, 0),
				buyThreshold:  p.GetDecimal(paramBuyThreshold, 0.5),
				sellThreshold: p.GetDecimal(paramSellThreshold, -0.5),
			}
		},
	}
}

type entryStep struct {
	deps          pipeline.Dependencies
	tradeAmount   float64
	buyThreshold  float64
	sellThreshold float64
}

func (s *entryStep) Key() string { return EntryKey }

func (s *entryStep) Execute(ctx context.Context, tc types.TradingContext) types.StepResult {
	totalWeight := tc.TotalSignalWeight()

	// The thresholds override the action carried from earlier steps; inside
	// the band, the carried action stands.
	action := tc.Action

	switch {
	case totalWeight > s.buyThreshold:
		action = types.ActionBuy
	case totalWeight < s.sellThreshold:
		action = types.ActionSell
	}

	switch {
	case tc.ActiveOrderID.IsNone() && action == types.ActionBuy:
		if tc.CurrentPrice <= 0 {
			return types.Fail(fmt.Sprintf("%s: invalid current price %v", EntryKey, tc.CurrentPrice))
		}

		quantity := s.tradeAmount / tc.CurrentPrice

		updated, message, err := s.deps.Executor.ExecuteBuy(ctx, tc, quantity)
		if err != nil {
			return types.Fail(fmt.Sprintf("%s: buy failed: %v", EntryKey, err))
		}

		return types.Continue(updated, message)

	case tc.ActiveOrderID.IsSome() && action == types.ActionSell:
		updated, message, err := s.deps.Executor.ExecuteSell(ctx, tc)
		if err != nil {
			return types.Fail(fmt.Sprintf("%s: sell failed: %v", EntryKey, err))
		}

		return types.Continue(updated, message)

	default:
		return types.Continue(tc, fmt.Sprintf("no trade (action=%s, total_weight=%.4f, active_order=%v)", action, totalWeight, tc.ActiveOrderID.IsSome()))
	}
}
