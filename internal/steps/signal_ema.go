package steps

import (
	"fmt"

	"github.com/quantpipe/quantpipe/internal/indicator"
	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// EMACrossoverKey is the step kind key of the EMA crossover signal.
const EMACrossoverKey = "ema_crossover"

// EMACrossoverDefinition declares the EMA crossover signal step: bullish
// when the fast EMA sits above the slow EMA by more than the threshold,
// bearish when below.
func EMACrossoverDefinition() pipeline.StepDefinition {
	stepParams := append(signalParams(),
		params.Int("fast_period", "Fast Period", "Fast EMA period", 2, 200).WithDefault("9"),
		params.Int("slow_period", "Slow Period", "Slow EMA period", 2, 500).WithDefault("21"),
		params.Decimal(paramThreshold, "Threshold", "Relative spread required for a directional signal", 0, 1).WithDefault("0.001"),
	)

	return pipeline.StepDefinition{
		Key:         EMACrossoverKey,
		Name:        "EMA Crossover",
		Description: "Signals on the spread between a fast and a slow EMA",
		Category:    pipeline.CategorySignal,
		Icon:        "trending-up",
		Params:      stepParams,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			fastPeriod := p.GetInt("fast_period", 9)
			slowPeriod := p.GetInt("slow_period", 21)
			threshold := p.GetDecimal(paramThreshold, 0.001)

			minCandles := max(fastPeriod, slowPeriod)

			return &signalStep{
				key:        EMACrossoverKey,
				deps:       deps,
				weight:     p.GetDecimal(paramSignalWeight, 1.0),
				timeframe:  types.Timeframe(p.GetChoice(paramTimeframe, string(types.TimeframeOneHour))),
				limit:      minCandles * 3,
				minCandles: minCandles,
				compute: func(candles []types.Candlestick) (int, string) {
					closes := chronologicalCloses(candles)

					fast := indicator.EMA(fastPeriod, closes)
					slow := indicator.EMA(slowPeriod, closes)
					if fast.IsNone() || slow.IsNone() || slow.Unwrap() == 0 {
						return 0, "ema unavailable"
					}

					spread := (fast.Unwrap() - slow.Unwrap()) / slow.Unwrap()
					direction := indicator.Classify(spread, threshold)

					return direction, fmt.Sprintf("%s (spread=%.5f)", directionLabel(direction), spread)
				},
			}
		},
	}
}

// chronologicalCloses extracts close prices from candles already in
// chronological order.
func chronologicalCloses(candles []types.Candlestick) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	return closes
}
