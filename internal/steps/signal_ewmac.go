package steps

import (
	"fmt"

	"github.com/quantpipe/quantpipe/internal/indicator"
	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// EWMACKey is the step kind key of the EWMAC signal.
const EWMACKey = "ewmac"

// EWMACDefinition declares the EWMAC signal step: the fast/slow EMA spread
// normalized by the volatility of recent price changes, so the same
// threshold works across instruments with different price scales.
func EWMACDefinition() pipeline.StepDefinition {
	stepParams := append(signalParams(),
		params.Int("fast_period", "Fast Period", "Fast EMA period", 2, 200).WithDefault("16"),
		params.Int("slow_period", "Slow Period", "Slow EMA period", 2, 500).WithDefault("64"),
		params.Int("vol_window", "Volatility Window", "Window for the price-change volatility estimate", 2, 500).WithDefault("32"),
		params.Decimal(paramThreshold, "Threshold", "Normalized crossover magnitude required for a directional signal", 0, 100).WithDefault("0.5"),
	)

	return pipeline.StepDefinition{
		Key:         EWMACKey,
		Name:        "EWMAC",
		Description: "Volatility-normalized EMA crossover",
		Category:    pipeline.CategorySignal,
		Icon:        "zap",
		Params:      stepParams,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			fastPeriod := p.GetInt("fast_period", 16)
			slowPeriod := p.GetInt("slow_period", 64)
			volWindow := p.GetInt("vol_window", 32)
			threshold := p.GetDecimal(paramThreshold, 0.5)

			minCandles := max(fastPeriod, slowPeriod, volWindow+1)

			return &signalStep{
				key:        EWMACKey,
				deps:       deps,
				weight:     p.GetDecimal(paramSignalWeight, 1.0),
				timeframe:  types.Timeframe(p.GetChoice(paramTimeframe, string(types.TimeframeOneHour))),
				limit:      minCandles * 2,
				minCandles: minCandles,
				compute: func(candles []types.Candlestick) (int, string) {
					closes := chronologicalCloses(candles)

					fast := indicator.EMA(fastPeriod, closes)
					slow := indicator.EMA(slowPeriod, closes)
					if fast.IsNone() || slow.IsNone() {
						return 0, "ema unavailable"
					}

					// Volatility of absolute price changes over the window.
					changes := make([]float64, 0, volWindow)
					start := len(closes) - volWindow - 1
					for i := start + 1; i < len(closes); i++ {
						changes = append(changes, closes[i]-closes[i-1])
					}

					vol := indicator.StdDev(changes)
					if vol.IsNone() || vol.Unwrap() == 0 {
						return 0, "volatility unavailable"
					}

					forecast := (fast.Unwrap() - slow.Unwrap()) / vol.Unwrap()
					direction := indicator.Classify(forecast, threshold)

					return direction, fmt.Sprintf("%s (forecast=%.4f)", directionLabel(direction), forecast)
				},
			}
		},
	}
}
