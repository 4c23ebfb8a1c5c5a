package steps

import (
	"fmt"

	"github.com/quantpipe/quantpipe/internal/indicator"
	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// VWAPDeviationKey is the step kind key of the VWAP deviation signal.
const VWAPDeviationKey = "vwap_deviation"

// VWAPDeviationDefinition declares the VWAP deviation signal step. The
// signal is mean-reverting: a close stretched below the window VWAP by more
// than the threshold is bullish, a close stretched above it is bearish.
func VWAPDeviationDefinition() pipeline.StepDefinition {
	stepParams := append(signalParams(),
		params.Int("window", "Window", "Number of candles in the VWAP window", 2, 500).WithDefault("20"),
		params.Decimal(paramThreshold, "Threshold", "Relative deviation required for a directional signal", 0, 1).WithDefault("0.01"),
	)

	return pipeline.StepDefinition{
		Key:         VWAPDeviationKey,
		Name:        "VWAP Deviation",
		Description: "Mean-reversion signal on the deviation from the window VWAP",
		Category:    pipeline.CategorySignal,
		Icon:        "bar-chart",
		Params:      stepParams,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			window := p.GetInt("window", 20)
			threshold := p.GetDecimal(paramThreshold, 0.01)

			return &signalStep{
				key:        VWAPDeviationKey,
				deps:       deps,
				weight:     p.GetDecimal(paramSignalWeight, 1.0),
				timeframe:  types.Timeframe(p.GetChoice(paramTimeframe, string(types.TimeframeOneHour))),
				limit:      window,
				minCandles: window,
				compute: func(candles []types.Candlestick) (int, string) {
					prices := make([]float64, len(candles))
					volumes := make([]float64, len(candles))
					for i, c := range candles {
						prices[i] = c.Close
						volumes[i] = c.Volume
					}

					vwap := indicator.VWAP(prices, volumes)
					if vwap.IsNone() || vwap.Unwrap() == 0 {
						return 0, "vwap unavailable (zero volume)"
					}

					lastClose := prices[len(prices)-1]
					deviation := (lastClose - vwap.Unwrap()) / vwap.Unwrap()

					// Stretch below VWAP is a buy, stretch above is a sell.
					direction := -indicator.Classify(deviation, threshold)

					return direction, fmt.Sprintf("%s (deviation=%.5f)", directionLabel(direction), deviation)
				},
			}
		},
	}
}
