package steps

import (
	"fmt"

	"github.com/quantpipe/quantpipe/internal/indicator"
	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// TrendFollowingKey is the step kind key of the trend-following signal.
const TrendFollowingKey = "trend_following"

// TrendFollowingDefinition declares the trend-following signal step:
// momentum over the lookback decides the direction, and the share of
// same-direction bar returns inside the lookback (breadth) must confirm it,
// otherwise the signal stays neutral.
func TrendFollowingDefinition() pipeline.StepDefinition {
	stepParams := append(signalParams(),
		params.Int("lookback", "Lookback", "Momentum lookback in candles", 2, 500).WithDefault("30"),
		params.Decimal(paramThreshold, "Threshold", "Momentum magnitude required for a directional signal", 0, 10).WithDefault("0.02"),
		params.Decimal("breadth_threshold", "Breadth Threshold", "Share of confirming bar returns required", 0.5, 1).WithDefault("0.55"),
	)

	return pipeline.StepDefinition{
		Key:         TrendFollowingKey,
		Name:        "Trend Following",
		Description: "Momentum signal with breadth confirmation",
		Category:    pipeline.CategorySignal,
		Icon:        "compass",
		Params:      stepParams,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			lookback := p.GetInt("lookback", 30)
			threshold := p.GetDecimal(paramThreshold, 0.02)
			breadthThreshold := p.GetDecimal("breadth_threshold", 0.55)

			return &signalStep{
				key:        TrendFollowingKey,
				deps:       deps,
				weight:     p.GetDecimal(paramSignalWeight, 1.0),
				timeframe:  types.Timeframe(p.GetChoice(paramTimeframe, string(types.TimeframeOneHour))),
				limit:      lookback + 1,
				minCandles: lookback + 1,
				compute: func(candles []types.Candlestick) (int, string) {
					closes := chronologicalCloses(candles)

					momentum := indicator.Momentum(lookback, closes)
					if momentum.IsNone() {
						return 0, "momentum unavailable"
					}

					direction := indicator.Classify(momentum.Unwrap(), threshold)
					if direction == 0 {
						return 0, fmt.Sprintf("neutral (momentum=%.5f)", momentum.Unwrap())
					}

					// Breadth: the fraction of bar returns inside the
					// lookback that agree with the momentum direction.
					returns := indicator.Returns(closes[len(closes)-1-lookback:])

					var confirming int
					for _, r := range returns {
						if (direction > 0 && r > 0) || (direction < 0 && r < 0) {
							confirming++
						}
					}

					breadth := float64(confirming) / float64(len(returns))
					if breadth < breadthThreshold {
						return 0, fmt.Sprintf("unconfirmed %s (momentum=%.5f, breadth=%.2f)", directionLabel(direction), momentum.Unwrap(), breadth)
					}

					return direction, fmt.Sprintf("%s (momentum=%.5f, breadth=%.2f)", directionLabel(direction), momentum.Unwrap(), breadth)
				},
			}
		},
	}
}
