package steps

import (
	"fmt"

	"github.com/quantpipe/quantpipe/internal/indicator"
	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// MACDCrossoverKey is the step kind key of the MACD crossover signal.
const MACDCrossoverKey = "macd_crossover"

// MACDCrossoverDefinition declares the MACD crossover signal step: bullish
// when the MACD line crosses above its signal line by more than the
// threshold (histogram normalized by the last close), bearish when below.
func MACDCrossoverDefinition() pipeline.StepDefinition {
	stepParams := append(signalParams(),
		params.Int("fast_period", "Fast Period", "Fast EMA period", 2, 200).WithDefault("12"),
		params.Int("slow_period", "Slow Period", "Slow EMA period", 2, 500).WithDefault("26"),
		params.Int("signal_period", "Signal Period", "Signal line EMA period", 2, 200).WithDefault("9"),
		params.Decimal(paramThreshold, "Threshold", "Normalized histogram magnitude required for a directional signal", 0, 1).WithDefault("0.0005"),
	)

	return pipeline.StepDefinition{
		Key:         MACDCrossoverKey,
		Name:        "MACD Crossover",
		Description: "Signals on the MACD histogram",
		Category:    pipeline.CategorySignal,
		Icon:        "activity",
		Params:      stepParams,
		Factory: func(p params.ValidatedParams, deps pipeline.Dependencies) pipeline.Step {
			fastPeriod := p.GetInt("fast_period", 12)
			slowPeriod := p.GetInt("slow_period", 26)
			signalPeriod := p.GetInt("signal_period", 9)
			threshold := p.GetDecimal(paramThreshold, 0.0005)

			minCandles := max(fastPeriod, slowPeriod) + signalPeriod

			return &signalStep{
				key:        MACDCrossoverKey,
				deps:       deps,
				weight:     p.GetDecimal(paramSignalWeight, 1.0),
				timeframe:  types.Timeframe(p.GetChoice(paramTimeframe, string(types.TimeframeOneHour))),
				limit:      minCandles * 2,
				minCandles: minCandles,
				compute: func(candles []types.Candlestick) (int, string) {
					closes := chronologicalCloses(candles)

					histogram, ok := macdHistogram(fastPeriod, slowPeriod, signalPeriod, closes)
					if !ok {
						return 0, "macd unavailable"
					}

					lastClose := closes[len(closes)-1]
					if lastClose == 0 {
						return 0, "macd unavailable"
					}

					normalized := histogram / lastClose
					direction := indicator.Classify(normalized, threshold)

					return direction, fmt.Sprintf("%s (histogram=%.5f)", directionLabel(direction), normalized)
				},
			}
		},
	}
}

// macdHistogram computes the last MACD histogram value: the MACD line minus
// its signal-period EMA.
func macdHistogram(fastPeriod, slowPeriod, signalPeriod int, closes []float64) (float64, bool) {
	fastSeries := indicator.EMASeries(fastPeriod, closes)
	slowSeries := indicator.EMASeries(slowPeriod, closes)
	if len(fastSeries) == 0 || len(slowSeries) == 0 {
		return 0, false
	}

	// Align both EMA series on their tails: each series covers the most
	// recent bars, one value per bar.
	length := min(len(fastSeries), len(slowSeries))
	macdLine := make([]float64, length)
	for i := 0; i < length; i++ {
		fast := fastSeries[len(fastSeries)-length+i]
		slow := slowSeries[len(slowSeries)-length+i]
		macdLine[i] = fast - slow
	}

	signalLine := indicator.EMASeries(signalPeriod, macdLine)
	if len(signalLine) == 0 {
		return 0, false
	}

	return macdLine[len(macdLine)-1] - signalLine[len(signalLine)-1], true
}
