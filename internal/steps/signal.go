package steps

import (
	"context"
	"fmt"

	"github.com/quantpipe/quantpipe/internal/params"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// signalParams returns the parameter definitions every signal step shares.
func signalParams() []params.ParameterDef {
	return []params.ParameterDef{
		params.Decimal(paramSignalWeight, "Signal Weight", "Weight this signal contributes to the entry decision", -10, 10).WithDefault("1.0"),
		params.Choice(paramTimeframe, "Timeframe", "Candlestick timeframe", timeframeOptions...).WithDefault(string(types.TimeframeOneHour)),
	}
}

// computeFunc turns a chronological candle window into a direction in
// {-1, 0, +1} and a human-readable detail.
type computeFunc func(candles []types.Candlestick) (int, string)

// signalStep is the shared scaffold of the indicator signal steps. Each
// indicator supplies its candle window size and compute function; the
// scaffold handles the hold guard, candle fetching, the insufficient-data
// contract, and weight recording.
type signalStep struct {
	key        string
	deps       pipeline.Dependencies
	weight     float64
	timeframe  types.Timeframe
	limit      int
	minCandles int
	compute    computeFunc
}

func (s *signalStep) Key() string { return s.key }

func (s *signalStep) Execute(ctx context.Context, tc types.TradingContext) types.StepResult {
	// Don't recompute signals while holding.
	if holdingWithActiveOrder(tc) {
		return types.Continue(tc, fmt.Sprintf("%s: holding position, signal skipped", s.key))
	}

	candles, err := fetchCandles(ctx, s.deps, tc, s.timeframe, s.limit)
	if err != nil {
		return types.Fail(fmt.Sprintf("%s: failed to fetch candles: %v", s.key, err))
	}

	if len(candles) < s.minCandles {
		// Not an error: the pipeline retries on its next scheduled tick.
		return types.Continue(tc, insufficientDataMessage(s.key, len(candles), s.minCandles))
	}

	// Candles arrive newest-first; compute functions take chronological
	// order.
	chronological := make([]types.Candlestick, len(candles))
	for i, c := range candles {
		chronological[len(candles)-1-i] = c
	}

	direction, detail := s.compute(chronological)
	weight := float64(direction) * s.weight

	updated := tc.WithSignalWeight(s.key, weight)

	return types.Continue(updated, fmt.Sprintf("%s: %s, weight %.4f", s.key, detail, weight))
}

func directionLabel(direction int) string {
	switch {
	case direction > 0:
		return "bullish"
	case direction < 0:
		return "bearish"
	default:
		return "neutral"
	}
}
