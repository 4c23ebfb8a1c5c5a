// Package steps implements the built-in pipeline step kinds: position
// check, position gate, the indicator signal steps, and the entry step.
package steps

import (
	"context"
	"fmt"

	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
)

// Parameter keys shared across step kinds.
const (
	paramSignalWeight  = "signal_weight"
	paramTimeframe     = "timeframe"
	paramThreshold     = "threshold"
	paramTradeAmount   = "trade_amount"
	paramBuyThreshold  = "buy_threshold"
	paramSellThreshold = "sell_threshold"
)

// Definitions returns every built-in step definition.
func Definitions() []pipeline.StepDefinition {
	return []pipeline.StepDefinition{
		CheckPositionDefinition(),
		PositionGateDefinition(),
		EMACrossoverDefinition(),
		MACDCrossoverDefinition(),
		VWAPDeviationDefinition(),
		EWMACDefinition(),
		TrendFollowingDefinition(),
		EntryDefinition(),
	}
}

// NewDefaultRegistry creates a registry with every built-in step kind
// registered.
func NewDefaultRegistry() *pipeline.Registry {
	return pipeline.NewRegistryFrom(Definitions())
}

// holdingWithActiveOrder reports whether the execution already holds a
// position with an active order. Signal steps are no-ops in that state so
// signals are not recomputed while holding.
func holdingWithActiveOrder(tc types.TradingContext) bool {
	return tc.ActiveOrderID.IsSome() && tc.Action == types.ActionHold
}

// fetchCandles queries the most recent candles for the context's symbol,
// newest-first. A simulated clock in the auxiliary data pins the query for
// replay drivers.
func fetchCandles(ctx context.Context, deps pipeline.Dependencies, tc types.TradingContext, timeframe types.Timeframe, limit int) ([]types.Candlestick, error) {
	query := types.CandleQuery{
		Symbol:    tc.Symbol,
		Market:    tc.Market,
		Timeframe: timeframe,
		Limit:     limit,
	}

	if simulated := types.GetData(tc, types.KeyCurrentTime); simulated.IsSome() {
		to := simulated.Unwrap()
		query.To = &to
	}

	return deps.Candles.QueryCandles(ctx, query)
}

func insufficientDataMessage(key string, have, want int) string {
	return fmt.Sprintf("%s: insufficient data (%d candles, need %d), retrying next tick", key, have, want)
}

var timeframeOptions = []string{
	string(types.TimeframeOneMinute),
	string(types.TimeframeFiveMinutes),
	string(types.TimeframeFifteenMinutes),
	string(types.TimeframeOneHour),
	string(types.TimeframeFourHours),
	string(types.TimeframeOneDay),
}
