// Package trading declares the ports the pipeline engine depends on without
// owning their implementation. Live adapters live under internal/store and
// internal/exchange; replay drivers plug in simulated implementations.
package trading

import (
	"context"
	"time"

	"github.com/moznion/go-optional"

	"github.com/quantpipe/quantpipe/internal/types"
)

// PositionReader fetches the currently open position for a pipeline, if any.
type PositionReader interface {
	// GetOpenPosition returns None when the pipeline holds no open position.
	GetOpenPosition(ctx context.Context, pipelineID int64) (optional.Option[types.Position], error)
}

// CandleRepository queries historical candles, ordered newest-first.
type CandleRepository interface {
	QueryCandles(ctx context.Context, query types.CandleQuery) ([]types.Candlestick, error)
}

// TradeExecutor places entry and exit trades for a pipeline execution.
// Implementations return the updated context and a human-readable message.
type TradeExecutor interface {
	// ExecuteBuy opens a position sized at the given quantity.
	ExecuteBuy(ctx context.Context, tc types.TradingContext, quantity float64) (types.TradingContext, string, error)
	// ExecuteSell closes the held position.
	ExecuteSell(ctx context.Context, tc types.TradingContext) (types.TradingContext, string, error)
}

// OrderExecutor submits an order to an exchange and returns the exchange
// order id.
type OrderExecutor interface {
	SubmitOrder(ctx context.Context, order types.Order) (string, error)
}

// ExecutionLogWriter appends audit records. The engine never reads them back.
type ExecutionLogWriter interface {
	WriteExecutionLog(ctx context.Context, record types.ExecutionLog) error
}

// OrderTx groups the writes that must commit or roll back together.
type OrderTx interface {
	UpdateOrder(ctx context.Context, order types.Order) error
	CreatePosition(ctx context.Context, position types.Position) error
	// ClosePositionByOrder closes the open position opened by the given buy
	// order.
	ClosePositionByOrder(ctx context.Context, buyOrderID string, closedAt time.Time) error
}

// OrderStore persists orders and positions. WithinTx runs the given function
// inside one transaction; the order-status update and position write of the
// entry protocol go through it so a placed order can never exist without its
// position row.
type OrderStore interface {
	CreateOrder(ctx context.Context, order types.Order) error
	UpdateOrder(ctx context.Context, order types.Order) error
	WithinTx(ctx context.Context, fn func(tx OrderTx) error) error
}
