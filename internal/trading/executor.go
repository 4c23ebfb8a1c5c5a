package trading

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// LiveTradeExecutor implements TradeExecutor against an exchange and the
// order store.
//
// Buy protocol: a pending order row is created in its own unit of work
// before the exchange call, so a submitted-but-unconfirmed order stays
// auditable even if the process crashes mid-flight. Once the exchange
// accepts, the status update and the position write commit in a single
// transaction.
type LiveTradeExecutor struct {
	exchange OrderExecutor
	store    OrderStore
	logger   *logger.Logger
}

// NewLiveTradeExecutor creates a trade executor backed by the given exchange
// and order store.
func NewLiveTradeExecutor(exchange OrderExecutor, store OrderStore, log *logger.Logger) *LiveTradeExecutor {
	return &LiveTradeExecutor{
		exchange: exchange,
		store:    store,
		logger:   log,
	}
}

// ExecuteBuy places a buy order sized at the given quantity and opens the
// resulting position.
func (e *LiveTradeExecutor) ExecuteBuy(ctx context.Context, tc types.TradingContext, quantity float64) (types.TradingContext, string, error) {
	now := executionTime(tc)

	order := types.Order{
		ID:         uuid.New().String(),
		PipelineID: tc.PipelineID,
		Symbol:     tc.Symbol,
		Market:     tc.Market,
		Side:       types.OrderSideBuy,
		Quantity:   decimal.NewFromFloat(quantity),
		Price:      decimal.NewFromFloat(tc.CurrentPrice),
		Status:     types.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := e.store.CreateOrder(ctx, order); err != nil {
		return tc, "", errors.Wrap(errors.ErrCodeQueryFailed, "failed to create order", err)
	}

	exchangeOrderID, err := e.exchange.SubmitOrder(ctx, order)
	if err != nil {
		e.markOrderFailed(ctx, order)
		return tc, "", errors.Wrap(errors.ErrCodeOrderFailed, "exchange rejected buy order", err)
	}

	order.Status = types.OrderStatusPlaced
	order.ExchangeOrderID = optional.Some(exchangeOrderID)
	order.UpdatedAt = executionTime(tc)

	position := types.Position{
		ID:         uuid.New().String(),
		PipelineID: tc.PipelineID,
		BuyOrderID: order.ID,
		Symbol:     tc.Symbol,
		EntryPrice: order.Price,
		Quantity:   order.Quantity,
		Status:     types.PositionStatusOpen,
		OpenedAt:   order.UpdatedAt,
	}

	err = e.store.WithinTx(ctx, func(tx OrderTx) error {
		if err := tx.UpdateOrder(ctx, order); err != nil {
			return err
		}

		return tx.CreatePosition(ctx, position)
	})
	if err != nil {
		return tc, "", errors.Wrap(errors.ErrCodeQueryFailed, "failed to persist placed order", err)
	}

	e.logger.Info("buy order placed",
		zap.Int64("pipeline_id", tc.PipelineID),
		zap.String("order_id", order.ID),
		zap.String("exchange_order_id", exchangeOrderID),
		zap.String("symbol", tc.Symbol),
		zap.Float64("quantity", quantity),
	)

	updated := tc.Clone()
	updated.Action = types.ActionHold
	updated.ActiveOrderID = optional.Some(order.ID)
	updated.BuyPrice = optional.Some(tc.CurrentPrice)
	updated.Quantity = optional.Some(quantity)

	message := fmt.Sprintf("placed buy order %s for %v %s at %v", order.ID, quantity, tc.Symbol, tc.CurrentPrice)

	return updated, message, nil
}

// ExecuteSell closes the held position with a sell order.
func (e *LiveTradeExecutor) ExecuteSell(ctx context.Context, tc types.TradingContext) (types.TradingContext, string, error) {
	if tc.Quantity.IsNone() {
		return tc, "", errors.New(errors.ErrCodePositionNotFound, "no held quantity to sell")
	}

	now := executionTime(tc)
	quantity := tc.Quantity.Unwrap()

	order := types.Order{
		ID:         uuid.New().String(),
		PipelineID: tc.PipelineID,
		Symbol:     tc.Symbol,
		Market:     tc.Market,
		Side:       types.OrderSideSell,
		Quantity:   decimal.NewFromFloat(quantity),
		Price:      decimal.NewFromFloat(tc.CurrentPrice),
		Status:     types.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := e.store.CreateOrder(ctx, order); err != nil {
		return tc, "", errors.Wrap(errors.ErrCodeQueryFailed, "failed to create order", err)
	}

	exchangeOrderID, err := e.exchange.SubmitOrder(ctx, order)
	if err != nil {
		e.markOrderFailed(ctx, order)
		return tc, "", errors.Wrap(errors.ErrCodeOrderFailed, "exchange rejected sell order", err)
	}

	order.Status = types.OrderStatusPlaced
	order.ExchangeOrderID = optional.Some(exchangeOrderID)
	order.UpdatedAt = executionTime(tc)

	err = e.store.WithinTx(ctx, func(tx OrderTx) error {
		if err := tx.UpdateOrder(ctx, order); err != nil {
			return err
		}

		if tc.ActiveOrderID.IsSome() {
			return tx.ClosePositionByOrder(ctx, tc.ActiveOrderID.Unwrap(), order.UpdatedAt)
		}

		return nil
	})
	if err != nil {
		return tc, "", errors.Wrap(errors.ErrCodeQueryFailed, "failed to persist placed order", err)
	}

	e.logger.Info("sell order placed",
		zap.Int64("pipeline_id", tc.PipelineID),
		zap.String("order_id", order.ID),
		zap.String("exchange_order_id", exchangeOrderID),
		zap.String("symbol", tc.Symbol),
		zap.Float64("quantity", quantity),
	)

	updated := tc.Clone()
	updated.Action = types.ActionNone
	updated.ActiveOrderID = optional.None[string]()
	updated.BuyPrice = optional.None[float64]()
	updated.Quantity = optional.None[float64]()

	message := fmt.Sprintf("placed sell order %s for %v %s at %v", order.ID, quantity, tc.Symbol, tc.CurrentPrice)

	return updated, message, nil
}

// markOrderFailed records the rejection. Best effort: the original failure
// is what the caller reports.
func (e *LiveTradeExecutor) markOrderFailed(ctx context.Context, order types.Order) {
	order.Status = types.OrderStatusFailed
	order.UpdatedAt = time.Now()

	if err := e.store.UpdateOrder(ctx, order); err != nil {
		e.logger.Error("failed to mark order as failed",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}
}

// executionTime resolves "now" for the execution, honoring a simulated clock
// when a replay driver set one.
func executionTime(tc types.TradingContext) time.Time {
	if simulated := types.GetData(tc, types.KeyCurrentTime); simulated.IsSome() {
		return simulated.Unwrap()
	}

	return time.Now()
}
