package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/quantpipe/quantpipe/pkg/errors"
)

// OrderSide is the direction of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderStatus is the lifecycle state of an order.
//
// Orders move Pending -> Placed -> Filled, or terminate in Cancelled/Failed.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusFilled    OrderStatus = "FILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusFailed    OrderStatus = "FAILED"
)

// PositionStatus is the lifecycle state of a position.
type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "OPEN"
	PositionStatusClosed PositionStatus = "CLOSED"
)

// Order is a persisted exchange order owned by a pipeline.
type Order struct {
	ID         string          `json:"id" validate:"required,uuid"`
	PipelineID int64           `json:"pipeline_id" validate:"required"`
	Symbol     string          `json:"symbol" validate:"required"`
	Market     MarketType      `json:"market" validate:"required,oneof=SPOT FUTURES"`
	Side       OrderSide       `json:"side" validate:"required,oneof=BUY SELL"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Status     OrderStatus     `json:"status" validate:"required,oneof=PENDING PLACED FILLED CANCELLED FAILED"`
	// ExchangeOrderID is set once the exchange accepted the order.
	ExchangeOrderID optional.Option[string] `json:"exchange_order_id,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// Validate validates the Order struct.
func (o *Order) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid order", err)
	}

	return nil
}

// Position is a persisted open or closed position. A position row exists
// if and only if its originating order reached at least OrderStatusPlaced.
type Position struct {
	ID         string          `json:"id" validate:"required,uuid"`
	PipelineID int64           `json:"pipeline_id" validate:"required"`
	// BuyOrderID references the order that opened this position.
	BuyOrderID string          `json:"buy_order_id" validate:"required,uuid"`
	Symbol     string          `json:"symbol" validate:"required"`
	EntryPrice decimal.Decimal `json:"entry_price"`
	Quantity   decimal.Decimal `json:"quantity"`
	Status     PositionStatus  `json:"status" validate:"required,oneof=OPEN CLOSED"`
	OpenedAt   time.Time       `json:"opened_at"`
	ClosedAt   optional.Option[time.Time] `json:"closed_at,omitempty"`
}

// Validate validates the Position struct.
func (p *Position) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid position", err)
	}

	return nil
}
