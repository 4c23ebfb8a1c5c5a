package types

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/moznion/go-optional"
)

// TradingAction is the pending decision carried through a pipeline execution.
type TradingAction string

const (
	ActionNone TradingAction = "NO_ACTION"
	ActionHold TradingAction = "HOLD"
	ActionBuy  TradingAction = "BUY"
	ActionSell TradingAction = "SELL"
)

// TradingContext is the record threaded through every step of a pipeline
// execution. Steps never mutate a shared context in place; each step returns
// a new value so the runner's per-step snapshots stay accurate.
type TradingContext struct {
	PipelineID int64 `json:"pipeline_id"`
	// ExecutionID is a short random token used to correlate log records of
	// one execution.
	ExecutionID   string                  `json:"execution_id"`
	Symbol        string                  `json:"symbol"`
	Market        MarketType              `json:"market"`
	CurrentPrice  float64                 `json:"current_price"`
	Action        TradingAction           `json:"action"`
	BuyPrice      optional.Option[float64] `json:"buy_price,omitempty"`
	Quantity      optional.Option[float64] `json:"quantity,omitempty"`
	ActiveOrderID optional.Option[string]  `json:"active_order_id,omitempty"`
	// SignalWeights maps a signal step key to the weight it contributed.
	SignalWeights map[string]float64 `json:"signal_weights"`
	// Data is an auxiliary slot for cross-cutting values. Access it through
	// TypedKey accessors so a missing key reads as None rather than a failed
	// type assertion.
	Data map[string]any `json:"data,omitempty"`
}

// NewTradingContext creates a fresh context for one pipeline execution.
func NewTradingContext(pipelineID int64, symbol string, market MarketType, price float64) TradingContext {
	return TradingContext{
		PipelineID:    pipelineID,
		ExecutionID:   newExecutionID(),
		Symbol:        symbol,
		Market:        market,
		CurrentPrice:  price,
		Action:        ActionNone,
		SignalWeights: make(map[string]float64),
		Data:          make(map[string]any),
	}
}

func newExecutionID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "00000000"
	}

	return hex.EncodeToString(buf)
}

// Clone returns a deep copy of the context. Map fields are copied so the
// clone can be mutated without affecting the original.
func (c TradingContext) Clone() TradingContext {
	clone := c

	clone.SignalWeights = make(map[string]float64, len(c.SignalWeights))
	for k, v := range c.SignalWeights {
		clone.SignalWeights[k] = v
	}

	clone.Data = make(map[string]any, len(c.Data))
	for k, v := range c.Data {
		clone.Data[k] = v
	}

	return clone
}

// WithSignalWeight returns a copy of the context with the given signal weight
// recorded under the step key. An existing entry for the key is overwritten.
func (c TradingContext) WithSignalWeight(stepKey string, weight float64) TradingContext {
	clone := c.Clone()
	clone.SignalWeights[stepKey] = weight

	return clone
}

// TotalSignalWeight sums the contributed signal weights.
func (c TradingContext) TotalSignalWeight() float64 {
	var total float64
	for _, w := range c.SignalWeights {
		total += w
	}

	return total
}

// TypedKey names an auxiliary context value together with its Go type, so a
// lookup can never silently succeed with the wrong type.
type TypedKey[T any] struct {
	name string
}

// NewTypedKey creates a typed key for the auxiliary data slot.
func NewTypedKey[T any](name string) TypedKey[T] {
	return TypedKey[T]{name: name}
}

// Name returns the key's string name as stored in the context.
func (k TypedKey[T]) Name() string {
	return k.name
}

// GetData reads an auxiliary value from the context. An absent key or a value
// of the wrong type reads as None.
func GetData[T any](c TradingContext, key TypedKey[T]) optional.Option[T] {
	raw, ok := c.Data[key.name]
	if !ok {
		return optional.None[T]()
	}

	value, ok := raw.(T)
	if !ok {
		return optional.None[T]()
	}

	return optional.Some(value)
}

// WithData returns a copy of the context with the auxiliary value set.
func WithData[T any](c TradingContext, key TypedKey[T], value T) TradingContext {
	clone := c.Clone()
	clone.Data[key.name] = value

	return clone
}
