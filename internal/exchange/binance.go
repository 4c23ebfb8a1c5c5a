// Package exchange implements the order executor port against real and
// simulated exchanges.
package exchange

import (
	"context"
	"strconv"

	"github.com/adshao/go-binance/v2"
	"go.uber.org/zap"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/internal/utils"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// DecimalPrecision is the quantity precision used when formatting orders.
// 8 decimals covers satoshi-level quantities for BTC-like assets. Production
// systems should use symbol-specific precision from Binance exchange info.
const DecimalPrecision = 8

// CreateOrderService is the subset of the Binance order API this executor
// uses, abstracted for mocking.
type CreateOrderService interface {
	Symbol(symbol string) CreateOrderService
	Side(side binance.SideType) CreateOrderService
	Type(orderType binance.OrderType) CreateOrderService
	Quantity(quantity string) CreateOrderService
	Do(ctx context.Context) (*binance.CreateOrderResponse, error)
}

// BinanceClient abstracts the Binance client for testing.
type BinanceClient interface {
	NewCreateOrderService() CreateOrderService
}

type realBinanceClient struct {
	client *binance.Client
}

func (r *realBinanceClient) NewCreateOrderService() CreateOrderService {
	return &realCreateOrderService{service: r.client.NewCreateOrderService()}
}

type realCreateOrderService struct {
	service *binance.CreateOrderService
}

func (s *realCreateOrderService) Symbol(symbol string) CreateOrderService {
	s.service = s.service.Symbol(symbol)

	return s
}

func (s *realCreateOrderService) Side(side binance.SideType) CreateOrderService {
	s.service = s.service.Side(side)

	return s
}

func (s *realCreateOrderService) Type(orderType binance.OrderType) CreateOrderService {
	s.service = s.service.Type(orderType)

	return s
}

func (s *realCreateOrderService) Quantity(quantity string) CreateOrderService {
	s.service = s.service.Quantity(quantity)

	return s
}

func (s *realCreateOrderService) Do(ctx context.Context) (*binance.CreateOrderResponse, error) {
	return s.service.Do(ctx)
}

// BinanceConfig configures the Binance order executor.
type BinanceConfig struct {
	APIKey    string `yaml:"api_key" validate:"required"`
	SecretKey string `yaml:"secret_key" validate:"required"`
	// BaseURL overrides the API endpoint. Takes precedence over UseTestnet.
	BaseURL    string `yaml:"base_url"`
	UseTestnet bool   `yaml:"use_testnet"`
}

// BinanceExecutor submits market orders to Binance spot.
type BinanceExecutor struct {
	client BinanceClient
	logger *logger.Logger
}

// NewBinanceExecutor creates an order executor against the Binance API.
func NewBinanceExecutor(config BinanceConfig, log *logger.Logger) *BinanceExecutor {
	if config.UseTestnet {
		binance.UseTestnet = true
	}

	client := binance.NewClient(config.APIKey, config.SecretKey)
	if config.BaseURL != "" {
		client.BaseURL = config.BaseURL
	}

	return &BinanceExecutor{
		client: &realBinanceClient{client: client},
		logger: log,
	}
}

// newBinanceExecutorWithClient creates an executor with a custom client for
// testing.
func newBinanceExecutorWithClient(client BinanceClient, log *logger.Logger) *BinanceExecutor {
	return &BinanceExecutor{
		client: client,
		logger: log,
	}
}

// SubmitOrder places the order as a market order and returns the Binance
// order id.
func (e *BinanceExecutor) SubmitOrder(ctx context.Context, order types.Order) (string, error) {
	var side binance.SideType

	switch order.Side {
	case types.OrderSideBuy:
		side = binance.SideTypeBuy
	case types.OrderSideSell:
		side = binance.SideTypeSell
	default:
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "unsupported order side: %s", order.Side)
	}

	quantity, _ := order.Quantity.Float64()
	if quantity <= 0 {
		return "", errors.New(errors.ErrCodeInvalidParameter, "order quantity must be greater than zero")
	}

	rounded := utils.RoundToDecimalPrecision(quantity, DecimalPrecision)
	if rounded <= 0 {
		return "", errors.Newf(errors.ErrCodeInvalidParameter,
			"order quantity %.8f is too small after rounding to %d decimal places",
			quantity, DecimalPrecision)
	}

	response, err := e.client.NewCreateOrderService().
		Symbol(order.Symbol).
		Side(side).
		Type(binance.OrderTypeMarket).
		Quantity(strconv.FormatFloat(rounded, 'f', DecimalPrecision, 64)).
		Do(ctx)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeOrderFailed, "failed to place order on Binance", err)
	}

	exchangeOrderID := strconv.FormatInt(response.OrderID, 10)

	e.logger.Info("order submitted to Binance",
		zap.String("order_id", order.ID),
		zap.String("exchange_order_id", exchangeOrderID),
		zap.String("symbol", order.Symbol),
		zap.String("side", string(order.Side)),
	)

	return exchangeOrderID, nil
}
