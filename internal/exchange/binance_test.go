package exchange

import (
	"context"
	"testing"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// fakeCreateOrderService records the order parameters it was built with.
type fakeCreateOrderService struct {
	symbol    string
	side      binance.SideType
	orderType binance.OrderType
	quantity  string
	response  *binance.CreateOrderResponse
	err       error
}

func (s *fakeCreateOrderService) Symbol(symbol string) CreateOrderService {
	s.symbol = symbol
	return s
}

func (s *fakeCreateOrderService) Side(side binance.SideType) CreateOrderService {
	s.side = side
	return s
}

func (s *fakeCreateOrderService) Type(orderType binance.OrderType) CreateOrderService {
	s.orderType = orderType
	return s
}

func (s *fakeCreateOrderService) Quantity(quantity string) CreateOrderService {
	s.quantity = quantity
	return s
}

func (s *fakeCreateOrderService) Do(ctx context.Context) (*binance.CreateOrderResponse, error) {
	return s.response, s.err
}

type fakeBinanceClient struct {
	service *fakeCreateOrderService
}

func (c *fakeBinanceClient) NewCreateOrderService() CreateOrderService {
	return c.service
}

type BinanceExecutorTestSuite struct {
	suite.Suite

	service  *fakeCreateOrderService
	executor *BinanceExecutor
}

func TestBinanceExecutorSuite(t *testing.T) {
	suite.Run(t, new(BinanceExecutorTestSuite))
}

func (suite *BinanceExecutorTestSuite) SetupTest() {
	suite.service = &fakeCreateOrderService{
		response: &binance.CreateOrderResponse{OrderID: 12345},
	}
	suite.executor = newBinanceExecutorWithClient(&fakeBinanceClient{service: suite.service}, logger.NewNopLogger())
}

func (suite *BinanceExecutorTestSuite) buyOrder(quantity float64) types.Order {
	return types.Order{
		ID:       "order-1",
		Symbol:   "BTCUSDT",
		Market:   types.MarketTypeSpot,
		Side:     types.OrderSideBuy,
		Quantity: decimal.NewFromFloat(quantity),
		Price:    decimal.NewFromFloat(50000),
		Status:   types.OrderStatusPending,
	}
}

func (suite *BinanceExecutorTestSuite) TestSubmitBuyOrder() {
	exchangeOrderID, err := suite.executor.SubmitOrder(context.Background(), suite.buyOrder(0.5))

	suite.NoError(err)
	suite.Equal("12345", exchangeOrderID)
	suite.Equal("BTCUSDT", suite.service.symbol)
	suite.Equal(binance.SideTypeBuy, suite.service.side)
	suite.Equal(binance.OrderTypeMarket, suite.service.orderType)
	suite.Equal("0.50000000", suite.service.quantity)
}

func (suite *BinanceExecutorTestSuite) TestSubmitSellOrder() {
	order := suite.buyOrder(0.5)
	order.Side = types.OrderSideSell

	_, err := suite.executor.SubmitOrder(context.Background(), order)

	suite.NoError(err)
	suite.Equal(binance.SideTypeSell, suite.service.side)
}

func (suite *BinanceExecutorTestSuite) TestZeroQuantityRejected() {
	_, err := suite.executor.SubmitOrder(context.Background(), suite.buyOrder(0))

	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *BinanceExecutorTestSuite) TestAPIFailureWrapped() {
	suite.service.err = errors.New(errors.ErrCodeAPIFailure, "insufficient balance")

	_, err := suite.executor.SubmitOrder(context.Background(), suite.buyOrder(0.5))

	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeOrderFailed))
}
