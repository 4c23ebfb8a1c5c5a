package steps

import (
	"context"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/mocks"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

type EntryStepTestSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	executor *mocks.MockTradeExecutor
	step     pipeline.Step
}

func TestEntryStepSuite(t *testing.T) {
	suite.Run(t, new(EntryStepTestSuite))
}

func (suite *EntryStepTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.executor = mocks.NewMockTradeExecutor(suite.ctrl)

	deps := pipeline.Dependencies{Executor: suite.executor}
	suite.step = buildStep(suite.T(), EntryDefinition(), map[string]string{
		"trade_amount": "1000",
	}, deps)
}

func (suite *EntryStepTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EntryStepTestSuite) contextWithWeights(weights map[string]float64) types.TradingContext {
	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	for k, v := range weights {
		tc.SignalWeights[k] = v
	}

	return tc
}

func (suite *EntryStepTestSuite) TestTotalWeightAboveBuyThresholdBuys() {
	tc := suite.contextWithWeights(map[string]float64{"a": 0.3, "b": 0.3})

	suite.executor.EXPECT().
		ExecuteBuy(gomock.Any(), gomock.Any(), 1000.0/50000.0).
		DoAndReturn(func(ctx context.Context, tc types.TradingContext, quantity float64) (types.TradingContext, string, error) {
			updated := tc.Clone()
			updated.Action = types.ActionHold
			updated.ActiveOrderID = optional.Some("order-1")
			return updated, "placed buy order order-1", nil
		})

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Equal(optional.Some("order-1"), result.Context.ActiveOrderID)
	suite.Contains(result.Message, "order-1")
}

func (suite *EntryStepTestSuite) TestWeightInsideBandIsNoTrade() {
	tc := suite.contextWithWeights(map[string]float64{"a": 0.3, "b": -0.1})

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Contains(result.Message, "no trade")
}

func (suite *EntryStepTestSuite) TestBuySignalWhileHoldingIsNoTrade() {
	tc := suite.contextWithWeights(map[string]float64{"a": 0.6})
	tc.Action = types.ActionHold
	tc.ActiveOrderID = optional.Some("order-1")
	tc.Quantity = optional.Some(0.02)

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Contains(result.Message, "no trade")
}

func (suite *EntryStepTestSuite) TestTotalWeightBelowSellThresholdSellsHeldPosition() {
	tc := suite.contextWithWeights(map[string]float64{"a": -0.4, "b": -0.2})
	tc.Action = types.ActionHold
	tc.ActiveOrderID = optional.Some("order-1")
	tc.Quantity = optional.Some(0.02)

	suite.executor.EXPECT().
		ExecuteSell(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tc types.TradingContext) (types.TradingContext, string, error) {
			updated := tc.Clone()
			updated.Action = types.ActionNone
			updated.ActiveOrderID = optional.None[string]()
			updated.Quantity = optional.None[float64]()
			return updated, "placed sell order order-2", nil
		})

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.True(result.Context.ActiveOrderID.IsNone())
}

func (suite *EntryStepTestSuite) TestSellSignalWithoutPositionIsNoTrade() {
	tc := suite.contextWithWeights(map[string]float64{"a": -0.8})

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Contains(result.Message, "no trade")
}

func (suite *EntryStepTestSuite) TestCarriedActionInsideBandStillTrades() {
	// Total weight sits inside the band; the buy action carried from an
	// earlier step drives the trade.
	tc := suite.contextWithWeights(map[string]float64{"a": 0.1})
	tc.Action = types.ActionBuy

	suite.executor.EXPECT().
		ExecuteBuy(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tc, "placed buy order order-3", nil)

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
}

func (suite *EntryStepTestSuite) TestExecutorFailureFailsPipeline() {
	tc := suite.contextWithWeights(map[string]float64{"a": 0.6})

	suite.executor.EXPECT().
		ExecuteBuy(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tc, "", errors.New(errors.ErrCodeOrderFailed, "exchange rejected buy order"))

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeFail, result.Outcome)
	suite.Contains(result.Message, "buy failed")
}

func (suite *EntryStepTestSuite) TestInvalidPriceFails() {
	tc := suite.contextWithWeights(map[string]float64{"a": 0.6})
	tc.CurrentPrice = 0

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeFail, result.Outcome)
	suite.Contains(result.Message, "invalid current price")
}
