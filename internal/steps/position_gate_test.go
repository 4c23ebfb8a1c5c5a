package steps

import (
	"context"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/mocks"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

type PositionGateTestSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	positions *mocks.MockPositionReader
	step      pipeline.Step
}

func TestPositionGateSuite(t *testing.T) {
	suite.Run(t, new(PositionGateTestSuite))
}

func (suite *PositionGateTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.positions = mocks.NewMockPositionReader(suite.ctrl)

	deps := pipeline.Dependencies{Positions: suite.positions}
	suite.step = PositionGateDefinition().Factory(emptyParams(suite.T()), deps)
}

func (suite *PositionGateTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PositionGateTestSuite) TestPassesThroughWhenOrderActive() {
	tc := holdingContext()

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Equal("gate passed through", result.Message)
}

func (suite *PositionGateTestSuite) TestPassesThroughWhenActionPending() {
	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	tc.Action = types.ActionBuy

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Equal("gate passed through", result.Message)
}

func (suite *PositionGateTestSuite) TestCleanSlateNoPositionContinues() {
	suite.positions.EXPECT().
		GetOpenPosition(gomock.Any(), int64(1)).
		Return(optional.None[types.Position](), nil)

	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.True(result.Context.ActiveOrderID.IsNone())
}

func (suite *PositionGateTestSuite) TestStalePositionBlocksEntry() {
	open := types.Position{
		ID:         "pos-1",
		PipelineID: 1,
		BuyOrderID: "order-9",
		Symbol:     "BTCUSDT",
		EntryPrice: decimal.NewFromFloat(48000),
		Quantity:   decimal.NewFromFloat(0.5),
		Status:     types.PositionStatusOpen,
	}

	suite.positions.EXPECT().
		GetOpenPosition(gomock.Any(), int64(1)).
		Return(optional.Some(open), nil)

	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Equal(optional.Some("order-9"), result.Context.ActiveOrderID)
}

func (suite *PositionGateTestSuite) TestRecheckErrorStopsSoftly() {
	suite.positions.EXPECT().
		GetOpenPosition(gomock.Any(), int64(1)).
		Return(optional.None[types.Position](), errors.New(errors.ErrCodeQueryFailed, "db down"))

	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeStop, result.Outcome)
	suite.Contains(result.Message, "re-check failed")
}
