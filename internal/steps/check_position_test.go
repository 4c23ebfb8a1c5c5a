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

type CheckPositionTestSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	positions *mocks.MockPositionReader
	step      pipeline.Step
}

func TestCheckPositionSuite(t *testing.T) {
	suite.Run(t, new(CheckPositionTestSuite))
}

func (suite *CheckPositionTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.positions = mocks.NewMockPositionReader(suite.ctrl)

	deps := pipeline.Dependencies{Positions: suite.positions}
	suite.step = CheckPositionDefinition().Factory(emptyParams(suite.T()), deps)
}

func (suite *CheckPositionTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CheckPositionTestSuite) TestNoOpenPositionClearsAction() {
	suite.positions.EXPECT().
		GetOpenPosition(gomock.Any(), int64(1)).
		Return(optional.None[types.Position](), nil)

	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	tc.Action = types.ActionHold

	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Equal(types.ActionNone, result.Context.Action)
	suite.True(result.Context.ActiveOrderID.IsNone())
}

func (suite *CheckPositionTestSuite) TestOpenPositionLoadsHoldingState() {
	open := types.Position{
		ID:         "pos-1",
		PipelineID: 1,
		BuyOrderID: "order-1",
		Symbol:     "BTCUSDT",
		EntryPrice: decimal.NewFromFloat(48000),
		Quantity:   decimal.NewFromFloat(0.25),
		Status:     types.PositionStatusOpen,
	}

	suite.positions.EXPECT().
		GetOpenPosition(gomock.Any(), int64(1)).
		Return(optional.Some(open), nil)

	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeContinue, result.Outcome)
	suite.Equal(types.ActionHold, result.Context.Action)
	suite.Equal(optional.Some(48000.0), result.Context.BuyPrice)
	suite.Equal(optional.Some(0.25), result.Context.Quantity)
	suite.Equal(optional.Some("order-1"), result.Context.ActiveOrderID)
}

func (suite *CheckPositionTestSuite) TestRepositoryErrorFails() {
	suite.positions.EXPECT().
		GetOpenPosition(gomock.Any(), int64(1)).
		Return(optional.None[types.Position](), errors.New(errors.ErrCodeQueryFailed, "db down"))

	tc := types.NewTradingContext(1, "BTCUSDT", types.MarketTypeSpot, 50000)
	result := suite.step.Execute(context.Background(), tc)

	suite.Equal(types.OutcomeFail, result.Outcome)
	suite.Contains(result.Message, "failed to load position")
}
