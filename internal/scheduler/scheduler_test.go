package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/mocks"
)

type nopLogSink struct{}

func (nopLogSink) WriteExecutionLog(ctx context.Context, record types.ExecutionLog) error {
	return nil
}

type countingStep struct {
	key   string
	count atomic.Int64
	price atomic.Value
}

func (s *countingStep) Key() string { return s.key }

func (s *countingStep) Execute(ctx context.Context, tc types.TradingContext) types.StepResult {
	s.count.Add(1)
	s.price.Store(tc.CurrentPrice)

	return types.Continue(tc, "ok")
}

type SchedulerTestSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	candles   *mocks.MockCandleRepository
	scheduler *Scheduler
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (suite *SchedulerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.candles = mocks.NewMockCandleRepository(suite.ctrl)

	runner := pipeline.NewRunner(logger.NewNopLogger(), nopLogSink{})
	suite.scheduler = New(logger.NewNopLogger(), suite.candles, runner)
}

func (suite *SchedulerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SchedulerTestSuite) latestCandle(close float64) []types.Candlestick {
	return []types.Candlestick{{
		Symbol:    "BTCUSDT",
		Market:    types.MarketTypeSpot,
		Timeframe: types.TimeframeOneMinute,
		OpenTime:  time.Now(),
		Close:     close,
		Volume:    1,
	}}
}

func (suite *SchedulerTestSuite) TestExecutesOnIntervalUntilCancelled() {
	suite.candles.EXPECT().
		QueryCandles(gomock.Any(), gomock.Any()).
		Return(suite.latestCandle(50000), nil).
		AnyTimes()

	step := &countingStep{key: "probe"}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	suite.scheduler.Run(ctx, []Pipeline{{
		ID:             1,
		Symbol:         "BTCUSDT",
		Market:         types.MarketTypeSpot,
		Interval:       10 * time.Millisecond,
		PriceTimeframe: types.TimeframeOneMinute,
		Steps:          []pipeline.Step{step},
	}})

	// Immediate run plus at least one tick.
	suite.GreaterOrEqual(step.count.Load(), int64(2))
	suite.Equal(50000.0, step.price.Load())
}

func (suite *SchedulerTestSuite) TestPipelinesRunConcurrently() {
	suite.candles.EXPECT().
		QueryCandles(gomock.Any(), gomock.Any()).
		Return(suite.latestCandle(50000), nil).
		AnyTimes()

	first := &countingStep{key: "first"}
	second := &countingStep{key: "second"}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	suite.scheduler.Run(ctx, []Pipeline{
		{ID: 1, Symbol: "BTCUSDT", Market: types.MarketTypeSpot, Interval: 10 * time.Millisecond, PriceTimeframe: types.TimeframeOneMinute, Steps: []pipeline.Step{first}},
		{ID: 2, Symbol: "ETHUSDT", Market: types.MarketTypeSpot, Interval: 10 * time.Millisecond, PriceTimeframe: types.TimeframeOneMinute, Steps: []pipeline.Step{second}},
	})

	suite.GreaterOrEqual(first.count.Load(), int64(1))
	suite.GreaterOrEqual(second.count.Load(), int64(1))
}

func (suite *SchedulerTestSuite) TestTickWithoutCandlesIsSkipped() {
	suite.candles.EXPECT().
		QueryCandles(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	step := &countingStep{key: "probe"}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	suite.scheduler.Run(ctx, []Pipeline{{
		ID:             1,
		Symbol:         "BTCUSDT",
		Market:         types.MarketTypeSpot,
		Interval:       10 * time.Millisecond,
		PriceTimeframe: types.TimeframeOneMinute,
		Steps:          []pipeline.Step{step},
	}})

	suite.Equal(int64(0), step.count.Load())
}
