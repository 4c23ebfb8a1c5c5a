// Package scheduler drives pipeline executions on a wall-clock interval.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/trading"
	"github.com/quantpipe/quantpipe/internal/types"
)

// Pipeline is one scheduled pipeline with its steps already built.
type Pipeline struct {
	ID       int64
	Symbol   string
	Market   types.MarketType
	Interval time.Duration
	// PriceTimeframe is the candle timeframe used to resolve the current
	// price at the start of each execution.
	PriceTimeframe types.Timeframe
	Steps          []pipeline.Step
}

// Scheduler runs each pipeline on its own interval. Executions of one
// pipeline never overlap; different pipelines run concurrently.
type Scheduler struct {
	logger  *logger.Logger
	candles trading.CandleRepository
	runner  *pipeline.Runner
}

// New creates a scheduler.
func New(log *logger.Logger, candles trading.CandleRepository, runner *pipeline.Runner) *Scheduler {
	return &Scheduler{
		logger:  log,
		candles: candles,
		runner:  runner,
	}
}

// Run executes the pipelines until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, pipelines []Pipeline) {
	var wg sync.WaitGroup

	for _, p := range pipelines {
		wg.Add(1)

		go func(p Pipeline) {
			defer wg.Done()
			s.runLoop(ctx, p)
		}(p)
	}

	wg.Wait()
}

func (s *Scheduler) runLoop(ctx context.Context, p Pipeline) {
	s.logger.Info("pipeline scheduled",
		zap.Int64("pipeline_id", p.ID),
		zap.String("symbol", p.Symbol),
		zap.Duration("interval", p.Interval),
	)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	s.executeOnce(ctx, p)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("pipeline stopped", zap.Int64("pipeline_id", p.ID))
			return
		case <-ticker.C:
			s.executeOnce(ctx, p)
		}
	}
}

// executeOnce resolves the current price from the latest candle and runs the
// pipeline once. A tick without price data is skipped, not failed.
func (s *Scheduler) executeOnce(ctx context.Context, p Pipeline) {
	if ctx.Err() != nil {
		return
	}

	latest, err := s.candles.QueryCandles(ctx, types.CandleQuery{
		Symbol:    p.Symbol,
		Market:    p.Market,
		Timeframe: p.PriceTimeframe,
		Limit:     1,
	})
	if err != nil {
		s.logger.Error("failed to resolve current price",
			zap.Int64("pipeline_id", p.ID),
			zap.Error(err),
		)

		return
	}

	if len(latest) == 0 {
		s.logger.Warn("no candles available, skipping tick",
			zap.Int64("pipeline_id", p.ID),
			zap.String("symbol", p.Symbol),
		)

		return
	}

	tc := types.NewTradingContext(p.ID, p.Symbol, p.Market, latest[0].Close)

	result := s.runner.Run(ctx, p.Steps, tc)

	switch result.Outcome {
	case types.OutcomeFail:
		s.logger.Error("pipeline execution failed",
			zap.Int64("pipeline_id", p.ID),
			zap.String("execution_id", tc.ExecutionID),
			zap.String("message", result.Message),
		)
	default:
		s.logger.Info("pipeline execution finished",
			zap.Int64("pipeline_id", p.ID),
			zap.String("execution_id", tc.ExecutionID),
			zap.String("outcome", string(result.Outcome)),
			zap.String("message", result.Message),
		)
	}
}
