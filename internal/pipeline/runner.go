package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/trading"
	"github.com/quantpipe/quantpipe/internal/types"
)

// Runner executes an ordered step list against an initial context,
// short-circuiting on non-continue outcomes and emitting one audit record
// per executed step.
type Runner struct {
	logger *logger.Logger
	sink   trading.ExecutionLogWriter
}

// NewRunner creates a runner writing audit records to the given sink.
func NewRunner(log *logger.Logger, sink trading.ExecutionLogWriter) *Runner {
	return &Runner{
		logger: log,
		sink:   sink,
	}
}

// Run executes the steps in order. A step only runs when the prior result
// was a continue; once a stop or fail occurs, remaining steps are skipped.
// Cancellation observed before a step forces Stop("Cancelled") without
// running it. The return value is the last result produced, or the initial
// continue for an empty step list.
func (r *Runner) Run(ctx context.Context, steps []Step, initial types.TradingContext) types.StepResult {
	current := types.Continue(initial, "Started")

	for _, step := range steps {
		if !current.IsContinue() {
			break
		}

		if ctx.Err() != nil {
			current = types.Stop("Cancelled")
			break
		}

		snapshot := serializeContext(current.Context)
		startedAt := time.Now()

		result := step.Execute(ctx, current.Context)

		r.emit(ctx, current.Context, step.Key(), result, snapshot, startedAt, time.Now())

		current = result
	}

	return current
}

func (r *Runner) emit(ctx context.Context, tc types.TradingContext, stepKey string, result types.StepResult, snapshot string, startedAt, finishedAt time.Time) {
	record := types.ExecutionLog{
		PipelineID:      tc.PipelineID,
		ExecutionID:     tc.ExecutionID,
		StepKey:         stepKey,
		Outcome:         result.Outcome,
		Message:         result.Message,
		ContextSnapshot: snapshot,
		StartedAt:       startedAt,
		FinishedAt:      finishedAt,
	}

	if err := r.sink.WriteExecutionLog(ctx, record); err != nil {
		// The audit trail is best effort; a failed write never fails the run.
		r.logger.Error("failed to write execution log",
			zap.Int64("pipeline_id", tc.PipelineID),
			zap.String("execution_id", tc.ExecutionID),
			zap.String("step_key", stepKey),
			zap.Error(err),
		)
	}
}

func serializeContext(tc types.TradingContext) string {
	raw, err := json.Marshal(tc)
	if err != nil {
		return "{}"
	}

	return string(raw)
}
