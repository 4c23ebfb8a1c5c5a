package types

import "time"

// ExecutionLog is one audit record per executed step. Records are
// write-only from the engine's point of view; the trace UI reads them.
type ExecutionLog struct {
	PipelineID  int64       `json:"pipeline_id"`
	ExecutionID string      `json:"execution_id"`
	StepKey     string      `json:"step_key"`
	Outcome     StepOutcome `json:"outcome"`
	Message     string      `json:"message"`
	// ContextSnapshot is the JSON serialization of the context as it was
	// before the step ran.
	ContextSnapshot string    `json:"context_snapshot"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}
