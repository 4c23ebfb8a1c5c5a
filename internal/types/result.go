package types

// StepOutcome is the kind of result a step execution produced.
type StepOutcome string

const (
	// OutcomeContinue proceeds to the next step with an updated context.
	OutcomeContinue StepOutcome = "CONTINUE"
	// OutcomeStop halts the pipeline deliberately. Not an error.
	OutcomeStop StepOutcome = "STOP"
	// OutcomeFail halts the pipeline and is surfaced as an error.
	OutcomeFail StepOutcome = "FAIL"
)

// StepResult is the outcome of one step execution. Context is only
// meaningful when Outcome is OutcomeContinue.
type StepResult struct {
	Outcome StepOutcome    `json:"outcome"`
	Context TradingContext `json:"context"`
	Message string         `json:"message"`
}

// Continue proceeds to the next step with the updated context.
func Continue(ctx TradingContext, message string) StepResult {
	return StepResult{
		Outcome: OutcomeContinue,
		Context: ctx,
		Message: message,
	}
}

// Stop halts the pipeline without treating it as an error.
func Stop(message string) StepResult {
	return StepResult{
		Outcome: OutcomeStop,
		Message: message,
	}
}

// Fail halts the pipeline and marks the execution as failed.
func Fail(message string) StepResult {
	return StepResult{
		Outcome: OutcomeFail,
		Message: message,
	}
}

// IsContinue reports whether execution should advance to the next step.
func (r StepResult) IsContinue() bool {
	return r.Outcome == OutcomeContinue
}
