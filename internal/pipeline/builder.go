package pipeline

import (
	"sort"

	"github.com/quantpipe/quantpipe/internal/params"
)

// BuildError aggregates the validation failures of one misconfigured step.
type BuildError struct {
	StepKey string
	Errors  []params.ValidationError
}

// BuildSteps resolves persisted step configurations against the registry
// into runnable steps, ordered by ascending Order. Ties on equal Order keep
// their original list position.
//
// Disabled configs and configs referencing an unregistered step kind are
// skipped. Parameter validation failures accumulate across the whole list;
// when any step fails validation, no steps are returned (the build is
// all-or-nothing) so an operator sees every misconfiguration in one pass.
func BuildSteps(registry *Registry, deps Dependencies, configs []StepConfig) ([]Step, []BuildError) {
	sorted := make([]StepConfig, len(configs))
	copy(sorted, configs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	var (
		steps []Step
		errs  []BuildError
	)

	for _, config := range sorted {
		if !config.IsEnabled {
			continue
		}

		def, found := registry.TryFind(config.StepKey)
		if !found {
			continue
		}

		validated, validationErrs := params.Validate(def.Params, config.Parameters)
		if len(validationErrs) > 0 {
			errs = append(errs, BuildError{
				StepKey: config.StepKey,
				Errors:  validationErrs,
			})

			continue
		}

		steps = append(steps, def.Factory(validated, deps))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return steps, nil
}
