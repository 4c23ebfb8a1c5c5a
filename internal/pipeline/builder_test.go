package pipeline

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/quantpipe/quantpipe/internal/params"
)

type BuilderTestSuite struct {
	suite.Suite

	registry *Registry
	deps     Dependencies
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (suite *BuilderTestSuite) SetupTest() {
	suite.registry = NewRegistry()
	suite.registry.Register(stubDefinition("check_position", "Check Position"))
	suite.registry.Register(stubDefinition("ema_crossover", "EMA Crossover"))
	suite.registry.Register(StepDefinition{
		Key:  "entry",
		Name: "Entry",
		Params: []params.ParameterDef{
			params.Decimal("trade_amount", "Trade Amount", "", 0, 1e9).WithRequired(),
		},
		Factory: func(p params.ValidatedParams, deps Dependencies) Step {
			return &stubStep{key: "entry"}
		},
	})
	suite.deps = Dependencies{}
}

func (suite *BuilderTestSuite) TestSortsByAscendingOrder() {
	configs := []StepConfig{
		{StepKey: "entry", Order: 30, IsEnabled: true, Parameters: map[string]string{"trade_amount": "100"}},
		{StepKey: "check_position", Order: 10, IsEnabled: true},
		{StepKey: "ema_crossover", Order: 20, IsEnabled: true},
	}

	steps, errs := BuildSteps(suite.registry, suite.deps, configs)
	suite.Empty(errs)
	suite.Len(steps, 3)
	suite.Equal("check_position", steps[0].Key())
	suite.Equal("ema_crossover", steps[1].Key())
	suite.Equal("entry", steps[2].Key())
}

func (suite *BuilderTestSuite) TestEqualOrderKeepsListPosition() {
	configs := []StepConfig{
		{StepKey: "ema_crossover", Order: 10, IsEnabled: true},
		{StepKey: "check_position", Order: 10, IsEnabled: true},
	}

	steps, errs := BuildSteps(suite.registry, suite.deps, configs)
	suite.Empty(errs)
	suite.Len(steps, 2)
	suite.Equal("ema_crossover", steps[0].Key())
	suite.Equal("check_position", steps[1].Key())
}

func (suite *BuilderTestSuite) TestDisabledConfigSkipped() {
	configs := []StepConfig{
		{StepKey: "check_position", Order: 10, IsEnabled: false},
		{StepKey: "ema_crossover", Order: 20, IsEnabled: true},
	}

	steps, errs := BuildSteps(suite.registry, suite.deps, configs)
	suite.Empty(errs)
	suite.Len(steps, 1)
	suite.Equal("ema_crossover", steps[0].Key())
}

func (suite *BuilderTestSuite) TestUnknownKeySkippedSilently() {
	configs := []StepConfig{
		{StepKey: "removed_step_kind", Order: 5, IsEnabled: true},
		{StepKey: "check_position", Order: 10, IsEnabled: true},
	}

	steps, errs := BuildSteps(suite.registry, suite.deps, configs)
	suite.Empty(errs)
	suite.Len(steps, 1)
	suite.Equal("check_position", steps[0].Key())
}

func (suite *BuilderTestSuite) TestValidationErrorsAccumulateAndBuildIsAllOrNothing() {
	suite.registry.Register(StepDefinition{
		Key:  "macd_crossover",
		Name: "MACD",
		Params: []params.ParameterDef{
			params.Int("fast_period", "Fast Period", "", 1, 100).WithRequired(),
		},
		Factory: func(p params.ValidatedParams, deps Dependencies) Step {
			return &stubStep{key: "macd_crossover"}
		},
	})

	configs := []StepConfig{
		{StepKey: "check_position", Order: 10, IsEnabled: true},
		{StepKey: "entry", Order: 40, IsEnabled: true, Parameters: map[string]string{}},
		{StepKey: "macd_crossover", Order: 20, IsEnabled: true, Parameters: map[string]string{"fast_period": "zero"}},
	}

	steps, errs := BuildSteps(suite.registry, suite.deps, configs)
	suite.Nil(steps)
	suite.Len(errs, 2)

	// Errors keep build order
	suite.Equal("macd_crossover", errs[0].StepKey)
	suite.Equal("entry", errs[1].StepKey)
}

func (suite *BuilderTestSuite) TestEmptyConfigList() {
	steps, errs := BuildSteps(suite.registry, suite.deps, nil)
	suite.Empty(errs)
	suite.Empty(steps)
}
