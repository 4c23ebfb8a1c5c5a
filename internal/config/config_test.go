package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quantpipe/quantpipe/internal/types"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

const validConfig = `
database:
  url: postgres://localhost:5432/quantpipe
candles:
  path: ./data/candles.db
exchange:
  mode: paper
pipelines:
  - id: 1
    symbol: BTCUSDT
    market: SPOT
    interval: 1m
    steps:
      - step: check_position
        order: 1
        enabled: true
      - step: ema_crossover
        order: 2
        enabled: true
        parameters:
          signal_weight: "1.0"
      - step: entry
        order: 3
        enabled: true
        parameters:
          trade_amount: "1000"
`

func (suite *ConfigTestSuite) TestParseValidConfig() {
	config, err := Parse([]byte(validConfig))

	suite.Require().NoError(err)
	suite.Equal("postgres://localhost:5432/quantpipe", config.Database.URL)
	suite.Equal(ExchangeModePaper, config.Exchange.Mode)
	suite.Require().Len(config.Pipelines, 1)

	p := config.Pipelines[0]
	suite.Equal(int64(1), p.ID)
	suite.Equal(time.Minute, p.Interval.Std())
	suite.Len(p.Steps, 3)
	suite.Equal("ema_crossover", p.Steps[1].StepKey)
	suite.Equal("1.0", p.Steps[1].Parameters["signal_weight"])
}

func (suite *ConfigTestSuite) TestDefaultPriceTimeframe() {
	config, err := Parse([]byte(validConfig))

	suite.Require().NoError(err)
	suite.Equal(types.TimeframeOneMinute, config.Pipelines[0].PriceTimeframe)
}

func (suite *ConfigTestSuite) TestMissingPipelinesRejected() {
	raw := `
database:
  url: postgres://localhost:5432/quantpipe
candles:
  path: ./data/candles.db
exchange:
  mode: paper
pipelines: []
`

	_, err := Parse([]byte(raw))
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestInvalidIntervalRejected() {
	raw := `
database:
  url: postgres://localhost:5432/quantpipe
candles:
  path: ./data/candles.db
exchange:
  mode: paper
pipelines:
  - id: 1
    symbol: BTCUSDT
    market: SPOT
    interval: whenever
    steps:
      - step: entry
        order: 1
        enabled: true
`

	_, err := Parse([]byte(raw))
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBinanceModeRequiresKeys() {
	raw := `
database:
  url: postgres://localhost:5432/quantpipe
candles:
  path: ./data/candles.db
exchange:
  mode: binance
pipelines:
  - id: 1
    symbol: BTCUSDT
    market: SPOT
    interval: 1m
    steps:
      - step: entry
        order: 1
        enabled: true
`

	_, err := Parse([]byte(raw))
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestUnknownMarketRejected() {
	raw := `
database:
  url: postgres://localhost:5432/quantpipe
candles:
  path: ./data/candles.db
exchange:
  mode: paper
pipelines:
  - id: 1
    symbol: BTCUSDT
    market: OPTIONS
    interval: 1m
    steps:
      - step: entry
        order: 1
        enabled: true
`

	_, err := Parse([]byte(raw))
	suite.Error(err)
}
