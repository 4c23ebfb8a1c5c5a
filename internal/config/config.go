// Package config loads and validates the engine's YAML configuration.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/quantpipe/quantpipe/internal/exchange"
	"github.com/quantpipe/quantpipe/internal/pipeline"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// Duration wraps time.Duration so YAML values like "1m" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidParameter, err, "invalid duration %q", raw)
	}

	*d = Duration(parsed)

	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DatabaseConfig points at the PostgreSQL order store.
type DatabaseConfig struct {
	URL string `yaml:"url" validate:"required"`
}

// CandleStoreConfig points at the DuckDB candle database file.
type CandleStoreConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// Exchange modes.
const (
	ExchangeModeBinance = "binance"
	ExchangeModePaper   = "paper"
)

// ExchangeConfig selects and configures the order executor.
type ExchangeConfig struct {
	Mode string `yaml:"mode" validate:"required,oneof=binance paper"`
	// Binance is only validated when Mode selects it.
	Binance exchange.BinanceConfig `yaml:"binance" validate:"-"`
}

// PipelineConfig is one scheduled pipeline: what to trade, how often to
// execute, and the step list.
type PipelineConfig struct {
	ID     int64            `yaml:"id" validate:"required,gt=0"`
	Symbol string           `yaml:"symbol" validate:"required"`
	Market types.MarketType `yaml:"market" validate:"required,oneof=SPOT FUTURES"`
	// Interval is the wall-clock time between executions.
	Interval Duration `yaml:"interval" validate:"required"`
	// PriceTimeframe is the candle timeframe used to resolve the current
	// price at the start of each execution.
	PriceTimeframe types.Timeframe       `yaml:"price_timeframe"`
	Steps          []pipeline.StepConfig `yaml:"steps" validate:"required,min=1,dive"`
}

// Config is the root engine configuration.
type Config struct {
	Database  DatabaseConfig    `yaml:"database" validate:"required"`
	Candles   CandleStoreConfig `yaml:"candles" validate:"required"`
	Exchange  ExchangeConfig    `yaml:"exchange" validate:"required"`
	Pipelines []PipelineConfig  `yaml:"pipelines" validate:"required,min=1,dive"`
}

// Load reads and validates the configuration file at the given path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeNotFound, err, "failed to read config file %s", path)
	}

	return Parse(raw)
}

// Parse decodes and validates raw YAML configuration.
func Parse(raw []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the struct tags plus the cross-field rules the tags cannot
// express.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid config", err)
	}

	if c.Exchange.Mode == ExchangeModeBinance {
		if err := validate.Struct(c.Exchange.Binance); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid binance config", err)
		}
	}

	for i := range c.Pipelines {
		if c.Pipelines[i].PriceTimeframe == "" {
			c.Pipelines[i].PriceTimeframe = types.TimeframeOneMinute
		}
	}

	return nil
}
