package types

import "time"

// MarketType identifies the market a pipeline trades on.
type MarketType string

const (
	MarketTypeSpot    MarketType = "SPOT"
	MarketTypeFutures MarketType = "FUTURES"
)

// Timeframe is the candlestick aggregation interval.
type Timeframe string

const (
	TimeframeOneMinute      Timeframe = "1m"
	TimeframeFiveMinutes    Timeframe = "5m"
	TimeframeFifteenMinutes Timeframe = "15m"
	TimeframeOneHour        Timeframe = "1h"
	TimeframeFourHours      Timeframe = "4h"
	TimeframeOneDay         Timeframe = "1d"
)

// Candlestick is a single OHLCV bar.
type Candlestick struct {
	Symbol    string     `yaml:"symbol" json:"symbol" csv:"symbol"`
	Market    MarketType `yaml:"market" json:"market" csv:"market"`
	Timeframe Timeframe  `yaml:"timeframe" json:"timeframe" csv:"timeframe"`
	OpenTime  time.Time  `yaml:"open_time" json:"open_time" csv:"open_time"`
	Open      float64    `yaml:"open" json:"open" csv:"open"`
	High      float64    `yaml:"high" json:"high" csv:"high"`
	Low       float64    `yaml:"low" json:"low" csv:"low"`
	Close     float64    `yaml:"close" json:"close" csv:"close"`
	Volume    float64    `yaml:"volume" json:"volume" csv:"volume"`
}

// CandleQuery describes a historical candle lookup. Results are ordered
// newest-first; Limit bounds the number of returned bars.
type CandleQuery struct {
	Symbol    string
	Market    MarketType
	Timeframe Timeframe
	From      *time.Time
	To        *time.Time
	Limit     int
}

// ClosePrices extracts close prices from candles in chronological order.
// The input is expected newest-first, as returned by the candle repository.
func ClosePrices(candles []Candlestick) []float64 {
	prices := make([]float64, len(candles))
	for i, c := range candles {
		prices[len(candles)-1-i] = c.Close
	}

	return prices
}

// PriceVolumes extracts (close, volume) pairs from candles in chronological
// order. The input is expected newest-first.
func PriceVolumes(candles []Candlestick) ([]float64, []float64) {
	prices := make([]float64, len(candles))
	volumes := make([]float64, len(candles))

	for i, c := range candles {
		prices[len(candles)-1-i] = c.Close
		volumes[len(candles)-1-i] = c.Volume
	}

	return prices, volumes
}
