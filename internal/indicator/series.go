// Package indicator provides pure numeric functions over ordered price and
// volume series. Inputs are chronological (oldest first). No state, no I/O.
package indicator

import (
	"math"

	"github.com/moznion/go-optional"
)

// SMA returns the simple moving average of the last `period` values.
// Returns None if the series is shorter than the period or the period is
// not positive.
func SMA(period int, series []float64) optional.Option[float64] {
	if period <= 0 || len(series) < period {
		return optional.None[float64]()
	}

	var sum float64
	for _, v := range series[len(series)-period:] {
		sum += v
	}

	return optional.Some(sum / float64(period))
}

// EMASeries returns the exponential moving average series. The seed is the
// simple average of the first `period` values; the remainder is smoothed
// with k = 2/(period+1). Returns an empty slice if the series is shorter
// than the period.
func EMASeries(period int, series []float64) []float64 {
	if period <= 0 || len(series) < period {
		return nil
	}

	var seed float64
	for _, v := range series[:period] {
		seed += v
	}
	seed /= float64(period)

	k := 2.0 / (float64(period) + 1.0)

	result := make([]float64, 0, len(series)-period+1)
	result = append(result, seed)

	prev := seed
	for _, v := range series[period:] {
		prev = v*k + prev*(1.0-k)
		result = append(result, prev)
	}

	return result
}

// EMA returns the last value of EMASeries, or None when the series is too
// short.
func EMA(period int, series []float64) optional.Option[float64] {
	ema := EMASeries(period, series)
	if len(ema) == 0 {
		return optional.None[float64]()
	}

	return optional.Some(ema[len(ema)-1])
}

// StdDev returns the population standard deviation (divide by N). Returns
// None for fewer than two samples.
func StdDev(series []float64) optional.Option[float64] {
	if len(series) < 2 {
		return optional.None[float64]()
	}

	var mean float64
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	var variance float64
	for _, v := range series {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(series))

	return optional.Some(math.Sqrt(variance))
}

// RollingStdDev returns the population standard deviation of each sliding
// window of size `window`, one output per valid window start.
func RollingStdDev(window int, series []float64) []float64 {
	if window < 2 || len(series) < window {
		return nil
	}

	result := make([]float64, 0, len(series)-window+1)
	for i := 0; i+window <= len(series); i++ {
		sd := StdDev(series[i : i+window])
		result = append(result, sd.Unwrap())
	}

	return result
}

// Returns computes the pairwise relative change of the series. A zero
// previous value yields 0 rather than a division error.
func Returns(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}

	result := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1]
		if prev == 0 {
			result = append(result, 0)
			continue
		}

		result = append(result, (series[i]-prev)/prev)
	}

	return result
}

// VWAP returns the volume-weighted average price for parallel price and
// volume series. Returns None when the input is empty, the lengths differ,
// or total volume is zero.
func VWAP(prices, volumes []float64) optional.Option[float64] {
	if len(prices) == 0 || len(prices) != len(volumes) {
		return optional.None[float64]()
	}

	var weighted, totalVolume float64
	for i, p := range prices {
		weighted += p * volumes[i]
		totalVolume += volumes[i]
	}

	if totalVolume == 0 {
		return optional.None[float64]()
	}

	return optional.Some(weighted / totalVolume)
}

// Momentum returns the percentage change over `lookback` steps back from the
// end of the series. Returns None when the series is too short or the
// reference value is zero.
func Momentum(lookback int, series []float64) optional.Option[float64] {
	if lookback <= 0 || len(series) <= lookback {
		return optional.None[float64]()
	}

	reference := series[len(series)-1-lookback]
	if reference == 0 {
		return optional.None[float64]()
	}

	return optional.Some((series[len(series)-1] - reference) / reference)
}

// Classify maps a raw indicator value to a direction: +1 when strictly above
// the threshold, -1 when strictly below its negation, 0 otherwise. Values
// exactly at the boundary are neutral.
func Classify(value, threshold float64) int {
	switch {
	case value > threshold:
		return 1
	case value < -threshold:
		return -1
	default:
		return 0
	}
}
