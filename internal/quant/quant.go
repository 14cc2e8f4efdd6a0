// Package quant holds the null-safe arithmetic and rolling statistics that
// the scoring components share. Every function degrades silently on
// degenerate input (zero denominators, NaN, short windows) instead of
// returning an error: missing data narrows a score's precision, it must
// never abort the surrounding computation.
package quant

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SafeDivide returns numerator/denominator, or def when the denominator is
// zero or either operand is NaN.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 || math.IsNaN(denominator) || math.IsNaN(numerator) {
		return def
	}
	return numerator / denominator
}

// PercentChange returns the percent change from previous to current, with
// the absolute previous value as the base. Zero or NaN input yields 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 || math.IsNaN(previous) || math.IsNaN(current) {
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}

// Mean returns the arithmetic mean of vals, or 0 for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// StdDev returns the sample standard deviation of vals (n-1 denominator,
// matching the convention of the volatility literature). Fewer than two
// values yield 0.
func StdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	sd := stat.StdDev(vals, nil)
	if math.IsNaN(sd) {
		return 0
	}
	return sd
}

// RollingMean returns the trailing mean at position i over at most window
// values. Positions before a full window use the partial prefix, so the
// result is defined from the first bar on.
func RollingMean(vals []float64, i, window int) float64 {
	if i < 0 || i >= len(vals) || window <= 0 {
		return math.NaN()
	}
	start := i - window + 1
	if start < 0 {
		start = 0
	}
	return stat.Mean(vals[start:i+1], nil)
}

// RollingStdDev returns the trailing sample standard deviation at position
// i over exactly window values. Positions without a full window return NaN,
// so band checks simply skip the start of a series.
func RollingStdDev(vals []float64, i, window int) float64 {
	if window <= 1 || i < window-1 || i >= len(vals) {
		return math.NaN()
	}
	return stat.StdDev(vals[i-window+1:i+1], nil)
}

// DailyReturns converts a close series into close-to-close fractional
// returns, dropping pairs that involve NaN or a zero base.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev, cur := closes[i-1], closes[i]
		if prev == 0 || math.IsNaN(prev) || math.IsNaN(cur) {
			continue
		}
		out = append(out, (cur-prev)/prev)
	}
	return out
}

// CAGR returns the compound annual growth rate as a percentage over the
// given positive values, or 0 when fewer than two usable values exist.
func CAGR(values []float64) float64 {
	usable := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && v > 0 {
			usable = append(usable, v)
		}
	}
	if len(usable) < 2 {
		return 0
	}
	periods := float64(len(usable) - 1)
	return (math.Pow(usable[len(usable)-1]/usable[0], 1/periods) - 1) * 100
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to three decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
