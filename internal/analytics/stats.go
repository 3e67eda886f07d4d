package analytics

import (
	"math"

	"github.com/samber/lo"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Finite maps NaN and ±Inf to 0.
func Finite(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

// mean skips non-finite values and returns 0 when none remain.
func mean(values []float64) float64 {
	kept := lo.Filter(values, func(v float64, _ int) bool { return finite(v) })
	if len(kept) == 0 {
		return 0
	}
	return lo.Sum(kept) / float64(len(kept))
}

func meanBy[T any](items []T, f func(T) float64) float64 {
	return mean(lo.Map(items, func(item T, _ int) float64 { return f(item) }))
}

// SumBy adds up f over items, counting non-finite values as 0.
func SumBy[T any](items []T, f func(T) float64) float64 {
	return lo.SumBy(items, func(item T) float64 { return Finite(f(item)) })
}

// ClampIndex bounds a vegetation index to [-1, 1]. NaN collapses to 0.
func ClampIndex(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return lo.Clamp(v, -1, 1)
}

// ClampScore bounds a composite score to [0, 100]. NaN collapses to 0.
func ClampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return lo.Clamp(v, 0, 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ComputeTrend compares the means of the first and second halves of a
// date-ordered series. The middle element of an odd-length series belongs to
// the second half. Non-finite values are dropped first.
func ComputeTrend(series []float64, threshold float64) Trend {
	series = lo.Filter(series, func(v float64, _ int) bool { return finite(v) })
	if len(series) < 2 {
		return TrendStable
	}

	mid := len(series) / 2
	delta := mean(series[mid:]) - mean(series[:mid])

	switch {
	case delta > threshold:
		return TrendIncreasing
	case delta < -threshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
