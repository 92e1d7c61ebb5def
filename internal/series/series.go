// Package series provides windowed smoothing and trend classification for
// scalar series such as daily weights.
package series

import "math"

// Trend labels the direction of a series.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// DefaultTrendThreshold is the minimum first-to-last change that counts as
// movement.
const DefaultTrendThreshold = 0.5

// RollingAverage computes a trailing mean over the series. The window shrinks
// at the head of the series (the first point averages one value, the second
// two, and so on up to the window size), so the output has the same length as
// the input. Each point is rounded to one decimal.
func RollingAverage(values []float64, window int) []float64 {
	if len(values) == 0 {
		return []float64{}
	}
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	for i := range values {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, v := range values[start : i+1] {
			sum += v
		}
		out[i] = math.Round(sum/float64(i+1-start)*10) / 10
	}
	return out
}

// Classify compares the first and last values of a series against the change
// threshold. Series shorter than two points are always stable.
func Classify(values []float64, threshold float64) Trend {
	if len(values) < 2 {
		return TrendStable
	}
	delta := values[len(values)-1] - values[0]
	switch {
	case delta > threshold:
		return TrendUp
	case delta < -threshold:
		return TrendDown
	default:
		return TrendStable
	}
}
