// Package goodmorning compares today's expected feels-like temperature
// against yesterday's and turns the result into a one-line morning report.
package goodmorning

import "math"

// Stats summarizes a sequence of readings.
type Stats struct {
	Min   float64
	Max   float64
	Avg   float64
	Count int
}

// ComputeStats reduces values to {min, max, mean, count} in a single pass.
// On empty input Count is 0, Avg is NaN, and Min/Max keep their seeds
// (+Inf and -Inf); callers that care gate on Count. No window size is
// assumed here; truncating to "the first 24 hours" is the caller's job.
func ComputeStats(values []float64) Stats {
	stats := Stats{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}

	sum := 0.0
	for _, v := range values {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
		stats.Count++
	}

	stats.Avg = sum / float64(stats.Count)
	return stats
}
