// Package sensors simulates the environmental monitoring subsystem: a
// background sampler per product, a rolling history, and out-of-range
// alert strings. It reads product bounds and writes sensor readings only;
// stock and request logic never depend on it.
package sensors

import (
	"math"
	"math/rand"
)

// Sample draws a value around bounds: half the time uniformly inside, and
// half the time slightly outside (split evenly between below the minimum
// and above the maximum) so that alerts actually fire. Pure function of
// its inputs, rng included.
func Sample(bounds [2]float64, lowerWiggle, upperWiggle float64, rng *rand.Rand) float64 {
	lo, hi := bounds[0], bounds[1]
	if rng.Float64() < 0.5 {
		return round1(lo + rng.Float64()*(hi-lo))
	}
	if rng.Float64() < 0.5 {
		return round1(lo - lowerWiggle + rng.Float64()*(lowerWiggle-0.1))
	}
	return round1(hi + 0.1 + rng.Float64()*(upperWiggle-0.1))
}

// SampleWithin draws a value strictly inside bounds, used when resolving a
// reported environmental issue.
func SampleWithin(bounds [2]float64, rng *rand.Rand) float64 {
	return round1(bounds[0] + rng.Float64()*(bounds[1]-bounds[0]))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
