// Package probability holds odds/probability conversions shared by the
// analysis engine and the model providers.
package probability

import "math"

// Implied converts decimal odds to implied probability.
// Example: 2.50 odds = 1/2.50 = 0.40 = 40%.
// Non-finite or non-positive odds yield 0.
func Implied(odds float64) float64 {
	if math.IsNaN(odds) || math.IsInf(odds, 0) || odds <= 0 {
		return 0
	}
	return 1 / odds
}

// Normalize scales probabilities so they sum to 1. A non-positive sum yields
// a same-length slice of zeros. The input is not modified.
func Normalize(probs []float64) []float64 {
	out := make([]float64, len(probs))

	var sum float64
	for _, p := range probs {
		sum += p
	}
	if sum <= 0 {
		return out
	}

	for i, p := range probs {
		out[i] = p / sum
	}
	return out
}

// Overround is the bookmaker margin baked into a set of implied
// probabilities: their sum minus 1. Fair books sum to exactly 1.
func Overround(probs []float64) float64 {
	var sum float64
	for _, p := range probs {
		sum += p
	}
	return sum - 1
}
