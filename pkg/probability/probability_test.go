package probability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestImplied_PositiveOdds tests the decimal odds convention
func TestImplied_PositiveOdds(t *testing.T) {
	assert.InDelta(t, 0.5, Implied(2.0), 1e-12)
	assert.InDelta(t, 0.4, Implied(2.5), 1e-12)
	assert.InDelta(t, 1.0, Implied(1.0), 1e-12)
	assert.InDelta(t, 0.01, Implied(100), 1e-12)
}

// TestImplied_InvalidOdds tests that bad odds collapse to exactly zero
func TestImplied_InvalidOdds(t *testing.T) {
	assert.Equal(t, 0.0, Implied(0))
	assert.Equal(t, 0.0, Implied(-1.5))
	assert.Equal(t, 0.0, Implied(math.NaN()))
	assert.Equal(t, 0.0, Implied(math.Inf(1)))
	assert.Equal(t, 0.0, Implied(math.Inf(-1)))
}

// TestNormalize_Success tests scaling to a unit sum
func TestNormalize_Success(t *testing.T) {
	out := Normalize([]float64{0.5, 0.3, 0.2})
	assert.InDelta(t, 0.5, out[0], 1e-12)
	assert.InDelta(t, 0.3, out[1], 1e-12)
	assert.InDelta(t, 0.2, out[2], 1e-12)

	out = Normalize([]float64{2, 2})
	assert.InDelta(t, 0.5, out[0], 1e-12)
	assert.InDelta(t, 0.5, out[1], 1e-12)

	var sum float64
	for _, p := range Normalize([]float64{0.55, 0.52, 0.31}) {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

// TestNormalize_NonPositiveSum tests the zero fallback
func TestNormalize_NonPositiveSum(t *testing.T) {
	out := Normalize([]float64{0, 0, 0})
	assert.Equal(t, []float64{0, 0, 0}, out)

	out = Normalize([]float64{-1, 0.5})
	assert.Equal(t, []float64{0, 0}, out)
}

// TestNormalize_DoesNotMutateInput tests the input slice stays untouched
func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []float64{2, 2}
	Normalize(in)
	assert.Equal(t, []float64{2, 2}, in)
}

// TestNormalize_Empty tests empty input
func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
}

// TestOverround tests the bookmaker margin helper
func TestOverround(t *testing.T) {
	assert.InDelta(t, 0.05, Overround([]float64{0.55, 0.50}), 1e-12)
	assert.InDelta(t, 0.0, Overround([]float64{0.5, 0.5}), 1e-12)
}
