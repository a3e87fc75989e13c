package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	input := []float64{0.3, 0.4}

	z := Normalize(input, ZAxis)
	assert.Equal(t, 3, len(z.Input))
	assert.Equal(t, input, z.Input[:2])
	assert.InDelta(t, 1/math.Sqrt(2), z.Factor, 1e-12)
	// length is 0.5 , so the synthetic input fills the remaining 2 - 0.25
	assert.InDelta(t, math.Sqrt(1.75)/math.Sqrt(2), z.Synth, 1e-12)
	assert.Equal(t, z.Synth, z.Input[2])

	m := Normalize(input, Multiplicative)
	assert.InDelta(t, 2.0, m.Factor, 1e-12)
	assert.Equal(t, 0.0, m.Synth)
	assert.Equal(t, 0.0, m.Input[2])
}

func TestNormalize_Zero(t *testing.T) {
	m := Normalize([]float64{0, 0, 0}, Multiplicative)
	assert.False(t, math.IsInf(m.Factor, 0))
	assert.InEpsilon(t, 1/verySmall, m.Factor, 1e-12)

	z := Normalize([]float64{5, 5}, ZAxis)
	assert.Equal(t, 0.0, z.Synth)
}
