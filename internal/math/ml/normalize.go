package ml

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalization defines how an input vector is normalized for a self organizing map.
type Normalization int

const (
	// ZAxis is the most common normalization, it adds a synthetic dimension
	// that brings every input vector to the same length.
	ZAxis Normalization = iota
	// Multiplicative is preferable when the input values are in a very close range.
	Multiplicative
)

const verySmall = 1.0e-30

// Normalized is the outcome of an input normalization.
// Input holds the raw pattern with the synthetic input appended as the last element.
type Normalized struct {
	Input  []float64
	Factor float64
	Synth  float64
}

// Normalize calculates the normalization factor and the synthetic input for the given vector.
func Normalize(input []float64, normalization Normalization) Normalized {
	length := math.Max(floats.Norm(input, 2), verySmall)
	n := float64(len(input))

	var factor, synth float64
	switch normalization {
	case Multiplicative:
		factor = 1.0 / length
	default:
		factor = 1.0 / math.Sqrt(n)
		if d := n - math.Pow(length, 2); d > 0.0 {
			synth = math.Sqrt(d) * factor
		}
	}

	result := make([]float64, len(input)+1)
	copy(result, input)
	result[len(input)] = synth

	return Normalized{
		Input:  result,
		Factor: factor,
		Synth:  synth,
	}
}
