package math

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrorCalculation accumulates the squared error of a batch of samples
// and reports the root mean square of it.
// It is not safe for concurrent use, every caller should keep its own.
type ErrorCalculation struct {
	globalError float64
	setSize     int
}

// NewErrorCalculation creates a new error accumulator.
func NewErrorCalculation() *ErrorCalculation {
	return &ErrorCalculation{}
}

// Update adds the squared differences of the given actual and ideal vectors.
// Both vectors must be of the same size.
func (e *ErrorCalculation) Update(actual, ideal []float64) {
	diff := make([]float64, len(ideal))
	floats.SubTo(diff, ideal, actual)
	e.globalError += floats.Dot(diff, diff)
	e.setSize += len(ideal)
}

// RMS returns the root mean square error of everything accumulated so far.
// An empty accumulator reports zero.
func (e *ErrorCalculation) RMS() float64 {
	if e.setSize == 0 {
		return 0
	}
	return math.Sqrt(e.globalError / float64(e.setSize))
}

// Reset clears the accumulator.
func (e *ErrorCalculation) Reset() {
	e.globalError = 0
	e.setSize = 0
}
