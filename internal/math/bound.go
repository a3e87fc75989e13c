package math

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmath"
)

const (
	// TooSmall is the lowest value a bounded number can take.
	TooSmall = -1.0e20
	// TooBig is the highest value a bounded number can take.
	TooBig = 1.0e20
)

var bound = xmath.Clip(TooSmall, TooBig)

// Bound keeps the number within [TooSmall, TooBig].
// NOTE : NaN values are passed through untouched
func Bound(f float64) float64 {
	return bound(f)
}

// Exp is a bounded version of math.Exp.
func Exp(f float64) float64 {
	return Bound(math.Exp(f))
}
