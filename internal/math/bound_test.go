package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBound(t *testing.T) {
	tests := map[string]struct {
		in  float64
		out float64
	}{
		"within":    {in: 3.5, out: 3.5},
		"negative":  {in: -7, out: -7},
		"too-big":   {in: 1e25, out: TooBig},
		"too-small": {in: -1e25, out: TooSmall},
		"inf":       {in: math.Inf(1), out: TooBig},
		"neg-inf":   {in: math.Inf(-1), out: TooSmall},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.out, Bound(tt.in))
		})
	}
}

func TestExp(t *testing.T) {
	assert.Equal(t, 1.0, Exp(0))
	assert.Equal(t, TooBig, Exp(1000))
	assert.Equal(t, 0.0, Exp(-1000))
	assert.False(t, math.IsInf(Exp(800), 0))
}
