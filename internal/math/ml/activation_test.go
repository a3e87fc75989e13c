package ml

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivation_F(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid.F(0))
	assert.InDelta(t, 1.0/(1.0+math.Exp(-2)), Sigmoid.F(2), 1e-12)
	assert.Equal(t, 0.0, TanH.F(0))
	assert.InDelta(t, math.Tanh(0.3), TanH.F(0.3), 1e-12)
	assert.Equal(t, 42.0, Linear.F(42))

	// extreme values stay finite
	assert.False(t, math.IsNaN(Sigmoid.F(-1e6)))
	assert.InDelta(t, 0.0, Sigmoid.F(-1e6), 1e-12)
	assert.Equal(t, 1.0, Sigmoid.F(1e6))
}

func TestActivation_D(t *testing.T) {
	d, err := Sigmoid.D(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.25, d)

	d, err = TanH.D(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.75, d)

	_, err = Linear.D(0.5)
	assert.ErrorIs(t, err, UnsupportedOperationErr)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"linear", "Sigmoid", "TANH"} {
		a, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), a.Name())
	}
}
