package net

import (
	"math"
	"math/rand"
	"testing"

	"github.com/drakos74/free-net/internal/math/ml"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	xorInput = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorIdeal = [][]float64{{0}, {1}, {1}, {0}}
)

func newXOR(seed int64) *Network {
	return New(rand.New(rand.NewSource(seed))).
		Add(2, ml.Linear).
		Add(2, ml.Sigmoid).
		Add(1, ml.Sigmoid)
}

func TestNetwork_Structure(t *testing.T) {
	network := newXOR(1)

	layers := network.Layers()
	require.Equal(t, 3, len(layers))

	assert.True(t, layers[0].IsInput())
	assert.False(t, layers[0].IsHidden())
	assert.True(t, layers[1].IsHidden())
	assert.True(t, layers[2].IsOutput())
	assert.False(t, layers[2].IsHidden())

	assert.Nil(t, layers[0].Previous())
	assert.Equal(t, layers[1], layers[0].Next())
	assert.Equal(t, layers[0], layers[1].Previous())
	assert.Nil(t, layers[2].Next())

	assert.Equal(t, layers[0], network.Input())
	assert.Equal(t, layers[2], network.Output())

	assert.True(t, layers[0].HasMatrix())
	assert.True(t, layers[1].HasMatrix())
	assert.False(t, layers[2].HasMatrix())
	assert.Equal(t, 3, len(layers[0].Matrix()))
	assert.Equal(t, 2, len(layers[0].Matrix()[0]))
	assert.Equal(t, 3, len(layers[1].Matrix()))
	assert.Equal(t, 1, len(layers[1].Matrix()[0]))

	assert.Equal(t, 9, network.MatrixSize())
	assert.Equal(t, 5, network.NeuronCount())
	assert.Equal(t, 1, network.HiddenLayerCount())
	assert.Equal(t, []*Layer{layers[1]}, network.HiddenLayers())
	assert.Equal(t, []int{2, 2, 1}, network.Shape())
}

func TestNetwork_WeightRange(t *testing.T) {
	network := New(rand.New(rand.NewSource(5))).Add(10, nil).Add(10, nil).Add(3, nil)
	for _, l := range network.Layers() {
		for _, row := range l.Matrix() {
			for _, w := range row {
				assert.GreaterOrEqual(t, w, minWeight)
				assert.Less(t, w, maxWeight)
			}
		}
	}
}

func TestNetwork_ComputeOutputs(t *testing.T) {
	network := New(rand.New(rand.NewSource(1))).
		Add(2, ml.Linear).
		Add(1, ml.Linear)

	m := network.Input().Matrix()
	m[0][0] = 0.5
	m[1][0] = -2
	m[2][0] = 1 // threshold

	out, err := network.ComputeOutputs([]float64{4, 1})
	require.NoError(t, err)
	assert.Equal(t, xmath.Vector{1 + 0.5*4 - 2*1}, out)
	// input layer is not activated
	assert.Equal(t, xmath.Vector{4, 1}, network.Input().Fire())
}

func TestNetwork_ComputeOutputs_Activation(t *testing.T) {
	network := New(rand.New(rand.NewSource(1))).
		Add(1, ml.Sigmoid).
		Add(1, ml.Sigmoid)

	m := network.Input().Matrix()
	m[0][0] = 1
	m[1][0] = 0

	// the input layer passes 3 through, even with a sigmoid activation
	out, err := network.ComputeOutputs([]float64{3})
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+math.Exp(-3)), out[0], 1e-12)
}

func TestNetwork_ComputeOutputs_Deterministic(t *testing.T) {
	network := newXOR(11)
	for _, in := range xorInput {
		first, err := network.ComputeOutputs(in)
		require.NoError(t, err)
		expected := first.Copy()
		for i := 0; i < 5; i++ {
			again, err := network.ComputeOutputs(in)
			require.NoError(t, err)
			assert.Equal(t, expected, again)
		}
	}
}

func TestNetwork_ComputeOutputs_SizeMismatch(t *testing.T) {
	network := newXOR(1)

	tests := map[string][]float64{
		"empty": {},
		"short": {1},
		"long":  {1, 0, 1},
		"nil":   nil,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := network.ComputeOutputs(input)
			assert.ErrorIs(t, err, SizeMismatchErr)
		})
	}

	_, err := New(nil).ComputeOutputs([]float64{1})
	assert.ErrorIs(t, err, SizeMismatchErr)
}

func TestNetwork_CalculateError(t *testing.T) {
	network := New(rand.New(rand.NewSource(1))).
		Add(1, ml.Linear).
		Add(1, ml.Linear)
	m := network.Input().Matrix()
	m[0][0] = 1
	m[1][0] = 0

	// identity network, the error comes only from the ideal offset
	e, err := network.CalculateError([][]float64{{1}, {2}}, [][]float64{{2}, {3}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, e, 1e-12)

	e, err = newXOR(1).CalculateError(xorInput, xorIdeal)
	require.NoError(t, err)
	assert.Greater(t, e, 0.0)
	assert.Less(t, e, 1.0)
}

func TestNetwork_CalculateError_SizeMismatch(t *testing.T) {
	network := newXOR(1)

	_, err := network.CalculateError(xorInput, xorIdeal[:3])
	assert.ErrorIs(t, err, SizeMismatchErr)

	_, err = network.CalculateError(xorInput, [][]float64{{0}, {1}, {1, 0}, {0}})
	assert.ErrorIs(t, err, SizeMismatchErr)

	_, err = network.CalculateError([][]float64{{0, 0}, {0}, {1, 0}, {1, 1}}, xorIdeal)
	assert.ErrorIs(t, err, SizeMismatchErr)
}

func TestNetwork_Reset(t *testing.T) {
	network := newXOR(1)
	before := network.Clone(rand.New(rand.NewSource(2)))
	require.True(t, network.Equals(before))

	network.Reset()
	assert.False(t, network.Equals(before))
	assert.Equal(t, before.Shape(), network.Shape())
}

func TestNetwork_Clone(t *testing.T) {
	network := newXOR(1)
	clone := network.Clone(rand.New(rand.NewSource(2)))

	assert.True(t, network.Equals(clone))
	for i, l := range network.Layers() {
		assert.Equal(t, l.Activation(), clone.Layers()[i].Activation())
	}

	// weights are independent
	clone.Input().Matrix()[0][0] += 1
	assert.False(t, network.Equals(clone))

	clone.Reset()
	assert.False(t, network.Equals(clone))

	out1, err := network.ComputeOutputs([]float64{1, 0})
	require.NoError(t, err)
	v := out1.Copy()
	_, err = clone.ComputeOutputs([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, v, network.Output().Fire())
}

func TestNetwork_CloneStructure(t *testing.T) {
	network := newXOR(1)
	clone := network.CloneStructure(rand.New(rand.NewSource(2)))

	assert.Equal(t, network.Shape(), clone.Shape())
	assert.Equal(t, network.MatrixSize(), clone.MatrixSize())
	assert.False(t, network.Equals(clone))

	same := network.CloneStructure(rand.New(rand.NewSource(2)))
	assert.True(t, clone.Equals(same))
}

func TestNetwork_Equals(t *testing.T) {
	network := newXOR(1)

	assert.True(t, network.Equals(network))
	assert.False(t, network.Equals(nil))

	shorter := New(nil).Add(2, nil).Add(1, nil)
	assert.False(t, network.Equals(shorter))

	wider := New(nil).Add(2, nil).Add(3, nil).Add(1, nil)
	assert.False(t, network.Equals(wider))
}

func TestNetwork_AddLayer(t *testing.T) {
	network := newXOR(1)
	assert.Panics(t, func() {
		network.AddLayer(network.Output())
	})
	assert.Panics(t, func() {
		NewLayer(0, ml.Sigmoid)
	})
}

func TestNetwork_CloneKeepsSource(t *testing.T) {
	network := newXOR(1)
	twin := newXOR(1)
	require.True(t, network.Equals(twin))

	// cloning must not consume the random source of the cloned network
	_ = network.Clone(rand.New(rand.NewSource(2)))

	network.Reset()
	twin.Reset()
	assert.True(t, network.Equals(twin))
}
