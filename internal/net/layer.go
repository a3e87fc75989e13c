package net

import (
	"fmt"
	"math/rand"

	"github.com/drakos74/free-net/internal/math/ml"
	"github.com/drakos74/go-ex-machina/xmath"
)

const (
	minWeight = -1.0
	maxWeight = 1.0
)

// Layer is a single stage of a feed forward network.
// If the layer is followed by another one, it owns the weight matrix towards it.
// The matrix has one row per neuron plus a last row for the thresholds
// and one column per neuron of the next layer.
type Layer struct {
	neurons    int
	activation ml.Activation
	fire       xmath.Vector
	matrix     xmath.Matrix
	previous   *Layer
	next       *Layer
}

// NewLayer creates a new layer with the given number of neurons.
// The activation is applied to compute the firing values of the layer,
// it is ignored if the layer ends up being the input layer.
func NewLayer(neurons int, activation ml.Activation) *Layer {
	if neurons <= 0 {
		panic(fmt.Sprintf("layer must have at least one neuron: %d", neurons))
	}
	if activation == nil {
		activation = ml.Sigmoid
	}
	return &Layer{
		neurons:    neurons,
		activation: activation,
		fire:       xmath.Vec(neurons),
	}
}

// NeuronCount returns the number of neurons of the layer.
func (l *Layer) NeuronCount() int {
	return l.neurons
}

// Activation returns the activation of the layer.
func (l *Layer) Activation() ml.Activation {
	return l.activation
}

// Fire returns the firing values of the last forward pass.
func (l *Layer) Fire() xmath.Vector {
	return l.fire
}

// Matrix returns the weight and threshold matrix of the layer.
// It is nil for the output layer.
// Changes to the returned matrix apply directly to the layer.
func (l *Layer) Matrix() xmath.Matrix {
	return l.matrix
}

// HasMatrix returns true if the layer owns a weight matrix.
func (l *Layer) HasMatrix() bool {
	return l.matrix != nil
}

// MatrixSize returns the number of cells of the weight matrix.
func (l *Layer) MatrixSize() int {
	if l.next == nil {
		return 0
	}
	return (l.neurons + 1) * l.next.neurons
}

// Previous returns the preceding layer, nil for the input layer.
func (l *Layer) Previous() *Layer {
	return l.previous
}

// Next returns the following layer, nil for the output layer.
func (l *Layer) Next() *Layer {
	return l.next
}

// IsInput returns true for the first layer of the network.
func (l *Layer) IsInput() bool {
	return l.previous == nil
}

// IsOutput returns true for the last layer of the network.
func (l *Layer) IsOutput() bool {
	return l.next == nil
}

// IsHidden returns true for the layers between input and output.
func (l *Layer) IsHidden() bool {
	return !l.IsInput() && !l.IsOutput()
}

// link attaches the next layer and creates the matrix towards it.
func (l *Layer) link(next *Layer, rng *rand.Rand) {
	l.next = next
	next.previous = l
	l.matrix = xmath.Mat(l.neurons + 1).Of(next.neurons)
	l.reset(rng)
}

// reset initialises the matrix with random values in [minWeight, maxWeight).
func (l *Layer) reset(rng *rand.Rand) {
	for i := range l.matrix {
		for j := range l.matrix[i] {
			l.matrix[i][j] = rng.Float64()*(maxWeight-minWeight) + minWeight
		}
	}
}

// load passes the pattern through unprocessed.
func (l *Layer) load(pattern []float64) {
	copy(l.fire, pattern)
}

// compute calculates the firing values out of the previous layer.
func (l *Layer) compute() {
	p := l.previous
	threshold := p.matrix[p.neurons]
	for j := 0; j < l.neurons; j++ {
		sum := threshold[j]
		for i := 0; i < p.neurons; i++ {
			sum += p.fire[i] * p.matrix[i][j]
		}
		l.fire[j] = l.activation.F(sum)
	}
}
