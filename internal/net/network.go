package net

import (
	"fmt"
	"math/rand"
	"time"

	netmath "github.com/drakos74/free-net/internal/math"
	"github.com/drakos74/free-net/internal/math/ml"
	"github.com/drakos74/go-ex-machina/xmath"
	"gonum.org/v1/gonum/floats"
)

// Network is a feed forward network.
// The first layer added is the input layer, the last one the output layer,
// any layer in between is a hidden layer.
type Network struct {
	layers []*Layer
	input  *Layer
	output *Layer
	rng    *rand.Rand
}

// New creates an empty network.
// The random source is used for every weight initialisation of the network,
// if nil a time seeded one is created.
func New(rng *rand.Rand) *Network {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Network{
		layers: make([]*Layer, 0),
		rng:    rng,
	}
}

// Add appends a new layer with the given size and activation.
func (n *Network) Add(neurons int, activation ml.Activation) *Network {
	return n.AddLayer(NewLayer(neurons, activation))
}

// AddLayer appends the given layer and links it to the current output layer.
func (n *Network) AddLayer(layer *Layer) *Network {
	if layer.previous != nil || layer.next != nil {
		panic("layer is already part of a network")
	}
	if n.output != nil {
		n.output.link(layer, n.rng)
	}
	if len(n.layers) == 0 {
		n.input = layer
	}
	n.output = layer
	n.layers = append(n.layers, layer)
	return n
}

// Layers returns all layers in order from input to output.
// The returned slice must not be modified.
func (n *Network) Layers() []*Layer {
	return n.layers
}

// Input returns the input layer.
func (n *Network) Input() *Layer {
	return n.input
}

// Output returns the output layer.
func (n *Network) Output() *Layer {
	return n.output
}

// HiddenLayers returns the layers between input and output.
func (n *Network) HiddenLayers() []*Layer {
	hidden := make([]*Layer, 0)
	for _, l := range n.layers {
		if l.IsHidden() {
			hidden = append(hidden, l)
		}
	}
	return hidden
}

// HiddenLayerCount returns the number of hidden layers.
func (n *Network) HiddenLayerCount() int {
	if len(n.layers) < 2 {
		return 0
	}
	return len(n.layers) - 2
}

// NeuronCount returns the number of neurons across all layers.
func (n *Network) NeuronCount() int {
	var count int
	for _, l := range n.layers {
		count += l.neurons
	}
	return count
}

// MatrixSize returns the number of trainable weights and thresholds of the network.
func (n *Network) MatrixSize() int {
	var size int
	for _, l := range n.layers {
		size += l.MatrixSize()
	}
	return size
}

// Shape returns the neuron count of every layer.
func (n *Network) Shape() []int {
	shape := make([]int, len(n.layers))
	for i, l := range n.layers {
		shape[i] = l.neurons
	}
	return shape
}

// ComputeOutputs propagates the input through the network.
// The returned vector is the firing vector of the output layer,
// it will be overwritten by the next call.
func (n *Network) ComputeOutputs(input []float64) (xmath.Vector, error) {
	if n.input == nil {
		return nil, fmt.Errorf("can't compute outputs on a network without layers: %w", SizeMismatchErr)
	}
	if len(input) != n.input.neurons {
		return nil, fmt.Errorf("can't compute outputs for input size=%d for input layer size=%d: %w",
			len(input), n.input.neurons, SizeMismatchErr)
	}
	for _, l := range n.layers {
		if l.IsInput() {
			l.load(input)
		} else {
			l.compute()
		}
	}
	return n.output.fire, nil
}

// CalculateError returns the root mean square error of the network over the given samples.
// The first sample that does not fit the network aborts the calculation.
func (n *Network) CalculateError(input, ideal [][]float64) (float64, error) {
	if len(input) != len(ideal) {
		return 0, fmt.Errorf("input samples=%d do not match ideal samples=%d: %w",
			len(input), len(ideal), SizeMismatchErr)
	}
	calc := netmath.NewErrorCalculation()
	for i := range ideal {
		out, err := n.ComputeOutputs(input[i])
		if err != nil {
			return 0, fmt.Errorf("could not compute sample %d: %w", i, err)
		}
		if len(ideal[i]) != len(out) {
			return 0, fmt.Errorf("ideal size=%d for sample %d does not match output layer size=%d: %w",
				len(ideal[i]), i, len(out), SizeMismatchErr)
		}
		calc.Update(out, ideal[i])
	}
	return calc.RMS(), nil
}

// Reset re-initialises all weights and thresholds with random values.
func (n *Network) Reset() {
	for _, l := range n.layers {
		if l.HasMatrix() {
			l.reset(n.rng)
		}
	}
}

// CloneStructure creates a network of the same shape and activations,
// with fresh random weights drawn from the given source.
func (n *Network) CloneStructure(rng *rand.Rand) *Network {
	clone := New(rng)
	for _, l := range n.layers {
		clone.Add(l.neurons, l.activation)
	}
	return clone
}

// Clone creates a copy of the network, including structure, weights and thresholds.
// The clone does not share any state with the original,
// the given source is used for any later reset of the clone.
func (n *Network) Clone(rng *rand.Rand) *Network {
	clone := n.CloneStructure(rng)
	for i, l := range n.layers {
		if l.HasMatrix() {
			clone.layers[i].matrix = l.matrix.Copy()
		}
	}
	return clone
}

// Equals compares the structure and weights of the two networks.
func (n *Network) Equals(other *Network) bool {
	if other == nil || len(n.layers) != len(other.layers) {
		return false
	}
	for i, l := range n.layers {
		o := other.layers[i]
		if l.neurons != o.neurons {
			return false
		}
		if l.HasMatrix() != o.HasMatrix() {
			return false
		}
		if !l.HasMatrix() {
			continue
		}
		if len(l.matrix) != len(o.matrix) {
			return false
		}
		for r := range l.matrix {
			if len(l.matrix[r]) != len(o.matrix[r]) || !floats.Equal(l.matrix[r], o.matrix[r]) {
				return false
			}
		}
	}
	return true
}
