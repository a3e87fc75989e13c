package train

import (
	"fmt"

	"github.com/drakos74/free-net/internal/net"
)

// Set is a supervised training set of input patterns and their ideal outputs.
type Set struct {
	Input [][]float64 `json:"input"`
	Ideal [][]float64 `json:"ideal"`
}

// Size returns the number of samples.
func (s Set) Size() int {
	return len(s.Input)
}

// Validate checks that the set matches the input and output shape of the network.
func (s Set) Validate(network *net.Network) error {
	if len(s.Input) == 0 {
		return fmt.Errorf("empty training set: %w", net.SizeMismatchErr)
	}
	if len(s.Input) != len(s.Ideal) {
		return fmt.Errorf("input samples %d vs ideal samples %d: %w", len(s.Input), len(s.Ideal), net.SizeMismatchErr)
	}
	input := network.Input()
	output := network.Output()
	if input == nil || output == nil {
		return fmt.Errorf("network has no layers: %w", net.SizeMismatchErr)
	}
	for i := range s.Input {
		if len(s.Input[i]) != input.NeuronCount() {
			return fmt.Errorf("input sample %d has size %d instead of %d: %w", i, len(s.Input[i]), input.NeuronCount(), net.SizeMismatchErr)
		}
		if len(s.Ideal[i]) != output.NeuronCount() {
			return fmt.Errorf("ideal sample %d has size %d instead of %d: %w", i, len(s.Ideal[i]), output.NeuronCount(), net.SizeMismatchErr)
		}
	}
	return nil
}

// XOR returns the exclusive-or truth table.
func XOR() Set {
	return Set{
		Input: [][]float64{
			{0, 0},
			{1, 0},
			{0, 1},
			{1, 1},
		},
		Ideal: [][]float64{
			{0},
			{1},
			{1},
			{0},
		},
	}
}
