// Package backprop trains a network with gradient descent and momentum,
// accumulating the gradient over the whole training set before every update.
package backprop

import (
	"fmt"

	netmath "github.com/drakos74/free-net/internal/math"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/train"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Config holds the backpropagation hyper-parameters.
type Config struct {
	LearnRate float64 `json:"learn_rate"`
	Momentum  float64 `json:"momentum"`
}

// layer is the training state kept next to a network layer.
type layer struct {
	err   xmath.Vector
	delta xmath.Vector
	// acc is the gradient accumulated since the last update.
	acc xmath.Matrix
	// prev is the last applied matrix delta.
	prev xmath.Matrix
}

func newLayer(l *net.Layer) *layer {
	s := &layer{
		err:   xmath.Vec(l.NeuronCount()),
		delta: xmath.Vec(l.NeuronCount()),
	}
	if l.HasMatrix() {
		rows := len(l.Matrix())
		cols := l.Next().NeuronCount()
		s.acc = xmath.Mat(rows).Of(cols)
		s.prev = xmath.Mat(rows).Of(cols)
	}
	return s
}

// Backpropagation is the backpropagation trainer.
type Backpropagation struct {
	network *net.Network
	set     train.Set
	config  Config
	layers  map[*net.Layer]*layer
	err     float64
}

// New creates a new backpropagation trainer for the given network and training set.
// The network must not change structure after this call.
func New(network *net.Network, set train.Set, config Config) (*Backpropagation, error) {
	if err := set.Validate(network); err != nil {
		return nil, fmt.Errorf("invalid training set: %w", err)
	}
	if config.LearnRate <= 0 {
		return nil, fmt.Errorf("learn rate must be positive: %f", config.LearnRate)
	}
	if config.Momentum < 0 {
		return nil, fmt.Errorf("momentum must not be negative: %f", config.Momentum)
	}
	layers := make(map[*net.Layer]*layer, len(network.Layers()))
	for _, l := range network.Layers() {
		layers[l] = newLayer(l)
	}
	err, cErr := network.CalculateError(set.Input, set.Ideal)
	if cErr != nil {
		return nil, fmt.Errorf("could not calculate initial error: %w", cErr)
	}
	return &Backpropagation{
		network: network,
		set:     set,
		config:  config,
		layers:  layers,
		err:     err,
	}, nil
}

// lookup returns the training state for the given layer.
func (b *Backpropagation) lookup(l *net.Layer) (*layer, error) {
	s, ok := b.layers[l]
	if !ok {
		return nil, fmt.Errorf("no training state for layer of size %d: %w", l.NeuronCount(), net.UnknownLayerErr)
	}
	if l.HasMatrix() && s.acc == nil {
		return nil, fmt.Errorf("layer of size %d was linked after training started: %w", l.NeuronCount(), net.UnknownLayerErr)
	}
	return s, nil
}

// CalcError calculates the errors and deltas of every layer for the last computed outputs
// and adds the resulting gradient to the accumulated one.
func (b *Backpropagation) CalcError(ideal []float64) error {
	layers := b.network.Layers()
	for _, l := range layers {
		if _, err := b.lookup(l); err != nil {
			return err
		}
	}

	output := b.network.Output()
	if output == nil || len(ideal) != output.NeuronCount() {
		return fmt.Errorf("ideal size %d does not match output layer: %w", len(ideal), net.SizeMismatchErr)
	}

	for _, l := range layers {
		s := b.layers[l]
		for i := range s.err {
			s.err[i] = 0
		}
	}

	for k := len(layers) - 1; k >= 0; k-- {
		l := layers[k]
		s := b.layers[l]
		fire := l.Fire()
		if l.IsOutput() {
			for i := range s.err {
				s.err[i] = ideal[i] - fire[i]
			}
		} else {
			next := b.layers[l.Next()]
			m := l.Matrix()
			threshold := l.NeuronCount()
			for i := range next.delta {
				d := next.delta[i]
				for j := 0; j < threshold; j++ {
					s.acc[j][i] += d * fire[j]
					s.err[j] += m[j][i] * d
				}
				s.acc[threshold][i] += d
			}
		}
		if l.IsInput() {
			continue
		}
		for i := range s.delta {
			d, err := l.Activation().D(fire[i])
			if err != nil {
				b.discard()
				return fmt.Errorf("could not calculate delta for activation '%s': %w", l.Activation().Name(), err)
			}
			s.delta[i] = netmath.Bound(s.err[i] * d)
		}
	}
	return nil
}

// discard drops the partial errors, deltas and the accumulated gradient of the current epoch.
func (b *Backpropagation) discard() {
	for _, s := range b.layers {
		for i := range s.err {
			s.err[i] = 0
		}
		for i := range s.delta {
			s.delta[i] = 0
		}
		for r := range s.acc {
			for c := range s.acc[r] {
				s.acc[r][c] = 0
			}
		}
	}
}

// Learn applies the accumulated gradient to the network weights and thresholds.
func (b *Backpropagation) Learn() error {
	for _, l := range b.network.Layers() {
		s, err := b.lookup(l)
		if err != nil {
			return err
		}
		if !l.HasMatrix() {
			continue
		}
		m := l.Matrix()
		for r := range m {
			floats.Scale(b.config.Momentum, s.prev[r])
			floats.AddScaled(s.prev[r], b.config.LearnRate, s.acc[r])
			floats.Add(m[r], s.prev[r])
			for c := range s.acc[r] {
				s.acc[r][c] = 0
			}
		}
	}
	return nil
}

// Iteration runs one batch over the whole training set.
func (b *Backpropagation) Iteration() error {
	for i := range b.set.Input {
		if _, err := b.network.ComputeOutputs(b.set.Input[i]); err != nil {
			return fmt.Errorf("could not compute sample %d: %w", i, err)
		}
		if err := b.CalcError(b.set.Ideal[i]); err != nil {
			return fmt.Errorf("could not calculate error for sample %d: %w", i, err)
		}
	}
	if err := b.Learn(); err != nil {
		return err
	}
	err, cErr := b.network.CalculateError(b.set.Input, b.set.Ideal)
	if cErr != nil {
		return cErr
	}
	b.err = err
	log.Debug().Float64("error", b.err).Msg("backprop iteration")
	return nil
}

// Error returns the root mean square error after the last iteration.
func (b *Backpropagation) Error() float64 {
	return b.err
}

// Network returns the network under training.
func (b *Backpropagation) Network() (*net.Network, error) {
	return b.network, nil
}
