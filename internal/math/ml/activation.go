package ml

import (
	"errors"
	"fmt"
	"strings"

	netmath "github.com/drakos74/free-net/internal/math"
	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
)

var (
	// UnsupportedOperationErr signals an operation the activation cannot perform.
	UnsupportedOperationErr = errors.New("unsupported operation")
)

// Activation is the activation capability of a layer.
// F is applied on the weighted sum of a neuron,
// D is the derivative expressed on the output of F.
type Activation interface {
	Name() string
	F(x float64) float64
	D(y float64) (float64, error)
}

var (
	// Linear passes the input through unmodified.
	// It has no derivative and cannot be used for gradient based training.
	Linear Activation = linear{}
	// Sigmoid scales into (0,1).
	Sigmoid Activation = sigmoid{}
	// TanH scales into (-1,1).
	TanH Activation = tanH{}
)

// ByName returns the activation registered under the given name.
func ByName(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "linear":
		return Linear, nil
	case "sigmoid", "":
		return Sigmoid, nil
	case "tanh":
		return TanH, nil
	}
	return nil, fmt.Errorf("unknown activation '%s'", name)
}

type linear struct {
}

func (l linear) Name() string {
	return "linear"
}

func (l linear) F(x float64) float64 {
	return xml.Void{}.F(x)
}

func (l linear) D(y float64) (float64, error) {
	return 0, fmt.Errorf("can't use the linear activation where a derivative is required: %w", UnsupportedOperationErr)
}

type sigmoid struct {
}

func (s sigmoid) Name() string {
	return "sigmoid"
}

// F uses the bounded exponential, so that large negative inputs stay finite.
func (s sigmoid) F(x float64) float64 {
	return 1.0 / (1.0 + netmath.Exp(-1*x))
}

func (s sigmoid) D(y float64) (float64, error) {
	return xml.Sigmoid.D(y), nil
}

type tanH struct {
}

func (t tanH) Name() string {
	return "tanh"
}

func (t tanH) F(x float64) float64 {
	return xml.TanH.F(x)
}

func (t tanH) D(y float64) (float64, error) {
	return xml.TanH.D(y), nil
}
