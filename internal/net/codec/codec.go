// Package codec maps the weights and thresholds of a network to a flat vector and back.
// Layers are visited from input to output and every matrix is visited row by row,
// threshold row included.
package codec

import (
	"fmt"

	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/go-ex-machina/xmath"
)

// Size returns the length of the vector representation of the network.
func Size(network *net.Network) int {
	return network.MatrixSize()
}

// Encode flattens all weights and thresholds of the network into a new vector.
func Encode(network *net.Network) xmath.Vector {
	v := xmath.Vec(Size(network))
	index := 0
	for _, l := range network.Layers() {
		if l.Next() == nil {
			continue
		}
		for _, row := range l.Matrix() {
			index += copy(v[index:], row)
		}
	}
	return v
}

// Decode writes the vector into the weights and thresholds of the network.
// The vector must be exactly as long as the network matrix size.
func Decode(v xmath.Vector, network *net.Network) error {
	if size := Size(network); len(v) != size {
		return fmt.Errorf("can't decode vector of size=%d into network of matrix size=%d: %w",
			len(v), size, net.SizeMismatchErr)
	}
	index := 0
	for _, l := range network.Layers() {
		if l.Next() == nil {
			continue
		}
		for _, row := range l.Matrix() {
			index += copy(row, v[index:index+len(row)])
		}
	}
	return nil
}
