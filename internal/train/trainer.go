package train

import "github.com/drakos74/free-net/internal/net"

// Trainer improves the weights of a network one iteration at a time.
type Trainer interface {
	// Iteration performs one training step over the whole set.
	Iteration() error
	// Error returns the error after the last iteration.
	Error() float64
	// Network returns the best network found so far.
	Network() (*net.Network, error)
}
