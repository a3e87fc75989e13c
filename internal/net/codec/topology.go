package codec

import (
	"strconv"
	"strings"

	"github.com/drakos74/free-net/internal/net"
)

// Topology returns a textual representation of the network shape e.g. '2-2-1'.
// Vectors are only interchangeable between networks of the same topology.
func Topology(network *net.Network) string {
	shape := network.Shape()
	s := make([]string, len(shape))
	for i, n := range shape {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, "-")
}
