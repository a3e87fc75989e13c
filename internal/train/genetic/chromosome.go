package genetic

import (
	"fmt"
	"math/rand"

	netmath "github.com/drakos74/free-net/internal/math"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/net/codec"
	"github.com/drakos74/free-net/internal/train"
	"github.com/drakos74/go-ex-machina/xmath"
)

const mutationRange = 20

// Chromosome is a candidate solution of the genetic algorithm.
// The genes are the encoded weights of the owned network and are the authoritative copy,
// the network is refreshed from them whenever it is asked to compute.
type Chromosome struct {
	genes   xmath.Vector
	cost    float64
	network *net.Network
}

// NewChromosome creates a chromosome owning the given network.
// The genes are encoded from the network and the cost is calculated against the training set.
func NewChromosome(network *net.Network, set train.Set) (*Chromosome, error) {
	c := &Chromosome{
		network: network,
	}
	c.UpdateGenes()
	if err := c.calculateCost(set); err != nil {
		return nil, err
	}
	return c, nil
}

// Genes returns the genes of the chromosome.
// The returned vector must not be modified.
func (c *Chromosome) Genes() xmath.Vector {
	return c.genes
}

// Gene returns the gene at the given position.
func (c *Chromosome) Gene(i int) float64 {
	return c.genes[i]
}

// Size returns the number of genes.
func (c *Chromosome) Size() int {
	return len(c.genes)
}

// Cost returns the error of the network the genes encode. Lower is better.
func (c *Chromosome) Cost() float64 {
	return c.cost
}

// Network returns the owned network.
func (c *Chromosome) Network() *net.Network {
	return c.network
}

// UpdateGenes re-encodes the genes from the owned network.
func (c *Chromosome) UpdateGenes() {
	c.genes = codec.Encode(c.network)
}

// UpdateNetwork decodes the genes into the owned network.
func (c *Chromosome) UpdateNetwork() error {
	return codec.Decode(c.genes, c.network)
}

// SetGenes replaces the genes and recalculates the cost against the training set.
func (c *Chromosome) SetGenes(genes []float64, set train.Set) error {
	if len(genes) != len(c.genes) {
		return fmt.Errorf("can't set %d genes on chromosome of size %d: %w", len(genes), len(c.genes), net.SizeMismatchErr)
	}
	copy(c.genes, genes)
	return c.calculateCost(set)
}

func (c *Chromosome) calculateCost(set train.Set) error {
	if err := c.UpdateNetwork(); err != nil {
		return err
	}
	cost, err := c.network.CalculateError(set.Input, set.Ideal)
	if err != nil {
		return fmt.Errorf("could not calculate cost: %w", err)
	}
	c.cost = cost
	return nil
}

// Mutate multiplies every gene with a random integer in [-20, 20).
// The cost is not recalculated.
func (c *Chromosome) Mutate(rng *rand.Rand) {
	mutate(c.genes, rng)
}

func mutate(genes []float64, rng *rand.Rand) {
	for i := range genes {
		ratio := rng.Intn(2*mutationRange) - mutationRange
		genes[i] = netmath.Bound(genes[i] * float64(ratio))
	}
}

// Mate crosses the chromosome (mother) with the father and writes the offspring into the two children.
// A contiguous cut of a third of the genes is swapped between the parents:
// child1 carries the father outside the cut and the mother inside it, child2 the reverse.
// Each child is mutated with the given probability and gets its cost recalculated.
func (c *Chromosome) Mate(father, child1, child2 *Chromosome, rng *rand.Rand, mutationPercent float64, set train.Set) error {
	size := len(c.genes)
	if len(father.genes) != size {
		return fmt.Errorf("can't mate chromosomes of size %d and %d: %w", size, len(father.genes), net.SizeMismatchErr)
	}

	offspring1 := father.genes.Copy()
	offspring2 := c.genes.Copy()

	if size > 0 {
		cut := size / 3
		if cut < 1 {
			cut = 1
		}
		start := rng.Intn(size - cut + 1)
		for i := start; i < start+cut; i++ {
			offspring1[i] = c.genes[i]
			offspring2[i] = father.genes[i]
		}
	}

	if rng.Float64() < mutationPercent {
		mutate(offspring1, rng)
	}
	if rng.Float64() < mutationPercent {
		mutate(offspring2, rng)
	}

	if err := child1.SetGenes(offspring1, set); err != nil {
		return fmt.Errorf("could not create first child: %w", err)
	}
	if err := child2.SetGenes(offspring2, set); err != nil {
		return fmt.Errorf("could not create second child: %w", err)
	}
	return nil
}
