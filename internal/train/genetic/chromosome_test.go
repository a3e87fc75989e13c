package genetic

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/drakos74/free-net/internal/math/ml"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/net/codec"
	"github.com/drakos74/free-net/internal/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xorNetwork(seed int64) *net.Network {
	return net.New(rand.New(rand.NewSource(seed))).
		Add(2, ml.Sigmoid).
		Add(2, ml.Sigmoid).
		Add(1, ml.Sigmoid)
}

func newChromosome(t *testing.T, seed int64) *Chromosome {
	c, err := NewChromosome(xorNetwork(seed), train.XOR())
	require.NoError(t, err)
	return c
}

func TestNewChromosome(t *testing.T) {
	network := xorNetwork(1)
	c, err := NewChromosome(network, train.XOR())
	require.NoError(t, err)

	assert.Equal(t, 9, c.Size())
	assert.Equal(t, codec.Encode(network), c.Genes())

	cost, err := network.CalculateError(train.XOR().Input, train.XOR().Ideal)
	require.NoError(t, err)
	assert.Equal(t, cost, c.Cost())
}

func TestChromosome_Mutate(t *testing.T) {
	c := newChromosome(t, 1)
	genes := c.Genes().Copy()
	cost := c.Cost()

	c.Mutate(rand.New(rand.NewSource(1)))

	require.Equal(t, len(genes), c.Size())
	for i := range genes {
		ratio := c.Gene(i) / genes[i]
		assert.InDelta(t, math.Round(ratio), ratio, 1e-9)
		assert.True(t, math.Round(ratio) >= -20 && math.Round(ratio) < 20)
	}
	// cost is only recalculated through SetGenes
	assert.Equal(t, cost, c.Cost())
}

func TestChromosome_SetGenes(t *testing.T) {
	c := newChromosome(t, 1)
	other := newChromosome(t, 2)

	require.NoError(t, c.SetGenes(other.Genes(), train.XOR()))
	assert.Equal(t, other.Genes(), c.Genes())
	assert.Equal(t, other.Cost(), c.Cost())
	assert.True(t, c.Network().Equals(other.Network()))

	err := c.SetGenes(make([]float64, 8), train.XOR())
	assert.True(t, errors.Is(err, net.SizeMismatchErr))
}

func TestChromosome_Mate(t *testing.T) {
	mother := newChromosome(t, 1)
	father := newChromosome(t, 2)
	child1 := newChromosome(t, 3)
	child2 := newChromosome(t, 4)

	err := mother.Mate(father, child1, child2, rand.New(rand.NewSource(1)), 0, train.XOR())
	require.NoError(t, err)

	require.Equal(t, mother.Size(), child1.Size())
	require.Equal(t, mother.Size(), child2.Size())

	fromMother := 0
	for i := 0; i < mother.Size(); i++ {
		if child1.Gene(i) == mother.Gene(i) {
			fromMother++
			assert.Equal(t, father.Gene(i), child2.Gene(i))
		} else {
			assert.Equal(t, father.Gene(i), child1.Gene(i))
			assert.Equal(t, mother.Gene(i), child2.Gene(i))
		}
	}
	assert.Equal(t, 3, fromMother)

	cost, err := child1.Network().CalculateError(train.XOR().Input, train.XOR().Ideal)
	require.NoError(t, err)
	assert.Equal(t, cost, child1.Cost())
}

func TestChromosome_MateDeterministic(t *testing.T) {
	mate := func() (*Chromosome, *Chromosome) {
		mother := newChromosome(t, 1)
		father := newChromosome(t, 2)
		child1 := newChromosome(t, 3)
		child2 := newChromosome(t, 4)
		err := mother.Mate(father, child1, child2, rand.New(rand.NewSource(5)), 0.5, train.XOR())
		require.NoError(t, err)
		return child1, child2
	}

	a1, a2 := mate()
	b1, b2 := mate()
	assert.Equal(t, a1.Genes(), b1.Genes())
	assert.Equal(t, a2.Genes(), b2.Genes())
	assert.Equal(t, a1.Cost(), b1.Cost())
	assert.Equal(t, a2.Cost(), b2.Cost())
}

func TestChromosome_MateSizeMismatch(t *testing.T) {
	mother := newChromosome(t, 1)
	father, err := NewChromosome(net.New(rand.New(rand.NewSource(2))).
		Add(2, ml.Sigmoid).
		Add(3, ml.Sigmoid).
		Add(1, ml.Sigmoid), train.XOR())
	require.NoError(t, err)

	err = mother.Mate(father, newChromosome(t, 3), newChromosome(t, 4), rand.New(rand.NewSource(1)), 0, train.XOR())
	assert.True(t, errors.Is(err, net.SizeMismatchErr))
}
