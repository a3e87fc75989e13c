// Package genetic trains a network by evolving a population of encoded weight vectors.
package genetic

import (
	"fmt"
	"math/rand"

	"github.com/drakos74/free-net/internal/concurrent"
	"github.com/drakos74/free-net/internal/metrics"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/train"
	"github.com/rs/zerolog/log"
)

const maxPercentToMate = 0.25

// Config holds the genetic algorithm parameters.
type Config struct {
	PopulationSize  int     `json:"population_size"`
	MutationPercent float64 `json:"mutation_percent"`
	PercentToMate   float64 `json:"percent_to_mate"`
	// Reset initialises every chromosome with fresh random weights,
	// instead of a copy of the given network.
	Reset   bool  `json:"reset"`
	Workers int   `json:"workers"`
	Seed    int64 `json:"seed"`
}

// Validate checks that mothers, fathers and children of a generation fit in the population
// without overlapping.
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return fmt.Errorf("population size must be at least 2: %d", c.PopulationSize)
	}
	if c.MutationPercent < 0 || c.MutationPercent > 1 {
		return fmt.Errorf("mutation percent must be within [0,1]: %f", c.MutationPercent)
	}
	if c.PercentToMate <= 0 || c.PercentToMate > maxPercentToMate {
		return fmt.Errorf("percent to mate must be within (0,%v]: %f", maxPercentToMate, c.PercentToMate)
	}
	if c.countToMate() < 1 {
		return fmt.Errorf("population of %d is too small to mate %f of it", c.PopulationSize, c.PercentToMate)
	}
	return nil
}

func (c Config) countToMate() int {
	return int(float64(c.PopulationSize) * c.PercentToMate)
}

// Algorithm is the genetic algorithm trainer.
type Algorithm struct {
	set        train.Set
	config     Config
	population Population
	pool       *concurrent.Pool
	rng        *rand.Rand
	generation int
}

// New creates the initial population out of the given network.
func New(network *net.Network, set train.Set, config Config) (*Algorithm, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := set.Validate(network); err != nil {
		return nil, fmt.Errorf("invalid training set: %w", err)
	}
	rng := rand.New(rand.NewSource(config.Seed))
	population := make(Population, config.PopulationSize)
	for i := range population {
		var n *net.Network
		source := rand.New(rand.NewSource(rng.Int63()))
		if config.Reset {
			n = network.CloneStructure(source)
		} else {
			n = network.Clone(source)
		}
		c, err := NewChromosome(n, set)
		if err != nil {
			return nil, fmt.Errorf("could not create chromosome %d: %w", i, err)
		}
		population[i] = c
	}
	population.Sort()
	log.Debug().
		Int("population", len(population)).
		Float64("best", population.Best().Cost()).
		Msg("created population")
	return &Algorithm{
		set:        set,
		config:     config,
		population: population,
		pool:       concurrent.NewPool(config.Workers),
		rng:        rng,
	}, nil
}

// Iteration runs one generation.
// The best ranked chromosomes mate with the ones right after them
// and their offspring replace the worst ranked ones.
func (a *Algorithm) Iteration() error {
	count := a.config.countToMate()
	size := len(a.population)
	offset := size - 2*count
	fathers := a.rng.Perm(count)

	tasks := make([]concurrent.Task, count)
	for i := 0; i < count; i++ {
		tasks[i] = mateTask{
			mother:          a.population[i],
			father:          a.population[count+fathers[i]],
			child1:          a.population[offset+2*i],
			child2:          a.population[offset+2*i+1],
			seed:            a.rng.Int63(),
			mutationPercent: a.config.MutationPercent,
			set:             a.set,
		}.task()
	}

	if err := a.pool.Run(tasks...); err != nil {
		return fmt.Errorf("generation %d failed: %w", a.generation, err)
	}
	metrics.Observer.Tasks("mate", len(tasks))

	a.population.Sort()
	a.generation++
	log.Debug().
		Int("generation", a.generation).
		Float64("best", a.population.Best().Cost()).
		Msg("genetic generation")
	return nil
}

// Error returns the cost of the best chromosome.
func (a *Algorithm) Error() float64 {
	return a.population.Best().Cost()
}

// Network returns the network of the best chromosome, synced with its genes.
func (a *Algorithm) Network() (*net.Network, error) {
	best := a.population.Best()
	if err := best.UpdateNetwork(); err != nil {
		return nil, err
	}
	return best.Network(), nil
}

// Population returns the current population, best first.
// The returned slice must not be modified.
func (a *Algorithm) Population() Population {
	return a.population
}

// Chromosome returns the chromosome at the given rank.
func (a *Algorithm) Chromosome(i int) *Chromosome {
	return a.population[i]
}

// Generation returns the number of completed generations.
func (a *Algorithm) Generation() int {
	return a.generation
}
