package genetic

import (
	"math/rand"

	"github.com/drakos74/free-net/internal/concurrent"
	"github.com/drakos74/free-net/internal/train"
)

// mateTask owns the four chromosomes of one crossover for the duration of the task.
type mateTask struct {
	mother, father  *Chromosome
	child1, child2  *Chromosome
	seed            int64
	mutationPercent float64
	set             train.Set
}

func (t mateTask) run() error {
	rng := rand.New(rand.NewSource(t.seed))
	return t.mother.Mate(t.father, t.child1, t.child2, rng, t.mutationPercent, t.set)
}

func (t mateTask) task() concurrent.Task {
	return t.run
}
