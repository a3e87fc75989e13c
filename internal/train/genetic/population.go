package genetic

import (
	"math"
	"sort"
)

// Population is the collection of chromosomes, ordered by cost after every generation.
type Population []*Chromosome

func (p Population) Len() int      { return len(p) }
func (p Population) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Less orders by ascending cost, a NaN cost always goes last.
func (p Population) Less(i, j int) bool {
	ci, cj := p[i].cost, p[j].cost
	if math.IsNaN(ci) {
		return false
	}
	if math.IsNaN(cj) {
		return true
	}
	return ci < cj
}

// Sort orders the population from best to worst.
func (p Population) Sort() {
	sort.Stable(p)
}

// Best returns the chromosome with the lowest cost.
func (p Population) Best() *Chromosome {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// Costs returns the cost of every chromosome in population order.
func (p Population) Costs() []float64 {
	costs := make([]float64, len(p))
	for i, c := range p {
		costs[i] = c.cost
	}
	return costs
}
