package genetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopulation_Sort(t *testing.T) {
	population := Population{
		{cost: 0.5},
		{cost: math.NaN()},
		{cost: 0.1},
		{cost: 0.3},
		{cost: math.NaN()},
		{cost: 0.2},
	}
	population.Sort()

	costs := population.Costs()
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.5}, costs[:4])
	assert.True(t, math.IsNaN(costs[4]))
	assert.True(t, math.IsNaN(costs[5]))
	assert.Equal(t, 0.1, population.Best().Cost())
}

func TestPopulation_Empty(t *testing.T) {
	var population Population
	population.Sort()
	assert.Nil(t, population.Best())
	assert.Equal(t, []float64{}, population.Costs())
}
