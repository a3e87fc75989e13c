package buffer

import (
	"math"
)

// Stats is a set of statistical properties of a set of numbers.
type Stats struct {
	count          int
	sum            float64
	first, last    float64
	min, max       float64
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.sum += v
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean

	if s.count == 1 {
		s.first = v
	}

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}

	s.last = v
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// Sum returns the sum of all elements.
func (s Stats) Sum() float64 {
	return s.sum
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// Min returns the smallest element.
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the biggest element.
func (s Stats) Max() float64 {
	return s.max
}

// Diff returns the difference of the last and first element.
// A negative value for an error series means the error went down.
func (s Stats) Diff() float64 {
	return s.last - s.first
}

// Variance is the mathematical variance of the set.
func (s Stats) Variance() float64 {
	if s.count == 0 {
		return 0
	}
	return s.dSquared / float64(s.count)
}

// StDev is the standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}
