package buffer

// Ring is a ring buffer keeping the last x values.
type Ring struct {
	index  int
	count  int
	values []float64
}

// NewRing creates a new ring with the given buffer size.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = 1
	}
	return &Ring{
		values: make([]float64, size),
	}
}

// Size returns the number of values within the ring.
func (r *Ring) Size() int {
	if r.count < len(r.values) {
		return r.count
	}
	return len(r.values)
}

// Full returns true if the ring has been filled at least once.
func (r *Ring) Full() bool {
	return r.count >= len(r.values)
}

// Push adds a value to the ring, overwriting the oldest one if the ring is full.
func (r *Ring) Push(v float64) {
	r.values[r.index] = v
	r.index = r.next(r.index)
	r.count++
}

func (r *Ring) next(index int) int {
	return (index + 1) % len(r.values)
}

// Get returns the ring values ordered from oldest to newest.
func (r *Ring) Get() []float64 {
	l := r.Size()
	v := make([]float64, l)
	start := 0
	if r.Full() {
		start = r.index
	}
	for i := 0; i < l; i++ {
		v[i] = r.values[(start+i)%len(r.values)]
	}
	return v
}

// Stats returns the statistical properties of the values currently in the ring.
func (r *Ring) Stats() Stats {
	s := NewStats()
	for _, v := range r.Get() {
		s.Push(v)
	}
	return *s
}
