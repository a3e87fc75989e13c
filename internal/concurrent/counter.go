package concurrent

import (
	"sync/atomic"
)

// Counter is a synchronous counter for tracking completed events.
type Counter struct {
	count uint64
}

// NewCounter creates a new counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Track increments the counter by one.
func (c *Counter) Track() {
	atomic.AddUint64(&c.count, 1)
}

// Get returns the current count.
func (c *Counter) Get() int {
	return int(atomic.LoadUint64(&c.count))
}
