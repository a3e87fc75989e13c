package concurrent

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assertion tracks the number of events a test expects to observe.
type Assertion struct {
	wg       *sync.WaitGroup
	counter  *Counter
	expected int
}

// NewAssertion creates an assertion expecting the given number of events.
func NewAssertion(expected int) *Assertion {
	wg := new(sync.WaitGroup)
	wg.Add(expected)
	return &Assertion{
		wg:       wg,
		counter:  NewCounter(),
		expected: expected,
	}
}

// Expect registers an event.
func (a *Assertion) Expect(v interface{}) {
	if a.expected == 0 {
		panic(fmt.Sprintf("unexpected event: %v", v))
	}
	a.counter.Track()
	a.wg.Done()
}

// Assert waits for all expected events and checks the count.
func (a *Assertion) Assert(t *testing.T) {
	a.wg.Wait()
	assert.Equal(t, a.expected, a.counter.Get())
}
