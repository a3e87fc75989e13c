package concurrent

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work executed by the pool.
type Task func() error

// Pool executes batches of tasks with a bounded number of goroutines.
type Pool struct {
	workers   int
	completed *Counter
}

// NewPool creates a new pool. A non positive number of workers defaults to the number of cpus.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{
		workers:   workers,
		completed: NewCounter(),
	}
}

// Workers returns the max number of concurrent tasks.
func (p *Pool) Workers() int {
	return p.workers
}

// Completed returns the number of tasks that finished successfully since the pool was created.
func (p *Pool) Completed() int {
	return p.completed.Get()
}

// Run executes the given tasks and blocks until all of them are done.
// It returns the first error encountered, if any.
func (p *Pool) Run(tasks ...Task) error {
	var group errgroup.Group
	group.SetLimit(p.workers)
	for _, task := range tasks {
		task := task
		group.Go(func() error {
			if err := task(); err != nil {
				return err
			}
			p.completed.Track()
			return nil
		})
	}
	return group.Wait()
}
