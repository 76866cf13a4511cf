package worker

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Task is a unit of clip work executed by the pool. It carries data specific
// to the operation, e.g. input/output paths for one normalization pass.
type Task interface {
	Run(ctx context.Context) error
	ID() string
}

// Pool fans tasks out across a fixed number of goroutines and joins on all of
// them. It exists for the slideshow pipeline's clip normalization, which is
// embarrassingly parallel but must fully complete before concatenation.
type Pool struct {
	size int
	log  *logrus.Logger
}

// NewPool creates a pool that runs at most size tasks concurrently.
func NewPool(size int, log *logrus.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size, log: log}
}

// RunAll executes every task and waits for all of them to finish, returning
// the first error encountered. Remaining tasks still run to completion so the
// clip directory is never left with half-written files mid-flight.
func (p *Pool) RunAll(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	queue := make(chan Task)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var firstErr error

	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for task := range queue {
				entry := p.log.WithFields(logrus.Fields{
					"worker": workerID,
					"task":   task.ID(),
				})
				entry.Debug("worker: task started")

				if err := task.Run(ctx); err != nil {
					entry.WithError(err).Error("worker: task failed")
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				entry.Debug("worker: task finished")
			}
		}(i + 1)
	}

	for _, task := range tasks {
		queue <- task
	}
	close(queue)
	wg.Wait()

	return firstErr
}
