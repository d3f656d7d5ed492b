// Package dispatch provides a serial execution context for hosts that have no
// UI main thread of their own.
package dispatch

import (
	"sync"

	"github.com/alitto/pond"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultCapacity = 256

// Queue runs submitted functions one at a time, in submission order, on a
// single long-lived worker. It satisfies session.Dispatcher.
type Queue struct {
	pool   *pond.WorkerPool
	logger zerolog.Logger

	mu      sync.RWMutex
	stopped bool
}

type QueueOption func(*Queue)

// WithLogger sets the logger used to report dropped work.
func WithLogger(logger zerolog.Logger) QueueOption {
	return func(q *Queue) {
		q.logger = logger
	}
}

// NewQueue starts the queue's worker.
func NewQueue(options ...QueueOption) *Queue {
	q := &Queue{logger: log.Logger}
	for _, opt := range options {
		opt(q)
	}
	q.pool = pond.New(1, defaultCapacity, pond.MinWorkers(1), pond.PanicHandler(q.recovered))
	return q
}

// Dispatch schedules fn. Work submitted after Stop is dropped.
func (q *Queue) Dispatch(fn func()) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.stopped {
		q.logger.Warn().Msg("dispatch queue stopped, dropping work")
		return
	}
	q.pool.Submit(fn)
}

// DispatchAndWait schedules fn and blocks until it has run.
// It must not be called from work running on the queue.
func (q *Queue) DispatchAndWait(fn func()) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.stopped {
		q.logger.Warn().Msg("dispatch queue stopped, dropping work")
		return
	}
	q.pool.SubmitAndWait(fn)
}

// Stop waits for queued work to finish and stops the worker.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	q.mu.Unlock()

	q.pool.StopAndWait()
}

func (q *Queue) recovered(p interface{}) {
	q.logger.Error().Interface("panic", p).Msg("dispatched work panicked")
}
