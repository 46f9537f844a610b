package rt

import (
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxWorkers bounds scheduler concurrency when no configuration is
// supplied.
const DefaultMaxWorkers = 128

// ErrSchedulerClosed is returned by Go after Close has been called.
var ErrSchedulerClosed = errors.New("scheduler closed")

// Scheduler runs asynchronous tasks on a bounded worker pool. Submission
// never blocks: tasks queue when every worker is busy and drain in FIFO
// order as workers free up.
type Scheduler struct {
	mu     sync.Mutex
	queue  []func()
	active int
	limit  int
	closed bool
	group  errgroup.Group
}

// NewScheduler creates a scheduler running at most maxWorkers tasks
// concurrently. Non-positive limits fall back to DefaultMaxWorkers.
func NewScheduler(maxWorkers int) *Scheduler {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}
	return &Scheduler{limit: maxWorkers}
}

// Go enqueues a task for execution. It returns ErrSchedulerClosed once
// Close has been called; otherwise the task is guaranteed to run.
func (s *Scheduler) Go(task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSchedulerClosed
	}
	s.queue = append(s.queue, task)
	if s.active < s.limit {
		s.active++
		s.group.Go(func() error {
			s.drain()
			return nil
		})
	}
	return nil
}

// drain runs queued tasks until the queue is empty. The active counter is
// decremented under the same lock that guards the queue, so no submitted
// task can be stranded between a worker exiting and a new one starting.
func (s *Scheduler) drain() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.active--
			s.mu.Unlock()
			return
		}
		task := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		task()
	}
}

// Close stops accepting tasks and waits for queued and in-flight tasks to
// finish.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return s.group.Wait()
	}
	s.closed = true
	s.mu.Unlock()
	return s.group.Wait()
}
