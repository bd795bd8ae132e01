package urx

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// A Scheduler defers work instead of running it in the calling stack. Tasks
// with equal delays run in the order they were scheduled.
type Scheduler interface {
	Schedule(task func(), delay time.Duration)
}

// clockScheduler keeps its own dispatch queue; the clock only decides when
// entries come due. Draining through one dispatcher at a time is what keeps
// equal-delay tasks in scheduling order — the clock fires each wakeup on its
// own goroutine and gives no ordering of its own.
type clockScheduler struct {
	clock clock.Clock

	mu      sync.Mutex
	seq     uint64
	running bool
	queue   []clockTask
}

type clockTask struct {
	due time.Time
	seq uint64
	run func()
}

// NewScheduler returns a scheduler backed by the wall clock.
func NewScheduler() Scheduler {
	return &clockScheduler{clock: clock.New()}
}

// NewSchedulerWithClock returns a scheduler driven by the given clock, which
// tests can stand in for with a mock.
func NewSchedulerWithClock(c clock.Clock) Scheduler {
	return &clockScheduler{clock: c}
}

func (s *clockScheduler) Schedule(task func(), delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	s.mu.Lock()
	s.queue = append(s.queue, clockTask{due: s.clock.Now().Add(delay), seq: s.seq, run: task})
	s.seq++
	s.mu.Unlock()
	s.clock.AfterFunc(delay, s.dispatch)
}

// dispatch drains due entries in (due time, scheduling order). Only one
// dispatcher runs at a time; a wakeup that fires while one is active bails
// out and leaves its entry to the running drain, which rechecks the queue
// under the lock before exiting.
func (s *clockScheduler) dispatch() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	for {
		idx := s.nextDue()
		if idx < 0 {
			s.running = false
			s.mu.Unlock()
			return
		}
		task := s.queue[idx]
		s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
		s.mu.Unlock()
		task.run()
		s.mu.Lock()
	}
}

// nextDue picks the earliest due entry, oldest first on ties; callers hold mu.
func (s *clockScheduler) nextDue() int {
	now := s.clock.Now()
	idx := -1
	for i, t := range s.queue {
		if t.due.After(now) {
			continue
		}
		if idx < 0 {
			idx = i
			continue
		}
		least := s.queue[idx]
		if t.due.Before(least.due) || (t.due.Equal(least.due) && t.seq < least.seq) {
			idx = i
		}
	}
	return idx
}

// TestScheduler queues work under virtual time. Nothing runs until Flush,
// which drains the queue deterministically.
type TestScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	queue []scheduledTask
}

type scheduledTask struct {
	due time.Duration
	seq uint64
	run func()
}

func NewTestScheduler() *TestScheduler {
	return new(TestScheduler)
}

func (s *TestScheduler) Schedule(task func(), delay time.Duration) {
	s.mu.Lock()
	s.queue = append(s.queue, scheduledTask{due: s.now + delay, seq: s.seq, run: task})
	s.seq++
	s.mu.Unlock()
}

// Pending reports how many tasks are waiting for a Flush.
func (s *TestScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Now reports the scheduler's virtual time.
func (s *TestScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Flush synchronously runs every queued task in due-time order, first-come
// first-served on ties, advancing virtual time as it goes. Tasks scheduled by
// running tasks are drained in the same flush.
func (s *TestScheduler) Flush() {
	for {
		task, ok := s.pop()
		if !ok {
			return
		}
		task.run()
	}
}

func (s *TestScheduler) pop() (scheduledTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return scheduledTask{}, false
	}
	idx := 0
	for i, t := range s.queue {
		least := s.queue[idx]
		if t.due < least.due || (t.due == least.due && t.seq < least.seq) {
			idx = i
		}
	}
	task := s.queue[idx]
	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
	if task.due > s.now {
		s.now = task.due
	}
	return task, true
}
