package urx

import (
	"sync"
	"sync/atomic"
)

type cellState int

const (
	cellPending cellState = iota
	cellValue
	cellError
)

// replayCell is a single-outcome broadcast cell. Its producer starts at most
// once, on the first subscription; the resolved outcome is immutable and is
// fanned out to every pending subscriber and replayed to every late one.
type replayCell struct {
	start func()
	sched Scheduler

	started atomic.Bool

	mu      sync.Mutex
	state   cellState
	payload interface{}
	err     error
	targets []*simpleSubscriber
}

func newReplayCell(sched Scheduler, start func()) *replayCell {
	return &replayCell{start: start, sched: sched}
}

func (c *replayCell) subscribe(target Observer) Subscription {
	sub := initSimpleSubscriber(target)
	c.mu.Lock()
	if c.state != cellPending {
		state, payload, err := c.state, c.payload, c.err
		c.mu.Unlock()
		c.replay(sub, state, payload, err)
		return sub
	}
	c.targets = append(c.targets, sub)
	c.mu.Unlock()
	sub.Add(func() { c.remove(sub) })
	if c.started.CompareAndSwap(false, true) {
		c.launch()
	}
	return sub
}

func (c *replayCell) launch() {
	if c.sched != nil {
		c.sched.Schedule(c.start, 0)
		return
	}
	c.start()
}

func (c *replayCell) resolveValue(v interface{}) bool {
	return c.resolve(cellValue, v, nil)
}

func (c *replayCell) resolveError(err error) bool {
	return c.resolve(cellError, nil, err)
}

// resolve commits the outcome and fans it out, reporting whether this call
// won. The state is committed before any delivery so a misbehaving observer
// cannot disturb it.
func (c *replayCell) resolve(state cellState, payload interface{}, err error) bool {
	c.mu.Lock()
	if c.state != cellPending {
		c.mu.Unlock()
		return false
	}
	c.state, c.payload, c.err = state, payload, err
	targets := c.targets
	c.targets = nil
	c.mu.Unlock()
	for _, sub := range targets {
		c.replay(sub, state, payload, err)
	}
	return true
}

func (c *replayCell) replay(sub *simpleSubscriber, state cellState, payload interface{}, err error) {
	if state == cellError {
		c.deliver(sub, Error(err))
		return
	}
	c.deliver(sub, Next(payload))
	c.deliver(sub, Complete())
}

// deliver hands one notification to one subscriber, through the scheduler
// when present. Liveness is rechecked at dispatch time, so a subscriber that
// left between scheduling and flushing hears nothing.
func (c *replayCell) deliver(sub *simpleSubscriber, n Notification) {
	if c.sched != nil {
		c.sched.Schedule(func() { sub.Notify(n) }, 0)
		return
	}
	sub.Notify(n)
}

func (c *replayCell) remove(sub *simpleSubscriber) {
	c.mu.Lock()
	for i, t := range c.targets {
		if t == sub {
			c.targets = append(c.targets[:i], c.targets[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
}
