package urx

import (
	"context"
	"fmt"
	"sync"
)

// Callback is the error-first completion callback handed to a Handler. A
// handler must call it exactly once; calls after the first are ignored.
type Callback func(err error, values ...interface{})

// Handler is a callback-style operation: positional arguments plus a
// completion callback, run under an explicit call context.
type Handler func(ctx context.Context, args []interface{}, done Callback)

// Selector projects the callback's success values into the emitted payload.
type Selector func(values ...interface{}) (interface{}, error)

// BoundFunc produces a fresh observable per call. The handler does not run
// until the observable's first subscription, and runs at most once per call
// no matter how many subscribers attach.
type BoundFunc func(ctx context.Context, args ...interface{}) Observable

// NoValueType is the payload emitted when the callback delivers no success
// values. It marks absence; it is not an empty sequence.
type NoValueType struct{}

// NoValue is the one value of NoValueType.
var NoValue NoValueType

func (NoValueType) String() string { return "urx.NoValue" }

type bindConfig struct {
	selector Selector
	sched    Scheduler
}

type BindOption func(*bindConfig)

// WithSelector projects success values through the selector instead of the
// default packaging.
func WithSelector(selector Selector) BindOption {
	return func(cfg *bindConfig) { cfg.selector = selector }
}

// WithScheduler delivers the handler start and every subscriber notification
// as scheduled work rather than synchronously in the calling stack.
func WithScheduler(sched Scheduler) BindOption {
	return func(cfg *bindConfig) { cfg.sched = sched }
}

// Bind adapts an error-first callback operation into a factory of lazy,
// multicast-with-replay observables. Binding itself has no side effects.
func Bind(handler Handler, opts ...BindOption) BoundFunc {
	if handler == nil {
		panic("a handler was not passed to urx.Bind")
	}
	var cfg bindConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(ctx context.Context, args ...interface{}) Observable {
		return wrapObservable(&boundSource{
			handler: handler,
			cfg:     cfg,
			ctx:     ctx,
			args:    args,
		})
	}
}

// boundSource is the subscribable view over one call to a bound function.
// It owns exactly one replay cell, created on first subscription.
type boundSource struct {
	handler Handler
	cfg     bindConfig
	ctx     context.Context
	args    []interface{}

	once sync.Once
	cell *replayCell
}

func (src *boundSource) privSubscribe(target Observer) Subscription {
	src.once.Do(func() {
		src.cell = newReplayCell(src.cfg.sched, src.run)
	})
	return src.cell.subscribe(target)
}

func (src *boundSource) Lift(op Operator) privObservable {
	return &liftedObservable{source: src, op: op}
}

// run invokes the handler once. A panic before the callback has resolved the
// cell counts as the handler failing; a panic after resolution came from a
// subscriber's own callbacks and keeps propagating.
func (src *boundSource) run() {
	defer func() {
		if r := recover(); r != nil {
			if !src.cell.resolveError(recoveredError(r)) {
				panic(r)
			}
		}
	}()
	src.handler(src.ctx, src.args, src.done)
}

func (src *boundSource) done(err error, values ...interface{}) {
	if err != nil {
		src.cell.resolveError(err)
		return
	}
	if src.cfg.selector != nil {
		payload, serr := src.applySelector(values)
		if serr != nil {
			src.cell.resolveError(serr)
			return
		}
		src.cell.resolveValue(payload)
		return
	}
	src.cell.resolveValue(packValues(values))
}

func (src *boundSource) applySelector(values []interface{}) (payload interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload, err = nil, recoveredError(r)
		}
	}()
	return src.cfg.selector(values...)
}

// packValues is the default packaging: no values becomes NoValue, a single
// value is unwrapped, two or more keep their callback order.
func packValues(values []interface{}) interface{} {
	switch len(values) {
	case 0:
		return NoValue
	case 1:
		return values[0]
	default:
		out := make([]interface{}, len(values))
		copy(out, values)
		return out
	}
}

func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("urx: panic: %v", r)
}
