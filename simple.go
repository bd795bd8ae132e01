package urx

import "sync"

// The simple observable is simply a function which takes a subscriber and provides it with data
type simpleObservable struct {
	onSub func(Subscriber)
}

// each subscription runs the producer function on its own goroutine
func (obs *simpleObservable) privSubscribe(target Observer) Subscription {
	sub := initSimpleSubscriber(target)
	go obs.onSub(sub)
	return sub
}

// applies an operator to the observable such that subscriptions to the resulting observable flow through the operator
func (obs *simpleObservable) Lift(op Operator) privObservable {
	return &liftedObservable{source: obs, op: op}
}

// simpleSubscriber dispatches notifications straight into a target observer
// while it remains subscribed. A terminal notification or an Unsubscribe
// finishes it; nothing is delivered afterward.
type simpleSubscriber struct {
	target Observer
	lock   sync.Mutex
	done   bool
	hooks
}

func initSimpleSubscriber(target Observer) *simpleSubscriber {
	return &simpleSubscriber{target: target}
}

func (sub *simpleSubscriber) IsSubscribed() bool {
	sub.lock.Lock()
	defer sub.lock.Unlock()
	return !sub.done
}

func (sub *simpleSubscriber) Unsubscribe() {
	sub.lock.Lock()
	if sub.done {
		sub.lock.Unlock()
		return
	}
	sub.done = true
	sub.lock.Unlock()
	sub.callHooks()
}

func (sub *simpleSubscriber) Notify(n Notification) {
	sub.lock.Lock()
	if sub.done {
		sub.lock.Unlock()
		return
	}
	terminal := n.IsTerminal()
	if terminal {
		sub.done = true
	}
	sub.lock.Unlock()
	notifyObserver(sub.target, n)
	if terminal {
		sub.callHooks()
	}
}

func (sub *simpleSubscriber) Next(v interface{}) { sub.Notify(Next(v)) }

func (sub *simpleSubscriber) Error(err error) { sub.Notify(Error(err)) }

func (sub *simpleSubscriber) Complete() { sub.Notify(Complete()) }
