// Package urx is a small push-based stream library. Its centerpiece is Bind,
// which adapts error-first callback operations into lazy, multicast-with-replay
// observables.
package urx

// creates an observable from a function
func Create(onSub func(Subscriber)) Observable {
	return wrapObservable(&simpleObservable{onSub: onSub})
}

// Observer receives push notifications from an observable it subscribed to.
// Next may be called any number of times; Error and Complete are terminal and
// mutually exclusive.
type Observer interface {
	Next(interface{})
	Error(error)
	Complete()
}

// An Operator sits between an upstream notification and a downstream
// subscriber, deciding what (if anything) the subscriber sees.
type Operator interface {
	Notify(Subscriber, Notification)
}

// The generic observable interface is what fundamentally defines an observable
// an observable can be subscribed to, and can be used to create derived observables
type privObservable interface {
	privSubscribe(Observer) Subscription
	Lift(Operator) privObservable
}

// Subscriber is the producer-side view of a subscription: an observer plus
// the liveness and teardown surface a source needs while feeding it.
type Subscriber interface {
	Observer
	Notify(Notification)
	Add(CompleteHook)
	IsSubscribed() bool
}

// A CompleteHook runs once when its subscription terminates or unsubscribes.
type CompleteHook func()

// Subscription is the consumer-side handle returned by Subscribe.
type Subscription interface {
	Unsubscribe()
	IsSubscribed() bool
	Add(CompleteHook)
}
