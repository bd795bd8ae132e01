package urx

func wrapObservable(observable privObservable) Observable {
	return Observable{observable}
}

// Observable is the public face of any source in this package. Subscribing
// attaches an observer; operators derive new observables without touching
// the source.
type Observable struct {
	source privObservable
}

func (o Observable) Subscribe(target Observer) Subscription {
	return o.source.privSubscribe(target)
}

func (o Observable) Lift(operator Operator) Observable {
	return wrapObservable(o.source.Lift(operator))
}

func (o Observable) Map(m func(interface{}) interface{}) Observable {
	return o.Lift(FunctionOperator(func(sub Subscriber, n Notification) {
		if n.Type == OnNext {
			n.Body = m(n.Body)
		}
		sub.Notify(n)
	}))
}

func (o Observable) Filter(f func(interface{}) bool) Observable {
	return o.Lift(FunctionOperator(func(sub Subscriber, n Notification) {
		if n.Type == OnNext && !f(n.Body) {
			return
		}
		sub.Notify(n)
	}))
}
