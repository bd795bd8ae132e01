package urx

type FunctionOperator func(Subscriber, Notification)

func (o FunctionOperator) Notify(s Subscriber, n Notification) {
	o(s, n)
}

type liftedObservable struct {
	source privObservable
	op     Operator
}

func (lifted *liftedObservable) privSubscribe(target Observer) Subscription {
	down := initSimpleSubscriber(target)
	up := lifted.source.privSubscribe(&liftedRelay{down: down, op: lifted.op})
	down.Add(func() {
		if up.IsSubscribed() {
			up.Unsubscribe()
		}
	})
	return down
}

func (lifted *liftedObservable) Lift(op Operator) privObservable {
	return &liftedObservable{source: lifted, op: op}
}

// liftedRelay receives upstream notifications and routes them through the
// operator into the downstream subscriber.
type liftedRelay struct {
	down Subscriber
	op   Operator
}

func (r *liftedRelay) Next(v interface{}) { r.op.Notify(r.down, Next(v)) }

func (r *liftedRelay) Error(err error) { r.op.Notify(r.down, Error(err)) }

func (r *liftedRelay) Complete() { r.op.Notify(r.down, Complete()) }
