package urx

import "sync"

// Merge interleaves the notifications of several observables into one. It
// completes after every source completes; the first error is terminal.
func Merge(obs ...Observable) Observable {
	return Create(func(subscriber Subscriber) {
		if len(obs) == 0 {
			subscriber.Notify(Complete())
			return
		}

		var (
			mu        sync.Mutex
			remaining = len(obs)
		)
		composite := new(CompositeSubscription)
		subscriber.Add(composite.Unsubscribe)

		for i := range obs {
			sub := obs[i].Subscribe(ObserverFuncs{
				OnNext: func(v interface{}) {
					subscriber.Notify(Next(v))
				},
				OnError: func(err error) {
					subscriber.Notify(Error(err))
				},
				OnComplete: func() {
					mu.Lock()
					remaining--
					last := remaining == 0
					mu.Unlock()
					if last {
						subscriber.Notify(Complete())
					}
				},
			})
			composite.Add(sub)
		}
	})
}
