package urx

type CompositeSubscriptionTarget interface {
	IsSubscribed() bool
	Unsubscribe()
}

// CompositeSubscription unsubscribes a group of subscriptions together.
// Targets added after it has been unsubscribed are unsubscribed immediately.
type CompositeSubscription struct {
	hooks
}

func (sub *CompositeSubscription) Add(target CompositeSubscriptionTarget) {
	sub.hooks.Add(func() {
		if target.IsSubscribed() {
			target.Unsubscribe()
		}
	})
}

func (sub *CompositeSubscription) IsSubscribed() bool {
	return !sub.isFinished()
}

func (sub *CompositeSubscription) Unsubscribe() {
	sub.callHooks()
}
