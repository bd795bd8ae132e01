package urx

// ObserverFuncs adapts plain functions into an Observer. Every field is
// optional; nil callbacks drop their notifications.
type ObserverFuncs struct {
	OnNext     func(interface{})
	OnError    func(error)
	OnComplete func()
}

func (o ObserverFuncs) Next(v interface{}) {
	if o.OnNext != nil {
		o.OnNext(v)
	}
}

func (o ObserverFuncs) Error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

func (o ObserverFuncs) Complete() {
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

// notifyObserver routes a notification to the matching observer method.
func notifyObserver(target Observer, n Notification) {
	switch n.Type {
	case OnNext:
		target.Next(n.Body)
	case OnError:
		target.Error(n.Err())
	case OnComplete:
		target.Complete()
	}
}
