package urx

import "reflect"

// FromChan turns any readable channel into a cold observable. Each
// subscription reads the channel until the producer closes it. A subscriber
// that leaves early hears nothing more, but the channel keeps being drained
// so the producer never blocks on an abandoned subscription; the channel
// stays owned by the producer and is never closed from here.
func FromChan(source interface{}) Observable {
	val := reflect.ValueOf(source)
	if val.Kind() != reflect.Chan {
		panic("a channel was not passed to urx.FromChan")
	}

	return Create(func(sub Subscriber) {
		for {
			next, ok := val.Recv()
			if !ok {
				sub.Notify(Complete())
				return
			}
			if !sub.IsSubscribed() {
				continue
			}
			sub.Notify(Next(next.Interface()))
		}
	})
}
