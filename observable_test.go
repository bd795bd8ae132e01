package urx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recorder collects every notification it observes and flags the terminal.
type recorder struct {
	mu     sync.Mutex
	events []Notification
	done   chan struct{}
}

func newRecorder() *recorder {
	return &recorder{done: make(chan struct{})}
}

func (r *recorder) Next(v interface{}) {
	r.push(Next(v))
}

func (r *recorder) Error(err error) {
	r.push(Error(err))
	close(r.done)
}

func (r *recorder) Complete() {
	r.push(Complete())
	close(r.done)
}

func (r *recorder) push(n Notification) {
	r.mu.Lock()
	r.events = append(r.events, n)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.events...)
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a terminal notification")
	}
}

func createChanObs(to int, rate time.Duration) Observable {
	inChan := make(chan int)
	obs := FromChan(inChan)
	go func() {
		for i := 0; i < to; i++ {
			<-time.After(rate)
			inChan <- i
		}
		close(inChan)
	}()
	return obs
}

func verifyObs(t *testing.T, obs Observable, expect int) {
	t.Helper()
	rec := newRecorder()
	obs.Subscribe(rec)
	rec.wait(t)

	events := rec.snapshot()
	require.NotEmpty(t, events)
	require.Equal(t, Complete(), events[len(events)-1])
	for i, e := range events[:len(events)-1] {
		require.Equal(t, Next(i), e)
	}
	require.Equal(t, expect, len(events)-1)
}

func TestObservableBasic(t *testing.T) {
	obs := Create(func(sub Subscriber) {
		for i := 0; i < 5; i++ {
			<-time.After(time.Millisecond * 5)
			sub.Notify(Next(i))
		}
		sub.Notify(Complete())
	})

	verifyObs(t, obs, 5)
}

func TestObservableFromChan(t *testing.T) {
	verifyObs(t, createChanObs(5, time.Millisecond*5), 5)
}

func TestFromChanUnsubscribeDoesNotBlockProducer(t *testing.T) {
	inChan := make(chan int)
	obs := FromChan(inChan)

	sub := obs.Subscribe(newRecorder())
	sub.Unsubscribe()

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			inChan <- i
		}
		close(inChan)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("producer blocked after its subscriber left")
	}
}

func TestUnsubscribe(t *testing.T) {
	obs := createChanObs(10, time.Millisecond*5)

	subCh := make(chan Subscription, 1)
	unsubbed := make(chan struct{})
	var mu sync.Mutex
	var got []interface{}

	sub := obs.Subscribe(ObserverFuncs{OnNext: func(v interface{}) {
		mu.Lock()
		got = append(got, v)
		n := len(got)
		mu.Unlock()
		if n == 3 {
			s := <-subCh
			s.Unsubscribe()
			close(unsubbed)
		}
	}})
	subCh <- sub

	select {
	case <-unsubbed:
	case <-time.After(5 * time.Second):
		t.Fatal("never saw the third value")
	}

	<-time.After(time.Millisecond * 50)
	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []interface{}{0, 1, 2}, got)
	require.False(t, sub.IsSubscribed())
}
