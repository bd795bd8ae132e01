package urx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubscriptionHooks(t *testing.T) {
	rec := newRecorder()
	sub := createChanObs(10, time.Millisecond*5).Subscribe(rec)

	fired := false
	sub.Add(func() { fired = true })

	sub.Unsubscribe()
	require.True(t, fired)
	require.False(t, sub.IsSubscribed())

	// a hook added after the fact runs immediately
	lateFired := false
	sub.Add(func() { lateFired = true })
	require.True(t, lateFired)
}

func TestSubscriptionHooksFireOnComplete(t *testing.T) {
	rec := newRecorder()
	sub := createChanObs(2, time.Millisecond*5).Subscribe(rec)

	fired := make(chan struct{})
	sub.Add(func() { close(fired) })

	rec.wait(t)
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("completion never ran the hook")
	}
	require.False(t, sub.IsSubscribed())
}

func TestCompositeSubscription(t *testing.T) {
	first := createChanObs(10, time.Millisecond*5).Subscribe(newRecorder())
	second := createChanObs(10, time.Millisecond*5).Subscribe(newRecorder())

	composite := new(CompositeSubscription)
	composite.Add(first)
	composite.Add(second)
	require.True(t, composite.IsSubscribed())

	composite.Unsubscribe()
	require.False(t, composite.IsSubscribed())
	require.False(t, first.IsSubscribed())
	require.False(t, second.IsSubscribed())

	// targets added late are torn down on the spot
	third := createChanObs(10, time.Millisecond*5).Subscribe(newRecorder())
	composite.Add(third)
	require.False(t, third.IsSubscribed())
}
