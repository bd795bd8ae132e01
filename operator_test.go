package urx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	rec := newRecorder()
	createChanObs(10, time.Millisecond*5).Filter(func(in interface{}) bool {
		return in.(int)%2 == 0
	}).Subscribe(rec)
	rec.wait(t)

	events := rec.snapshot()
	require.Equal(t, Complete(), events[len(events)-1])
	require.Len(t, events, 6)
	for _, e := range events[:len(events)-1] {
		require.Zero(t, e.Body.(int)%2)
	}
}

func TestMap(t *testing.T) {
	rec := newRecorder()
	createChanObs(5, time.Millisecond*5).Map(func(in interface{}) interface{} {
		return in.(int) * 10
	}).Subscribe(rec)
	rec.wait(t)

	events := rec.snapshot()
	require.Equal(t, Complete(), events[len(events)-1])
	for i, e := range events[:len(events)-1] {
		require.Equal(t, Next(i*10), e)
	}
}

func TestLiftUnsubscribePropagates(t *testing.T) {
	obs := createChanObs(10, time.Millisecond*5).Map(func(in interface{}) interface{} {
		return in
	})

	rec := newRecorder()
	sub := obs.Subscribe(rec)
	sub.Unsubscribe()
	require.False(t, sub.IsSubscribed())

	<-time.After(time.Millisecond * 50)
	require.Empty(t, rec.snapshot())
}
