package dispatch_test

import (
	"sync"
	"testing"

	"github.com/jrsteele09/go-webview-auth/internal/dispatch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestQueue_RunsInOrder(t *testing.T) {
	q := dispatch.NewQueue(dispatch.WithLogger(zerolog.Nop()))

	var order []int
	for i := 0; i < 50; i++ {
		i := i
		q.Dispatch(func() { order = append(order, i) })
	}
	q.Stop()

	require.Len(t, order, 50)
	for i, v := range order {
		require.Equal(t, i, v)
	}
}

func TestQueue_DispatchFromOtherGoroutine(t *testing.T) {
	q := dispatch.NewQueue(dispatch.WithLogger(zerolog.Nop()))
	defer q.Stop()

	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	go q.Dispatch(func() {
		ran = true
		wg.Done()
	})
	wg.Wait()

	q.DispatchAndWait(func() {})
	require.True(t, ran)
}

func TestQueue_DropsAfterStop(t *testing.T) {
	q := dispatch.NewQueue(dispatch.WithLogger(zerolog.Nop()))
	q.Stop()

	ran := false
	q.Dispatch(func() { ran = true })
	q.DispatchAndWait(func() { ran = true })
	require.False(t, ran)
}

func TestQueue_SurvivesPanic(t *testing.T) {
	q := dispatch.NewQueue(dispatch.WithLogger(zerolog.Nop()))
	defer q.Stop()

	q.DispatchAndWait(func() { panic("boom") })

	ran := false
	q.DispatchAndWait(func() { ran = true })
	require.True(t, ran)
}
