package display

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/stretchr/testify/assert"

	"github.com/rwpenney/engclock/packages/core/clock"
)

func TestFeedDispatch(t *testing.T) {
	feed := NewFeed()

	var mu sync.Mutex
	var ticks []int64
	var offsets []time.Duration

	feed.Events.Tick.Attach(event.NewClosure(func(ev *clock.TickEvent) {
		mu.Lock()
		defer mu.Unlock()
		ticks = append(ticks, ev.TickID)
	}))
	feed.Events.Offset.Attach(event.NewClosure(func(ev *clock.OffsetEvent) {
		mu.Lock()
		defer mu.Unlock()
		offsets = append(offsets, ev.AvgOffset)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		feed.Run(ctx)
	}()

	for i := int64(1); i <= 3; i++ {
		feed.TickSink() <- &clock.TickEvent{TickID: i}
	}
	feed.OffsetSink() <- &clock.OffsetEvent{AvgOffset: time.Millisecond}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(ticks) == 3 && len(offsets) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []int64{1, 2, 3}, ticks)
	assert.Equal(t, []time.Duration{time.Millisecond}, offsets)
	mu.Unlock()

	cancel()
	<-done
}

func TestFeedStopsOnCancellation(t *testing.T) {
	feed := NewFeed()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		feed.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("feed did not stop")
	}
}
