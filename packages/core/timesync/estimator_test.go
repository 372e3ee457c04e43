package timesync

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/timesource"
)

type fakeReply struct {
	reading *timesource.Reading
	err     error
}

// fakeSource replays scripted replies and falls back to an error once
// the script is exhausted.
type fakeSource struct {
	mu      sync.Mutex
	queried []string
	replies []fakeReply
}

func (f *fakeSource) Query(_ context.Context, host string) (*timesource.Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queried = append(f.queried, host)

	if len(f.replies) == 0 {
		return nil, errors.Newf("server %s unreachable", host)
	}

	next := f.replies[0]
	f.replies = f.replies[1:]

	return next.reading, next.err
}

func (f *fakeSource) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.queried)
}

func fakeReading(host string, offset, rtt time.Duration) *timesource.Reading {
	return &timesource.Reading{
		Host:       host,
		Offset:     offset,
		Precision:  1e-4,
		RTT:        rtt,
		ReceivedAt: time.Now().UTC(),
	}
}

func TestEstimatorFusesReading(t *testing.T) {
	src := &fakeSource{replies: []fakeReply{
		{reading: fakeReading("ntp.test", 250*time.Millisecond, 80*time.Millisecond)},
	}}

	e := New(src,
		WithHosts("ntp.test"),
		WithDiffusivity(0),
		WithRand(rand.New(rand.NewSource(1))),
	)

	sink := make(chan *clock.OffsetEvent, 1)
	e.AddOffsetSink(sink)

	var succeeded []*SyncSucceededEvent
	e.Events.SyncSucceeded.Attach(event.NewClosure(func(ev *SyncSucceededEvent) {
		succeeded = append(succeeded, ev)
	}))

	updates := 0
	e.Events.OffsetUpdated.Attach(event.NewClosure(func(_ *clock.OffsetEvent) {
		updates++
	}))

	e.Resync(context.Background())

	require.Len(t, sink, 1)
	estimate := <-sink
	assert.InDelta(t, 0.25, estimate.AvgOffset.Seconds(), 1e-3)
	assert.Greater(t, estimate.StddevOffset, float32(0))
	assert.Less(t, estimate.StddevOffset, float32(0.03))

	require.Len(t, succeeded, 1)
	assert.Equal(t, 1, succeeded[0].Attempts)
	assert.Equal(t, "ntp.test", succeeded[0].Reading.Host)

	assert.Equal(t, 1, updates)
	assert.Equal(t, StateIdle, e.State())
}

func TestEstimatorSkipsQueryWhilePrecise(t *testing.T) {
	src := &fakeSource{}

	e := New(src, WithTargetPrecision(10.0))

	sink := make(chan *clock.OffsetEvent, 1)
	e.AddOffsetSink(sink)

	e.Resync(context.Background())

	require.Len(t, sink, 1)
	estimate := <-sink
	assert.Equal(t, time.Duration(0), estimate.AvgOffset)
	assert.InDelta(t, 1.0, float64(estimate.StddevOffset), 1e-6)

	assert.Zero(t, src.queryCount())
}

func TestEstimatorRetriesUntilSuccess(t *testing.T) {
	src := &fakeSource{replies: []fakeReply{
		{err: errors.New("timeout")},
		{err: errors.New("timeout")},
		{reading: fakeReading("2.pool.test", -5*time.Millisecond, 40*time.Millisecond)},
	}}

	e := New(src,
		WithHosts("0.pool.test", "1.pool.test", "2.pool.test"),
		WithMaxTries(3),
		WithRand(rand.New(rand.NewSource(7))),
	)

	sink := make(chan *clock.OffsetEvent, 1)
	e.AddOffsetSink(sink)

	e.Resync(context.Background())

	assert.Equal(t, 3, src.queryCount())
	require.Len(t, sink, 1)
	assert.InDelta(t, -0.005, (<-sink).AvgOffset.Seconds(), 1e-3)

	for _, host := range src.queried {
		assert.Contains(t, e.Hosts(), host)
	}
}

func TestEstimatorGivesUpAfterMaxTries(t *testing.T) {
	src := &fakeSource{}

	e := New(src, WithMaxTries(3), WithRand(rand.New(rand.NewSource(7))))

	sink := make(chan *clock.OffsetEvent, 1)
	e.AddOffsetSink(sink)

	var failures []*SyncFailedEvent
	e.Events.SyncFailed.Attach(event.NewClosure(func(ev *SyncFailedEvent) {
		failures = append(failures, ev)
	}))

	e.Resync(context.Background())

	assert.Equal(t, 3, src.queryCount())
	assert.Empty(t, sink)

	require.Len(t, failures, 1)
	assert.Equal(t, 3, failures[0].Attempts)
	assert.Error(t, failures[0].LastError)
}

func TestEstimatorHonorsCancellation(t *testing.T) {
	src := &fakeSource{}

	e := New(src)

	sink := make(chan *clock.OffsetEvent, 1)
	e.AddOffsetSink(sink)

	failures := 0
	e.Events.SyncFailed.Attach(event.NewClosure(func(_ *SyncFailedEvent) {
		failures++
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e.Resync(ctx)

	assert.Zero(t, src.queryCount())
	assert.Empty(t, sink)
	assert.Zero(t, failures)
}

func TestEstimatorDoesNotBlockOnFullSink(t *testing.T) {
	e := New(&fakeSource{}, WithTargetPrecision(10.0))

	// No reader on an unbuffered channel, so only the canceled context
	// can unblock the publish.
	e.AddOffsetSink(make(chan *clock.OffsetEvent))

	updates := 0
	e.Events.OffsetUpdated.Attach(event.NewClosure(func(_ *clock.OffsetEvent) {
		updates++
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e.Resync(ctx)

	assert.Zero(t, updates)
}

func TestEstimatorRunRepublishes(t *testing.T) {
	e := New(&fakeSource{}, WithTargetPrecision(10.0), WithWakeupInterval(20*time.Millisecond))

	sink := make(chan *clock.OffsetEvent, 16)
	e.AddOffsetSink(sink)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	e.Run(ctx)

	assert.GreaterOrEqual(t, len(sink), 2)
}
