package ticker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwpenney/engclock/packages/core/clock"
)

func TestPredictNext(t *testing.T) {
	tk := New(nil)

	tests := []struct {
		now     time.Time
		offset  time.Duration
		tickID  int64
		nominal time.Time
		wait    time.Duration
	}{
		{
			now:     time.Unix(0, 0),
			tickID:  1,
			nominal: time.UnixMicro(250_000).UTC(),
			wait:    250_000 * time.Microsecond,
		},
		{
			now:     time.Unix(281, 149151157),
			tickID:  1125,
			nominal: time.UnixMicro(281_250_000).UTC(),
			wait:    100_849 * time.Microsecond,
		},
		{
			now:     time.Unix(977, 739743751),
			tickID:  3912,
			nominal: time.UnixMicro(978_000_000).UTC(),
			wait:    260_257 * time.Microsecond,
		},
		{
			now:     time.UnixMicro(100_000),
			offset:  200 * time.Millisecond,
			tickID:  2,
			nominal: time.UnixMicro(500_000).UTC(),
			wait:    200_000 * time.Microsecond,
		},
	}

	for _, tt := range tests {
		tickID, nominal, wait := tk.PredictNext(tt.now, tt.offset)
		assert.Equal(t, tt.tickID, tickID, "now=%v", tt.now)
		assert.Equal(t, tt.nominal, nominal, "now=%v", tt.now)
		assert.Equal(t, tt.wait, wait, "now=%v", tt.now)
	}
}

func TestPredictNextGrid(t *testing.T) {
	tk := New(nil)

	// Predicted beats stay on the period grid with a bounded wait,
	// wherever the starting instant falls.
	for us := int64(0); us < 1_000_000; us += 12_347 {
		now := time.UnixMicro(us)

		tickID, nominal, wait := tk.PredictNext(now, 0)
		assert.Zero(t, nominal.UnixMicro()%250_000)
		assert.Equal(t, tickID*250_000, nominal.UnixMicro())
		assert.Greater(t, wait, 62_500*time.Microsecond)
		assert.LessOrEqual(t, wait, 312_500*time.Microsecond)
	}
}

func TestTickerDrainKeepsLatestOffset(t *testing.T) {
	tk := New(nil)

	tk.OffsetSink() <- &clock.OffsetEvent{AvgOffset: time.Second}
	tk.OffsetSink() <- &clock.OffsetEvent{AvgOffset: -3 * time.Second}
	tk.OffsetSink() <- &clock.OffsetEvent{AvgOffset: 42 * time.Millisecond}

	tk.drainOffsets()
	assert.Equal(t, 42*time.Millisecond, tk.offset)

	// Nothing queued leaves the last correction in place.
	tk.drainOffsets()
	assert.Equal(t, 42*time.Millisecond, tk.offset)
}

func TestTickerRunEmitsConsecutiveBeats(t *testing.T) {
	sink := make(chan *clock.TickEvent, 32)
	tk := New(sink, WithPeriod(50*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	tk.Run(ctx)
	close(sink)

	var events []*clock.TickEvent
	for ev := range sink {
		events = append(events, ev)
	}
	require.GreaterOrEqual(t, len(events), 3)

	for i, ev := range events {
		assert.Zero(t, ev.NominalTime.UnixMicro()%50_000)
		assert.Equal(t, ev.TickID*50_000, ev.NominalTime.UnixMicro())

		if i > 0 {
			assert.Equal(t, events[i-1].TickID+1, ev.TickID)
			assert.True(t, events[i-1].TransmitTime.Before(ev.TransmitTime))
		}
	}
}

func TestTickerAppliesOffsetCorrections(t *testing.T) {
	sink := make(chan *clock.TickEvent, 8)
	tk := New(sink, WithPeriod(30*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go tk.Run(ctx)

	first := <-sink
	tk.OffsetSink() <- &clock.OffsetEvent{AvgOffset: time.Hour}

	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-sink:
			// One hour ahead amounts to 120000 periods.
			if ev.TickID-first.TickID > 100_000 {
				return
			}
		case <-deadline:
			t.Fatal("offset correction never reflected in beat numbers")
		}
	}
}
