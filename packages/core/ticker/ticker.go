// Package ticker emits beat events aligned with estimated true UTC
// rather than with the raw local clock.
package ticker

import (
	"context"
	"time"

	"github.com/rwpenney/engclock/packages/core/clock"
)

// DefaultPeriod is the nominal spacing of beats.
const DefaultPeriod = 250 * time.Millisecond

// offsetBacklog bounds the number of undrained offset corrections.
const offsetBacklog = 4

// Ticker plans beats on a fixed grid anchored at the Unix epoch,
// correcting each prediction by the most recent clock-offset estimate.
type Ticker struct {
	sink    chan<- *clock.TickEvent
	offsets chan *clock.OffsetEvent

	opts *Options

	offset time.Duration
}

// Option is a function setting an option on an Options struct.
type Option func(*Options)

// Options defines the tunables of a Ticker.
type Options struct {
	Period time.Duration
}

// WithPeriod returns an Option setting the spacing of beats.
func WithPeriod(period time.Duration) Option {
	return func(opts *Options) {
		opts.Period = period
	}
}

// New creates a Ticker pushing beats into the given sink.
func New(sink chan<- *clock.TickEvent, opts ...Option) *Ticker {
	t := &Ticker{
		sink:    sink,
		offsets: make(chan *clock.OffsetEvent, offsetBacklog),
		opts:    &Options{Period: DefaultPeriod},
	}

	for _, opt := range opts {
		opt(t.opts)
	}

	if t.opts.Period <= 0 {
		t.opts.Period = DefaultPeriod
	}

	return t
}

// OffsetSink returns the channel on which refreshed clock-offset
// estimates are delivered. Corrections are applied between beats, the
// most recent one winning.
func (t *Ticker) OffsetSink() chan<- *clock.OffsetEvent {
	return t.offsets
}

// PredictNext plans the beat following the given local time. It returns
// the sequence number of that beat, its nominal UTC instant and how
// long to wait for it. Beats lie on multiples of the period, counted
// from the Unix epoch in estimated true UTC, and a beat whose nominal
// instant has passed less than a quarter period ago is still considered
// current.
func (t *Ticker) PredictNext(now time.Time, offset time.Duration) (tickID int64, nominal time.Time, wait time.Duration) {
	periodUS := t.opts.Period.Microseconds()
	nowUS := now.Add(offset).UnixMicro()

	tickID = (nowUS + periodUS + periodUS/4) / periodUS
	nominal = time.UnixMicro(tickID * periodUS).UTC()
	wait = time.Duration(tickID*periodUS-nowUS) * time.Microsecond

	return
}

// Run emits beats until the context is canceled.
func (t *Ticker) Run(ctx context.Context) {
	for {
		tickID, nominal, wait := t.PredictNext(clock.UTCNow(), t.offset)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		ev := &clock.TickEvent{
			TickID:       tickID,
			NominalTime:  nominal,
			TransmitTime: clock.UTCNow(),
		}

		select {
		case t.sink <- ev:
		case <-ctx.Done():
			return
		}

		t.drainOffsets()
	}
}

// drainOffsets consumes all queued corrections, keeping only the most
// recent one.
func (t *Ticker) drainOffsets() {
	for {
		select {
		case ev := <-t.offsets:
			t.offset = ev.AvgOffset
		default:
			return
		}
	}
}
