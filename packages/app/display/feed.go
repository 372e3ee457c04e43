// Package display serializes the event streams of the beat scheduler
// and the offset estimator and fans them out to the attached user
// interfaces.
package display

import (
	"context"

	"github.com/rwpenney/engclock/packages/core/clock"
)

const (
	tickBacklog   = 16
	offsetBacklog = 4
)

// Feed drains beat and offset events on a single goroutine and
// republishes them to any number of attached handlers.
type Feed struct {
	// Events contains the republished notifications.
	Events *Events

	ticks   chan *clock.TickEvent
	offsets chan *clock.OffsetEvent
}

// NewFeed creates a Feed with no handlers attached.
func NewFeed() *Feed {
	return &Feed{
		Events:  newEvents(),
		ticks:   make(chan *clock.TickEvent, tickBacklog),
		offsets: make(chan *clock.OffsetEvent, offsetBacklog),
	}
}

// TickSink returns the channel on which beats are delivered.
func (f *Feed) TickSink() chan<- *clock.TickEvent {
	return f.ticks
}

// OffsetSink returns the channel on which offset estimates are
// delivered.
func (f *Feed) OffsetSink() chan<- *clock.OffsetEvent {
	return f.offsets
}

// Run dispatches queued events to the attached handlers until the
// context is canceled. Handlers run on the dispatching goroutine and
// must not block.
func (f *Feed) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-f.ticks:
			f.Events.Tick.Trigger(ev)
		case ev := <-f.offsets:
			f.Events.Offset.Trigger(ev)
		}
	}
}
