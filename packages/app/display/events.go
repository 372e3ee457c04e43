package display

import (
	"github.com/iotaledger/hive.go/generics/event"

	"github.com/rwpenney/engclock/packages/core/clock"
)

// Events defines the fan-out notifications of a Feed.
type Events struct {
	// Tick is triggered for every beat received from the scheduler.
	Tick *event.Event[*clock.TickEvent]

	// Offset is triggered for every refreshed clock-offset estimate.
	Offset *event.Event[*clock.OffsetEvent]
}

func newEvents() *Events {
	return &Events{
		Tick:   event.New[*clock.TickEvent](),
		Offset: event.New[*clock.OffsetEvent](),
	}
}
