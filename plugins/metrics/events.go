package metrics

import (
	"github.com/iotaledger/hive.go/generics/event"
)

// Events defines the events of the plugin.
var Events *EventsStruct

type EventsStruct struct {
	// Fired when the beats per second metric is updated.
	BeatRateUpdated *event.Event[*BeatRateUpdatedEvent]
}

func newEvents() (new *EventsStruct) {
	return &EventsStruct{
		BeatRateUpdated: event.New[*BeatRateUpdatedEvent](),
	}
}

func init() {
	Events = newEvents()
}

// BeatRateUpdatedEvent carries the freshly sampled number of beats per second.
type BeatRateUpdatedEvent struct {
	BPS float64
}
