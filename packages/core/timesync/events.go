package timesync

import (
	"github.com/iotaledger/hive.go/generics/event"

	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/timesource"
)

// Events defines the notifications emitted by an OffsetEstimator.
type Events struct {
	// OffsetUpdated is triggered whenever a refreshed estimate has been
	// pushed to the registered sinks.
	OffsetUpdated *event.Event[*clock.OffsetEvent]

	// SyncSucceeded is triggered for every reference reading that has
	// been fused into the offset belief.
	SyncSucceeded *event.Event[*SyncSucceededEvent]

	// SyncFailed is triggered when a probe cycle exhausts all of its
	// attempts without obtaining a usable reading.
	SyncFailed *event.Event[*SyncFailedEvent]
}

func newEvents() *Events {
	return &Events{
		OffsetUpdated: event.New[*clock.OffsetEvent](),
		SyncSucceeded: event.New[*SyncSucceededEvent](),
		SyncFailed:    event.New[*SyncFailedEvent](),
	}
}

// SyncSucceededEvent reports a successful reference-clock round-trip.
type SyncSucceededEvent struct {
	// Reading is the raw measurement obtained from the server.
	Reading *timesource.Reading

	// Attempts counts the queries needed to obtain the reading.
	Attempts int
}

// SyncFailedEvent reports a probe cycle that produced no usable reading.
type SyncFailedEvent struct {
	// Attempts counts the queries tried before giving up.
	Attempts int

	// LastError is the failure reported by the final attempt.
	LastError error
}
