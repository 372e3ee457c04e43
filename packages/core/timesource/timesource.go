// Package timesource abstracts the reference clocks that the offset
// estimator samples over the network.
package timesource

import (
	"context"
	"time"
)

// Reading is a single round-trip measurement against a reference clock.
type Reading struct {
	// Host identifies the queried server.
	Host string

	// Offset is the estimated difference between the reference clock
	// and the local system clock, such that reference = local + Offset.
	Offset time.Duration

	// Precision is the precision the server reports for its own clock,
	// in seconds.
	Precision float64

	// RTT is the measured network round-trip time of the query.
	RTT time.Duration

	// ReceivedAt is the local wall-clock time at which the response
	// arrived.
	ReceivedAt time.Time
}

// Source produces clock readings from named remote hosts.
type Source interface {
	// Query performs a single measurement against the given host.
	Query(ctx context.Context, host string) (*Reading, error)
}
