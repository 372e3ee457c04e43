package timesource

import (
	"context"
	"time"

	"github.com/beevik/ntp"
	"github.com/cockroachdb/errors"

	"github.com/rwpenney/engclock/packages/core/clock"
)

// DefaultQueryTimeout bounds a single SNTP round-trip.
const DefaultQueryTimeout = 5 * time.Second

// NTPSource queries SNTP servers over UDP.
type NTPSource struct {
	timeout time.Duration
}

// NewNTPSource creates a Source backed by the SNTP protocol. A
// non-positive timeout falls back to DefaultQueryTimeout.
func NewNTPSource(timeout time.Duration) *NTPSource {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	return &NTPSource{timeout: timeout}
}

// Query implements the Source interface.
func (s *NTPSource) Query(ctx context.Context, host string) (*Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "skipping query of %s", host)
	}

	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	rsp, err := ntp.QueryWithOptions(host, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", host)
	}
	if err := rsp.Validate(); err != nil {
		return nil, errors.Wrapf(err, "unusable response from %s", host)
	}

	return &Reading{
		Host:       host,
		Offset:     rsp.ClockOffset,
		Precision:  rsp.Precision.Seconds(),
		RTT:        rsp.RTT,
		ReceivedAt: clock.UTCNow(),
	}, nil
}
