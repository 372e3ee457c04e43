package clock

import "time"

// TickEvent describes a single beat of the metronome, emitted shortly
// before the nominal instant it refers to.
type TickEvent struct {
	// TickID counts beat periods since the Unix epoch.
	TickID int64

	// NominalTime is the idealized UTC instant of the beat.
	NominalTime time.Time

	// TransmitTime is the local wall-clock time at which the event was
	// handed to its consumers.
	TransmitTime time.Time
}

// OffsetEvent carries a fresh estimate of the difference between the
// local system clock and true UTC.
type OffsetEvent struct {
	// AvgOffset is the mean estimated correction, to be added to a
	// local timestamp to obtain true UTC.
	AvgOffset time.Duration

	// StddevOffset is the standard deviation of that estimate, in
	// seconds.
	StddevOffset float32
}
