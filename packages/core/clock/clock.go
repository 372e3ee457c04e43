// Package clock provides the wall-clock helpers and event payloads
// shared by the tick scheduler, the offset estimator and the various
// display surfaces.
package clock

import "time"

// UTCNow returns the current reading of the local system clock,
// normalized to UTC.
func UTCNow() time.Time {
	return time.Now().UTC()
}

// Corrected applies an estimated clock offset to a local timestamp,
// such that corrected = local + offset.
func Corrected(local time.Time, offset time.Duration) time.Time {
	return local.Add(offset).UTC()
}

// phaseChars cycles once per second across the four quarter-second
// beats of the metronome.
var phaseChars = [4]rune{'=', ':', '.', ':'}

// PhaseChar returns the separator glyph associated with a beat.
func PhaseChar(tickID int64) rune {
	idx := tickID % int64(len(phaseChars))
	if idx < 0 {
		idx += int64(len(phaseChars))
	}

	return phaseChars[idx]
}
