package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhaseChar(t *testing.T) {
	tests := []struct {
		tickID int64
		char   rune
	}{
		{tickID: 0, char: '='},
		{tickID: 1, char: ':'},
		{tickID: 2, char: '.'},
		{tickID: 3, char: ':'},
		{tickID: 4, char: '='},
		{tickID: 6692481, char: ':'},
		{tickID: -1, char: ':'},
		{tickID: -4, char: '='},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.char, PhaseChar(tt.tickID), "tickID=%d", tt.tickID)
	}
}

func TestCorrected(t *testing.T) {
	local := time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, local.Add(150*time.Millisecond), Corrected(local, 150*time.Millisecond))
	assert.Equal(t, local.Add(-2*time.Second), Corrected(local, -2*time.Second))
	assert.Equal(t, time.UTC, Corrected(local.In(time.FixedZone("CET", 3600)), 0).Location())
}
