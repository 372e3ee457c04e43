package timesource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNTPSourceTimeoutFallback(t *testing.T) {
	assert.Equal(t, DefaultQueryTimeout, NewNTPSource(0).timeout)
	assert.Equal(t, DefaultQueryTimeout, NewNTPSource(-time.Second).timeout)
	assert.Equal(t, 500*time.Millisecond, NewNTPSource(500*time.Millisecond).timeout)
}

func TestNTPSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reading, err := NewNTPSource(time.Second).Query(ctx, "0.pool.ntp.org")
	assert.Error(t, err)
	assert.Nil(t, reading)
}
