package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/info", r.URL.Path)

		w.Header().Set("Content-Type", contentTypeJSON)
		_, err := w.Write([]byte(`{
			"version": "v0.2.0",
			"syncState": "idle",
			"offset_ms": -1.25,
			"stddev_ms": 12.5,
			"lastTickId": 6729341,
			"ntpHosts": ["0.pool.ntp.org", "1.pool.ntp.org"],
			"enabledPlugins": ["Banner", "Ticker"]
		}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	info, err := NewEngClockAPI(srv.URL).Info()
	require.NoError(t, err)

	assert.Equal(t, "v0.2.0", info.Version)
	assert.Equal(t, "idle", info.SyncState)
	assert.Equal(t, -1.25, info.OffsetMS)
	assert.Equal(t, 12.5, info.StddevMS)
	assert.Equal(t, int64(6729341), info.LastTickID)
	assert.Equal(t, []string{"0.pool.ntp.org", "1.pool.ntp.org"}, info.NTPHosts)
	assert.Equal(t, []string{"Banner", "Ticker"}, info.EnabledPlugins)
	assert.Empty(t, info.DisabledPlugins)
}

func TestInfoServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "something broke"}`))
	}))
	defer srv.Close()

	_, err := NewEngClockAPI(srv.URL).Info()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "something broke")
}

func TestHealthz(t *testing.T) {
	healthy := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/healthz", r.URL.Path)

		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	api := NewEngClockAPI(srv.URL)

	assert.ErrorIs(t, api.Healthz(), ErrUnavailable)

	healthy = true
	assert.NoError(t, api.Healthz())
}
