package metrics

import (
	"time"

	"github.com/iotaledger/hive.go/syncutils"
	"go.uber.org/atomic"

	"github.com/rwpenney/engclock/packages/core/timesync"
)

var (
	// Number of successful NTP synchronizations since start of the node.
	syncSuccessCount atomic.Uint64

	// Number of failed NTP synchronization rounds since start of the node.
	syncFailureCount atomic.Uint64

	// Number of query attempts used by the most recent synchronization round.
	lastSyncAttempts atomic.Int32

	// Host that served the most recent successful synchronization.
	lastSyncHost string

	// Roundtrip time of the most recent successful synchronization.
	lastSyncRTT atomic.Duration

	// protect the host string from concurrent read/write.
	lastSyncHostMutex syncutils.RWMutex

	syncState atomic.Int32
)

// SyncSuccessCount returns the number of successful synchronizations since the start of the node.
func SyncSuccessCount() uint64 {
	return syncSuccessCount.Load()
}

// SyncFailureCount returns the number of failed synchronization rounds since the start of the node.
func SyncFailureCount() uint64 {
	return syncFailureCount.Load()
}

// LastSyncAttempts returns the number of query attempts used by the latest synchronization round.
func LastSyncAttempts() int {
	return int(lastSyncAttempts.Load())
}

// LastSyncHost returns the host that served the latest successful synchronization.
func LastSyncHost() string {
	lastSyncHostMutex.RLock()
	defer lastSyncHostMutex.RUnlock()

	return lastSyncHost
}

// LastSyncRTT returns the network roundtrip time of the latest successful synchronization.
func LastSyncRTT() time.Duration {
	return lastSyncRTT.Load()
}

// SyncState returns the sampled state of the offset estimator.
func SyncState() timesync.State {
	return timesync.State(syncState.Load())
}

func onSyncSucceeded(ev *timesync.SyncSucceededEvent) {
	syncSuccessCount.Inc()
	lastSyncAttempts.Store(int32(ev.Attempts))
	lastSyncRTT.Store(ev.Reading.RTT)

	lastSyncHostMutex.Lock()
	defer lastSyncHostMutex.Unlock()
	lastSyncHost = ev.Reading.Host
}

func onSyncFailed(ev *timesync.SyncFailedEvent) {
	syncFailureCount.Inc()
	lastSyncAttempts.Store(int32(ev.Attempts))
}

func measureSyncState() {
	syncState.Store(int32(deps.Estimator.State()))
}
