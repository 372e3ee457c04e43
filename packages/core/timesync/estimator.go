// Package timesync estimates the offset between the local system clock
// and true UTC by polling a pool of reference servers and fusing their
// readings into a slowly decaying belief.
package timesync

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/timeutil"
	"go.uber.org/atomic"

	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/stats"
	"github.com/rwpenney/engclock/packages/core/timesource"
)

const (
	// DefaultWakeupInterval is the pause between consecutive probe cycles.
	DefaultWakeupInterval = 11 * time.Second

	// DefaultTargetPrecision is the offset uncertainty, in seconds,
	// below which the network is left alone.
	DefaultTargetPrecision = 0.03

	// DefaultMaxTries bounds the number of servers probed in a single
	// cycle.
	DefaultMaxTries = 3

	// DefaultInitialUncertainty seeds the offset belief before the
	// first server has been reached, in seconds.
	DefaultInitialUncertainty float32 = 1.0

	// DefaultDiffusivity controls how quickly a stale estimate loses
	// confidence, in seconds per square-root day.
	DefaultDiffusivity float32 = 0.5
)

// DefaultHosts returns the public NTP pool that is probed when no
// servers have been configured.
func DefaultHosts() []string {
	return []string{
		"0.pool.ntp.org",
		"1.pool.ntp.org",
		"2.pool.ntp.org",
		"3.pool.ntp.org",
	}
}

// State describes what the estimator is currently doing.
type State int32

const (
	// StateIdle marks the estimator as sleeping between probe cycles.
	StateIdle State = iota

	// StateQuerying marks a server round-trip in flight.
	StateQuerying

	// StateUpdating marks a fresh reading being fused into the belief.
	StateUpdating
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateQuerying:
		return "querying"
	case StateUpdating:
		return "updating"
	default:
		return "unknown"
	}
}

// OffsetEstimator maintains a belief about the difference between the
// local system clock and true UTC, refreshed by polling a pool of
// reference servers.
type OffsetEstimator struct {
	// Events contains the notifications emitted while synchronizing.
	Events *Events

	source timesource.Source
	opts   *Options
	sinks  []chan<- *clock.OffsetEvent

	state atomic.Int32

	beliefMutex sync.Mutex
	belief      *stats.BayesOffset
}

// Option is a function setting an option on an Options struct.
type Option func(*Options)

// Options defines the tunables of an OffsetEstimator.
type Options struct {
	Hosts              []string
	WakeupInterval     time.Duration
	TargetPrecision    float64
	MaxTries           int
	InitialUncertainty float32
	Diffusivity        float32
	Rand               *rand.Rand
}

var defaultOpts = []Option{
	WithWakeupInterval(DefaultWakeupInterval),
	WithTargetPrecision(DefaultTargetPrecision),
	WithMaxTries(DefaultMaxTries),
	WithInitialUncertainty(DefaultInitialUncertainty),
	WithDiffusivity(DefaultDiffusivity),
}

// WithHosts returns an Option replacing the pool of reference servers.
func WithHosts(hosts ...string) Option {
	return func(opts *Options) {
		opts.Hosts = hosts
	}
}

// WithWakeupInterval returns an Option setting the pause between probe
// cycles.
func WithWakeupInterval(interval time.Duration) Option {
	return func(opts *Options) {
		opts.WakeupInterval = interval
	}
}

// WithTargetPrecision returns an Option setting the offset uncertainty,
// in seconds, below which no queries are sent.
func WithTargetPrecision(seconds float64) Option {
	return func(opts *Options) {
		opts.TargetPrecision = seconds
	}
}

// WithMaxTries returns an Option bounding the servers probed per cycle.
func WithMaxTries(n int) Option {
	return func(opts *Options) {
		opts.MaxTries = n
	}
}

// WithInitialUncertainty returns an Option seeding the width of the
// offset belief, in seconds.
func WithInitialUncertainty(seconds float32) Option {
	return func(opts *Options) {
		opts.InitialUncertainty = seconds
	}
}

// WithDiffusivity returns an Option setting how quickly a stale
// estimate loses confidence, in seconds per square-root day.
func WithDiffusivity(perSqrtDay float32) Option {
	return func(opts *Options) {
		opts.Diffusivity = perSqrtDay
	}
}

// WithRand returns an Option injecting the randomness used for server
// selection.
func WithRand(rng *rand.Rand) Option {
	return func(opts *Options) {
		opts.Rand = rng
	}
}

// New creates an OffsetEstimator that probes the given source.
func New(src timesource.Source, opts ...Option) *OffsetEstimator {
	e := &OffsetEstimator{
		Events: newEvents(),
		source: src,
		opts:   &Options{},
	}

	for _, defOpt := range defaultOpts {
		defOpt(e.opts)
	}
	for _, opt := range opts {
		opt(e.opts)
	}

	if len(e.opts.Hosts) == 0 {
		e.opts.Hosts = DefaultHosts()
	}
	if e.opts.MaxTries < 1 {
		e.opts.MaxTries = 1
	}
	if e.opts.Rand == nil {
		e.opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.belief = stats.NewBayesOffset(e.opts.InitialUncertainty, e.opts.Diffusivity)

	return e
}

// AddOffsetSink registers a channel receiving every published estimate.
// All sinks must be registered before Run is called.
func (e *OffsetEstimator) AddOffsetSink(sink chan<- *clock.OffsetEvent) {
	e.sinks = append(e.sinks, sink)
}

// State reports what the estimator is currently doing.
func (e *OffsetEstimator) State() State {
	return State(e.state.Load())
}

// Hosts returns the pool of reference servers being probed.
func (e *OffsetEstimator) Hosts() []string {
	hosts := make([]string, len(e.opts.Hosts))
	copy(hosts, e.opts.Hosts)

	return hosts
}

// Estimate returns the current offset belief evaluated at the given
// instant.
func (e *OffsetEstimator) Estimate(at time.Time) *clock.OffsetEvent {
	e.beliefMutex.Lock()
	defer e.beliefMutex.Unlock()

	return &clock.OffsetEvent{
		AvgOffset:    e.belief.AvgOffset(),
		StddevOffset: e.belief.StddevOffset(at),
	}
}

// Run probes the reference servers once immediately and then at every
// wakeup interval, blocking until the context is canceled.
func (e *OffsetEstimator) Run(ctx context.Context) {
	e.Resync(ctx)

	timeutil.NewTicker(func() { e.Resync(ctx) }, e.opts.WakeupInterval, ctx)

	<-ctx.Done()
}

// Resync runs a single probe cycle. While the belief is still tighter
// than the target precision the network is left alone and the current
// estimate is merely republished; otherwise randomly chosen servers are
// queried until one of them responds, and the reading is fused into the
// belief.
func (e *OffsetEstimator) Resync(ctx context.Context) {
	defer e.state.Store(int32(StateIdle))

	now := clock.UTCNow()
	if float64(e.stddevAt(now)) < e.opts.TargetPrecision {
		e.publish(ctx, now)
		return
	}

	e.state.Store(int32(StateQuerying))

	reading, attempts, err := e.query(ctx)
	if err != nil {
		if ctx.Err() == nil {
			e.Events.SyncFailed.Trigger(&SyncFailedEvent{Attempts: attempts, LastError: err})
		}
		return
	}

	e.state.Store(int32(StateUpdating))

	// A reading cannot be more trustworthy than the width of its
	// round-trip window, whatever precision the server claims.
	precision := float32(0.25*reading.RTT.Seconds() + reading.Precision)

	e.beliefMutex.Lock()
	e.belief.AddObservation(float32(reading.Offset.Seconds()), precision, reading.ReceivedAt)
	e.beliefMutex.Unlock()

	e.Events.SyncSucceeded.Trigger(&SyncSucceededEvent{Reading: reading, Attempts: attempts})

	e.publish(ctx, reading.ReceivedAt)
}

func (e *OffsetEstimator) query(ctx context.Context) (reading *timesource.Reading, attempts int, err error) {
	var lastErr error
	for attempts < e.opts.MaxTries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, attempts, errors.WithStack(ctxErr)
		}
		attempts++

		host := e.opts.Hosts[e.opts.Rand.Intn(len(e.opts.Hosts))]

		reading, err = e.source.Query(ctx, host)
		if err == nil {
			return reading, attempts, nil
		}
		lastErr = err
	}

	return nil, attempts, errors.Wrapf(lastErr, "no usable reading after %d attempts", attempts)
}

func (e *OffsetEstimator) stddevAt(at time.Time) float32 {
	e.beliefMutex.Lock()
	defer e.beliefMutex.Unlock()

	return e.belief.StddevOffset(at)
}

// publish pushes the current belief to all registered sinks and then
// triggers OffsetUpdated. Sends to full sinks block until they drain or
// the context is canceled.
func (e *OffsetEstimator) publish(ctx context.Context, at time.Time) {
	estimate := e.Estimate(at)

	for _, sink := range e.sinks {
		select {
		case sink <- estimate:
		case <-ctx.Done():
			return
		}
	}

	e.Events.OffsetUpdated.Trigger(estimate)
}
