package dashboard

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/app/display"
	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/timesync"
	"github.com/rwpenney/engclock/packages/shutdown"
	"github.com/rwpenney/engclock/plugins/banner"
	"github.com/rwpenney/engclock/plugins/metrics"
)

// PluginName is the name of the dashboard plugin.
const PluginName = "Dashboard"

var (
	// Plugin is the plugin instance of the dashboard plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)

	log    *logger.Logger
	server *echo.Echo

	nodeStartAt = time.Now()
)

type dependencies struct {
	dig.In

	Feed      *display.Feed
	Estimator *timesync.OffsetEstimator
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)
}

func configure(plugin *node.Plugin) {
	log = logger.NewLogger(plugin.Name)

	configureLiveFeed()
	configureServer()
}

func configureServer() {
	server = echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Use(middleware.Recover())

	if Parameters.BasicAuth.Enabled {
		server.Use(middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
			if username == Parameters.BasicAuth.Username &&
				password == Parameters.BasicAuth.Password {
				return true, nil
			}
			return false, nil
		}))
	}

	setupRoutes(server)
}

func run(*node.Plugin) {
	// stream beats and offset estimates to the connected browsers
	runLiveFeed()

	log.Infof("Starting %s ...", PluginName)
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityDashboard); err != nil {
		log.Panicf("Error starting as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer log.Infof("Stopping %s ... done", PluginName)

	stopped := make(chan struct{})
	go func() {
		log.Infof("%s started, bind-address=%s, basic-auth=%v", PluginName, Parameters.BindAddress, Parameters.BasicAuth.Enabled)
		if err := server.Start(Parameters.BindAddress); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Error serving: %s", err)
			}
			close(stopped)
		}
	}()

	// stop if we are shutting down or the server could not be started
	select {
	case <-ctx.Done():
	case <-stopped:
	}

	log.Infof("Stopping %s ...", PluginName)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error stopping: %s", err)
	}
}

const (
	// MsgTypeClockStatus is the type of the clock status message.
	MsgTypeClockStatus byte = iota
	// MsgTypeTick is the type of the beat message.
	MsgTypeTick
	// MsgTypeOffset is the type of the offset estimate message.
	MsgTypeOffset
)

type wsmsg struct {
	Type byte        `json:"type"`
	Data interface{} `json:"data"`
}

type tickmsg struct {
	TickID    int64  `json:"tick_id"`
	NominalMS int64  `json:"nominal_ms"`
	Phase     string `json:"phase"`
	LatencyUS int64  `json:"latency_us"`
}

type offsetmsg struct {
	OffsetMS float64 `json:"offset_ms"`
	StddevMS float64 `json:"stddev_ms"`
}

type clockstatus struct {
	Version   string      `json:"version"`
	Uptime    int64       `json:"uptime"`
	SyncState string      `json:"syncState"`
	Server    string      `json:"server"`
	Hosts     []string    `json:"hosts"`
	OffsetMS  float64     `json:"offset_ms"`
	StddevMS  float64     `json:"stddev_ms"`
	BPS       float64     `json:"bps"`
	BeatCount uint64      `json:"beat_count"`
	Mem       *memmetrics `json:"mem"`
}

type memmetrics struct {
	HeapSys      uint64 `json:"heap_sys"`
	HeapAlloc    uint64 `json:"heap_alloc"`
	HeapIdle     uint64 `json:"heap_idle"`
	HeapReleased uint64 `json:"heap_released"`
	HeapObjects  uint64 `json:"heap_objects"`
	NumGC        uint32 `json:"num_gc"`
	LastPauseGC  uint64 `json:"last_pause_gc"`
}

func currentClockStatus() *clockstatus {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	estimate := deps.Estimator.Estimate(clock.UTCNow())

	return &clockstatus{
		Version:   banner.AppVersion,
		Uptime:    time.Since(nodeStartAt).Milliseconds(),
		SyncState: deps.Estimator.State().String(),
		Server:    metrics.LastSyncHost(),
		Hosts:     deps.Estimator.Hosts(),
		OffsetMS:  estimate.AvgOffset.Seconds() * 1e3,
		StddevMS:  float64(estimate.StddevOffset) * 1e3,
		BPS:       metrics.BeatsPerSecond(),
		BeatCount: metrics.BeatTotalCount(),
		Mem: &memmetrics{
			HeapSys:      m.HeapSys,
			HeapAlloc:    m.HeapAlloc,
			HeapIdle:     m.HeapIdle,
			HeapReleased: m.HeapReleased,
			HeapObjects:  m.HeapObjects,
			NumGC:        m.NumGC,
			LastPauseGC:  m.PauseNs[(m.NumGC+255)%256],
		},
	}
}
