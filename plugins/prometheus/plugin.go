package prometheus

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the prometheus plugin.
const PluginName = "Prometheus"

var (
	// Plugin is the plugin instance of the prometheus plugin.
	Plugin *node.Plugin

	server   *echo.Echo
	registry = prometheus.NewRegistry()
	collects []func()
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Disabled, configure, run)
}

func addCollect(collect func()) {
	collects = append(collects, collect)
}

func configure(_ *node.Plugin) {
	registerInfoMetrics()
	registerClockMetrics()

	if Parameters.ProcessMetrics {
		registerProcessMetrics()
	}
}

func run(plugin *node.Plugin) {
	Plugin.LogInfof("Starting %s ...", PluginName)
	if err := daemon.BackgroundWorker("Prometheus exporter", worker, shutdown.PriorityPrometheus); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer Plugin.LogInfo("Stopping Prometheus exporter ... done")

	server = echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.GET("/metrics", func(c echo.Context) error {
		for _, collect := range collects {
			collect()
		}

		handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
		handler.ServeHTTP(c.Response().Writer, c.Request())

		return nil
	})

	stopped := make(chan struct{})
	go func() {
		Plugin.LogInfof("%s started, bind-address=%s", PluginName, Parameters.BindAddress)
		if err := server.Start(Parameters.BindAddress); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				Plugin.LogErrorf("Error serving: %s", err)
			}
			close(stopped)
		}
	}()

	// stop if we are shutting down or the server could not be started
	select {
	case <-ctx.Done():
	case <-stopped:
	}

	Plugin.LogInfo("Stopping Prometheus exporter ...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		Plugin.LogErrorf("Error stopping: %s", err)
	}
}
