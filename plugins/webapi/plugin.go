package webapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/shutdown"
)

// PluginName is the name of the web API plugin.
const PluginName = "WebAPI"

var (
	// Plugin is the plugin instance of the web API plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)
)

type dependencies struct {
	dig.In

	Server *echo.Echo
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, run)

	Plugin.Events.Init.Hook(event.NewClosure(func(event *node.InitEvent) {
		if err := event.Container.Provide(createServer); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// createServer creates the shared echo server that the endpoint plugins
// register their routes on.
func createServer() *echo.Echo {
	server := echo.New()
	server.Logger.SetLevel(log.ERROR)
	server.HideBanner = true
	server.HidePort = true
	server.Use(middleware.Recover())

	return server
}

func run(plugin *node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityWebAPI); err != nil {
		plugin.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	defer Plugin.LogInfof("Stopping %s ... done", PluginName)

	stopped := make(chan struct{})
	go func() {
		Plugin.LogInfof("%s started, bind-address=%s", PluginName, Parameters.BindAddress)
		if err := deps.Server.Start(Parameters.BindAddress); err != nil {
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

	Plugin.LogInfof("Stopping %s ...", PluginName)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.Server.Shutdown(shutdownCtx); err != nil {
		Plugin.LogWarnf("Error stopping: %s", err)
	}
}
