package gracefulshutdown

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/node"
)

// PluginName is the name of the graceful shutdown plugin.
const PluginName = "GracefulShutdown"

var (
	// Plugin is the plugin instance of the graceful shutdown plugin.
	Plugin *node.Plugin

	gracefulStop chan os.Signal
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)
	gracefulStop = make(chan os.Signal, 1)
}

func configure(plugin *node.Plugin) {
	signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-gracefulStop

		waitSeconds := int(Parameters.WaitToKillTime.Seconds())
		plugin.LogWarnf("Received shutdown request - waiting (max %d seconds) to finish processing ...", waitSeconds)

		go func() {
			start := time.Now()
			for x := range time.Tick(1 * time.Second) {
				secondsSinceStart := int(x.Sub(start).Seconds())

				if secondsSinceStart <= waitSeconds {
					processList := ""
					runningBackgroundWorkers := daemon.GetRunningBackgroundWorkers()
					if len(runningBackgroundWorkers) >= 1 {
						processList = "(" + strings.Join(runningBackgroundWorkers, ", ") + ") "
					}
					plugin.LogWarnf("Received shutdown request - waiting (max %d seconds) to finish processing %s...", waitSeconds-secondsSinceStart, processList)
				} else {
					plugin.LogError("Background processes did not terminate in time! Forcing shutdown ...")
					os.Exit(1)
				}
			}
		}()

		daemon.Shutdown()
	}()
}
