package info

import (
	"net/http"
	"sort"

	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"go.uber.org/dig"

	"github.com/rwpenney/engclock/packages/app/jsonmodels"
	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/packages/core/timesync"
	"github.com/rwpenney/engclock/plugins/banner"
	"github.com/rwpenney/engclock/plugins/metrics"
)

// PluginName is the name of the web API info endpoint plugin.
const PluginName = "WebAPIInfoEndpoint"

type dependencies struct {
	dig.In

	Server    *echo.Echo
	Estimator *timesync.OffsetEstimator
}

var (
	// Plugin is the plugin instance of the web API info endpoint plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)
)

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure)
}

func configure(_ *node.Plugin) {
	deps.Server.GET("info", getInfo)
}

// getInfo returns the info of the node.
// e.g.,
//	{
//		"version": "v0.2.0",
//		"syncState": "idle",
//		"offset_ms": -1.532,
//		"stddev_ms": 12.4,
//		"lastTickId": 6729341,
//		"ntpHosts": ["0.pool.ntp.org"],
//		"enabledPlugins": ["Banner", "CLI", ...],
//		"disabledPlugins": ["Profiling"]
//	}
func getInfo(c echo.Context) error {
	var enabledPlugins []string
	var disabledPlugins []string
	for pluginName, plugin := range node.GetPlugins() {
		if node.IsSkipped(plugin) {
			disabledPlugins = append(disabledPlugins, pluginName)
		} else {
			enabledPlugins = append(enabledPlugins, pluginName)
		}
	}

	sort.Strings(enabledPlugins)
	sort.Strings(disabledPlugins)

	estimate := deps.Estimator.Estimate(clock.UTCNow())

	return c.JSON(http.StatusOK, jsonmodels.InfoResponse{
		Version:         banner.AppVersion,
		SyncState:       deps.Estimator.State().String(),
		OffsetMS:        estimate.AvgOffset.Seconds() * 1e3,
		StddevMS:        float64(estimate.StddevOffset) * 1e3,
		LastTickID:      metrics.LastTickID(),
		NTPHosts:        deps.Estimator.Hosts(),
		EnabledPlugins:  enabledPlugins,
		DisabledPlugins: disabledPlugins,
	})
}
