package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/rwpenney/engclock/plugins/banner"
	"github.com/rwpenney/engclock/plugins/cli"
	"github.com/rwpenney/engclock/plugins/config"
	"github.com/rwpenney/engclock/plugins/display"
	"github.com/rwpenney/engclock/plugins/gracefulshutdown"
	"github.com/rwpenney/engclock/plugins/logger"
	"github.com/rwpenney/engclock/plugins/metrics"
	"github.com/rwpenney/engclock/plugins/profiling"
	"github.com/rwpenney/engclock/plugins/ticker"
	"github.com/rwpenney/engclock/plugins/timesync"
)

// Core contains the core plugins of an eng-clock node.
var Core = node.Plugins(
	banner.Plugin,
	config.Plugin,
	logger.Plugin,
	cli.Plugin,
	gracefulshutdown.Plugin,
	profiling.Plugin,
	timesync.Plugin,
	ticker.Plugin,
	display.Plugin,
	metrics.Plugin,
)
