package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/rwpenney/engclock/plugins/prometheus"
	"github.com/rwpenney/engclock/plugins/webapi"
	"github.com/rwpenney/engclock/plugins/webapi/healthz"
	"github.com/rwpenney/engclock/plugins/webapi/info"
)

// WebAPI contains the webapi endpoint plugins of an eng-clock node.
var WebAPI = node.Plugins(
	webapi.Plugin,
	info.Plugin,
	healthz.Plugin,
	prometheus.Plugin,
)
