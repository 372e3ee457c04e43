package plugins

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/rwpenney/engclock/plugins/dashboard"
	"github.com/rwpenney/engclock/plugins/statusscreen"
)

// UI contains the user interface plugins of an eng-clock node.
var UI = node.Plugins(
	statusscreen.Plugin,
	dashboard.Plugin,
)
