package main

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/rwpenney/engclock/plugins"
)

func main() {
	node.Run(
		plugins.Core,
		plugins.UI,
		plugins.WebAPI,
	)
}
