package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"

	"github.com/rwpenney/engclock/plugins/banner"
)

// PluginName is the name of the CLI plugin.
const PluginName = "CLI"

var (
	// Plugin is the plugin instance of the CLI plugin.
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	version = flag.BoolP("version", "v", false, "Prints the version")
)

func init() {
	flag.Usage = printUsage

	Plugin.Events.Init.Hook(event.NewClosure(func(_ *node.InitEvent) {
		if *version {
			fmt.Println(banner.AppName + " " + banner.AppVersion)
			os.Exit(0)
		}
	}))
}

func printUsage() {
	_, err := fmt.Fprintf(
		os.Stderr,
		"\n"+
			"ENG-CLOCK\n\n"+
			"  An NTP-disciplined engineering wall clock.\n\n"+
			"Usage:\n\n"+
			"  %s [OPTIONS]\n\n"+
			"Options:\n\n",
		filepath.Base(os.Args[0]),
	)
	if err != nil {
		panic(err)
	}

	flag.PrintDefaults()
}
