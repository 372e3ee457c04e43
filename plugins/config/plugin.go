package config

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/configuration"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/node"
	flag "github.com/spf13/pflag"
)

// PluginName is the name of the config plugin.
const PluginName = "Config"

var (
	// Plugin is the plugin instance of the config plugin.
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	// flags
	configFilePath = flag.StringP("config", "c", "config.json", "file path of the config file")

	// Node is the configuration instance of the node.
	Node *configuration.Configuration
)

func init() {
	Plugin.Events.Init.Hook(event.NewClosure(func(event *node.InitEvent) {
		if err := initialize(); err != nil {
			// the global logger is not available at this stage
			fmt.Println(err.Error())
			os.Exit(1)
		}

		if err := event.Container.Provide(func() *configuration.Configuration {
			return Node
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

// initialize parses the command line flags, reads the config file if one
// is present and propagates the resulting values back to the bound
// parameters.
func initialize() error {
	Node = configuration.New()

	flag.Parse()

	if err := Node.LoadFile(*configFilePath); err != nil {
		// a missing config file is fine, the defaults apply
		if !os.IsNotExist(errors.UnwrapAll(err)) {
			return errors.Wrapf(err, "unable to load config file %s", *configFilePath)
		}
	}

	if err := Node.LoadFlagSet(flag.CommandLine); err != nil {
		return errors.Wrap(err, "unable to load flag set")
	}

	// read in ENV variables
	if err := Node.LoadEnvironmentVars("engclock"); err != nil {
		return errors.Wrap(err, "unable to load environment variables")
	}

	// propagate values in the config back to bound parameters
	configuration.UpdateBoundParameters(Node)

	for _, pluginName := range Parameters.DisablePlugins {
		node.DisabledPlugins[node.GetPluginIdentifier(pluginName)] = true
	}
	for _, pluginName := range Parameters.EnablePlugins {
		node.EnabledPlugins[node.GetPluginIdentifier(pluginName)] = true
	}

	return nil
}
