package banner

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/node"
)

// PluginName is the name of the banner plugin.
const PluginName = "Banner"

var (
	// Plugin is the plugin instance of the banner plugin.
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)

	// AppVersion version number
	AppVersion = "v0.2.0"
	// SimplifiedAppVersion is the version number without commit hash
	SimplifiedAppVersion = simplifiedVersion(AppVersion)
)

const (
	// AppName app code name
	AppName = "eng-clock"

	banner = `
 _____  _   _   ____      ____  _       ___    ____  _  __
| ____|| \ | | / ___|    / ___|| |     / _ \  / ___|| |/ /
|  _|  |  \| || |  _    | |    | |    | | | || |    | ' /
| |___ | |\  || |_| |   | |___ | |___ | |_| || |___ | . \
|_____||_| \_| \____|    \____||_____| \___/  \____||_|\_\
                         %s
`
)

func configure(plugin *node.Plugin) {
	fmt.Printf(banner, AppVersion)
	fmt.Println()

	plugin.LogInfof("%s version %s ...", AppName, AppVersion)
	plugin.LogInfo("Loading plugins ...")
}

func simplifiedVersion(version string) string {
	// ignore commit hash
	ver := version
	if strings.Contains(ver, "-") {
		ver = strings.Split(ver, "-")[0]
	}
	// attach a "v" at front, if missing
	if !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}

	return ver
}
