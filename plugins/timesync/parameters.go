package timesync

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the timesync plugin.
type ParametersDefinition struct {
	// NTPPools defines the config flag of the NTP pools.
	NTPPools []string `default:"0.pool.ntp.org,1.pool.ntp.org,2.pool.ntp.org,3.pool.ntp.org" usage:"list of NTP pools to estimate the clock offset from"`

	// WakeupInterval defines the pause between two probe cycles.
	WakeupInterval time.Duration `default:"11s" usage:"how long to pause between clock-offset probe cycles"`

	// TargetPrecision defines the offset uncertainty below which the pools are left alone, in seconds.
	TargetPrecision float64 `default:"0.03" usage:"the clock-offset uncertainty (in seconds) below which no queries are sent"`

	// MaxTries defines the number of servers probed in a single cycle.
	MaxTries int `default:"3" usage:"how many servers to try per probe cycle before giving up"`

	// QueryTimeout bounds a single server round-trip.
	QueryTimeout time.Duration `default:"5s" usage:"the timeout of a single NTP query"`

	// InitialUncertainty seeds the width of the offset belief, in seconds.
	InitialUncertainty float64 `default:"1.0" usage:"the width (in seconds) of the clock-offset belief before the first measurement"`

	// Diffusivity controls how quickly a stale estimate loses confidence.
	Diffusivity float64 `default:"0.5" usage:"how quickly (in seconds per square-root day) a stale clock-offset estimate loses confidence"`
}

// Parameters contains the configuration parameters of the timesync plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "timesync")
}
