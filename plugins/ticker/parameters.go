package ticker

import (
	"time"

	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the ticker plugin.
type ParametersDefinition struct {
	// Period defines the spacing of beats.
	Period time.Duration `default:"250ms" usage:"the spacing of metronome beats"`
}

// Parameters contains the configuration parameters of the ticker plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "ticker")
}
