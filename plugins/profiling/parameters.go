package profiling

import (
	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the profiling plugin.
type ParametersDefinition struct {
	// BindAddress defines the config flag of the profiling binding address.
	BindAddress string `default:"localhost:6061" usage:"the bind address of the profiling server"`
}

// Parameters contains the configuration parameters of the profiling plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "profiling")
}
