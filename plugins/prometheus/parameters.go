package prometheus

import (
	"github.com/iotaledger/hive.go/configuration"
)

// ParametersDefinition contains the definition of configuration parameters used by the prometheus plugin.
type ParametersDefinition struct {
	// BindAddress defines the bind address of the prometheus exporter server.
	BindAddress string `default:"127.0.0.1:9311" usage:"the bind address of the prometheus exporter server"`

	// ProcessMetrics defines whether to include process and go runtime metrics.
	ProcessMetrics bool `default:"true" usage:"include process and go runtime metrics"`
}

// Parameters contains the configuration parameters of the prometheus plugin.
var Parameters = &ParametersDefinition{}

func init() {
	configuration.BindParameters(Parameters, "prometheus")
}
