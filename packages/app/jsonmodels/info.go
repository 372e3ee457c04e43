package jsonmodels

// InfoResponse holds the response of the GET request.
type InfoResponse struct {
	// version of the application
	Version string `json:"version,omitempty"`
	// what the offset estimator is currently doing
	SyncState string `json:"syncState"`
	// estimated offset of the local clock, in milliseconds
	OffsetMS float64 `json:"offset_ms"`
	// uncertainty of the offset estimate, in milliseconds
	StddevMS float64 `json:"stddev_ms"`
	// identifier of the most recently emitted beat
	LastTickID int64 `json:"lastTickId"`
	// pool of NTP servers being probed
	NTPHosts []string `json:"ntpHosts,omitempty"`
	// list of enabled plugins
	EnabledPlugins []string `json:"enabledPlugins,omitempty"`
	// list of disabled plugins
	DisabledPlugins []string `json:"disabledPlugins,omitempty"`
	// error of the response
	Error string `json:"error,omitempty"`
}
