package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rwpenney/engclock/plugins/banner"
)

var (
	infoApp *prometheus.GaugeVec
)

func registerInfoMetrics() {
	infoApp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clock_info_app",
			Help: "Application name and version.",
		},
		[]string{"name", "version"},
	)
	infoApp.WithLabelValues(banner.AppName, banner.AppVersion).Set(1)

	registry.MustRegister(infoApp)
}
