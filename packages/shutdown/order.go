package shutdown

const (
	PriorityStatusScreen = iota
	PriorityProfiling
	PriorityPrometheus
	PriorityWebAPI
	PriorityHealthz
	PriorityDashboard
	PriorityMetrics
	PriorityDisplay
	PriorityTicker
	PriorityTimesync
)
