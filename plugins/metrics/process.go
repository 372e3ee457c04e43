package metrics

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"go.uber.org/atomic"
)

var (
	// Combined CPU usage in percent, sampled over the measurement interval.
	cpuUsage atomic.Float64

	// Bytes of allocated heap objects.
	memUsage atomic.Uint64
)

// CPUUsage returns the sampled system CPU usage in percent.
func CPUUsage() float64 {
	return cpuUsage.Load()
}

// MemUsage returns the sampled memory usage in bytes.
func MemUsage() uint64 {
	return memUsage.Load()
}

func measureCPUUsage() {
	// a zero interval compares against the previous call instead of blocking
	percent, err := cpu.Percent(0, false)
	if err != nil || len(percent) == 0 {
		return
	}

	cpuUsage.Store(percent[0])
}

func measureMemUsage() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	memUsage.Store(m.Alloc)
}
