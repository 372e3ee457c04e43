package statusscreen

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/rwpenney/engclock/packages/core/clock"
	"github.com/rwpenney/engclock/plugins/metrics"
)

// UIStatsPane summarizes the state of the NTP synchronization.
type UIStatsPane struct {
	Primitive *tview.TextView
}

func NewUIStatsPane() *UIStatsPane {
	statsPane := &UIStatsPane{
		Primitive: tview.NewTextView(),
	}

	statsPane.Primitive.
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true)
	statsPane.Primitive.
		SetBorder(true).
		SetTitle(" Synchronization ")

	statsPane.Update(nil)

	return statsPane
}

func (statsPane *UIStatsPane) Update(offset *clock.OffsetEvent) {
	statsPane.Primitive.Clear()

	fmt.Fprintln(statsPane.Primitive)
	if offset == nil {
		fmt.Fprintln(statsPane.Primitive, " [::d]waiting for the first estimate ...")
	} else {
		fmt.Fprintf(statsPane.Primitive, " [::b]Offset: [::d]%+.3fms ± %.1fms\n",
			offset.AvgOffset.Seconds()*1e3, float64(offset.StddevOffset)*1e3)
	}

	host := metrics.LastSyncHost()
	if host == "" {
		host = "-"
	}
	if rtt := metrics.LastSyncRTT(); rtt > 0 {
		host += fmt.Sprintf("  rtt=%s", rtt)
	}

	fmt.Fprintf(statsPane.Primitive, " [::b]Server: [::d]%s\n", host)
	fmt.Fprintf(statsPane.Primitive, " [::b]Syncs:  [::d]%d ok / %d failed\n",
		metrics.SyncSuccessCount(), metrics.SyncFailureCount())
	fmt.Fprintf(statsPane.Primitive, " [::b]Beats:  [::d]%.1f/s, %d total\n",
		metrics.BeatsPerSecond(), metrics.BeatTotalCount())
	fmt.Fprintf(statsPane.Primitive, " [::b]Latest: [::d]beat #%d, latency %s\n",
		metrics.LastTickID(), metrics.AvgBeatLatency())
}
