package statusscreen

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/rwpenney/engclock/packages/core/clock"
)

// UIClockPane renders the wall-clock face driven by the arriving beats.
type UIClockPane struct {
	Primitive *tview.TextView
}

func NewUIClockPane() *UIClockPane {
	clockPane := &UIClockPane{
		Primitive: tview.NewTextView(),
	}

	clockPane.Primitive.
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	clockPane.Primitive.
		SetBorder(true).
		SetTitle(" UTC ")

	clockPane.Update(nil, 0)

	return clockPane
}

// Update redraws the clock face from the most recent beat. Until the
// first beat arrives a placeholder is shown instead of a time.
func (clockPane *UIClockPane) Update(tick *clock.TickEvent, latency time.Duration) {
	clockPane.Primitive.Clear()

	fmt.Fprintln(clockPane.Primitive)
	if tick == nil {
		fmt.Fprintln(clockPane.Primitive, "[::d]--:--:--")
		return
	}

	fmt.Fprintf(clockPane.Primitive, "[blue::b]%s[-::-] [::d]%c[-::-]\n",
		tick.NominalTime.Format("15:04:05"), clock.PhaseChar(tick.TickID))
	fmt.Fprintln(clockPane.Primitive)
	fmt.Fprintf(clockPane.Primitive, "[::d]Latency= %dus\n", latency.Microseconds())
}
