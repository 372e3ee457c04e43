package statusscreen

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"

	"github.com/rwpenney/engclock/packages/core/timesync"
	"github.com/rwpenney/engclock/plugins/banner"
	"github.com/rwpenney/engclock/plugins/metrics"
)

var start = time.Now()

// UIHeaderBar is the banner row at the top of the status screen.
type UIHeaderBar struct {
	Primitive     *tview.Grid
	LogoContainer *tview.TextView
	InfoContainer *tview.TextView
}

func NewUIHeaderBar() *UIHeaderBar {
	headerBar := &UIHeaderBar{
		Primitive:     tview.NewGrid(),
		LogoContainer: tview.NewTextView(),
		InfoContainer: tview.NewTextView(),
	}

	headerBar.LogoContainer.
		SetTextAlign(tview.AlignLeft).
		SetTextColor(tcell.ColorWhite).
		SetDynamicColors(true).
		SetBackgroundColor(tcell.ColorDarkBlue)

	headerBar.InfoContainer.
		SetTextAlign(tview.AlignRight).
		SetTextColor(tcell.ColorWhite).
		SetDynamicColors(true).
		SetBackgroundColor(tcell.ColorDarkBlue)

	headerBar.Primitive.
		SetColumns(21, 0).
		SetRows(0).
		SetBorders(false).
		AddItem(headerBar.LogoContainer, 0, 0, 1, 1, 0, 0, false).
		AddItem(headerBar.InfoContainer, 0, 1, 1, 1, 0, 0, false)

	headerBar.printLogo()
	headerBar.Update()

	return headerBar
}

func (headerBar *UIHeaderBar) Update() {
	duration := time.Since(start)

	headerBar.InfoContainer.Clear()

	fmt.Fprintln(headerBar.InfoContainer)
	fmt.Fprintf(headerBar.InfoContainer, "[::d]UTC ENGINEERING CLOCK  -  [::b]Sync: %s  \n",
		syncStateLabel(metrics.SyncState()))
	fmt.Fprintln(headerBar.InfoContainer)
	fmt.Fprintln(headerBar.InfoContainer)
	fmt.Fprintln(headerBar.InfoContainer, "[::b]Version: [::d]"+banner.AppVersion+"  ")
	fmt.Fprintf(headerBar.InfoContainer, "[::b]Uptime: [::d]")

	if int(duration.Seconds())/(60*60*24) > 0 {
		fmt.Fprintf(headerBar.InfoContainer, "%02dd ", int(duration.Hours())/24)
	}

	if int(duration.Seconds())/(60*60) > 0 {
		fmt.Fprintf(headerBar.InfoContainer, "%02dh ", int(duration.Hours())%24)
	}

	if int(duration.Seconds())/60 > 0 {
		fmt.Fprintf(headerBar.InfoContainer, "%02dm ", int(duration.Minutes())%60)
	}

	fmt.Fprintf(headerBar.InfoContainer, "%02ds  ", int(duration.Seconds())%60)
}

func (headerBar *UIHeaderBar) printLogo() {
	fmt.Fprintln(headerBar.LogoContainer, "")
	fmt.Fprintln(headerBar.LogoContainer, "  ENG CLOCK "+banner.AppVersion)
	fmt.Fprintln(headerBar.LogoContainer, "      _____")
	fmt.Fprintln(headerBar.LogoContainer, "     /  12 \\")
	fmt.Fprintln(headerBar.LogoContainer, "    |9  |  3|")
	fmt.Fprintln(headerBar.LogoContainer, "    |   +-  |")
	fmt.Fprintln(headerBar.LogoContainer, "     \\__6__/")
}

func syncStateLabel(state timesync.State) string {
	label := strings.ToUpper(state.String())

	switch state {
	case timesync.StateQuerying:
		return "[yellow::b]" + label
	case timesync.StateUpdating:
		return "[orange::b]" + label
	default:
		return "[green::b]" + label
	}
}
