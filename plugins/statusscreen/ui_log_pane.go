package statusscreen

import (
	"github.com/gdamore/tcell"
	"github.com/iotaledger/hive.go/logger"
	"github.com/rivo/tview"
)

// UILogPane lists the most recent log message of every plugin.
type UILogPane struct {
	Primitive *tview.Table
}

func NewUILogPane() *UILogPane {
	logPane := &UILogPane{
		Primitive: tview.NewTable(),
	}

	logPane.Primitive.
		SetBorder(true).
		SetTitle(" Plugins ")

	return logPane
}

func (logPane *UILogPane) Update() {
	logPane.Primitive.Clear()

	for row, statusMessage := range currentStatusMessages() {
		logPane.Primitive.SetCell(row, 0,
			tview.NewTableCell(statusMessage.Time.Format("15:04:05")).
				SetTextColor(tcell.ColorGray))
		logPane.Primitive.SetCell(row, 1,
			tview.NewTableCell(statusMessage.Source).
				SetTextColor(tcell.ColorWhite).
				SetAttributes(tcell.AttrBold))
		logPane.Primitive.SetCell(row, 2,
			tview.NewTableCell(statusMessage.Message).
				SetTextColor(levelColor(statusMessage.LogLevel)).
				SetExpansion(1))
	}
}

func levelColor(logLevel logger.Level) tcell.Color {
	switch {
	case logLevel >= logger.LevelError:
		return tcell.ColorRed
	case logLevel >= logger.LevelWarn:
		return tcell.ColorYellow
	case logLevel < logger.LevelInfo:
		return tcell.ColorGray
	default:
		return tcell.ColorWhite
	}
}
