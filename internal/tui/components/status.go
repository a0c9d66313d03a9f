package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"noseburn/internal/theme"
	"noseburn/internal/vm"
)

// StatusBar is the bottom bar: run state, counters, and the key help line.
type StatusBar struct {
	wrapper *tview.TextView
}

// NewStatusBar creates the status bar.
func NewStatusBar() *StatusBar {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false)
	view.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	view.SetTextColor(theme.Current().Status.Foreground)
	view.SetText(" Loading...")

	return &StatusBar{wrapper: view}
}

// GetWrapper returns the underlying TextView.
func (sb *StatusBar) GetWrapper() *tview.TextView {
	return sb.wrapper
}

// Update redraws the bar from a frame snapshot.
func (sb *StatusBar) Update(f vm.Frame) {
	colors := theme.Current().Status

	var text strings.Builder
	text.WriteString(" ")
	switch {
	case f.State == vm.StateErrored:
		fmt.Fprintf(&text, "[%s]Errored[-]: %v", colors.ErroredFg.String(), f.Err)
	case f.State == vm.StateHalted:
		fmt.Fprintf(&text, "[%s]Halted[-]", colors.HaltedFg.String())
	case f.Paused:
		fmt.Fprintf(&text, "[%s]Paused[-]", colors.PausedFg.String())
	default:
		fmt.Fprintf(&text, "[%s]%s[-]", colors.RunningFg.String(), f.State)
	}

	fmt.Fprintf(&text, " | steps %d | pc %d | %s", f.Steps, f.PC, FormatRate(f.Rate))

	runLabel := "Run"
	if !f.Paused {
		runLabel = "Pause"
	}
	fmt.Fprintf(&text, "\n Q:Quit  S:Step  Space:%s  R:Reset  Up:Slower  Down:Faster  (other keys feed input)", runLabel)

	sb.wrapper.SetText(text.String())
}
