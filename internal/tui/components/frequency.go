package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"noseburn/internal/theme"
	"noseburn/internal/vm"
)

// FrequencyView lists the stepping-rate ladder with the active rate marked.
type FrequencyView struct {
	wrapper *tview.TextView
}

// NewFrequencyView creates the frequency pane.
func NewFrequencyView() *FrequencyView {
	colors := theme.Current().Ribbon

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	view.SetBackgroundColor(colors.Background)
	view.SetBorder(true)
	view.SetTitle(" :[Frequency]: ")
	view.SetTitleAlign(tview.AlignCenter)

	return &FrequencyView{wrapper: view}
}

// GetWrapper returns the underlying TextView.
func (fv *FrequencyView) GetWrapper() *tview.TextView {
	return fv.wrapper
}

// Update redraws the ladder with rung active highlighted.
func (fv *FrequencyView) Update(active int) {
	var sb strings.Builder
	for i, rate := range vm.Rates() {
		if i == active {
			sb.WriteString(fmt.Sprintf(">[::b]%s[-::-]\n", FormatRate(rate)))
		} else {
			sb.WriteString(fmt.Sprintf(" %s\n", FormatRate(rate)))
		}
	}
	fv.wrapper.SetText(sb.String())
}

// FormatRate renders a stepping rate for display.
func FormatRate(rate float64) string {
	if rate == 0.5 {
		return "1/2 Hz"
	}
	return fmt.Sprintf("%g Hz", rate)
}
