package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"noseburn/internal/theme"
	"noseburn/internal/vm"
)

// cellWidth is the rendered width of one ribbon cell: " 003 " plus the
// separator bar.
const cellWidth = 6

// RibbonView renders one memory ribbon as a row of fixed-width cells with
// the cursor cell highlighted.
type RibbonView struct {
	wrapper *tview.TextView
	name    string
}

// NewRibbonView creates a ribbon view titled with the ribbon's name.
func NewRibbonView(name string) *RibbonView {
	colors := theme.Current().Ribbon

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	view.SetBackgroundColor(colors.Background)
	view.SetBorder(true)
	view.SetBorderColor(colors.Border)
	view.SetTitleColor(colors.Title)
	view.SetTitleAlign(tview.AlignRight)
	view.SetTitle(fmt.Sprintf(" %s ", name))

	return &RibbonView{wrapper: view, name: name}
}

// GetWrapper returns the underlying TextView.
func (rv *RibbonView) GetWrapper() *tview.TextView {
	return rv.wrapper
}

// Capacity returns how many cells fit in the view at its last-drawn size.
// Before the first draw the rect is empty, so a standard terminal width is
// assumed.
func (rv *RibbonView) Capacity() int {
	_, _, w, _ := rv.wrapper.GetInnerRect()
	if w <= 0 {
		w = 80
	}
	cells := (w - 1) / cellWidth
	if cells < 1 {
		cells = 1
	}
	return cells
}

// Update redraws the view from a ribbon window snapshot.
func (rv *RibbonView) Update(win vm.RibbonWindow) {
	colors := theme.Current().Ribbon

	cellFg := colors.InactiveFg
	marker := ""
	if win.Active {
		cellFg = colors.Foreground
		marker = "*"
	}
	rv.wrapper.SetTitle(fmt.Sprintf(" %s%s [cursor %d] ", rv.name, marker, win.Start+win.Cursor))

	var indices, values strings.Builder
	indices.WriteByte(' ')
	values.WriteString("|")
	for i, cell := range win.Cells {
		indices.WriteString(fmt.Sprintf("%5d ", win.Start+i))
		if i == win.Cursor {
			values.WriteString(fmt.Sprintf("[%s:%s] %03d [-:-]|",
				colors.CursorFg.String(), colors.CursorBg.String(), cell))
		} else {
			values.WriteString(fmt.Sprintf("[%s] %03d [-]|", cellFg.String(), cell))
		}
	}

	rv.wrapper.SetText(indices.String() + "\n" + values.String())
}
