package components

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"noseburn/internal/theme"
)

// IOView is a one-line pane showing program output or pending input. Only
// the tail that fits is shown, measured in display columns so wide runes in
// program output do not overflow the pane.
type IOView struct {
	wrapper *tview.TextView
}

// NewIOView creates an input or output pane with the given title.
func NewIOView(title string) *IOView {
	colors := theme.Current().Ribbon

	view := tview.NewTextView().
		SetWrap(false)
	view.SetBackgroundColor(colors.Background)
	view.SetTextColor(colors.Foreground)
	view.SetBorder(true)
	view.SetBorderColor(colors.Border)
	view.SetTitleColor(colors.Title)
	view.SetTitleAlign(tview.AlignRight)
	view.SetTitle(" " + title + " ")

	return &IOView{wrapper: view}
}

// GetWrapper returns the underlying TextView.
func (iv *IOView) GetWrapper() *tview.TextView {
	return iv.wrapper
}

// Update sets the pane text, keeping the tail when it is too wide to fit.
func (iv *IOView) Update(text string) {
	_, _, w, _ := iv.wrapper.GetInnerRect()
	if w > 0 && runewidth.StringWidth(text) > w {
		text = "…" + runewidth.TruncateLeft(text, runewidth.StringWidth(text)-w+1, "")
	}
	iv.wrapper.SetText(text)
}
