package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"noseburn/internal/theme"
	"noseburn/internal/vm"
)

// CodeView renders the program source with the next instruction highlighted,
// scrolling to keep the highlight in view.
type CodeView struct {
	wrapper *tview.TextView
}

// NewCodeView creates the source code pane.
func NewCodeView() *CodeView {
	colors := theme.Current().Code

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	view.SetBackgroundColor(colors.Background)
	view.SetTextColor(colors.Foreground)
	view.SetBorder(true)
	view.SetTitle(" -::[Code]::- ")
	view.SetTitleAlign(tview.AlignCenter)

	return &CodeView{wrapper: view}
}

// GetWrapper returns the underlying TextView.
func (cv *CodeView) GetWrapper() *tview.TextView {
	return cv.wrapper
}

// Update redraws the source with span highlighted. A zero-width span (halted
// or errored machine) renders the source without a highlight.
func (cv *CodeView) Update(source string, span vm.SourceSpan) {
	if span.Width == 0 || span.Pos+span.Width > len(source) {
		cv.wrapper.SetText(tview.Escape(source))
		return
	}

	colors := theme.Current().Code
	var sb strings.Builder
	sb.WriteString(tview.Escape(source[:span.Pos]))
	sb.WriteString(fmt.Sprintf("[%s:%s]", colors.HighlightFg.String(), colors.HighlightBg.String()))
	sb.WriteString(tview.Escape(source[span.Pos : span.Pos+span.Width]))
	sb.WriteString("[-:-]")
	sb.WriteString(tview.Escape(source[span.Pos+span.Width:]))
	cv.wrapper.SetText(sb.String())

	cv.scrollToSpan(source, span)
}

// scrollToSpan centers the highlighted line vertically. Wrapped long lines
// make the row estimate approximate, which is fine for keeping the highlight
// on screen.
func (cv *CodeView) scrollToSpan(source string, span vm.SourceSpan) {
	line := strings.Count(source[:span.Pos], "\n")
	_, _, _, h := cv.wrapper.GetInnerRect()
	if h <= 0 {
		return
	}
	row := line - h/2
	if row < 0 {
		row = 0
	}
	cv.wrapper.ScrollTo(row, 0)
}
