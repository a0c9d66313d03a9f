package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"noseburn/internal/theme"
)

// JumpView lists the pending return positions of function calls, innermost
// first.
type JumpView struct {
	wrapper *tview.TextView
}

// NewJumpView creates the jump list pane.
func NewJumpView() *JumpView {
	colors := theme.Current().Ribbon

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	view.SetBackgroundColor(colors.Background)
	view.SetBorder(true)
	view.SetTitle(" -::[Jumps]::- ")
	view.SetTitleAlign(tview.AlignCenter)

	return &JumpView{wrapper: view}
}

// GetWrapper returns the underlying TextView.
func (jv *JumpView) GetWrapper() *tview.TextView {
	return jv.wrapper
}

// Update redraws the pane from the return positions. Only as many entries as
// fit vertically are rendered.
func (jv *JumpView) Update(returns []int) {
	_, _, _, h := jv.wrapper.GetInnerRect()

	var sb strings.Builder
	shown := 0
	for i := len(returns) - 1; i >= 0; i-- {
		if h > 0 && shown >= h {
			break
		}
		fmt.Fprintf(&sb, "Back to [green::b]#%d[-::-]\n", returns[i])
		shown++
	}
	jv.wrapper.SetText(sb.String())
}
