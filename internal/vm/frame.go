package vm

// RibbonWindow is the visible slice of one ribbon.
type RibbonWindow struct {
	Start  int    // tape index of Cells[0]
	Cells  []byte // cell values, left to right
	Cursor int    // offset of the cursor cell within Cells
	Active bool   // whether this ribbon is the one instructions act on
}

// SourceSpan locates the next instruction in the source text, for
// highlighting. Width is zero when nothing is about to execute.
type SourceSpan struct {
	Pos   int
	Width int
}

// Frame is everything a renderer needs for one redraw. It is a value
// snapshot; the renderer never touches live execution state.
type Frame struct {
	Data    RibbonWindow
	Meta    RibbonWindow
	PC      int
	Span    SourceSpan
	State   State
	Err     error
	Steps   uint64
	Rate    float64
	Paused  bool
	Output  string
	Input   string
	Returns []int
}

// Frame snapshots the current machine state with ribbon windows of the given
// width.
func (c *Controller) Frame(width int) Frame {
	e := c.engine

	f := Frame{
		Data:    windowOf(e.Data(), width),
		Meta:    windowOf(e.Meta(), width),
		PC:      e.PC(),
		State:   e.State(),
		Err:     e.Err(),
		Steps:   e.Steps(),
		Rate:    c.Rate(),
		Paused:  c.paused,
		Output:  c.output.String(),
		Input:   c.input.Pending(),
		Returns: e.Returns(),
	}
	if e.OnMeta() {
		f.Meta.Active = true
	} else {
		f.Data.Active = true
	}
	if !e.State().Terminal() && e.PC() < c.prog.Len() {
		op := c.prog.At(e.PC())
		f.Span = SourceSpan{Pos: op.Pos, Width: op.Width}
	}
	return f
}

func windowOf(t *Tape, width int) RibbonWindow {
	min, max := t.Bounds()
	start, count, cursor := Window(t.Cursor(), min, max, width)
	cells := make([]byte, count)
	for i := range cells {
		cells[i] = t.Read(start + i)
	}
	return RibbonWindow{Start: start, Cells: cells, Cursor: cursor}
}
