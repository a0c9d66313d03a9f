package vm

// Window computes the visible slice of a ribbon for a display width.
//
// The window always contains the cursor. When the interesting range (touched
// bounds widened to include the cursor) fits in the width, the whole range is
// returned rather than padding with far-off empty cells. Otherwise the cursor
// is centered, clamping at either edge of the range.
func Window(cursor, minTouched, maxTouched, width int) (start, count, cursorOffset int) {
	if width < 1 {
		width = 1
	}
	lo, hi := minTouched, maxTouched
	if cursor < lo {
		lo = cursor
	}
	if cursor > hi {
		hi = cursor
	}

	span := hi - lo + 1
	if span <= width {
		return lo, span, cursor - lo
	}

	start = cursor - width/2
	if start < lo {
		start = lo
	}
	if start > hi-width+1 {
		start = hi - width + 1
	}
	return start, width, cursor - start
}
