package vm

// Tape is one memory ribbon: a sparse, bidirectionally unbounded sequence of
// byte cells with a cursor. Cells never written read as zero. The extreme
// indices ever written are tracked so a renderer can pick a sensible window
// without scanning an unbounded space.
type Tape struct {
	cells      map[int]byte
	cursor     int
	minTouched int
	maxTouched int
}

// NewTape returns an empty ribbon with the cursor at the origin.
func NewTape() *Tape {
	return &Tape{cells: map[int]byte{}}
}

// Read returns the value at index. Unwritten cells are zero, not missing.
func (t *Tape) Read(index int) byte {
	return t.cells[index]
}

// Write stores v at index and widens the touched bounds to include it.
func (t *Tape) Write(index int, v byte) {
	t.cells[index] = v
	if index < t.minTouched {
		t.minTouched = index
	}
	if index > t.maxTouched {
		t.maxTouched = index
	}
}

// Move shifts the cursor by delta. There is no bound in either direction.
func (t *Tape) Move(delta int) {
	t.cursor += delta
}

// Cursor returns the current cell index.
func (t *Tape) Cursor() int {
	return t.cursor
}

// Current reads the cell under the cursor.
func (t *Tape) Current() byte {
	return t.cells[t.cursor]
}

// SetCurrent writes the cell under the cursor.
func (t *Tape) SetCurrent(v byte) {
	t.Write(t.cursor, v)
}

// Bounds returns the extreme indices ever written. Both start at the origin,
// so the bounds always include index 0 even on a fresh tape.
func (t *Tape) Bounds() (min, max int) {
	return t.minTouched, t.maxTouched
}
