package vm

import "strings"

// InputSource supplies bytes for the input instruction. ReadByte reports
// false when nothing is queued; the engine then leaves the current cell
// unchanged rather than blocking.
type InputSource interface {
	ReadByte() (byte, bool)
}

// OutputSink receives bytes produced by the output instruction. A failed
// write is fatal to the current execution.
type OutputSink interface {
	WriteByte(b byte) error
}

// InputQueue is a FIFO InputSource fed by the UI with typed characters.
type InputQueue struct {
	pending []byte
}

// Push queues one byte for a future input instruction.
func (q *InputQueue) Push(b byte) {
	q.pending = append(q.pending, b)
}

// ReadByte pops the oldest queued byte.
func (q *InputQueue) ReadByte() (byte, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	b := q.pending[0]
	q.pending = q.pending[1:]
	return b, true
}

// Pending returns the queued bytes as text, for display.
func (q *InputQueue) Pending() string {
	return string(q.pending)
}

// Reset discards all queued bytes.
func (q *InputQueue) Reset() {
	q.pending = nil
}

// OutputBuffer is an OutputSink that accumulates everything the program has
// printed, for the output pane.
type OutputBuffer struct {
	sb strings.Builder
}

func (o *OutputBuffer) WriteByte(b byte) error {
	return o.sb.WriteByte(b)
}

// String returns everything written so far.
func (o *OutputBuffer) String() string {
	return o.sb.String()
}

// Reset discards the accumulated output.
func (o *OutputBuffer) Reset() {
	o.sb.Reset()
}
