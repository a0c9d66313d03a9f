package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeUntouchedCellsReadZero(t *testing.T) {
	tape := NewTape()

	assert.EqualValues(t, 0, tape.Read(0))
	assert.EqualValues(t, 0, tape.Read(-1000))
	assert.EqualValues(t, 0, tape.Read(1000))

	// Touching far-away indices must not contaminate anything in between.
	tape.Write(-500, 7)
	tape.Write(500, 9)
	assert.EqualValues(t, 0, tape.Read(0))
	assert.EqualValues(t, 0, tape.Read(-499))
	assert.EqualValues(t, 7, tape.Read(-500))
	assert.EqualValues(t, 9, tape.Read(500))
}

func TestTapeTouchedBounds(t *testing.T) {
	tape := NewTape()

	min, max := tape.Bounds()
	assert.Equal(t, 0, min, "bounds start at the origin")
	assert.Equal(t, 0, max)

	tape.Write(3, 1)
	tape.Write(-2, 1)
	min, max = tape.Bounds()
	assert.Equal(t, -2, min)
	assert.Equal(t, 3, max)

	// Moving the cursor alone does not widen the bounds.
	tape.Move(100)
	min, max = tape.Bounds()
	assert.Equal(t, -2, min)
	assert.Equal(t, 3, max)
}

func TestTapeCursor(t *testing.T) {
	tape := NewTape()
	assert.Equal(t, 0, tape.Cursor())

	tape.Move(-3)
	assert.Equal(t, -3, tape.Cursor(), "the ribbon has no left edge")

	tape.SetCurrent(42)
	assert.EqualValues(t, 42, tape.Read(-3))
	assert.EqualValues(t, 42, tape.Current())

	tape.Move(5)
	assert.Equal(t, 2, tape.Cursor())
	assert.EqualValues(t, 0, tape.Current())
}

func TestTapeByteWraparound(t *testing.T) {
	tape := NewTape()

	tape.SetCurrent(255)
	tape.SetCurrent(tape.Current() + 1)
	assert.EqualValues(t, 0, tape.Current(), "255+1 wraps to 0")

	tape.SetCurrent(tape.Current() - 1)
	assert.EqualValues(t, 255, tape.Current(), "0-1 wraps to 255")
}
