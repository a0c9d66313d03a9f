package vm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	return prog
}

func TestEngineStraightLineProgram(t *testing.T) {
	eng := NewEngine(mustParse(t, "+++>++<"), nil, nil)
	require.Equal(t, StateReady, eng.State())

	for i := 0; i < 6; i++ {
		require.Equal(t, StateRunning, eng.Step(), "step %d", i)
	}
	require.Equal(t, StateHalted, eng.Step(), "last instruction halts")

	assert.EqualValues(t, 3, eng.Data().Read(0))
	assert.EqualValues(t, 2, eng.Data().Read(1))
	assert.Equal(t, 0, eng.Data().Cursor())
	assert.Equal(t, 7, eng.PC())
	assert.EqualValues(t, 7, eng.Steps())
}

func TestEngineClearLoop(t *testing.T) {
	eng := NewEngine(mustParse(t, "[-]"), nil, nil)
	eng.Data().SetCurrent(5)

	// One pass over the loop is [ then - then ]: pc cycles 0,1,2 and the
	// cell loses one per pass until the ] finally falls through.
	wantPCs := []int{1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 3}
	for i, want := range wantPCs {
		eng.Step()
		assert.Equal(t, want, eng.PC(), "after step %d", i+1)
	}
	assert.Equal(t, StateHalted, eng.State())
	assert.EqualValues(t, 0, eng.Data().Read(0))
}

func TestEngineLoopSkipOnZero(t *testing.T) {
	eng := NewEngine(mustParse(t, "[+]"), nil, nil)

	st := eng.Step()
	assert.Equal(t, 3, eng.PC(), "jump lands one past the matching ]")
	assert.Equal(t, StateHalted, st)
	assert.EqualValues(t, 0, eng.Data().Read(0), "skipped body must not mutate the tape")
	assert.EqualValues(t, 1, eng.Steps(), "the control transfer is one unit of work")
}

func TestEngineLoopReentryOnNonZero(t *testing.T) {
	eng := NewEngine(mustParse(t, "+[-]"), nil, nil)
	eng.Step() // +
	eng.Step() // [ enters body
	require.Equal(t, 2, eng.PC())
	eng.Data().SetCurrent(9)
	eng.Step() // - leaves 8
	eng.Step() // ] jumps back to the [
	assert.Equal(t, 1, eng.PC())
}

func TestEngineWraparound(t *testing.T) {
	eng := NewEngine(mustParse(t, "-"), nil, nil)
	eng.Step()
	assert.EqualValues(t, 255, eng.Data().Read(0))
}

func TestEngineOutput(t *testing.T) {
	var out OutputBuffer
	eng := NewEngine(mustParse(t, "++++++++[>++++++++<-]>+."), nil, &out)

	for !eng.State().Terminal() {
		eng.Step()
	}
	require.Equal(t, StateHalted, eng.State())
	assert.Equal(t, "A", out.String())
}

func TestEngineOutputFailureErrors(t *testing.T) {
	eng := NewEngine(mustParse(t, "+."), nil, failingSink{})
	eng.Step()
	require.Equal(t, StateErrored, eng.Step())
	require.Error(t, eng.Err())

	// Terminal states are sticky: further steps are no-ops.
	steps := eng.Steps()
	assert.Equal(t, StateErrored, eng.Step())
	assert.Equal(t, steps, eng.Steps())
}

type failingSink struct{}

func (failingSink) WriteByte(byte) error { return errors.New("sink closed") }

func TestEngineInput(t *testing.T) {
	in := &InputQueue{}
	in.Push('x')
	eng := NewEngine(mustParse(t, ",>,"), in, nil)

	eng.Step()
	assert.EqualValues(t, 'x', eng.Data().Read(0))

	eng.Step() // >
	eng.Data().SetCurrent(7)
	eng.Step() // , with nothing queued
	assert.EqualValues(t, 7, eng.Data().Read(1), "empty input leaves the cell unchanged")
	assert.Equal(t, StateHalted, eng.State())
}

func TestEngineFunctionCall(t *testing.T) {
	eng := NewEngine(mustParse(t, "(inc):{+}~inc;~inc;"), nil, nil)
	require.Equal(t, 3, eng.PC(), "entry skips the definition")

	eng.Step() // call
	assert.Equal(t, []int{4}, eng.Returns())
	assert.Equal(t, 1, eng.PC(), "call lands on the first body instruction")

	eng.Step() // +
	eng.Step() // function end returns
	assert.Equal(t, 4, eng.PC())
	assert.Empty(t, eng.Returns())

	for !eng.State().Terminal() {
		eng.Step()
	}
	assert.Equal(t, StateHalted, eng.State())
	assert.EqualValues(t, 2, eng.Data().Read(0))
}

func TestEngineFallthroughSkipsDefinition(t *testing.T) {
	// The definition sits between executable instructions; stepping onto
	// it must jump over the body without running it.
	eng := NewEngine(mustParse(t, "+(dbl):{++}+"), nil, nil)
	require.Equal(t, 0, eng.PC())

	eng.Step() // +
	eng.Step() // definition start skips to after its end
	assert.Equal(t, 5, eng.PC())
	eng.Step() // final +
	assert.Equal(t, StateHalted, eng.State())
	assert.EqualValues(t, 2, eng.Data().Read(0))
}

func TestEngineMetaRibbon(t *testing.T) {
	eng := NewEngine(mustParse(t, "+^+++>^+"), nil, nil)

	for !eng.State().Terminal() {
		eng.Step()
	}
	require.Equal(t, StateHalted, eng.State())

	assert.EqualValues(t, 2, eng.Data().Read(0), "first and last + hit the data ribbon")
	assert.EqualValues(t, 3, eng.Meta().Read(0))
	assert.Equal(t, 1, eng.Meta().Cursor(), "the > moved the meta cursor")
	assert.Equal(t, 0, eng.Data().Cursor())
	assert.False(t, eng.OnMeta())
}

func TestEngineMetaLoopCondition(t *testing.T) {
	// The loop test reads the active ribbon: data holds 0 so with the
	// meta ribbon active (holding 1) the loop body runs once.
	eng := NewEngine(mustParse(t, "^+[-]"), nil, nil)
	for !eng.State().Terminal() {
		eng.Step()
	}
	require.Equal(t, StateHalted, eng.State())
	assert.EqualValues(t, 0, eng.Meta().Read(0))
}

func TestEngineEmptyProgramHalts(t *testing.T) {
	eng := NewEngine(mustParse(t, "just a comment"), nil, nil)
	assert.Equal(t, StateReady, eng.State())
	assert.Equal(t, StateHalted, eng.Step())
	assert.EqualValues(t, 0, eng.Steps())
}

func TestEngineHaltIsSticky(t *testing.T) {
	eng := NewEngine(mustParse(t, "+"), nil, nil)
	require.Equal(t, StateHalted, eng.Step())
	assert.Equal(t, StateHalted, eng.Step())
	assert.EqualValues(t, 1, eng.Steps())
}
