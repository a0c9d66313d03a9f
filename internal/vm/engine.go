package vm

import "fmt"

// State is the run-state tag of an Engine.
type State int

const (
	StateReady   State = iota // loaded, nothing executed yet
	StateRunning              // mid-execution
	StateHalted               // reached the end of the program
	StateErrored              // stopped on a runtime failure
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateHalted:
		return "Halted"
	case StateErrored:
		return "Errored"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further stepping is possible.
func (s State) Terminal() bool {
	return s == StateHalted || s == StateErrored
}

// Engine interprets one loaded Program over two memory ribbons. It owns all
// execution state; each Step performs exactly one instruction, so a control
// transfer over a loop bracket is one unit of work, never the whole loop
// body.
type Engine struct {
	prog    *Program
	data    *Tape
	meta    *Tape
	onMeta  bool
	pc      int
	state   State
	steps   uint64
	returns []int
	err     error
	input   InputSource
	output  OutputSink
}

// NewEngine pairs a program with fresh all-zero ribbons. input and output
// may be nil: input then never yields a byte and output is discarded.
func NewEngine(prog *Program, input InputSource, output OutputSink) *Engine {
	return &Engine{
		prog:   prog,
		data:   NewTape(),
		meta:   NewTape(),
		pc:     prog.Entry(),
		state:  StateReady,
		input:  input,
		output: output,
	}
}

// Step executes exactly one instruction and returns the resulting state.
// Calling Step in a terminal state is a no-op.
//
// Input never blocks: when no byte is queued the cell is left unchanged and
// execution continues, keeping the cooperative loop free of stalls.
func (e *Engine) Step() State {
	if e.state.Terminal() {
		return e.state
	}
	if e.pc >= e.prog.Len() {
		e.state = StateHalted
		return e.state
	}

	op := e.prog.At(e.pc)
	tape := e.active()

	switch op.Kind {
	case OpLeft:
		tape.Move(-1)
		e.pc++
	case OpRight:
		tape.Move(1)
		e.pc++
	case OpInc:
		tape.SetCurrent(tape.Current() + 1)
		e.pc++
	case OpDec:
		tape.SetCurrent(tape.Current() - 1)
		e.pc++
	case OpOutput:
		if e.output != nil {
			if err := e.output.WriteByte(tape.Current()); err != nil {
				return e.fail(fmt.Errorf("output failed at pc %d: %w", e.pc, err))
			}
		}
		e.pc++
	case OpInput:
		if e.input != nil {
			if b, ok := e.input.ReadByte(); ok {
				tape.SetCurrent(b)
			}
		}
		e.pc++
	case OpLoopStart:
		if !e.validTarget(op.Target) {
			return e.fail(fmt.Errorf("malformed jump target %d at pc %d", op.Target, e.pc))
		}
		if tape.Current() == 0 {
			e.pc = op.Target + 1
		} else {
			e.pc++
		}
	case OpLoopEnd:
		if !e.validTarget(op.Target) {
			return e.fail(fmt.Errorf("malformed jump target %d at pc %d", op.Target, e.pc))
		}
		if tape.Current() != 0 {
			e.pc = op.Target
		} else {
			e.pc++
		}
	case OpCall:
		entry, ok := e.prog.FuncEntry(op.Fn)
		if !ok || !e.validTarget(entry) {
			return e.fail(fmt.Errorf("call to unresolved function %q at pc %d", e.prog.FuncName(op.Fn), e.pc))
		}
		e.returns = append(e.returns, e.pc+1)
		e.pc = entry + 1
	case OpFuncStart:
		// Reached by fallthrough, not by a call: the definition only
		// defines, so skip the body.
		if !e.validTarget(op.Target) {
			return e.fail(fmt.Errorf("malformed jump target %d at pc %d", op.Target, e.pc))
		}
		e.pc = op.Target + 1
	case OpFuncEnd:
		if len(e.returns) == 0 {
			return e.fail(fmt.Errorf("return from %q without a call at pc %d", e.prog.FuncName(op.Fn), e.pc))
		}
		e.pc = e.returns[len(e.returns)-1]
		e.returns = e.returns[:len(e.returns)-1]
	case OpMetaJump:
		e.onMeta = !e.onMeta
		e.pc++
	default:
		return e.fail(fmt.Errorf("unknown instruction %v at pc %d", op.Kind, e.pc))
	}

	e.steps++
	if e.pc >= e.prog.Len() {
		e.state = StateHalted
	} else {
		e.state = StateRunning
	}
	return e.state
}

func (e *Engine) fail(err error) State {
	e.err = err
	e.state = StateErrored
	return e.state
}

func (e *Engine) validTarget(target int) bool {
	return target >= 0 && target < e.prog.Len()
}

func (e *Engine) active() *Tape {
	if e.onMeta {
		return e.meta
	}
	return e.data
}

// State returns the current run-state tag.
func (e *Engine) State() State {
	return e.state
}

// Err returns the failure that moved the engine to StateErrored, nil
// otherwise.
func (e *Engine) Err() error {
	return e.err
}

// PC returns the index of the next instruction to execute.
func (e *Engine) PC() int {
	return e.pc
}

// Steps returns how many instructions have executed since load.
func (e *Engine) Steps() uint64 {
	return e.steps
}

// Data returns the data ribbon.
func (e *Engine) Data() *Tape {
	return e.data
}

// Meta returns the meta ribbon.
func (e *Engine) Meta() *Tape {
	return e.meta
}

// OnMeta reports whether the meta ribbon is the active one.
func (e *Engine) OnMeta() bool {
	return e.onMeta
}

// Returns lists the pending return positions, innermost last.
func (e *Engine) Returns() []int {
	out := make([]int, len(e.returns))
	copy(out, e.returns)
	return out
}
