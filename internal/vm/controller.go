package vm

import "time"

// rates is the frequency ladder, in steps per second. Adjustment moves one
// rung at a time and clamps at the ends, so the period can never reach zero.
var rates = []float64{0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

// maxCatchUpSteps bounds how many steps a single Advance may execute, so a
// long stall (suspended terminal, debugger pause) does not trigger an
// unbounded burst of catch-up work.
const maxCatchUpSteps = 1000

// Controller drives an Engine over time: it owns the pause flag, the
// frequency setting, and the fixed-step time accumulator, and it is the only
// component that mutates execution state.
type Controller struct {
	prog   *Program
	engine *Engine
	input  *InputQueue
	output *OutputBuffer

	rateIdx int
	paused  bool
	acc     time.Duration
}

// NewController loads a program into a fresh engine, paused, at the given
// rate in steps per second (snapped to the nearest ladder rung).
func NewController(prog *Program, stepsPerSecond float64) *Controller {
	c := &Controller{
		prog:    prog,
		input:   &InputQueue{},
		output:  &OutputBuffer{},
		rateIdx: snapRate(stepsPerSecond),
		paused:  true,
	}
	c.engine = NewEngine(prog, c.input, c.output)
	return c
}

func snapRate(stepsPerSecond float64) int {
	best := 0
	for i, r := range rates {
		if abs(r-stepsPerSecond) < abs(rates[best]-stepsPerSecond) {
			best = i
		}
	}
	return best
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Advance adds elapsed wall time to the accumulator and executes one step per
// whole period, keeping the fractional remainder so the long-run rate matches
// the configured frequency under irregular ticks. It returns how many steps
// ran. Catch-up is capped at maxCatchUpSteps per call; any time beyond the
// cap is discarded rather than carried into a spiral.
func (c *Controller) Advance(elapsed time.Duration) int {
	if c.paused || c.engine.State().Terminal() {
		// Time spent paused is not unconsumed stepping time; the
		// fractional remainder from before the pause is kept.
		return 0
	}

	c.acc += elapsed
	period := c.Period()
	steps := 0
	for c.acc >= period && steps < maxCatchUpSteps {
		if c.engine.Step().Terminal() {
			c.acc = 0
			return steps + 1
		}
		c.acc -= period
		steps++
	}
	if steps == maxCatchUpSteps {
		c.acc = 0
	}
	return steps
}

// StepOnce executes exactly one instruction regardless of the pause flag.
func (c *Controller) StepOnce() State {
	return c.engine.Step()
}

// Reset restores the post-load snapshot: all-zero ribbons, initial pc, empty
// return stack, cleared I/O buffers and accumulator. Frequency and the pause
// flag survive.
func (c *Controller) Reset() {
	c.input.Reset()
	c.output.Reset()
	c.engine = NewEngine(c.prog, c.input, c.output)
	c.acc = 0
}

// TogglePause flips the pause flag. Execution state is untouched, so
// resuming continues exactly where it left off.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool {
	return c.paused
}

// IncreaseFrequency moves one rung up the rate ladder.
func (c *Controller) IncreaseFrequency() {
	if c.rateIdx < len(rates)-1 {
		c.rateIdx++
	}
}

// DecreaseFrequency moves one rung down the rate ladder.
func (c *Controller) DecreaseFrequency() {
	if c.rateIdx > 0 {
		c.rateIdx--
	}
}

// Rate returns the configured stepping rate in steps per second.
func (c *Controller) Rate() float64 {
	return rates[c.rateIdx]
}

// Rates returns the full frequency ladder, slowest first.
func Rates() []float64 {
	out := make([]float64, len(rates))
	copy(out, rates)
	return out
}

// RateIndex returns the active rung's index into Rates.
func (c *Controller) RateIndex() int {
	return c.rateIdx
}

// Period returns the time between automatic steps at the current rate.
func (c *Controller) Period() time.Duration {
	return time.Duration(float64(time.Second) / rates[c.rateIdx])
}

// QueueInput queues one byte for the program's input instruction.
func (c *Controller) QueueInput(b byte) {
	c.input.Push(b)
}

// Engine exposes the engine for inspection. Mutation stays with the
// controller.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Program returns the loaded program.
func (c *Controller) Program() *Program {
	return c.prog
}
