package vm

// Program is the immutable compiled form of one Moostar source text: the
// instruction sequence with loop jumps already resolved, the function entry
// table, and the source it was built from.
type Program struct {
	ops     []Instruction
	entries map[int]int    // function id -> OpFuncStart index
	names   map[int]string // function id -> declared name
	entry   int            // initial program counter
	source  string
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.ops)
}

// At returns the instruction at index i. The index must be in [0, Len).
func (p *Program) At(i int) Instruction {
	return p.ops[i]
}

// Entry returns the initial program counter: the first instruction that is
// not part of a function definition body, or Len() when the program consists
// only of definitions and comments.
func (p *Program) Entry() int {
	return p.entry
}

// Source returns the original source text the program was compiled from.
func (p *Program) Source() string {
	return p.source
}

// FuncEntry resolves a function id to the index of its OpFuncStart.
func (p *Program) FuncEntry(id int) (int, bool) {
	idx, ok := p.entries[id]
	return idx, ok
}

// FuncName returns the declared name for a function id.
func (p *Program) FuncName(id int) string {
	return p.names[id]
}
