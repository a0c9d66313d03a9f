package vm

import "fmt"

// OpKind identifies a single Moostar operation.
type OpKind byte

const (
	OpLeft OpKind = iota
	OpRight
	OpInc
	OpDec
	OpOutput
	OpInput
	OpLoopStart
	OpLoopEnd
	OpCall
	OpFuncStart
	OpFuncEnd
	OpMetaJump
)

// Instruction is one executable operation in a compiled program.
//
// Target is the resolved jump partner: for OpLoopStart/OpLoopEnd the index
// of the matching bracket, for OpFuncStart the index of the matching
// OpFuncEnd. Fn is the function id for OpCall/OpFuncStart/OpFuncEnd.
// Pos and Width locate the instruction in the source text so the UI can
// highlight it.
type Instruction struct {
	Kind   OpKind
	Target int
	Fn     int
	Pos    int
	Width  int

	inDef bool
}

func (k OpKind) String() string {
	switch k {
	case OpLeft:
		return "<"
	case OpRight:
		return ">"
	case OpInc:
		return "+"
	case OpDec:
		return "-"
	case OpOutput:
		return "."
	case OpInput:
		return ","
	case OpLoopStart:
		return "["
	case OpLoopEnd:
		return "]"
	case OpCall:
		return "~"
	case OpFuncStart:
		return "("
	case OpFuncEnd:
		return "}"
	case OpMetaJump:
		return "^"
	default:
		return fmt.Sprintf("OpKind(%d)", byte(k))
	}
}
