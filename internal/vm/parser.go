package vm

import "fmt"

// ParseReason classifies what made a source text unparseable.
type ParseReason string

const (
	UnmatchedLoopStart      ParseReason = "unmatched loop start"
	UnmatchedLoopEnd        ParseReason = "unmatched loop end"
	NestedDefinition        ParseReason = "function definition inside another definition"
	UnterminatedDefinition  ParseReason = "function definition never closed"
	UnexpectedDefinitionEnd ParseReason = "'}' outside a function definition"
	BadIdentifier           ParseReason = "invalid function identifier"
	BadDefinitionHeader     ParseReason = "malformed function definition header"
	BadCall                 ParseReason = "malformed function call"
	UndefinedFunction       ParseReason = "call to undefined function"
)

// ParseError reports a parse failure with the byte offset of the offending
// character in the source text.
type ParseError struct {
	Pos    int
	Reason ParseReason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Reason)
}

// Parse compiles Moostar source text into a Program.
//
// Recognized characters are the classic eight (< > + - . , [ ]), function
// definitions "(name): { ... }", function calls "~name;", and the meta-ribbon
// toggle "^". Anything else is a comment and produces no instruction.
//
// Loop brackets are matched in a single pass with an explicit stack and the
// resulting jump table is stored on the instructions themselves, so stepping
// over a bracket never has to scan for its partner.
func Parse(src string) (*Program, error) {
	var (
		ops       []Instruction
		loopStack []int
		entries   = map[int]int{}
		names     = map[int]string{}
		funcIDs   = map[string]int{}
		firstCall = map[int]int{}
	)

	curDef := -1   // function id of the definition being scanned, -1 outside
	defStart := -1 // source offset of that definition's '('

	emit := func(in Instruction) {
		in.inDef = curDef >= 0
		ops = append(ops, in)
	}
	internFunc := func(name string) int {
		if id, ok := funcIDs[name]; ok {
			return id
		}
		id := len(funcIDs)
		funcIDs[name] = id
		names[id] = name
		return id
	}

	i := 0
	for i < len(src) {
		pos := i
		c := src[i]
		i++
		switch c {
		case '<':
			emit(Instruction{Kind: OpLeft, Pos: pos, Width: 1})
		case '>':
			emit(Instruction{Kind: OpRight, Pos: pos, Width: 1})
		case '+':
			emit(Instruction{Kind: OpInc, Pos: pos, Width: 1})
		case '-':
			emit(Instruction{Kind: OpDec, Pos: pos, Width: 1})
		case '.':
			emit(Instruction{Kind: OpOutput, Pos: pos, Width: 1})
		case ',':
			emit(Instruction{Kind: OpInput, Pos: pos, Width: 1})
		case '^':
			emit(Instruction{Kind: OpMetaJump, Pos: pos, Width: 1})
		case '[':
			loopStack = append(loopStack, len(ops))
			emit(Instruction{Kind: OpLoopStart, Pos: pos, Width: 1})
		case ']':
			if len(loopStack) == 0 {
				return nil, &ParseError{Pos: pos, Reason: UnmatchedLoopEnd}
			}
			start := loopStack[len(loopStack)-1]
			loopStack = loopStack[:len(loopStack)-1]
			ops[start].Target = len(ops)
			emit(Instruction{Kind: OpLoopEnd, Target: start, Pos: pos, Width: 1})
		case '(':
			if curDef >= 0 {
				return nil, &ParseError{Pos: pos, Reason: NestedDefinition}
			}
			name, next, err := scanIdentifier(src, i)
			if err != nil {
				return nil, err
			}
			i = next
			// The header closes with exactly "):{" after the identifier.
			for _, want := range []byte{')', ':', '{'} {
				if i >= len(src) || src[i] != want {
					return nil, &ParseError{Pos: min(i, len(src)-1), Reason: BadDefinitionHeader}
				}
				i++
			}
			id := internFunc(name)
			// Redefinition is allowed; the last definition wins.
			entries[id] = len(ops)
			curDef, defStart = id, pos
			emit(Instruction{Kind: OpFuncStart, Fn: id, Pos: pos, Width: i - pos})
		case '}':
			if curDef < 0 {
				return nil, &ParseError{Pos: pos, Reason: UnexpectedDefinitionEnd}
			}
			emit(Instruction{Kind: OpFuncEnd, Fn: curDef, Pos: pos, Width: 1})
			ops[entries[curDef]].Target = len(ops) - 1
			curDef, defStart = -1, -1
		case '~':
			name, next, err := scanIdentifier(src, i)
			if err != nil {
				return nil, err
			}
			i = next
			if i >= len(src) || src[i] != ';' {
				return nil, &ParseError{Pos: min(i, len(src)-1), Reason: BadCall}
			}
			i++
			id := internFunc(name)
			if _, seen := firstCall[id]; !seen {
				firstCall[id] = pos
			}
			emit(Instruction{Kind: OpCall, Fn: id, Pos: pos, Width: i - pos})
		default:
			// comment character
		}
	}

	if curDef >= 0 {
		return nil, &ParseError{Pos: defStart, Reason: UnterminatedDefinition}
	}
	if len(loopStack) > 0 {
		return nil, &ParseError{Pos: ops[loopStack[0]].Pos, Reason: UnmatchedLoopStart}
	}
	for id, pos := range firstCall {
		if _, ok := entries[id]; !ok {
			return nil, &ParseError{Pos: pos, Reason: UndefinedFunction}
		}
	}

	entry := len(ops)
	for idx := range ops {
		if !ops[idx].inDef {
			entry = idx
			break
		}
	}

	return &Program{
		ops:     ops,
		entries: entries,
		names:   names,
		entry:   entry,
		source:  src,
	}, nil
}

// scanIdentifier reads a function identifier starting at src[i]: optional
// whitespace, one ASCII lowercase letter, any run of ASCII alphanumerics or
// underscores, optional trailing whitespace. It returns the identifier and
// the index of the first character after it.
func scanIdentifier(src string, i int) (string, int, error) {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	if i >= len(src) || src[i] < 'a' || src[i] > 'z' {
		return "", 0, &ParseError{Pos: min(i, len(src)-1), Reason: BadIdentifier}
	}
	start := i
	for i < len(src) && isIdentChar(src[i]) {
		i++
	}
	name := src[start:i]
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return name, i, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
