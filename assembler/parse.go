package assembler

import (
	"fmt"

	"github.com/torvik/vr32/cpu"
)

// Instruction is one parsed instruction: its opcode plus the ordered operand
// values. The concrete type of each element of Args follows the opcode's
// declared signature.
type Instruction struct {
	Op   cpu.Opcode
	Args []Arg
}

// ParseResult is the output of a successful parse: the instruction sequence
// in program order and the symbol table mapping label names to addresses.
type ParseResult struct {
	Instructions []Instruction
	SymbolTable  map[string]int
}

// commaSplit splits an instruction's operand tokens into raw operand groups
// on "," syntax tokens. A group boundary is emitted at every comma; a
// non-empty tail after the last comma is itself a group, and no tokens yield
// no groups.
func commaSplit(tokens []Token) [][]Token {
	var (
		groups  [][]Token
		current []Token
	)
	for _, tok := range tokens {
		if tok.isSyntax(SynComma) {
			groups = append(groups, current)
			current = nil
		} else {
			current = append(current, tok)
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// parseArgs dispatches each operand group to its declared position in the
// signature. Alternatives within a position are tried in declared order and
// the first success wins; when every alternative fails, the position's last
// failure is recorded. Every position is attempted regardless of earlier
// failures, so all operand errors for one instruction surface at once.
// Positions and groups are paired positionally, up to the shorter sequence.
func parseArgs(sig cpu.Signature, groups [][]Token, line int) ([]Arg, error) {
	var (
		args []Arg
		errs ErrorList
	)
	n := len(sig)
	if len(groups) < n {
		n = len(groups)
	}
	for i := 0; i < n; i++ {
		group := groups[i]
		argLine := line
		if len(group) > 0 {
			argLine = group[0].Line
		}
		var (
			arg Arg
			err error
		)
		for _, kind := range sig[i] {
			if arg, err = kindParsers[kind](group, argLine); err == nil {
				break
			}
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		args = append(args, arg)
	}
	if err := errs.errOrNil(); err != nil {
		return nil, err
	}
	return args, nil
}

// Parse consumes tokenized lines and produces the instruction sequence plus
// the symbol table. Errors are accumulated across the whole file and raised
// as one aggregate failure; a file with any error yields no result at all.
//
// The instruction pointer advances by the encoded instruction width before
// operand validation, so malformed instructions still consume address space
// for subsequent labels. Duplicate label definitions overwrite silently.
func Parse(lines [][]Token) (*ParseResult, error) {
	var (
		instructions []Instruction
		symbols      = make(map[string]int)
		ip           int
		errs         ErrorList
	)
	for _, line := range lines {
		if len(line) == 0 {
			panic("assembler: empty token line")
		}
		lineNum := line[0].Line
		if line[len(line)-1].isSyntax(SynColon) {
			// Label definition. Any other shape ending in ":" violates the
			// tokenizer contract.
			if len(line) != 2 || line[0].Type != TokenLabel {
				panic(fmt.Sprintf("assembler: malformed label line %d", lineNum))
			}
			symbols[line[0].Str] = ip + 1
			continue
		}
		if line[0].Type != TokenInstruction {
			panic(fmt.Sprintf("assembler: malformed token line %d", lineNum))
		}
		ip += cpu.InstructionWidth
		op := line[0].Op
		groups := commaSplit(line[1:])
		if len(groups) != op.Arity() {
			errs = append(errs, &ArityError{Op: op, Want: op.Arity(), Got: len(groups), Line: lineNum})
		}
		args, err := parseArgs(op.Signature(), groups, lineNum)
		if err != nil {
			errs = append(errs, err.(ErrorList)...)
			continue
		}
		instructions = append(instructions, Instruction{Op: op, Args: args})
	}
	if err := errs.errOrNil(); err != nil {
		return nil, err
	}
	return &ParseResult{Instructions: instructions, SymbolTable: symbols}, nil
}
