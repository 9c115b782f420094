package assembler

import (
	"strings"

	"github.com/torvik/vr32/cpu"
)

// Arg is one parsed instruction operand. The concrete type of each operand
// is determined positionally by the opcode's declared signature.
type Arg interface {
	isArg()
}

// Reg is a register operand.
type Reg cpu.Register

func (Reg) isArg() {}

func (r Reg) String() string { return cpu.Register(r).String() }

func (Uint16) isArg() {}

func (Uint24) isArg() {}

// ShiftType selects the direction of a shift expression.
type ShiftType uint8

const (
	// ShiftLeft is "<<", the default when no shift suffix is present.
	ShiftLeft ShiftType = iota
	// ShiftRight is ">>".
	ShiftRight
)

// Two-way table between shift operators and their syntax tokens.
var (
	shiftTypeOf = map[Syntax]ShiftType{
		SynShiftLeft:  ShiftLeft,
		SynShiftRight: ShiftRight,
	}
	shiftSyntax = map[ShiftType]Syntax{
		ShiftLeft:  SynShiftLeft,
		ShiftRight: SynShiftRight,
	}
)

// String returns the operator text, "<<" or ">>".
func (t ShiftType) String() string { return shiftSyntax[t].String() }

// Shift is a register with an optional shift suffix, e.g. "R2 << 3".
// A bare register parses as a left shift by zero.
type Shift struct {
	Type   ShiftType
	Reg    cpu.Register
	Amount Uint5
}

func (Shift) isArg() {}

// PointerDeref is a memory operand, e.g. "[R1 + R2 << 3]". Increment is
// either a Uint16 or a Shift; it defaults to Uint16(0) when no "+" suffix
// is present.
type PointerDeref struct {
	Reg       cpu.Register
	Increment Arg
}

func (PointerDeref) isArg() {}

// LabelRef is a jump target given by name. The parser records the name
// only; resolution against the symbol table happens at emit time.
type LabelRef string

func (LabelRef) isArg() {}

// operandParser is the shared parse signature over all operand kinds: a pure
// function from a token group and its line number to a value or a failure.
type operandParser func(tokens []Token, line int) (Arg, error)

// kindParsers selects the concrete parser for each declared operand kind.
var kindParsers = map[cpu.ArgKind]operandParser{
	cpu.KindRegister: parseRegisterArg,
	cpu.KindUint16:   parseUint16Arg,
	cpu.KindUint24:   parseUint24Arg,
	cpu.KindShift:    parseShiftArg,
	cpu.KindDeref:    parseDerefArg,
	cpu.KindLabel:    parseLabelArg,
}

// emptyCheck fails when an operand position has no tokens at all.
func emptyCheck(tokens []Token, line int) error {
	if len(tokens) == 0 {
		return &EmptyOperandError{Line: line}
	}
	return nil
}

// oneToken extracts exactly one token: an empty slice fails EmptyOperand, a
// longer one ExtraTokens naming the concatenated extra text.
func oneToken(tokens []Token, line int) (Token, error) {
	if err := emptyCheck(tokens, line); err != nil {
		return Token{}, err
	}
	if len(tokens) > 1 {
		return Token{}, &ExtraTokensError{Text: joinText(tokens[1:]), Line: line}
	}
	return tokens[0], nil
}

// tokenTypeCheck fails unless the token is one of the wanted types.
func tokenTypeCheck(tok Token, line int, want ...TokenType) error {
	for _, t := range want {
		if tok.Type == t {
			return nil
		}
	}
	return &WrongTokenTypeError{Text: tok.Text, Want: want, Line: line}
}

// tokenRegister parses a single token as a register.
func tokenRegister(tok Token, line int) (cpu.Register, error) {
	if err := tokenTypeCheck(tok, line, TokenRegister); err != nil {
		return 0, err
	}
	return tok.Reg, nil
}

func joinText(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func parseRegisterArg(tokens []Token, line int) (Arg, error) {
	tok, err := oneToken(tokens, line)
	if err != nil {
		return nil, err
	}
	reg, err := tokenRegister(tok, line)
	if err != nil {
		return nil, err
	}
	return Reg(reg), nil
}

func parseUint16Arg(tokens []Token, line int) (Arg, error) {
	tok, err := oneToken(tokens, line)
	if err != nil {
		return nil, err
	}
	v, err := sizedToken(tok, MaxUint16, line)
	if err != nil {
		return nil, err
	}
	return Uint16(v), nil
}

func parseUint24Arg(tokens []Token, line int) (Arg, error) {
	tok, err := oneToken(tokens, line)
	if err != nil {
		return nil, err
	}
	v, err := sizedToken(tok, MaxUint24, line)
	if err != nil {
		return nil, err
	}
	return Uint24(v), nil
}

func parseShiftArg(tokens []Token, line int) (Arg, error) {
	if err := emptyCheck(tokens, line); err != nil {
		return nil, err
	}
	reg, err := tokenRegister(tokens[0], line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 1 {
		return Shift{Type: ShiftLeft, Reg: reg, Amount: 0}, nil
	}
	var st ShiftType
	ok := tokens[1].Type == TokenSyntax
	if ok {
		st, ok = shiftTypeOf[tokens[1].Syn]
	}
	if !ok {
		return nil, &ShiftOperatorError{Text: tokens[1].Text, Line: line}
	}
	tok, err := oneToken(tokens[2:], line)
	if err != nil {
		return nil, err
	}
	v, err := sizedToken(tok, MaxUint5, line)
	if err != nil {
		return nil, err
	}
	return Shift{Type: st, Reg: reg, Amount: Uint5(v)}, nil
}

func parseDerefArg(tokens []Token, line int) (Arg, error) {
	if err := emptyCheck(tokens, line); err != nil {
		return nil, err
	}
	if !tokens[0].isSyntax(SynLBracket) || !tokens[len(tokens)-1].isSyntax(SynRBracket) {
		return nil, &PointerDerefError{Text: joinText(tokens), Line: line}
	}
	reg, err := tokenRegister(tokens[1], line)
	if err != nil {
		return nil, err
	}
	var inc Arg = Uint16(0)
	if len(tokens) > 3 {
		if !tokens[2].isSyntax(SynPlus) {
			return nil, &ExpectedTokenError{Want: "+", Got: tokens[2].Text, Line: line}
		}
		body := tokens[3 : len(tokens)-1]
		inc, err = firstOf(body, line, parseUint16Arg, parseShiftArg)
		if err != nil {
			return nil, &PointerDerefError{Text: joinText(body), Line: line}
		}
	}
	return PointerDeref{Reg: reg, Increment: inc}, nil
}

func parseLabelArg(tokens []Token, line int) (Arg, error) {
	tok, err := oneToken(tokens, line)
	if err != nil {
		return nil, err
	}
	if err := tokenTypeCheck(tok, line, TokenLabel); err != nil {
		return nil, err
	}
	return LabelRef(tok.Str), nil
}

// firstOf tries candidate parsers in order against one token group,
// returning the first success and otherwise the last candidate's failure.
func firstOf(tokens []Token, line int, candidates ...operandParser) (Arg, error) {
	var err error
	for _, parse := range candidates {
		var arg Arg
		if arg, err = parse(tokens, line); err == nil {
			return arg, nil
		}
	}
	return nil, err
}
