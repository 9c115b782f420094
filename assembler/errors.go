package assembler

import (
	"fmt"
	"strings"

	"github.com/torvik/vr32/cpu"
)

// LineError is implemented by every diagnostic that originates from a known
// source line.
type LineError interface {
	error
	SourceLine() int
}

// EmptyOperandError reports an operand position with no tokens at all.
type EmptyOperandError struct {
	Line int
}

// SourceLine returns the source line of the error.
func (e *EmptyOperandError) SourceLine() int { return e.Line }

func (e *EmptyOperandError) Error() string {
	return fmt.Sprintf("line %d: empty operand", e.Line)
}

// ExtraTokensError reports trailing tokens after a single-token operand.
// Text is the concatenated source text of the extra tokens.
type ExtraTokensError struct {
	Text string
	Line int
}

// SourceLine returns the source line of the error.
func (e *ExtraTokensError) SourceLine() int { return e.Line }

func (e *ExtraTokensError) Error() string {
	return fmt.Sprintf("line %d: extra text %q", e.Line, e.Text)
}

// WrongTokenTypeError reports a token of an unacceptable type.
type WrongTokenTypeError struct {
	Text string
	Want []TokenType
	Line int
}

// SourceLine returns the source line of the error.
func (e *WrongTokenTypeError) SourceLine() int { return e.Line }

func (e *WrongTokenTypeError) Error() string {
	names := make([]string, len(e.Want))
	for i, t := range e.Want {
		names[i] = t.String()
	}
	return fmt.Sprintf("line %d: token %q instead of %s", e.Line, e.Text, strings.Join(names, " or "))
}

// NumberOverflowError reports a numeric operand exceeding its width bound.
type NumberOverflowError struct {
	Value uint64
	Max   uint64
	Text  string
	Line  int
}

// SourceLine returns the source line of the error.
func (e *NumberOverflowError) SourceLine() int { return e.Line }

func (e *NumberOverflowError) Error() string {
	return fmt.Sprintf("line %d: number %d is too large, the max size for this operand is %d (original text %q)",
		e.Line, e.Value, e.Max, e.Text)
}

// InvalidNumberError reports a string operand that is not numeric.
type InvalidNumberError struct {
	Text string
	Line int
}

// SourceLine returns the source line of the error.
func (e *InvalidNumberError) SourceLine() int { return e.Line }

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("line %d: invalid number %q", e.Line, e.Text)
}

// PointerDerefError reports a malformed pointer dereference operand.
type PointerDerefError struct {
	Text string
	Line int
}

// SourceLine returns the source line of the error.
func (e *PointerDerefError) SourceLine() int { return e.Line }

func (e *PointerDerefError) Error() string {
	return fmt.Sprintf("line %d: invalid pointer dereference %q", e.Line, e.Text)
}

// ShiftOperatorError reports a shift expression whose operator is neither
// "<<" nor ">>".
type ShiftOperatorError struct {
	Text string
	Line int
}

// SourceLine returns the source line of the error.
func (e *ShiftOperatorError) SourceLine() int { return e.Line }

func (e *ShiftOperatorError) Error() string {
	return fmt.Sprintf("line %d: invalid operator %q", e.Line, e.Text)
}

// ExpectedTokenError reports a structural token that was required but absent.
type ExpectedTokenError struct {
	Want string
	Got  string
	Line int
}

// SourceLine returns the source line of the error.
func (e *ExpectedTokenError) SourceLine() int { return e.Line }

func (e *ExpectedTokenError) Error() string {
	return fmt.Sprintf("line %d: expected %q, instead got %q", e.Line, e.Want, e.Got)
}

// ArityError reports an instruction given the wrong number of operands.
type ArityError struct {
	Op   cpu.Opcode
	Want int
	Got  int
	Line int
}

// SourceLine returns the source line of the error.
func (e *ArityError) SourceLine() int { return e.Line }

func (e *ArityError) Error() string {
	return fmt.Sprintf("line %d: opcode %s takes %d arguments, but was given %d arguments",
		e.Line, e.Op, e.Want, e.Got)
}

// UnexpectedCharError reports a character the tokenizer cannot place.
type UnexpectedCharError struct {
	Ch   rune
	Line int
}

// SourceLine returns the source line of the error.
func (e *UnexpectedCharError) SourceLine() int { return e.Line }

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("line %d: unexpected character %q", e.Line, e.Ch)
}

// UnknownLabelError reports a label operand with no symbol-table entry.
// Raised during emission, after parsing, so it carries the instruction index
// rather than a source line.
type UnknownLabelError struct {
	Name  string
	Index int
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("instruction %d: unknown label %q", e.Index, e.Name)
}

// ErrorList aggregates any number of diagnostics in discovery order. It is
// used both within one instruction (across operand positions) and across a
// whole file.
type ErrorList []error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual diagnostics to errors.Is/As.
func (l ErrorList) Unwrap() []error { return l }

// errOrNil converts an accumulator into a terminal failure: nil when empty,
// the list itself otherwise.
func (l ErrorList) errOrNil() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
