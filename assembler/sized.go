package assembler

import "strconv"

// Bounds-checked unsigned integers of fixed bit widths. Distinct widths are
// distinct types: a Uint16 is never interchangeable with a Uint24.
type (
	// Uint5 holds a shift amount (0..31).
	Uint5 uint8
	// Uint16 holds a 16-bit immediate or pointer increment.
	Uint16 uint16
	// Uint24 holds a 24-bit immediate (jump targets).
	Uint24 uint32
)

// Upper bounds for the sized types.
const (
	MaxUint5  = 1<<5 - 1
	MaxUint16 = 1<<16 - 1
	MaxUint24 = 1<<24 - 1
)

// NewUint5 builds a Uint5, failing with NumberOverflowError out of range.
func NewUint5(v uint64) (Uint5, error) {
	if v > MaxUint5 {
		return 0, &NumberOverflowError{Value: v, Max: MaxUint5}
	}
	return Uint5(v), nil
}

// NewUint16 builds a Uint16, failing with NumberOverflowError out of range.
func NewUint16(v uint64) (Uint16, error) {
	if v > MaxUint16 {
		return 0, &NumberOverflowError{Value: v, Max: MaxUint16}
	}
	return Uint16(v), nil
}

// NewUint24 builds a Uint24, failing with NumberOverflowError out of range.
func NewUint24(v uint64) (Uint24, error) {
	if v > MaxUint24 {
		return 0, &NumberOverflowError{Value: v, Max: MaxUint24}
	}
	return Uint24(v), nil
}

// tokenNumber extracts the numeric value of a UINT or STRING token. Numeric
// literals and numeric string literals are equally valid immediate sources.
func tokenNumber(tok Token, line int) (uint64, error) {
	if err := tokenTypeCheck(tok, line, TokenUint, TokenString); err != nil {
		return 0, err
	}
	if tok.Type == TokenUint {
		return tok.Uint, nil
	}
	v, err := strconv.ParseUint(tok.Str, 10, 64)
	if err != nil {
		return 0, &InvalidNumberError{Text: tok.Text, Line: line}
	}
	return v, nil
}

// sizedToken parses exactly one numeric token against an upper bound,
// tagging any overflow with the token's original text and line.
func sizedToken(tok Token, max uint64, line int) (uint64, error) {
	v, err := tokenNumber(tok, line)
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, &NumberOverflowError{Value: v, Max: max, Text: tok.Text, Line: line}
	}
	return v, nil
}
