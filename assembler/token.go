package assembler

import "github.com/torvik/vr32/cpu"

// TokenType classifies a source token.
type TokenType int

const (
	// TokenInstruction is an opcode mnemonic.
	TokenInstruction TokenType = iota
	// TokenRegister is a register name.
	TokenRegister
	// TokenUint is an unsigned integer literal.
	TokenUint
	// TokenString is a double-quoted string literal.
	TokenString
	// TokenSyntax is a structural symbol (comma, colon, brackets, operators).
	TokenSyntax
	// TokenLabel is an identifier that is neither a mnemonic nor a register.
	TokenLabel
)

var tokenTypeNames = map[TokenType]string{
	TokenInstruction: "instruction",
	TokenRegister:    "register",
	TokenUint:        "uint",
	TokenString:      "string",
	TokenSyntax:      "syntax",
	TokenLabel:       "label",
}

// String returns a lower-case name for the token type, as used in diagnostics.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "<invalid>"
}

// Syntax identifies one structural symbol.
type Syntax int

// Structural symbols.
const (
	SynComma Syntax = iota
	SynColon
	SynLBracket
	SynRBracket
	SynPlus
	SynShiftLeft
	SynShiftRight
)

// Two-way syntax table, built once. syntaxText is the inverse of syntaxOf.
var (
	syntaxText = map[Syntax]string{
		SynComma:      ",",
		SynColon:      ":",
		SynLBracket:   "[",
		SynRBracket:   "]",
		SynPlus:       "+",
		SynShiftLeft:  "<<",
		SynShiftRight: ">>",
	}
	syntaxOf = func() map[string]Syntax {
		m := make(map[string]Syntax, len(syntaxText))
		for s, text := range syntaxText {
			m[text] = s
		}
		return m
	}()
)

// String returns the source text of the symbol.
func (s Syntax) String() string {
	return syntaxText[s]
}

// Token is one lexed source token. The payload field that is meaningful
// depends on Type: Op for instructions, Reg for registers, Uint for integer
// literals, Str for strings and label names, Syn for structural symbols.
// Text is the original source slice and Line the 1-based source line.
type Token struct {
	Type TokenType
	Op   cpu.Opcode
	Reg  cpu.Register
	Uint uint64
	Str  string
	Syn  Syntax
	Text string
	Line int
}

// isSyntax reports whether the token is the given structural symbol.
func (t Token) isSyntax(s Syntax) bool {
	return t.Type == TokenSyntax && t.Syn == s
}
