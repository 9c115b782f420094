package assembler

import (
	"strconv"
	"strings"

	"github.com/torvik/vr32/cpu"
)

// Tokenize lexes source text into one token list per non-empty source line.
// Comments run from ';' to end of line. Every emitted line is one of the two
// shapes the parser accepts: a two-token label definition or a line starting
// with a mnemonic. A "label:" prefix sharing a source line with an
// instruction is split into its own token line.
//
// Lexing never stops at the first problem: every unknown character,
// malformed literal, and malformed line in the file is collected into one
// aggregate error.
func Tokenize(src string) ([][]Token, error) {
	var (
		lines [][]Token
		errs  ErrorList
	)
	src = strings.ReplaceAll(src, "\r\n", "\n")
	for i, raw := range strings.Split(src, "\n") {
		num := i + 1
		if ci := strings.IndexByte(raw, ';'); ci != -1 {
			raw = raw[:ci]
		}
		tokens, lineErrs := scanLine(raw, num)
		errs = append(errs, lineErrs...)
		for len(tokens) >= 2 && tokens[0].Type == TokenLabel && tokens[1].isSyntax(SynColon) {
			lines = append(lines, tokens[:2])
			tokens = tokens[2:]
		}
		if len(tokens) == 0 {
			continue
		}
		if tokens[0].Type != TokenInstruction {
			errs = append(errs, &WrongTokenTypeError{
				Text: tokens[0].Text,
				Want: []TokenType{TokenInstruction, TokenLabel},
				Line: num,
			})
			continue
		}
		if ci := colonIndex(tokens[1:]); ci != -1 {
			errs = append(errs, &UnexpectedCharError{Ch: ':', Line: num})
			continue
		}
		lines = append(lines, tokens)
	}
	if err := errs.errOrNil(); err != nil {
		return nil, err
	}
	return lines, nil
}

// colonIndex finds a stray ":" among an instruction's operand tokens.
func colonIndex(tokens []Token) int {
	for i, tok := range tokens {
		if tok.isSyntax(SynColon) {
			return i
		}
	}
	return -1
}

// scanLine lexes a single source line.
func scanLine(s string, line int) ([]Token, ErrorList) {
	var (
		tokens []Token
		errs   ErrorList
	)
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '<' || c == '>':
			if i+1 < len(s) && s[i+1] == c {
				tokens = append(tokens, syntaxToken(s[i:i+2], line))
				i += 2
			} else {
				errs = append(errs, &UnexpectedCharError{Ch: rune(c), Line: line})
				i++
			}
		case c == ',' || c == ':' || c == '[' || c == ']' || c == '+':
			tokens = append(tokens, syntaxToken(s[i:i+1], line))
			i++
		case c == '"':
			j := strings.IndexByte(s[i+1:], '"')
			if j == -1 {
				errs = append(errs, &UnexpectedCharError{Ch: '"', Line: line})
				i = len(s)
				break
			}
			text := s[i : i+j+2]
			tokens = append(tokens, Token{Type: TokenString, Str: s[i+1 : i+j+1], Text: text, Line: line})
			i += j + 2
		case isDigit(c):
			j := i
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			text := s[i:j]
			v, err := parseUintLiteral(text)
			if err != nil {
				errs = append(errs, &InvalidNumberError{Text: text, Line: line})
			} else {
				tokens = append(tokens, Token{Type: TokenUint, Uint: v, Text: text, Line: line})
			}
			i = j
		case isIdentStart(c):
			j := i
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			text := s[i:j]
			tokens = append(tokens, identToken(text, line))
			i = j
		default:
			errs = append(errs, &UnexpectedCharError{Ch: rune(c), Line: line})
			i++
		}
	}
	return tokens, errs
}

// identToken classifies an identifier as a mnemonic, a register, or a label.
func identToken(text string, line int) Token {
	if op, ok := cpu.ParseOpcode(text); ok {
		return Token{Type: TokenInstruction, Op: op, Text: text, Line: line}
	}
	if reg, ok := cpu.ParseRegister(text); ok {
		return Token{Type: TokenRegister, Reg: reg, Text: text, Line: line}
	}
	return Token{Type: TokenLabel, Str: text, Text: text, Line: line}
}

func syntaxToken(text string, line int) Token {
	return Token{Type: TokenSyntax, Syn: syntaxOf[text], Text: text, Line: line}
}

// parseUintLiteral converts a decimal, 0x hex, or 0b binary literal.
func parseUintLiteral(text string) (uint64, error) {
	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return strconv.ParseUint(text[2:], 16, 64)
	case strings.HasPrefix(lower, "0b"):
		return strconv.ParseUint(text[2:], 2, 64)
	default:
		return strconv.ParseUint(text, 10, 64)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
