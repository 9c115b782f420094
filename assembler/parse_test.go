package assembler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/torvik/vr32/cpu"
)

// mustParse tokenizes and parses source that is expected to be well formed.
func mustParse(t *testing.T, src string) *ParseResult {
	t.Helper()

	lines, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	res, err := Parse(lines)
	if err != nil {
		t.Fatalf("parse:\n%v", err)
	}
	return res
}

// parseErrors parses source that is expected to fail and returns the
// aggregate error list.
func parseErrors(t *testing.T, src string) ErrorList {
	t.Helper()

	lines, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	res, err := Parse(lines)
	if err == nil {
		t.Fatalf("expected parse failure, got %+v", res)
	}
	list, ok := err.(ErrorList)
	if !ok {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	return list
}

func TestParseProgram(t *testing.T) {
	res := mustParse(t, `
		ADD R1, R2, R3
		loop:
		JMP loop
	`)
	want := []Instruction{
		{Op: cpu.OpADD, Args: []Arg{Reg(cpu.R1), Reg(cpu.R2), Shift{Type: ShiftLeft, Reg: cpu.R3}}},
		{Op: cpu.OpJMP, Args: []Arg{LabelRef("loop")}},
	}
	if !reflect.DeepEqual(res.Instructions, want) {
		t.Errorf("instructions: %+v", res.Instructions)
	}
	// The label address is ip+1 with ip having advanced 32 bits for the
	// preceding instruction.
	if addr := res.SymbolTable["loop"]; addr != 33 {
		t.Errorf("symbol table: %+v", res.SymbolTable)
	}
}

func TestParseArgsLengthMatchesArity(t *testing.T) {
	res := mustParse(t, `
		NOP
		PUSH R1
		MOV R1, 5
		CMP R1, R2 >> 1
		LDR R2, [R3 + 4]
		ADD R1, R2, 7
		JMP 64
	`)
	for _, ins := range res.Instructions {
		if len(ins.Args) != ins.Op.Arity() {
			t.Errorf("%s: %d args, arity %d", ins.Op, len(ins.Args), ins.Op.Arity())
		}
	}
}

func TestParseArityMismatch(t *testing.T) {
	list := parseErrors(t, "ADD R1, R2")
	if len(list) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(list), list)
	}
	arity, ok := list[0].(*ArityError)
	if !ok {
		t.Fatalf("expected arity error, got %v", list[0])
	}
	if arity.Op != cpu.OpADD || arity.Want != 3 || arity.Got != 2 || arity.Line != 1 {
		t.Fatalf("arity fields: %+v", arity)
	}
}

func TestParseArityMismatchStillSurfacesOperandErrors(t *testing.T) {
	// Wrong operand count and a malformed operand on the same line: both
	// are reported.
	list := parseErrors(t, "ADD R1, 99")
	if len(list) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(list), list)
	}
	if _, ok := list[0].(*ArityError); !ok {
		t.Errorf("first error: %v", list[0])
	}
	var wrong *WrongTokenTypeError
	if !errors.As(list[1], &wrong) {
		t.Errorf("second error: %v", list[1])
	}
}

func TestParseCollectsAcrossLines(t *testing.T) {
	list := parseErrors(t, "MOV R1\nNOP\nADD R1, R2")
	if len(list) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(list), list)
	}
	lines := []int{
		list[0].(LineError).SourceLine(),
		list[1].(LineError).SourceLine(),
	}
	if lines[0] != 1 || lines[1] != 3 {
		t.Fatalf("error lines: %v", lines)
	}
}

func TestParseAllOrNothing(t *testing.T) {
	lines, err := Tokenize("NOP\nfirst:\nMOV R1")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Parse(lines)
	if err == nil {
		t.Fatal("expected failure")
	}
	if res != nil {
		t.Fatalf("partial result surfaced: %+v", res)
	}
}

func TestParseEmptyOperandGroup(t *testing.T) {
	list := parseErrors(t, "ADD R1,,R3")
	if len(list) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(list), list)
	}
	var empty *EmptyOperandError
	if !errors.As(list[0], &empty) {
		t.Fatalf("got %v", list[0])
	}
}

func TestParseDispatcherRecordsLastFailure(t *testing.T) {
	// MOV's second position tries Uint16 then Shift; with a label token
	// both fail and the last alternative's failure is the one recorded.
	list := parseErrors(t, "MOV R1, loop")
	if len(list) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(list), list)
	}
	var wrong *WrongTokenTypeError
	if !errors.As(list[0], &wrong) {
		t.Fatalf("got %v", list[0])
	}
	if len(wrong.Want) != 1 || wrong.Want[0] != TokenRegister {
		t.Fatalf("recorded failure is not the shift parser's: %+v", wrong)
	}
}

func TestParseDuplicateLabelOverwrites(t *testing.T) {
	res := mustParse(t, "x:\nNOP\nx:")
	if addr := res.SymbolTable["x"]; addr != 33 {
		t.Fatalf("symbol table: %+v", res.SymbolTable)
	}
	if len(res.SymbolTable) != 1 {
		t.Fatalf("symbol table size: %+v", res.SymbolTable)
	}
}

func TestParseMalformedLineAdvancesIP(t *testing.T) {
	// The instruction pointer advances before arity validation, so the
	// malformed line still consumes address space for the label after it.
	lines, err := Tokenize("MOV R1\nafter:")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(lines)
	if err == nil {
		t.Fatal("expected failure")
	}

	res := mustParse(t, "MOV R1, 0\nafter:")
	if addr := res.SymbolTable["after"]; addr != 33 {
		t.Fatalf("symbol table: %+v", res.SymbolTable)
	}
}

func TestCommaSplit(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"NOP", 0},
		{"PUSH R1", 1},
		{"PUSH R1,", 1},
		{"ADD R1, R2, R3", 3},
		{"ADD R1,,R3", 3},
	}
	for _, tc := range tests {
		tokens := lexLine(t, tc.src)
		groups := commaSplit(tokens[1:])
		if len(groups) != tc.want {
			t.Errorf("%q: %d groups", tc.src, len(groups))
		}
	}
}

func TestParsePanicsOnContractViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	// A line starting with a bare register violates the tokenizer contract.
	// Tokenize refuses to emit such a line, so build it by hand.
	Parse([][]Token{
		{{Type: TokenRegister, Reg: cpu.R1, Text: "R1", Line: 1}},
	})
}
