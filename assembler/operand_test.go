package assembler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/torvik/vr32/cpu"
)

func TestParseRegisterArg(t *testing.T) {
	arg, err := parseRegisterArg(lexLine(t, "R3"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if arg != Reg(cpu.R3) {
		t.Fatalf("got %v", arg)
	}

	var empty *EmptyOperandError
	if _, err := parseRegisterArg(nil, 1); !errors.As(err, &empty) {
		t.Fatalf("empty slice: %v", err)
	}

	var extra *ExtraTokensError
	_, err = parseRegisterArg(lexLine(t, "R3 R4 R5"), 1)
	if !errors.As(err, &extra) {
		t.Fatalf("extra tokens: %v", err)
	}
	if extra.Text != "R4R5" {
		t.Fatalf("extra text: %q", extra.Text)
	}

	var wrong *WrongTokenTypeError
	if _, err := parseRegisterArg(lexLine(t, "42"), 1); !errors.As(err, &wrong) {
		t.Fatalf("wrong type: %v", err)
	}
}

func TestParseShiftArg(t *testing.T) {
	tests := []struct {
		src  string
		want Shift
	}{
		// A bare register defaults to a left shift by zero.
		{"R4", Shift{Type: ShiftLeft, Reg: cpu.R4, Amount: 0}},
		{"R2 << 3", Shift{Type: ShiftLeft, Reg: cpu.R2, Amount: 3}},
		{"R7 >> 31", Shift{Type: ShiftRight, Reg: cpu.R7, Amount: 31}},
	}
	for _, tc := range tests {
		arg, err := parseShiftArg(lexLine(t, tc.src), 1)
		if err != nil {
			t.Fatalf("%q: %v", tc.src, err)
		}
		if arg != tc.want {
			t.Errorf("%q: got %+v", tc.src, arg)
		}
	}

	var operator *ShiftOperatorError
	if _, err := parseShiftArg(lexLine(t, "R1 + 3"), 1); !errors.As(err, &operator) {
		t.Fatalf("bad operator: %v", err)
	}

	var overflow *NumberOverflowError
	if _, err := parseShiftArg(lexLine(t, "R1 << 32"), 1); !errors.As(err, &overflow) {
		t.Fatalf("oversized amount: %v", err)
	}
}

func TestParseDerefArg(t *testing.T) {
	tests := []struct {
		src  string
		want PointerDeref
	}{
		{"[R1]", PointerDeref{Reg: cpu.R1, Increment: Uint16(0)}},
		{"[R1 + 5]", PointerDeref{Reg: cpu.R1, Increment: Uint16(5)}},
		{"[R1 + R2 << 3]", PointerDeref{Reg: cpu.R1, Increment: Shift{Type: ShiftLeft, Reg: cpu.R2, Amount: 3}}},
		{"[R1 + R2]", PointerDeref{Reg: cpu.R1, Increment: Shift{Type: ShiftLeft, Reg: cpu.R2, Amount: 0}}},
	}
	for _, tc := range tests {
		arg, err := parseDerefArg(lexLine(t, tc.src), 1)
		if err != nil {
			t.Fatalf("%q: %v", tc.src, err)
		}
		if !reflect.DeepEqual(arg, tc.want) {
			t.Errorf("%q: got %+v", tc.src, arg)
		}
	}
}

func TestParseDerefArgErrors(t *testing.T) {
	var deref *PointerDerefError
	for _, src := range []string{"R1", "[R1", "R1]"} {
		if _, err := parseDerefArg(lexLine(t, src), 1); !errors.As(err, &deref) {
			t.Errorf("%q: %v", src, err)
		}
	}

	// Increment that is neither a Uint16 nor a shift expression fails with
	// the combined increment text.
	_, err := parseDerefArg(lexLine(t, "[R1 + R2 R3]"), 1)
	if !errors.As(err, &deref) {
		t.Fatalf("bad increment: %v", err)
	}
	if deref.Text != "R2R3" {
		t.Fatalf("increment text: %q", deref.Text)
	}

	var expected *ExpectedTokenError
	if _, err := parseDerefArg(lexLine(t, "[R1 R2 5]"), 1); !errors.As(err, &expected) {
		t.Fatalf("missing plus: %v", err)
	}
}

func TestParseImmediateArgs(t *testing.T) {
	arg, err := parseUint16Arg(lexLine(t, "65535"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if arg != Uint16(MaxUint16) {
		t.Fatalf("got %v", arg)
	}

	arg, err = parseUint24Arg(lexLine(t, "16777215"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if arg != Uint24(MaxUint24) {
		t.Fatalf("got %v", arg)
	}

	var overflow *NumberOverflowError
	if _, err := parseUint16Arg(lexLine(t, "65536"), 1); !errors.As(err, &overflow) {
		t.Fatalf("overflow: %v", err)
	}

	// A quoted numeric string is a valid immediate source.
	arg, err = parseUint16Arg(lexLine(t, `"123"`), 1)
	if err != nil {
		t.Fatal(err)
	}
	if arg != Uint16(123) {
		t.Fatalf("got %v", arg)
	}
}

func TestParseLabelArg(t *testing.T) {
	arg, err := parseLabelArg(lexLine(t, "loop"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if arg != LabelRef("loop") {
		t.Fatalf("got %v", arg)
	}

	var wrong *WrongTokenTypeError
	if _, err := parseLabelArg(lexLine(t, "R1"), 1); !errors.As(err, &wrong) {
		t.Fatalf("wrong type: %v", err)
	}
}
