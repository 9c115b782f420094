package disassembler

import (
	"fmt"
	"strings"

	"github.com/torvik/vr32/cpu"
)

// Disassemble decodes 32-bit instruction words back into source text, one
// instruction per line. It is the inverse of the assembler's emitter for
// every opcode form.
func Disassemble(words []uint32) (string, error) {
	var sb strings.Builder
	for i, word := range words {
		line, err := decode(word)
		if err != nil {
			return "", fmt.Errorf("word %d: %w", i, err)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// decode renders a single instruction word.
func decode(word uint32) (string, error) {
	op := cpu.Opcode(word >> cpu.OpcodeShift & cpu.OpcodeMask)
	switch op {
	case cpu.OpNOP, cpu.OpRET, cpu.OpHLT:
		return op.String(), nil
	case cpu.OpPUSH, cpu.OpPOP:
		return fmt.Sprintf("%s %s", op, regField(word, cpu.RegAShift)), nil
	case cpu.OpMOV, cpu.OpCMP:
		return fmt.Sprintf("%s %s, %s", op, regField(word, cpu.RegAShift), operand2(word)), nil
	case cpu.OpADD, cpu.OpSUB, cpu.OpAND, cpu.OpORR, cpu.OpXOR:
		return fmt.Sprintf("%s %s, %s, %s",
			op, regField(word, cpu.RegAShift), regField(word, cpu.RegBShift), operand3(word)), nil
	case cpu.OpLDR, cpu.OpSTR:
		return fmt.Sprintf("%s %s, %s",
			op, regField(word, cpu.RegAShift), derefText(word)), nil
	case cpu.OpJMP, cpu.OpJEQ, cpu.OpJNE, cpu.OpJLT, cpu.OpJGT, cpu.OpCALL:
		return fmt.Sprintf("%s %d", op, word&cpu.Imm24Mask), nil
	default:
		return "", fmt.Errorf("unknown opcode %d", op)
	}
}

func regField(word uint32, shift uint) cpu.Register {
	return cpu.Register(word >> shift & cpu.RegMask)
}

// operand2 renders the polymorphic second operand of MOV and CMP.
func operand2(word uint32) string {
	if word>>cpu.Form2Shift&1 == 1 {
		return fmt.Sprintf("%d", word&cpu.Imm16Mask)
	}
	return shiftText(
		word>>cpu.ShiftTypeShift2&1,
		regField(word, cpu.ShiftRegShift2),
		word>>cpu.ShiftAmountShift2&cpu.ShiftAmountMask,
	)
}

// operand3 renders the polymorphic last operand of three-operand forms.
func operand3(word uint32) string {
	if word>>cpu.Form3Shift&1 == 1 {
		return fmt.Sprintf("%d", word&cpu.Imm16Mask)
	}
	return shiftText(
		word>>cpu.ShiftTypeShift3&1,
		regField(word, cpu.ShiftRegShift3),
		word>>cpu.ShiftAmountShift3&cpu.ShiftAmountMask,
	)
}

// derefText renders a pointer dereference. A zero immediate increment
// renders as the bare form "[Rn]", matching what the parser defaults.
func derefText(word uint32) string {
	base := regField(word, cpu.RegBShift)
	if word>>cpu.Form3Shift&1 == 1 {
		inc := word & cpu.Imm16Mask
		if inc == 0 {
			return fmt.Sprintf("[%s]", base)
		}
		return fmt.Sprintf("[%s + %d]", base, inc)
	}
	return fmt.Sprintf("[%s + %s]", base, shiftText(
		word>>cpu.ShiftTypeShift3&1,
		regField(word, cpu.ShiftRegShift3),
		word>>cpu.ShiftAmountShift3&cpu.ShiftAmountMask,
	))
}

// shiftText renders a shift operand, collapsing the "<< 0" default back to
// a bare register.
func shiftText(dir uint32, reg cpu.Register, amount uint32) string {
	if dir == 0 && amount == 0 {
		return reg.String()
	}
	operator := "<<"
	if dir == 1 {
		operator = ">>"
	}
	return fmt.Sprintf("%s %s %d", reg, operator, amount)
}
