package assembler

import (
	"fmt"

	"github.com/torvik/vr32/cpu"
)

// Emit packs each parsed instruction into one 32-bit word, resolving label
// operands against the symbol table. Label addresses are substituted exactly
// as recorded by the parser. Unresolved labels are collected across the
// whole program and raised as one aggregate failure.
//
// Emit expects a parser-produced result: operand types that do not match the
// opcode signature are a contract violation and panic.
func Emit(res *ParseResult) ([]uint32, error) {
	var errs ErrorList
	words := make([]uint32, 0, len(res.Instructions))
	for i, ins := range res.Instructions {
		word, err := encodeInstruction(ins, res.SymbolTable, i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		words = append(words, word)
	}
	if err := errs.errOrNil(); err != nil {
		return nil, err
	}
	return words, nil
}

func encodeInstruction(ins Instruction, symbols map[string]int, index int) (uint32, error) {
	word := uint32(ins.Op) << cpu.OpcodeShift
	switch ins.Op {
	case cpu.OpNOP, cpu.OpRET, cpu.OpHLT:
		return word, nil
	case cpu.OpPUSH, cpu.OpPOP:
		word |= uint32(ins.Args[0].(Reg)) << cpu.RegAShift
		return word, nil
	case cpu.OpMOV, cpu.OpCMP:
		word |= uint32(ins.Args[0].(Reg)) << cpu.RegAShift
		word |= encodeOperand2(ins.Args[1])
		return word, nil
	case cpu.OpADD, cpu.OpSUB, cpu.OpAND, cpu.OpORR, cpu.OpXOR:
		word |= uint32(ins.Args[0].(Reg)) << cpu.RegAShift
		word |= uint32(ins.Args[1].(Reg)) << cpu.RegBShift
		word |= encodeOperand3(ins.Args[2])
		return word, nil
	case cpu.OpLDR, cpu.OpSTR:
		deref := ins.Args[1].(PointerDeref)
		word |= uint32(ins.Args[0].(Reg)) << cpu.RegAShift
		word |= uint32(deref.Reg) << cpu.RegBShift
		word |= encodeOperand3(deref.Increment)
		return word, nil
	case cpu.OpJMP, cpu.OpJEQ, cpu.OpJNE, cpu.OpJLT, cpu.OpJGT, cpu.OpCALL:
		switch target := ins.Args[0].(type) {
		case Uint24:
			word |= uint32(target) & cpu.Imm24Mask
		case LabelRef:
			addr, ok := symbols[string(target)]
			if !ok {
				return 0, &UnknownLabelError{Name: string(target), Index: index}
			}
			word |= uint32(addr) & cpu.Imm24Mask
		default:
			panic(fmt.Sprintf("assembler: bad jump target %T", target))
		}
		return word, nil
	default:
		return 0, fmt.Errorf("unknown opcode %d", ins.Op)
	}
}

// encodeOperand2 encodes the polymorphic second operand of MOV and CMP.
func encodeOperand2(arg Arg) uint32 {
	switch v := arg.(type) {
	case Uint16:
		return 1<<cpu.Form2Shift | uint32(v)
	case Shift:
		return uint32(v.Type)<<cpu.ShiftTypeShift2 |
			uint32(v.Reg)<<cpu.ShiftRegShift2 |
			uint32(v.Amount)<<cpu.ShiftAmountShift2
	default:
		panic(fmt.Sprintf("assembler: bad operand %T", arg))
	}
}

// encodeOperand3 encodes the polymorphic last operand of three-operand
// instructions and the increment of a pointer dereference.
func encodeOperand3(arg Arg) uint32 {
	switch v := arg.(type) {
	case Uint16:
		return 1<<cpu.Form3Shift | uint32(v)
	case Shift:
		return uint32(v.Type)<<cpu.ShiftTypeShift3 |
			uint32(v.Reg)<<cpu.ShiftRegShift3 |
			uint32(v.Amount)<<cpu.ShiftAmountShift3
	default:
		panic(fmt.Sprintf("assembler: bad operand %T", arg))
	}
}
