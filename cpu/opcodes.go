package cpu

import "strings"

// Opcode identifies one vr32 instruction. The opcode carries its own operand
// signature: an ordered list of positions, each accepting one or more operand
// kinds.
type Opcode uint8

// Instruction opcodes. The constant value is the 6-bit field stored in bits
// 31..26 of an encoded word.
const (
	OpNOP Opcode = iota
	OpMOV
	OpLDR
	OpSTR
	OpADD
	OpSUB
	OpAND
	OpORR
	OpXOR
	OpCMP
	OpJMP
	OpJEQ
	OpJNE
	OpJLT
	OpJGT
	OpCALL
	OpRET
	OpHLT
	OpPUSH
	OpPOP
)

// ArgKind names one kind of instruction operand. The assembler maps each
// kind to its parser; the emitter and disassembler map it to an encoding.
type ArgKind uint8

// Operand kinds.
const (
	// KindRegister is a bare register operand.
	KindRegister ArgKind = iota
	// KindUint16 is a 16-bit bounds-checked immediate.
	KindUint16
	// KindUint24 is a 24-bit bounds-checked immediate (jump targets).
	KindUint24
	// KindShift is a register with an optional shift suffix, e.g. "R2 << 3".
	KindShift
	// KindDeref is a pointer dereference, e.g. "[R1 + R2 << 3]".
	KindDeref
	// KindLabel is a jump target given by name, resolved at link time.
	KindLabel
)

// Signature is the ordered operand-type signature of an opcode: one entry
// per operand position, each an ordered list of acceptable kinds.
type Signature [][]ArgKind

var opcodeNames = map[Opcode]string{
	OpNOP:  "NOP",
	OpMOV:  "MOV",
	OpLDR:  "LDR",
	OpSTR:  "STR",
	OpADD:  "ADD",
	OpSUB:  "SUB",
	OpAND:  "AND",
	OpORR:  "ORR",
	OpXOR:  "XOR",
	OpCMP:  "CMP",
	OpJMP:  "JMP",
	OpJEQ:  "JEQ",
	OpJNE:  "JNE",
	OpJLT:  "JLT",
	OpJGT:  "JGT",
	OpCALL: "CALL",
	OpRET:  "RET",
	OpHLT:  "HLT",
	OpPUSH: "PUSH",
	OpPOP:  "POP",
}

// Operand signatures per opcode. Alternatives within a position are tried in
// the order listed.
var signatures = map[Opcode]Signature{
	OpNOP:  {},
	OpMOV:  {{KindRegister}, {KindUint16, KindShift}},
	OpLDR:  {{KindRegister}, {KindDeref}},
	OpSTR:  {{KindRegister}, {KindDeref}},
	OpADD:  {{KindRegister}, {KindRegister}, {KindUint16, KindShift}},
	OpSUB:  {{KindRegister}, {KindRegister}, {KindUint16, KindShift}},
	OpAND:  {{KindRegister}, {KindRegister}, {KindUint16, KindShift}},
	OpORR:  {{KindRegister}, {KindRegister}, {KindUint16, KindShift}},
	OpXOR:  {{KindRegister}, {KindRegister}, {KindUint16, KindShift}},
	OpCMP:  {{KindRegister}, {KindUint16, KindShift}},
	OpJMP:  {{KindUint24, KindLabel}},
	OpJEQ:  {{KindUint24, KindLabel}},
	OpJNE:  {{KindUint24, KindLabel}},
	OpJLT:  {{KindUint24, KindLabel}},
	OpJGT:  {{KindUint24, KindLabel}},
	OpCALL: {{KindUint24, KindLabel}},
	OpRET:  {},
	OpHLT:  {},
	OpPUSH: {{KindRegister}},
	OpPOP:  {{KindRegister}},
}

// String returns the mnemonic for the opcode.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "???"
}

// Signature returns the opcode's ordered operand-type signature.
func (op Opcode) Signature() Signature {
	return signatures[op]
}

// Arity returns the number of operands the opcode takes.
func (op Opcode) Arity() int {
	return len(signatures[op])
}

// ParseOpcode looks up an opcode by mnemonic, case-insensitively.
func ParseOpcode(s string) (Opcode, bool) {
	for op, name := range opcodeNames {
		if strings.EqualFold(s, name) {
			return op, true
		}
	}
	return 0, false
}
