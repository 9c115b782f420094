package cpu

// Every vr32 instruction encodes to one 32-bit word. The instruction pointer
// advances by InstructionWidth bits per instruction.
const InstructionWidth = 32

// Field layout of an encoded word. All instructions carry the opcode in the
// top six bits; the remaining fields depend on the opcode's operand shape.
const (
	// OpcodeShift positions the 6-bit opcode field.
	OpcodeShift = 26
	// OpcodeMask extracts an opcode after shifting.
	OpcodeMask = 0x3F

	// RegAShift positions the first register operand (dst for ALU ops and
	// MOV, the transfer register for LDR/STR/PUSH/POP).
	RegAShift = 22
	// RegBShift positions the second register operand (ALU source a,
	// LDR/STR base register).
	RegBShift = 18
	// RegMask extracts a 4-bit register field after shifting.
	RegMask = 0xF

	// Imm16Mask extracts a 16-bit immediate from the low bits.
	Imm16Mask = 0xFFFF
	// Imm24Mask extracts a 24-bit jump target from the low bits.
	Imm24Mask = 0xFFFFFF
)

// Three-operand forms (ALU, LDR/STR increments): the polymorphic last
// operand is selected by a form bit and packed below it.
const (
	// Form3Shift positions the immediate-vs-shift selector for
	// three-operand instructions.
	Form3Shift = 17
	// ShiftTypeShift3, ShiftRegShift3 and ShiftAmountShift3 position the
	// pieces of a shift operand in the three-operand form.
	ShiftTypeShift3   = 16
	ShiftRegShift3    = 12
	ShiftAmountShift3 = 7
)

// Two-operand forms (MOV, CMP): the selector sits one field higher, with the
// shift operand packed below it.
const (
	// Form2Shift positions the immediate-vs-shift selector for
	// two-operand instructions.
	Form2Shift = 21
	// ShiftTypeShift2, ShiftRegShift2 and ShiftAmountShift2 position the
	// pieces of a shift operand in the two-operand form.
	ShiftTypeShift2   = 20
	ShiftRegShift2    = 16
	ShiftAmountShift2 = 11
)

// ShiftAmountMask extracts a 5-bit shift amount after shifting.
const ShiftAmountMask = 0x1F
