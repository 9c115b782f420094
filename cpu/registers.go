package cpu

import "strings"

// Register identifies one of the sixteen general-purpose registers.
type Register uint8

// General-purpose registers. Each occupies a 4-bit field in encoded
// instructions.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// NumRegisters is the size of the register file.
	NumRegisters = 16
)

var registerNames = [NumRegisters]string{
	"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7",
	"R8", "R9", "R10", "R11", "R12", "R13", "R14", "R15",
}

// String returns the canonical register name.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "R?"
}

// ParseRegister looks up a register by name, case-insensitively.
func ParseRegister(s string) (Register, bool) {
	for i, name := range registerNames {
		if strings.EqualFold(s, name) {
			return Register(i), true
		}
	}
	return 0, false
}
