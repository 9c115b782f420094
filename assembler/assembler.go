package assembler

// Assembler chains the stages of the assembly process: tokenizing, semantic
// parsing, and emission. Each Assemble call is an independent transformation
// with no shared state between invocations.
type Assembler struct {
	result *ParseResult
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{}
}

// Assemble takes vr32 assembly source and returns the encoded instruction
// words. On failure the returned error aggregates every problem found in
// the file, not just the first.
func (asm *Assembler) Assemble(src string) ([]uint32, error) {
	lines, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	res, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	asm.result = res
	return Emit(res)
}

// Result returns the parse result of the last successful Assemble call, or
// nil if none has succeeded yet.
func (asm *Assembler) Result() *ParseResult {
	return asm.result
}
