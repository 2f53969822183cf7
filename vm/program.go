package vm

import (
	"io"
	"strings"
)

// Program is a decoded program text and its resolved brackets.
type Program struct {
	Ops  []Op      // Decoded op per byte offset of the text.
	Jump JumpTable // Matched bracket offsets.
}

// Load decodes and resolves a program text.
func Load(text string) (prog *Program, err error) {
	ops := decode(text)

	jump, err := resolve(ops)
	if err != nil {
		return
	}

	prog = &Program{
		Ops:  ops,
		Jump: jump,
	}

	return
}

// decode every byte of a program text.
func decode(text string) (ops []Op) {
	ops = make([]Op, len(text))
	for n := range len(text) {
		ops[n] = Decode(text[n])
	}
	return
}

// Parse reads an entire program text and loads it.
func Parse(in io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(in)
	if err != nil {
		return
	}

	return Load(string(text))
}

// Len is the length of the program, including OP_NOP offsets.
func (prog *Program) Len() int {
	return len(prog.Ops)
}

// String returns the program text without its commentary.
func (prog *Program) String() string {
	var text strings.Builder
	for _, op := range prog.Ops {
		if b, ok := op.Symbol(); ok {
			text.WriteByte(b)
		}
	}

	return text.String()
}
