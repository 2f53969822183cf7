package vm

import (
	"io"

	"github.com/ezrec/brainfriendly/tape"
)

// Eval runs a program text over cells, starting with the cursor at cursor,
// and returns the final cells.
//
// The brackets are resolved before anything runs: on ErrMalformed the cells
// are returned untouched and no I/O has happened. input and output may be
// nil, making the input and output instructions no-ops. Cells are modified
// in place, but the returned slice must be used as the tape may have grown.
func Eval(text string, cursor int, cells []int8, input io.ByteReader, output io.ByteWriter, eof EOFPolicy) (final []int8, err error) {
	prog, err := Load(text)
	if err != nil {
		final = cells
		return
	}

	m := NewMachine(prog, &tape.Tape{Cells: cells, Cursor: cursor})
	m.Input = input
	m.Output = output
	m.EOF = eof

	err = m.Run()
	final = m.Tape.Cells

	return
}
