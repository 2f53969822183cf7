// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/brainfriendly/tape"
)

var _vm_defines = map[string]int{
	"CELL_MIN": tape.CELL_MIN,
	"CELL_MAX": tape.CELL_MAX,
}

// EOFPolicy selects what an input instruction does once input is exhausted.
// The zero value leaves the cell unchanged.
type EOFPolicy struct {
	Sentinel bool // If set, store Value in the cell.
	Value    int8 // Value stored when Sentinel is set.
}

// EOFValue is the policy that stores value on end of input.
func EOFValue(value int8) EOFPolicy {
	return EOFPolicy{Sentinel: true, Value: value}
}

// String returns the policy as text.
func (eof EOFPolicy) String() string {
	if !eof.Sentinel {
		return "unchanged"
	}
	return fmt.Sprintf("%d", eof.Value)
}

// Machine is the execution state of one program run over one tape.
// A Machine is not safe for concurrent use.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program   // Program being run.
	Tape    *tape.Tape // Cells and cursor.

	Input  io.ByteReader // Input capability, or nil.
	Output io.ByteWriter // Output capability, or nil.
	EOF    EOFPolicy     // End of input policy.

	Pc    int // Offset of the next op.
	Ticks int // Ops executed since reset.
}

// NewMachine creates a machine running prog over tp.
// The tape cursor is brought into range of the cells.
func NewMachine(prog *Program, tp *tape.Tape) (m *Machine) {
	tp.Fit()

	m = &Machine{
		Program: prog,
		Tape:    tp,
	}

	return
}

// Defines for the machine.
func Defines() iter.Seq2[string, int] {
	return maps.All(_vm_defines)
}

// Reset the program counter and tick counter. The tape is untouched.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	m.Pc = 0
	m.Ticks = 0
}

// Done is true once the program counter has run off the end of the program.
func (m *Machine) Done() bool {
	return m.Pc >= m.Program.Len()
}

// String returns the machine state as text.
func (m *Machine) String() string {
	op := OP_NOP
	if !m.Done() {
		op = m.Program.Ops[m.Pc]
	}
	return fmt.Sprintf("pc: %d op: %v cursor: %d cell: %d ticks: %d",
		m.Pc, op, m.Tape.Cursor, m.Tape.Get(), m.Ticks)
}

// Step executes the op at the program counter.
// done is set once there are no more ops to execute.
func (m *Machine) Step() (done bool, err error) {
	if m.Done() {
		done = true
		return
	}

	tp := m.Tape
	op := m.Program.Ops[m.Pc]
	next_pc := m.Pc + 1

	switch op {
	case OP_INC:
		tp.Increment()
	case OP_DEC:
		tp.Decrement()
	case OP_RIGHT:
		tp.Right()
	case OP_LEFT:
		tp.Left()
	case OP_LOOP:
		if tp.Get() == 0 {
			next_pc = m.Program.Jump[m.Pc] + 1
		}
	case OP_POOL:
		if tp.Get() != 0 {
			next_pc = m.Program.Jump[m.Pc] + 1
		}
	case OP_OUT:
		if m.Output != nil {
			err = m.Output.WriteByte(tape.ToByte(tp.Get()))
			if err != nil {
				err = errors.Join(ErrIO, err)
				return
			}
		}
	case OP_IN:
		if m.Input != nil {
			var b byte
			b, err = m.Input.ReadByte()
			switch {
			case err == nil:
				tp.Set(tape.FromByte(b))
			case errors.Is(err, io.EOF):
				err = nil
				if m.EOF.Sentinel {
					tp.Set(m.EOF.Value)
				}
			default:
				err = errors.Join(ErrIO, err)
				return
			}
		}
	}

	m.Pc = next_pc
	m.Ticks++

	done = m.Done()

	return
}

// Run executes ops until the end of the program.
func (m *Machine) Run() (err error) {
	if m.Verbose {
		log.Printf("vm: run %d ops, cursor %d of %d cells", m.Program.Len(), m.Tape.Cursor, m.Tape.Len())
	}

	for done := m.Done(); !done; {
		done, err = m.Step()
		if err != nil {
			if m.Verbose {
				log.Printf("vm: %v: %v", m, err)
			}
			return
		}
	}

	if m.Verbose {
		log.Printf("vm: halt after %d ticks, cursor %d of %d cells", m.Ticks, m.Tape.Cursor, m.Tape.Len())
	}

	return
}
