// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/brainfriendly/internal"
	"github.com/ezrec/brainfriendly/io"
	"github.com/ezrec/brainfriendly/tape"
	"github.com/ezrec/brainfriendly/vm"
)

const (
	TAPE_SIZE = tape.TAPE_SIZE // Tape length when no initial cells are given.
)

var _emulator_defines = map[string]int{
	"TAPE_SIZE": TAPE_SIZE,
}

// Emulator state. Machine + program + IO tape.
type Emulator struct {
	Verbose     bool        // If set, enables verbose logging.
	*vm.Machine             // Reference to the machine of the current run.
	Program     *vm.Program // Reference to the currently loaded program.

	Tape io.Tape // Tape IO channel.

	Cells  []int8       // Initial cells. If nil, TAPE_SIZE zero cells.
	Cursor int          // Initial cursor.
	EOF    vm.EOFPolicy // End of input policy.
	Limit  int          // Maximum ticks per Run, or 0 for no limit.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &vm.Program{},
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		vm.Defines(),
	)
}

// Reset prepares a fresh run of the program over a copy of the initial cells.
func (emu *Emulator) Reset() {
	if emu.Program == nil {
		emu.Program = &vm.Program{}
	}

	var tp *tape.Tape
	if emu.Cells == nil {
		tp = tape.NewTape(TAPE_SIZE)
	} else {
		tp = &tape.Tape{Cells: slices.Clone(emu.Cells)}
	}
	tp.Cursor = emu.Cursor

	emu.Machine = vm.NewMachine(emu.Program, tp)
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.EOF = emu.EOF

	// Only attached streams are capabilities.
	if emu.Tape.Input != nil {
		emu.Machine.Input = &emu.Tape
	}
	if emu.Tape.Output != nil {
		emu.Machine.Output = &emu.Tape
	}
	emu.Tape.Rewind()

	if emu.Verbose {
		log.Printf("emulator: reset, %d cells, cursor %d, eof %v", tp.Len(), tp.Cursor, emu.EOF)
	}
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Machine.Ticks
}

// Pc returns the offset of the next op.
func (emu *Emulator) Pc() int {
	return emu.Machine.Pc
}

// Result returns the current cells of the run.
func (emu *Emulator) Result() []int8 {
	return emu.Machine.Tape.Cells
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	pc := emu.Machine.Pc
	done, err = emu.Machine.Step()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Run ticks until the program ends, or until Limit ticks have elapsed.
func (emu *Emulator) Run() (err error) {
	for done := emu.Machine.Done(); !done; {
		if emu.Limit > 0 && emu.Machine.Ticks >= emu.Limit {
			err = &ErrRuntime{Pc: emu.Machine.Pc, Err: ErrLimit}
			break
		}
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks, %d bytes in, %d bytes out", emu.Machine.Ticks, emu.Tape.Read, emu.Tape.Written)
	}

	return
}
