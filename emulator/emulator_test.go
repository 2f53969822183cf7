package emulator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/brainfriendly/tape"
	"github.com/ezrec/brainfriendly/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal(TAPE_SIZE, len(emu.Result()))
	assert.True(emu.Machine.Done())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func doRun(emu *Emulator, program string, input []byte, t *testing.T) (output []byte) {
	assert := assert.New(t)

	prog, err := vm.Load(program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	emu.Tape.Input = bytes.NewReader(input)
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	emu.Reset()

	err = emu.Run()
	assert.NoError(err, program)

	output = tape_output.Bytes()
	return
}

func TestEmulatorHello(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Cells = make([]int8, 100)

	output := doRun(emu, "+++++ +++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.", nil, t)
	assert.Equal("Hello World!\n", string(output))
	assert.Equal(13, emu.Tape.Written)
	assert.Equal(0, emu.Tape.Read)
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Cells = []int8{0}
	emu.EOF = vm.EOFValue(0)

	// Echo until end of input.
	output := doRun(emu, ",[.,]", []byte("echo\n"), t)
	assert.Equal("echo\n", string(output))
	assert.Equal(5, emu.Tape.Read)
	assert.Equal([]int8{0}, emu.Result())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Cells = []int8{0, 3, 0, 0}
	emu.Cursor = 1

	doRun(emu, "[>+>+<<-]", nil, t)
	assert.Equal([]int8{0, 0, 3, 3}, emu.Result())
	assert.Equal([]int8{0, 3, 0, 0}, emu.Cells)
	ticks := emu.Ticks()
	assert.Less(0, ticks)

	emu.Reset()
	assert.Equal(0, emu.Ticks())
	assert.Equal(0, emu.Pc())
	assert.Equal([]int8{0, 3, 0, 0}, emu.Result())

	assert.NoError(emu.Run())
	assert.Equal([]int8{0, 0, 3, 3}, emu.Result())
	assert.Equal(ticks, emu.Ticks())
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	prog, err := vm.Load("+>+")
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	emu.Cells = []int8{0}
	emu.Reset()

	for n := range 3 {
		assert.Equal(n, emu.Pc())
		done, err := emu.Tick()
		assert.NoError(err)
		assert.Equal(n == 2, done)
	}

	assert.Equal([]int8{1, 1}, emu.Result())
}

func TestEmulatorLimit(t *testing.T) {
	assert := assert.New(t)

	prog, err := vm.Load("+[]")
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	emu.Cells = []int8{0}
	emu.Limit = 100
	emu.Reset()

	err = emu.Run()
	assert.True(errors.Is(err, ErrLimit))
	assert.Equal(100, emu.Ticks())

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))

	// A limit that is never reached does not interfere.
	prog, err = vm.Load("+++")
	assert.NoError(err)
	emu.Program = prog
	emu.Reset()
	assert.NoError(emu.Run())
	assert.Equal([]int8{3}, emu.Result())
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken")
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	prog, err := vm.Load("++.")
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	emu.Tape.Output = brokenWriter{}
	emu.Reset()

	err = emu.Run()
	assert.True(errors.Is(err, vm.ErrIO))

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(2, runtime.Pc)
	}
}

func TestEmulatorNoStreams(t *testing.T) {
	assert := assert.New(t)

	prog, err := vm.Load(",.")
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	emu.Cells = []int8{42}
	emu.EOF = vm.EOFValue(-1)
	emu.Reset()

	// Without an input stream the input instruction does nothing.
	assert.NoError(emu.Run())
	assert.Equal([]int8{42}, emu.Result())
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]int{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal(TAPE_SIZE, defines["TAPE_SIZE"])
	assert.Equal(tape.CELL_MIN, defines["CELL_MIN"])
	assert.Equal(tape.CELL_MAX, defines["CELL_MAX"])

	cells, err := tape.Parse("[CELL_MAX]*2 + [0]*(TAPE_SIZE-2)", emu.Defines())
	assert.NoError(err)
	assert.Equal(TAPE_SIZE, len(cells))
	assert.Equal(int8(127), cells[1])
}
