// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape implements the signed byte cell array addressed by a cursor.
//
// Cells hold values in [-128, 127] and wrap on overflow in both directions.
// The tape only grows to the right, when the cursor advances past its end;
// retreating past the first cell leaves the cursor at zero.
package tape

const (
	TAPE_SIZE = 30000 // Conventional initial tape length.
	CELL_MIN  = -128  // Lowest cell value.
	CELL_MAX  = 127   // Highest cell value.
)

// Tape is a cell array and the cursor into it.
type Tape struct {
	Cells  []int8 // Cell values.
	Cursor int    // Index of the addressed cell.
}

// NewTape creates a zeroed tape of size cells.
func NewTape(size int) (tp *Tape) {
	tp = &Tape{
		Cells: make([]int8, size),
	}

	tp.Fit()

	return
}

// Increment returns value+1, wrapping CELL_MAX to CELL_MIN.
func Increment(value int8) int8 {
	if value == CELL_MAX {
		return CELL_MIN
	}
	return value + 1
}

// Decrement returns value-1, wrapping CELL_MIN to CELL_MAX.
func Decrement(value int8) int8 {
	if value == CELL_MIN {
		return CELL_MAX
	}
	return value - 1
}

// FromByte maps an input byte onto the signed cell range.
func FromByte(b byte) int8 {
	if b > CELL_MAX {
		return int8(int(b) - 256)
	}
	return int8(b)
}

// ToByte maps a cell value onto an output byte (value mod 256).
func ToByte(value int8) byte {
	return byte(int(value) & 0xff)
}

// Fit brings the cursor back into the cell array.
// A negative cursor is clamped to zero, and the cells are grown with zeros
// until the cursor addresses one of them.
func (tp *Tape) Fit() {
	if tp.Cursor < 0 {
		tp.Cursor = 0
	}

	for tp.Cursor >= len(tp.Cells) {
		tp.Cells = append(tp.Cells, 0)
	}
}

// Len is the current number of cells.
func (tp *Tape) Len() int {
	return len(tp.Cells)
}

// Get the addressed cell.
func (tp *Tape) Get() int8 {
	return tp.Cells[tp.Cursor]
}

// Set the addressed cell.
func (tp *Tape) Set(value int8) {
	tp.Cells[tp.Cursor] = value
}

// Increment the addressed cell.
func (tp *Tape) Increment() {
	tp.Cells[tp.Cursor] = Increment(tp.Cells[tp.Cursor])
}

// Decrement the addressed cell.
func (tp *Tape) Decrement() {
	tp.Cells[tp.Cursor] = Decrement(tp.Cells[tp.Cursor])
}

// Right advances the cursor, appending a zero cell when it walks off the end.
func (tp *Tape) Right() {
	tp.Cursor++
	if tp.Cursor == len(tp.Cells) {
		tp.Cells = append(tp.Cells, 0)
	}
}

// Left retreats the cursor. At the first cell this does nothing.
func (tp *Tape) Left() {
	if tp.Cursor > 0 {
		tp.Cursor--
	}
}
