package vm

// Op is a decoded instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP   = Op(0) // nop
	OP_INC   = Op(1) // +
	OP_DEC   = Op(2) // -
	OP_RIGHT = Op(3) // >
	OP_LEFT  = Op(4) // <
	OP_LOOP  = Op(5) // [
	OP_POOL  = Op(6) // ]
	OP_OUT   = Op(7) // .
	OP_IN    = Op(8) // ,
)

// Decode a program byte. Bytes outside the instruction set are OP_NOP.
func Decode(b byte) (op Op) {
	switch b {
	case '+':
		op = OP_INC
	case '-':
		op = OP_DEC
	case '>':
		op = OP_RIGHT
	case '<':
		op = OP_LEFT
	case '[':
		op = OP_LOOP
	case ']':
		op = OP_POOL
	case '.':
		op = OP_OUT
	case ',':
		op = OP_IN
	default:
		op = OP_NOP
	}

	return
}

// Symbol returns the program byte for the op, or false for OP_NOP.
func (op Op) Symbol() (b byte, ok bool) {
	if op <= OP_NOP || op > OP_IN {
		return
	}

	return op.String()[0], true
}
