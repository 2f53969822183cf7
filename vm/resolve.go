package vm

import (
	"github.com/ezrec/brainfriendly/internal"
)

// JumpTable maps each loop bracket offset to the offset of its partner.
// Both directions are present for every matched pair.
type JumpTable map[int]int

// ResolveBrackets matches the loop brackets of a program text, without
// executing it.
func ResolveBrackets(text string) (jump JumpTable, err error) {
	return resolve(decode(text))
}

// resolve matches brackets with a stack of pending open offsets.
func resolve(ops []Op) (jump JumpTable, err error) {
	jump = JumpTable{}
	pending := internal.Stack[int]{}

	for pc, op := range ops {
		switch op {
		case OP_LOOP:
			pending.Push(pc)
		case OP_POOL:
			open, ok := pending.Pop()
			if !ok {
				jump = nil
				err = &ErrSyntax{Offsets: []int{pc}, Err: ErrUnmatchedClose}
				return
			}
			jump[open] = pc
			jump[pc] = open
		}
	}

	if !pending.Empty() {
		jump = nil
		err = &ErrSyntax{Offsets: pending.Data, Err: ErrUnmatchedOpen}
		return
	}

	return
}
