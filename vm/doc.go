// Package vm implements the tape machine for the eight instruction language.
//
// A program is loaded once: every byte of its text is decoded into an Op,
// with any byte outside the instruction set decoding to OP_NOP, and the loop
// brackets are matched into a JumpTable. A program with unbalanced brackets
// is rejected before any instruction runs.
//
// The Machine then executes the decoded program against a tape.Tape, with
// optional io.ByteReader and io.ByteWriter capabilities for the input and
// output instructions. Execution itself cannot fail, except when one of the
// capabilities reports an error other than io.EOF.
package vm
