// Package io provides the byte-stream capabilities handed to the machine.
//
// A Tape adapts an io.Reader and io.Writer into the io.ByteReader and
// io.ByteWriter capabilities, moving exactly one byte per request. Nothing
// is read ahead of the program, so a blocking input blocks the machine at
// the input instruction that asked for it.
package io

import (
	"io"
)

// Tape is a sequential byte channel.
type Tape struct {
	Input  io.Reader // Source for input requests, or nil.
	Output io.Writer // Sink for output requests, or nil.

	Read    int // Bytes read since the last Rewind.
	Written int // Bytes written since the last Rewind.
}

var _ io.ByteReader = (*Tape)(nil)
var _ io.ByteWriter = (*Tape)(nil)

// Rewind clears the transfer counters. The streams are not rewound.
func (tc *Tape) Rewind() {
	tc.Read = 0
	tc.Written = 0
}

// ReadByte reads a single byte from Input.
// A missing Input behaves as an exhausted one.
func (tc *Tape) ReadByte() (b byte, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	var one [1]byte
	for {
		var n int
		n, err = tc.Input.Read(one[:])
		if n == 1 {
			// A byte delivered with an error is still delivered.
			err = nil
			break
		}
		if err != nil {
			return
		}
	}

	b = one[0]
	tc.Read++

	return
}

// WriteByte writes a single byte to Output.
// A missing Output discards the byte.
func (tc *Tape) WriteByte(b byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{b})
	if err != nil {
		return
	}

	tc.Written++

	return
}
