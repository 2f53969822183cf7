package vm

import (
	"errors"

	"github.com/ezrec/brainfriendly/translate"
)

var f = translate.From

var (
	// Bracket resolution errors
	ErrMalformed      = errors.New(f("malformed program"))
	ErrUnmatchedOpen  = errors.New(f("unmatched open"))
	ErrUnmatchedClose = errors.New(f("unmatched close"))

	// Runtime errors
	ErrIO = errors.New(f("i/o"))
)

// ErrSyntax reports the offsets of the brackets that could not be matched.
// For ErrUnmatchedClose this is the first close without an open; for
// ErrUnmatchedOpen it is every open still pending at the end of the program.
type ErrSyntax struct {
	Offsets []int
	Err     error
}

func (err *ErrSyntax) Error() string {
	if len(err.Offsets) == 1 {
		return f("offset %d %v", err.Offsets[0], err.Err)
	}
	return f("%d %v at offsets %v", len(err.Offsets), err.Err, err.Offsets)
}

func (err *ErrSyntax) Unwrap() []error {
	return []error{ErrMalformed, err.Err}
}
