package emulator

import (
	"errors"

	"github.com/ezrec/brainfriendly/translate"
)

var f = translate.From

var (
	ErrLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the program offset of a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("offset %d %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
