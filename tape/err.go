package tape

import (
	"errors"

	"github.com/ezrec/brainfriendly/translate"
)

var f = translate.From

var (
	ErrCellRange = errors.New(f("cell out of range"))
)

// ErrExpression is a tape expression that did not evaluate to cells.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a tape expression", string(err))
}

// ErrCell locates an out of range cell in a tape expression.
type ErrCell struct {
	Index int
	Value int64
}

func (err ErrCell) Error() string {
	return f("cell %d value %d %v", err.Index, err.Value, ErrCellRange)
}

func (err ErrCell) Unwrap() error {
	return ErrCellRange
}
