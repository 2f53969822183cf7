package tape

import (
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Parse evaluates a tape expression into an initial cell array.
//
// The expression is Starlark, with each of the defines predeclared as an
// integer. It must evaluate to either an integer N (N zero cells), or a
// list or tuple of integers in [-128, 255]. Values above CELL_MAX are
// treated as bytes and mapped onto the signed range.
//
//	[0]*7
//	[0, 3, 0, 0]
//	[5] + [0]*TAPE_SIZE
func Parse(expr string, defines iter.Seq2[string, int]) (cells []int8, err error) {
	thread := starlark.Thread{Name: "tape"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	if defines != nil {
		for key, value := range defines {
			pred[key] = starlark.MakeInt(value)
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "tape", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}

	switch st_val := st_rc.(type) {
	case starlark.Int:
		size, ok := st_val.Int64()
		if !ok || size < 0 {
			err = ErrExpression(expr)
			return
		}
		cells = make([]int8, size)
	case starlark.Indexable:
		cells = make([]int8, st_val.Len())
		for n := range cells {
			st_int, ok := st_val.Index(n).(starlark.Int)
			if !ok {
				err = ErrExpression(expr)
				return
			}
			value, ok := st_int.Int64()
			if !ok || value < CELL_MIN || value > 0xff {
				err = ErrCell{Index: n, Value: value}
				return
			}
			if value < 0 {
				cells[n] = int8(value)
			} else {
				cells[n] = FromByte(byte(value))
			}
		}
	default:
		err = ErrExpression(expr)
		return
	}

	return
}
