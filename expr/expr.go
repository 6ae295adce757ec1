// Package expr evaluates small integer expressions, such as the patch
// values and answer formulas given on the command line.
package expr

import (
	"errors"
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNotInteger = errors.New(f("expression is not an integer"))
)

// ErrExpression wraps a failed evaluation with its source text.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// Eval evaluates expr with the given integer variables in scope.
func Eval(expr string, vars map[string]int64) (value int64, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		pred[key] = starlark.MakeInt64(vars[key])
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrNotInteger
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrNotInteger
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrNotInteger
		return
	}

	return
}
