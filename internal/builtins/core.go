/*
File    : minipar/internal/builtins/core.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/minipar-lang/minipar/internal/value"
)

func init() {
	register("print", printOutput)
	register("output", printOutput)
	register("to_number", toNumber)
	register("to_string", toString)
	register("to_bool", toBool)
	register("length", length)
	register("exp", mathUnary(math.Exp))
	register("sqrt", mathUnary(math.Sqrt))
	register("abs", mathUnary(math.Abs))
	register("floor", mathUnary(math.Floor))
	register("ceil", mathUnary(math.Ceil))
	register("pow", mathBinary(math.Pow))
}

// printOutput converts each argument to its canonical string form and
// writes them to w followed by a single trailing newline, per
// spec.md §4.6. Unlike the teacher's own `print` (no trailing newline,
// space-joined), every call here ends with exactly one '\n'.
func printOutput(w io.Writer, args ...value.Value) (value.Value, error) {
	for _, a := range args {
		fmt.Fprint(w, a.String())
	}
	fmt.Fprint(w, "\n")
	return value.VoidValue, nil
}

func toNumber(w io.Writer, args ...value.Value) (value.Value, error) {
	s := args[0].(*value.Str).Val
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fail("to_number: %q is not a valid number", s)
	}
	return value.NewNumber(f), nil
}

func toString(w io.Writer, args ...value.Value) (value.Value, error) {
	return value.NewStr(args[0].String()), nil
}

func toBool(w io.Writer, args ...value.Value) (value.Value, error) {
	s := args[0].(*value.Str).Val
	switch s {
	case "true":
		return value.NewBool(true), nil
	case "false":
		return value.NewBool(false), nil
	default:
		return nil, fail("to_bool: %q is not a valid bool", s)
	}
}

func length(w io.Writer, args ...value.Value) (value.Value, error) {
	s := args[0].(*value.Str).Val
	return value.NewNumber(float64(len([]rune(s)))), nil
}

func mathUnary(f func(float64) float64) Callback {
	return func(w io.Writer, args ...value.Value) (value.Value, error) {
		n := args[0].(*value.Number).Val
		return value.NewNumber(f(n)), nil
	}
}

func mathBinary(f func(float64, float64) float64) Callback {
	return func(w io.Writer, args ...value.Value) (value.Value, error) {
		a := args[0].(*value.Number).Val
		b := args[1].(*value.Number).Val
		return value.NewNumber(f(a, b)), nil
	}
}
