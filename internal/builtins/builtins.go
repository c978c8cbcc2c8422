/*
File    : minipar/internal/builtins/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins is Minipar's global built-in function registry,
// grounded on the teacher's std.Builtin/Runtime/CallbackFunc shape but
// trimmed to exactly the functions spec.md §4.6 names: print, output,
// to_number, to_string, to_bool, length, and a handful of elementary
// math routines.
package builtins

import (
	"fmt"
	"io"
	"sync"

	"github.com/minipar-lang/minipar/internal/value"
)

// Callback is a builtin function's native Go implementation.
type Callback func(w io.Writer, args ...value.Value) (value.Value, error)

// Builtin names one registered callback.
type Builtin struct {
	Name     string
	Callback Callback
}

// Registry maps every builtin name to its implementation. Built once
// at process start and shared by reference, per the "global built-in
// registry" design note in spec.md §9.
var Registry = map[string]*Builtin{}

func register(name string, cb Callback) {
	Registry[name] = &Builtin{Name: name, Callback: cb}
}

// writeMu serializes every builtin's write to the shared output
// stream, so concurrent `par` children never interleave mid-call, per
// spec.md §4.4/§5.
var writeMu sync.Mutex

// Invoke dispatches name with args, or reports ok=false if name is not
// a registered builtin.
func Invoke(w io.Writer, name string, args ...value.Value) (value.Value, error, bool) {
	b, ok := Registry[name]
	if !ok {
		return nil, nil, false
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	v, err := b.Callback(w, args...)
	return v, err, true
}

// RuntimeError matches the eval package's error type shape so builtin
// failures surface as ordinary RuntimeErrors without builtins needing
// to import eval (which already imports builtins).
type RuntimeError struct{ Msg string }

func (e *RuntimeError) Error() string { return e.Msg }

func fail(format string, args ...interface{}) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
