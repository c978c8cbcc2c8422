package eval

import (
	"fmt"

	"github.com/pkg/errors"
)

// RuntimeError is raised for division by zero, channel closed, socket
// I/O failure, conversion failure, or an internal invariant breach,
// per spec.md §7. Fatal: execution halts the instant one is panicked.
type RuntimeError struct {
	Line int
	Msg  string
	// Stack is non-nil only for invariant-breach errors (bugs in this
	// interpreter, not in the Minipar program being run); ordinary
	// program-triggered errors carry no stack trace.
	Stack error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError at line %d: %s", e.Line, e.Msg)
}

func fail(line int, format string, args ...interface{}) {
	panic(&RuntimeError{Line: line, Msg: fmt.Sprintf(format, args...)})
}

// invariantBreach panics with a wrapped stack trace: used only where
// the parser's static checks should have made this path unreachable.
func invariantBreach(line int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	panic(&RuntimeError{Line: line, Msg: msg, Stack: errors.WithStack(fmt.Errorf("%s", msg))})
}
