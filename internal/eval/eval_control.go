package eval

import "github.com/minipar-lang/minipar/internal/value"

// Break/continue/return are non-local control signals that unwind the
// Go call stack to the nearest legal handler (parseBreak/parseContinue
// already reject stray uses at parse time, so these only ever surface
// inside a well-formed while/function body), per spec.md §4.3.
type breakSignal struct{}
type continueSignal struct{}
type returnSignal struct{ Value value.Value }
