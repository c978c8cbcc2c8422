package lexer

import "fmt"

// LexError reports a malformed token. Fatal: compilation halts the
// instant one is raised.
type LexError struct {
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LexError at line %d: %s", e.Line, e.Msg)
}

func (l *Lexer) fail(format string, args ...interface{}) {
	panic(&LexError{Line: l.line, Msg: fmt.Sprintf(format, args...)})
}
