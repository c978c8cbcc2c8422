// Package types defines Minipar's closed static type system.
package types

import "strings"

// Type is the closed set of static types a Minipar value can carry.
type Type string

const (
	NUMBER    Type = "number"
	STRING    Type = "string"
	BOOL      Type = "bool"
	VOID      Type = "void"
	FUNC      Type = "func"
	C_CHANNEL Type = "c_channel"
	S_CHANNEL Type = "s_channel"
	UNKNOWN   Type = "unknown"
)

// FromKeyword maps a lexed type keyword literal to its Type. The
// channel keywords double as both declaration forms and types.
func FromKeyword(lit string) (Type, bool) {
	switch lit {
	case "number":
		return NUMBER, true
	case "string":
		return STRING, true
	case "bool":
		return BOOL, true
	case "void":
		return VOID, true
	case "c_channel":
		return C_CHANNEL, true
	case "s_channel":
		return S_CHANNEL, true
	}
	return UNKNOWN, false
}

// Signature describes a FUNC type's parameter types (in order) and
// return type. MinArity is the number of leading parameters that have
// no default value; a call may omit any trailing suffix of parameters
// at or beyond that index, per spec.md §3's `[name,type,default]`
// parameter shape. MinArity == len(Params) means every parameter is
// required.
type Signature struct {
	Params   []Type
	MinArity int
	Return   Type
}

// String renders a signature like "(number, string) -> bool".
func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = string(p)
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + string(s.Return)
}

// ZeroValueLiteral describes the default value used when a non-VOID
// function falls off its end without an explicit return, per spec.
func ZeroValueLiteral(t Type) interface{} {
	switch t {
	case NUMBER:
		return float64(0)
	case STRING:
		return ""
	case BOOL:
		return false
	default:
		return nil
	}
}
