/*
File    : minipar/internal/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines Minipar's runtime value variants, grounded on
// the teacher's GoMixObject interface but narrowed to the closed, flat
// set spec.md §3 allows: no collections, no object graphs.
package value

import (
	"math"
	"strconv"

	"github.com/minipar-lang/minipar/internal/types"
)

// Value is any runtime Minipar value.
type Value interface {
	Type() types.Type
	String() string
}

// Number is a 64-bit float; spec.md has no separate integer type.
type Number struct{ Val float64 }

func (n *Number) Type() types.Type { return types.NUMBER }

// String renders an integral value without a trailing ".0", per the
// resolved Open Question in spec.md §9.
func (n *Number) String() string {
	if math.Trunc(n.Val) == n.Val && !math.IsInf(n.Val, 0) {
		return strconv.FormatFloat(n.Val, 'f', 0, 64)
	}
	return strconv.FormatFloat(n.Val, 'f', -1, 64)
}

// Str is an immutable text value.
type Str struct{ Val string }

func (s *Str) Type() types.Type { return types.STRING }
func (s *Str) String() string   { return s.Val }

// Bool is a boolean value.
type Bool struct{ Val bool }

func (b *Bool) Type() types.Type { return types.BOOL }
func (b *Bool) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Void is the unit value returned by statements and void functions.
type Void struct{}

func (Void) Type() types.Type { return types.VOID }
func (Void) String() string   { return "" }

// Singleton so call sites can compare by identity where convenient.
var VoidValue Value = Void{}

func NewNumber(v float64) *Number { return &Number{Val: v} }
func NewStr(v string) *Str       { return &Str{Val: v} }
func NewBool(v bool) *Bool       { return &Bool{Val: v} }
