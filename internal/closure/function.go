/*
File    : minipar/internal/closure/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package closure holds the Function value: a user-defined function
// bundled with the environment frame it was defined in. It lives in
// its own package (rather than value or ast) for the same reason the
// teacher's function package sits apart from objects and scope: the
// type depends on both ast and environment, and neither of those
// should need to depend back on it.
package closure

import (
	"fmt"
	"strings"

	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/environment"
	"github.com/minipar-lang/minipar/internal/types"
)

// Function is a closure: the defining FuncDef node plus a direct
// pointer to the environment frame active at definition time. The
// pointer is captured, never copied — spec.md §4.3 requires that
// mutations to outer variables after capture remain visible inside the
// closure, which a snapshot copy would break.
type Function struct {
	Def *ast.FuncDef
	Env *environment.Environment
}

func (f *Function) Type() types.Type { return types.FUNC }

func (f *Function) String() string {
	names := make([]string, len(f.Def.Params))
	for i, p := range f.Def.Params {
		names[i] = p.Name
	}
	return fmt.Sprintf("func %s(%s) -> %s", f.Def.Name, strings.Join(names, ", "), f.Def.Return)
}

// Signature derives the FUNC type's parameter/return shape for
// arity/type checking at call sites.
func (f *Function) Signature() types.Signature {
	params := make([]types.Type, len(f.Def.Params))
	minArity := len(f.Def.Params)
	for i, p := range f.Def.Params {
		params[i] = p.Type
		if p.Default != nil && minArity == len(f.Def.Params) {
			minArity = i
		}
	}
	return types.Signature{Params: params, MinArity: minArity, Return: f.Def.Return}
}
