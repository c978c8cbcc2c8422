/*
File    : minipar/internal/closure/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/environment"
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/types"
)

func TestFunction_CapturesEnvironmentByPointer(t *testing.T) {
	env := environment.New(nil)
	tok := lexer.Token{Type: lexer.FUNC, Literal: "func", Line: 1}
	def := ast.NewFuncDef(tok, "f", nil, types.VOID, nil)
	fn := &Function{Def: def, Env: env}

	env.Bind("captured", nil)
	_, ok := fn.Env.Lookup("captured")
	assert.True(t, ok, "the closure must observe bindings added to its captured frame after construction")
}

func TestFunction_Signature(t *testing.T) {
	tok := lexer.Token{Type: lexer.FUNC, Literal: "func", Line: 1}
	def := ast.NewFuncDef(tok, "add", []ast.Param{
		{Name: "a", Type: types.NUMBER},
		{Name: "b", Type: types.NUMBER},
	}, types.NUMBER, nil)
	fn := &Function{Def: def, Env: environment.New(nil)}

	sig := fn.Signature()
	assert.Equal(t, []types.Type{types.NUMBER, types.NUMBER}, sig.Params)
	assert.Equal(t, types.NUMBER, sig.Return)
	assert.Equal(t, types.FUNC, fn.Type())
}
