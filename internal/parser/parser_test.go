/*
File    : minipar/internal/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/parser"
	"github.com/minipar-lang/minipar/internal/types"
)

func TestParse_DeclAndAssign(t *testing.T) {
	module, err := parser.Parse(`
x: number = 1
x = 2
`)
	require.NoError(t, err)
	require.Len(t, module.Statements, 2)

	decl, ok := module.Statements[0].(*ast.Decl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, types.NUMBER, decl.Type())

	assign, ok := module.Statements[1].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParse_SemicolonAndNewlineBothTerminate(t *testing.T) {
	_, err := parser.Parse("x: number = 1; y: number = 2\nz: number = 3")
	assert.NoError(t, err)
}

func TestParse_TypeMismatchInDeclIsParseError(t *testing.T) {
	_, err := parser.Parse(`x: number = "oops"`)
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParse_UndeclaredIdentifierIsParseError(t *testing.T) {
	_, err := parser.Parse(`y = 1`)
	require.Error(t, err)
}

func TestParse_BreakOutsideLoopIsParseError(t *testing.T) {
	_, err := parser.Parse(`break`)
	require.Error(t, err)
}

func TestParse_WhileWithBreakAndContinue(t *testing.T) {
	_, err := parser.Parse(`
i: number = 0
while (i < 10) {
  i = i + 1
  if (i == 5) { continue }
  if (i == 8) { break }
}
`)
	assert.NoError(t, err)
}

func TestParse_FuncDefSelfRecursion(t *testing.T) {
	module, err := parser.Parse(`
func fact(n: number) -> number {
  if (n <= 1) { return 1 }
  return n * fact(n - 1)
}
`)
	require.NoError(t, err)
	fn, ok := module.Statements[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "fact", fn.Name)
	assert.Equal(t, types.NUMBER, fn.Return)
}

func TestParse_ReturnTypeMismatchIsParseError(t *testing.T) {
	_, err := parser.Parse(`
func f() -> number {
  return "nope"
}
`)
	require.Error(t, err)
}

func TestParse_ParAndSeqBlocks(t *testing.T) {
	module, err := parser.Parse(`
par {
  x: number = 1
  y: number = 2
}
seq {
  z: number = 3
}
`)
	require.NoError(t, err)
	_, ok := module.Statements[0].(*ast.Par)
	assert.True(t, ok)
	_, ok = module.Statements[1].(*ast.Seq)
	assert.True(t, ok)
}

func TestParse_ChannelDeclTypesHostAndPort(t *testing.T) {
	module, err := parser.Parse(`s_channel srv { "127.0.0.1", 9000 }`)
	require.NoError(t, err)
	decl, ok := module.Statements[0].(*ast.ChannelDecl)
	require.True(t, ok)
	assert.Equal(t, types.S_CHANNEL, decl.Kind)
}

func TestParse_ChannelDeclWrongHostTypeIsParseError(t *testing.T) {
	_, err := parser.Parse(`s_channel srv { 1, 9000 }`)
	require.Error(t, err)
}

func TestParse_ShortCircuitOperandsMustBeBool(t *testing.T) {
	_, err := parser.Parse(`
a: number = 1
b: bool = (a == 1) && true
`)
	assert.NoError(t, err)

	_, err = parser.Parse(`
a: number = 1
b: bool = a && true
`)
	assert.Error(t, err)
}

func TestParse_StringConcatenationButNoOtherStringArith(t *testing.T) {
	_, err := parser.Parse(`s: string = "a" + "b"`)
	assert.NoError(t, err)

	_, err = parser.Parse(`s: string = "a" - "b"`)
	assert.Error(t, err)
}

func TestParse_LexErrorPropagatesAsIs(t *testing.T) {
	_, err := parser.Parse(`x: number = "unterminated`)
	require.Error(t, err)
}

func TestParse_CallOmittingTrailingDefaultArgs(t *testing.T) {
	_, err := parser.Parse(`
func greet(name: string, punctuation: string = "!") -> string {
  return name + punctuation
}
greet("hi")
greet("hi", "?")
`)
	assert.NoError(t, err)
}

func TestParse_RequiredParamAfterDefaultIsParseError(t *testing.T) {
	_, err := parser.Parse(`
func f(a: number = 1, b: number) -> number {
  return a + b
}
`)
	require.Error(t, err)
}

func TestParse_CallBelowMinArityIsParseError(t *testing.T) {
	_, err := parser.Parse(`
func greet(name: string, punctuation: string = "!") -> string {
  return name + punctuation
}
greet()
`)
	require.Error(t, err)
}
