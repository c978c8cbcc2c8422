/*
File    : minipar/internal/ast/print_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/types"
)

func TestDump_RendersNodeKindTypeAndToken(t *testing.T) {
	tok := lexer.Token{Type: lexer.NUMBER, Literal: "7", Line: 3}
	module := NewModule(tok, []Node{NewConstant(tok, types.NUMBER, float64(7))})

	out := Dump(module)
	assert.Contains(t, out, "Module")
	assert.Contains(t, out, "Constant")
	assert.Contains(t, out, "value=7")
	assert.Contains(t, out, "type=number")
}

func TestDump_NestsChildrenWithIncreasedIndent(t *testing.T) {
	tok := lexer.Token{Type: lexer.IF, Literal: "if", Line: 1}
	condTok := lexer.Token{Type: lexer.TRUE, Literal: "true", Line: 1}
	cond := NewConstant(condTok, types.BOOL, true)
	ifNode := NewIf(tok, cond, []Node{NewBreak(tok)}, nil)
	module := NewModule(tok, []Node{ifNode})

	out := Dump(module)
	assert.Contains(t, out, "\n  If type=void")
	assert.Contains(t, out, "\n    Break type=void")
}
