/*
File    : minipar/internal/parser/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/types"
)

// builtinSignatures gives the parser static knowledge of the small
// fixed builtin surface (spec.md §4.6), since it must type-check calls
// to them the same way it type-checks calls to user functions.
// print/output are variadic and accept any of the three printable
// types, so they are special-cased in parseCall rather than listed
// here.
// builtins take no default parameters, so MinArity always equals the
// full parameter count.
var builtinSignatures = map[string]types.Signature{
	"to_number": {Params: []types.Type{types.STRING}, MinArity: 1, Return: types.NUMBER},
	"to_string": {Params: []types.Type{types.NUMBER}, MinArity: 1, Return: types.STRING},
	"to_bool":   {Params: []types.Type{types.STRING}, MinArity: 1, Return: types.BOOL},
	"length":    {Params: []types.Type{types.STRING}, MinArity: 1, Return: types.NUMBER},
	"exp":       {Params: []types.Type{types.NUMBER}, MinArity: 1, Return: types.NUMBER},
	"sqrt":      {Params: []types.Type{types.NUMBER}, MinArity: 1, Return: types.NUMBER},
	"abs":       {Params: []types.Type{types.NUMBER}, MinArity: 1, Return: types.NUMBER},
	"floor":     {Params: []types.Type{types.NUMBER}, MinArity: 1, Return: types.NUMBER},
	"ceil":      {Params: []types.Type{types.NUMBER}, MinArity: 1, Return: types.NUMBER},
	"pow":       {Params: []types.Type{types.NUMBER, types.NUMBER}, MinArity: 2, Return: types.NUMBER},
}

// channelOps names the channel-runtime methods that surface as Call
// nodes with a non-empty Oper field, per spec.md §4.5.
var channelOps = map[string]bool{
	"accept": true, "send": true, "recv": true, "close": true,
}

func (p *Parser) parseExpr() ast.Node { return p.parseOr() }

func (p *Parser) parseOr() ast.Node {
	left := p.parseAnd()
	for p.check(lexer.OR) {
		tok := p.advance()
		right := p.parseAnd()
		p.requireBool(left, right, "||")
		left = ast.NewLogical(tok, lexer.OR, left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Node {
	left := p.parseEquality()
	for p.check(lexer.AND) {
		tok := p.advance()
		right := p.parseEquality()
		p.requireBool(left, right, "&&")
		left = ast.NewLogical(tok, lexer.AND, left, right)
	}
	return left
}

func (p *Parser) requireBool(l, r ast.Node, op string) {
	if l.Type() != types.BOOL || r.Type() != types.BOOL {
		p.fail("operands of %s must be bool, got %s and %s", op, l.Type(), r.Type())
	}
}

func (p *Parser) parseEquality() ast.Node {
	left := p.parseRel()
	for p.check(lexer.EQ) || p.check(lexer.NE) {
		tok := p.advance()
		right := p.parseRel()
		if left.Type() != right.Type() {
			p.fail("operands of %s must match, got %s and %s", tok.Type, left.Type(), right.Type())
		}
		left = ast.NewRelational(tok, tok.Type, left, right)
	}
	return left
}

func (p *Parser) parseRel() ast.Node {
	left := p.parseAdd()
	for p.check(lexer.LT) || p.check(lexer.LE) || p.check(lexer.GT) || p.check(lexer.GE) {
		tok := p.advance()
		right := p.parseAdd()
		if left.Type() != right.Type() || (left.Type() != types.NUMBER && left.Type() != types.STRING) {
			p.fail("operands of %s must both be number or both string, got %s and %s", tok.Type, left.Type(), right.Type())
		}
		left = ast.NewRelational(tok, tok.Type, left, right)
	}
	return left
}

func (p *Parser) parseAdd() ast.Node {
	left := p.parseMul()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		tok := p.advance()
		right := p.parseMul()
		var resultType types.Type
		switch {
		case tok.Type == lexer.PLUS && left.Type() == types.STRING && right.Type() == types.STRING:
			resultType = types.STRING
		case left.Type() == types.NUMBER && right.Type() == types.NUMBER:
			resultType = types.NUMBER
		default:
			p.fail("operands of %s must be number (or string for +), got %s and %s", tok.Type, left.Type(), right.Type())
		}
		left = ast.NewArithmetic(tok, resultType, tok.Type, left, right)
	}
	return left
}

func (p *Parser) parseMul() ast.Node {
	left := p.parseUnary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.PERCENT) {
		tok := p.advance()
		right := p.parseUnary()
		if left.Type() != types.NUMBER || right.Type() != types.NUMBER {
			p.fail("operands of %s must be number, got %s and %s", tok.Type, left.Type(), right.Type())
		}
		left = ast.NewArithmetic(tok, types.NUMBER, tok.Type, left, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.Node {
	if p.check(lexer.MINUS) || p.check(lexer.NOT) {
		tok := p.advance()
		operand := p.parseUnary()
		if tok.Type == lexer.MINUS {
			if operand.Type() != types.NUMBER {
				p.fail("unary - requires number, got %s", operand.Type())
			}
			return ast.NewUnary(tok, types.NUMBER, tok.Type, operand)
		}
		if operand.Type() != types.BOOL {
			p.fail("unary ! requires bool, got %s", operand.Type())
		}
		return ast.NewUnary(tok, types.BOOL, tok.Type, operand)
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Node {
	tok := p.current()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail("malformed number literal %q", tok.Literal)
		}
		return ast.NewConstant(tok, types.NUMBER, v)
	case lexer.STRING:
		p.advance()
		return ast.NewConstant(tok, types.STRING, tok.Literal)
	case lexer.TRUE:
		p.advance()
		return ast.NewConstant(tok, types.BOOL, true)
	case lexer.FALSE:
		p.advance()
		return ast.NewConstant(tok, types.BOOL, false)
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(lexer.RPAREN)
		return inner
	case lexer.IDENT:
		if p.peekAt(1).Type == lexer.LPAREN {
			return p.parseCall()
		}
		return p.parseIDRef()
	default:
		p.fail("unexpected token %s (%q) in expression", tok.Type, tok.Literal)
		return nil
	}
}

func (p *Parser) parseIDRef() ast.Node {
	tok := p.current()
	name := p.expect(lexer.IDENT).Literal
	sym, ok := p.table.Lookup(name)
	if !ok {
		p.fail("use of undeclared identifier '%s'", name)
	}
	return ast.NewID(tok, sym.Type, name, false)
}

func (p *Parser) parseCall() ast.Node {
	tok := p.current()
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.LPAREN)
	var args []ast.Node
	if !p.check(lexer.RPAREN) {
		args = append(args, p.parseExpr())
		for p.match(lexer.COMMA) {
			args = append(args, p.parseExpr())
		}
	}
	p.expect(lexer.RPAREN)

	if channelOps[name] && len(args) >= 1 &&
		(args[0].Type() == types.C_CHANNEL || args[0].Type() == types.S_CHANNEL) {
		return p.typeChannelCall(tok, name, args)
	}

	if name == "print" || name == "output" {
		for _, a := range args {
			if a.Type() == types.VOID || a.Type() == types.FUNC {
				p.fail("%s cannot print a value of type %s", name, a.Type())
			}
		}
		return ast.NewCall(tok, types.VOID, name, args, "")
	}

	if sig, ok := builtinSignatures[name]; ok {
		p.checkArgs(name, sig, args)
		return ast.NewCall(tok, sig.Return, name, args, "")
	}

	sym, ok := p.table.Lookup(name)
	if !ok {
		p.fail("call to undeclared function '%s'", name)
	}
	if sym.Type != types.FUNC || sym.Sig == nil {
		p.fail("'%s' is not callable", name)
	}
	p.checkArgs(name, *sym.Sig, args)
	return ast.NewCall(tok, sym.Sig.Return, name, args, "")
}

// checkArgs enforces sig's arity (allowing a call to omit any trailing
// suffix of parameters at or beyond sig.MinArity — those fall back to
// their declared default at call time, per spec.md §3) and per-argument
// types for whatever was actually supplied.
func (p *Parser) checkArgs(name string, sig types.Signature, args []ast.Node) {
	if len(args) < sig.MinArity || len(args) > len(sig.Params) {
		if sig.MinArity == len(sig.Params) {
			p.fail("'%s' expects %d argument(s), got %d", name, len(sig.Params), len(args))
		} else {
			p.fail("'%s' expects between %d and %d argument(s), got %d", name, sig.MinArity, len(sig.Params), len(args))
		}
	}
	for i, a := range args {
		if a.Type() != sig.Params[i] {
			p.fail("argument %d of '%s' must be %s, got %s", i+1, name, sig.Params[i], a.Type())
		}
	}
}

// typeChannelCall resolves the result type of accept/send/recv/close
// per spec.md §4.5.
func (p *Parser) typeChannelCall(tok lexer.Token, name string, args []ast.Node) ast.Node {
	var resultType types.Type
	switch name {
	case "accept":
		if args[0].Type() != types.S_CHANNEL {
			p.fail("accept() requires an s_channel, got %s", args[0].Type())
		}
		resultType = types.C_CHANNEL
	case "send":
		if len(args) != 2 || args[1].Type() != types.STRING {
			p.fail("send(channel, str) expects a string payload")
		}
		resultType = types.VOID
	case "recv":
		if len(args) != 1 {
			p.fail("recv(channel) takes exactly one argument")
		}
		resultType = types.STRING
	case "close":
		if len(args) != 1 {
			p.fail("close(channel) takes exactly one argument")
		}
		resultType = types.VOID
	}
	return ast.NewCall(tok, resultType, name, args, name)
}
