/*
File    : minipar/internal/parser/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/symtab"
	"github.com/minipar-lang/minipar/internal/types"
)

// parseStmt dispatches on the leading token to one of:
// Decl | Assign | If | While | FuncDef | Par | Seq | ChannelDecl |
// Return | Break | Continue | Call, per spec.md §4.2's grammar.
func (p *Parser) parseStmt() ast.Node {
	switch p.current().Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FUNC:
		return p.parseFuncDef()
	case lexer.PAR:
		return p.parsePar()
	case lexer.SEQ:
		return p.parseSeq()
	case lexer.C_CHANNEL, lexer.S_CHANNEL:
		return p.parseChannelDecl()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.IDENT:
		return p.parseIdentLed()
	default:
		p.fail("unexpected token %s (%q) at start of statement", p.current().Type, p.current().Literal)
		return nil
	}
}

// parseIdentLed disambiguates Decl ("ID : TYPE"), Assign ("ID = Expr"),
// and a bare Call statement, all of which start with an identifier.
func (p *Parser) parseIdentLed() ast.Node {
	if p.peekAt(1).Type == lexer.COLON {
		return p.parseDecl()
	}
	if p.peekAt(1).Type == lexer.ASSIGN {
		return p.parseAssign()
	}
	return p.parseExprStmt()
}

// parseDecl handles `ID ':' TYPE ('=' Expr)?`.
func (p *Parser) parseDecl() ast.Node {
	tok := p.current()
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.COLON)
	declType := p.parseType()

	var init ast.Node
	if p.match(lexer.ASSIGN) {
		init = p.parseExpr()
		if init.Type() != declType {
			p.fail("cannot initialize '%s' of type %s with value of type %s", name, declType, init.Type())
		}
	}

	if err := p.table.Define(&symtab.Symbol{Name: name, Type: declType}); err != nil {
		p.fail("%s", err)
	}
	return ast.NewDecl(tok, declType, name, init)
}

// parseAssign handles `ID '=' Expr`.
func (p *Parser) parseAssign() ast.Node {
	tok := p.current()
	name := p.expect(lexer.IDENT).Literal
	sym, ok := p.table.Lookup(name)
	if !ok {
		p.fail("assignment to undeclared identifier '%s'", name)
	}
	p.expect(lexer.ASSIGN)
	value := p.parseExpr()
	if value.Type() != sym.Type {
		p.fail("cannot assign value of type %s to '%s' of type %s", value.Type(), name, sym.Type)
	}
	return ast.NewAssign(tok, sym.Type, name, value)
}

// parseExprStmt handles a bare `Call ';'?` expression statement (the
// only expression form the grammar allows standalone).
func (p *Parser) parseExprStmt() ast.Node {
	expr := p.parseExpr()
	if _, ok := expr.(*ast.Call); !ok {
		p.fail("only calls are valid expression statements")
	}
	return expr
}

func (p *Parser) parseIf() ast.Node {
	tok := p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.parseExpr()
	if cond.Type() != types.BOOL {
		p.fail("if condition must be bool, got %s", cond.Type())
	}
	p.expect(lexer.RPAREN)
	then := p.parseBlock("if")
	var els []ast.Node
	if p.match(lexer.ELSE) {
		els = p.parseBlock("else")
	}
	return ast.NewIf(tok, cond, then, els)
}

func (p *Parser) parseWhile() ast.Node {
	tok := p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpr()
	if cond.Type() != types.BOOL {
		p.fail("while condition must be bool, got %s", cond.Type())
	}
	p.expect(lexer.RPAREN)
	p.loopDepth++
	body := p.parseBlock("while")
	p.loopDepth--
	return ast.NewWhile(tok, cond, body)
}

func (p *Parser) parseBreak() ast.Node {
	tok := p.expect(lexer.BREAK)
	if p.loopDepth == 0 {
		p.fail("break outside of a while loop")
	}
	return ast.NewBreak(tok)
}

func (p *Parser) parseContinue() ast.Node {
	tok := p.expect(lexer.CONTINUE)
	if p.loopDepth == 0 {
		p.fail("continue outside of a while loop")
	}
	return ast.NewContinue(tok)
}

func (p *Parser) parseReturn() ast.Node {
	tok := p.expect(lexer.RETURN)
	if len(p.funcReturns) == 0 {
		p.fail("return outside of a function body")
	}
	want := p.funcReturns[len(p.funcReturns)-1]

	atTerminator := p.check(lexer.SEMICOLON) || p.check(lexer.NEWLINE) || p.check(lexer.RBRACE)
	if atTerminator {
		if want != types.VOID {
			p.fail("function must return a value of type %s", want)
		}
		return ast.NewReturn(tok, types.VOID, nil)
	}
	value := p.parseExpr()
	if value.Type() != want {
		p.fail("return type mismatch: expected %s, got %s", want, value.Type())
	}
	return ast.NewReturn(tok, want, value)
}

func (p *Parser) parseFuncDef() ast.Node {
	tok := p.expect(lexer.FUNC)
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.LPAREN)

	var params []ast.Param
	if !p.check(lexer.RPAREN) {
		params = append(params, p.parseParam())
		for p.match(lexer.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.ARROW)
	retType := p.parseType()

	sig := &types.Signature{Return: retType, MinArity: len(params)}
	for i, prm := range params {
		sig.Params = append(sig.Params, prm.Type)
		if prm.Default != nil && sig.MinArity == len(params) {
			sig.MinArity = i
		}
		if prm.Default == nil && i >= sig.MinArity {
			p.fail("parameter '%s' without a default cannot follow a parameter with one", prm.Name)
		}
	}
	if err := p.table.Define(&symtab.Symbol{Name: name, Type: types.FUNC, Sig: sig}); err != nil {
		p.fail("%s", err)
	}

	p.table.EnterScope("func:" + name)
	for _, prm := range params {
		if err := p.table.Define(&symtab.Symbol{Name: prm.Name, Type: prm.Type}); err != nil {
			p.fail("%s", err)
		}
	}
	p.funcReturns = append(p.funcReturns, retType)
	savedLoopDepth := p.loopDepth
	p.loopDepth = 0

	p.expect(lexer.LBRACE)
	p.skipTerminators()
	var body []ast.Node
	for !p.check(lexer.RBRACE) {
		body = append(body, p.parseStmt())
		p.skipTerminators()
	}
	p.expect(lexer.RBRACE)

	p.loopDepth = savedLoopDepth
	p.funcReturns = p.funcReturns[:len(p.funcReturns)-1]
	p.table.ExitScope()

	return ast.NewFuncDef(tok, name, params, retType, body)
}

func (p *Parser) parseParam() ast.Param {
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.COLON)
	typ := p.parseType()
	var def ast.Node
	if p.match(lexer.ASSIGN) {
		def = p.parseExpr()
		if def.Type() != typ {
			p.fail("default value for parameter '%s' must be %s", name, typ)
		}
	}
	return ast.Param{Name: name, Type: typ, Default: def}
}

func (p *Parser) parsePar() ast.Node {
	tok := p.expect(lexer.PAR)
	stmts := p.parseBlock("par")
	return ast.NewPar(tok, stmts)
}

func (p *Parser) parseSeq() ast.Node {
	tok := p.expect(lexer.SEQ)
	stmts := p.parseBlock("seq")
	return ast.NewSeq(tok, stmts)
}

// parseChannelDecl handles `('c_channel'|'s_channel') ID '{' Expr ',' Expr '}'`.
func (p *Parser) parseChannelDecl() ast.Node {
	tok := p.current()
	var kind types.Type
	if p.match(lexer.C_CHANNEL) {
		kind = types.C_CHANNEL
	} else {
		p.expect(lexer.S_CHANNEL)
		kind = types.S_CHANNEL
	}
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.LBRACE)
	host := p.parseExpr()
	if host.Type() != types.STRING {
		p.fail("channel host must be a string")
	}
	p.expect(lexer.COMMA)
	port := p.parseExpr()
	if port.Type() != types.NUMBER {
		p.fail("channel port must be a number")
	}
	p.expect(lexer.RBRACE)

	if err := p.table.Define(&symtab.Symbol{Name: name, Type: kind}); err != nil {
		p.fail("%s", err)
	}
	return ast.NewChannelDecl(tok, name, kind, host, port)
}
