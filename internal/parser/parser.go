/*
File    : minipar/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements Minipar's recursive-descent parser. It
// consumes a finite token slice and produces a type-checked AST,
// consulting an internal symtab.Table the way the teacher's parser
// consults its own Env/Consts/LetVars maps — but organized as a proper
// nested scope chain since Minipar has block-scoped shadowing the
// teacher's flat maps cannot express.
package parser

import (
	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/symtab"
	"github.com/minipar-lang/minipar/internal/types"
)

// Parser holds two-token lookahead over a pre-lexed token stream,
// mirroring the teacher's CurrToken/NextToken pair.
type Parser struct {
	tokens []lexer.Token
	pos    int
	table  *symtab.Table

	loopDepth   int          // >0 while parsing inside a `while` body; guards break/continue
	funcReturns []types.Type // stack of enclosing function return types, for Return checking
}

// New builds a parser over src: it lexes eagerly (spec.md's LexError
// must be able to halt before parsing even starts) and then walks the
// resulting token slice.
func New(src string) (*Parser, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: toks, table: symtab.NewTable()}, nil
}

func (p *Parser) current() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) peekAt(offset int) lexer.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(t lexer.TokenType) bool { return p.current().Type == t }

func (p *Parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has type t, otherwise raises
// a ParseError.
func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	if !p.check(t) {
		p.fail("expected %s but found %s (%q)", t, p.current().Type, p.current().Literal)
	}
	return p.advance()
}

// skipTerminators consumes zero or more ';'/NEWLINE tokens, implementing
// the resolved Open Question that both are legal statement terminators.
func (p *Parser) skipTerminators() {
	for p.check(lexer.SEMICOLON) || p.check(lexer.NEWLINE) {
		p.advance()
	}
}

// Parse runs the full grammar from Module downward and recovers a
// single *ParseError (if any) into the returned error, matching the
// teacher's own panic/recover boundary style while halting at the
// first error instead of collecting a list.
func Parse(src string) (module *ast.Module, err error) {
	p, lexErr := New(src)
	if lexErr != nil {
		return nil, lexErr
	}
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	module = p.parseModule()
	return module, nil
}

func (p *Parser) parseModule() *ast.Module {
	tok := p.current()
	p.skipTerminators()
	var stmts []ast.Node
	for !p.check(lexer.EOF) {
		stmts = append(stmts, p.parseStmt())
		p.skipTerminators()
	}
	return ast.NewModule(tok, stmts)
}

// parseType expects a type keyword token and resolves it to types.Type.
func (p *Parser) parseType() types.Type {
	tok := p.current()
	t, ok := types.FromKeyword(tok.Literal)
	if !ok {
		p.fail("expected a type name but found %q", tok.Literal)
	}
	p.advance()
	return t
}

// parseBlock parses '{' Stmt* '}' in a fresh nested scope.
func (p *Parser) parseBlock(scopeName string) []ast.Node {
	p.expect(lexer.LBRACE)
	p.table.EnterScope(scopeName)
	defer p.table.ExitScope()
	p.skipTerminators()
	var stmts []ast.Node
	for !p.check(lexer.RBRACE) {
		stmts = append(stmts, p.parseStmt())
		p.skipTerminators()
	}
	p.expect(lexer.RBRACE)
	return stmts
}
