/*
File    : minipar/internal/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines Minipar's abstract syntax tree. Every node
// carries its originating Token and a resolved static Type populated
// by the parser at construction time.
package ast

import (
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/types"
)

// Node is the common interface every AST node satisfies. Accept drives
// the double-dispatch used by the AST dump printer.
type Node interface {
	Token() lexer.Token
	Type() types.Type
	Accept(v Visitor)
}

type base struct {
	Tok lexer.Token
	Typ types.Type
}

func (b base) Token() lexer.Token { return b.Tok }
func (b base) Type() types.Type   { return b.Typ }

// Module is the root node: the ordered list of top-level statements.
type Module struct {
	base
	Statements []Node
}

func NewModule(tok lexer.Token, stmts []Node) *Module {
	return &Module{base{tok, types.VOID}, stmts}
}
func (n *Module) Accept(v Visitor) { v.VisitModule(n) }

// --- Expressions ---

// Constant is a literal number, string, or bool.
type Constant struct {
	base
	Value interface{} // float64 | string | bool
}

func NewConstant(tok lexer.Token, typ types.Type, value interface{}) *Constant {
	return &Constant{base{tok, typ}, value}
}
func (n *Constant) Accept(v Visitor) { v.VisitConstant(n) }

// ID is an identifier reference. Decl marks the defining occurrence
// (as in a Decl statement's target) rather than a use.
type ID struct {
	base
	Name string
	Decl bool
}

func NewID(tok lexer.Token, typ types.Type, name string, decl bool) *ID {
	return &ID{base{tok, typ}, name, decl}
}
func (n *ID) Accept(v Visitor) { v.VisitID(n) }

// Arithmetic is a binary +,-,*,/,% expression.
type Arithmetic struct {
	base
	Op          lexer.TokenType
	Left, Right Node
}

func NewArithmetic(tok lexer.Token, typ types.Type, op lexer.TokenType, l, r Node) *Arithmetic {
	return &Arithmetic{base{tok, typ}, op, l, r}
}
func (n *Arithmetic) Accept(v Visitor) { v.VisitArithmetic(n) }

// Relational is a binary <,<=,>,>=,==,!= expression.
type Relational struct {
	base
	Op          lexer.TokenType
	Left, Right Node
}

func NewRelational(tok lexer.Token, op lexer.TokenType, l, r Node) *Relational {
	return &Relational{base{tok, types.BOOL}, op, l, r}
}
func (n *Relational) Accept(v Visitor) { v.VisitRelational(n) }

// Logical is a binary &&,|| expression with short-circuit semantics.
type Logical struct {
	base
	Op          lexer.TokenType
	Left, Right Node
}

func NewLogical(tok lexer.Token, op lexer.TokenType, l, r Node) *Logical {
	return &Logical{base{tok, types.BOOL}, op, l, r}
}
func (n *Logical) Accept(v Visitor) { v.VisitLogical(n) }

// Unary is a prefix -,! expression.
type Unary struct {
	base
	Op      lexer.TokenType
	Operand Node
}

func NewUnary(tok lexer.Token, typ types.Type, op lexer.TokenType, operand Node) *Unary {
	return &Unary{base{tok, typ}, op, operand}
}
func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }

// Call invokes a named function, builtin, or channel method. Oper is
// non-empty only for channel operations (e.g. "accept", "send").
type Call struct {
	base
	Callee string
	Args   []Node
	Oper   string
}

func NewCall(tok lexer.Token, typ types.Type, callee string, args []Node, oper string) *Call {
	return &Call{base{tok, typ}, callee, args, oper}
}
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }

// --- Statements ---

// Decl declares a new binding with a static type and optional
// initializer.
type Decl struct {
	base
	Name string
	Init Node // nil if absent
}

func NewDecl(tok lexer.Token, typ types.Type, name string, init Node) *Decl {
	return &Decl{base{tok, typ}, name, init}
}
func (n *Decl) Accept(v Visitor) { v.VisitDecl(n) }

// Assign rebinds an existing name.
type Assign struct {
	base
	Name  string
	Value Node
}

func NewAssign(tok lexer.Token, typ types.Type, name string, value Node) *Assign {
	return &Assign{base{tok, typ}, name, value}
}
func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }

// If is a conditional with an optional else branch.
type If struct {
	base
	Cond       Node
	Then       []Node
	Else       []Node // nil if absent
}

func NewIf(tok lexer.Token, cond Node, then, els []Node) *If {
	return &If{base{tok, types.VOID}, cond, then, els}
}
func (n *If) Accept(v Visitor) { v.VisitIf(n) }

// While is a condition-guarded loop.
type While struct {
	base
	Cond Node
	Body []Node
}

func NewWhile(tok lexer.Token, cond Node, body []Node) *While {
	return &While{base{tok, types.VOID}, cond, body}
}
func (n *While) Accept(v Visitor) { v.VisitWhile(n) }

// Break exits the nearest enclosing while loop.
type Break struct{ base }

func NewBreak(tok lexer.Token) *Break { return &Break{base{tok, types.VOID}} }
func (n *Break) Accept(v Visitor)     { v.VisitBreak(n) }

// Continue restarts the nearest enclosing while loop's condition.
type Continue struct{ base }

func NewContinue(tok lexer.Token) *Continue { return &Continue{base{tok, types.VOID}} }
func (n *Continue) Accept(v Visitor)        { v.VisitContinue(n) }

// Return optionally carries a value back out of a function call.
type Return struct {
	base
	Value Node // nil if bare `return`
}

func NewReturn(tok lexer.Token, typ types.Type, value Node) *Return {
	return &Return{base{tok, typ}, value}
}
func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }

// Param is one FuncDef parameter: name, declared type, and optional
// default-value expression.
type Param struct {
	Name    string
	Type    types.Type
	Default Node // nil if absent
}

// FuncDef declares a function and binds it as a closure in the
// defining scope.
type FuncDef struct {
	base
	Name   string
	Params []Param
	Return types.Type
	Body   []Node
}

func NewFuncDef(tok lexer.Token, name string, params []Param, ret types.Type, body []Node) *FuncDef {
	return &FuncDef{base{tok, types.FUNC}, name, params, ret, body}
}
func (n *FuncDef) Accept(v Visitor) { v.VisitFuncDef(n) }

// Par runs each direct child statement concurrently, joined by a
// barrier at the end of the block.
type Par struct {
	base
	Statements []Node
}

func NewPar(tok lexer.Token, stmts []Node) *Par {
	return &Par{base{tok, types.VOID}, stmts}
}
func (n *Par) Accept(v Visitor) { v.VisitPar(n) }

// Seq runs its children in source order within the current task.
type Seq struct {
	base
	Statements []Node
}

func NewSeq(tok lexer.Token, stmts []Node) *Seq {
	return &Seq{base{tok, types.VOID}, stmts}
}
func (n *Seq) Accept(v Visitor) { v.VisitSeq(n) }

// ChannelDecl declares either a server ("s_channel") or client
// ("c_channel") bound channel.
type ChannelDecl struct {
	base
	Name string
	Kind types.Type // types.S_CHANNEL or types.C_CHANNEL
	Host Node
	Port Node
}

func NewChannelDecl(tok lexer.Token, name string, kind types.Type, host, port Node) *ChannelDecl {
	return &ChannelDecl{base{tok, kind}, name, kind, host, port}
}
func (n *ChannelDecl) Accept(v Visitor) { v.VisitChannelDecl(n) }
