/*
File    : minipar/internal/ast/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Visitor double-dispatches over every concrete Node kind. Grounded on
// the teacher's PrintingVisitor, generalized to Minipar's node set.
type Visitor interface {
	VisitModule(*Module)
	VisitConstant(*Constant)
	VisitID(*ID)
	VisitArithmetic(*Arithmetic)
	VisitRelational(*Relational)
	VisitLogical(*Logical)
	VisitUnary(*Unary)
	VisitCall(*Call)
	VisitDecl(*Decl)
	VisitAssign(*Assign)
	VisitIf(*If)
	VisitWhile(*While)
	VisitBreak(*Break)
	VisitContinue(*Continue)
	VisitReturn(*Return)
	VisitFuncDef(*FuncDef)
	VisitPar(*Par)
	VisitSeq(*Seq)
	VisitChannelDecl(*ChannelDecl)
}

// PrintingVisitor renders an indented, per-node-kind tree dump
// including node kind, resolved type, originating token, and child
// fields in declared order, per spec.md §6.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *PrintingVisitor) line(kind string, n Node, extra string) {
	p.indent()
	fmt.Fprintf(&p.Buf, "%s type=%s token=%s", kind, n.Type(), n.Token())
	if extra != "" {
		fmt.Fprintf(&p.Buf, " %s", extra)
	}
	p.Buf.WriteString("\n")
}

func (p *PrintingVisitor) children(stmts []Node) {
	p.Indent += indentSize
	for _, s := range stmts {
		s.Accept(p)
	}
	p.Indent -= indentSize
}

func (p *PrintingVisitor) String() string { return p.Buf.String() }

func (p *PrintingVisitor) VisitModule(n *Module) {
	p.line("Module", n, "")
	p.children(n.Statements)
}

func (p *PrintingVisitor) VisitConstant(n *Constant) {
	p.line("Constant", n, fmt.Sprintf("value=%v", n.Value))
}

func (p *PrintingVisitor) VisitID(n *ID) {
	p.line("ID", n, fmt.Sprintf("name=%s decl=%t", n.Name, n.Decl))
}

func (p *PrintingVisitor) VisitArithmetic(n *Arithmetic) {
	p.line("Arithmetic", n, fmt.Sprintf("op=%s", n.Op))
	p.children([]Node{n.Left, n.Right})
}

func (p *PrintingVisitor) VisitRelational(n *Relational) {
	p.line("Relational", n, fmt.Sprintf("op=%s", n.Op))
	p.children([]Node{n.Left, n.Right})
}

func (p *PrintingVisitor) VisitLogical(n *Logical) {
	p.line("Logical", n, fmt.Sprintf("op=%s", n.Op))
	p.children([]Node{n.Left, n.Right})
}

func (p *PrintingVisitor) VisitUnary(n *Unary) {
	p.line("Unary", n, fmt.Sprintf("op=%s", n.Op))
	p.children([]Node{n.Operand})
}

func (p *PrintingVisitor) VisitCall(n *Call) {
	p.line("Call", n, fmt.Sprintf("callee=%s oper=%s", n.Callee, n.Oper))
	p.children(n.Args)
}

func (p *PrintingVisitor) VisitDecl(n *Decl) {
	p.line("Decl", n, fmt.Sprintf("name=%s", n.Name))
	if n.Init != nil {
		p.children([]Node{n.Init})
	}
}

func (p *PrintingVisitor) VisitAssign(n *Assign) {
	p.line("Assign", n, fmt.Sprintf("name=%s", n.Name))
	p.children([]Node{n.Value})
}

func (p *PrintingVisitor) VisitIf(n *If) {
	p.line("If", n, "")
	p.children([]Node{n.Cond})
	p.children(n.Then)
	if n.Else != nil {
		p.children(n.Else)
	}
}

func (p *PrintingVisitor) VisitWhile(n *While) {
	p.line("While", n, "")
	p.children([]Node{n.Cond})
	p.children(n.Body)
}

func (p *PrintingVisitor) VisitBreak(n *Break) { p.line("Break", n, "") }

func (p *PrintingVisitor) VisitContinue(n *Continue) { p.line("Continue", n, "") }

func (p *PrintingVisitor) VisitReturn(n *Return) {
	p.line("Return", n, "")
	if n.Value != nil {
		p.children([]Node{n.Value})
	}
}

func (p *PrintingVisitor) VisitFuncDef(n *FuncDef) {
	p.line("FuncDef", n, fmt.Sprintf("name=%s return=%s params=%d", n.Name, n.Return, len(n.Params)))
	p.children(n.Body)
}

func (p *PrintingVisitor) VisitPar(n *Par) {
	p.line("Par", n, "")
	p.children(n.Statements)
}

func (p *PrintingVisitor) VisitSeq(n *Seq) {
	p.line("Seq", n, "")
	p.children(n.Statements)
}

func (p *PrintingVisitor) VisitChannelDecl(n *ChannelDecl) {
	p.line("ChannelDecl", n, fmt.Sprintf("name=%s kind=%s", n.Name, n.Kind))
	p.children([]Node{n.Host, n.Port})
}

// Dump renders module's full AST using a fresh PrintingVisitor.
func Dump(module *Module) string {
	v := &PrintingVisitor{}
	module.Accept(v)
	return v.String()
}
