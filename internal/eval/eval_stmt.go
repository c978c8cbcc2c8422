/*
File    : minipar/internal/eval/eval_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/closure"
	"github.com/minipar-lang/minipar/internal/environment"
	"github.com/minipar-lang/minipar/internal/types"
	"github.com/minipar-lang/minipar/internal/value"
)

func (e *Evaluator) evalStmt(n ast.Node, env *environment.Environment) {
	switch node := n.(type) {
	case *ast.Decl:
		e.evalDecl(node, env)
	case *ast.Assign:
		v := e.evalExpr(node.Value, env)
		if !env.Assign(node.Name, v) {
			invariantBreach(node.Token().Line, "assignment target '%s' resolved at parse time but not bound at runtime", node.Name)
		}
	case *ast.If:
		e.evalIf(node, env)
	case *ast.While:
		e.evalWhile(node, env)
	case *ast.Break:
		panic(breakSignal{})
	case *ast.Continue:
		panic(continueSignal{})
	case *ast.Return:
		var v value.Value = value.VoidValue
		if node.Value != nil {
			v = e.evalExpr(node.Value, env)
		}
		panic(returnSignal{Value: v})
	case *ast.FuncDef:
		fn := &closure.Function{Def: node, Env: env}
		env.Bind(node.Name, fn)
	case *ast.Par:
		e.evalPar(node, env)
	case *ast.Seq:
		e.evalSeq(node, env)
	case *ast.ChannelDecl:
		e.evalChannelDecl(node, env)
	case *ast.Call:
		e.evalCall(node, env)
	default:
		invariantBreach(n.Token().Line, "unhandled statement node %T", n)
	}
}

func (e *Evaluator) evalDecl(n *ast.Decl, env *environment.Environment) {
	var v value.Value = zeroValue(n.Type())
	if n.Init != nil {
		v = e.evalExpr(n.Init, env)
	}
	env.Bind(n.Name, v)
}

func zeroValue(t types.Type) value.Value {
	switch t {
	case types.NUMBER:
		return value.NewNumber(0)
	case types.STRING:
		return value.NewStr("")
	case types.BOOL:
		return value.NewBool(false)
	default:
		return value.VoidValue
	}
}

func (e *Evaluator) evalIf(n *ast.If, env *environment.Environment) {
	cond := e.evalExpr(n.Cond, env).(*value.Bool)
	if cond.Val {
		e.evalBlock(n.Then, environment.New(env))
	} else if n.Else != nil {
		e.evalBlock(n.Else, environment.New(env))
	}
}

func (e *Evaluator) evalBlock(stmts []ast.Node, env *environment.Environment) {
	for _, s := range stmts {
		e.evalStmt(s, env)
	}
}

// evalWhile repeats body in a fresh nested frame per spec.md §4.3.
// break/continue are recovered here as the nearest legal handler.
func (e *Evaluator) evalWhile(n *ast.While, env *environment.Environment) {
	for {
		cond := e.evalExpr(n.Cond, env).(*value.Bool)
		if !cond.Val {
			return
		}
		if e.runLoopBody(n.Body, environment.New(env)) {
			return
		}
	}
}

// runLoopBody executes body, absorbing a breakSignal (returns true to
// stop the loop) or a continueSignal (returns false to restart at the
// condition); any other panic propagates unchanged.
func (e *Evaluator) runLoopBody(body []ast.Node, env *environment.Environment) (stop bool) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				stop = true
			case continueSignal:
				stop = false
			default:
				panic(r)
			}
		}
	}()
	e.evalBlock(body, env)
	return false
}

// evalSeq runs children in source order in a fresh frame, mirroring
// the scope parseBlock opens for every `seq { ... }` body: two sibling
// `seq` blocks that each declare a same-named local must not alias the
// same runtime slot, per spec.md §3 invariant 6.
func (e *Evaluator) evalSeq(n *ast.Seq, env *environment.Environment) {
	e.evalBlock(n.Statements, environment.New(env))
}
