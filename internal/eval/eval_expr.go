/*
File    : minipar/internal/eval/eval_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/builtins"
	"github.com/minipar-lang/minipar/internal/closure"
	"github.com/minipar-lang/minipar/internal/environment"
	"github.com/minipar-lang/minipar/internal/lexer"
	"github.com/minipar-lang/minipar/internal/value"
)

func (e *Evaluator) evalExpr(n ast.Node, env *environment.Environment) value.Value {
	switch node := n.(type) {
	case *ast.Constant:
		return e.evalConstant(node)
	case *ast.ID:
		v, ok := env.Lookup(node.Name)
		if !ok {
			invariantBreach(node.Token().Line, "identifier '%s' resolved at parse time but not bound at runtime", node.Name)
		}
		return v
	case *ast.Arithmetic:
		return e.evalArithmetic(node, env)
	case *ast.Relational:
		return e.evalRelational(node, env)
	case *ast.Logical:
		return e.evalLogical(node, env)
	case *ast.Unary:
		return e.evalUnary(node, env)
	case *ast.Call:
		return e.evalCall(node, env)
	default:
		invariantBreach(n.Token().Line, "unhandled expression node %T", n)
		return nil
	}
}

func (e *Evaluator) evalConstant(n *ast.Constant) value.Value {
	switch v := n.Value.(type) {
	case float64:
		return value.NewNumber(v)
	case string:
		return value.NewStr(v)
	case bool:
		return value.NewBool(v)
	default:
		invariantBreach(n.Token().Line, "constant with unexpected Go type %T", v)
		return nil
	}
}

func (e *Evaluator) evalArithmetic(n *ast.Arithmetic, env *environment.Environment) value.Value {
	l := e.evalExpr(n.Left, env)
	r := e.evalExpr(n.Right, env)

	if ls, ok := l.(*value.Str); ok && n.Op == lexer.PLUS {
		rs := r.(*value.Str)
		return value.NewStr(ls.Val + rs.Val)
	}

	lv := l.(*value.Number).Val
	rv := r.(*value.Number).Val
	switch n.Op {
	case lexer.PLUS:
		return value.NewNumber(lv + rv)
	case lexer.MINUS:
		return value.NewNumber(lv - rv)
	case lexer.STAR:
		return value.NewNumber(lv * rv)
	case lexer.SLASH:
		if rv == 0 {
			fail(n.Token().Line, "division by zero")
		}
		return value.NewNumber(lv / rv)
	case lexer.PERCENT:
		if rv == 0 {
			fail(n.Token().Line, "division by zero")
		}
		return value.NewNumber(floatMod(lv, rv))
	default:
		invariantBreach(n.Token().Line, "unhandled arithmetic operator %s", n.Op)
		return nil
	}
}

func floatMod(a, b float64) float64 {
	m := a - b*float64(int64(a/b))
	return m
}

func (e *Evaluator) evalRelational(n *ast.Relational, env *environment.Environment) value.Value {
	l := e.evalExpr(n.Left, env)
	r := e.evalExpr(n.Right, env)

	if ls, ok := l.(*value.Str); ok {
		rs := r.(*value.Str)
		return value.NewBool(compareStrings(n.Op, ls.Val, rs.Val))
	}
	lv := l.(*value.Number).Val
	rv := r.(*value.Number).Val
	return value.NewBool(compareNumbers(n.Op, lv, rv))
}

func compareStrings(op lexer.TokenType, a, b string) bool {
	switch op {
	case lexer.EQ:
		return a == b
	case lexer.NE:
		return a != b
	case lexer.LT:
		return a < b
	case lexer.LE:
		return a <= b
	case lexer.GT:
		return a > b
	case lexer.GE:
		return a >= b
	}
	return false
}

func compareNumbers(op lexer.TokenType, a, b float64) bool {
	switch op {
	case lexer.EQ:
		return a == b
	case lexer.NE:
		return a != b
	case lexer.LT:
		return a < b
	case lexer.LE:
		return a <= b
	case lexer.GT:
		return a > b
	case lexer.GE:
		return a >= b
	}
	return false
}

// evalLogical implements short-circuit evaluation: the right operand
// is never touched when the left side already determines the result,
// per spec.md §8's Short-circuit property.
func (e *Evaluator) evalLogical(n *ast.Logical, env *environment.Environment) value.Value {
	l := e.evalExpr(n.Left, env).(*value.Bool)
	if n.Op == lexer.OR && l.Val {
		return value.NewBool(true)
	}
	if n.Op == lexer.AND && !l.Val {
		return value.NewBool(false)
	}
	r := e.evalExpr(n.Right, env).(*value.Bool)
	return value.NewBool(r.Val)
}

func (e *Evaluator) evalUnary(n *ast.Unary, env *environment.Environment) value.Value {
	operand := e.evalExpr(n.Operand, env)
	if n.Op == lexer.MINUS {
		return value.NewNumber(-operand.(*value.Number).Val)
	}
	return value.NewBool(!operand.(*value.Bool).Val)
}

// evalCall dispatches in priority order: channel operations, builtins,
// then user-defined closures, matching the resolution the parser
// already performed statically.
func (e *Evaluator) evalCall(n *ast.Call, env *environment.Environment) value.Value {
	if n.Oper != "" {
		return e.evalChannelOp(n, env)
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = e.evalExpr(a, env)
	}

	if v, err, ok := builtins.Invoke(e.Writer, n.Callee, args...); ok {
		if err != nil {
			fail(n.Token().Line, "%s", err)
		}
		return v
	}

	fv, ok := env.Lookup(n.Callee)
	if !ok {
		invariantBreach(n.Token().Line, "call to '%s' resolved at parse time but not bound at runtime", n.Callee)
	}
	fn, ok := fv.(*closure.Function)
	if !ok {
		invariantBreach(n.Token().Line, "'%s' is not callable at runtime", n.Callee)
	}
	return e.callFunction(fn, args, n.Token().Line)
}
