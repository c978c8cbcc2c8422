/*
File    : minipar/internal/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: it walks the type-checked
// AST produced by internal/parser, maintaining a runtime Environment
// chain parallel to the compile-time symbol stack, exactly as
// spec.md §4.3 describes. Grounded on the teacher's eval.Evaluator
// (struct shape, CallFunction's lexical-scoping discipline) and
// eval_controls.go's non-local control-flow handling.
package eval

import (
	"io"
	"os"

	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/environment"
	"github.com/minipar-lang/minipar/internal/logging"
	"github.com/minipar-lang/minipar/internal/value"
)

// Evaluator holds the state needed to walk a Module: the root
// environment frame, the output writer builtins write to, and a
// verbose-mode logger.
type Evaluator struct {
	Global *environment.Environment
	Writer io.Writer
	Log    *logging.Logger
}

// New creates an Evaluator with a fresh global frame, stdout as the
// default writer, and a no-op logger. Mirrors the teacher's
// NewEvaluator defaulting Writer to os.Stdout.
func New() *Evaluator {
	return &Evaluator{
		Global: environment.New(nil),
		Writer: os.Stdout,
		Log:    logging.Noop(),
	}
}

// SetWriter redirects builtin output, e.g. to a buffer under test.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// Run evaluates every top-level statement of module in the global
// frame and recovers a single *RuntimeError (if any) into err.
func (e *Evaluator) Run(module *ast.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range module.Statements {
		e.evalStmt(stmt, e.Global)
	}
	return nil
}

// evalNode dispatches an expression-or-statement node to its
// evaluator, for a caller that doesn't already know which family a
// node belongs to.
func (e *Evaluator) evalNode(n ast.Node, env *environment.Environment) value.Value {
	switch n.(type) {
	case *ast.Constant, *ast.ID, *ast.Arithmetic, *ast.Relational, *ast.Logical, *ast.Unary, *ast.Call:
		return e.evalExpr(n, env)
	default:
		e.evalStmt(n, env)
		return value.VoidValue
	}
}
