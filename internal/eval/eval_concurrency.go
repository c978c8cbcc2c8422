/*
File    : minipar/internal/eval/eval_concurrency.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/minipar-lang/minipar/internal/ast"
	"github.com/minipar-lang/minipar/internal/environment"
)

// evalPar launches each direct child statement as an independent task
// sharing a single frame by reference, per spec.md §4.4. That frame is
// a fresh child of env — mirroring the one symtab scope parseBlock
// opens for the whole `par { ... }` body — so a declaration made
// directly inside the par block doesn't alias anything in env, while
// plain assignment to an outer binding still walks outward through it
// exactly as spec.md §5 requires.
//
// conc.WaitGroup runs every submitted goroutine to completion even if
// one panics, then re-panics on Wait() — an exact fit for the spec's
// "collect the first failure, let siblings finish, then propagate"
// rule. It wraps whatever it caught in a *panics.RecoveredPanic,
// though, so the RuntimeError/break/continue/return sentinels this
// evaluator panics with must be unwrapped back to their original
// value before they reach callFunction's/runLoopBody's/Run's own
// recover, or those type switches never match and the process
// crashes instead of reporting RuntimeError with exit code 3.
func (e *Evaluator) evalPar(n *ast.Par, env *environment.Environment) {
	frame := environment.New(env)
	var wg conc.WaitGroup
	for _, stmt := range n.Statements {
		stmt := stmt
		wg.Go(func() {
			e.Log.Debugf("par: task started for %T at line %d", stmt, stmt.Token().Line)
			e.evalStmt(stmt, frame)
			e.Log.Debugf("par: task finished for %T at line %d", stmt, stmt.Token().Line)
		})
	}
	defer func() {
		if r := recover(); r != nil {
			if rp, ok := r.(*panics.RecoveredPanic); ok {
				panic(rp.Value)
			}
			panic(r)
		}
	}()
	wg.Wait()
}
