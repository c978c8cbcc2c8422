/*
File    : minipar/internal/eval/eval_func.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/minipar-lang/minipar/internal/closure"
	"github.com/minipar-lang/minipar/internal/environment"
	"github.com/minipar-lang/minipar/internal/types"
	"github.com/minipar-lang/minipar/internal/value"
)

// callFunction pushes a frame parented at the closure's *captured*
// environment — not the call site — so lexical scoping holds even
// when a function is invoked from somewhere far from its definition.
// Grounded directly on the teacher's eval.Evaluator.CallFunction.
func (e *Evaluator) callFunction(fn *closure.Function, args []value.Value, callLine int) (result value.Value) {
	frame := environment.New(fn.Env)
	for i, param := range fn.Def.Params {
		// The parser only lets a call omit a trailing suffix of
		// parameters that carry a default, so param.Default is
		// guaranteed non-nil whenever i is beyond the supplied args.
		if i < len(args) {
			frame.Bind(param.Name, args[i])
			continue
		}
		frame.Bind(param.Name, e.evalExpr(param.Default, frame))
	}

	result = zeroValue(fn.Def.Return)
	func() {
		defer func() {
			if r := recover(); r != nil {
				if ret, ok := r.(returnSignal); ok {
					result = ret.Value
					return
				}
				panic(r)
			}
		}()
		e.evalBlock(fn.Def.Body, frame)
	}()

	if fn.Def.Return != types.VOID && result == nil {
		invariantBreach(callLine, "function '%s' produced no value for non-void return type", fn.Def.Name)
	}
	return result
}
