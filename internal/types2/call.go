package types2

import (
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// call evaluates a call expression. The callee may be any expression of
// function type, including another call as in f()().
func (c *Checker) call(x *operand, e *syntax.CallExpr) {
	c.rawExpr(x, e.Fun)
	if x.mode == invalid {
		return
	}

	if x.mode == builtin {
		c.builtinCall(x, e, x.obj.(*types.Builtin))
		return
	}

	sig, ok := x.typ.(*types.Func)
	if !x.isValue() || !ok {
		c.invalidOp(e.Pos(), "cannot call non-function %s", x)
		x.mode = invalid
		return
	}

	callee := exprString(e.Fun)
	if len(e.Args) != sig.NumParams() {
		c.errorf(e.Pos(), ArityMismatch, "wrong number of arguments in call to %s: got %d, want %d",
			callee, len(e.Args), sig.NumParams())
		x.mode = invalid
		return
	}

	for i, arg := range e.Args {
		var a operand
		c.expr(&a, arg)
		if a.mode == invalid {
			x.mode = invalid
			return
		}
		if !c.assignment(&a, sig.Param(i), "argument to "+callee) {
			x.mode = invalid
			return
		}
	}

	x.expr = e
	x.obj = nil
	if sig.Result() == nil {
		x.setNoValue(e.Pos())
		return
	}
	x.setValue(e.Pos(), sig.Result())
}

// builtinCall evaluates a call of a built-in function.
func (c *Checker) builtinCall(x *operand, e *syntax.CallExpr, b *types.Builtin) {
	x.expr = e
	x.obj = nil

	switch b.Kind() {
	case types.BuiltinClock:
		if len(e.Args) != 0 {
			c.errorf(e.Pos(), ArityMismatch, "wrong number of arguments in call to clock: got %d, want 0", len(e.Args))
			x.mode = invalid
			return
		}
		x.setValue(e.Pos(), types.Typ[types.F64])

	case types.BuiltinPrint:
		if len(e.Args) != 1 {
			c.errorf(e.Pos(), ArityMismatch, "wrong number of arguments in call to print: got %d, want 1", len(e.Args))
			x.mode = invalid
			return
		}
		var a operand
		c.expr(&a, e.Args[0])
		if a.mode == invalid {
			x.mode = invalid
			return
		}
		if types.IsFunc(a.typ) {
			c.errorf(a.pos, TypeMismatch, "cannot print %s", &a)
			x.mode = invalid
			return
		}
		x.setNoValue(e.Pos())

	default:
		c.errorf(e.Pos(), InvalidOperation, "unknown builtin %s", b.Name())
		x.mode = invalid
	}
}
