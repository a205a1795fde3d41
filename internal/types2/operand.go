package types2

import (
	"go/constant"

	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	invalid   operandMode = iota // operand is invalid
	novalue                      // operand has no value (call of a function without result)
	builtin                      // operand is a built-in function
	typexpr                      // operand is a type expression
	constant_                    // operand is a constant value
	variable                     // operand is an assignable variable
	value                        // operand is a computed value
)

var operandModeNames = [...]string{
	invalid:   "invalid operand",
	novalue:   "no value",
	builtin:   "builtin",
	typexpr:   "type",
	constant_: "constant",
	variable:  "variable",
	value:     "value",
}

// operand represents the result of evaluating an expression.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
	val  constant.Value // constant value (only valid when mode == constant_)
	expr syntax.Expr    // source expression (for error reporting)
	obj  types.Object   // denoted object, if expr is a name
}

// String returns a short description of the operand for error messages,
// such as "x (variable of type i32)" or "f() (no value)".
func (x *operand) String() string {
	src := exprString(x.expr)
	switch x.mode {
	case invalid:
		return src + " (invalid operand)"
	case novalue, builtin, typexpr:
		return src + " (" + operandModeNames[x.mode] + ")"
	}
	what := operandModeNames[x.mode]
	if x.mode == value {
		if _, ok := x.obj.(*types.FuncObj); ok {
			what = "function"
		}
	}
	return src + " (" + what + " of type " + x.typ.String() + ")"
}

// isValue reports whether x can be used as a value.
func (x *operand) isValue() bool {
	return x.mode == constant_ || x.mode == variable || x.mode == value
}

// setConst sets the operand to a constant value.
func (x *operand) setConst(pos syntax.Pos, typ types.Type, val constant.Value) {
	x.mode = constant_
	x.pos = pos
	x.typ = typ
	x.val = val
}

// setVar sets the operand to a variable.
func (x *operand) setVar(pos syntax.Pos, typ types.Type) {
	x.mode = variable
	x.pos = pos
	x.typ = typ
	x.val = nil
}

// setValue sets the operand to a computed value.
func (x *operand) setValue(pos syntax.Pos, typ types.Type) {
	x.mode = value
	x.pos = pos
	x.typ = typ
	x.val = nil
}

// setNoValue sets the operand to the result of a call without value.
func (x *operand) setNoValue(pos syntax.Pos) {
	x.mode = novalue
	x.pos = pos
	x.typ = nil
	x.val = nil
}
