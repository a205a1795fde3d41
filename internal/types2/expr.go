package types2

import (
	"go/constant"
	"go/token"
	"math"
	"strings"

	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// exprString returns the source form of e for error messages.
func exprString(e syntax.Expr) string {
	if e == nil {
		return "<nil>"
	}
	return syntax.String(e)
}

// expr evaluates an expression that must denote a value and sets x to
// the result.
func (c *Checker) expr(x *operand, e syntax.Expr) {
	c.rawExpr(x, e)
	switch x.mode {
	case novalue:
		c.errorf(x.pos, InvalidOperation, "%s used as value", x)
		x.mode = invalid
	case builtin:
		c.errorf(x.pos, InvalidOperation, "%s must be called", x)
		x.mode = invalid
	case typexpr:
		c.errorf(x.pos, InvalidOperation, "%s is not an expression", x)
		x.mode = invalid
	}
}

// rawExpr evaluates an expression of any mode and records its type.
func (c *Checker) rawExpr(x *operand, e syntax.Expr) {
	c.exprInternal(x, e)
	if x.mode != invalid {
		c.recordType(e, x)
	}
}

// exprInternal is the main expression checking function.
func (c *Checker) exprInternal(x *operand, e syntax.Expr) {
	x.mode = invalid
	x.pos = e.Pos()
	x.expr = e
	x.obj = nil

	switch e := e.(type) {
	case *syntax.Name:
		c.ident(x, e)
	case *syntax.BasicLit:
		c.basicLit(x, e)
	case *syntax.Operation:
		if e.Y == nil {
			c.unary(x, e)
		} else {
			c.binary(x, e)
		}
	case *syntax.CallExpr:
		c.call(x, e)
	case *syntax.ParenExpr:
		c.rawExpr(x, e.X)
		x.pos = e.Pos()
		x.expr = e
	case *syntax.FuncType:
		c.typExpr(x, e)
	default:
		c.errorf(e.Pos(), InvalidOperation, "unexpected expression %T", e)
	}
}

// ident evaluates an identifier.
func (c *Checker) ident(x *operand, name *syntax.Name) {
	obj := c.resolve(name)
	if obj == nil {
		return
	}
	x.obj = obj

	switch obj := obj.(type) {
	case *types.Var:
		x.setVar(name.Pos(), obj.Type())
	case *types.TypeName:
		if obj.Type() == nil {
			c.silentBail()
			return
		}
		x.mode = typexpr
		x.typ = obj.Type()
	case *types.FuncObj:
		if obj.Signature() == nil {
			// The signature is invalid and has been reported.
			c.silentBail()
			return
		}
		x.setValue(name.Pos(), obj.Signature())
	case *types.Builtin:
		x.mode = builtin
		x.typ = nil
	default:
		c.errorf(name.Pos(), InvalidOperation, "unexpected object %T", obj)
	}
}

// basicLit evaluates a literal. Literals have fixed types: integer
// literals are i32, float literals f64, string literals str.
func (c *Checker) basicLit(x *operand, lit *syntax.BasicLit) {
	switch lit.Kind {
	case syntax.IntLit:
		digits := strings.TrimLeft(lit.Value, "0")
		if digits == "" {
			digits = "0"
		}
		x.setConst(lit.Pos(), types.Typ[types.I32], constant.MakeFromLiteral(digits, token.INT, 0))
	case syntax.FloatLit:
		x.setConst(lit.Pos(), types.Typ[types.F64], constant.MakeFromLiteral(lit.Value, token.FLOAT, 0))
	case syntax.StringLit:
		x.setConst(lit.Pos(), types.Typ[types.Str], constant.MakeString(lit.Value))
	case syntax.BoolLit:
		x.setConst(lit.Pos(), types.Typ[types.Bool], constant.MakeBool(lit.Value == "true"))
	default:
		c.errorf(lit.Pos(), InvalidOperation, "unknown literal kind %s", lit.Kind)
		return
	}
	if x.val.Kind() == constant.Unknown {
		c.errorf(lit.Pos(), InvalidOperation, "invalid literal %s", lit.Value)
		x.mode = invalid
		return
	}
	c.representable(x)
}

// representable checks that the constant x fits its type.
func (c *Checker) representable(x *operand) {
	if x.mode != constant_ {
		return
	}
	switch {
	case types.IsInteger(x.typ):
		if v, exact := constant.Int64Val(x.val); !exact || v < math.MinInt32 || v > math.MaxInt32 {
			c.errorf(x.pos, InvalidOperation, "constant %s overflows %s", x.val.ExactString(), x.typ)
			x.mode = invalid
		}
	case types.IsFloat(x.typ):
		if f, _ := constant.Float64Val(x.val); math.IsInf(f, 0) {
			c.errorf(x.pos, InvalidOperation, "constant %s overflows %s", x.val, x.typ)
			x.mode = invalid
		}
	}
}

// unary evaluates a unary operation.
func (c *Checker) unary(x *operand, e *syntax.Operation) {
	c.expr(x, e.X)
	if x.mode == invalid {
		return
	}

	var op token.Token
	switch e.Op {
	case syntax.Sub:
		if !types.IsNumeric(x.typ) {
			c.invalidOp(e.Pos(), "operator - not defined on %s", x)
			x.mode = invalid
			return
		}
		op = token.SUB
	case syntax.Not:
		if !types.IsBoolean(x.typ) {
			c.invalidOp(e.Pos(), "operator ! not defined on %s", x)
			x.mode = invalid
			return
		}
		op = token.NOT
	default:
		c.invalidOp(e.Pos(), "unknown unary operator %s", e.Op)
		x.mode = invalid
		return
	}

	x.pos = e.Pos()
	x.expr = e
	x.obj = nil
	if x.mode == constant_ {
		x.val = constant.UnaryOp(op, x.val, 0)
		c.representable(x)
		return
	}
	x.mode = value
}

// binaryOps maps binary operators to their go/constant equivalents.
var binaryOps = map[syntax.Token]token.Token{
	syntax.OrOr:   token.LOR,
	syntax.AndAnd: token.LAND,
	syntax.Eql:    token.EQL,
	syntax.Neq:    token.NEQ,
	syntax.Lss:    token.LSS,
	syntax.Leq:    token.LEQ,
	syntax.Gtr:    token.GTR,
	syntax.Geq:    token.GEQ,
	syntax.Add:    token.ADD,
	syntax.Sub:    token.SUB,
	syntax.Mul:    token.MUL,
	syntax.Div:    token.QUO,
	syntax.Rem:    token.REM,
}

// binary evaluates a binary operation. Operands must have identical
// types; there are no implicit conversions.
func (c *Checker) binary(x *operand, e *syntax.Operation) {
	var y operand
	c.expr(x, e.X)
	if x.mode == invalid {
		return
	}
	c.expr(&y, e.Y)
	if y.mode == invalid {
		x.mode = invalid
		return
	}

	op, ok := binaryOps[e.Op]
	if !ok {
		c.invalidOp(e.Pos(), "unknown binary operator %s", e.Op)
		x.mode = invalid
		return
	}

	if !types.Identical(x.typ, y.typ) {
		c.invalidOp(e.Pos(), "%s (mismatched types %s and %s)", exprString(e), x.typ, y.typ)
		x.mode = invalid
		return
	}
	if !c.opAllowed(e, x) {
		x.mode = invalid
		return
	}

	if (op == token.QUO || op == token.REM) && y.mode == constant_ && constant.Sign(y.val) == 0 &&
		(x.mode == constant_ || types.IsInteger(x.typ)) {
		c.invalidOp(y.pos, "division by zero")
		x.mode = invalid
		return
	}

	isCompare := op == token.EQL || op == token.NEQ || op == token.LSS ||
		op == token.LEQ || op == token.GTR || op == token.GEQ

	x.pos = e.Pos()
	x.expr = e
	x.obj = nil
	if x.mode == constant_ && y.mode == constant_ {
		if isCompare {
			x.val = constant.MakeBool(constant.Compare(x.val, op, y.val))
			x.typ = types.Typ[types.Bool]
			return
		}
		if op == token.QUO && types.IsInteger(x.typ) {
			op = token.QUO_ASSIGN // force integer division
		}
		x.val = constant.BinaryOp(x.val, op, y.val)
		c.representable(x)
		return
	}

	x.mode = value
	x.val = nil
	if isCompare {
		x.typ = types.Typ[types.Bool]
	}
}

// opAllowed reports whether e.Op is defined on operands of x's type,
// reporting an error if not.
func (c *Checker) opAllowed(e *syntax.Operation, x *operand) bool {
	var ok bool
	switch e.Op {
	case syntax.OrOr, syntax.AndAnd:
		ok = types.IsBoolean(x.typ)
	case syntax.Eql, syntax.Neq:
		ok = types.Comparable(x.typ)
	case syntax.Lss, syntax.Leq, syntax.Gtr, syntax.Geq:
		ok = types.Ordered(x.typ)
	case syntax.Add, syntax.Sub, syntax.Mul, syntax.Div:
		ok = types.IsNumeric(x.typ)
	case syntax.Rem:
		ok = types.IsInteger(x.typ)
	}
	if !ok {
		c.invalidOp(e.Pos(), "%s (operator %s not defined on %s)", exprString(e), e.Op, x.typ)
	}
	return ok
}
