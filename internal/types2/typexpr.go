package types2

import (
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// resolveType resolves a type expression and returns the resulting type,
// or nil if it is invalid.
func (c *Checker) resolveType(e syntax.Expr) types.Type {
	var x operand
	c.typExpr(&x, e)
	if x.mode == invalid {
		return nil
	}
	return x.typ
}

// typExpr evaluates a type expression and sets x to the resulting type.
func (c *Checker) typExpr(x *operand, e syntax.Expr) {
	x.mode = typexpr
	x.pos = e.Pos()
	x.expr = e

	switch e := e.(type) {
	case *syntax.Name:
		c.typeName(x, e)
	case *syntax.FuncType:
		c.funcType(x, e)
	default:
		c.errorf(e.Pos(), TypeMismatch, "%s is not a type", exprString(e))
		x.mode = invalid
	}

	if x.mode != invalid {
		c.recordType(e, x)
	}
}

// typeName resolves a type name. For an alias that is still unresolved
// during declaration collection, the alias is resolved first.
func (c *Checker) typeName(x *operand, name *syntax.Name) {
	obj := c.resolve(name)
	if obj == nil {
		x.mode = invalid
		return
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		c.errorf(name.Pos(), TypeMismatch, "%s is not a type", name.Value)
		x.mode = invalid
		return
	}

	if a := c.aliasByName[tn]; a != nil && a.state != resolved {
		c.resolveAlias(a, c.aliasPath)
	}
	if tn.Type() == nil {
		// The alias is invalid and has been reported.
		c.silentBail()
		x.mode = invalid
		return
	}
	x.typ = tn.Type()
}

// funcType resolves a function type fn(P...): R.
func (c *Checker) funcType(x *operand, e *syntax.FuncType) {
	params := make([]types.Type, len(e.Params))
	for i, p := range e.Params {
		if params[i] = c.resolveType(p); params[i] == nil {
			x.mode = invalid
			return
		}
	}
	var result types.Type
	if e.Result != nil {
		if result = c.resolveType(e.Result); result == nil {
			x.mode = invalid
			return
		}
	}
	x.typ = types.NewFunc(params, result)
}
