package types2

import (
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// funcBody checks the body of fn. Parameters are declared in the
// function scope, which is also the scope of the body's top-level
// statements. Checking stops at the first error in the body.
func (c *Checker) funcBody(fn *funcDecl) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()

	decl := fn.decl
	sig := fn.obj.Signature()
	for i, f := range decl.Params {
		c.declare(f.Name, types.NewParam(f.Name.Pos(), f.Name.Value, sig.Param(i)))
	}

	c.stmts(decl.Body.Stmts)

	if sig.Result() != nil && !isTerminatingList(decl.Body.Stmts) {
		c.errorf(decl.Body.Rbrace, MissingReturn, "missing return")
	}
}

// localVarDecl checks a let declaration. The initializer is checked
// before the variable is declared, so it sees any outer binding of the
// same name.
func (c *Checker) localVarDecl(decl *syntax.VarDecl) {
	typ := c.resolveType(decl.Type)
	if typ == nil {
		return
	}

	if decl.Value != nil {
		var x operand
		c.expr(&x, decl.Value)
		if x.mode == invalid {
			return
		}
		c.assignment(&x, typ, "variable declaration")
	}

	c.declare(decl.Name, types.NewVar(decl.Name.Pos(), decl.Name.Value, typ))
}

// assignment checks that x can be assigned to a variable of type T.
// Types must be identical; there are no implicit conversions.
func (c *Checker) assignment(x *operand, T types.Type, context string) bool {
	if types.Identical(x.typ, T) {
		return true
	}
	c.errorf(x.pos, TypeMismatch, "cannot use %s as %s value in %s", x, T, context)
	return false
}
