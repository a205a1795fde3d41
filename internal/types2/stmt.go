package types2

import (
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// stmts checks a list of statements.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:
		// Nothing to check

	case *syntax.ExprStmt:
		c.exprStmt(s)

	case *syntax.AssignStmt:
		c.assignStmt(s)

	case *syntax.BlockStmt:
		c.blockStmt(s, "block")

	case *syntax.IfStmt:
		c.ifStmt(s)

	case *syntax.LoopStmt:
		c.loopStmt(s)

	case *syntax.ReturnStmt:
		c.returnStmt(s)

	case *syntax.BranchStmt:
		c.branchStmt(s)

	case *syntax.DeclStmt:
		if d, ok := s.Decl.(*syntax.VarDecl); ok {
			c.localVarDecl(d)
		}

	default:
		c.errorf(s.Pos(), InvalidOperation, "unexpected statement %T", s)
	}
}

// exprStmt checks an expression statement. The value, if any, is
// discarded, so calls of functions without result are allowed.
func (c *Checker) exprStmt(s *syntax.ExprStmt) {
	var x operand
	c.rawExpr(&x, s.X)
	switch x.mode {
	case builtin:
		c.errorf(x.pos, InvalidOperation, "%s must be called", &x)
	case typexpr:
		c.errorf(x.pos, InvalidOperation, "%s is not an expression", &x)
	}
}

// blockStmt checks a nested block in a scope of its own.
func (c *Checker) blockStmt(s *syntax.BlockStmt, comment string) {
	c.openScope(s, comment)
	c.stmts(s.Stmts)
	c.closeScope()
}

// ifStmt checks an if statement.
func (c *Checker) ifStmt(s *syntax.IfStmt) {
	var cond operand
	c.expr(&cond, s.Cond)
	if cond.mode != invalid && !types.IsBoolean(cond.typ) {
		c.errorf(s.Cond.Pos(), TypeMismatch, "non-boolean condition in if statement")
	}

	c.blockStmt(s.Then, "if")

	switch els := s.Else.(type) {
	case *syntax.BlockStmt:
		c.blockStmt(els, "else")
	case *syntax.IfStmt:
		c.ifStmt(els)
	}
}

// loopStmt checks a loop statement.
func (c *Checker) loopStmt(s *syntax.LoopStmt) {
	c.loopDepth++
	c.blockStmt(s.Body, "loop")
	c.loopDepth--
}

// returnStmt checks a return statement against the enclosing signature.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) {
	want := c.funcSig.Result()
	if s.Result == nil {
		if want != nil {
			c.errorf(s.Pos(), TypeMismatch, "not enough return values (want %s)", want)
		}
		return
	}

	var x operand
	c.expr(&x, s.Result)
	if x.mode == invalid {
		return
	}
	if want == nil {
		c.errorf(s.Result.Pos(), TypeMismatch, "too many return values (have %s)", x.typ)
		return
	}
	c.assignment(&x, want, "return statement")
}

// branchStmt checks a break or continue statement.
func (c *Checker) branchStmt(s *syntax.BranchStmt) {
	if c.loopDepth == 0 {
		c.errorf(s.Pos(), IllegalControlFlow, "%s is not in a loop", s.Tok)
	}
}

// assignStmt checks an assignment. Only variables can be assigned.
func (c *Checker) assignStmt(s *syntax.AssignStmt) {
	obj := c.resolve(s.LHS)
	if obj == nil {
		return
	}
	v, ok := obj.(*types.Var)
	if !ok {
		c.errorf(s.LHS.Pos(), InvalidOperation, "cannot assign to %s (neither a parameter nor a variable)", s.LHS.Value)
		return
	}

	var lhs operand
	lhs.setVar(s.LHS.Pos(), v.Type())
	lhs.expr = s.LHS
	lhs.obj = v
	c.recordType(s.LHS, &lhs)

	var x operand
	c.expr(&x, s.RHS)
	if x.mode == invalid {
		return
	}
	c.assignment(&x, v.Type(), "assignment")
}

// ----------------------------------------------------------------------------
// Terminating statements
//
// A function with a result must end in a terminating statement:
//   - a return statement;
//   - a block whose last non-empty statement is terminating;
//   - an if with an else where both branches are terminating;
//   - a loop with no break referring to it.

// isTerminatingList reports whether the statement list ends in a
// terminating statement.
func isTerminatingList(list []syntax.Stmt) bool {
	for i := len(list) - 1; i >= 0; i-- {
		if _, ok := list[i].(*syntax.EmptyStmt); ok {
			continue
		}
		return isTerminating(list[i])
	}
	return false
}

// isTerminating reports whether s is a terminating statement.
func isTerminating(s syntax.Stmt) bool {
	switch s := s.(type) {
	case *syntax.ReturnStmt:
		return true
	case *syntax.BlockStmt:
		return isTerminatingList(s.Stmts)
	case *syntax.IfStmt:
		return s.Else != nil && isTerminatingList(s.Then.Stmts) && isTerminating(s.Else)
	case *syntax.LoopStmt:
		return !hasBreak(s.Body.Stmts)
	}
	return false
}

// hasBreak reports whether list contains a break that refers to the
// immediately enclosing loop. Breaks inside nested loops do not count.
func hasBreak(list []syntax.Stmt) bool {
	for _, s := range list {
		switch s := s.(type) {
		case *syntax.BranchStmt:
			if s.Tok == syntax.Break {
				return true
			}
		case *syntax.BlockStmt:
			if hasBreak(s.Stmts) {
				return true
			}
		case *syntax.IfStmt:
			if hasBreak(s.Then.Stmts) || (s.Else != nil && hasBreak([]syntax.Stmt{s.Else})) {
				return true
			}
		}
	}
	return false
}
