package codegen

import (
	"strconv"
	"strings"

	"github.com/you-not-fish/blaze/internal/rtabi"
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// decl emits a top-level declaration.
func (g *generator) decl(d syntax.Decl) {
	switch d := d.(type) {
	case *syntax.TypeDecl:
		obj := g.info.Defs[d.Name]
		if obj == nil {
			internalError("alias %s was not checked", d.Name.Value)
		}
		g.e.emit("type %s = %s", goName(d.Name.Value), goType(obj.Type()))
	case *syntax.FuncDecl:
		g.funcDecl(d)
	default:
		internalError("unexpected declaration %T", d)
	}
}

// funcDecl emits a function declaration.
func (g *generator) funcDecl(d *syntax.FuncDecl) {
	fn, ok := g.info.Defs[d.Name].(*types.FuncObj)
	if !ok || fn.Signature() == nil {
		internalError("function %s was not checked", d.Name.Value)
	}

	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = goName(p.Name.Value)
	}
	var b strings.Builder
	b.WriteString("func ")
	b.WriteString(goName(d.Name.Value))
	writeSignature(&b, fn.Signature(), names)

	g.e.open("%s {", b.String())
	g.stmts(d.Body.Stmts)
	g.e.close("}")
}

// stmts emits a list of statements.
func (g *generator) stmts(list []syntax.Stmt) {
	for _, s := range list {
		g.stmt(s)
	}
}

// stmt emits a single statement.
func (g *generator) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:
		// nothing

	case *syntax.ExprStmt:
		// Go only accepts calls as expression statements.
		if _, ok := unparen(s.X).(*syntax.CallExpr); ok {
			g.e.emit("%s", g.expr(s.X))
		} else {
			g.e.emit("_ = %s", g.expr(s.X))
		}

	case *syntax.AssignStmt:
		g.e.emit("%s = %s", goName(s.LHS.Value), g.expr(s.RHS))

	case *syntax.BlockStmt:
		g.e.open("{")
		g.stmts(s.Stmts)
		g.e.close("}")

	case *syntax.IfStmt:
		g.ifStmt(s, "if")

	case *syntax.LoopStmt:
		g.e.open("for {")
		g.stmts(s.Body.Stmts)
		g.e.close("}")

	case *syntax.ReturnStmt:
		if s.Result == nil {
			g.e.emit("return")
		} else {
			g.e.emit("return %s", g.expr(s.Result))
		}

	case *syntax.BranchStmt:
		switch s.Tok {
		case syntax.Break:
			g.e.emit("break")
		case syntax.Continue:
			g.e.emit("continue")
		default:
			internalError("unexpected branch %s", s.Tok)
		}

	case *syntax.DeclStmt:
		d, ok := s.Decl.(*syntax.VarDecl)
		if !ok {
			internalError("unexpected local declaration %T", s.Decl)
		}
		g.varDecl(d)

	default:
		internalError("unexpected statement %T", s)
	}
}

// ifStmt emits an if statement; keyword is "if" or "} else if".
func (g *generator) ifStmt(s *syntax.IfStmt, keyword string) {
	if keyword == "if" {
		g.e.open("if %s {", g.expr(s.Cond))
	} else {
		g.e.indent--
		g.e.open("%s %s {", keyword, g.expr(s.Cond))
	}
	g.stmts(s.Then.Stmts)

	switch els := s.Else.(type) {
	case nil:
	case *syntax.IfStmt:
		g.ifStmt(els, "} else if")
		return
	case *syntax.BlockStmt:
		g.e.indent--
		g.e.open("} else {")
		g.stmts(els.Stmts)
	default:
		internalError("unexpected else branch %T", els)
	}
	g.e.close("}")
}

// varDecl emits a let declaration. The blank assignment keeps Go from
// rejecting variables that are never read.
func (g *generator) varDecl(d *syntax.VarDecl) {
	obj := g.info.Defs[d.Name]
	if obj == nil {
		internalError("variable %s was not checked", d.Name.Value)
	}
	name := goName(d.Name.Value)
	if d.Value == nil {
		g.e.emit("var %s %s", name, goType(obj.Type()))
	} else {
		g.e.emit("var %s %s = %s", name, goType(obj.Type()), g.expr(d.Value))
	}
	g.e.emit("_ = %s", name)
}

// ----------------------------------------------------------------------------
// Expressions

// expr returns the Go source of an expression.
func (g *generator) expr(e syntax.Expr) string {
	var b strings.Builder
	g.writeExpr(&b, e, false)
	return b.String()
}

// writeExpr writes e. Inside a constant operation, float literals are
// converted to float64 so that Go folds them with float64 rounding at
// every step, as the operations would round at run time.
func (g *generator) writeExpr(b *strings.Builder, e syntax.Expr, inConst bool) {
	switch e := e.(type) {
	case *syntax.Name:
		b.WriteString(g.ident(e))

	case *syntax.BasicLit:
		g.basicLit(b, e, inConst)

	case *syntax.ParenExpr:
		b.WriteByte('(')
		g.writeExpr(b, e.X, inConst)
		b.WriteByte(')')

	case *syntax.Operation:
		inConst = inConst || g.isConst(e)
		if e.Y == nil {
			b.WriteString(e.Op.String())
			// Parenthesize nested operations: "- -x" must not become "--x".
			if _, ok := e.X.(*syntax.Operation); ok {
				b.WriteByte('(')
				g.writeExpr(b, e.X, inConst)
				b.WriteByte(')')
			} else {
				g.writeExpr(b, e.X, inConst)
			}
			return
		}
		prec := e.Op.Precedence()
		g.writeOperand(b, e.X, prec, false, inConst)
		b.WriteByte(' ')
		b.WriteString(e.Op.String())
		b.WriteByte(' ')
		g.writeOperand(b, e.Y, prec, true, inConst)

	case *syntax.CallExpr:
		g.call(b, e)

	default:
		internalError("unexpected expression %T", e)
	}
}

// writeOperand writes a binary operand, adding parentheses where Go's
// precedence would otherwise regroup it. Blaze and Go share binary
// precedence levels, so this only triggers for hand-built trees.
func (g *generator) writeOperand(b *strings.Builder, x syntax.Expr, prec int, right, inConst bool) {
	if op, ok := x.(*syntax.Operation); ok && op.Y != nil {
		p := op.Op.Precedence()
		if p < prec || (right && p == prec) {
			b.WriteByte('(')
			g.writeExpr(b, x, inConst)
			b.WriteByte(')')
			return
		}
	}
	g.writeExpr(b, x, inConst)
}

// ident returns the Go name a Blaze identifier refers to.
func (g *generator) ident(n *syntax.Name) string {
	if b, ok := g.info.Uses[n].(*types.Builtin); ok {
		switch b.Kind() {
		case types.BuiltinClock:
			return rtabi.FnClock
		case types.BuiltinPrint:
			return rtabi.FnPrint
		}
		internalError("unknown builtin %s", b.Name())
	}
	return goName(n.Value)
}

// basicLit writes a literal.
func (g *generator) basicLit(b *strings.Builder, lit *syntax.BasicLit, inConst bool) {
	switch lit.Kind {
	case syntax.IntLit:
		// Go reads a leading 0 as octal.
		digits := strings.TrimLeft(lit.Value, "0")
		if digits == "" {
			digits = "0"
		}
		b.WriteString(digits)
	case syntax.FloatLit:
		if inConst {
			b.WriteString(rtabi.GoTypeFloat + "(" + lit.Value + ")")
		} else {
			b.WriteString(lit.Value)
		}
	case syntax.StringLit:
		b.WriteString(strconv.Quote(lit.Value))
	case syntax.BoolLit:
		b.WriteString(lit.Value)
	default:
		internalError("unknown literal kind %s", lit.Kind)
	}
}

// call writes a call expression. Constant arguments to print are
// converted to their Blaze type, since a Go untyped constant passed as
// any would take Go's default type (int rather than int32).
func (g *generator) call(b *strings.Builder, e *syntax.CallExpr) {
	g.writeExpr(b, e.Fun, false)
	b.WriteByte('(')
	isPrint := g.isBuiltin(e.Fun, types.BuiltinPrint)
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		tv := g.info.Types[arg]
		if isPrint && tv.IsConstant() && types.IsNumeric(tv.Type) {
			b.WriteString(goType(tv.Type))
			b.WriteByte('(')
			g.writeExpr(b, arg, false)
			b.WriteByte(')')
			continue
		}
		g.writeExpr(b, arg, false)
	}
	b.WriteByte(')')
}

// isConst reports whether e was folded to a constant by the checker.
func (g *generator) isConst(e syntax.Expr) bool {
	tv, ok := g.info.Types[e]
	if !ok {
		internalError("expression %s at %s was not checked", syntax.String(e), e.Pos())
	}
	return tv.IsConstant()
}

// isBuiltin reports whether e denotes the builtin of the given kind.
func (g *generator) isBuiltin(e syntax.Expr, kind types.BuiltinKind) bool {
	n, ok := unparen(e).(*syntax.Name)
	if !ok {
		return false
	}
	b, ok := g.info.Uses[n].(*types.Builtin)
	return ok && b.Kind() == kind
}

// unparen returns e with any enclosing parentheses removed.
func unparen(e syntax.Expr) syntax.Expr {
	for {
		p, ok := e.(*syntax.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}
