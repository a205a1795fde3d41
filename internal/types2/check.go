package types2

import (
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// Checker is the type checker.
//
// Declarations are collected by one Checker. Each function body is then
// checked by a private Checker derived from it, so bodies can be checked
// concurrently: they share only the package scope, which is no longer
// modified at that point.
type Checker struct {
	conf *Config
	info *Info
	pkg  *types.Package

	// Current checking context
	scope  *types.Scope // current scope
	inBody bool         // checking a function body; the first error ends it

	// Function context
	funcName string      // name of the function being checked
	funcSig  *types.Func // current function signature

	// Control-flow context
	loopDepth int // nested loop depth (for break/continue validation)

	// Declarations, only used while collecting
	aliases     []*aliasDecl
	aliasByName map[*types.TypeName]*aliasDecl
	aliasPath   []*aliasDecl // aliases currently being resolved
	funcs       []*funcDecl

	errors []*Error
}

// aliasDecl tracks the resolution of one type alias declaration.
type aliasDecl struct {
	decl  *syntax.TypeDecl
	obj   *types.TypeName
	state aliasState
}

type aliasState int

const (
	unresolved aliasState = iota
	resolving             // on the current resolution path
	resolved              // obj has its final type, or nil after an error
)

// funcDecl is a collected function declaration.
type funcDecl struct {
	decl  *syntax.FuncDecl
	obj   *types.FuncObj
	scope *types.Scope // parameter and top-level body scope
}

func newChecker(conf *Config, info *Info) *Checker {
	return &Checker{
		conf:        conf,
		info:        info,
		aliasByName: make(map[*types.TypeName]*aliasDecl),
	}
}

// openScope creates a new scope as a child of the current scope.
func (c *Checker) openScope(n syntax.Node, comment string) *types.Scope {
	s := types.NewScope(c.scope, n.Pos(), n.End(), comment)
	c.scope = s
	if c.info != nil {
		c.info.Scopes[n] = s
	}
	return s
}

// closeScope returns to the parent scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

// declare declares an object in the current scope.
// Reports an error if the name is already declared in that scope.
func (c *Checker) declare(name *syntax.Name, obj types.Object) bool {
	if existing := c.scope.Insert(obj); existing != nil {
		c.errorf(name.Pos(), Redeclared, "%s redeclared in this block", name.Value)
		return false
	}
	if c.info != nil {
		c.info.Defs[name] = obj
	}
	return true
}

// recordType records the type information for an expression.
func (c *Checker) recordType(e syntax.Expr, x *operand) {
	if c.info == nil {
		return
	}
	c.info.Types[e] = TypeAndValue{
		Type:  x.typ,
		Value: x.val,
		mode:  x.mode,
	}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}

// resolve looks up name and reports an error if it is undefined.
func (c *Checker) resolve(name *syntax.Name) types.Object {
	obj := c.lookup(name.Value)
	if obj == nil {
		c.errorf(name.Pos(), UndefinedSymbol, "undefined: %s", name.Value)
		return nil
	}
	c.recordUse(name, obj)
	return obj
}

// checkFunc checks one function body with a Checker of its own and
// returns it so that its errors and recorded info can be merged.
func (c *Checker) checkFunc(fn *funcDecl) *Checker {
	fc := &Checker{
		conf:     c.conf,
		pkg:      c.pkg,
		scope:    fn.scope,
		inBody:   true,
		funcName: fn.obj.Name(),
		funcSig:  fn.obj.Signature(),
	}
	if c.info != nil {
		fc.info = NewInfo()
	}
	fc.funcBody(fn)
	return fc
}
