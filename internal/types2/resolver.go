package types2

import (
	"strings"

	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// collectDecls creates the package and enters an object for every
// top-level declaration into the package scope, so that declarations
// may refer to each other regardless of order.
func (c *Checker) collectDecls(file *syntax.File) {
	c.pkg = types.NewPackage("main")
	c.scope = c.pkg.Scope()
	if c.info != nil {
		c.info.Scopes[file] = c.scope
	}

	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *syntax.TypeDecl:
			obj := types.NewTypeName(decl.Name.Pos(), decl.Name.Value, nil)
			if !c.declare(decl.Name, obj) {
				continue
			}
			a := &aliasDecl{decl: decl, obj: obj}
			c.aliases = append(c.aliases, a)
			c.aliasByName[obj] = a
		case *syntax.FuncDecl:
			obj := types.NewFuncObj(decl.Name.Pos(), decl.Name.Value)
			if !c.declare(decl.Name, obj) {
				continue
			}
			c.funcs = append(c.funcs, &funcDecl{decl: decl, obj: obj})
		}
	}
}

// resolveAliases resolves every alias to the alias-free type it denotes.
// Aliases may be declared in any order; cycles are reported once, at the
// first alias of the cycle in declaration order.
func (c *Checker) resolveAliases() {
	for _, a := range c.aliases {
		c.resolveAlias(a, nil)
	}
}

// resolveAlias resolves a, given the path of aliases currently being
// resolved. It returns false if a cycle or another error was found.
func (c *Checker) resolveAlias(a *aliasDecl, path []*aliasDecl) bool {
	switch a.state {
	case resolved:
		return a.obj.Type() != nil
	case resolving:
		c.cycleError(a, path)
		return false
	}

	a.state = resolving
	path = append(path, a)
	c.aliasPath = path
	typ := c.resolveType(a.decl.Type)
	c.aliasPath = path[:len(path)-1]
	if a.state == resolved {
		// A cycle through a was reported while resolving its type.
		return false
	}
	a.state = resolved
	if typ != nil {
		a.obj.SetType(typ)
	}
	return typ != nil
}

// cycleError reports an alias cycle starting at a and marks every
// alias on it as resolved without a type.
func (c *Checker) cycleError(a *aliasDecl, path []*aliasDecl) {
	start := 0
	for i, p := range path {
		if p == a {
			start = i
			break
		}
	}
	cycle := path[start:]

	var names []string
	for _, p := range cycle {
		names = append(names, p.obj.Name())
		p.state = resolved
	}
	names = append(names, a.obj.Name())
	c.errorf(a.decl.Name.Pos(), AliasCycle, "invalid recursive type alias %s: %s",
		a.obj.Name(), strings.Join(names, " refers to "))
}

// resolveSignatures resolves all function signatures and creates the
// scope of each function, which holds its parameters. Functions whose
// signature cannot be resolved are dropped from body checking.
func (c *Checker) resolveSignatures() {
	valid := c.funcs[:0]
	for _, fn := range c.funcs {
		decl := fn.decl
		ok := true

		params := make([]types.Type, len(decl.Params))
		for i, f := range decl.Params {
			if params[i] = c.resolveType(f.Type); params[i] == nil {
				ok = false
			}
		}
		var result types.Type
		if decl.Result != nil {
			if result = c.resolveType(decl.Result); result == nil {
				ok = false
			}
		}
		if !ok {
			continue
		}

		fn.obj.SetSignature(types.NewFunc(params, result))
		if decl.Name.Value == "main" && (len(params) > 0 || result != nil) {
			c.errorf(decl.Name.Pos(), TypeMismatch, "func main must have no arguments and no return values")
		}

		fn.scope = types.NewScope(c.pkg.Scope(), decl.Pos(), decl.Body.End(), "function "+decl.Name.Value)
		if c.info != nil {
			c.info.Scopes[decl] = fn.scope
		}
		valid = append(valid, fn)
	}
	c.funcs = valid
}
