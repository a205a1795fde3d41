package types2

import (
	"go/constant"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for each type error, in a deterministic order:
	// declaration errors first, then function bodies in source order.
	// If nil, errors are only available through the result of Check.
	Error ErrorHandler

	// Parallelism bounds how many function bodies are checked at once.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Parallelism int
}

// Info holds the results of type checking.
type Info struct {
	// Types maps expressions, including type expressions, to their type
	// and value information. Every type is alias-free.
	Types map[syntax.Expr]TypeAndValue

	// Defs maps defining identifiers to their declared objects:
	// function and alias names, parameters and let-bound variables.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to their referenced objects.
	Uses map[*syntax.Name]types.Object

	// Scopes maps AST nodes to the scopes they open.
	// This includes File, FuncDecl and every nested BlockStmt.
	Scopes map[syntax.Node]*types.Scope
}

// NewInfo returns an Info with all maps allocated.
func NewInfo() *Info {
	return &Info{
		Types:  make(map[syntax.Expr]TypeAndValue),
		Defs:   make(map[*syntax.Name]types.Object),
		Uses:   make(map[*syntax.Name]types.Object),
		Scopes: make(map[syntax.Node]*types.Scope),
	}
}

// TypeOf returns the type of expression e, or nil if unknown.
func (info *Info) TypeOf(e syntax.Expr) types.Type {
	if tv, ok := info.Types[e]; ok {
		return tv.Type
	}
	return nil
}

// ObjectOf returns the object denoted by name, or nil if unknown.
func (info *Info) ObjectOf(name *syntax.Name) types.Object {
	if obj := info.Defs[name]; obj != nil {
		return obj
	}
	return info.Uses[name]
}

// merge moves everything recorded in other into info.
func (info *Info) merge(other *Info) {
	for k, v := range other.Types {
		info.Types[k] = v
	}
	for k, v := range other.Defs {
		info.Defs[k] = v
	}
	for k, v := range other.Uses {
		info.Uses[k] = v
	}
	for k, v := range other.Scopes {
		info.Scopes[k] = v
	}
}

// TypeAndValue holds the type and value information for an expression.
type TypeAndValue struct {
	Type  types.Type     // expression type (nil for no-value calls and builtins)
	Value constant.Value // constant value (nil if not constant)
	mode  operandMode    // operand mode
}

// IsVoid reports whether the expression is a call without a value.
func (tv TypeAndValue) IsVoid() bool {
	return tv.mode == novalue
}

// IsBuiltin reports whether the expression denotes a built-in function.
func (tv TypeAndValue) IsBuiltin() bool {
	return tv.mode == builtin
}

// IsType reports whether the expression is a type expression.
func (tv TypeAndValue) IsType() bool {
	return tv.mode == typexpr
}

// IsConstant reports whether the expression is a constant.
func (tv TypeAndValue) IsConstant() bool {
	return tv.mode == constant_
}

// IsAddressable reports whether the expression is a variable.
func (tv TypeAndValue) IsAddressable() bool {
	return tv.mode == variable
}

// IsValue reports whether the expression has a value.
func (tv TypeAndValue) IsValue() bool {
	return tv.mode == constant_ || tv.mode == variable || tv.mode == value
}

// Check type-checks a parsed file.
//
// Declarations are collected first so that functions may refer to each
// other in any order. Function bodies are then checked concurrently,
// each with private nested scopes over the shared, read-only package
// scope. A body is abandoned at its first error; other bodies are still
// checked. Check returns the package and the first error, if any.
func Check(filename string, file *syntax.File, conf *Config, info *Info) (*types.Package, error) {
	if conf == nil {
		conf = &Config{}
	}

	c := newChecker(conf, info)
	c.collectDecls(file)
	c.resolveAliases()
	c.resolveSignatures()

	// Pass 2: function bodies.
	results := make([]*Checker, len(c.funcs))
	var g errgroup.Group
	g.SetLimit(parallelism(conf.Parallelism))
	for i, fn := range c.funcs {
		g.Go(func() error {
			results[i] = c.checkFunc(fn)
			return nil
		})
	}
	_ = g.Wait() // checkFunc never fails; errors are collected per function

	for _, r := range results {
		if r == nil {
			continue
		}
		c.errors = append(c.errors, r.errors...)
		if c.info != nil && r.info != nil {
			c.info.merge(r.info)
		}
	}

	if conf.Error != nil {
		for _, err := range c.errors {
			conf.Error(err)
		}
	}
	if len(c.errors) > 0 {
		return c.pkg, c.errors[0]
	}
	return c.pkg, nil
}

func parallelism(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
