package types

// Package is the unit of compilation: one source file.
// Its scope holds the top-level functions and aliases and is a child
// of Universe. A Package is created per Check call and never shared.
type Package struct {
	name  string // always "main"
	scope *Scope // top-level scope
}

// NewPackage creates a new package with the given name.
func NewPackage(name string) *Package {
	return &Package{
		name:  name,
		scope: NewScope(Universe, NoPos, NoPos, "package "+name),
	}
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Scope returns the package-level scope.
func (p *Package) Scope() *Scope {
	return p.scope
}

// String returns the package name.
func (p *Package) String() string {
	return p.name
}
