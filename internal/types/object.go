package types

import "github.com/you-not-fish/blaze/internal/syntax"

// Object represents a declared entity: variable, type name, function or builtin.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a parameter or a local variable.
type Var struct {
	object
	isParam bool // true if this is a function parameter
}

// NewVar creates a new local variable object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}}
}

// NewParam creates a new parameter object.
func NewParam(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, isParam: true}
}

// IsParam reports whether this variable is a function parameter.
func (v *Var) IsParam() bool {
	return v.isParam
}

// TypeName represents a primitive type name or a type alias.
// For an alias, Type is the fully flattened type it denotes.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
// typ may be nil while an alias declaration is being resolved.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// SetType sets the type associated with the type name.
// This is used during type checking once the alias is resolved.
func (t *TypeName) SetType(typ Type) {
	t.typ = typ
}

// IsAlias reports whether t was declared by a type declaration
// rather than being predeclared.
func (t *TypeName) IsAlias() bool {
	return t.pos.IsValid()
}

// FuncObj represents a declared top-level function.
// Used as a value it denotes a reference to the function: its identity
// and its signature, never a captured environment.
type FuncObj struct {
	object
	sig *Func // function signature (set after construction)
}

// NewFuncObj creates a new function object.
// The signature should be set later using SetSignature.
func NewFuncObj(pos syntax.Pos, name string) *FuncObj {
	return &FuncObj{object: object{name: name, pos: pos}}
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.sig
}

// SetSignature sets the function signature.
// This is called during type checking once the signature is resolved.
func (f *FuncObj) SetSignature(sig *Func) {
	f.sig = sig
	f.typ = sig
}

// BuiltinKind identifies a builtin function.
type BuiltinKind int

const (
	BuiltinClock BuiltinKind = iota // clock(): f64
	BuiltinPrint                    // print(v)
)

// Builtin represents a built-in function supplied by the runtime shim.
// Builtins have no Type: they can only be called, never used as values.
type Builtin struct {
	object
	kind BuiltinKind
}

// NewBuiltin creates a new builtin function object.
func NewBuiltin(name string, kind BuiltinKind) *Builtin {
	return &Builtin{object: object{name: name}, kind: kind}
}

// Kind returns the builtin function kind.
func (b *Builtin) Kind() BuiltinKind {
	return b.kind
}
