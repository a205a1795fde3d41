// Package types implements the type system for the Blaze programming language.
// This package provides type representations without AST dependencies.
package types

// Type is the interface implemented by all types.
//
// Aliases do not have a Type of their own: an alias object is bound
// directly to the type it denotes, so every Type is alias-free.
type Type interface {
	// Underlying returns the underlying type.
	// All Blaze types are their own underlying type.
	Underlying() Type

	// String returns a human-readable representation of the type
	// in Blaze syntax.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
