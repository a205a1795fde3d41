// Package types2 implements name resolution and type checking for the
// Blaze programming language.
package types2

import (
	"fmt"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// ErrorKind classifies a type checking error.
type ErrorKind int

const (
	UndefinedSymbol    ErrorKind = iota // name not bound in any enclosing scope
	TypeMismatch                        // operand type differs from the required type
	ArityMismatch                       // wrong number of call arguments
	AliasCycle                          // type aliases refer to each other
	Redeclared                          // name declared twice in one scope
	InvalidOperation                    // operator or call not defined for the operand
	MissingReturn                       // function with a result can fall off its end
	IllegalControlFlow                  // break or continue outside a loop
)

var errorKindNames = [...]string{
	UndefinedSymbol:    "UndefinedSymbol",
	TypeMismatch:       "TypeMismatch",
	ArityMismatch:      "ArityMismatch",
	AliasCycle:         "AliasCycle",
	Redeclared:         "Redeclared",
	InvalidOperation:   "InvalidOperation",
	MissingReturn:      "MissingReturn",
	IllegalControlFlow: "IllegalControlFlow",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes a type checking error.
type Error struct {
	Pos  syntax.Pos
	Kind ErrorKind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// IsControlFlow reports whether e is a control-flow error
// (break or continue outside a loop) rather than a type error.
func (e *Error) IsControlFlow() bool {
	return e.Kind == IllegalControlFlow
}

// ErrorHandler is called for each error found by Check.
// The error is always an *Error.
type ErrorHandler func(err error)

// bailout is the panic value used to abandon checking of one function
// body after its first error.
type bailout struct{}

// errorf reports an error at the given position.
// Inside a function body the rest of that body is skipped.
func (c *Checker) errorf(pos syntax.Pos, kind ErrorKind, format string, args ...interface{}) {
	c.errors = append(c.errors, &Error{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)})
	if c.inBody {
		panic(bailout{})
	}
}

// silentBail abandons the current function body without reporting.
// It is used when an earlier declaration error already explains the
// problem, for example a call to a function whose signature is invalid.
func (c *Checker) silentBail() {
	if c.inBody {
		panic(bailout{})
	}
}

// invalidOp reports an invalid operation error.
func (c *Checker) invalidOp(pos syntax.Pos, format string, args ...interface{}) {
	c.errorf(pos, InvalidOperation, "invalid operation: "+format, args...)
}
