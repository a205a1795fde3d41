package types

import "strings"

// Func represents a function type: fn(P1, P2): R.
//
// A function type is structural. Parameter names belong to the
// declaration, not the type, so fn(a: i32) and fn(b: i32) have
// identical types.
type Func struct {
	typ
	params []Type // parameter types
	result Type   // result type (nil for no value)
}

// NewFunc creates a new function type.
func NewFunc(params []Type, result Type) *Func {
	return &Func{params: params, result: result}
}

// Params returns the parameter types.
func (f *Func) Params() []Type {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the type of parameter i.
func (f *Func) Param(i int) Type {
	return f.params[i]
}

// Result returns the result type, or nil for functions without a value.
func (f *Func) Result() Type {
	return f.result
}

// Underlying implements Type.
func (f *Func) Underlying() Type {
	return f
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("fn(")
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.String())
	}
	buf.WriteString(")")
	if f.result != nil {
		buf.WriteString(": ")
		buf.WriteString(f.result.String())
	}
	return buf.String()
}
