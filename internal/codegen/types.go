package codegen

import (
	"strings"

	"github.com/you-not-fish/blaze/internal/rtabi"
	"github.com/you-not-fish/blaze/internal/types"
)

// goType maps a Blaze type to its Go type string.
// Types reaching the generator are alias-free.
func goType(t types.Type) string {
	switch u := t.(type) {
	case *types.Basic:
		return goBasicType(u)
	case *types.Func:
		return goFuncType(u)
	}
	internalError("unexpected type %v", t)
	return ""
}

// goBasicType maps a basic type to Go.
func goBasicType(b *types.Basic) string {
	switch b.Kind() {
	case types.I32:
		return rtabi.GoTypeInt
	case types.F64:
		return rtabi.GoTypeFloat
	case types.Bool:
		return rtabi.GoTypeBool
	case types.Str:
		return rtabi.GoTypeString
	}
	internalError("unexpected basic type %v", b)
	return ""
}

// goFuncType returns the Go function type literal for a signature,
// e.g. "func(int32, int32) bool".
func goFuncType(f *types.Func) string {
	var b strings.Builder
	b.WriteString("func")
	writeSignature(&b, f, nil)
	return b.String()
}

// writeSignature writes a parameter list and optional result. If names
// is non-nil it supplies the parameter names.
func writeSignature(b *strings.Builder, f *types.Func, names []string) {
	b.WriteByte('(')
	for i, p := range f.Params() {
		if i > 0 {
			b.WriteString(", ")
		}
		if names != nil {
			b.WriteString(names[i])
			b.WriteByte(' ')
		}
		b.WriteString(goType(p))
	}
	b.WriteByte(')')
	if r := f.Result(); r != nil {
		b.WriteByte(' ')
		b.WriteString(goType(r))
	}
}
