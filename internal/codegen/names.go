package codegen

import (
	"strings"

	"github.com/you-not-fish/blaze/internal/rtabi"
)

// goReserved holds the Go keywords and predeclared identifiers.
// A Blaze name equal to one of them cannot be used verbatim, either
// because Go rejects it or because it would shadow a name the generated
// code relies on, such as int32.
var goReserved = map[string]bool{
	// keywords
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,

	// predeclared types
	"any": true, "bool": true, "byte": true, "comparable": true,
	"complex64": true, "complex128": true, "error": true,
	"float32": true, "float64": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,

	// predeclared constants and zero value
	"true": true, "false": true, "iota": true, "nil": true,

	// predeclared functions
	"append": true, "cap": true, "clear": true, "close": true, "complex": true,
	"copy": true, "delete": true, "imag": true, "len": true, "make": true,
	"max": true, "min": true, "new": true, "panic": true, "print": true,
	"println": true, "real": true, "recover": true,

	// package-level names with special meaning
	"init": true,
}

// goName returns the Go identifier for a Blaze identifier.
//
// A name whose trailing underscores hide a reserved word, or that starts
// with the shim's prefix, gets one more underscore. The mapping is
// injective: "func" becomes "func_", and a user's own "func_" becomes
// "func__". The blank identifier is renamed the same way since a Blaze
// "_" is an ordinary variable.
func goName(name string) string {
	if strings.HasPrefix(name, rtabi.ReservedPrefix) || goReserved[strings.TrimRight(name, "_")] ||
		strings.TrimRight(name, "_") == "" {
		return name + "_"
	}
	return name
}
