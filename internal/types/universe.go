package types

import "github.com/you-not-fish/blaze/internal/syntax"

// NoPos is the zero position value, used for predeclared objects.
var NoPos syntax.Pos

// Universe is the root scope containing all predeclared objects.
// It is populated once at init and read-only afterwards.
var Universe *Scope

// Predeclared objects accessible via the Universe scope.
var (
	// Types
	universeI32  *TypeName
	universeF64  *TypeName
	universeBool *TypeName
	universeStr  *TypeName

	// Builtins
	universeClock *Builtin
	universePrint *Builtin
)

func init() {
	Universe = NewScope(nil, NoPos, NoPos, "universe")

	defPredeclaredTypes()
	defPredeclaredBuiltins()
}

// defPredeclaredTypes defines i32, f64, bool, str in Universe.
func defPredeclaredTypes() {
	for _, kind := range []BasicKind{I32, F64, Bool, Str} {
		typ := Typ[kind]
		obj := NewTypeName(NoPos, typ.name, typ)
		Universe.Insert(obj)

		switch kind {
		case I32:
			universeI32 = obj
		case F64:
			universeF64 = obj
		case Bool:
			universeBool = obj
		case Str:
			universeStr = obj
		}
	}
}

// defPredeclaredBuiltins defines clock and print in Universe.
func defPredeclaredBuiltins() {
	universeClock = NewBuiltin("clock", BuiltinClock)
	Universe.Insert(universeClock)

	universePrint = NewBuiltin("print", BuiltinPrint)
	Universe.Insert(universePrint)
}

// Predeclared type accessors
func UniverseI32() *TypeName  { return universeI32 }
func UniverseF64() *TypeName  { return universeF64 }
func UniverseBool() *TypeName { return universeBool }
func UniverseStr() *TypeName  { return universeStr }

// Predeclared builtin accessors
func UniverseClock() *Builtin { return universeClock }
func UniversePrint() *Builtin { return universePrint }
