package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	I32  // 32-bit signed integer
	F64  // 64-bit float
	Bool // boolean
	Str  // immutable string
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	InfoBoolean BasicInfo = 1 << iota
	InfoInteger
	InfoFloat
	InfoString
	InfoNumeric = InfoInteger | InfoFloat
)

// Basic represents a primitive type: i32, f64, bool, str.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// Underlying implements Type.
func (b *Basic) Underlying() Type {
	return b
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] marks expressions whose type could not be determined.
var Typ = []*Basic{
	Invalid: {kind: Invalid, name: "invalid type"},
	I32:     {kind: I32, info: InfoInteger, name: "i32"},
	F64:     {kind: F64, info: InfoFloat, name: "f64"},
	Bool:    {kind: Bool, info: InfoBoolean, name: "bool"},
	Str:     {kind: Str, info: InfoString, name: "str"},
}
