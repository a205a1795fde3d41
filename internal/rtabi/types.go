package rtabi

// Go type names for the primitive types
const (
	GoTypeInt    = "int32"
	GoTypeFloat  = "float64"
	GoTypeBool   = "bool"
	GoTypeString = "string"
)
