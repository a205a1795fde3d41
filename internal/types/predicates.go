package types

// Identical reports whether x and y are identical types.
// Blaze types are structural, so two function types are identical when
// their parameter and result types are.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind && x.kind != Invalid
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalFuncs(x, y)
		}
	}
	return false
}

func identicalFuncs(x, y *Func) bool {
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !Identical(x.params[i], y.params[i]) {
			return false
		}
	}

	if (x.result == nil) != (y.result == nil) {
		return false
	}
	return x.result == nil || Identical(x.result, y.result)
}

func basicInfo(T Type) BasicInfo {
	if b, ok := T.(*Basic); ok {
		return b.info
	}
	return 0
}

// IsBoolean reports whether T is bool.
func IsBoolean(T Type) bool { return basicInfo(T)&InfoBoolean != 0 }

// IsInteger reports whether T is i32.
func IsInteger(T Type) bool { return basicInfo(T)&InfoInteger != 0 }

// IsFloat reports whether T is f64.
func IsFloat(T Type) bool { return basicInfo(T)&InfoFloat != 0 }

// IsNumeric reports whether T is i32 or f64.
func IsNumeric(T Type) bool { return basicInfo(T)&InfoNumeric != 0 }

// IsString reports whether T is str.
func IsString(T Type) bool { return basicInfo(T)&InfoString != 0 }

// IsFunc reports whether T is a function type.
func IsFunc(T Type) bool {
	_, ok := T.(*Func)
	return ok
}

// IsValid reports whether T is a known, valid type.
func IsValid(T Type) bool {
	if T == nil {
		return false
	}
	b, ok := T.(*Basic)
	return !ok || b.kind != Invalid
}

// Comparable reports whether values of type T can be compared with == or !=.
// Function values are not comparable.
func Comparable(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.kind != Invalid
}

// Ordered reports whether values of type T can be ordered with <, <=, >, >=.
func Ordered(T Type) bool {
	return IsNumeric(T)
}
