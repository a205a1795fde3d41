package types

import "testing"

func TestIdentical(t *testing.T) {
	binop := NewFunc([]Type{Typ[I32], Typ[I32]}, Typ[I32])
	tests := []struct {
		name string
		x, y Type
		want bool
	}{
		{"same_basic", Typ[I32], Typ[I32], true},
		{"diff_basic", Typ[I32], Typ[F64], false},
		{"bool_str", Typ[Bool], Typ[Str], false},
		{"invalid", Typ[Invalid], Typ[Invalid], true}, // same pointer
		{"nil_left", nil, Typ[I32], false},
		{"nil_right", Typ[I32], nil, false},
		{"same_func", binop, binop, true},
		{"struct_func", binop, NewFunc([]Type{Typ[I32], Typ[I32]}, Typ[I32]), true},
		{"func_param_count", binop, NewFunc([]Type{Typ[I32]}, Typ[I32]), false},
		{"func_param_type", binop, NewFunc([]Type{Typ[I32], Typ[F64]}, Typ[I32]), false},
		{"func_result_type", binop, NewFunc([]Type{Typ[I32], Typ[I32]}, Typ[F64]), false},
		{"func_result_missing", binop, NewFunc([]Type{Typ[I32], Typ[I32]}, nil), false},
		{"func_no_result", NewFunc(nil, nil), NewFunc(nil, nil), true},
		{"func_vs_basic", binop, Typ[I32], false},
		{"nested_func",
			NewFunc([]Type{NewFunc(nil, Typ[I32])}, nil),
			NewFunc([]Type{NewFunc(nil, Typ[I32])}, nil), true},
		{"nested_func_diff",
			NewFunc([]Type{NewFunc(nil, Typ[I32])}, nil),
			NewFunc([]Type{NewFunc(nil, Typ[F64])}, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.x, tt.y); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := Identical(tt.y, tt.x); got != tt.want {
				t.Errorf("Identical is not symmetric for %v, %v", tt.x, tt.y)
			}
		})
	}
}

func TestIdenticalInvalidDistinct(t *testing.T) {
	// two distinct invalid types never match
	other := &Basic{kind: Invalid, name: "invalid type"}
	if Identical(Typ[Invalid], other) {
		t.Error("distinct invalid types reported identical")
	}
}

func TestPredicates(t *testing.T) {
	fn := NewFunc(nil, nil)
	tests := []struct {
		typ                                           Type
		boolean, integer, float, numeric, str, isFunc bool
		comparable, ordered, valid                    bool
	}{
		{Typ[I32], false, true, false, true, false, false, true, true, true},
		{Typ[F64], false, false, true, true, false, false, true, true, true},
		{Typ[Bool], true, false, false, false, false, false, true, false, true},
		{Typ[Str], false, false, false, false, true, false, true, false, true},
		{fn, false, false, false, false, false, true, false, false, true},
		{Typ[Invalid], false, false, false, false, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			check := func(name string, got, want bool) {
				if got != want {
					t.Errorf("%s(%v) = %v, want %v", name, tt.typ, got, want)
				}
			}
			check("IsBoolean", IsBoolean(tt.typ), tt.boolean)
			check("IsInteger", IsInteger(tt.typ), tt.integer)
			check("IsFloat", IsFloat(tt.typ), tt.float)
			check("IsNumeric", IsNumeric(tt.typ), tt.numeric)
			check("IsString", IsString(tt.typ), tt.str)
			check("IsFunc", IsFunc(tt.typ), tt.isFunc)
			check("Comparable", Comparable(tt.typ), tt.comparable)
			check("Ordered", Ordered(tt.typ), tt.ordered)
			check("IsValid", IsValid(tt.typ), tt.valid)
		})
	}

	if IsValid(nil) {
		t.Error("IsValid(nil) = true")
	}
}
