// Package rtabi defines the contract between generated Go code and the
// runtime shim that is built alongside it.
package rtabi

import "strings"

// Runtime function names (must match the definitions in ShimSource)
const (
	// FnClock returns the seconds since the Unix epoch as float64.
	FnClock = "blaze_clock"

	// FnPrint writes a textual representation of its argument and a newline
	// to standard output.
	FnPrint = "blaze_print"
)

// ReservedPrefix is the prefix of every identifier owned by the shim.
// User identifiers with this prefix are renamed by the code generator.
const ReservedPrefix = "blaze_"

// Generated file names
const (
	// GeneratedHeader starts every generated Go file.
	GeneratedHeader = "// Code generated by blazec. DO NOT EDIT."

	// ShimSuffix is appended to the output base name for the shim file.
	ShimSuffix = "_rt.go"

	// SourceSuffix is appended to the output base name for the program.
	SourceSuffix = ".go"
)

// FuncSignature describes a runtime function's Go signature.
type FuncSignature struct {
	Name       string   // Function name
	ReturnType string   // Go result type ("" for none)
	ParamTypes []string // Go parameter types
}

// String returns the signature in Go syntax, e.g. "func blaze_clock() float64".
func (s FuncSignature) String() string {
	var b strings.Builder
	b.WriteString("func ")
	b.WriteString(s.Name)
	b.WriteByte('(')
	b.WriteString(strings.Join(s.ParamTypes, ", "))
	b.WriteByte(')')
	if s.ReturnType != "" {
		b.WriteByte(' ')
		b.WriteString(s.ReturnType)
	}
	return b.String()
}

// RuntimeFunctions returns the signatures of all runtime functions.
func RuntimeFunctions() []FuncSignature {
	return []FuncSignature{
		{Name: FnClock, ReturnType: GoTypeFloat},
		{Name: FnPrint, ParamTypes: []string{"any"}},
	}
}

// ShimSource is the Go source of the runtime shim. It is written next to
// the generated program and compiled with it.
//
// Imports are named with ReservedPrefix so they cannot collide with
// package-level names of the generated program.
//
// Floats print in shortest form without an exponent, so 1.0 prints as "1"
// and 0.1+0.2 as "0.30000000000000004".
const ShimSource = GeneratedHeader + `

package main

import (
	blaze_fmt "fmt"
	blaze_math "math"
	blaze_os "os"
	blaze_strconv "strconv"
	blaze_time "time"
)

func blaze_clock() float64 {
	return float64(blaze_time.Now().UnixNano()) / 1e9
}

func blaze_print(v any) {
	var s string
	switch v := v.(type) {
	case int32:
		s = blaze_strconv.FormatInt(int64(v), 10)
	case float64:
		switch {
		case blaze_math.IsInf(v, 1):
			s = "inf"
		case blaze_math.IsInf(v, -1):
			s = "-inf"
		default:
			s = blaze_strconv.FormatFloat(v, 'f', -1, 64)
		}
	case bool:
		s = blaze_strconv.FormatBool(v)
	case string:
		s = v
	default:
		s = blaze_fmt.Sprint(v)
	}
	blaze_os.Stdout.WriteString(s + "\n")
}
`
