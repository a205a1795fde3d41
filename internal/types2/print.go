package types2

import (
	"fmt"
	"io"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// FprintTypes writes one line for every typed expression in file, in
// source order, describing its mode and type:
//
//	test.bl:2:18: x + 1: value of type i32
func FprintTypes(w io.Writer, file *syntax.File, info *Info) error {
	var err error
	syntax.Inspect(file, func(n syntax.Node) bool {
		if err != nil {
			return false
		}
		e, ok := n.(syntax.Expr)
		if !ok {
			return true
		}
		tv, ok := info.Types[e]
		if !ok {
			return true
		}
		_, err = fmt.Fprintf(w, "%s: %s: %s\n", e.Pos(), exprString(e), describe(tv))
		return true
	})
	return err
}

func describe(tv TypeAndValue) string {
	switch tv.mode {
	case novalue:
		return "no value"
	case builtin:
		return "builtin"
	case typexpr:
		return "type " + tv.Type.String()
	case constant_:
		return fmt.Sprintf("constant %s of type %s", tv.Value, tv.Type)
	}
	return fmt.Sprintf("%s of type %s", operandModeNames[tv.mode], tv.Type)
}
