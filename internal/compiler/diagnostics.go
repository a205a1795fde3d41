package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types2"
)

// DiagnosticKind classifies a diagnostic by the stage that produced it.
type DiagnosticKind int

const (
	LexError         DiagnosticKind = iota // unrecognized character or unterminated string
	SyntaxError                            // token stream does not match the grammar
	TypeError                              // resolution or type checking failure
	ControlFlowError                       // break or continue outside a loop
	InternalError                          // generator defect; never a user error
)

var kindNames = [...]string{
	LexError:         "LexError",
	SyntaxError:      "SyntaxError",
	TypeError:        "TypeError",
	ControlFlowError: "ControlFlowError",
	InternalError:    "InternalError",
}

func (k DiagnosticKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is one positioned compile error.
type Diagnostic struct {
	Kind DiagnosticKind
	Pos  syntax.Pos
	Msg  string
}

func (d Diagnostic) String() string {
	return d.Pos.String() + ": " + d.Msg
}

// Diagnostics is the error result of a failed compile.
// A nil Diagnostics means success.
type Diagnostics []Diagnostic

// Error formats the diagnostics one per line.
func (ds Diagnostics) Error() string {
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	return b.String()
}

// Err returns ds as an error, or nil if ds is empty.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}

// Sort orders the diagnostics by position. Diagnostics at the same
// position keep their relative order.
func (ds Diagnostics) Sort() {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Pos.Before(ds[j].Pos)
	})
}

// Has reports whether ds contains a diagnostic of kind k.
func (ds Diagnostics) Has(k DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == k {
			return true
		}
	}
	return false
}

// diagnose converts a stage error into a diagnostic.
func diagnose(err error) Diagnostic {
	switch e := err.(type) {
	case *syntax.LexError:
		return Diagnostic{Kind: LexError, Pos: e.Pos, Msg: e.Msg}
	case *syntax.SyntaxError:
		return Diagnostic{Kind: SyntaxError, Pos: e.Pos, Msg: e.Message()}
	case *types2.Error:
		kind := TypeError
		if e.IsControlFlow() {
			kind = ControlFlowError
		}
		return Diagnostic{Kind: kind, Pos: e.Pos, Msg: e.Msg}
	}
	return Diagnostic{Kind: InternalError, Msg: err.Error()}
}
