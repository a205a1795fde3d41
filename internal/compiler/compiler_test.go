package compiler

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/you-not-fish/blaze/internal/rtabi"
	"github.com/you-not-fish/blaze/internal/syntax"
)

func TestCompileHelloWorld(t *testing.T) {
	out, diags := Compile(`fn main() { print("Hello, world!") }`, Config{})
	if diags != nil {
		t.Fatalf("unexpected diagnostics:\n%v", diags)
	}
	for _, want := range []string{
		"package main",
		"func main() {",
		rtabi.FnPrint + `("Hello, world!")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "out.go", out, 0); err != nil {
		t.Errorf("output does not parse as Go: %v", err)
	}
}

func TestCompileDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind DiagnosticKind
		pos  string
		msg  string
	}{
		{
			name: "lex",
			src:  "fn main() { @ }",
			kind: LexError,
			pos:  "test.bl:1:13",
			msg:  "unexpected character '@'",
		},
		{
			name: "unterminated string",
			src:  "fn main() {\n\tprint(\"abc\n}",
			kind: LexError,
			pos:  "test.bl:2:8",
			msg:  "string not terminated",
		},
		{
			name: "syntax",
			src:  "fn main() { let }",
			kind: SyntaxError,
			pos:  "test.bl:1:17",
		},
		{
			name: "undefined",
			src:  "fn main() {\n\tprint(x)\n}",
			kind: TypeError,
			pos:  "test.bl:2:8",
			msg:  "undefined: x",
		},
		{
			name: "arity",
			src:  "fn f(x: i32, y: i32): i32 { return x }\nfn main() { f(1) }",
			kind: TypeError,
			pos:  "test.bl:2:13",
			msg:  "wrong number of arguments in call to f: got 1, want 2",
		},
		{
			name: "break outside loop",
			src:  "fn main() {\n\tbreak\n}",
			kind: ControlFlowError,
			pos:  "test.bl:2:2",
			msg:  "break is not in a loop",
		},
		{
			name: "continue outside loop",
			src:  "fn main() {\n\tif true {\n\t\tcontinue\n\t}\n}",
			kind: ControlFlowError,
			pos:  "test.bl:3:3",
			msg:  "continue is not in a loop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diags := Compile(tt.src, Config{Filename: "test.bl"})
			if out != "" {
				t.Errorf("expected no output, got:\n%s", out)
			}
			if len(diags) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d:\n%v", len(diags), diags)
			}
			d := diags[0]
			if d.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", d.Kind, tt.kind)
			}
			if got := d.Pos.String(); got != tt.pos {
				t.Errorf("pos = %s, want %s", got, tt.pos)
			}
			if tt.msg != "" && d.Msg != tt.msg {
				t.Errorf("msg = %q, want %q", d.Msg, tt.msg)
			}
		})
	}
}

func TestDiagnosticsSorted(t *testing.T) {
	src := `fn a() {
	let x: i32 = true
}
fn b() {}
fn b() {}
fn c() {
	break
}
`
	_, diags := Analyze(src, Config{Filename: "test.bl"})
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d:\n%v", len(diags), diags)
	}
	wantLines := []uint32{2, 5, 7}
	wantKinds := []DiagnosticKind{TypeError, TypeError, ControlFlowError}
	for i, d := range diags {
		if d.Pos.Line() != wantLines[i] {
			t.Errorf("diagnostic %d at line %d, want %d", i, d.Pos.Line(), wantLines[i])
		}
		if d.Kind != wantKinds[i] {
			t.Errorf("diagnostic %d kind %v, want %v", i, d.Kind, wantKinds[i])
		}
	}
	if !diags.Has(ControlFlowError) || diags.Has(LexError) {
		t.Errorf("Has reports wrong kinds for %v", diags)
	}
}

func TestDiagnosticsError(t *testing.T) {
	ds := Diagnostics{
		{Kind: TypeError, Pos: syntax.NewPos("a.bl", 3, 1), Msg: "second"},
		{Kind: LexError, Pos: syntax.NewPos("a.bl", 1, 5), Msg: "first"},
	}
	ds.Sort()
	want := "a.bl:1:5: first\na.bl:3:1: second"
	if got := ds.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if Diagnostics(nil).Err() != nil {
		t.Error("empty diagnostics should have a nil Err")
	}
	if ds.Err() == nil {
		t.Error("non-empty diagnostics should have a non-nil Err")
	}
}

func TestDisableASI(t *testing.T) {
	src := "fn main() {\n\tprint(1)\n\tprint(2)\n}"
	if _, diags := Compile(src, Config{}); diags != nil {
		t.Fatalf("with ASI: unexpected diagnostics:\n%v", diags)
	}
	_, diags := Compile(src, Config{DisableASI: true})
	if len(diags) != 1 || diags[0].Kind != SyntaxError {
		t.Fatalf("without ASI: expected one SyntaxError, got %v", diags)
	}

	explicit := "fn main() {\n\tprint(1);\n\tprint(2);\n}"
	if _, diags := Compile(explicit, Config{DisableASI: true}); diags != nil {
		t.Fatalf("explicit semicolons: unexpected diagnostics:\n%v", diags)
	}
}

func TestDefaultFilename(t *testing.T) {
	_, diags := Compile("fn main() { x }", Config{})
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if got := diags[0].Pos.Filename(); got != DefaultFilename {
		t.Errorf("filename = %q, want %q", got, DefaultFilename)
	}
}

func TestTokenize(t *testing.T) {
	toks, diags := Tokenize("fn main() {}", Config{})
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	// fn main ( ) { } and EOF
	if len(toks) != 7 {
		t.Fatalf("expected 7 tokens, got %d: %v", len(toks), toks)
	}
	if !toks[len(toks)-1].Tok.IsEOF() {
		t.Errorf("last token = %v, want EOF", toks[len(toks)-1].Tok)
	}

	toks, diags = Tokenize("fn $", Config{})
	if len(diags) != 1 || diags[0].Kind != LexError {
		t.Fatalf("expected one LexError, got %v", diags)
	}
	if len(toks) != 1 {
		t.Errorf("expected the tokens before the error, got %v", toks)
	}
}

func TestCompileDeterministic(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "fn f%d(x: i32): i32 { return x * %d }\n", i, i)
	}
	b.WriteString("fn main() { print(f19(1)) }\n")
	src := b.String()

	first, diags := Compile(src, Config{Parallelism: 1})
	if diags != nil {
		t.Fatalf("unexpected diagnostics:\n%v", diags)
	}
	for _, n := range []int{2, 8, 0} {
		out, diags := Compile(src, Config{Parallelism: n})
		if diags != nil {
			t.Fatalf("parallelism %d: unexpected diagnostics:\n%v", n, diags)
		}
		if out != first {
			t.Errorf("parallelism %d: output differs", n)
		}
	}
}

func TestDiagnosticKindString(t *testing.T) {
	if got := ControlFlowError.String(); got != "ControlFlowError" {
		t.Errorf("got %q", got)
	}
	if got := DiagnosticKind(42).String(); got != "DiagnosticKind(42)" {
		t.Errorf("got %q", got)
	}
}

func FuzzCompile(f *testing.F) {
	seeds := []string{
		`fn main() { print("Hello, world!") }`,
		"type F = fn(i32): i32\nfn id(x: i32): i32 { return x }\nfn get(): F { return id }\nfn main() { print(get()(3)) }",
		"fn main() { let i: i32 = 0\n loop { if i > 3 { break } i = i + 1 } }",
		"fn main() { let x: f64 = -1.5 * 2.0\n print(x) }",
		"fn main() { print(1 / 0) }",
		"fn main() { print(2147483648) }",
		"fn main() { print(!true || false && 1 < 2) }",
		"fn f(): i32 { loop { } }\nfn main() {}",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		out, diags := Compile(src, Config{Filename: "fuzz.bl"})
		if diags != nil {
			if out != "" {
				t.Fatalf("output together with diagnostics for %q", src)
			}
			if diags.Has(InternalError) {
				t.Fatalf("internal error for %q: %v", src, diags)
			}
			return
		}
		if _, err := parser.ParseFile(token.NewFileSet(), "out.go", out, 0); err != nil {
			t.Fatalf("generated code for %q does not parse: %v\n%s", src, err, out)
		}
	})
}
