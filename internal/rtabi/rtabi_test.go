package rtabi

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestShimSourceDefinesRuntimeFunctions(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "shim.go", ShimSource, 0)
	if err != nil {
		t.Fatalf("shim does not parse: %v", err)
	}
	if f.Name.Name != "main" {
		t.Errorf("package = %s, want main", f.Name.Name)
	}

	funcs := make(map[string]*ast.FuncDecl)
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			funcs[fd.Name.Name] = fd
		}
	}
	for _, sig := range RuntimeFunctions() {
		fd, ok := funcs[sig.Name]
		if !ok {
			t.Errorf("shim does not define %s", sig.Name)
			continue
		}
		if got := fd.Type.Params.NumFields(); got != len(sig.ParamTypes) {
			t.Errorf("%s: %d params, want %d", sig.Name, got, len(sig.ParamTypes))
		}
		hasResult := fd.Type.Results != nil && fd.Type.Results.NumFields() > 0
		if hasResult != (sig.ReturnType != "") {
			t.Errorf("%s: result mismatch", sig.Name)
		}
		if !strings.HasPrefix(sig.Name, ReservedPrefix) {
			t.Errorf("%s lacks the reserved prefix", sig.Name)
		}
	}
}

// Every file-scope name in the shim must use the reserved prefix, so no
// package-level declaration of a generated program can clash with it.
func TestShimSourceNamesReserved(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "shim.go", ShimSource, 0)
	if err != nil {
		t.Fatalf("shim does not parse: %v", err)
	}
	if len(f.Imports) == 0 {
		t.Fatal("shim has no imports")
	}
	for _, imp := range f.Imports {
		if imp.Name == nil {
			t.Errorf("import %s is not renamed", imp.Path.Value)
			continue
		}
		if !strings.HasPrefix(imp.Name.Name, ReservedPrefix) {
			t.Errorf("import %s is named %s, want the %s prefix", imp.Path.Value, imp.Name.Name, ReservedPrefix)
		}
	}
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && !strings.HasPrefix(fd.Name.Name, ReservedPrefix) {
			t.Errorf("func %s lacks the reserved prefix", fd.Name.Name)
		}
	}
}

func TestShimSourceHeader(t *testing.T) {
	if !strings.HasPrefix(ShimSource, GeneratedHeader+"\n") {
		t.Error("shim does not start with the generated header")
	}
}

func TestFuncSignatureString(t *testing.T) {
	tests := []struct {
		sig  FuncSignature
		want string
	}{
		{FuncSignature{Name: FnClock, ReturnType: GoTypeFloat}, "func blaze_clock() float64"},
		{FuncSignature{Name: FnPrint, ParamTypes: []string{"any"}}, "func blaze_print(any)"},
		{FuncSignature{Name: "f", ParamTypes: []string{GoTypeInt, GoTypeBool}, ReturnType: GoTypeString}, "func f(int32, bool) string"},
	}
	for _, tt := range tests {
		if got := tt.sig.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
