// Package main implements the Blaze compiler entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/you-not-fish/blaze/internal/build"
	"github.com/you-not-fish/blaze/internal/compiler"
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types2"
)

// Compiler flags
var (
	output       = flag.String("o", "", "Output executable (default: input name without .bl)")
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	noASI        = flag.Bool("no-asi", false, "Disable automatic semicolon insertion")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	emitTypedAST = flag.Bool("emit-typed-ast", false, "Output the type of every expression")
	emitGo       = flag.Bool("emit-go", false, "Output generated Go source")
	jobs         = flag.Int("j", 0, "Functions checked and generated in parallel (0: GOMAXPROCS)")
	goTool       = flag.String("go", build.GoTool(), "Go command used to build ($"+build.GoToolEnv+")")
	keep         = flag.Bool("keep", false, "Keep the generated .go files next to the output")
	watch        = flag.Bool("watch", false, "Rebuild whenever the input file changes")
	verbose      = flag.Bool("v", false, "Log build steps")
	doctor       = flag.Bool("doctor", false, "Check toolchain")
	version      = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

// Exit codes
const (
	exitOK         = 0
	exitFailure    = 1 // usage errors and compile diagnostics
	exitBuildError = 2 // the go toolchain failed on valid generated code
)

// SourceExt is the Blaze source file extension.
const SourceExt = ".bl"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Blaze Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: blazec [options] <file.bl> [output]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("blazec version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(exitOK)
	}

	if *doctor {
		os.Exit(runDoctor())
	}

	args := flag.Args()
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "error: expected one input file")
		fmt.Fprintln(os.Stderr, "usage: blazec [options] <file.bl> [output]")
		os.Exit(exitFailure)
	}

	filename := args[0]

	switch {
	case *emitTokens:
		os.Exit(runEmitTokens(filename))
	case *emitAST:
		os.Exit(runEmitAST(filename))
	case *emitTypedAST:
		os.Exit(runEmitTypedAST(filename))
	case *emitGo:
		os.Exit(runEmitGo(filename))
	}

	// Legacy form: blazec <script> [output]
	out := *output
	if out == "" && len(args) == 2 {
		out = args[1]
	}
	out = outputName(filename, out)

	if *watch {
		os.Exit(runWatch(filename, out))
	}
	os.Exit(runBuild(filename, out))
}

// outputName returns the executable path for filename. An explicit out
// wins; otherwise the source extension is dropped.
func outputName(filename, out string) string {
	if out != "" {
		return out
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == filename || base == "" {
		return filename + ".out"
	}
	return base
}

// config returns the compiler configuration selected by the flags.
func config(filename string) compiler.Config {
	return compiler.Config{
		Filename:    filename,
		DisableASI:  *noASI,
		Parallelism: *jobs,
	}
}

func newLogger(enabled bool) *log.Logger {
	if !enabled {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "blazec: ", 0)
}

func readSource(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.Wrap(err, "read source")
	}
	return string(b), nil
}

// printDiagnostics writes one diagnostic per line to stderr.
func printDiagnostics(diags compiler.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	defer f.Close()

	var errs []string
	errh := func(pos syntax.Pos, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	}

	s := syntax.NewScanner(filename, f, errh)
	if *noASI {
		s.SetASIEnabled(false)
	}

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		if s.Err() != nil {
			break
		}
		tok := s.Token()
		fmt.Printf("%-20s %-12s %s\n", s.Pos(), tok, formatLiteral(s.Literal()))
		if tok.IsEOF() {
			break
		}
	}

	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(errs) > 0 {
		return exitFailure
	}
	return exitOK
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	src, err := readSource(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	file, diags := compiler.Parse(src, config(filename))
	if diags != nil {
		printDiagnostics(diags)
		return exitFailure
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, file); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitFailure
		}
	case "text":
		syntax.Fprint(os.Stdout, file)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q (want text or json)\n", *astFormat)
		return exitFailure
	}
	return exitOK
}

// runEmitTypedAST type-checks the input file and prints the type of
// every expression.
func runEmitTypedAST(filename string) int {
	src, err := readSource(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	unit, diags := compiler.Analyze(src, config(filename))
	if diags != nil {
		printDiagnostics(diags)
		return exitFailure
	}
	if err := types2.FprintTypes(os.Stdout, unit.File, unit.Info); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// runEmitGo compiles the input file and prints the generated Go source.
func runEmitGo(filename string) int {
	src, err := readSource(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	out, diags := compiler.Compile(src, config(filename))
	if diags != nil {
		printDiagnostics(diags)
		return exitFailure
	}
	fmt.Print(out)
	return exitOK
}

// compileAndBuild compiles filename and builds the executable out.
// Compile failures are returned as compiler.Diagnostics, toolchain
// failures as a wrapped *build.ToolchainError.
func compileAndBuild(ctx context.Context, filename, out string, logger *log.Logger) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}
	logger.Printf("compiling %s", filename)
	gosrc, diags := compiler.Compile(src, config(filename))
	if diags != nil {
		return diags
	}
	opts := build.Options{GoTool: *goTool, Keep: *keep, Logger: logger}
	if err := build.Build(ctx, gosrc, out, opts); err != nil {
		return errors.Wrapf(err, "build %s", out)
	}
	return nil
}

// runBuild compiles the input file into an executable.
func runBuild(filename, out string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := compileAndBuild(ctx, filename, out, newLogger(*verbose))
	switch e := err.(type) {
	case nil:
		return exitOK
	case compiler.Diagnostics:
		printDiagnostics(e)
		return exitFailure
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if build.IsToolchainError(err) {
		return exitBuildError
	}
	return exitFailure
}

// runWatch rebuilds the executable every time the input file changes,
// until interrupted.
func runWatch(filename, out string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := newLogger(true)
	stepLogger := newLogger(*verbose)
	err := build.Watch(ctx, filename, logger, func() error {
		if err := compileAndBuild(ctx, filename, out, stepLogger); err != nil {
			return err
		}
		logger.Printf("built %s", out)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// runDoctor checks the toolchain and returns an exit code.
func runDoctor() int {
	fmt.Println("Blaze Toolchain Doctor")
	fmt.Println("======================")
	fmt.Println()

	allOk := true
	for _, p := range build.Doctor(context.Background(), *goTool) {
		fmt.Printf("%-8s %s", p.Name+":", truncate(p.Detail, 60))
		switch {
		case p.OK:
			fmt.Println(" ✓")
		case p.Required:
			fmt.Printf(" ✗ (%v)\n", p.Err)
			allOk = false
		default:
			fmt.Println(" (optional, not found)")
		}
	}

	fmt.Println()
	if allOk {
		fmt.Println("All required tools available!")
		return exitOK
	}

	fmt.Println("Some required tools are missing.")
	fmt.Printf("Install Go %s or point -go / $%s at a go command.\n", build.MinGoVersion, build.GoToolEnv)
	return exitFailure
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
