// Package codegen generates Go source code from type-checked Blaze programs.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/blaze/internal/rtabi"
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types2"
)

// Config configures code generation.
type Config struct {
	// Parallelism bounds how many functions are generated at once.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Parallelism int
}

// internalErr is the panic value for generator inconsistencies.
type internalErr struct {
	msg string
}

func (e internalErr) Error() string {
	return "codegen: internal error: " + e.msg
}

// internalError aborts generation. It reports an impossible state in a
// checked program, never a user error.
func internalError(format string, args ...interface{}) {
	panic(internalErr{msg: fmt.Sprintf(format, args...)})
}

// generator translates declarations of one file.
// It only reads the file and the checker's info, so several generators
// may run concurrently on the same input.
type generator struct {
	info *types2.Info
	e    emitter
}

// Generate returns the gofmt-formatted Go source of a package main
// equivalent to file. The file must have been checked without errors,
// with info recorded by types2.Check.
//
// Function declarations are translated concurrently and joined in
// source order, so the output does not depend on Parallelism.
func Generate(file *syntax.File, info *types2.Info, conf *Config) (src []byte, err error) {
	if conf == nil {
		conf = &Config{}
	}
	n := conf.Parallelism
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	parts := make([][]byte, len(file.Decls))
	var g errgroup.Group
	g.SetLimit(n)
	for i, d := range file.Decls {
		g.Go(func() (err error) {
			defer recoverInternal(&err)
			gen := &generator{info: info}
			gen.decl(d)
			parts[i] = gen.e.buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(rtabi.GeneratedHeader)
	buf.WriteString("\n\npackage main\n")
	for _, p := range parts {
		buf.WriteByte('\n')
		buf.Write(p)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), internalErr{msg: "generated code does not parse: " + err.Error()}
	}
	return out, nil
}

// recoverInternal turns an internal error panic into an error result.
// Other panics are not ours and continue.
func recoverInternal(err *error) {
	if r := recover(); r != nil {
		ie, ok := r.(internalErr)
		if !ok {
			panic(r)
		}
		*err = ie
	}
}
