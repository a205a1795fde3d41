// Package compiler runs the Blaze pipeline: scanning, parsing, type
// checking and Go code generation.
package compiler

import (
	"strings"

	"github.com/you-not-fish/blaze/internal/codegen"
	"github.com/you-not-fish/blaze/internal/syntax"
	"github.com/you-not-fish/blaze/internal/types"
	"github.com/you-not-fish/blaze/internal/types2"
)

// DefaultFilename names the source in positions when Config.Filename is empty.
const DefaultFilename = "<input>"

// Config configures one compilation.
type Config struct {
	// Filename is used in positions only; the source is passed as text.
	Filename string

	// DisableASI turns off automatic semicolon insertion, so every
	// statement must end in an explicit ';'.
	DisableASI bool

	// Parallelism bounds how many function bodies are checked and
	// generated at once. Zero or negative means runtime.GOMAXPROCS(0).
	Parallelism int
}

func (conf Config) filename() string {
	if conf.Filename == "" {
		return DefaultFilename
	}
	return conf.Filename
}

// Unit is a parsed and type-checked program.
type Unit struct {
	File    *syntax.File
	Info    *types2.Info
	Package *types.Package
}

// Tokenize scans src into tokens. On a lexical error the tokens read so
// far are returned with a single LexError diagnostic.
func Tokenize(src string, conf Config) ([]syntax.Lexeme, Diagnostics) {
	toks, err := syntax.Tokenize(conf.filename(), strings.NewReader(src))
	if err != nil {
		return toks, Diagnostics{diagnose(err)}
	}
	return toks, nil
}

// Parse scans and parses src. Both stages stop at their first error.
func Parse(src string, conf Config) (*syntax.File, Diagnostics) {
	file, err := syntax.ParseFile(conf.filename(), strings.NewReader(src), !conf.DisableASI)
	if err != nil {
		return nil, Diagnostics{diagnose(err)}
	}
	return file, nil
}

// Analyze parses and type-checks src. Type errors from different
// functions are all reported; a function body contributes at most one.
func Analyze(src string, conf Config) (*Unit, Diagnostics) {
	file, diags := Parse(src, conf)
	if diags != nil {
		return nil, diags
	}

	info := types2.NewInfo()
	tconf := &types2.Config{
		Parallelism: conf.Parallelism,
		Error: func(err error) {
			diags = append(diags, diagnose(err))
		},
	}
	pkg, _ := types2.Check(conf.filename(), file, tconf, info)
	if len(diags) > 0 {
		diags.Sort()
		return nil, diags
	}
	return &Unit{File: file, Info: info, Package: pkg}, nil
}

// Compile translates src into the text of a Go package main. The result
// calls the runtime shim in rtabi.ShimSource and must be built with it.
func Compile(src string, conf Config) (string, Diagnostics) {
	unit, diags := Analyze(src, conf)
	if diags != nil {
		return "", diags
	}
	return Generate(unit, conf)
}

// Generate emits Go source for an analyzed unit.
func Generate(unit *Unit, conf Config) (string, Diagnostics) {
	out, err := codegen.Generate(unit.File, unit.Info, &codegen.Config{Parallelism: conf.Parallelism})
	if err != nil {
		d := diagnose(err)
		d.Pos = syntax.NewPos(conf.filename(), 1, 1)
		return "", Diagnostics{d}
	}
	return string(out), nil
}
