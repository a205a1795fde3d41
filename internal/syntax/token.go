// Package syntax implements lexical analysis for the Blaze programming language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of file

	// Literals
	_Name    // identifier: foo, bar, add_one
	_Literal // literal value (used with LitKind)

	// Operators (ordered by precedence, low to high)
	_Assign // =

	// Logical operators
	_OrOr   // ||
	_AndAnd // &&

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators (additive)
	_Add // +
	_Sub // -

	// Arithmetic operators (multiplicative)
	_Mul // *
	_Div // /
	_Rem // %

	// Unary operators
	_Not // !

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Colon  // :

	// Keywords
	_Break
	_Continue
	_Else
	_False
	_Fn
	_If
	_Let
	_Loop
	_Return
	_True
	_Type

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",

	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",

	_Break:    "break",
	_Continue: "continue",
	_Else:     "else",
	_False:    "false",
	_Fn:       "fn",
	_If:       "if",
	_Let:      "let",
	_Loop:     "loop",
	_Return:   "return",
	_True:     "true",
	_Type:     "type",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: ||
//	2: &&
//	3: == != < <= > >=
//	4: + -
//	5: * / %
func (t Token) Precedence() int {
	switch t {
	case _OrOr:
		return 1
	case _AndAnd:
		return 2
	case _Eql, _Neq, _Lss, _Leq, _Gtr, _Geq:
		return 3
	case _Add, _Sub:
		return 4
	case _Mul, _Div, _Rem:
		return 5
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Break && t <= _Type
}

// IsLiteral reports whether t is a literal token.
func (t Token) IsLiteral() bool {
	return t == _Literal || t == _True || t == _False
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Not
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported operator tokens for type checker and code generator access.
const (
	OrOr   Token = _OrOr   // ||
	AndAnd Token = _AndAnd // &&
	Eql    Token = _Eql    // ==
	Neq    Token = _Neq    // !=
	Lss    Token = _Lss    // <
	Leq    Token = _Leq    // <=
	Gtr    Token = _Gtr    // >
	Geq    Token = _Geq    // >=
	Add    Token = _Add    // +
	Sub    Token = _Sub    // -
	Mul    Token = _Mul    // *
	Div    Token = _Div    // /
	Rem    Token = _Rem    // %
	Not    Token = _Not    // !

	Break    Token = _Break
	Continue Token = _Continue
)

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123
	FloatLit                 // 3.14
	StringLit                // "hello"
	BoolLit                  // true, false (only in AST nodes)
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	FloatLit:  "float",
	StringLit: "string",
	BoolLit:   "bool",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= BoolLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
// Note: primitive type names (i32, f64, bool, str) and the builtins
// (clock, print) are NOT keywords - they are scanned as _Name and bound
// in the Universe scope.
var keywords = map[string]Token{
	"break":    _Break,
	"continue": _Continue,
	"else":     _Else,
	"false":    _False,
	"fn":       _Fn,
	"if":       _If,
	"let":      _Let,
	"loop":     _Loop,
	"return":   _Return,
	"true":     _True,
	"type":     _Type,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
