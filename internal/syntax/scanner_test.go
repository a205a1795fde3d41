package syntax

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		// Identifiers (ASI inserts ; at EOF for _Name)
		{"ident", "foo", []Token{_Name, _Semi}, []string{"foo", "EOF"}},
		{"ident_underscore", "_bar", []Token{_Name, _Semi}, []string{"_bar", "EOF"}},
		{"ident_mixed", "foo123", []Token{_Name, _Semi}, []string{"foo123", "EOF"}},
		{"ident_caps", "FooBar", []Token{_Name, _Semi}, []string{"FooBar", "EOF"}},

		// Primitive type names and builtins are plain names
		{"prim_i32", "i32", []Token{_Name, _Semi}, []string{"i32", "EOF"}},
		{"prim_f64", "f64", []Token{_Name, _Semi}, []string{"f64", "EOF"}},
		{"prim_bool", "bool", []Token{_Name, _Semi}, []string{"bool", "EOF"}},
		{"builtin_print", "print", []Token{_Name, _Semi}, []string{"print", "EOF"}},

		// Number literals
		{"int_dec", "123", []Token{_Literal, _Semi}, []string{"123", "EOF"}},
		{"int_zero", "0", []Token{_Literal, _Semi}, []string{"0", "EOF"}},
		{"int_leading_zero", "007", []Token{_Literal, _Semi}, []string{"007", "EOF"}},
		{"float_simple", "3.14", []Token{_Literal, _Semi}, []string{"3.14", "EOF"}},
		{"float_zero", "0.0", []Token{_Literal, _Semi}, []string{"0.0", "EOF"}},
		{"no_exponent", "1e5", []Token{_Literal, _Name, _Semi}, []string{"1", "e5", "EOF"}},

		// String literals (raw content, no escapes)
		{"string_simple", `"hello"`, []Token{_Literal, _Semi}, []string{"hello", "EOF"}},
		{"string_empty", `""`, []Token{_Literal, _Semi}, []string{"", "EOF"}},
		{"string_backslash", `"a\nb"`, []Token{_Literal, _Semi}, []string{`a\nb`, "EOF"}},
		{"string_multiline", "\"a\nb\"", []Token{_Literal, _Semi}, []string{"a\nb", "EOF"}},
		{"string_spaces", `"Hello, world!"`, []Token{_Literal, _Semi}, []string{"Hello, world!", "EOF"}},

		// Single-char operators (no ASI for operators)
		{"op_add", "+", []Token{_Add}, []string{"+"}},
		{"op_sub", "-", []Token{_Sub}, []string{"-"}},
		{"op_mul", "*", []Token{_Mul}, []string{"*"}},
		{"op_div", "/", []Token{_Div}, []string{"/"}},
		{"op_rem", "%", []Token{_Rem}, []string{"%"}},
		{"op_not", "!", []Token{_Not}, []string{"!"}},
		{"op_lss", "<", []Token{_Lss}, []string{"<"}},
		{"op_gtr", ">", []Token{_Gtr}, []string{">"}},
		{"op_assign", "=", []Token{_Assign}, []string{"="}},
		{"op_colon", ":", []Token{_Colon}, []string{":"}},

		// Two-char operators are preferred over their one-char prefix
		{"op_andand", "&&", []Token{_AndAnd}, []string{"&&"}},
		{"op_oror", "||", []Token{_OrOr}, []string{"||"}},
		{"op_eql", "==", []Token{_Eql}, []string{"=="}},
		{"op_neq", "!=", []Token{_Neq}, []string{"!="}},
		{"op_leq", "<=", []Token{_Leq}, []string{"<="}},
		{"op_geq", ">=", []Token{_Geq}, []string{">="}},
		{"op_eql_assign", "===", []Token{_Eql, _Assign}, []string{"==", "="}},

		// Delimiters (ASI only after ))
		{"delim_lparen", "(", []Token{_Lparen}, []string{"("}},
		{"delim_rparen", ")", []Token{_Rparen, _Semi}, []string{")", "EOF"}},
		{"delim_lbrace", "{", []Token{_Lbrace}, []string{"{"}},
		{"delim_rbrace", "}", []Token{_Rbrace}, []string{"}"}},
		{"delim_comma", ",", []Token{_Comma}, []string{","}},
		{"delim_semi", ";", []Token{_Semi}, []string{";"}},

		// Keywords (ASI for break, continue, return, true, false)
		{"kw_break", "break", []Token{_Break, _Semi}, []string{"break", "EOF"}},
		{"kw_continue", "continue", []Token{_Continue, _Semi}, []string{"continue", "EOF"}},
		{"kw_else", "else", []Token{_Else}, []string{"else"}},
		{"kw_fn", "fn", []Token{_Fn}, []string{"fn"}},
		{"kw_if", "if", []Token{_If}, []string{"if"}},
		{"kw_let", "let", []Token{_Let}, []string{"let"}},
		{"kw_loop", "loop", []Token{_Loop}, []string{"loop"}},
		{"kw_return", "return", []Token{_Return, _Semi}, []string{"return", "EOF"}},
		{"kw_type", "type", []Token{_Type}, []string{"type"}},
		{"kw_true", "true", []Token{_True, _Semi}, []string{"true", "EOF"}},
		{"kw_false", "false", []Token{_False, _Semi}, []string{"false", "EOF"}},

		// Compound expressions (last token triggers ASI)
		{"expr_add", "1 + 2", []Token{_Literal, _Add, _Literal, _Semi}, []string{"1", "+", "2", "EOF"}},
		{"expr_call", "foo()", []Token{_Name, _Lparen, _Rparen, _Semi}, []string{"foo", "(", ")", "EOF"}},
		{"expr_chain", "f()()", []Token{_Name, _Lparen, _Rparen, _Lparen, _Rparen, _Semi}, nil},
		{"expr_compare", "a == b", []Token{_Name, _Eql, _Name, _Semi}, []string{"a", "==", "b", "EOF"}},
		{"expr_logical", "a && b || c", []Token{_Name, _AndAnd, _Name, _OrOr, _Name, _Semi}, nil},
		{"fn_type", "fn(i32): i32", []Token{_Fn, _Lparen, _Name, _Rparen, _Colon, _Name, _Semi}, nil},

		// Comments
		{"comment_skip", "a // comment\nb", []Token{_Name, _Semi, _Name, _Semi}, []string{"a", "newline", "b", "EOF"}},
		{"comment_eof", "a // comment", []Token{_Name, _Semi}, []string{"a", "EOF"}},
		{"comment_only", "// just a comment", nil, nil},
		{"comment_div", "a / b // c", []Token{_Name, _Div, _Name, _Semi}, nil},

		// Whitespace handling
		{"whitespace_spaces", "  a  ", []Token{_Name, _Semi}, []string{"a", "EOF"}},
		{"whitespace_tabs", "\ta\t", []Token{_Name, _Semi}, []string{"a", "EOF"}},
		{"whitespace_crlf", "a\r\nb", []Token{_Name, _Semi, _Name, _Semi}, []string{"a", "newline", "b", "EOF"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			for i, wantTok := range tt.tokens {
				s.Next()
				if s.Token() != wantTok {
					t.Errorf("token %d: got %v, want %v", i, s.Token(), wantTok)
				}
				if tt.lits != nil && s.Literal() != tt.lits[i] {
					t.Errorf("literal %d: got %q, want %q", i, s.Literal(), tt.lits[i])
				}
			}
			s.Next()
			if !s.Token().IsEOF() {
				t.Errorf("expected EOF, got %v %q", s.Token(), s.Literal())
			}
			if err := s.Err(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestScanLitKind(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
	}{
		{"123", IntLit},
		{"0", IntLit},
		{"3.14", FloatLit},
		{"10.0", FloatLit},
		{`"hello"`, StringLit},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			s.Next()
			if s.Token() != _Literal {
				t.Fatalf("expected _Literal, got %v", s.Token())
			}
			if s.LitKind() != tt.kind {
				t.Errorf("LitKind = %v, want %v", s.LitKind(), tt.kind)
			}
		})
	}
}

func TestASI(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		{
			"ident_newline",
			"foo\nbar",
			[]Token{_Name, _Semi, _Name},
			[]string{"foo", "newline", "bar"},
		},
		{
			"literal_newline",
			"123\n456",
			[]Token{_Literal, _Semi, _Literal},
			[]string{"123", "newline", "456"},
		},
		{
			"return_newline",
			"return\n1",
			[]Token{_Return, _Semi, _Literal},
			[]string{"return", "newline", "1"},
		},
		{
			"break_newline",
			"break\nfoo",
			[]Token{_Break, _Semi, _Name},
			[]string{"break", "newline", "foo"},
		},
		{
			"true_newline",
			"true\nfoo",
			[]Token{_True, _Semi, _Name},
			[]string{"true", "newline", "foo"},
		},
		{
			"rparen_newline",
			"foo()\nbar",
			[]Token{_Name, _Lparen, _Rparen, _Semi, _Name},
			[]string{"foo", "(", ")", "newline", "bar"},
		},
		// } never inserts, so else may start the next line
		{
			"rbrace_newline_else",
			"}\nelse",
			[]Token{_Rbrace, _Else},
			[]string{"}", "else"},
		},
		// newlines inside parentheses never end a statement
		{
			"inside_parens",
			"foo(\n1,\n2\n)\nbar",
			[]Token{_Name, _Lparen, _Literal, _Comma, _Literal, _Rparen, _Semi, _Name},
			[]string{"foo", "(", "1", ",", "2", ")", "newline", "bar"},
		},
		{
			"nested_parens",
			"((a\n))\nb",
			[]Token{_Lparen, _Lparen, _Name, _Rparen, _Rparen, _Semi, _Name},
			[]string{"(", "(", "a", ")", ")", "newline", "b"},
		},
		{
			"add_newline",
			"1 +\n2",
			[]Token{_Literal, _Add, _Literal},
			[]string{"1", "+", "2"},
		},
		{
			"assign_newline",
			"x =\n1",
			[]Token{_Name, _Assign, _Literal},
			[]string{"x", "=", "1"},
		},
		{
			"ident_eof",
			"foo",
			[]Token{_Name, _Semi},
			[]string{"foo", "EOF"},
		},
		{
			"multiple_newlines",
			"foo\n\n\nbar",
			[]Token{_Name, _Semi, _Name},
			[]string{"foo", "newline", "bar"},
		},
		{
			"explicit_semi",
			"foo;\nbar",
			[]Token{_Semi, _Name},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			if tt.name == "explicit_semi" {
				s.Next() // foo
			}
			for i, wantTok := range tt.tokens {
				s.Next()
				if s.Token() != wantTok {
					t.Errorf("token %d: got %v, want %v", i, s.Token(), wantTok)
				}
				if tt.lits != nil && s.Literal() != tt.lits[i] {
					t.Errorf("literal %d: got %q, want %q", i, s.Literal(), tt.lits[i])
				}
			}
		})
	}
}

func TestASIDisabled(t *testing.T) {
	s := NewScanner("test", strings.NewReader("foo\nbar"), nil)
	s.SetASIEnabled(false)

	// Without ASI, newlines are just skipped
	s.Next()
	if s.Token() != _Name || s.Literal() != "foo" {
		t.Errorf("got %v %q, want NAME foo", s.Token(), s.Literal())
	}

	s.Next()
	if s.Token() != _Name || s.Literal() != "bar" {
		t.Errorf("got %v %q, want NAME bar", s.Token(), s.Literal())
	}

	s.Next()
	if !s.Token().IsEOF() {
		t.Errorf("expected EOF, got %v", s.Token())
	}
}

func TestPosition(t *testing.T) {
	src := `fn main() {
    let x: i32 = 123
}`

	expected := []struct {
		tok  Token
		line uint32
		col  uint32
	}{
		{_Fn, 1, 1},
		{_Name, 1, 4},     // main
		{_Lparen, 1, 8},   // (
		{_Rparen, 1, 9},   // )
		{_Lbrace, 1, 11},  // {
		{_Let, 2, 5},      // let
		{_Name, 2, 9},     // x
		{_Colon, 2, 10},   // :
		{_Name, 2, 12},    // i32
		{_Assign, 2, 16},  // =
		{_Literal, 2, 18}, // 123
		{_Semi, 2, 21},    // ASI at newline
		{_Rbrace, 3, 1},   // }
		{_EOF, 3, 2},
	}

	s := NewScanner("test.bl", strings.NewReader(src), nil)
	for i, exp := range expected {
		s.Next()
		pos := s.Pos()
		if s.Token() != exp.tok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), exp.tok)
		}
		if pos.Line() != exp.line || pos.Col() != exp.col {
			t.Errorf("token %d (%v): pos = %d:%d, want %d:%d",
				i, s.Token(), pos.Line(), pos.Col(), exp.line, exp.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantErr  string
		wantChar rune
		line     uint32
		col      uint32
	}{
		{"bad_char", "@", "unexpected character '@'", '@', 1, 1},
		{"bad_char_hash", "x\n  #", "unexpected character '#'", '#', 2, 3},
		{"bad_char_dollar", "a $", "unexpected character '$'", '$', 1, 3},
		{"single_amp", "a & b", "unexpected character '&'", '&', 1, 3},
		{"single_bar", "a | b", "unexpected character '|'", '|', 1, 3},
		{"trailing_dot", "3.", "unexpected character '.'", '.', 1, 2},
		{"bracket", "a[0]", "unexpected character '['", '[', 1, 2},
		{"unterminated_string", `x = "hello`, "string not terminated", '"', 1, 5},
		{"non_ascii_ident", "é", "unexpected character 'é'", 'é', 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msgs []string
			errh := func(pos Pos, msg string) {
				msgs = append(msgs, msg)
			}
			s := NewScanner("test", strings.NewReader(tt.src), errh)
			for i := 0; i < 20; i++ {
				s.Next()
				if s.Token().IsEOF() {
					break
				}
			}
			if len(msgs) != 1 {
				t.Fatalf("got %d reported errors %q, want exactly 1", len(msgs), msgs)
			}
			var lerr *LexError
			if !errors.As(s.Err(), &lerr) {
				t.Fatalf("Err() = %v, want *LexError", s.Err())
			}
			if lerr.Msg != tt.wantErr {
				t.Errorf("Msg = %q, want %q", lerr.Msg, tt.wantErr)
			}
			if lerr.Char != tt.wantChar {
				t.Errorf("Char = %q, want %q", lerr.Char, tt.wantChar)
			}
			if lerr.Pos.Line() != tt.line || lerr.Pos.Col() != tt.col {
				t.Errorf("Pos = %v, want %d:%d", lerr.Pos, tt.line, tt.col)
			}
		})
	}
}

func TestScanStopsAfterError(t *testing.T) {
	s := NewScanner("test", strings.NewReader("a @ b c d"), nil)
	s.Next() // a
	for i := 0; i < 3; i++ {
		s.Next()
		if !s.Token().IsEOF() {
			t.Fatalf("call %d: got %v %q after error, want EOF", i, s.Token(), s.Literal())
		}
	}
	if s.Err() == nil {
		t.Fatal("expected an error")
	}
}

func TestTokenize(t *testing.T) {
	src := `// mutual recursion
fn even(n: i32): bool {
    if n == 0 { return true }
    return odd(n - 1)
}
fn odd(n: i32): bool {
    if n == 0 { return false } else { return even(n - 1) }
}
`
	toks, err := Tokenize("test.bl", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) == 0 || toks[len(toks)-1].Tok != _EOF {
		t.Fatalf("token stream does not end with EOF: %v", toks)
	}

	// deterministic
	again, err := Tokenize("test.bl", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if !reflect.DeepEqual(toks, again) {
		t.Error("tokenizing the same text twice gave different results")
	}

	// positions never decrease
	for i := 1; i < len(toks); i++ {
		if toks[i].Pos.Before(toks[i-1].Pos) {
			t.Errorf("token %d (%v) at %v comes before token %d at %v",
				i, toks[i].Tok, toks[i].Pos, i-1, toks[i-1].Pos)
		}
	}
}

func TestTokenizeError(t *testing.T) {
	toks, err := Tokenize("test.bl", strings.NewReader("fn main() { # }"))
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("err = %v, want *LexError", err)
	}
	if lerr.Error() != "test.bl:1:13: unexpected character '#'" {
		t.Errorf("Error() = %q", lerr.Error())
	}
	if len(toks) != 5 {
		t.Errorf("got %d tokens before the error, want 5", len(toks))
	}
}

func TestLexemeString(t *testing.T) {
	toks, err := Tokenize("t", strings.NewReader("x ="))
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[0].String(); got != `t:1:1 NAME "x"` {
		t.Errorf("got %q", got)
	}
	if got := toks[1].String(); got != "t:1:3 =" {
		t.Errorf("got %q", got)
	}
}

// ----------------------------------------------------------------------------
// Fuzz test

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"fn if else loop break continue return let type true false",
		"42 3.14 0.5 007 1.",
		`"hello" "" "multi
line"`,
		"+ - * / % && || == != < <= > >= ! = : , ; ( ) { }",
		"a // comment\nb",
		"print(\n1\n)",
		"& | @ #",
		"\"unterminated",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		first, err1 := Tokenize("fuzz", strings.NewReader(src))
		second, err2 := Tokenize("fuzz", strings.NewReader(src))
		if (err1 == nil) != (err2 == nil) || !reflect.DeepEqual(first, second) {
			t.Fatalf("Tokenize is not deterministic on %q", src)
		}
		for i := 1; i < len(first); i++ {
			if first[i].Pos.Before(first[i-1].Pos) {
				t.Fatalf("token %d at %s precedes token %d at %s", i, first[i].Pos, i-1, first[i-1].Pos)
			}
		}
		if err1 == nil && (len(first) == 0 || !first[len(first)-1].Tok.IsEOF()) {
			t.Fatalf("token stream does not end in EOF: %v", first)
		}
	})
}
