package syntax

import (
	"fmt"
	"io"
	"strings"
)

// LexError is reported for a character sequence that matches no token rule.
// The scanner stops at the first LexError.
type LexError struct {
	Pos  Pos
	Char rune // offending character, -1 at EOF
	Msg  string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Scanner performs lexical analysis on Blaze source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name, number, string content)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	// ASI (Automatic Semicolon Insertion) state
	nlsemi bool // whether to insert semicolon at newline
	parens int  // open parenthesis depth; newlines inside parens never end a statement

	// Configuration
	asiEnabled bool // whether ASI is enabled (default true, can be disabled with -no-asi)

	// Literal accumulation
	litBuf strings.Builder

	// Error handling
	errh func(pos Pos, msg string)
	err  *LexError // first error; the scanner only yields EOF afterwards
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for the lexical error that stops the scan;
// if nil, the error is only available through Err.
func NewScanner(filename string, src io.Reader, errh func(pos Pos, msg string)) *Scanner {
	s := &Scanner{
		asiEnabled: true, // ASI enabled by default
		errh:       errh,
	}
	s.source = *newSource(filename, src, s.sourceError)
	return s
}

// SetASIEnabled enables or disables automatic semicolon insertion.
func (s *Scanner) SetASIEnabled(enabled bool) {
	s.asiEnabled = enabled
}

// Err returns the lexical error that stopped the scanner, or nil.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// sourceError receives errors from the embedded source reader.
func (s *Scanner) sourceError(line, col uint32, ch rune, msg string) {
	s.errorAt(NewPos(s.filename, line, col), ch, msg)
}

// errorAt records the first lexical error. Later errors are dropped.
func (s *Scanner) errorAt(pos Pos, ch rune, msg string) {
	if s.err != nil {
		return
	}
	s.err = &LexError{Pos: pos, Char: ch, Msg: msg}
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	if s.err != nil {
		s.stop()
		return
	}

	// 1. Check if we need to insert semicolon at newline/EOF
	nlsemi := s.nlsemi
	s.nlsemi = false

redo:
	// 2. Skip whitespace (not including '\n')
	s.skipWhitespace()

	// 3. ASI: insert semicolon before newline or EOF if needed
	if s.asiEnabled && nlsemi && (s.ch == '\n' || s.ch < 0) {
		s.tokPos = s.pos()
		s.tok = _Semi
		if s.ch == '\n' {
			s.lit = "newline"
			s.nextch()
		} else {
			s.lit = "EOF"
		}
		return
	}

	// 4. Skip newlines when not inserting semicolon
	if s.ch == '\n' {
		s.nextch()
		goto redo
	}

	// 5. Record token start position
	s.tokPos = s.pos()

	// 6. Scan token based on current character
	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			// scanOperator returned true, meaning we skipped a comment
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
	}

	if s.err != nil {
		s.stop()
		return
	}

	// 7. Set nlsemi flag for next token
	s.nlsemi = s.shouldInsertSemi()
}

// stop turns the current token into EOF after an error.
func (s *Scanner) stop() {
	s.tok = _EOF
	s.lit = ""
	s.nlsemi = false
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips space, tab, and carriage return.
// Note: newline is NOT skipped here because it may trigger ASI.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// shouldInsertSemi reports whether a semicolon should be inserted
// after the current token when followed by a newline.
func (s *Scanner) shouldInsertSemi() bool {
	if s.parens > 0 {
		return false
	}
	switch s.tok {
	case _Name, _Literal, _True, _False:
		return true
	case _Break, _Continue, _Return:
		return true
	case _Rparen:
		return true
	}
	return false
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}

	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a number literal. A float needs a decimal point
// followed by at least one digit; there is no exponent form.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.kind = IntLit

	s.scanDigits()
	if s.ch == '.' && isDigit(s.peek()) {
		s.kind = FloatLit
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		s.scanDigits()
	}

	s.lit = s.litBuf.String()
	s.tok = _Literal
}

// scanDigits scans decimal digits.
func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

// scanString scans a string literal. The literal is the raw text between
// the quotes; there are no escape sequences and newlines are allowed.
func (s *Scanner) scanString() {
	start := s.pos()
	s.nextch() // skip opening "
	s.litBuf.Reset()

	for s.ch != '"' {
		if s.ch < 0 {
			s.errorAt(start, '"', "string not terminated")
			return
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.nextch() // skip closing "

	s.lit = s.litBuf.String()
	s.tok = _Literal
	s.kind = StringLit
}

// scanOperator scans an operator or delimiter.
// Returns true if a comment was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch

	// & and | only exist doubled.
	if (ch == '&' || ch == '|') && s.peek() != ch {
		s.error(fmt.Sprintf("unexpected character %q", ch))
		return false
	}

	s.nextch()

	switch ch {
	case '+':
		s.tok = _Add
		s.lit = "+"
	case '-':
		s.tok = _Sub
		s.lit = "-"
	case '*':
		s.tok = _Mul
		s.lit = "*"
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			return true
		}
		s.tok = _Div
		s.lit = "/"
	case '%':
		s.tok = _Rem
		s.lit = "%"
	case '&':
		s.nextch()
		s.tok = _AndAnd
		s.lit = "&&"
	case '|':
		s.nextch()
		s.tok = _OrOr
		s.lit = "||"
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Leq
			s.lit = "<="
		} else {
			s.tok = _Lss
			s.lit = "<"
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Geq
			s.lit = ">="
		} else {
			s.tok = _Gtr
			s.lit = ">"
		}
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
			s.lit = "=="
		} else {
			s.tok = _Assign
			s.lit = "="
		}
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
			s.lit = "!="
		} else {
			s.tok = _Not
			s.lit = "!"
		}
	case ':':
		s.tok = _Colon
		s.lit = ":"
	case '(':
		s.parens++
		s.tok = _Lparen
		s.lit = "("
	case ')':
		if s.parens > 0 {
			s.parens--
		}
		s.tok = _Rparen
		s.lit = ")"
	case '{':
		s.tok = _Lbrace
		s.lit = "{"
	case '}':
		s.tok = _Rbrace
		s.lit = "}"
	case ',':
		s.tok = _Comma
		s.lit = ","
	case ';':
		s.tok = _Semi
		s.lit = ";"
	}

	return false
}

// skipLineComment skips a line comment (from // to end of line).
func (s *Scanner) skipLineComment() {
	// Already consumed the first /
	s.nextch()
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// Lexeme is one token of a scanned token stream.
type Lexeme struct {
	Tok  Token
	Lit  string
	Kind LitKind // only meaningful when Tok is a literal
	Pos  Pos
}

func (l Lexeme) String() string {
	if l.Tok == _Name || l.Tok == _Literal {
		return fmt.Sprintf("%s %s %q", l.Pos, l.Tok, l.Lit)
	}
	return fmt.Sprintf("%s %s", l.Pos, l.Tok)
}

// Tokenize scans src completely and returns its tokens. The final element
// is always EOF. Scanning stops at the first lexical error, which is
// returned as a *LexError together with the tokens read so far.
func Tokenize(filename string, src io.Reader) ([]Lexeme, error) {
	s := NewScanner(filename, src, nil)
	var toks []Lexeme
	for {
		s.Next()
		if err := s.Err(); err != nil {
			return toks, err
		}
		toks = append(toks, Lexeme{Tok: s.tok, Lit: s.lit, Kind: s.kind, Pos: s.tokPos})
		if s.tok == _EOF {
			return toks, nil
		}
	}
}
