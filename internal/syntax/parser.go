package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// SyntaxError represents a syntax error. Either Expected and Found are set
// (the token stream did not match the grammar) or Msg carries a complete
// description.
type SyntaxError struct {
	Pos      Pos
	Expected string // description of what the grammar required
	Found    string // description of the token actually found
	Msg      string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Message()
}

// Message returns the error text without the position prefix.
func (e *SyntaxError) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// tokenSource is the token stream a Parser reads from. *Scanner is the
// usual implementation.
type tokenSource interface {
	Next()
	Token() Token
	Literal() string
	LitKind() LitKind
	Pos() Pos
	Err() error
	SetASIEnabled(enabled bool)
}

// Parser performs syntax analysis on Blaze source code.
// It stops at the first error; there is no recovery.
type Parser struct {
	scanner tokenSource

	// Current token info (cached from scanner)
	tok  Token
	lit  string
	kind LitKind
	pos  Pos

	// Error handling
	errh   func(pos Pos, msg string)
	errcnt int
	first  error // first error encountered
	abort  bool  // set once the first error is reported
}

// NewParser creates a new Parser for the given source.
// errh, if not nil, is called with the error that stops the parse.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	return newParser(NewScanner(filename, src, nil), errh)
}

func newParser(s tokenSource, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{
		scanner: s,
		errh:    errh,
	}
	p.next() // prime the parser with first token
	return p
}

// SetASIEnabled passes the ASI setting to the underlying scanner.
// It only affects tokens not yet scanned.
func (p *Parser) SetASIEnabled(enabled bool) {
	p.scanner.SetASIEnabled(enabled)
}

// ParseFile parses a complete program from src.
// The returned error is a *LexError or a *SyntaxError.
func ParseFile(filename string, src io.Reader, asi bool) (*File, error) {
	s := NewScanner(filename, src, nil)
	s.SetASIEnabled(asi)
	p := newParser(s, nil)
	f := p.Parse()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseTokens parses a program from an already scanned token stream,
// as produced by Tokenize.
func ParseTokens(toks []Lexeme) (*File, error) {
	p := newParser(&lexemeStream{toks: toks, i: -1}, nil)
	f := p.Parse()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// lexemeStream replays a token slice as a tokenSource.
type lexemeStream struct {
	toks []Lexeme
	i    int
}

func (l *lexemeStream) Next() {
	if l.i < len(l.toks) {
		l.i++
	}
}

func (l *lexemeStream) cur() Lexeme {
	if l.i < 0 || l.i >= len(l.toks) {
		return Lexeme{Tok: _EOF}
	}
	return l.toks[l.i]
}

func (l *lexemeStream) Token() Token       { return l.cur().Tok }
func (l *lexemeStream) Literal() string    { return l.cur().Lit }
func (l *lexemeStream) LitKind() LitKind   { return l.cur().Kind }
func (l *lexemeStream) Pos() Pos           { return l.cur().Pos }
func (l *lexemeStream) Err() error         { return nil }
func (l *lexemeStream) SetASIEnabled(bool) {}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	if p.abort {
		return
	}
	p.scanner.Next()
	if err := p.scanner.Err(); err != nil {
		p.fail(err)
		return
	}
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.kind = p.scanner.LitKind()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.errorExpected(tokDesc(tok))
	}
}

// expect is like want but returns the position of the expected token.
func (p *Parser) expect(tok Token) Pos {
	pos := p.pos
	p.want(tok)
	return pos
}

// semi consumes a statement terminator. The semicolon may be omitted
// before a closing brace.
func (p *Parser) semi() {
	if p.tok == _Rbrace {
		return
	}
	if !p.got(_Semi) {
		p.errorExpected("';' or newline")
	}
}

// ----------------------------------------------------------------------------
// Error handling

// errorExpected reports that the current token does not match the grammar.
func (p *Parser) errorExpected(expected string) {
	p.fail(&SyntaxError{Pos: p.pos, Expected: expected, Found: tokstring(p.tok, p.lit, p.kind)})
}

// syntaxErrorAt reports a syntax error at a specific position.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	p.fail(&SyntaxError{Pos: pos, Msg: msg})
}

// fail records the first error and aborts the parse. Once aborted the
// current token is EOF, so every parsing loop terminates.
func (p *Parser) fail(err error) {
	if p.abort {
		return
	}
	p.first = err
	p.errcnt++
	p.abort = true
	p.tok = _EOF

	if p.errh != nil {
		switch e := err.(type) {
		case *SyntaxError:
			p.errh(e.Pos, e.Message())
		case *LexError:
			p.errh(e.Pos, e.Msg)
		}
	}
}

// tokDesc describes an expected token.
func tokDesc(tok Token) string {
	switch tok {
	case _Name:
		return "name"
	case _Literal:
		return "literal"
	}
	return "'" + tok.String() + "'"
}

// tokstring describes the token found at an error position.
func tokstring(tok Token, lit string, kind LitKind) string {
	switch tok {
	case _EOF:
		return "EOF"
	case _Name:
		return "name " + lit
	case _Literal:
		if kind == StringLit {
			return "literal " + strconv.Quote(lit)
		}
		return "literal " + lit
	case _Semi:
		if lit == "newline" || lit == "EOF" {
			return lit
		}
	}
	if tok.IsKeyword() {
		return "keyword " + tok.String()
	}
	return "'" + tok.String() + "'"
}

// Errors returns the number of errors encountered during parsing (0 or 1).
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// Err is the same as FirstError.
func (p *Parser) Err() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program and returns the AST.
// On error the returned File holds the declarations parsed so far.
func (p *Parser) Parse() *File {
	f := &File{}
	f.pos = p.pos

	for !p.abort && p.tok != _EOF {
		// Skip any semicolons between declarations
		for p.tok == _Semi {
			p.next()
		}
		if p.tok == _EOF {
			break
		}
		if d := p.decl(); d != nil && !p.abort {
			f.Decls = append(f.Decls, d)
		}
	}

	return f
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	if p.tok != _Name {
		p.errorExpected("name")
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Top-level declarations

// decl parses a top-level declaration.
func (p *Parser) decl() Decl {
	switch p.tok {
	case _Type:
		return p.typeDecl()
	case _Fn:
		return p.funcDecl()
	default:
		p.errorExpected("function or type declaration")
		return nil
	}
}

// typeDecl parses: type Name = Type;
func (p *Parser) typeDecl() *TypeDecl {
	d := &TypeDecl{}
	d.pos = p.pos

	p.want(_Type)
	d.Name = p.name()
	p.want(_Assign)
	d.Type = p.type_()
	p.want(_Semi)

	return d
}

// type_ parses a type expression.
func (p *Parser) type_() Expr {
	switch p.tok {
	case _Name:
		return p.name()

	case _Fn:
		return p.funcType()

	default:
		p.errorExpected("type")
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
}

// funcType parses fn(T1, T2): R
// A trailing comma is allowed in this and the other parenthesized lists.
func (p *Parser) funcType() Expr {
	ft := &FuncType{}
	ft.pos = p.pos

	p.want(_Fn)
	p.want(_Lparen)
	if p.tok != _Rparen {
		ft.Params = append(ft.Params, p.type_())
		for p.got(_Comma) && p.tok != _Rparen {
			ft.Params = append(ft.Params, p.type_())
		}
	}
	p.want(_Rparen)

	if p.got(_Colon) {
		ft.Result = p.type_()
	}
	return ft
}

// ----------------------------------------------------------------------------
// Function declarations

// funcDecl parses: fn Name(params): result { body }
func (p *Parser) funcDecl() *FuncDecl {
	d := &FuncDecl{}
	d.pos = p.pos

	p.want(_Fn)
	d.Name = p.name()
	d.Params = p.paramList()

	// Optional result type
	if p.got(_Colon) {
		d.Result = p.type_()
	}

	d.Body = p.blockStmt()
	return d
}

// paramList parses (p1: T1, p2: T2, ...)
func (p *Parser) paramList() []*Field {
	p.want(_Lparen)

	var params []*Field
	if p.tok != _Rparen {
		params = p.fieldList()
	}

	p.want(_Rparen)
	return params
}

// fieldList parses a comma-separated list of name: type pairs.
func (p *Parser) fieldList() []*Field {
	var fields []*Field

	for !p.abort {
		f := &Field{}
		f.pos = p.pos
		f.Name = p.name()
		p.want(_Colon)
		f.Type = p.type_()
		fields = append(fields, f)

		if !p.got(_Comma) || p.tok == _Rparen {
			break
		}
	}

	return fields
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Lbrace:
		return p.blockStmt()

	case _If:
		return p.ifStmt()

	case _Loop:
		return p.loopStmt()

	case _Return:
		return p.returnStmt()

	case _Break, _Continue:
		return p.branchStmt()

	case _Let:
		d := p.varDecl()
		s := &DeclStmt{Decl: d}
		s.pos = d.Pos()
		return s

	case _Semi:
		s := &EmptyStmt{}
		s.pos = p.pos
		p.next()
		return s

	default:
		return p.simpleStmt()
	}
}

// varDecl parses: let Name: Type [= Value];
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos

	p.want(_Let)
	d.Name = p.name()
	p.want(_Colon)
	d.Type = p.type_()

	if p.got(_Assign) {
		d.Value = p.expr()
	}

	p.semi()
	return d
}

// simpleStmt parses an expression statement or assignment.
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	x := p.expr()

	if p.tok == _Assign {
		return p.assignStmt(pos, x)
	}

	s := &ExprStmt{X: x}
	s.pos = pos
	p.semi()
	return s
}

// assignStmt parses LHS = RHS. The target must be a plain name.
func (p *Parser) assignStmt(pos Pos, lhs Expr) Stmt {
	name, ok := lhs.(*Name)
	if !ok {
		p.syntaxErrorAt(p.pos, "invalid assignment target")
		return &EmptyStmt{}
	}

	s := &AssignStmt{LHS: name}
	s.pos = pos

	p.next() // consume =

	s.RHS = p.expr()
	p.semi()

	return s
}

// blockStmt parses { stmts... }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)

	for p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.stmt())
	}

	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// ifStmt parses: if cond { then } [else if ... | else { else }]
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	s.Cond = p.expr()
	s.Then = p.blockStmt()

	if p.got(_Else) {
		switch p.tok {
		case _If:
			s.Else = p.ifStmt() // else if
		case _Lbrace:
			s.Else = p.blockStmt()
		default:
			p.errorExpected("'if' or block after else")
		}
	}

	return s
}

// loopStmt parses: loop { body }
func (p *Parser) loopStmt() Stmt {
	s := &LoopStmt{}
	s.pos = p.pos

	p.want(_Loop)
	s.Body = p.blockStmt()
	return s
}

// returnStmt parses: return [expr]
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.pos

	p.want(_Return)

	// Optional return value (check for statement terminators)
	if p.tok != _Semi && p.tok != _Rbrace && p.tok != _EOF {
		s.Result = p.expr()
	}

	p.semi()
	return s
}

// branchStmt parses: break or continue
func (p *Parser) branchStmt() Stmt {
	s := &BranchStmt{Tok: p.tok}
	s.pos = p.pos
	p.next()
	p.semi()
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements precedence climbing; all binary operators are left associative.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a unary expression.
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Not, _Sub:
		op := &Operation{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.unaryExpr()
		return op

	default:
		return p.primaryExpr()
	}
}

// primaryExpr parses an operand followed by any number of calls.
func (p *Parser) primaryExpr() Expr {
	x := p.operand()

	for p.tok == _Lparen {
		x = p.callExpr(x)
	}
	return x
}

// operand parses an operand (the base of primary expressions).
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		n := &Name{Value: p.lit}
		n.pos = p.pos
		p.next()
		return n

	case _Literal:
		lit := &BasicLit{Value: p.lit, Kind: p.kind}
		lit.pos = p.pos
		p.next()
		return lit

	case _True, _False:
		lit := &BasicLit{Value: p.tok.String(), Kind: BoolLit}
		lit.pos = p.pos
		p.next()
		return lit

	case _Lparen: // parenthesized expression
		pos := p.pos
		p.next()
		x := p.expr()
		p.want(_Rparen)
		paren := &ParenExpr{X: x}
		paren.pos = pos
		return paren

	default:
		p.errorExpected("expression")
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
}

// callExpr parses Fun(args...)
func (p *Parser) callExpr(fun Expr) Expr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = p.exprList()
	}
	call.Rparen = p.expect(_Rparen)

	return call
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) && p.tok != _Rparen {
		list = append(list, p.expr())
	}
	return list
}
