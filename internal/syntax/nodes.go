// Package syntax implements lexical and syntactic analysis for the Blaze programming language.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Expressions, Statements, and Declarations.
// All nodes implement the Node interface. Expression, Statement, and Declaration
// nodes further implement their respective interfaces.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	End() Pos // position of first character immediately after the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) End() Pos { return n.pos } // default: return start position
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Files and Declarations

// File represents a complete program: an ordered list of top-level
// function and type alias declarations.
type File struct {
	node
	Decls []Decl // top-level declarations
}

// TypeDecl represents a type alias declaration: type Name = Type;
type TypeDecl struct {
	decl
	Name *Name // alias name
	Type Expr  // the aliased type expression
}

// VarDecl represents a local variable declaration: let Name: Type [= Value];
// It only appears wrapped in a DeclStmt.
type VarDecl struct {
	decl
	Name  *Name // variable name
	Type  Expr  // declared type
	Value Expr  // initial value (nil for the zero value)
}

// FuncDecl represents a function declaration.
// fn Name(Params): Result { Body }
type FuncDecl struct {
	decl
	Name   *Name      // function name
	Params []*Field   // parameter list
	Result Expr       // return type (nil for no value)
	Body   *BlockStmt // function body
}

// Field represents a named parameter: name: Type
type Field struct {
	node
	Name *Name // parameter name
	Type Expr  // parameter type
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents a literal value (int, float, string, bool).
type BasicLit struct {
	expr
	Value string  // literal text (raw content for strings)
	Kind  LitKind // IntLit, FloatLit, StringLit, BoolLit
}

// Operation represents a unary or binary operation.
// For unary operations, Y is nil.
// For binary operations, both X and Y are set.
type Operation struct {
	expr
	Op Token // operator token
	X  Expr  // left operand (or only operand for unary)
	Y  Expr  // right operand (nil for unary)
}

// CallExpr represents a function call: Fun(Args...)
// Fun may itself be a call, as in f()().
type CallExpr struct {
	expr
	Fun    Expr   // function expression
	Args   []Expr // argument list
	Rparen Pos    // position of closing parenthesis
}

func (c *CallExpr) End() Pos { return c.Rparen }

// ParenExpr represents a parenthesized expression: (X)
type ParenExpr struct {
	expr
	X Expr // inner expression
}

// ----------------------------------------------------------------------------
// Type Expressions
//
// A type expression is either a *Name (primitive or alias) or a *FuncType.

// FuncType represents a function type: fn(Params): Result
type FuncType struct {
	expr
	Params []Expr // parameter types
	Result Expr   // result type (nil for no value)
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt represents an empty statement (just a semicolon).
type EmptyStmt struct {
	stmt
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr // expression
}

// AssignStmt represents an assignment: LHS = RHS
// LHS is always a *Name; the parser rejects other targets.
type AssignStmt struct {
	stmt
	LHS *Name // assigned variable
	RHS Expr  // assigned value
}

// BlockStmt represents a block statement: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt // statements
	Rbrace Pos    // position of closing brace
}

func (b *BlockStmt) End() Pos { return b.Rbrace }

// IfStmt represents an if statement: if Cond Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr       // condition expression
	Then *BlockStmt // then branch
	Else Stmt       // else branch (nil, *IfStmt, or *BlockStmt)
}

// LoopStmt represents an unconditional loop: loop { Body }
// It is the only looping construct.
type LoopStmt struct {
	stmt
	Body *BlockStmt // loop body
}

// ReturnStmt represents a return statement: return [Result]
type ReturnStmt struct {
	stmt
	Result Expr // return value (nil for bare return)
}

// BranchStmt represents a break or continue statement.
type BranchStmt struct {
	stmt
	Tok Token // _Break or _Continue
}

// DeclStmt wraps a declaration as a statement.
// Used for let declarations inside function bodies.
type DeclStmt struct {
	stmt
	Decl Decl // the wrapped declaration
}
