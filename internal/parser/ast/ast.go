// Package ast defines the syntax tree produced by internal/parser and
// consumed by internal/semantic and internal/ir.
package ast

import "github.com/gerax5/semcore/internal/lexer"

// Node is implemented by every tree element. Pos anchors diagnostics;
// the node pointer itself is the map key into symtab.ScopeMap (node
// identity, not value equality).
type Node interface {
	Pos() lexer.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is any node that introduces a binding at file or class scope.
type Decl interface {
	Node
	declNode()
}

// TypeExpr is a syntactic type annotation: an identifier (primitive or
// class name) or an array-of-TypeExpr with a dimension count.
type TypeExpr interface {
	Node
	typeExprNode()
	String() string
}

// NamedTypeExpr is a bare type name: integer, float, boolean, string,
// void, or a class identifier.
type NamedTypeExpr struct {
	Name     string
	Position lexer.Position
}

func (t *NamedTypeExpr) Pos() lexer.Position { return t.Position }
func (t *NamedTypeExpr) typeExprNode()        {}
func (t *NamedTypeExpr) String() string       { return t.Name }

// ArrayTypeExpr is Base[] repeated Dimensions times, e.g. integer[][].
type ArrayTypeExpr struct {
	Base       TypeExpr
	Dimensions uint
	Position   lexer.Position
}

func (t *ArrayTypeExpr) Pos() lexer.Position { return t.Position }
func (t *ArrayTypeExpr) typeExprNode()        {}
func (t *ArrayTypeExpr) String() string {
	s := t.Base.String()
	for i := uint(0); i < t.Dimensions; i++ {
		s += "[]"
	}
	return s
}

// File is the root of a parsed compilation unit: a flat sequence of
// top-level declarations (const/let/function/class), in source order.
type File struct {
	Name     string
	Decls    []Decl
	Position lexer.Position
}

func (f *File) Pos() lexer.Position { return f.Position }

// Parameter is a single function/method formal parameter.
type Parameter struct {
	Name     string
	Type     TypeExpr
	Position lexer.Position
}

func (p *Parameter) Pos() lexer.Position { return p.Position }

// FuncDecl is a top-level function or a class method. IsMethod is set
// when the declaration appears inside a ClassDecl's Methods list;
// top-level functions leave it false.
type FuncDecl struct {
	Name       string
	Params     []*Parameter
	ReturnType TypeExpr // nil means void
	Body       *BlockStmt
	IsMethod   bool
	Position   lexer.Position
}

func (d *FuncDecl) Pos() lexer.Position { return d.Position }
func (d *FuncDecl) declNode()           {}

// VarDecl is `let name: Type = init;` or `const name: Type = init;`.
type VarDecl struct {
	Name     string
	Type     TypeExpr // may be nil, inferred from Init
	Init     Expr     // may be nil for `let` without an initializer
	IsConst  bool
	Position lexer.Position
}

func (d *VarDecl) Pos() lexer.Position { return d.Position }
func (d *VarDecl) declNode()           {}
func (d *VarDecl) stmtNode()           {} // VarDecl doubles as a statement inside a block

// Field is a class field declaration.
type Field struct {
	Name     string
	Type     TypeExpr
	Init     Expr // may be nil
	Position lexer.Position
}

func (f *Field) Pos() lexer.Position { return f.Position }

// ClassDecl declares a class, its optional superclass, its fields and its
// methods, in the order they were written.
type ClassDecl struct {
	Name     string
	Super    string // "" if no extends clause
	Fields   []*Field
	Methods  []*FuncDecl
	Position lexer.Position
}

func (d *ClassDecl) Pos() lexer.Position { return d.Position }
func (d *ClassDecl) declNode()           {}
