package ast

import "github.com/gerax5/semcore/internal/lexer"

// LiteralExpr is an integer, float, string, boolean, or null literal.
type LiteralExpr struct {
	Kind     lexer.TokenType // INT, FLOAT, STRING, TRUE, FALSE, NULL
	Raw      string
	Position lexer.Position
}

func (e *LiteralExpr) Pos() lexer.Position { return e.Position }
func (e *LiteralExpr) exprNode()           {}

// IdentifierExpr references a variable, function, or class by name.
type IdentifierExpr struct {
	Name     string
	Position lexer.Position
}

func (e *IdentifierExpr) Pos() lexer.Position { return e.Position }
func (e *IdentifierExpr) exprNode()           {}

// ThisExpr is the `this` receiver reference, valid only inside a method.
type ThisExpr struct {
	Position lexer.Position
}

func (e *ThisExpr) Pos() lexer.Position { return e.Position }
func (e *ThisExpr) exprNode()           {}

// ArrayLiteralExpr is `[e1, e2, ...]`.
type ArrayLiteralExpr struct {
	Elements []Expr
	Position lexer.Position
}

func (e *ArrayLiteralExpr) Pos() lexer.Position { return e.Position }
func (e *ArrayLiteralExpr) exprNode()           {}

// NewExpr is `new ClassName(args...)`.
type NewExpr struct {
	ClassName string
	Args      []Expr
	Position  lexer.Position
}

func (e *NewExpr) Pos() lexer.Position { return e.Position }
func (e *NewExpr) exprNode()           {}

// NewArrayExpr is `new Type[size1][size2]...`.
type NewArrayExpr struct {
	ElemType TypeExpr
	Sizes    []Expr
	Position lexer.Position
}

func (e *NewArrayExpr) Pos() lexer.Position { return e.Position }
func (e *NewArrayExpr) exprNode()           {}

// PropertyExpr is `obj.Name`, a field or method reference.
type PropertyExpr struct {
	Object   Expr
	Name     string
	Position lexer.Position
}

func (e *PropertyExpr) Pos() lexer.Position { return e.Position }
func (e *PropertyExpr) exprNode()           {}

// IndexExpr is `arr[index]`.
type IndexExpr struct {
	Array    Expr
	Index    Expr
	Position lexer.Position
}

func (e *IndexExpr) Pos() lexer.Position { return e.Position }
func (e *IndexExpr) exprNode()           {}

// CallExpr is `callee(args...)`. Callee is either an IdentifierExpr
// (free function call) or a PropertyExpr (method call).
type CallExpr struct {
	Callee   Expr
	Args     []Expr
	Position lexer.Position
}

func (e *CallExpr) Pos() lexer.Position { return e.Position }
func (e *CallExpr) exprNode()           {}

// UnaryExpr is `-x`, `!x`.
type UnaryExpr struct {
	Op       lexer.TokenType
	Operand  Expr
	Position lexer.Position
}

func (e *UnaryExpr) Pos() lexer.Position { return e.Position }
func (e *UnaryExpr) exprNode()           {}

// BinaryExpr is an arithmetic or comparison operator applied to two
// operands: +, -, *, /, %, <, <=, >, >=, ==, !=.
type BinaryExpr struct {
	Op       lexer.TokenType
	Left     Expr
	Right    Expr
	Position lexer.Position
}

func (e *BinaryExpr) Pos() lexer.Position { return e.Position }
func (e *BinaryExpr) exprNode()           {}

// LogicalExpr is `&&` or `||`, kept distinct from BinaryExpr because it
// short-circuits at IR lowering time (§4.4) instead of evaluating eagerly.
type LogicalExpr struct {
	Op       lexer.TokenType
	Left     Expr
	Right    Expr
	Position lexer.Position
}

func (e *LogicalExpr) Pos() lexer.Position { return e.Position }
func (e *LogicalExpr) exprNode()           {}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	Cond     Expr
	Then     Expr
	Else     Expr
	Position lexer.Position
}

func (e *TernaryExpr) Pos() lexer.Position { return e.Position }
func (e *TernaryExpr) exprNode()           {}

// AssignmentExpr is `target = value`. Target is an IdentifierExpr,
// PropertyExpr, or IndexExpr.
type AssignmentExpr struct {
	Target   Expr
	Value    Expr
	Position lexer.Position
}

func (e *AssignmentExpr) Pos() lexer.Position { return e.Position }
func (e *AssignmentExpr) exprNode()           {}
