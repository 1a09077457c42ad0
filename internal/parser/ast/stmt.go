package ast

import "github.com/gerax5/semcore/internal/lexer"

// BlockStmt is a brace-delimited sequence of statements; it introduces
// its own Scope during the scope-building pass.
type BlockStmt struct {
	Stmts    []Stmt
	Position lexer.Position
}

func (s *BlockStmt) Pos() lexer.Position { return s.Position }
func (s *BlockStmt) stmtNode()           {}

// ExprStmt is an expression evaluated for its side effect (a call or an
// assignment) used as a statement.
type ExprStmt struct {
	Expr     Expr
	Position lexer.Position
}

func (s *ExprStmt) Pos() lexer.Position { return s.Position }
func (s *ExprStmt) stmtNode()           {}

// PrintStmt is `print(expr);`, kept as a first-class statement because
// it is the only observable output the language has (§6).
type PrintStmt struct {
	Value    Expr
	Position lexer.Position
}

func (s *PrintStmt) Pos() lexer.Position { return s.Position }
func (s *PrintStmt) stmtNode()           {}

// IfStmt is `if (Cond) Then else Else`; Else may be nil, or itself an
// IfStmt for an `else if` chain.
type IfStmt struct {
	Cond     Expr
	Then     Stmt
	Else     Stmt
	Position lexer.Position
}

func (s *IfStmt) Pos() lexer.Position { return s.Position }
func (s *IfStmt) stmtNode()           {}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Cond     Expr
	Body     Stmt
	Position lexer.Position
}

func (s *WhileStmt) Pos() lexer.Position { return s.Position }
func (s *WhileStmt) stmtNode()           {}

// DoWhileStmt is `do Body while (Cond);`.
type DoWhileStmt struct {
	Body     Stmt
	Cond     Expr
	Position lexer.Position
}

func (s *DoWhileStmt) Pos() lexer.Position { return s.Position }
func (s *DoWhileStmt) stmtNode()           {}

// ForStmt is the classic C-style `for (Init; Cond; Post) Body`. Any of
// Init/Cond/Post may be nil.
type ForStmt struct {
	Init     Stmt // VarDecl or ExprStmt, or nil
	Cond     Expr // nil means "always true"
	Post     Expr // nil means no post-expression
	Body     Stmt
	Position lexer.Position
}

func (s *ForStmt) Pos() lexer.Position { return s.Position }
func (s *ForStmt) stmtNode()           {}

// ForEachStmt is `foreach (Name in Iterable) Body`, iterating the
// elements of an array value in order.
type ForEachStmt struct {
	VarName  string
	Iterable Expr
	Body     Stmt
	Position lexer.Position
}

func (s *ForEachStmt) Pos() lexer.Position { return s.Position }
func (s *ForEachStmt) stmtNode()           {}

// CaseClause is one `case Value: Body` arm of a SwitchStmt. Value is nil
// for the `default` arm.
type CaseClause struct {
	Value    Expr
	Body     []Stmt
	Position lexer.Position
}

func (c *CaseClause) Pos() lexer.Position { return c.Position }

// SwitchStmt is `switch (Discriminant) { case ...; default: ... }`.
// Discriminant policy (equality-dispatch vs boolean-only) is a checker
// concern, not a parse concern; the tree shape is the same either way.
type SwitchStmt struct {
	Discriminant Expr
	Cases        []*CaseClause
	Default      *CaseClause // nil if no default arm
	Position     lexer.Position
}

func (s *SwitchStmt) Pos() lexer.Position { return s.Position }
func (s *SwitchStmt) stmtNode()           {}

// CatchClause is the `catch (Name) Body` arm of a TryStmt.
type CatchClause struct {
	Name     string
	Body     *BlockStmt
	Position lexer.Position
}

func (c *CatchClause) Pos() lexer.Position { return c.Position }

// TryStmt is `try Body catch (Name) Handler`.
type TryStmt struct {
	Body     *BlockStmt
	Catch    *CatchClause
	Position lexer.Position
}

func (s *TryStmt) Pos() lexer.Position { return s.Position }
func (s *TryStmt) stmtNode()           {}

// BreakStmt exits an enclosing switch or loop. The IR emitter sends it to
// the innermost enclosing switch whenever there is one, even when a loop
// sits between the switch and the break; otherwise to the innermost loop.
type BreakStmt struct {
	Position lexer.Position
}

func (s *BreakStmt) Pos() lexer.Position { return s.Position }
func (s *BreakStmt) stmtNode()           {}

// ContinueStmt jumps to the nearest enclosing loop's post/condition step.
type ContinueStmt struct {
	Position lexer.Position
}

func (s *ContinueStmt) Pos() lexer.Position { return s.Position }
func (s *ContinueStmt) stmtNode()           {}

// ReturnStmt is `return;` or `return Value;`.
type ReturnStmt struct {
	Value    Expr // nil for bare `return;`
	Position lexer.Position
}

func (s *ReturnStmt) Pos() lexer.Position { return s.Position }
func (s *ReturnStmt) stmtNode()           {}
