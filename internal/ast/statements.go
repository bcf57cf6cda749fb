package ast

import "github.com/ferro-lang/ferro/internal/lexer"

// Stmt is any statement node: variable declaration, assignment, return,
// if, while, for, try, throw, or a call used as a statement.
type Stmt interface {
	stmtNode()
	Loc() Location
}

// VarDeclStmt declares a new binding: var ID [: type] = expr.
// It also doubles as a record type's field declaration (§3: "an ordered
// list of field variable-declaration statements").
type VarDeclStmt struct {
	Name        string
	ExplicitType *lexer.Token // nil when the type is to be inferred
	Init        Expr
	Token       lexer.Token
}

func (s *VarDeclStmt) stmtNode()     {}
func (s *VarDeclStmt) Loc() Location { return LocOf(s.Token) }

// AssignStmt assigns to an l-value path: path[0].path[1]... = expr.
// Path has length >= 1; length > 1 denotes field access through records.
type AssignStmt struct {
	Path  []lexer.Token
	Value Expr
	Token lexer.Token
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Loc() Location { return LocOf(s.Token) }

// ReturnStmt returns a value from the enclosing function.
type ReturnStmt struct {
	Value Expr
	Token lexer.Token
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Loc() Location { return LocOf(s.Token) }

// CondBranch is one condition+body pair shared by if/elseif.
type CondBranch struct {
	Cond Expr
	Body []Stmt
}

// IfStmt models if/elseif/else: exactly one primary branch, zero or
// more elseif branches, and an optional else body.
type IfStmt struct {
	Primary  CondBranch
	ElseIfs  []CondBranch
	Else     []Stmt // nil when there is no else clause
	HasElse  bool
	Token    lexer.Token
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Loc() Location { return LocOf(s.Token) }

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Cond  Expr
	Body  []Stmt
	Token lexer.Token
}

func (s *WhileStmt) stmtNode()     {}
func (s *WhileStmt) Loc() Location { return LocOf(s.Token) }

// ForStmt is a counted loop: for ID = start to end do ... end.
// Iterates the loop identifier from start inclusive to end exclusive
// (spec.md §9 Open Question ii).
type ForStmt struct {
	Var   string
	Start Expr
	End   Expr
	Body  []Stmt
	Token lexer.Token
}

func (s *ForStmt) stmtNode()     {}
func (s *ForStmt) Loc() Location { return LocOf(s.Token) }

// CatchClause matches either a value-equality expression or one of the
// two built-in runtime error-kind identifiers (ZeroDivision,
// IndexOutOfBounds). The grammar cannot tell these apart syntactically
// (a bare error-kind name parses as a length-1 identifier path, same as
// any other expression) so Match always holds the parsed expression;
// later stages recognize the built-in-error-kind form by checking
// whether Match is an unqualified identifier named ZeroDivision or
// IndexOutOfBounds (see ast.BuiltinErrorKind).
type CatchClause struct {
	Match Expr
	Body  []Stmt
	Token lexer.Token
}

// TryStmt runs Body; on a throw or matching runtime error it runs
// Catch.Body instead.
type TryStmt struct {
	Body  []Stmt
	Catch CatchClause
	Token lexer.Token
}

func (s *TryStmt) stmtNode()     {}
func (s *TryStmt) Loc() Location { return LocOf(s.Token) }

// ThrowStmt raises a user exception carrying Value's result (int,
// double, or bool).
type ThrowStmt struct {
	Value Expr
	Token lexer.Token
}

func (s *ThrowStmt) stmtNode()     {}
func (s *ThrowStmt) Loc() Location { return LocOf(s.Token) }

// ExprStmt is a call expression used directly as a statement for its
// side effect (grammar production `assign_or_call := ID '(' args ')'`,
// e.g. `print("hi")` on its own line).
type ExprStmt struct {
	Value Expr
	Token lexer.Token
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Loc() Location { return LocOf(s.Token) }
