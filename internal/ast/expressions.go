package ast

import "github.com/ferro-lang/ferro/internal/lexer"

// RValue is one of: primitive literal, new-of-type, call, identifier
// path, each concrete type below.
type RValue interface {
	rvalueNode()
	Loc() Location
}

// Literal is a primitive value literal: int, double, char, string,
// bool, or nil. Token.Type identifies which; Token.Literal carries the
// Go-native value for everything but nil.
type Literal struct {
	Token lexer.Token
}

func (l *Literal) rvalueNode() {}
func (l *Literal) Loc() Location { return LocOf(l.Token) }

// NewExpr is `new T`: allocates a fresh record of the named type.
type NewExpr struct {
	TypeName string
	Token    lexer.Token
}

func (n *NewExpr) rvalueNode() {}
func (n *NewExpr) Loc() Location { return LocOf(n.Token) }

// CallExpr is `callee(args...)`, either a user function or a built-in.
type CallExpr struct {
	Callee string
	Args   []Expr
	Token  lexer.Token
}

func (c *CallExpr) rvalueNode() {}
func (c *CallExpr) Loc() Location { return LocOf(c.Token) }

// PathExpr is an ordered non-empty sequence of identifiers; length 1 is
// a plain variable reference, length > 1 is field access through
// records.
type PathExpr struct {
	Path []lexer.Token
}

func (p *PathExpr) rvalueNode() {}
func (p *PathExpr) Loc() Location { return LocOf(p.Path[0]) }

// Expr is the single expression production: an optional numeric-negation
// prefix, an optional logical-not prefix, either a parenthesized
// sub-expression or an r-value, and an optional infix operator with a
// right-hand expression.
type Expr struct {
	Neg   bool // numeric negation ('neg' prefix, spec.md grammar)
	Not   bool // logical negation ('not' prefix, or the '!' token synonym)
	Group *Expr
	Value RValue // set when Group is nil
	Op    *lexer.Token
	Right *Expr
	Token lexer.Token
}

func (e *Expr) Loc() Location { return LocOf(e.Token) }
