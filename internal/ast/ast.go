// Package ast defines the strongly-typed tree produced by the parser and
// walked by the type checker and interpreter.
package ast

import "github.com/ferro-lang/ferro/internal/lexer"

// Location captures where a node started in source, carried forward from
// the node's originating token for diagnostics.
type Location struct {
	Line   int
	Column int
}

// LocOf builds a Location from a token.
func LocOf(tok lexer.Token) Location {
	return Location{Line: tok.Line, Column: tok.Column}
}

// Decl is either a FunctionDecl or a TypeDecl.
type Decl interface {
	declNode()
	Loc() Location
}

// Program is the root AST node: an ordered sequence of declarations.
type Program struct {
	Decls []Decl
}

// Param is a function parameter: name plus its declared type token.
type Param struct {
	Name      string
	TypeToken lexer.Token
}

// FunctionDecl is a top-level function definition.
type FunctionDecl struct {
	Name       string
	ReturnType lexer.Token // primitive, identifier, or 'nil' token
	Params     []Param
	Body       []Stmt
	Token      lexer.Token
}

func (f *FunctionDecl) declNode()     {}
func (f *FunctionDecl) Loc() Location { return LocOf(f.Token) }

// TypeDecl is a top-level record type definition: a name and its
// ordered field declarations (each itself a VarDeclStmt with a
// mandatory initializer expression).
type TypeDecl struct {
	Name   string
	Fields []*VarDeclStmt
	Token  lexer.Token
}

func (t *TypeDecl) declNode()     {}
func (t *TypeDecl) Loc() Location { return LocOf(t.Token) }
