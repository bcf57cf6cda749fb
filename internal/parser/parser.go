// Package parser builds an ast.Program from a lexer.Token stream via
// single-lookahead recursive descent. The parser performs no semantic
// checks; that is the type checker's job.
package parser

import (
	"fmt"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/lexer"
)

// Parser transforms a token stream into an ast.Program.
type Parser struct {
	tokens  []lexer.Token
	current int
	file    string
	errors  []diag.Diagnostic
}

// New creates a Parser over tokens. file is used only for diagnostics.
func New(tokens []lexer.Token, file string) *Parser {
	return &Parser{tokens: tokens, file: file}
}

// Parse parses the full token stream into a Program, collecting as many
// parse diagnostics as it can recover from along the way.
func (p *Parser) Parse() (*ast.Program, []diag.Diagnostic) {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		decl := p.parseDecl()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	return prog, p.errors
}

func (p *Parser) parseDecl() ast.Decl {
	switch {
	case p.check(lexer.TOKEN_TYPE):
		return p.parseTypeDecl()
	case p.check(lexer.TOKEN_FUN):
		return p.parseFunctionDecl()
	default:
		p.addError(fmt.Sprintf("unexpected token %q, expected 'type' or 'fun'", p.peek().Lexeme))
		p.advance()
		p.synchronize()
		return nil
	}
}

// parseTypeDecl parses: 'type' ID { vdecl_stmt } 'end'
func (p *Parser) parseTypeDecl() ast.Decl {
	startTok := p.advance() // consume 'type'
	nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected type name after 'type'")
	if !ok {
		p.synchronize()
		return nil
	}

	decl := &ast.TypeDecl{Name: nameTok.Lexeme, Token: startTok}
	for !p.check(lexer.TOKEN_END) && !p.isAtEnd() {
		before := p.current
		field := p.parseVarDeclStmt()
		if field != nil {
			decl.Fields = append(decl.Fields, field)
		} else {
			if p.current == before {
				p.advance()
			}
			p.synchronize()
		}
	}
	p.consume(lexer.TOKEN_END, "expected 'end' to close type declaration")
	return decl
}

// parseFunctionDecl parses: 'fun' (dtype|'nil') ID '(' [params] ')' { stmt } 'end'
func (p *Parser) parseFunctionDecl() ast.Decl {
	startTok := p.advance() // consume 'fun'
	retTok := p.parseReturnTypeToken()
	nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected function name")
	if !ok {
		p.synchronize()
		return nil
	}
	p.consume(lexer.TOKEN_LPAREN, "expected '(' after function name")

	var params []ast.Param
	if !p.check(lexer.TOKEN_RPAREN) {
		for {
			pname, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected parameter name")
			if !ok {
				break
			}
			p.consume(lexer.TOKEN_COLON, "expected ':' after parameter name")
			ptype := p.parseTypeToken()
			params = append(params, ast.Param{Name: pname.Lexeme, TypeToken: ptype})
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	p.consume(lexer.TOKEN_RPAREN, "expected ')' to close parameter list")

	decl := &ast.FunctionDecl{Name: nameTok.Lexeme, ReturnType: retTok, Params: params, Token: startTok}
	decl.Body = p.parseStmtsUntil(lexer.TOKEN_END)
	p.consume(lexer.TOKEN_END, "expected 'end' to close function body")
	return decl
}

// parseReturnTypeToken accepts a primitive type name, an identifier
// (record type name), or 'nil' as a function's return type.
func (p *Parser) parseReturnTypeToken() lexer.Token {
	if p.check(lexer.TOKEN_NIL) {
		return p.advance()
	}
	return p.parseTypeToken()
}

// parseTypeToken accepts a primitive type name or identifier (dtype).
func (p *Parser) parseTypeToken() lexer.Token {
	if p.peek().Type.IsPrimitiveType() || p.check(lexer.TOKEN_IDENTIFIER) {
		return p.advance()
	}
	p.addError(fmt.Sprintf("expected a type name, got %q", p.peek().Lexeme))
	return p.peek()
}

// parseStmtsUntil parses statements until the given terminator token
// type is the current token (not consumed) or EOF is reached.
func (p *Parser) parseStmtsUntil(terminators ...lexer.TokenType) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() && !p.checkAny(terminators...) {
		before := p.current
		stmt := p.parseStmt()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			if p.current == before {
				p.advance()
			}
			p.synchronize()
		}
	}
	return stmts
}

// --- token cursor helpers ---

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.TOKEN_EOF }

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

func (p *Parser) checkAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			return true
		}
	}
	return false
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	if p.checkAny(types...) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.addError(message + fmt.Sprintf(" (got %q)", p.peek().Lexeme))
	return p.peek(), false
}

// synchronize discards tokens until a likely statement/declaration
// boundary, so the parser can keep collecting independent errors.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TOKEN_TYPE, lexer.TOKEN_FUN, lexer.TOKEN_VAR, lexer.TOKEN_IF,
			lexer.TOKEN_WHILE, lexer.TOKEN_FOR, lexer.TOKEN_RETURN, lexer.TOKEN_TRY,
			lexer.TOKEN_END, lexer.TOKEN_THROW:
			return
		}
		p.advance()
	}
}

func (p *Parser) addError(message string) {
	tok := p.peek()
	p.errors = append(p.errors, diag.New(diag.Parser, message, diag.Location{
		File: p.file, Line: tok.Line, Column: tok.Column,
	}))
}
