package parser

import (
	"fmt"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/lexer"
)

// parseStmt dispatches on the current token to one of the statement
// productions.
func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.check(lexer.TOKEN_VAR):
		return p.parseVarDeclStmt()
	case p.check(lexer.TOKEN_IF):
		return p.parseIfStmt()
	case p.check(lexer.TOKEN_WHILE):
		return p.parseWhileStmt()
	case p.check(lexer.TOKEN_FOR):
		return p.parseForStmt()
	case p.check(lexer.TOKEN_RETURN):
		return p.parseReturnStmt()
	case p.check(lexer.TOKEN_TRY):
		return p.parseTryStmt()
	case p.check(lexer.TOKEN_THROW):
		return p.parseThrowStmt()
	case p.check(lexer.TOKEN_IDENTIFIER):
		return p.parseAssignOrCallStmt()
	default:
		p.addError(fmt.Sprintf("unexpected token %q at start of statement", p.peek().Lexeme))
		return nil
	}
}

// parseVarDeclStmt parses: 'var' ID [':' dtype] '=' expr
// Also used to parse a record type's field declarations.
func (p *Parser) parseVarDeclStmt() *ast.VarDeclStmt {
	startTok, ok := p.consume(lexer.TOKEN_VAR, "expected 'var'")
	if !ok {
		return nil
	}
	nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected identifier after 'var'")
	if !ok {
		return nil
	}

	decl := &ast.VarDeclStmt{Name: nameTok.Lexeme, Token: startTok}
	if p.match(lexer.TOKEN_COLON) {
		t := p.parseTypeToken()
		decl.ExplicitType = &t
	}
	p.consume(lexer.TOKEN_EQUAL, "expected '=' in variable declaration")
	decl.Init = p.parseExpr()
	return decl
}

// parseAssignOrCallStmt parses: ID '(' args ')'   (call statement)
//                             | ID { '.' ID } '=' expr  (assignment)
func (p *Parser) parseAssignOrCallStmt() ast.Stmt {
	head := p.advance() // ID

	if p.check(lexer.TOKEN_LPAREN) {
		callTok := p.advance()
		args := p.parseArgs()
		p.consume(lexer.TOKEN_RPAREN, "expected ')' to close call arguments")
		call := &ast.CallExpr{Callee: head.Lexeme, Args: args, Token: callTok}
		expr := ast.Expr{Value: call, Token: head}
		return &ast.ExprStmt{Value: expr, Token: head}
	}

	path := []lexer.Token{head}
	for p.match(lexer.TOKEN_DOT) {
		field, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected field name after '.'")
		if !ok {
			break
		}
		path = append(path, field)
	}
	p.consume(lexer.TOKEN_EQUAL, "expected '=' in assignment")
	value := p.parseExpr()
	return &ast.AssignStmt{Path: path, Value: value, Token: head}
}

// parseIfStmt parses: 'if' expr 'then' {stmt} {'elseif' expr 'then' {stmt}} ['else' {stmt}] 'end'
func (p *Parser) parseIfStmt() ast.Stmt {
	startTok := p.advance() // 'if'
	cond := p.parseExpr()
	p.consume(lexer.TOKEN_THEN, "expected 'then' after if condition")
	body := p.parseStmtsUntil(lexer.TOKEN_ELSEIF, lexer.TOKEN_ELSE, lexer.TOKEN_END)

	stmt := &ast.IfStmt{Primary: ast.CondBranch{Cond: cond, Body: body}, Token: startTok}

	for p.check(lexer.TOKEN_ELSEIF) {
		p.advance()
		ec := p.parseExpr()
		p.consume(lexer.TOKEN_THEN, "expected 'then' after elseif condition")
		eb := p.parseStmtsUntil(lexer.TOKEN_ELSEIF, lexer.TOKEN_ELSE, lexer.TOKEN_END)
		stmt.ElseIfs = append(stmt.ElseIfs, ast.CondBranch{Cond: ec, Body: eb})
	}

	if p.match(lexer.TOKEN_ELSE) {
		stmt.HasElse = true
		stmt.Else = p.parseStmtsUntil(lexer.TOKEN_END)
	}

	p.consume(lexer.TOKEN_END, "expected 'end' to close if statement")
	return stmt
}

// parseWhileStmt parses: 'while' expr 'do' {stmt} 'end'
func (p *Parser) parseWhileStmt() ast.Stmt {
	startTok := p.advance()
	cond := p.parseExpr()
	p.consume(lexer.TOKEN_DO, "expected 'do' after while condition")
	body := p.parseStmtsUntil(lexer.TOKEN_END)
	p.consume(lexer.TOKEN_END, "expected 'end' to close while loop")
	return &ast.WhileStmt{Cond: cond, Body: body, Token: startTok}
}

// parseForStmt parses: 'for' ID '=' expr 'to' expr 'do' {stmt} 'end'
func (p *Parser) parseForStmt() ast.Stmt {
	startTok := p.advance()
	nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected loop variable name")
	if !ok {
		return nil
	}
	p.consume(lexer.TOKEN_EQUAL, "expected '=' after loop variable")
	start := p.parseExpr()
	p.consume(lexer.TOKEN_TO, "expected 'to' in for loop")
	end := p.parseExpr()
	p.consume(lexer.TOKEN_DO, "expected 'do' after for loop bounds")
	body := p.parseStmtsUntil(lexer.TOKEN_END)
	p.consume(lexer.TOKEN_END, "expected 'end' to close for loop")
	return &ast.ForStmt{Var: nameTok.Lexeme, Start: start, End: end, Body: body, Token: startTok}
}

// parseReturnStmt parses: 'return' expr
func (p *Parser) parseReturnStmt() ast.Stmt {
	startTok := p.advance()
	value := p.parseExpr()
	return &ast.ReturnStmt{Value: value, Token: startTok}
}

// parseThrowStmt parses: 'throw' expr
func (p *Parser) parseThrowStmt() ast.Stmt {
	startTok := p.advance()
	value := p.parseExpr()
	return &ast.ThrowStmt{Value: value, Token: startTok}
}

// parseTryStmt parses: 'try' {stmt} catch_stmt
func (p *Parser) parseTryStmt() ast.Stmt {
	startTok := p.advance()
	body := p.parseStmtsUntil(lexer.TOKEN_CATCH)
	catch := p.parseCatchClause()
	return &ast.TryStmt{Body: body, Catch: catch, Token: startTok}
}

// parseCatchClause parses: 'catch' '(' (expr|ID) ')' {stmt} 'end'
func (p *Parser) parseCatchClause() ast.CatchClause {
	startTok, _ := p.consume(lexer.TOKEN_CATCH, "expected 'catch' after try block")
	p.consume(lexer.TOKEN_LPAREN, "expected '(' after 'catch'")
	match := p.parseExpr()
	p.consume(lexer.TOKEN_RPAREN, "expected ')' to close catch condition")
	body := p.parseStmtsUntil(lexer.TOKEN_END)
	p.consume(lexer.TOKEN_END, "expected 'end' to close catch block")
	return ast.CatchClause{Match: match, Body: body, Token: startTok}
}

// parseArgs parses: [ expr {',' expr} ]
func (p *Parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	if p.check(lexer.TOKEN_RPAREN) {
		return args
	}
	args = append(args, p.parseExpr())
	for p.match(lexer.TOKEN_COMMA) {
		args = append(args, p.parseExpr())
	}
	return args
}
