package parser

import (
	"fmt"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/lexer"
)

// operatorTokens is the closed set of infix operator token types.
var operatorTokens = map[lexer.TokenType]bool{
	lexer.TOKEN_PLUS: true, lexer.TOKEN_MINUS: true, lexer.TOKEN_STAR: true,
	lexer.TOKEN_SLASH: true, lexer.TOKEN_PERCENT: true,
	lexer.TOKEN_EQUAL_EQUAL: true, lexer.TOKEN_BANG_EQUAL: true,
	lexer.TOKEN_LESS: true, lexer.TOKEN_LESS_EQUAL: true,
	lexer.TOKEN_GREATER: true, lexer.TOKEN_GREATER_EQUAL: true,
	lexer.TOKEN_AND: true, lexer.TOKEN_OR: true,
}

// parseExpr parses: ['neg'] ['not'] ( '(' expr ')' | rvalue ) [ op expr ]
// Per spec.md §4.2, this is written right-leaning. The checker and
// interpreter keep that shape: each recurses into Right and then
// combines it with the left operand, so `a - b - c` means `a - (b - c)`.
func (p *Parser) parseExpr() ast.Expr {
	startTok := p.peek()
	e := ast.Expr{Token: startTok}

	if p.match(lexer.TOKEN_NEG) {
		e.Neg = true
	}
	if p.match(lexer.TOKEN_NOT, lexer.TOKEN_BANG) {
		e.Not = true
	}

	if p.match(lexer.TOKEN_LPAREN) {
		inner := p.parseExpr()
		p.consume(lexer.TOKEN_RPAREN, "expected ')' to close parenthesized expression")
		e.Group = &inner
	} else {
		e.Value = p.parseRValue()
	}

	if operatorTokens[p.peek().Type] {
		opTok := p.advance()
		right := p.parseExpr()
		e.Op = &opTok
		e.Right = &right
	}

	return e
}

// parseRValue parses: 'nil' | 'new' ID | pval
//                    | ID ( '(' args ')' | {'.' ID} )
// 'neg' is not an r-value here: parseExpr accepts it only as a prefix
// ahead of any 'not', so a 'neg' that follows 'not' is a parse error.
func (p *Parser) parseRValue() ast.RValue {
	tok := p.peek()

	switch tok.Type {
	case lexer.TOKEN_NIL:
		p.advance()
		return &ast.Literal{Token: tok}

	case lexer.TOKEN_NEW:
		p.advance()
		nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected type name after 'new'")
		if !ok {
			return &ast.Literal{Token: tok}
		}
		return &ast.NewExpr{TypeName: nameTok.Lexeme, Token: tok}

	case lexer.TOKEN_INT_LITERAL, lexer.TOKEN_DOUBLE_LITERAL, lexer.TOKEN_CHAR_LITERAL,
		lexer.TOKEN_STRING_LITERAL, lexer.TOKEN_TRUE, lexer.TOKEN_FALSE:
		p.advance()
		return &ast.Literal{Token: tok}

	case lexer.TOKEN_IDENTIFIER:
		p.advance()
		if p.check(lexer.TOKEN_LPAREN) {
			p.advance()
			args := p.parseArgs()
			p.consume(lexer.TOKEN_RPAREN, "expected ')' to close call arguments")
			return &ast.CallExpr{Callee: tok.Lexeme, Args: args, Token: tok}
		}
		path := []lexer.Token{tok}
		for p.match(lexer.TOKEN_DOT) {
			field, ok := p.consume(lexer.TOKEN_IDENTIFIER, "expected field name after '.'")
			if !ok {
				break
			}
			path = append(path, field)
		}
		return &ast.PathExpr{Path: path}

	default:
		p.addError(fmt.Sprintf("unexpected token %q in expression", tok.Lexeme))
		p.advance()
		return &ast.Literal{Token: tok}
	}
}
