package typecheck

import (
	"fmt"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/types"
)

// inferExpr assigns a single inferred type to e, per spec.md §8
// property 3: "every expression node has exactly one inferred type".
func (c *Checker) inferExpr(e ast.Expr) types.Type {
	var t types.Type
	if e.Group != nil {
		t = c.inferExpr(*e.Group)
	} else {
		t = c.inferRValue(e.Value)
	}

	if e.Neg {
		if !t.IsNumeric() {
			c.addError(e.Token, fmt.Sprintf("'neg' requires int or double, got %s", t))
		}
	}
	if e.Not {
		if !t.Equals(types.TBool) {
			c.addError(e.Token, fmt.Sprintf("'not' requires bool, got %s", t))
		}
		t = types.TBool
	}

	if e.Op != nil {
		rt := c.inferExpr(*e.Right)
		t = c.inferBinary(*e.Op, t, rt, e.Token)
	}

	return t
}

func (c *Checker) inferBinary(op lexer.Token, left, right types.Type, tok lexer.Token) types.Type {
	switch op.Type {
	case lexer.TOKEN_PLUS:
		if left.Equals(types.TInt) && right.Equals(types.TInt) {
			return types.TInt
		}
		if left.Equals(types.TDouble) && right.Equals(types.TDouble) {
			return types.TDouble
		}
		if isTextual(left) && isTextual(right) {
			return types.TString
		}
		c.addError(tok, fmt.Sprintf("'+' does not support %s and %s", left, right))
		return types.TNil

	case lexer.TOKEN_MINUS, lexer.TOKEN_STAR, lexer.TOKEN_SLASH:
		if left.Equals(types.TInt) && right.Equals(types.TInt) {
			return types.TInt
		}
		if left.Equals(types.TDouble) && right.Equals(types.TDouble) {
			return types.TDouble
		}
		c.addError(tok, fmt.Sprintf("%q requires matching int or double operands, got %s and %s", op.Lexeme, left, right))
		return types.TNil

	case lexer.TOKEN_PERCENT:
		if left.Equals(types.TInt) && right.Equals(types.TInt) {
			return types.TInt
		}
		c.addError(tok, fmt.Sprintf("'%%' requires int operands, got %s and %s", left, right))
		return types.TNil

	case lexer.TOKEN_LESS, lexer.TOKEN_LESS_EQUAL, lexer.TOKEN_GREATER, lexer.TOKEN_GREATER_EQUAL:
		if (left.Equals(types.TInt) && right.Equals(types.TInt)) ||
			(left.Equals(types.TDouble) && right.Equals(types.TDouble)) {
			return types.TBool
		}
		c.addError(tok, fmt.Sprintf("%q requires matching int or double operands, got %s and %s", op.Lexeme, left, right))
		return types.TNil

	case lexer.TOKEN_EQUAL_EQUAL, lexer.TOKEN_BANG_EQUAL:
		if left.Kind == types.Nil || right.Kind == types.Nil || left.Equals(right) {
			return types.TBool
		}
		c.addError(tok, fmt.Sprintf("cannot compare %s and %s", left, right))
		return types.TBool

	case lexer.TOKEN_AND, lexer.TOKEN_OR:
		if left.Equals(types.TBool) && right.Equals(types.TBool) {
			return types.TBool
		}
		c.addError(tok, fmt.Sprintf("%q requires bool operands, got %s and %s", op.Lexeme, left, right))
		return types.TBool

	default:
		c.addError(tok, fmt.Sprintf("unknown operator %q", op.Lexeme))
		return types.TNil
	}
}

func isTextual(t types.Type) bool {
	return t.Kind == types.Char || t.Kind == types.String
}

func (c *Checker) inferRValue(v ast.RValue) types.Type {
	switch n := v.(type) {
	case *ast.Literal:
		return c.inferLiteral(n)
	case *ast.NewExpr:
		return c.inferNew(n)
	case *ast.CallExpr:
		return c.inferCall(n)
	case *ast.PathExpr:
		return c.inferPath(n)
	default:
		return types.TNil
	}
}

func (c *Checker) inferLiteral(l *ast.Literal) types.Type {
	switch l.Token.Type {
	case lexer.TOKEN_INT_LITERAL:
		return types.TInt
	case lexer.TOKEN_DOUBLE_LITERAL:
		return types.TDouble
	case lexer.TOKEN_CHAR_LITERAL:
		return types.TChar
	case lexer.TOKEN_STRING_LITERAL:
		return types.TString
	case lexer.TOKEN_TRUE, lexer.TOKEN_FALSE:
		return types.TBool
	case lexer.TOKEN_NIL:
		return types.TNil
	default:
		return types.TNil
	}
}

func (c *Checker) inferNew(n *ast.NewExpr) types.Type {
	if !c.recordNames[n.TypeName] {
		c.addError(n.Token, fmt.Sprintf("unknown type %q in 'new'", n.TypeName))
		return types.TNil
	}
	return types.NewRecord(n.TypeName)
}

func (c *Checker) inferCall(call *ast.CallExpr) types.Type {
	sym, ok := c.table.Lookup(call.Callee)
	if !ok || sym.Kind != SymFunc {
		c.addError(call.Token, fmt.Sprintf("%q is not a declared function", call.Callee))
		return types.TNil
	}
	if len(call.Args) != len(sym.Sig.Params) {
		c.addError(call.Token, fmt.Sprintf("%q expects %d argument(s), got %d", call.Callee, len(sym.Sig.Params), len(call.Args)))
		return sym.Sig.Return
	}
	for i, arg := range call.Args {
		argType := c.inferExpr(arg)
		if !sym.Sig.Params[i].AssignableFrom(argType) {
			c.addError(call.Token, fmt.Sprintf("%q argument %d: expected %s, got %s", call.Callee, i+1, sym.Sig.Params[i], argType))
		}
	}
	return sym.Sig.Return
}

func (c *Checker) inferPath(p *ast.PathExpr) types.Type {
	head := p.Path[0]
	sym, ok := c.table.Lookup(head.Lexeme)
	if !ok || sym.Kind != SymVar {
		c.addError(head, fmt.Sprintf("%q is not a declared variable", head.Lexeme))
		return types.TNil
	}
	cur := sym.VarType
	for _, seg := range p.Path[1:] {
		t, ok := c.fieldType(cur, seg)
		if !ok {
			c.addError(seg, fmt.Sprintf("%q has no field %q", cur, seg.Lexeme))
			return types.TNil
		}
		cur = t
	}
	return cur
}
