package interp

import (
	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/object"
)

// evalExpr evaluates the single expression production: an optional
// group, an optional neg/not prefix, and an optional infix operator
// applied to a snapshotted left operand and a freshly evaluated right
// operand (spec.md §5: operands evaluate strictly left to right).
func (in *Interpreter) evalExpr(e ast.Expr) (object.Value, *Exception) {
	var val object.Value
	var exc *Exception

	if e.Group != nil {
		val, exc = in.evalExpr(*e.Group)
	} else {
		val, exc = in.evalRValue(e.Value, e.Token)
	}
	if exc != nil {
		return object.Nil(), exc
	}

	if e.Neg {
		val = negate(val)
	}
	if e.Not {
		val = object.Bool(!val.Bool)
	}

	if e.Op != nil {
		right, exc := in.evalExpr(*e.Right)
		if exc != nil {
			return object.Nil(), exc
		}
		return in.applyBinary(*e.Op, val, right)
	}

	return val, nil
}

func negate(v object.Value) object.Value {
	if v.Kind == object.KindDouble {
		return object.Double(-v.Double)
	}
	return object.Int(-v.Int)
}

func (in *Interpreter) evalRValue(v ast.RValue, tok lexer.Token) (object.Value, *Exception) {
	switch n := v.(type) {
	case *ast.Literal:
		return literalValue(n.Token), nil
	case *ast.NewExpr:
		return in.evalNew(n)
	case *ast.CallExpr:
		return in.evalCall(n)
	case *ast.PathExpr:
		return in.evalPath(n), nil
	default:
		return object.Nil(), genericExc("unrecognized expression", tok, in.file)
	}
}

func literalValue(tok lexer.Token) object.Value {
	switch tok.Type {
	case lexer.TOKEN_INT_LITERAL:
		return object.Int(tok.Literal.(int64))
	case lexer.TOKEN_DOUBLE_LITERAL:
		return object.Double(tok.Literal.(float64))
	case lexer.TOKEN_CHAR_LITERAL:
		return object.Char(tok.Literal.(rune))
	case lexer.TOKEN_STRING_LITERAL:
		return object.Str(tok.Literal.(string))
	case lexer.TOKEN_TRUE:
		return object.Bool(true)
	case lexer.TOKEN_FALSE:
		return object.Bool(false)
	default:
		return object.Nil()
	}
}

// evalPath resolves an identifier path by looking up the head binding
// and following field accesses through the heap. A well-typed program
// never misses here; an unresolved segment yields nil defensively.
func (in *Interpreter) evalPath(p *ast.PathExpr) object.Value {
	cur, ok := in.table.Lookup(p.Path[0].Lexeme)
	if !ok {
		return object.Nil()
	}
	for _, seg := range p.Path[1:] {
		record, ok := in.heap.Get(cur.Object)
		if !ok {
			return object.Nil()
		}
		cur = record.Fields[seg.Lexeme]
	}
	return cur
}

func (in *Interpreter) applyBinary(op lexer.Token, left, right object.Value) (object.Value, *Exception) {
	switch op.Type {
	case lexer.TOKEN_PLUS:
		switch {
		case left.Kind == object.KindInt && right.Kind == object.KindInt:
			return object.Int(left.Int + right.Int), nil
		case left.Kind == object.KindDouble && right.Kind == object.KindDouble:
			return object.Double(left.Double + right.Double), nil
		default:
			return object.Str(left.String() + right.String()), nil
		}

	case lexer.TOKEN_MINUS:
		if left.Kind == object.KindDouble {
			return object.Double(left.Double - right.Double), nil
		}
		return object.Int(left.Int - right.Int), nil

	case lexer.TOKEN_STAR:
		if left.Kind == object.KindDouble {
			return object.Double(left.Double * right.Double), nil
		}
		return object.Int(left.Int * right.Int), nil

	case lexer.TOKEN_SLASH:
		if left.Kind == object.KindDouble {
			if right.Double == 0 {
				return object.Nil(), zeroDivisionExc(op, in.file)
			}
			return object.Double(left.Double / right.Double), nil
		}
		if right.Int == 0 {
			return object.Nil(), zeroDivisionExc(op, in.file)
		}
		return object.Int(left.Int / right.Int), nil

	case lexer.TOKEN_PERCENT:
		if right.Int == 0 {
			return object.Nil(), zeroDivisionExc(op, in.file)
		}
		return object.Int(left.Int % right.Int), nil

	case lexer.TOKEN_LESS:
		return object.Bool(numericLess(left, right)), nil
	case lexer.TOKEN_LESS_EQUAL:
		return object.Bool(numericLess(left, right) || numericEqual(left, right)), nil
	case lexer.TOKEN_GREATER:
		return object.Bool(!numericLess(left, right) && !numericEqual(left, right)), nil
	case lexer.TOKEN_GREATER_EQUAL:
		return object.Bool(!numericLess(left, right)), nil

	case lexer.TOKEN_EQUAL_EQUAL:
		return object.Bool(left.Equal(right)), nil
	case lexer.TOKEN_BANG_EQUAL:
		return object.Bool(!left.Equal(right)), nil

	case lexer.TOKEN_AND:
		return object.Bool(left.Bool && right.Bool), nil
	case lexer.TOKEN_OR:
		return object.Bool(left.Bool || right.Bool), nil

	default:
		return object.Nil(), genericExc("unknown operator "+op.Lexeme, op, in.file)
	}
}

func numericLess(left, right object.Value) bool {
	if left.Kind == object.KindDouble {
		return left.Double < right.Double
	}
	return left.Int < right.Int
}

func numericEqual(left, right object.Value) bool {
	if left.Kind == object.KindDouble {
		return left.Double == right.Double
	}
	return left.Int == right.Int
}
