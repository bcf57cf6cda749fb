package interp

import (
	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/object"
)

// execStmts runs stmts in order, stopping at the first one that
// produces a non-none control or an exception.
func (in *Interpreter) execStmts(stmts []ast.Stmt) (control, object.Value, *Exception) {
	for _, s := range stmts {
		ctrl, val, exc := in.execStmt(s)
		if ctrl != ctrlNone || exc != nil {
			return ctrl, val, exc
		}
	}
	return ctrlNone, object.Nil(), nil
}

func (in *Interpreter) execStmt(s ast.Stmt) (control, object.Value, *Exception) {
	if in.trace {
		in.traceStmt(s)
	}
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		v, exc := in.evalExpr(n.Init)
		if exc != nil {
			return ctrlThrow, object.Nil(), exc
		}
		in.table.Define(n.Name, v)
		return ctrlNone, object.Nil(), nil

	case *ast.AssignStmt:
		if exc := in.execAssign(n); exc != nil {
			return ctrlThrow, object.Nil(), exc
		}
		return ctrlNone, object.Nil(), nil

	case *ast.ReturnStmt:
		v, exc := in.evalExpr(n.Value)
		if exc != nil {
			return ctrlThrow, object.Nil(), exc
		}
		return ctrlReturn, v, nil

	case *ast.ThrowStmt:
		v, exc := in.evalExpr(n.Value)
		if exc != nil {
			return ctrlThrow, object.Nil(), exc
		}
		return ctrlThrow, object.Nil(), &Exception{
			Kind: diag.KindGeneric, UserThrown: true, Value: v, Loc: locOf(n.Token, in.file),
		}

	case *ast.ExprStmt:
		if _, exc := in.evalExpr(n.Value); exc != nil {
			return ctrlThrow, object.Nil(), exc
		}
		return ctrlNone, object.Nil(), nil

	case *ast.IfStmt:
		return in.execIf(n)

	case *ast.WhileStmt:
		return in.execWhile(n)

	case *ast.ForStmt:
		return in.execFor(n)

	case *ast.TryStmt:
		return in.execTry(n)

	default:
		return ctrlNone, object.Nil(), nil
	}
}

func (in *Interpreter) execAssign(a *ast.AssignStmt) *Exception {
	val, exc := in.evalExpr(a.Value)
	if exc != nil {
		return exc
	}

	if len(a.Path) == 1 {
		in.table.Assign(a.Path[0].Lexeme, val)
		return nil
	}

	head, _ := in.table.Lookup(a.Path[0].Lexeme)
	cur := head
	for _, seg := range a.Path[1 : len(a.Path)-1] {
		record, _ := in.heap.Get(cur.Object)
		cur = record.Fields[seg.Lexeme]
	}
	record, _ := in.heap.Get(cur.Object)
	last := a.Path[len(a.Path)-1]
	record.Fields[last.Lexeme] = val
	return nil
}

// execIf runs the first branch (primary, then each elseif in order)
// whose condition is true in a fresh inner frame, otherwise the else
// body if present; no branch at all is a no-op.
func (in *Interpreter) execIf(n *ast.IfStmt) (control, object.Value, *Exception) {
	branches := append([]ast.CondBranch{n.Primary}, n.ElseIfs...)
	for _, b := range branches {
		cond, exc := in.evalExpr(b.Cond)
		if exc != nil {
			return ctrlThrow, object.Nil(), exc
		}
		if cond.Bool {
			in.table.Push()
			ctrl, val, exc := in.execStmts(b.Body)
			in.table.Pop()
			return ctrl, val, exc
		}
	}
	if n.HasElse {
		in.table.Push()
		ctrl, val, exc := in.execStmts(n.Else)
		in.table.Pop()
		return ctrl, val, exc
	}
	return ctrlNone, object.Nil(), nil
}

// execWhile re-enters a fresh body frame each iteration; frames from
// completed iterations are discarded.
func (in *Interpreter) execWhile(n *ast.WhileStmt) (control, object.Value, *Exception) {
	for {
		cond, exc := in.evalExpr(n.Cond)
		if exc != nil {
			return ctrlThrow, object.Nil(), exc
		}
		if !cond.Bool {
			return ctrlNone, object.Nil(), nil
		}

		in.table.Push()
		ctrl, val, exc := in.execStmts(n.Body)
		in.table.Pop()
		if ctrl != ctrlNone || exc != nil {
			return ctrl, val, exc
		}
	}
}

// execFor binds the loop identifier in an outer frame that persists
// across iterations and runs the body in a fresh inner frame per
// iteration, from start inclusive up to end exclusive.
func (in *Interpreter) execFor(n *ast.ForStmt) (control, object.Value, *Exception) {
	start, exc := in.evalExpr(n.Start)
	if exc != nil {
		return ctrlThrow, object.Nil(), exc
	}
	end, exc := in.evalExpr(n.End)
	if exc != nil {
		return ctrlThrow, object.Nil(), exc
	}

	in.table.Push()
	in.table.Define(n.Var, start)

	for i := start.Int; i < end.Int; i++ {
		in.table.Assign(n.Var, object.Int(i))

		in.table.Push()
		ctrl, val, exc := in.execStmts(n.Body)
		in.table.Pop()
		if ctrl != ctrlNone || exc != nil {
			in.table.Pop()
			return ctrl, val, exc
		}
	}

	in.table.Pop()
	return ctrlNone, object.Nil(), nil
}

// execTry runs Body in a fresh frame. An uncaught throw or a runtime
// error is matched against Catch: either by built-in error-kind
// identifier (ZeroDivision, IndexOutOfBounds) or, for a user-thrown
// value, by evaluating Catch.Match in the enclosing scope and comparing
// it for equal value and type. An unmatched exception re-raises.
func (in *Interpreter) execTry(n *ast.TryStmt) (control, object.Value, *Exception) {
	in.table.Push()
	ctrl, val, exc := in.execStmts(n.Body)
	in.table.Pop()

	if ctrl != ctrlThrow {
		return ctrl, val, exc
	}

	if in.catchMatches(n.Catch, exc) {
		in.table.Push()
		cctrl, cval, cexc := in.execStmts(n.Catch.Body)
		in.table.Pop()
		return cctrl, cval, cexc
	}
	return ctrlThrow, object.Nil(), exc
}

func (in *Interpreter) catchMatches(catch ast.CatchClause, exc *Exception) bool {
	if kind, ok := ast.BuiltinErrorKind(catch.Match); ok {
		if exc.UserThrown {
			return false
		}
		switch kind {
		case ast.ErrorKindZeroDivision:
			return exc.Kind == diag.KindZeroDivision
		case ast.ErrorKindIndexOutOfBounds:
			return exc.Kind == diag.KindIndexOutOfBounds
		}
		return false
	}

	if !exc.UserThrown {
		return false
	}
	matchVal, matchExc := in.evalExpr(catch.Match)
	if matchExc != nil {
		return false
	}
	return matchVal.Kind == exc.Value.Kind && matchVal.Equal(exc.Value)
}
