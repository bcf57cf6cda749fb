package interp

import (
	"github.com/ferro-lang/ferro/internal/ast"
	"go.uber.org/zap"
)

// traceStmt emits one structured debug entry per statement when
// config.Config.TraceEval is set, mirroring the teacher's per-step
// compiler trace but scoped to the interpreter's own evaluation loop.
func (in *Interpreter) traceStmt(s ast.Stmt) {
	loc := s.Loc()
	in.logger.Debug("eval",
		zap.String("kind", stmtKind(s)),
		zap.Int("line", loc.Line),
		zap.Int("column", loc.Column),
		zap.Int("depth", in.callDepth),
	)
}

func stmtKind(s ast.Stmt) string {
	switch s.(type) {
	case *ast.VarDeclStmt:
		return "var"
	case *ast.AssignStmt:
		return "assign"
	case *ast.ReturnStmt:
		return "return"
	case *ast.ThrowStmt:
		return "throw"
	case *ast.ExprStmt:
		return "expr"
	case *ast.IfStmt:
		return "if"
	case *ast.WhileStmt:
		return "while"
	case *ast.ForStmt:
		return "for"
	case *ast.TryStmt:
		return "try"
	default:
		return "stmt"
	}
}
