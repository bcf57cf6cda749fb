// Package printer renders a parsed Program back to Ferro source text.
//
// It exists to support spec.md §8's pretty-print/re-parse round-trip
// property: printing a parsed AST and re-parsing the result must yield
// an AST structurally equal to the first. The traversal mirrors the
// switch-on-concrete-type style used throughout internal/typecheck and
// internal/interp rather than a visitor interface, matching this
// codebase's tagged-union approach to the AST (spec.md §9 Design Notes).
package printer

import (
	"fmt"
	"strings"

	"github.com/ferro-lang/ferro/internal/ast"
)

const indentWidth = 3

// Print renders prog as Ferro source text.
func Print(prog *ast.Program) string {
	p := &printer{}
	p.program(prog)
	return p.out.String()
}

type printer struct {
	out    strings.Builder
	indent int
}

func (p *printer) incIndent() { p.indent += indentWidth }
func (p *printer) decIndent() { p.indent -= indentWidth }
func (p *printer) pad()       { p.out.WriteString(strings.Repeat(" ", p.indent)) }

func (p *printer) program(prog *ast.Program) {
	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.FunctionDecl:
			p.functionDecl(n)
		case *ast.TypeDecl:
			p.typeDecl(n)
		}
	}
}

func (p *printer) functionDecl(f *ast.FunctionDecl) {
	fmt.Fprintf(&p.out, "fun %s %s(", f.ReturnType.Lexeme, f.Name)
	for i, param := range f.Params {
		if i > 0 {
			p.out.WriteString(", ")
		}
		fmt.Fprintf(&p.out, "%s:%s", param.Name, param.TypeToken.Lexeme)
	}
	p.out.WriteString(")\n")
	p.incIndent()
	p.stmts(f.Body)
	p.decIndent()
	p.out.WriteString("end\n\n")
}

func (p *printer) typeDecl(t *ast.TypeDecl) {
	fmt.Fprintf(&p.out, "type %s\n", t.Name)
	p.incIndent()
	for _, v := range t.Fields {
		p.pad()
		p.varDeclStmt(v)
		p.out.WriteString("\n")
	}
	p.decIndent()
	p.out.WriteString("end\n\n")
}

func (p *printer) stmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		p.pad()
		p.stmt(s)
		p.out.WriteString("\n")
	}
}

func (p *printer) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		p.varDeclStmt(n)
	case *ast.AssignStmt:
		p.assignStmt(n)
	case *ast.ReturnStmt:
		p.out.WriteString("return ")
		p.expr(&n.Value)
	case *ast.IfStmt:
		p.ifStmt(n)
	case *ast.WhileStmt:
		p.whileStmt(n)
	case *ast.ForStmt:
		p.forStmt(n)
	case *ast.TryStmt:
		p.tryStmt(n)
	case *ast.ThrowStmt:
		p.out.WriteString("throw ")
		p.expr(&n.Value)
	case *ast.ExprStmt:
		p.expr(&n.Value)
	default:
		panic(fmt.Sprintf("printer: unhandled statement type %T", s))
	}
}

func (p *printer) varDeclStmt(v *ast.VarDeclStmt) {
	fmt.Fprintf(&p.out, "var %s", v.Name)
	if v.ExplicitType != nil {
		fmt.Fprintf(&p.out, ":%s", v.ExplicitType.Lexeme)
	}
	p.out.WriteString(" = ")
	p.expr(&v.Init)
}

func (p *printer) assignStmt(a *ast.AssignStmt) {
	for i, tok := range a.Path {
		if i > 0 {
			p.out.WriteString(".")
		}
		p.out.WriteString(tok.Lexeme)
	}
	p.out.WriteString(" = ")
	p.expr(&a.Value)
}

func (p *printer) ifStmt(n *ast.IfStmt) {
	p.out.WriteString("if ")
	p.expr(&n.Primary.Cond)
	p.out.WriteString(" then\n")
	p.incIndent()
	p.stmts(n.Primary.Body)
	p.decIndent()

	for _, ei := range n.ElseIfs {
		p.pad()
		p.out.WriteString("elseif ")
		p.expr(&ei.Cond)
		p.out.WriteString(" then\n")
		p.incIndent()
		p.stmts(ei.Body)
		p.decIndent()
	}

	if n.HasElse {
		p.pad()
		p.out.WriteString("else\n")
		p.incIndent()
		p.stmts(n.Else)
		p.decIndent()
	}

	p.pad()
	p.out.WriteString("end")
}

func (p *printer) whileStmt(n *ast.WhileStmt) {
	p.out.WriteString("while ")
	p.expr(&n.Cond)
	p.out.WriteString(" do\n")
	p.incIndent()
	p.stmts(n.Body)
	p.decIndent()
	p.pad()
	p.out.WriteString("end")
}

func (p *printer) forStmt(n *ast.ForStmt) {
	fmt.Fprintf(&p.out, "for %s = ", n.Var)
	p.expr(&n.Start)
	p.out.WriteString(" to ")
	p.expr(&n.End)
	p.out.WriteString(" do\n")
	p.incIndent()
	p.stmts(n.Body)
	p.decIndent()
	p.pad()
	p.out.WriteString("end")
}

func (p *printer) tryStmt(n *ast.TryStmt) {
	p.out.WriteString("try\n")
	p.incIndent()
	p.stmts(n.Body)
	p.decIndent()
	p.pad()
	p.out.WriteString("catch (")
	if name, ok := ast.BuiltinErrorKind(n.Catch.Match); ok {
		p.out.WriteString(name)
	} else {
		p.expr(&n.Catch.Match)
	}
	p.out.WriteString(")\n")
	p.incIndent()
	p.stmts(n.Catch.Body)
	p.decIndent()
	p.pad()
	p.out.WriteString("end")
}

func (p *printer) expr(e *ast.Expr) {
	if e.Neg {
		p.out.WriteString("neg ")
	}
	if e.Not {
		p.out.WriteString("not ")
	}

	if e.Group != nil {
		p.out.WriteString("(")
		p.expr(e.Group)
		p.out.WriteString(")")
	} else {
		p.rvalue(e.Value)
	}

	if e.Op != nil {
		fmt.Fprintf(&p.out, " %s ", e.Op.Lexeme)
		p.expr(e.Right)
	}
}

func (p *printer) rvalue(r ast.RValue) {
	switch n := r.(type) {
	case *ast.Literal:
		p.out.WriteString(n.Token.Lexeme)
	case *ast.NewExpr:
		fmt.Fprintf(&p.out, "new %s", n.TypeName)
	case *ast.CallExpr:
		fmt.Fprintf(&p.out, "%s(", n.Callee)
		for i := range n.Args {
			if i > 0 {
				p.out.WriteString(", ")
			}
			p.expr(&n.Args[i])
		}
		p.out.WriteString(")")
	case *ast.PathExpr:
		for i, tok := range n.Path {
			if i > 0 {
				p.out.WriteString(".")
			}
			p.out.WriteString(tok.Lexeme)
		}
	default:
		panic(fmt.Sprintf("printer: unhandled rvalue type %T", r))
	}
}
