package typecheck

import (
	"fmt"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/symtab"
	"github.com/ferro-lang/ferro/internal/types"
)

// Checker holds the checking pass's own symbol-table instance,
// independent of the interpreter's (spec.md §2: "The checker and
// interpreter each own an independent symbol-table instance").
type Checker struct {
	table        *symtab.Table[*Symbol]
	recordNames  map[string]bool
	diags        []diag.Diagnostic
	file         string
	currentRet   types.Type
}

// New creates a Checker. file is used only for diagnostics.
func New(file string) *Checker {
	return &Checker{
		table:       symtab.New[*Symbol](),
		recordNames: map[string]bool{},
		file:        file,
	}
}

// Check runs the full three-pass check over prog and returns every
// diagnostic collected; an empty slice means the program is accepted.
func (c *Checker) Check(prog *ast.Program) []diag.Diagnostic {
	c.seedBuiltins()

	// Pass 1: register every record type name so mutually-referencing
	// field/parameter/return types resolve regardless of declaration order.
	for _, d := range prog.Decls {
		if td, ok := d.(*ast.TypeDecl); ok {
			c.recordNames[td.Name] = true
			c.table.Define(td.Name, &Symbol{Kind: SymRecordType, Fields: map[string]types.Type{}})
		}
	}

	// Pass 2: fill in record field types and register function signatures.
	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.TypeDecl:
			c.registerTypeFields(n)
		case *ast.FunctionDecl:
			c.registerFunctionSignature(n)
		}
	}

	c.checkMainSignature(prog)

	// Pass 3: check record field initializers and function bodies.
	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.TypeDecl:
			c.checkTypeFieldInits(n)
		case *ast.FunctionDecl:
			c.checkFunctionBody(n)
		}
	}

	return c.diags
}

// seedBuiltins registers the eight built-in functions spec.md §4.3
// requires be visible before any user declaration is checked.
func (c *Checker) seedBuiltins() {
	builtin := func(name string, params []types.Type, ret types.Type) {
		c.table.Define(name, &Symbol{Kind: SymFunc, Sig: types.Signature{Params: params, Return: ret}})
	}
	builtin("print", []types.Type{types.TString}, types.TNil)
	builtin("read", nil, types.TString)
	builtin("stoi", []types.Type{types.TString}, types.TInt)
	builtin("itos", []types.Type{types.TInt}, types.TString)
	builtin("stod", []types.Type{types.TString}, types.TDouble)
	builtin("dtos", []types.Type{types.TDouble}, types.TString)
	builtin("get", []types.Type{types.TInt, types.TString}, types.TChar)
	builtin("length", []types.Type{types.TString}, types.TInt)
}

func (c *Checker) registerTypeFields(td *ast.TypeDecl) {
	sym, _ := c.table.Lookup(td.Name)
	for _, f := range td.Fields {
		sym.Fields[f.Name] = c.resolveVarDeclType(f)
	}
}

// resolveVarDeclType determines a var declaration's declared type
// without checking its initializer (used while registering record
// fields ahead of body-checking).
func (c *Checker) resolveVarDeclType(v *ast.VarDeclStmt) types.Type {
	if v.ExplicitType != nil {
		return c.resolveTypeToken(*v.ExplicitType)
	}
	// No explicit type: infer from the initializer in a scratch pass.
	// Record field declarations in practice always carry an explicit
	// type in accepted programs; falling back to inference keeps this
	// total rather than partial.
	return c.inferExpr(v.Init)
}

func (c *Checker) registerFunctionSignature(fn *ast.FunctionDecl) {
	sig := types.Signature{Return: c.resolveTypeToken(fn.ReturnType)}
	for _, p := range fn.Params {
		sig.Params = append(sig.Params, c.resolveTypeToken(p.TypeToken))
	}
	c.table.Define(fn.Name, &Symbol{Kind: SymFunc, Sig: sig})
}

func (c *Checker) checkMainSignature(prog *ast.Program) {
	loc := diag.Location{File: c.file, Line: 1, Column: 1}
	if len(prog.Decls) > 0 {
		loc = diag.Location{File: c.file, Line: prog.Decls[0].Loc().Line, Column: prog.Decls[0].Loc().Column}
	}
	sym, ok := c.table.Lookup("main")
	if !ok || sym.Kind != SymFunc {
		c.addErrorAt(loc, "program must declare a function named 'main'")
		return
	}
	if len(sym.Sig.Params) != 0 {
		c.addErrorAt(loc, "'main' must take no parameters")
	}
	if !sym.Sig.Return.Equals(types.TInt) {
		c.addErrorAt(loc, "'main' must return int")
	}
}

// resolveTypeToken maps a type token (primitive, record identifier, or
// 'nil') to its types.Type, reporting an error for an unknown record
// name.
func (c *Checker) resolveTypeToken(tok lexer.Token) types.Type {
	switch tok.Type {
	case lexer.TOKEN_BOOL_TYPE:
		return types.TBool
	case lexer.TOKEN_INT_TYPE:
		return types.TInt
	case lexer.TOKEN_DOUBLE_TYPE:
		return types.TDouble
	case lexer.TOKEN_CHAR_TYPE:
		return types.TChar
	case lexer.TOKEN_STRING_TYPE:
		return types.TString
	case lexer.TOKEN_NIL:
		return types.TNil
	case lexer.TOKEN_IDENTIFIER:
		if !c.recordNames[tok.Lexeme] {
			c.addError(tok, fmt.Sprintf("unknown type %q", tok.Lexeme))
			return types.TNil
		}
		return types.NewRecord(tok.Lexeme)
	default:
		c.addError(tok, fmt.Sprintf("expected a type, got %q", tok.Lexeme))
		return types.TNil
	}
}

func (c *Checker) checkTypeFieldInits(td *ast.TypeDecl) {
	c.table.Push()
	for _, f := range td.Fields {
		c.checkVarDecl(f)
	}
	c.table.Pop()
}

func (c *Checker) checkFunctionBody(fn *ast.FunctionDecl) {
	c.currentRet = c.resolveTypeToken(fn.ReturnType)
	c.table.Push()
	for _, p := range fn.Params {
		c.table.Define(p.Name, &Symbol{Kind: SymVar, VarType: c.resolveTypeToken(p.TypeToken)})
	}
	c.checkStmts(fn.Body)
	c.table.Pop()
}

func (c *Checker) checkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

func (c *Checker) checkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		c.checkVarDecl(n)
	case *ast.AssignStmt:
		c.checkAssign(n)
	case *ast.ReturnStmt:
		c.checkReturn(n)
	case *ast.IfStmt:
		c.checkIf(n)
	case *ast.WhileStmt:
		c.checkWhile(n)
	case *ast.ForStmt:
		c.checkFor(n)
	case *ast.TryStmt:
		c.checkTry(n)
	case *ast.ThrowStmt:
		c.checkThrow(n)
	case *ast.ExprStmt:
		c.inferExpr(n.Value)
	}
}

func (c *Checker) checkVarDecl(v *ast.VarDeclStmt) {
	if c.table.DefinedInCurrent(v.Name) {
		c.addError(v.Token, fmt.Sprintf("%q is already declared in this scope", v.Name))
	}

	initType := c.inferExpr(v.Init)

	var declared types.Type
	if v.ExplicitType != nil {
		declared = c.resolveTypeToken(*v.ExplicitType)
		if initType.Kind == types.Nil {
			if declared.Kind != types.Record {
				c.addError(v.Token, "nil may only initialize a record-typed variable")
			}
		} else if !declared.Equals(initType) {
			c.addError(v.Token, fmt.Sprintf("cannot initialize %s variable %q with %s value", declared, v.Name, initType))
		}
	} else {
		if initType.Kind == types.Nil {
			c.addError(v.Token, "nil initializer requires an explicit type")
		}
		declared = initType
	}

	c.table.Define(v.Name, &Symbol{Kind: SymVar, VarType: declared})
}

func (c *Checker) checkAssign(a *ast.AssignStmt) {
	head := a.Path[0]
	sym, ok := c.table.Lookup(head.Lexeme)
	if !ok || sym.Kind != SymVar {
		c.addError(head, fmt.Sprintf("%q is not a declared variable", head.Lexeme))
		return
	}
	cur := sym.VarType
	for _, seg := range a.Path[1:] {
		fieldType, ok := c.fieldType(cur, seg)
		if !ok {
			c.addError(seg, fmt.Sprintf("%q has no field %q", cur, seg.Lexeme))
			return
		}
		cur = fieldType
	}

	valType := c.inferExpr(a.Value)
	if !cur.AssignableFrom(valType) {
		c.addError(a.Token, fmt.Sprintf("cannot assign %s value to %s location", valType, cur))
	}
}

// fieldType resolves fieldTok as a field of record type recordType.
func (c *Checker) fieldType(recordType types.Type, fieldTok lexer.Token) (types.Type, bool) {
	if recordType.Kind != types.Record {
		return types.TNil, false
	}
	sym, ok := c.table.Lookup(recordType.Name)
	if !ok || sym.Kind != SymRecordType {
		return types.TNil, false
	}
	t, ok := sym.Fields[fieldTok.Lexeme]
	return t, ok
}

func (c *Checker) checkReturn(r *ast.ReturnStmt) {
	t := c.inferExpr(r.Value)
	if t.Kind == types.Nil {
		return // spec.md §4.3: "unless it is nil"
	}
	if !t.Equals(c.currentRet) {
		c.addError(r.Token, fmt.Sprintf("function returns %s, got %s", c.currentRet, t))
	}
}

func (c *Checker) checkIf(i *ast.IfStmt) {
	c.checkCondBranch(i.Primary)
	for _, b := range i.ElseIfs {
		c.checkCondBranch(b)
	}
	if i.HasElse {
		c.table.Push()
		c.checkStmts(i.Else)
		c.table.Pop()
	}
}

func (c *Checker) checkCondBranch(b ast.CondBranch) {
	t := c.inferExpr(b.Cond)
	if !t.Equals(types.TBool) {
		c.addError(b.Cond.Token, fmt.Sprintf("condition must be bool, got %s", t))
	}
	c.table.Push()
	c.checkStmts(b.Body)
	c.table.Pop()
}

func (c *Checker) checkWhile(w *ast.WhileStmt) {
	t := c.inferExpr(w.Cond)
	if !t.Equals(types.TBool) {
		c.addError(w.Cond.Token, fmt.Sprintf("while condition must be bool, got %s", t))
	}
	c.table.Push()
	c.checkStmts(w.Body)
	c.table.Pop()
}

func (c *Checker) checkFor(f *ast.ForStmt) {
	startT := c.inferExpr(f.Start)
	endT := c.inferExpr(f.End)
	if !startT.Equals(types.TInt) {
		c.addError(f.Token, fmt.Sprintf("for loop start must be int, got %s", startT))
	}
	if !endT.Equals(types.TInt) {
		c.addError(f.Token, fmt.Sprintf("for loop end must be int, got %s", endT))
	}
	c.table.Push()
	c.table.Define(f.Var, &Symbol{Kind: SymVar, VarType: types.TInt})
	c.checkStmts(f.Body)
	c.table.Pop()
}

func (c *Checker) checkTry(tr *ast.TryStmt) {
	c.table.Push()
	c.checkStmts(tr.Body)
	c.table.Pop()

	if _, ok := ast.BuiltinErrorKind(tr.Catch.Match); !ok {
		t := c.inferExpr(tr.Catch.Match)
		if !isThrowable(t) {
			c.addError(tr.Catch.Token, fmt.Sprintf("catch condition must be int, double, or bool, got %s", t))
		}
	}

	c.table.Push()
	c.checkStmts(tr.Catch.Body)
	c.table.Pop()
}

func (c *Checker) checkThrow(th *ast.ThrowStmt) {
	t := c.inferExpr(th.Value)
	if !isThrowable(t) {
		c.addError(th.Token, fmt.Sprintf("throw value must be int, double, or bool, got %s", t))
	}
}

func isThrowable(t types.Type) bool {
	return t.Kind == types.Int || t.Kind == types.Double || t.Kind == types.Bool
}

func (c *Checker) addError(tok lexer.Token, message string) {
	c.addErrorAt(diag.Location{File: c.file, Line: tok.Line, Column: tok.Column}, message)
}

func (c *Checker) addErrorAt(loc diag.Location, message string) {
	c.diags = append(c.diags, diag.New(diag.Type, message, loc))
}
