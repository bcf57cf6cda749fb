package parser

import (
	"testing"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.New(src, "test.fe").ScanTokens()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	prog, errs := New(toks, "test.fe").Parse()
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

func TestParseMinimalMain(t *testing.T) {
	prog := parseSource(t, "fun int main() return 0 end")
	if len(prog.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(prog.Decls))
	}
	fn, ok := prog.Decls[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDecl", prog.Decls[0])
	}
	if fn.Name != "main" || len(fn.Params) != 0 {
		t.Errorf("got %+v", fn)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*ast.ReturnStmt); !ok {
		t.Errorf("got %T, want *ast.ReturnStmt", fn.Body[0])
	}
}

func TestParseTypeDecl(t *testing.T) {
	prog := parseSource(t, "type P var x:int = 0 end")
	decl, ok := prog.Decls[0].(*ast.TypeDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.TypeDecl", prog.Decls[0])
	}
	if decl.Name != "P" || len(decl.Fields) != 1 || decl.Fields[0].Name != "x" {
		t.Errorf("got %+v", decl)
	}
}

func TestParseFunctionWithParams(t *testing.T) {
	prog := parseSource(t, "fun int add(a:int, b:int) return a + b end")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Errorf("got %+v", fn.Params)
	}
}

func TestParseIfElseifElse(t *testing.T) {
	src := `fun int main()
		if x == 1 then
			return 1
		elseif x == 2 then
			return 2
		else
			return 3
		end
	end`
	prog := parseSource(t, src)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	ifs := fn.Body[0].(*ast.IfStmt)
	if len(ifs.ElseIfs) != 1 || !ifs.HasElse {
		t.Errorf("got %+v", ifs)
	}
}

func TestParseForLoop(t *testing.T) {
	prog := parseSource(t, "fun int main() for i = 0 to 10 do print(\"x\") end return 0 end")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	forStmt, ok := fn.Body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("got %T", fn.Body[0])
	}
	if forStmt.Var != "i" {
		t.Errorf("got %+v", forStmt)
	}
}

func TestParseAssignmentPath(t *testing.T) {
	prog := parseSource(t, "fun int main() a.b.c = 5 return 0 end")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	assign, ok := fn.Body[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("got %T", fn.Body[0])
	}
	if len(assign.Path) != 3 {
		t.Fatalf("got path %+v", assign.Path)
	}
	wantSegments := []string{"a", "b", "c"}
	for i, want := range wantSegments {
		if assign.Path[i].Lexeme != want {
			t.Errorf("path segment %d: got %q, want %q", i, assign.Path[i].Lexeme, want)
		}
	}
}

func TestParseTryCatch(t *testing.T) {
	prog := parseSource(t, `fun int main()
		try
			var x = 1
		catch (ZeroDivision)
			print("caught")
		end
		return 0
	end`)
	fn := prog.Decls[0].(*ast.FunctionDecl)
	tryStmt, ok := fn.Body[0].(*ast.TryStmt)
	if !ok {
		t.Fatalf("got %T", fn.Body[0])
	}
	if kind, ok := ast.BuiltinErrorKind(tryStmt.Catch.Match); !ok || kind != ast.ErrorKindZeroDivision {
		t.Errorf("got %+v", tryStmt.Catch.Match)
	}
}

func TestParseErrorRecoversAndReportsLocation(t *testing.T) {
	toks, _ := lexer.New("fun int main() return ) end", "test.fe").ScanTokens()
	_, errs := New(toks, "test.fe").Parse()
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error")
	}
	if errs[0].Location.Line != 1 {
		t.Errorf("got location %+v", errs[0].Location)
	}
}
