package typecheck

import (
	"testing"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/parser"
)

func checkSource(t *testing.T, src string) (*ast.Program, []string) {
	t.Helper()
	toks, lexErrs := lexer.New(src, "test.fe").ScanTokens()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	prog, parseErrs := parser.New(toks, "test.fe").Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	diags := New("test.fe").Check(prog)
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return prog, msgs
}

func TestAcceptsMinimalMain(t *testing.T) {
	_, errs := checkSource(t, "fun int main() return 0 end")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRejectsMissingMain(t *testing.T) {
	_, errs := checkSource(t, "fun int helper() return 0 end")
	if len(errs) == 0 {
		t.Fatal("expected an error for missing main")
	}
}

func TestRejectsWrongMainSignature(t *testing.T) {
	_, errs := checkSource(t, "fun bool main() return true end")
	if len(errs) == 0 {
		t.Fatal("expected an error for main not returning int")
	}
}

func TestRejectsShadowingInSameScope(t *testing.T) {
	_, errs := checkSource(t, `fun int main()
		var x = 1
		var x = 2
		return 0
	end`)
	if len(errs) == 0 {
		t.Fatal("expected a shadowing error")
	}
}

func TestAllowsShadowingInNestedScope(t *testing.T) {
	_, errs := checkSource(t, `fun int main()
		var x = 1
		if true then
			var x = 2
		end
		return 0
	end`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRejectsTypeMismatchInVarDecl(t *testing.T) {
	_, errs := checkSource(t, `fun int main()
		var x:int = "hello"
		return 0
	end`)
	if len(errs) == 0 {
		t.Fatal("expected a type mismatch error")
	}
}

func TestNilOnlyAllowedIntoRecordType(t *testing.T) {
	_, errs := checkSource(t, `type P var x:int = 0 end
	fun int main()
		var p:P = nil
		return 0
	end`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	_, errs2 := checkSource(t, `fun int main()
		var x:int = nil
		return 0
	end`)
	if len(errs2) == 0 {
		t.Fatal("expected an error assigning nil into an int variable")
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	_, errs := checkSource(t, `fun int main()
		if 1 then
			return 1
		end
		return 0
	end`)
	if len(errs) == 0 {
		t.Fatal("expected a condition-must-be-bool error")
	}
}

func TestForBoundsMustBeInt(t *testing.T) {
	_, errs := checkSource(t, `fun int main()
		for i = 1.0 to 10 do
		end
		return 0
	end`)
	if len(errs) == 0 {
		t.Fatal("expected a for-loop bounds error")
	}
}

func TestStringPlusCharConcatenates(t *testing.T) {
	_, errs := checkSource(t, `fun int main()
		var s = "ab" + 'c'
		print(s)
		return 0
	end`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRecordFieldPathTypeChecks(t *testing.T) {
	_, errs := checkSource(t, `type P var x:int = 0 end
	fun int main()
		var p = new P
		p.x = 5
		return p.x
	end`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestTwoHopRecordFieldPathTypeChecks(t *testing.T) {
	_, errs := checkSource(t, `type Inner var v:int = 0 end
	type Outer var inner:Inner = new Inner end
	fun int main()
		var o = new Outer
		o.inner.v = 5
		return o.inner.v
	end`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestCallArgCountMismatch(t *testing.T) {
	_, errs := checkSource(t, `fun int add(a:int, b:int) return a + b end
	fun int main()
		return add(1)
	end`)
	if len(errs) == 0 {
		t.Fatal("expected an argument-count error")
	}
}

func TestThrowRequiresPrimitivePayload(t *testing.T) {
	_, errs := checkSource(t, `type P var x:int = 0 end
	fun int main()
		throw new P
		return 0
	end`)
	if len(errs) == 0 {
		t.Fatal("expected a throw-payload error")
	}
}

func TestCatchByBuiltinErrorKindNeedsNoExpressionType(t *testing.T) {
	_, errs := checkSource(t, `fun int main()
		try
			var x = 1 / 0
		catch (ZeroDivision)
			print("caught")
		end
		return 0
	end`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
