package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.New(src, "test.fe").ScanTokens()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	prog, parseErrs := parser.New(toks, "test.fe").Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	return prog
}

func TestRunExplicitReturnCode(t *testing.T) {
	prog := mustParse(t, `fun int main() return 7 end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 7 {
		t.Fatalf("expected exit code 7, got %d", code)
	}
}

func TestRunPrintEscapes(t *testing.T) {
	prog := mustParse(t, `fun int main()
		print("a\nb")
		return 0
	end`)
	var out bytes.Buffer
	code, d := New("test.fe", WithStdout(&out)).Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if out.String() != "a\nb" {
		t.Fatalf("expected %q, got %q", "a\nb", out.String())
	}
}

func TestUncaughtDivisionByZeroIsFatal(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var x = 1 / 0
		return 0
	end`)
	code, d := New("test.fe").Run(prog)
	if d == nil {
		t.Fatal("expected a diagnostic for an uncaught division by zero")
	}
	if d.Kind != diag.KindZeroDivision {
		t.Fatalf("expected zero-division kind, got %v", d.Kind)
	}
	if code == 0 {
		t.Fatal("expected a non-zero exit code")
	}
}

func TestTryCatchesZeroDivisionByIdentifier(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var result = 0
		try
			var x = 1 / 0
		catch (ZeroDivision)
			result = 1
		end
		return result
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 1 {
		t.Fatalf("expected exit code 1 from the catch body, got %d", code)
	}
}

func TestTryCatchesUserThrowByValue(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var result = 0
		try
			throw 42
		catch (42)
			result = 1
		end
		return result
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 1 {
		t.Fatalf("expected catch body to run, got exit code %d", code)
	}
}

func TestTryDoesNotCatchMismatchedValue(t *testing.T) {
	prog := mustParse(t, `fun int main()
		try
			throw 42
		catch (7)
			return 1
		end
		return 0
	end`)
	code, d := New("test.fe").Run(prog)
	if d == nil {
		t.Fatal("expected the mismatched throw to escape uncaught")
	}
	if code == 0 {
		t.Fatal("expected a non-zero exit code")
	}
}

func TestGetOutOfBoundsIsCatchable(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var result = 0
		try
			var c = get(10, "hi")
		catch (IndexOutOfBounds)
			result = 1
		end
		return result
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestCountedForSumsStartInclusiveEndExclusive(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var sum = 0
		for i = 0 to 5 do
			sum = sum + i
		end
		return sum
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 10 {
		t.Fatalf("expected 0+1+2+3+4 = 10, got %d", code)
	}
}

func TestWhileLoopCountsDown(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var n = 3
		var total = 0
		while n > 0 do
			total = total + n
			n = n - 1
		end
		return total
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 6 {
		t.Fatalf("expected 3+2+1 = 6, got %d", code)
	}
}

func TestRecordFieldAllocAndAssign(t *testing.T) {
	prog := mustParse(t, `type Point
		var x:int = 0
		var y:int = 0
	end
	fun int main()
		var p = new Point
		p.x = 3
		p.y = 4
		return p.x + p.y
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 7 {
		t.Fatalf("expected 3+4 = 7, got %d", code)
	}
}

func TestTwoHopRecordFieldAllocAndAssign(t *testing.T) {
	prog := mustParse(t, `type Inner
		var v:int = 0
	end
	type Outer
		var inner:Inner = new Inner
	end
	fun int main()
		var o = new Outer
		o.inner.v = 9
		return o.inner.v
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 9 {
		t.Fatalf("expected two-hop read to observe the two-hop write, got %d", code)
	}
}

func TestUserFunctionCallAndRecursion(t *testing.T) {
	prog := mustParse(t, `fun int fact(n:int)
		if n <= 1 then
			return 1
		end
		return n * fact(n - 1)
	end
	fun int main()
		return fact(5)
	end`)
	code, d := New("test.fe").Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 120 {
		t.Fatalf("expected 5! = 120, got %d", code)
	}
}

func TestMaxCallDepthIsEnforced(t *testing.T) {
	prog := mustParse(t, `fun int loop(n:int)
		return loop(n + 1)
	end
	fun int main()
		return loop(0)
	end`)
	_, d := New("test.fe", WithMaxCallDepth(16)).Run(prog)
	if d == nil {
		t.Fatal("expected unbounded recursion to trip the call-depth guard")
	}
	if !strings.Contains(d.Message, "call depth") {
		t.Fatalf("expected a call-depth message, got %q", d.Message)
	}
}

func TestStringConversionBuiltins(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var i = stoi("41")
		var s = itos(i + 1)
		print(s)
		return length(s)
	end`)
	var out bytes.Buffer
	code, d := New("test.fe", WithStdout(&out)).Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if out.String() != "42" {
		t.Fatalf("expected \"42\", got %q", out.String())
	}
	if code != 2 {
		t.Fatalf("expected length 2, got %d", code)
	}
}

func TestReadBuiltinReadsWhitespaceDelimitedToken(t *testing.T) {
	prog := mustParse(t, `fun int main()
		var s = read()
		print(s)
		return 0
	end`)
	var out bytes.Buffer
	code, d := New("test.fe", WithStdout(&out), WithStdin(strings.NewReader("hello world"))).Run(prog)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if out.String() != "hello" {
		t.Fatalf("expected \"hello\", got %q", out.String())
	}
}
