// Package interp evaluates a type-checked Program directly off its AST:
// one recursive function per production, no bytecode or IR stage
// (spec.md §9 Design Notes). Each statement visitor returns a control
// discriminator alongside its value so non-local return/throw unwinds
// without an overloaded sentinel.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/object"
	"github.com/ferro-lang/ferro/internal/symtab"
	"go.uber.org/zap"
)

var builtinNames = map[string]bool{
	"print": true, "read": true, "stoi": true, "itos": true,
	"stod": true, "dtos": true, "get": true, "length": true,
}

// Interpreter holds all mutable state for one program run: the variable
// environment stack, the object heap, the declaration tables registered
// before main is invoked, and the knobs config.Config exposes.
type Interpreter struct {
	file      string
	table     *symtab.Table[object.Value]
	globalID  int
	heap      *object.Heap
	functions map[string]*ast.FunctionDecl
	types     map[string]*ast.TypeDecl

	stdout io.Writer
	stdin  io.Reader

	maxCallDepth int
	callDepth    int

	trace  bool
	logger *zap.Logger
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

func WithStdout(w io.Writer) Option        { return func(in *Interpreter) { in.stdout = w } }
func WithStdin(r io.Reader) Option         { return func(in *Interpreter) { in.stdin = r } }
func WithMaxCallDepth(n int) Option        { return func(in *Interpreter) { in.maxCallDepth = n } }
func WithTrace(logger *zap.Logger) Option {
	return func(in *Interpreter) { in.trace = true; in.logger = logger }
}

// New builds an Interpreter for a program whose source came from file.
func New(file string, opts ...Option) *Interpreter {
	tbl := symtab.New[object.Value]()
	in := &Interpreter{
		file:         file,
		table:        tbl,
		globalID:     tbl.GlobalID(),
		heap:         object.NewHeap(),
		functions:    map[string]*ast.FunctionDecl{},
		types:        map[string]*ast.TypeDecl{},
		stdout:       io.Discard,
		stdin:        bufio.NewReader(nil),
		maxCallDepth: 2048,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run registers every declaration then invokes main, returning the
// process exit code and, if the program terminated on an uncaught
// exception, the Diagnostic describing it.
func (in *Interpreter) Run(prog *ast.Program) (int, *diag.Diagnostic) {
	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.FunctionDecl:
			in.functions[n.Name] = n
		case *ast.TypeDecl:
			in.types[n.Name] = n
		}
	}

	main, ok := in.functions["main"]
	if !ok {
		d := diag.New(diag.Runtime, "no 'main' function defined", diag.Location{File: in.file})
		return 1, &d
	}

	val, exc := in.invoke(main, nil, main.Token)
	if exc != nil {
		d := exc.ToDiagnostic()
		return 1, &d
	}
	if val.Kind == object.KindInt {
		return int(val.Int), nil
	}
	return 0, nil
}

// invoke runs fn against a fresh frame rooted at the global environment
// (not the caller's), per spec.md §5's function-invocation model: save
// the caller's current environment id, jump to global, push, bind
// params, execute, restore.
func (in *Interpreter) invoke(fn *ast.FunctionDecl, args []object.Value, callTok lexer.Token) (object.Value, *Exception) {
	in.callDepth++
	defer func() { in.callDepth-- }()
	if in.callDepth > in.maxCallDepth {
		return object.Nil(), genericExc("maximum call depth exceeded", callTok, in.file)
	}

	saved := in.table.JumpTo(in.globalID)
	in.table.Push()
	for i, p := range fn.Params {
		in.table.Define(p.Name, args[i])
	}

	if in.trace {
		in.logger.Debug("call", zap.String("function", fn.Name), zap.Int("depth", in.callDepth))
	}

	ctrl, val, exc := in.execStmts(fn.Body)

	in.table.Pop()
	in.table.JumpTo(saved)

	if exc != nil {
		return object.Nil(), exc
	}
	if ctrl == ctrlReturn {
		return val, nil
	}
	return object.Nil(), nil
}

func (in *Interpreter) evalCall(call *ast.CallExpr) (object.Value, *Exception) {
	args := make([]object.Value, len(call.Args))
	for i, a := range call.Args {
		v, exc := in.evalExpr(a)
		if exc != nil {
			return object.Nil(), exc
		}
		args[i] = v
	}

	if builtinNames[call.Callee] {
		return in.callBuiltin(call.Callee, args, call.Token)
	}

	fn, ok := in.functions[call.Callee]
	if !ok {
		return object.Nil(), genericExc(fmt.Sprintf("undefined function %q", call.Callee), call.Token, in.file)
	}
	return in.invoke(fn, args, call.Token)
}

// evalNew allocates a fresh record, evaluating each field initializer
// against the global environment (a mini invocation with no params),
// mirroring invoke's save/jump/push/.../pop/restore shape.
func (in *Interpreter) evalNew(n *ast.NewExpr) (object.Value, *Exception) {
	td, ok := in.types[n.TypeName]
	if !ok {
		return object.Nil(), genericExc(fmt.Sprintf("unknown type %q", n.TypeName), n.Token, in.file)
	}

	saved := in.table.JumpTo(in.globalID)
	in.table.Push()

	fields := make(map[string]object.Value, len(td.Fields))
	for _, f := range td.Fields {
		v, exc := in.evalExpr(f.Init)
		if exc != nil {
			in.table.Pop()
			in.table.JumpTo(saved)
			return object.Nil(), exc
		}
		fields[f.Name] = v
	}

	in.table.Pop()
	in.table.JumpTo(saved)

	id := in.heap.Alloc(n.TypeName, fields)
	return object.Object(id), nil
}

func (in *Interpreter) callBuiltin(name string, args []object.Value, tok lexer.Token) (object.Value, *Exception) {
	switch name {
	case "print":
		fmt.Fprint(in.stdout, expandEscapes(args[0].Str))
		return object.Nil(), nil

	case "read":
		var s string
		if _, err := fmt.Fscan(in.stdin, &s); err != nil {
			return object.Nil(), genericExc("failed to read input: "+err.Error(), tok, in.file)
		}
		return object.Str(s), nil

	case "stoi":
		v, err := strconv.ParseInt(args[0].Str, 10, 64)
		if err != nil {
			return object.Nil(), genericExc(fmt.Sprintf("%q is not a valid int", args[0].Str), tok, in.file)
		}
		return object.Int(v), nil

	case "itos":
		return object.Str(strconv.FormatInt(args[0].Int, 10)), nil

	case "stod":
		v, err := strconv.ParseFloat(args[0].Str, 64)
		if err != nil {
			return object.Nil(), genericExc(fmt.Sprintf("%q is not a valid double", args[0].Str), tok, in.file)
		}
		return object.Double(v), nil

	case "dtos":
		return object.Str(strconv.FormatFloat(args[0].Double, 'g', -1, 64)), nil

	case "get":
		runes := []rune(args[1].Str)
		idx := args[0].Int
		if idx < 0 || int(idx) >= len(runes) {
			return object.Nil(), indexOutOfBoundsExc(tok, in.file)
		}
		return object.Char(runes[idx]), nil

	case "length":
		return object.Int(int64(len([]rune(args[0].Str)))), nil

	default:
		return object.Nil(), genericExc(fmt.Sprintf("unknown built-in %q", name), tok, in.file)
	}
}

// expandEscapes substitutes the two literal escape sequences `print`
// honors: a backslash-n pair becomes a newline, backslash-t a tab.
func expandEscapes(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")
	return s
}
