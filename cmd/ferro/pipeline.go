package main

import (
	"io"
	"os"

	"github.com/ferro-lang/ferro/internal/ast"
	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/parser"
	"github.com/ferro-lang/ferro/internal/typecheck"
)

// readSource reads program text from path, or from standard input when
// path is empty (spec.md §6: "positional file argument or stdin; when
// absent, read source from standard input"). It returns the label to
// use for diagnostics and as the interpreter's file name.
func readSource(path string) (src, file string, err error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}

// lexSource tokenizes the program read from path (or stdin if empty).
func lexSource(path string) ([]lexer.Token, []diag.Diagnostic, string, error) {
	src, file, err := readSource(path)
	if err != nil {
		return nil, nil, "", err
	}
	toks, errs := lexer.New(src, file).ScanTokens()
	return toks, errs, file, nil
}

// parseSource lexes and parses a program, stopping after whichever
// stage reports a diagnostic first.
func parseSource(path string) (*ast.Program, []diag.Diagnostic, string, error) {
	toks, lexErrs, file, err := lexSource(path)
	if err != nil {
		return nil, nil, file, err
	}
	if len(lexErrs) != 0 {
		return nil, lexErrs, file, nil
	}
	prog, parseErrs := parser.New(toks, file).Parse()
	return prog, parseErrs, file, nil
}

// checkSource runs the full lex/parse/type-check pipeline.
func checkSource(path string) (*ast.Program, []diag.Diagnostic, string, error) {
	prog, errs, file, err := parseSource(path)
	if err != nil || len(errs) != 0 {
		return prog, errs, file, err
	}
	return prog, typecheck.New(file).Check(prog), file, nil
}

// filePathArg returns the single positional file argument, or "" when
// none was given (meaning: read from standard input).
func filePathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
