package interp

import (
	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/lexer"
	"github.com/ferro-lang/ferro/internal/object"
)

// control is the explicit unwind discriminator each statement visitor
// returns alongside its value, distinguishing normal completion from a
// pending non-local jump (spec.md §9's preferred alternative to an
// overloaded accumulator slot).
type control int

const (
	ctrlNone control = iota
	ctrlReturn
	ctrlThrow
)

// Exception is the value an unwinding ctrlThrow carries: either a
// user-thrown payload (int/double/bool, from a `throw expr` statement)
// or one of the interpreter's own runtime error categories.
type Exception struct {
	Kind       diag.Kind
	UserThrown bool
	Value      object.Value // meaningful only when UserThrown
	Message    string
	Loc        diag.Location
}

func locOf(tok lexer.Token, file string) diag.Location {
	return diag.Location{File: file, Line: tok.Line, Column: tok.Column}
}

func genericExc(message string, tok lexer.Token, file string) *Exception {
	return &Exception{Kind: diag.KindGeneric, Message: message, Loc: locOf(tok, file)}
}

func zeroDivisionExc(tok lexer.Token, file string) *Exception {
	return &Exception{Kind: diag.KindZeroDivision, Message: "division by zero", Loc: locOf(tok, file)}
}

func indexOutOfBoundsExc(tok lexer.Token, file string) *Exception {
	return &Exception{Kind: diag.KindIndexOutOfBounds, Message: "index out of bounds", Loc: locOf(tok, file)}
}

// ToDiagnostic converts an uncaught Exception into the diagnostic the
// CLI reports at the top level (spec.md §7: "escapes to the top level
// and becomes a fatal program error").
func (e *Exception) ToDiagnostic() diag.Diagnostic {
	msg := e.Message
	if e.UserThrown {
		msg = "uncaught exception: " + e.Value.String()
	}
	return diag.NewRuntime(e.Kind, msg, e.Loc)
}
