// Package diag holds the shared diagnostic vocabulary that flows through
// every stage of the Ferro pipeline: lexer, parser, type checker, and
// interpreter all report errors as Diagnostic values so the CLI can render
// them uniformly instead of switching on four distinct error types.
package diag

import "fmt"

// Stage identifies which pipeline phase produced a Diagnostic.
type Stage int

const (
	Lexer Stage = iota
	Parser
	Type
	Runtime
)

// String returns the stage name as it appears in the plain diagnostic line.
func (s Stage) String() string {
	switch s {
	case Lexer:
		return "Lexer"
	case Parser:
		return "Parser"
	case Type:
		return "Type"
	case Runtime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// Kind refines a Diagnostic within its stage. Only Runtime diagnostics make
// use of the two catchable subkinds; every other stage uses KindGeneric.
type Kind string

const (
	KindGeneric          Kind = "generic"
	KindZeroDivision      Kind = "zero-division"
	KindIndexOutOfBounds Kind = "index-out-of-bounds"
)

// Location pinpoints a Diagnostic in source text. Line and Column are
// 1-based, matching Token.Line/Token.Column.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Diagnostic is the single error shape produced by every stage.
type Diagnostic struct {
	Stage    Stage    `json:"stage"`
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Location Location `json:"location"`
	// Source is an optional copy of the offending source line; it is never
	// required to interpret the diagnostic. No stage in this module sets
	// it, and the cli renderers do not print it.
	Source string `json:"source,omitempty"`
}

// Error implements the error interface so a Diagnostic can be returned
// and propagated like any other Go error.
func (d Diagnostic) Error() string {
	return d.PlainLine()
}

// PlainLine renders the diagnostic in the spec's required format:
// "<Stage> Error: <message> [at line L column C]".
func (d Diagnostic) PlainLine() string {
	return fmt.Sprintf("%s Error: %s [at line %d column %d]",
		d.Stage, d.Message, d.Location.Line, d.Location.Column)
}

// New builds a Diagnostic with KindGeneric.
func New(stage Stage, message string, loc Location) Diagnostic {
	return Diagnostic{Stage: stage, Kind: KindGeneric, Message: message, Location: loc}
}

// NewRuntime builds a Runtime Diagnostic tagged with the given subkind.
func NewRuntime(kind Kind, message string, loc Location) Diagnostic {
	return Diagnostic{Stage: Runtime, Kind: kind, Message: message, Location: loc}
}

// MarshalJSON/UnmarshalJSON make Stage usable as JSON per the teacher's
// Severity.MarshalJSON pattern (string-valued enum on the wire).
func (s Stage) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	switch str {
	case "Lexer":
		*s = Lexer
	case "Parser":
		*s = Parser
	case "Type":
		*s = Type
	case "Runtime":
		*s = Runtime
	default:
		*s = Runtime
	}
	return nil
}
