// Package types defines the closed type representation the checker
// assigns to every expression: a primitive kind, a record type name, or
// the sentinel nil type.
package types

// Kind is the closed set of type categories.
type Kind int

const (
	Int Kind = iota
	Double
	Char
	String
	Bool
	Nil
	Record
)

// Type is either a primitive/nil Kind, or Kind == Record with Name set
// to the declared record type's name.
type Type struct {
	Kind Kind
	Name string // populated only when Kind == Record
}

var (
	TInt    = Type{Kind: Int}
	TDouble = Type{Kind: Double}
	TChar   = Type{Kind: Char}
	TString = Type{Kind: String}
	TBool   = Type{Kind: Bool}
	TNil    = Type{Kind: Nil}
)

// NewRecord builds the Type for a declared record named name.
func NewRecord(name string) Type { return Type{Kind: Record, Name: name} }

// String renders the type the way it appears in diagnostics.
func (t Type) String() string {
	switch t.Kind {
	case Int:
		return "int"
	case Double:
		return "double"
	case Char:
		return "char"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Nil:
		return "nil"
	case Record:
		return t.Name
	default:
		return "unknown"
	}
}

// Equals reports strict type identity: same kind, and for records the
// same declared name.
func (t Type) Equals(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == Record {
		return t.Name == other.Name
	}
	return true
}

// IsNumeric reports whether t is int or double.
func (t Type) IsNumeric() bool { return t.Kind == Int || t.Kind == Double }

// AssignableFrom reports whether a value of type src may be stored into
// a location of type t. This is Equals, plus the single carve-out
// spec.md §9 Open Question (i) settles: nil may be assigned into a
// record-typed location, and nowhere else.
func (t Type) AssignableFrom(src Type) bool {
	if t.Equals(src) {
		return true
	}
	return t.Kind == Record && src.Kind == Nil
}

// Signature is a function's type: parameter types in order, with the
// return type held in its own field rather than as a last element of
// Params.
type Signature struct {
	Params []Type
	Return Type
}
