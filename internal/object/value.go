// Package object holds the interpreter's runtime value representation
// and the heap of record objects those values can reference.
package object

import "fmt"

// Kind is the closed set of runtime value tags.
type Kind int

const (
	KindInt Kind = iota
	KindDouble
	KindChar
	KindString
	KindBool
	KindObject // object identifier: a weak reference into the Heap
	KindNil
)

// Value is a tagged, immutable-by-replacement container carrying
// exactly one of the kinds above. Assignment copies a Value; it never
// aliases another Value.
type Value struct {
	Kind   Kind
	Int    int64
	Double float64
	Char   rune
	Str    string
	Bool   bool
	Object int // heap object identifier, valid when Kind == KindObject
}

func Int(v int64) Value      { return Value{Kind: KindInt, Int: v} }
func Double(v float64) Value { return Value{Kind: KindDouble, Double: v} }
func Char(v rune) Value      { return Value{Kind: KindChar, Char: v} }
func Str(v string) Value     { return Value{Kind: KindString, Str: v} }
func Bool(v bool) Value      { return Value{Kind: KindBool, Bool: v} }
func Object(id int) Value    { return Value{Kind: KindObject, Object: id} }
func Nil() Value             { return Value{Kind: KindNil} }

// String renders a Value the way `print`/`itos`/`dtos`-adjacent code
// needs to: the literal text representation, not a debug dump.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindDouble:
		return fmt.Sprintf("%g", v.Double)
	case KindChar:
		return string(v.Char)
	case KindString:
		return v.Str
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindObject:
		return fmt.Sprintf("<object #%d>", v.Object)
	case KindNil:
		return "nil"
	default:
		return "<invalid value>"
	}
}

// Equal implements the `==`/`!=` value-equality the checker and
// interpreter agree on: identical primitive kind+value, or identical
// object identifier. A nil operand equals only another nil.
func (v Value) Equal(other Value) bool {
	if v.Kind == KindNil || other.Kind == KindNil {
		return v.Kind == other.Kind
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == other.Int
	case KindDouble:
		return v.Double == other.Double
	case KindChar:
		return v.Char == other.Char
	case KindString:
		return v.Str == other.Str
	case KindBool:
		return v.Bool == other.Bool
	case KindObject:
		return v.Object == other.Object
	default:
		return false
	}
}
