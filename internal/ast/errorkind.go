package ast

// Built-in runtime error-kind names catchable by identifier (spec.md §7).
const (
	ErrorKindZeroDivision      = "ZeroDivision"
	ErrorKindIndexOutOfBounds = "IndexOutOfBounds"
)

// BuiltinErrorKind reports whether e is exactly a bare reference to one
// of the two built-in error-kind names: no neg/not prefix, no infix
// operator, and a length-1 identifier path.
func BuiltinErrorKind(e Expr) (string, bool) {
	if e.Neg || e.Not || e.Group != nil || e.Op != nil {
		return "", false
	}
	path, ok := e.Value.(*PathExpr)
	if !ok || len(path.Path) != 1 {
		return "", false
	}
	name := path.Path[0].Lexeme
	if name == ErrorKindZeroDivision || name == ErrorKindIndexOutOfBounds {
		return name, true
	}
	return "", false
}
