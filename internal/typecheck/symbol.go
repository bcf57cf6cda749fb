// Package typecheck walks the AST's declarations in three passes
// (record names, then field types and function signatures, then field
// initializers and function bodies), assigning every expression an
// inferred type and verifying declarations, calls, assignments, control
// conditions, and record paths against spec.md §4.3's rules.
package typecheck

import (
	"github.com/ferro-lang/ferro/internal/types"
)

// SymbolKind tags which of the symbol table's four payload shapes a
// Symbol carries (spec.md §3): here, the checker only ever stores the
// first three; the fourth (runtime value) belongs to the interpreter's
// own symtab.Table[object.Value] instance.
type SymbolKind int

const (
	SymVar SymbolKind = iota
	SymFunc
	SymRecordType
)

// Symbol is the checker's symbol-table payload.
type Symbol struct {
	Kind    SymbolKind
	VarType types.Type            // valid when Kind == SymVar
	Sig     types.Signature       // valid when Kind == SymFunc
	Fields  map[string]types.Type // valid when Kind == SymRecordType
}
