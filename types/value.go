// Package types defines the tagged value domain the evaluator reduces
// expressions to: Integer, Decimal, String, Bytes, Bool, Null, List, Map,
// and Function.
package types

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	KindInteger Kind = iota
	KindDecimal
	KindString
	KindBytes
	KindBool
	KindNull
	KindList
	KindMap
	KindFunction
)

// String returns the name used in diagnostics and TypeMismatch messages.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Value is the result of reducing an AST node. All variants are immutable
// once constructed; containers (List, Map, String, Bytes) are shared by
// reference so aliasing subterms is cheap and safe.
type Value interface {
	// Kind reports the dynamic variant.
	Kind() Kind
	// String renders the value the way it would appear in source.
	String() string
	// Equal implements the structural equality of spec §4.2. It never
	// fails: values of unrelated kinds simply compare unequal.
	Equal(other Value) bool
	// Truthy implements the implicit boolean projection used by ||, &&
	// and the ternary operator.
	Truthy() bool
}
