package types

import "strconv"

// String is shared-ownership immutable text. Go strings are themselves
// immutable and reference their backing array, so (unlike the original
// Rust source's reference-counted Rc<String>) no extra indirection is needed
// to make cloning cheap.
type String struct {
	Val string
}

// NewString constructs a String.
func NewString(s string) String { return String{Val: s} }

func (s String) Kind() Kind { return KindString }

func (s String) String() string { return strconv.Quote(s.Val) }

func (s String) Truthy() bool { return len(s.Val) > 0 }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s.Val == o.Val
}
