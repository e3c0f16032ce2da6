package types

import "strconv"

// Bool is a two-valued Value.
type Bool struct {
	Val bool
}

// NewBool constructs a Bool.
func NewBool(v bool) Bool { return Bool{Val: v} }

func (b Bool) Kind() Kind { return KindBool }

func (b Bool) String() string { return strconv.FormatBool(b.Val) }

func (b Bool) Truthy() bool { return b.Val }

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b.Val == o.Val
}
