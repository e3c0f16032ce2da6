package types

import "strconv"

// Integer is a signed 64-bit value.
type Integer struct {
	Val int64
}

// NewInteger constructs an Integer.
func NewInteger(v int64) Integer { return Integer{Val: v} }

func (i Integer) Kind() Kind { return KindInteger }

func (i Integer) String() string { return strconv.FormatInt(i.Val, 10) }

func (i Integer) Truthy() bool { return i.Val != 0 }

func (i Integer) Equal(other Value) bool {
	switch o := other.(type) {
	case Integer:
		return i.Val == o.Val
	case Decimal:
		return promoteInt(i.Val).Cmp(o.d) == 0
	default:
		return false
	}
}
