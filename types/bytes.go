package types

import "fmt"

// Bytes is a shared-ownership immutable byte sequence.
type Bytes struct {
	Val []byte
}

// NewBytes constructs a Bytes value. The caller must not mutate the
// slice afterwards; Bytes does not defensively copy, matching the
// original Rust source's Rc<Vec<u8>> sharing model.
func NewBytes(b []byte) Bytes { return Bytes{Val: b} }

func (b Bytes) Kind() Kind { return KindBytes }

func (b Bytes) String() string { return fmt.Sprintf("b%q", string(b.Val)) }

func (b Bytes) Truthy() bool { return len(b.Val) > 0 }

func (b Bytes) Equal(other Value) bool {
	o, ok := other.(Bytes)
	if !ok || len(b.Val) != len(o.Val) {
		return false
	}
	for i := range b.Val {
		if b.Val[i] != o.Val[i] {
			return false
		}
	}
	return true
}
