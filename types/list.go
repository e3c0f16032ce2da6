package types

import "strings"

// listData abstracts list storage so the backing representation can
// change without touching List's public shape (grounded on the
// teacher's MooList/sliceList split).
type listData interface {
	Len() int
	Get(index int) Value // 0-based
	Elements() []Value
}

type sliceList struct {
	elements []Value
}

func (s *sliceList) Len() int { return len(s.elements) }

func (s *sliceList) Get(i int) Value {
	if i < 0 || i >= len(s.elements) {
		return nil
	}
	return s.elements[i]
}

func (s *sliceList) Elements() []Value { return s.elements }

// List is a shared-ownership immutable ordered sequence of Values.
// Element order is significant and duplicates are allowed (spec §3).
type List struct {
	data listData
}

// NewList constructs a List from elements already evaluated left-to-right.
// The caller must not mutate elements afterwards.
func NewList(elements []Value) List {
	if elements == nil {
		elements = []Value{}
	}
	return List{data: &sliceList{elements: elements}}
}

func (l List) Kind() Kind { return KindList }

func (l List) String() string {
	elems := l.data.Elements()
	if len(elems) == 0 {
		return "[]"
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l List) Truthy() bool { return l.Len() > 0 }

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || l.Len() != o.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !l.Get(i).Equal(o.Get(i)) {
			return false
		}
	}
	return true
}

// Len returns the number of elements.
func (l List) Len() int { return l.data.Len() }

// Get returns the element at a 0-based index, or nil if out of range.
// eval's index handling checks bounds itself before calling Get and
// reports IndexOutOfRange.
func (l List) Get(index int) Value { return l.data.Get(index) }

// Elements returns the backing slice for iteration. Callers must treat
// it as read-only.
func (l List) Elements() []Value { return l.data.Elements() }

// Concat returns a new List with other's elements appended after l's,
// without mutating either operand (spec invariant 3).
func (l List) Concat(other List) List {
	combined := make([]Value, 0, l.Len()+other.Len())
	combined = append(combined, l.Elements()...)
	combined = append(combined, other.Elements()...)
	return NewList(combined)
}
