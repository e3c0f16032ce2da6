package types

import "testing"

func TestIntegerDecimalEquality(t *testing.T) {
	i := NewInteger(3)
	d := NewDecimalFromInt64(3)
	if !i.Equal(d) || !d.Equal(i) {
		t.Fatalf("expected Integer(3) and Decimal(3) to compare equal")
	}
}

func TestDecimalArithmeticIsExact(t *testing.T) {
	a, err := NewDecimalFromString("0.1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDecimalFromString("0.2")
	if err != nil {
		t.Fatal(err)
	}
	sum, err := AddDecimal(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want, err := NewDecimalFromString("0.3")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Cmp(want) != 0 {
		t.Fatalf("0.1 + 0.2 = %s, want %s", sum, want)
	}
}

func TestQuoDecimalByZeroIsDivideByZero(t *testing.T) {
	a := NewDecimalFromInt64(1)
	b := NewDecimalFromInt64(0)
	_, err := QuoDecimal(a, b)
	evalErr, ok := err.(*EvalError)
	if !ok || evalErr.Kind != DivideByZero {
		t.Fatalf("expected DivideByZero, got %v", err)
	}
}

func TestListEquality(t *testing.T) {
	a := NewList([]Value{NewInteger(1), NewInteger(2)})
	b := NewList([]Value{NewInteger(1), NewInteger(2)})
	c := NewList([]Value{NewInteger(2), NewInteger(1)})
	if !a.Equal(b) {
		t.Fatal("expected equal lists to compare equal")
	}
	if a.Equal(c) {
		t.Fatal("expected differently ordered lists to compare unequal")
	}
}

func TestListConcatPreservesOrderAndSize(t *testing.T) {
	xs := NewList([]Value{NewInteger(1), NewInteger(2)})
	ys := NewList([]Value{NewInteger(3)})
	combined := xs.Concat(ys)
	if combined.Len() != xs.Len()+ys.Len() {
		t.Fatalf("expected combined length %d, got %d", xs.Len()+ys.Len(), combined.Len())
	}
	for i := 0; i < xs.Len(); i++ {
		if !combined.Get(i).Equal(xs.Get(i)) {
			t.Fatalf("combined[%d] = %s, want %s", i, combined.Get(i), xs.Get(i))
		}
	}
}

func TestMapDuplicateKeyTakesLastValue(t *testing.T) {
	k1, err := ToKey(NewInteger(1))
	if err != nil {
		t.Fatal(err)
	}
	m := NewMap([]MapPair{
		{Key: k1, Val: NewString("first")},
		{Key: k1, Val: NewString("second")},
	})
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.Len())
	}
	v, ok := m.Get(k1)
	if !ok || !v.Equal(NewString("second")) {
		t.Fatalf("expected last value %q, got %v", "second", v)
	}
}

func TestMapEqualityIsOrderInsensitive(t *testing.T) {
	k1, _ := ToKey(NewInteger(1))
	k2, _ := ToKey(NewInteger(2))
	a := NewMap([]MapPair{{Key: k1, Val: NewInteger(10)}, {Key: k2, Val: NewInteger(20)}})
	b := NewMap([]MapPair{{Key: k2, Val: NewInteger(20)}, {Key: k1, Val: NewInteger(10)}})
	if !a.Equal(b) {
		t.Fatal("expected maps built in different insertion order to compare equal")
	}
}

func TestToKeyRejectsInadmissibleKinds(t *testing.T) {
	_, err := ToKey(NewList(nil))
	evalErr, ok := err.(*EvalError)
	if !ok || evalErr.Kind != InvalidKey {
		t.Fatalf("expected InvalidKey, got %v", err)
	}
}

func TestTruthinessTable(t *testing.T) {
	falsy := []Value{
		NewInteger(0),
		NewDecimalFromInt64(0),
		NewString(""),
		NewBytes(nil),
		Null{},
		NewList(nil),
		NewEmptyMap(),
		NewFunction("anything"),
	}
	for _, v := range falsy {
		if v.Truthy() {
			t.Errorf("expected %s (%s) to be falsy", v, v.Kind())
		}
	}

	truthy := []Value{
		NewInteger(1),
		NewDecimalFromInt64(1),
		NewString("x"),
		NewBytes([]byte{0}),
		NewBool(true),
		NewList([]Value{NewInteger(1)}),
	}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Errorf("expected %s (%s) to be truthy", v, v.Kind())
		}
	}
}
