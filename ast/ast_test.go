package ast

import (
	"testing"

	"github.com/mongoosemoo/cel/types"
)

func TestAtomIsNode(t *testing.T) {
	var n Node = Atom{Value: types.NewInteger(1)}
	if _, ok := n.(Atom); !ok {
		t.Fatal("Atom does not satisfy Node")
	}
}

func TestMemberSelectorVariants(t *testing.T) {
	selectors := []Selector{
		Attribute{Name: "size"},
		Index{Expr: Atom{Value: types.NewInteger(0)}},
		FunctionCall{Args: nil},
		Fields{},
	}
	for _, s := range selectors {
		m := Member{Receiver: Ident{Name: "x"}, Selector: s}
		if m.Selector != s {
			t.Fatalf("Member did not preserve selector %#v", s)
		}
	}
}
