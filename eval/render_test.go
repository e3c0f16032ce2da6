package eval

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"

	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/types"
)

// TestRenderedValuesSnapshot locks down String() rendering across a
// fixed corpus of reduced values, adapted from the snapshot style of
// CWBudde-go-dws's DWScript-fixture tests (its
// internal/interp/fixture_test.go's snaps.MatchSnapshot usage).
func TestRenderedValuesSnapshot(t *testing.T) {
	ctx := NewContext()
	cases := map[string]ast.Node{
		"integer_add":     ast.Arithmetic{Left: atom(types.NewInteger(2)), Right: atom(types.NewInteger(3)), Op: ast.Add},
		"decimal_promote": ast.Arithmetic{Left: atom(types.NewInteger(1)), Right: atom(types.NewDecimalFromInt64(2)), Op: ast.Mul},
		"list_concat": ast.Arithmetic{
			Op:    ast.Add,
			Left:  ast.List{Items: []ast.Node{atom(types.NewInteger(1))}},
			Right: ast.List{Items: []ast.Node{atom(types.NewInteger(2))}},
		},
		"map_literal": ast.Map{Entries: []ast.MapEntry{
			{Key: atom(types.NewInteger(1)), Val: atom(types.NewString("a"))},
			{Key: atom(types.NewString("z")), Val: atom(types.NewBool(true))},
		}},
		"string_concat": ast.Arithmetic{Left: atom(types.NewString("foo")), Right: atom(types.NewString("bar")), Op: ast.Add},
	}

	for name, node := range cases {
		v, err := Evaluate(node, ctx, Options{})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		snaps.MatchSnapshot(t, name, v.String())
	}
}

// TestDecimalPromotionStructuralEquality checks that 3 + Decimal(1) and
// Decimal(1) + 3 render to the same String(), comparing the two
// renderings with go-cmp's diff (grounded on cue-lang-cue's use of
// github.com/google/go-cmp in its test suite), so a future regression in
// Decimal rendering shows a readable diff instead of a bare boolean
// mismatch.
func TestDecimalPromotionStructuralEquality(t *testing.T) {
	ctx := NewContext()
	left, err := Evaluate(ast.Arithmetic{Left: atom(types.NewInteger(3)), Right: atom(types.NewDecimalFromInt64(1)), Op: ast.Add}, ctx, Options{})
	if err != nil {
		t.Fatal(err)
	}
	right, err := Evaluate(ast.Arithmetic{Left: atom(types.NewDecimalFromInt64(1)), Right: atom(types.NewInteger(3)), Op: ast.Add}, ctx, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(left.String(), right.String()); diff != "" {
		t.Fatalf("expected i+d and d+i to render identically (-left +right):\n%s", diff)
	}
}
