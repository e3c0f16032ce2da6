package eval

import (
	"testing"

	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/types"
)

func atom(v types.Value) ast.Node { return ast.Atom{Value: v} }

func mustEval(t *testing.T, node ast.Node, ctx *Context) types.Value {
	t.Helper()
	v, err := Evaluate(node, ctx, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestOrShortCircuits(t *testing.T) {
	node := ast.Or{
		Left:  atom(types.NewBool(true)),
		Right: ast.Arithmetic{Left: atom(types.NewInteger(1)), Right: atom(types.NewInteger(0)), Op: ast.Div},
	}
	v := mustEval(t, node, NewContext())
	if !v.Equal(types.NewBool(true)) {
		t.Fatalf("expected true, got %s", v)
	}
}

func TestOrReturnsLeftsOwnValue(t *testing.T) {
	node := ast.Or{Left: atom(types.NewInteger(1)), Right: atom(types.NewInteger(2))}
	v := mustEval(t, node, NewContext())
	if !v.Equal(types.NewInteger(1)) {
		t.Fatalf("expected Integer(1), got %s", v)
	}
}

func TestAndDoesNotShortCircuit(t *testing.T) {
	node := ast.And{
		Left:  atom(types.NewBool(false)),
		Right: ast.Arithmetic{Left: atom(types.NewInteger(1)), Right: atom(types.NewInteger(0)), Op: ast.Div},
	}
	_, err := Evaluate(node, NewContext(), Options{})
	evalErr, ok := err.(*types.EvalError)
	if !ok || evalErr.Kind != types.DivideByZero {
		t.Fatalf("expected DivideByZero (both operands evaluated), got %v", err)
	}
}

func TestTernaryNeverEvaluatesUntakenBranch(t *testing.T) {
	node := ast.Ternary{
		Cond: atom(types.NewBool(true)),
		Then: atom(types.NewInteger(1)),
		Else: ast.Arithmetic{Left: atom(types.NewInteger(1)), Right: atom(types.NewInteger(0)), Op: ast.Div},
	}
	v := mustEval(t, node, NewContext())
	if !v.Equal(types.NewInteger(1)) {
		t.Fatalf("expected Integer(1), got %s", v)
	}
}

func TestStepBudgetExceeded(t *testing.T) {
	node := ast.Arithmetic{Left: atom(types.NewInteger(1)), Right: atom(types.NewInteger(2)), Op: ast.Add}
	_, err := Evaluate(node, NewContext(), Options{MaxSteps: 1})
	evalErr, ok := err.(*types.EvalError)
	if !ok || evalErr.Kind != types.StepBudgetExceeded {
		t.Fatalf("expected StepBudgetExceeded, got %v", err)
	}
}

func TestIdentResolvesFunctionBeforeVariable(t *testing.T) {
	ctx := NewContext()
	ctx.SetVariable("size", types.NewInteger(99))
	ctx.SetFunction("size", func(receiver types.Value, args []ast.Node, ctx *Context, ev Eval) (types.Value, error) {
		return types.NewInteger(1), nil
	})
	v := mustEval(t, ast.Ident{Name: "size"}, ctx)
	fn, ok := v.(types.Function)
	if !ok || fn.Name != "size" {
		t.Fatalf("expected unbound Function handle for shadowed name, got %#v", v)
	}
}

func TestMemberIndexListZeroBased(t *testing.T) {
	node := ast.Member{
		Receiver: ast.List{Items: []ast.Node{atom(types.NewInteger(1)), atom(types.NewInteger(2)), atom(types.NewInteger(3))}},
		Selector: ast.Index{Expr: atom(types.NewInteger(1))},
	}
	v := mustEval(t, node, NewContext())
	if !v.Equal(types.NewInteger(2)) {
		t.Fatalf("expected Integer(2), got %s", v)
	}
}

func TestMemberIndexOutOfRange(t *testing.T) {
	node := ast.Member{
		Receiver: ast.List{Items: []ast.Node{atom(types.NewInteger(1))}},
		Selector: ast.Index{Expr: atom(types.NewInteger(-1))},
	}
	_, err := Evaluate(node, NewContext(), Options{})
	evalErr, ok := err.(*types.EvalError)
	if !ok || evalErr.Kind != types.IndexOutOfRange {
		t.Fatalf("expected IndexOutOfRange, got %v", err)
	}
}

func TestFreeFunctionEqualsBoundMethodCall(t *testing.T) {
	ctx := NewContext()
	ctx.SetFunction("double", func(receiver types.Value, args []ast.Node, ctx *Context, ev Eval) (types.Value, error) {
		vals := make([]types.Value, 0, len(args)+1)
		if receiver != nil {
			vals = append(vals, receiver)
		}
		for _, a := range args {
			v, err := ev(a, ctx)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		i := vals[0].(types.Integer)
		return types.NewInteger(i.Val * 2), nil
	})

	freeCall := ast.Member{
		Receiver: ast.Ident{Name: "double"},
		Selector: ast.FunctionCall{Args: []ast.Node{atom(types.NewInteger(21))}},
	}
	boundCall := ast.Member{
		Receiver: ast.Member{
			Receiver: atom(types.NewInteger(21)),
			Selector: ast.Attribute{Name: "double"},
		},
		Selector: ast.FunctionCall{},
	}

	a := mustEval(t, freeCall, ctx)
	b := mustEval(t, boundCall, ctx)
	if !a.Equal(b) || !a.Equal(types.NewInteger(42)) {
		t.Fatalf("expected both calls to yield Integer(42), got %s and %s", a, b)
	}
}

func TestMapLiteralDuplicateKeyTakesLastValue(t *testing.T) {
	node := ast.Map{Entries: []ast.MapEntry{
		{Key: atom(types.NewInteger(1)), Val: atom(types.NewString("first"))},
		{Key: atom(types.NewInteger(1)), Val: atom(types.NewString("second"))},
	}}
	v := mustEval(t, node, NewContext())
	m, ok := v.(types.Map)
	if !ok || m.Len() != 1 {
		t.Fatalf("expected a single-entry map, got %s", v)
	}
	key, _ := types.ToKey(types.NewInteger(1))
	got, _ := m.Get(key)
	if !got.Equal(types.NewString("second")) {
		t.Fatalf("expected last value %q, got %s", "second", got)
	}
}

func TestArithmeticPromotesIntegerToDecimal(t *testing.T) {
	node := ast.Arithmetic{
		Left:  atom(types.NewInteger(3)),
		Right: atom(types.NewDecimalFromInt64(1)),
		Op:    ast.Add,
	}
	v := mustEval(t, node, NewContext())
	if _, ok := v.(types.Decimal); !ok {
		t.Fatalf("expected Decimal result from mixed arithmetic, got %T", v)
	}
}
