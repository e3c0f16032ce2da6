package eval

import (
	"strings"

	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/types"
)

// ============================================================================
// ARITHMETIC (spec §4.2)
// ============================================================================

func evalArithmetic(op ast.ArithmeticOp, left, right types.Value) (types.Value, error) {
	switch op {
	case ast.Add:
		return evalAdd(left, right)
	case ast.Sub:
		return arith(left, right, types.SubDecimal, func(a, b int64) (int64, error) { return a - b, nil })
	case ast.Mul:
		return arith(left, right, types.MulDecimal, func(a, b int64) (int64, error) { return a * b, nil })
	case ast.Div:
		return evalDiv(left, right)
	case ast.Mod:
		return evalMod(left, right)
	default:
		return nil, types.Errf(types.TypeMismatch, "unknown arithmetic operator %v", op)
	}
}

// evalAdd additionally covers String and List concatenation (spec §4.2).
func evalAdd(left, right types.Value) (types.Value, error) {
	if l, ok := left.(types.String); ok {
		if r, ok := right.(types.String); ok {
			return types.NewString(l.Val + r.Val), nil
		}
		return nil, typeMismatch(left, right, "+")
	}
	if l, ok := left.(types.List); ok {
		if r, ok := right.(types.List); ok {
			return l.Concat(r), nil
		}
		return nil, typeMismatch(left, right, "+")
	}
	return arith(left, right, types.AddDecimal, func(a, b int64) (int64, error) { return a + b, nil })
}

// arith dispatches the integer/decimal matrix: Integer op Integer stays
// Integer, anything involving Decimal promotes through decimalFn.
func arith(left, right types.Value, decimalFn func(x, y types.Decimal) (types.Decimal, error), intFn func(a, b int64) (int64, error)) (types.Value, error) {
	li, lIsInt := left.(types.Integer)
	ri, rIsInt := right.(types.Integer)
	if lIsInt && rIsInt {
		v, err := intFn(li.Val, ri.Val)
		if err != nil {
			return nil, err
		}
		return types.NewInteger(v), nil
	}

	ld, lok := asDecimal(left)
	rd, rok := asDecimal(right)
	if !lok || !rok {
		return nil, typeMismatch(left, right, "arithmetic")
	}
	d, err := decimalFn(ld, rd)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func asDecimal(v types.Value) (types.Decimal, bool) {
	switch val := v.(type) {
	case types.Decimal:
		return val, true
	case types.Integer:
		return types.NewDecimalFromInt64(val.Val), true
	default:
		return types.Decimal{}, false
	}
}

func evalDiv(left, right types.Value) (types.Value, error) {
	li, lIsInt := left.(types.Integer)
	ri, rIsInt := right.(types.Integer)
	if lIsInt && rIsInt {
		if ri.Val == 0 {
			return nil, types.Err(types.DivideByZero)
		}
		return types.NewInteger(li.Val / ri.Val), nil
	}

	ld, lok := asDecimal(left)
	rd, rok := asDecimal(right)
	if !lok || !rok {
		return nil, typeMismatch(left, right, "/")
	}
	d, err := types.QuoDecimal(ld, rd)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func evalMod(left, right types.Value) (types.Value, error) {
	li, lIsInt := left.(types.Integer)
	ri, rIsInt := right.(types.Integer)
	if lIsInt && rIsInt {
		if ri.Val == 0 {
			return nil, types.Err(types.DivideByZero)
		}
		return types.NewInteger(li.Val % ri.Val), nil
	}

	ld, lok := asDecimal(left)
	rd, rok := asDecimal(right)
	if !lok || !rok {
		return nil, typeMismatch(left, right, "%")
	}
	if !rd.Truthy() {
		return nil, types.Err(types.DivideByZero)
	}
	d, err := types.RemDecimal(ld, rd)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ============================================================================
// UNARY (spec §4.2)
// ============================================================================

func evalUnary(op ast.UnaryOp, v types.Value) (types.Value, error) {
	switch op {
	case ast.Not:
		return types.NewBool(!v.Truthy()), nil
	case ast.DoubleNot:
		return types.NewBool(v.Truthy()), nil
	case ast.Minus:
		switch val := v.(type) {
		case types.Integer:
			return types.NewInteger(-val.Val), nil
		case types.Decimal:
			return val.Neg(), nil
		default:
			return nil, types.Errf(types.TypeMismatch, "unary - not defined for %s", v.Kind())
		}
	case ast.DoubleMinus:
		switch v.(type) {
		case types.Integer, types.Decimal:
			return v, nil
		default:
			return nil, types.Errf(types.TypeMismatch, "unary -- not defined for %s", v.Kind())
		}
	default:
		return nil, types.Errf(types.TypeMismatch, "unknown unary operator %v", op)
	}
}

// ============================================================================
// RELATIONAL (spec §4.2)
// ============================================================================

func evalRelation(op ast.RelationOp, left, right types.Value) (types.Value, error) {
	if op == ast.Eq {
		return types.NewBool(left.Equal(right)), nil
	}
	if op == ast.Ne {
		return types.NewBool(!left.Equal(right)), nil
	}
	if op == ast.In {
		return evalIn(left, right)
	}

	cmp, err := compare(left, right)
	if err != nil {
		return nil, err
	}
	switch op {
	case ast.Lt:
		return types.NewBool(cmp < 0), nil
	case ast.Le:
		return types.NewBool(cmp <= 0), nil
	case ast.Gt:
		return types.NewBool(cmp > 0), nil
	case ast.Ge:
		return types.NewBool(cmp >= 0), nil
	default:
		return nil, types.Errf(types.TypeMismatch, "unknown relation operator %v", op)
	}
}

// compare implements the total order within Integer, Decimal, String,
// Bytes, Bool and (promoted) across Integer/Decimal, plus lexicographic
// List order. Map has no defined order (spec §4.2, decided Open Question 5).
func compare(left, right types.Value) (int, error) {
	if ld, lok := asDecimal(left); lok {
		if rd, rok := asDecimal(right); rok {
			return ld.Cmp(rd), nil
		}
	}

	switch l := left.(type) {
	case types.String:
		if r, ok := right.(types.String); ok {
			return strings.Compare(l.Val, r.Val), nil
		}
	case types.Bytes:
		if r, ok := right.(types.Bytes); ok {
			return compareBytes(l.Val, r.Val), nil
		}
	case types.Bool:
		if r, ok := right.(types.Bool); ok {
			return compareBool(l.Val, r.Val), nil
		}
	case types.List:
		if r, ok := right.(types.List); ok {
			return compareLists(l, r)
		}
	}
	return 0, typeMismatch(left, right, "relational comparison")
}

func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareLists(l, r types.List) (int, error) {
	for i := 0; i < l.Len() && i < r.Len(); i++ {
		cmp, err := compare(l.Get(i), r.Get(i))
		if err != nil {
			return 0, err
		}
		if cmp != 0 {
			return cmp, nil
		}
	}
	switch {
	case l.Len() < r.Len():
		return -1, nil
	case l.Len() > r.Len():
		return 1, nil
	default:
		return 0, nil
	}
}

// ============================================================================
// MEMBERSHIP `in` (spec §4.2)
// ============================================================================

func evalIn(left, right types.Value) (types.Value, error) {
	switch container := right.(type) {
	case types.String:
		l, ok := left.(types.String)
		if !ok {
			return nil, typeMismatch(left, right, "in")
		}
		return types.NewBool(strings.Contains(container.Val, l.Val)), nil

	case types.List:
		for i := 0; i < container.Len(); i++ {
			if container.Get(i).Equal(left) {
				return types.NewBool(true), nil
			}
		}
		return types.NewBool(false), nil

	case types.Map:
		key, err := types.ToKey(left)
		if err != nil {
			return nil, err
		}
		return types.NewBool(container.Has(key)), nil

	default:
		return nil, typeMismatch(left, right, "in")
	}
}

func typeMismatch(left, right types.Value, op string) error {
	return types.Errf(types.TypeMismatch, "%s not defined for %s and %s", op, left.Kind(), right.Kind())
}
