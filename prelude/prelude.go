// Package prelude registers the evaluator's built-in host functions onto
// an eval.Context (spec §4.4, §6). Adapted from the teacher's
// builtins.Registry.Register/NewRegistry wiring, rewritten to the
// unevaluated-args Callable convention (eval.Callable) instead of the
// teacher's already-evaluated []types.Value signature, since this
// language's host functions must be able to short-circuit their own
// arguments (spec §4.4, §4.6).
package prelude

import (
	"regexp"
	"strings"

	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/eval"
	"github.com/mongoosemoo/cel/types"
)

// Register installs every prelude function into ctx. Hosts that want a
// different surface can call ctx.SetFunction directly with their own
// Callable, before or after Register.
func Register(ctx *eval.Context) {
	ctx.SetFunction("size", sizeFn)
	ctx.SetFunction("contains", containsFn)
	ctx.SetFunction("startsWith", startsWithFn)
	ctx.SetFunction("endsWith", endsWithFn)
	ctx.SetFunction("matches", matchesFn)
	ctx.SetFunction("abs", absFn)
	ctx.SetFunction("min", minFn)
	ctx.SetFunction("max", maxFn)
}

// evalAll evaluates every arg node in order, prepending receiver when
// it is non-nil so bound calls (x.size()) and free calls (size(x))
// reach their implementation with the same argument list (spec §4.4).
func evalAll(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) ([]types.Value, error) {
	out := make([]types.Value, 0, len(args)+1)
	if receiver != nil {
		out = append(out, receiver)
	}
	for _, node := range args {
		v, err := ev(node, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func argCountErr(name string, want int, got int) error {
	return types.Errf(types.TypeMismatch, "%s expects %d argument(s), got %d", name, want, got)
}

// sizeFn implements size(target): the element count of a String (in
// runes, matching the teacher's builtinLength), Bytes, List, or Map
// (spec §6, grounded on cel-rust's functions.rs size() and the
// teacher's builtins/strings.go builtinLength).
func sizeFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	vals, err := evalAll(receiver, args, ctx, ev)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, argCountErr("size", 1, len(vals))
	}
	switch v := vals[0].(type) {
	case types.String:
		return types.NewInteger(int64(len([]rune(v.Val)))), nil
	case types.Bytes:
		return types.NewInteger(int64(len(v.Val))), nil
	case types.List:
		return types.NewInteger(int64(v.Len())), nil
	case types.Map:
		return types.NewInteger(int64(v.Len())), nil
	default:
		return nil, types.Errf(types.TypeMismatch, "size not defined for %s", vals[0].Kind())
	}
}

// containsFn implements contains(haystack, needle): substring test for
// Strings, membership test for Lists (adapted from builtins/strings.go
// and builtins/lists.go builtinIsMember).
func containsFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	vals, err := evalAll(receiver, args, ctx, ev)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, argCountErr("contains", 2, len(vals))
	}
	switch haystack := vals[0].(type) {
	case types.String:
		needle, ok := vals[1].(types.String)
		if !ok {
			return nil, types.Errf(types.TypeMismatch, "contains expects a string needle, got %s", vals[1].Kind())
		}
		return types.NewBool(strings.Contains(haystack.Val, needle.Val)), nil
	case types.List:
		for i := 0; i < haystack.Len(); i++ {
			if haystack.Get(i).Equal(vals[1]) {
				return types.NewBool(true), nil
			}
		}
		return types.NewBool(false), nil
	default:
		return nil, types.Errf(types.TypeMismatch, "contains not defined for %s", vals[0].Kind())
	}
}

func startsWithFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	vals, err := evalAll(receiver, args, ctx, ev)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, argCountErr("startsWith", 2, len(vals))
	}
	s, ok := vals[0].(types.String)
	if !ok {
		return nil, types.Errf(types.TypeMismatch, "startsWith expects a string, got %s", vals[0].Kind())
	}
	prefix, ok := vals[1].(types.String)
	if !ok {
		return nil, types.Errf(types.TypeMismatch, "startsWith expects a string prefix, got %s", vals[1].Kind())
	}
	return types.NewBool(strings.HasPrefix(s.Val, prefix.Val)), nil
}

func endsWithFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	vals, err := evalAll(receiver, args, ctx, ev)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, argCountErr("endsWith", 2, len(vals))
	}
	s, ok := vals[0].(types.String)
	if !ok {
		return nil, types.Errf(types.TypeMismatch, "endsWith expects a string, got %s", vals[0].Kind())
	}
	suffix, ok := vals[1].(types.String)
	if !ok {
		return nil, types.Errf(types.TypeMismatch, "endsWith expects a string suffix, got %s", vals[1].Kind())
	}
	return types.NewBool(strings.HasSuffix(s.Val, suffix.Val)), nil
}

// matchesFn implements matches(target, pattern) using RE2 syntax via
// regexp, replacing the teacher's builtins/strings.go builtinMatch
// (which matches MOO's own pattern dialect) with the regular-expression
// semantics CEL-style `matches` expects.
func matchesFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	vals, err := evalAll(receiver, args, ctx, ev)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, argCountErr("matches", 2, len(vals))
	}
	s, ok := vals[0].(types.String)
	if !ok {
		return nil, types.Errf(types.TypeMismatch, "matches expects a string target, got %s", vals[0].Kind())
	}
	pattern, ok := vals[1].(types.String)
	if !ok {
		return nil, types.Errf(types.TypeMismatch, "matches expects a string pattern, got %s", vals[1].Kind())
	}
	re, err := regexp.Compile(pattern.Val)
	if err != nil {
		return nil, types.Errf(types.TypeMismatch, "invalid pattern: %v", err)
	}
	return types.NewBool(re.MatchString(s.Val)), nil
}

// absFn implements abs(n), adapted from builtins/math.go builtinAbs.
func absFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	vals, err := evalAll(receiver, args, ctx, ev)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, argCountErr("abs", 1, len(vals))
	}
	switch v := vals[0].(type) {
	case types.Integer:
		if v.Val < 0 {
			return types.NewInteger(-v.Val), nil
		}
		return v, nil
	case types.Decimal:
		if v.Cmp(types.NewDecimalFromInt64(0)) < 0 {
			return v.Neg(), nil
		}
		return v, nil
	default:
		return nil, types.Errf(types.TypeMismatch, "abs not defined for %s", vals[0].Kind())
	}
}

// minFn/maxFn implement min/max over a variadic numeric argument list,
// adapted from builtins/math.go builtinMin/builtinMax, comparing via
// the evaluator's own relational ordering so Integer and Decimal mix
// freely (spec §4.2).
func minFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	return extremum(receiver, args, ctx, ev, "min", func(cmp int) bool { return cmp < 0 })
}

func maxFn(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval) (types.Value, error) {
	return extremum(receiver, args, ctx, ev, "max", func(cmp int) bool { return cmp > 0 })
}

func extremum(receiver types.Value, args []ast.Node, ctx *eval.Context, ev eval.Eval, name string, better func(cmp int) bool) (types.Value, error) {
	vals, err := evalAll(receiver, args, ctx, ev)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, argCountErr(name, 1, 0)
	}
	best := vals[0]
	for _, v := range vals[1:] {
		cmp, err := numericCompare(v, best)
		if err != nil {
			return nil, err
		}
		if better(cmp) {
			best = v
		}
	}
	return best, nil
}

func numericCompare(a, b types.Value) (int, error) {
	ad, aok := numericDecimal(a)
	bd, bok := numericDecimal(b)
	if !aok || !bok {
		return 0, types.Errf(types.TypeMismatch, "min/max require numeric arguments, got %s and %s", a.Kind(), b.Kind())
	}
	return ad.Cmp(bd), nil
}

func numericDecimal(v types.Value) (types.Decimal, bool) {
	switch val := v.(type) {
	case types.Decimal:
		return val, true
	case types.Integer:
		return types.NewDecimalFromInt64(val.Val), true
	default:
		return types.Decimal{}, false
	}
}
