package conformance

import (
	"encoding/base64"
	"fmt"

	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/eval"
	"github.com/mongoosemoo/cel/prelude"
	"github.com/mongoosemoo/cel/types"
)

// Run decodes tc.Ast and evaluates it against a Context built from
// tc.Vars plus the standard prelude, then reports whether the result
// matches tc.Expect. It never calls testing.T directly so it can be
// driven by table tests or by any other harness (spec §8).
//
// Fixtures encode the tree directly (see nodeFromYAML) rather than a
// source-text expression: turning text into a tree is a parser's job,
// and producing one is explicitly an external collaborator's concern
// here, not the evaluator's (spec §1, §4.1).
func Run(tc TestCase) error {
	node, err := nodeFromYAML(tc.Ast)
	if err != nil {
		return fmt.Errorf("decoding ast: %w", err)
	}

	ctx := eval.NewContext()
	prelude.Register(ctx)
	for name, raw := range tc.Vars {
		v, err := valueFromYAML(raw)
		if err != nil {
			return fmt.Errorf("decoding var %q: %w", name, err)
		}
		ctx.SetVariable(name, v)
	}

	got, err := eval.Evaluate(node, ctx, eval.Options{})

	if tc.Expect.Error != "" {
		if err == nil {
			return fmt.Errorf("expected error %s, got value %s", tc.Expect.Error, got.String())
		}
		evalErr, ok := err.(*types.EvalError)
		if !ok {
			return fmt.Errorf("expected *types.EvalError, got %T: %v", err, err)
		}
		if evalErr.Kind.String() != tc.Expect.Error {
			return fmt.Errorf("expected error kind %s, got %s", tc.Expect.Error, evalErr.Kind.String())
		}
		return nil
	}

	if err != nil {
		return fmt.Errorf("unexpected error: %v", err)
	}
	want, err := valueFromYAML(tc.Expect.Value)
	if err != nil {
		return fmt.Errorf("decoding expected value: %w", err)
	}
	if !got.Equal(want) {
		return fmt.Errorf("expected %s, got %s", want.String(), got.String())
	}
	return nil
}

// ============================================================================
// VALUE DECODING
// ============================================================================

// valueFromYAML converts a YAML-decoded scalar/map/list into a
// types.Value. Tagged single-key maps pick the Decimal/Bytes/Map
// variants that a bare YAML scalar can't express unambiguously.
func valueFromYAML(raw any) (types.Value, error) {
	switch v := raw.(type) {
	case nil:
		return types.Null{}, nil
	case bool:
		return types.NewBool(v), nil
	case int:
		return types.NewInteger(int64(v)), nil
	case int64:
		return types.NewInteger(v), nil
	case string:
		return types.NewString(v), nil
	case []any:
		elements := make([]types.Value, len(v))
		for i, item := range v {
			ev, err := valueFromYAML(item)
			if err != nil {
				return nil, err
			}
			elements[i] = ev
		}
		return types.NewList(elements), nil
	case map[string]any:
		return taggedValueFromYAML(v)
	default:
		return nil, fmt.Errorf("unsupported fixture value %v (%T)", raw, raw)
	}
}

func taggedValueFromYAML(m map[string]any) (types.Value, error) {
	if len(m) == 1 {
		for tag, payload := range m {
			switch tag {
			case "decimal":
				s, ok := payload.(string)
				if !ok {
					return nil, fmt.Errorf("decimal fixture value must be a string, got %T", payload)
				}
				return types.NewDecimalFromString(s)
			case "bytes":
				s, ok := payload.(string)
				if !ok {
					return nil, fmt.Errorf("bytes fixture value must be a base64 string, got %T", payload)
				}
				b, err := base64.StdEncoding.DecodeString(s)
				if err != nil {
					return nil, fmt.Errorf("decoding bytes fixture value: %w", err)
				}
				return types.NewBytes(b), nil
			case "map":
				entries, ok := payload.([]any)
				if !ok {
					return nil, fmt.Errorf("map fixture value must be a list of {key,val} entries, got %T", payload)
				}
				return mapFromEntries(entries)
			}
		}
	}
	return mapValueFromYAML(m)
}

// mapValueFromYAML treats an untagged mapping as map literal sugar:
// each key is a string Key and each value is decoded recursively.
func mapValueFromYAML(m map[string]any) (types.Value, error) {
	pairs := make([]types.MapPair, 0, len(m))
	for k, raw := range m {
		v, err := valueFromYAML(raw)
		if err != nil {
			return nil, err
		}
		key, err := types.ToKey(types.NewString(k))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, types.MapPair{Key: key, Val: v})
	}
	return types.NewMap(pairs), nil
}

func mapFromEntries(entries []any) (types.Value, error) {
	pairs := make([]types.MapPair, 0, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("map entry must be a mapping, got %T", raw)
		}
		kv, err := valueFromYAML(entry["key"])
		if err != nil {
			return nil, err
		}
		key, err := types.ToKey(kv)
		if err != nil {
			return nil, err
		}
		vv, err := valueFromYAML(entry["val"])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, types.MapPair{Key: key, Val: vv})
	}
	return types.NewMap(pairs), nil
}

// ============================================================================
// AST DECODING
// ============================================================================

func nodeFromYAML(raw any) (ast.Node, error) {
	m, ok := raw.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, fmt.Errorf("ast node must be a single-key mapping, got %v", raw)
	}
	for tag, payload := range m {
		return nodeFromTag(tag, payload)
	}
	panic("unreachable")
}

func nodeFromTag(tag string, payload any) (ast.Node, error) {
	switch tag {
	case "atom":
		v, err := valueFromYAML(payload)
		if err != nil {
			return nil, err
		}
		return ast.Atom{Value: v}, nil

	case "ident":
		name, ok := payload.(string)
		if !ok {
			return nil, fmt.Errorf("ident payload must be a string, got %T", payload)
		}
		return ast.Ident{Name: name}, nil

	case "add", "sub", "mul", "div", "mod":
		left, right, err := binaryOperands(payload)
		if err != nil {
			return nil, err
		}
		ops := map[string]ast.ArithmeticOp{"add": ast.Add, "sub": ast.Sub, "mul": ast.Mul, "div": ast.Div, "mod": ast.Mod}
		return ast.Arithmetic{Left: left, Right: right, Op: ops[tag]}, nil

	case "lt", "le", "gt", "ge", "eq", "ne", "in":
		left, right, err := binaryOperands(payload)
		if err != nil {
			return nil, err
		}
		ops := map[string]ast.RelationOp{
			"lt": ast.Lt, "le": ast.Le, "gt": ast.Gt, "ge": ast.Ge,
			"eq": ast.Eq, "ne": ast.Ne, "in": ast.In,
		}
		return ast.Relation{Left: left, Right: right, Op: ops[tag]}, nil

	case "and":
		left, right, err := binaryOperands(payload)
		if err != nil {
			return nil, err
		}
		return ast.And{Left: left, Right: right}, nil

	case "or":
		left, right, err := binaryOperands(payload)
		if err != nil {
			return nil, err
		}
		return ast.Or{Left: left, Right: right}, nil

	case "ternary":
		m, ok := payload.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("ternary payload must be a mapping, got %T", payload)
		}
		cond, err := nodeFromYAML(m["cond"])
		if err != nil {
			return nil, err
		}
		then, err := nodeFromYAML(m["then"])
		if err != nil {
			return nil, err
		}
		els, err := nodeFromYAML(m["else"])
		if err != nil {
			return nil, err
		}
		return ast.Ternary{Cond: cond, Then: then, Else: els}, nil

	case "not", "doublenot", "neg", "doubleneg":
		expr, err := nodeFromYAML(payload)
		if err != nil {
			return nil, err
		}
		ops := map[string]ast.UnaryOp{
			"not": ast.Not, "doublenot": ast.DoubleNot,
			"neg": ast.Minus, "doubleneg": ast.DoubleMinus,
		}
		return ast.Unary{Op: ops[tag], Expr: expr}, nil

	case "list":
		items, ok := payload.([]any)
		if !ok {
			return nil, fmt.Errorf("list payload must be a sequence, got %T", payload)
		}
		nodes := make([]ast.Node, len(items))
		for i, item := range items {
			n, err := nodeFromYAML(item)
			if err != nil {
				return nil, err
			}
			nodes[i] = n
		}
		return ast.List{Items: nodes}, nil

	case "mapLit":
		entries, ok := payload.([]any)
		if !ok {
			return nil, fmt.Errorf("mapLit payload must be a sequence, got %T", payload)
		}
		mapEntries := make([]ast.MapEntry, len(entries))
		for i, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("mapLit entry must be a mapping, got %T", raw)
			}
			key, err := nodeFromYAML(entry["key"])
			if err != nil {
				return nil, err
			}
			val, err := nodeFromYAML(entry["val"])
			if err != nil {
				return nil, err
			}
			mapEntries[i] = ast.MapEntry{Key: key, Val: val}
		}
		return ast.Map{Entries: mapEntries}, nil

	case "member":
		m, ok := payload.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("member payload must be a mapping, got %T", payload)
		}
		receiver, err := nodeFromYAML(m["receiver"])
		if err != nil {
			return nil, err
		}
		sel, err := selectorFromYAML(m)
		if err != nil {
			return nil, err
		}
		return ast.Member{Receiver: receiver, Selector: sel}, nil

	default:
		return nil, fmt.Errorf("unknown ast node tag %q", tag)
	}
}

func binaryOperands(payload any) (ast.Node, ast.Node, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("binary node payload must be a mapping, got %T", payload)
	}
	left, err := nodeFromYAML(m["left"])
	if err != nil {
		return nil, nil, err
	}
	right, err := nodeFromYAML(m["right"])
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func selectorFromYAML(m map[string]any) (ast.Selector, error) {
	if name, ok := m["attr"]; ok {
		s, ok := name.(string)
		if !ok {
			return nil, fmt.Errorf("attr selector must be a string, got %T", name)
		}
		return ast.Attribute{Name: s}, nil
	}
	if idx, ok := m["index"]; ok {
		n, err := nodeFromYAML(idx)
		if err != nil {
			return nil, err
		}
		return ast.Index{Expr: n}, nil
	}
	if call, ok := m["call"]; ok {
		items, ok := call.([]any)
		if !ok {
			return nil, fmt.Errorf("call selector must be a sequence, got %T", call)
		}
		args := make([]ast.Node, len(items))
		for i, item := range items {
			n, err := nodeFromYAML(item)
			if err != nil {
				return nil, err
			}
			args[i] = n
		}
		return ast.FunctionCall{Args: args}, nil
	}
	return nil, fmt.Errorf("member mapping must have one of attr/index/call")
}
