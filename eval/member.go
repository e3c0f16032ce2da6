package eval

import (
	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/types"
)

// evalMember reduces a Member node per the selector kind (spec §4.4).
// For Attribute, Index and FunctionCall, Receiver is evaluated first;
// Fields fails with Unsupported without evaluating it. FunctionCall is the one selector
// where Receiver's reduced Value is expected to already be a Function
// handle (produced by a prior Ident or Attribute reduction) rather than
// a plain data Value.
func evalMember(m ast.Member, ctx *Context, ev Eval) (types.Value, error) {
	switch sel := m.Selector.(type) {
	case ast.Attribute:
		return evalAttribute(m.Receiver, sel, ctx, ev)
	case ast.Index:
		return evalIndex(m.Receiver, sel, ctx, ev)
	case ast.FunctionCall:
		return evalCall(m.Receiver, sel, ctx, ev)
	case ast.Fields:
		return nil, types.Err(types.Unsupported)
	default:
		return nil, types.Errf(types.TypeMismatch, "unknown selector %T", sel)
	}
}

// evalAttribute implements `receiver.name`: a bound Function handle when
// name is registered, so that `x.size()` and `size(x)` reach the same
// Callable via the "free function ≡ method with implicit receiver"
// convention (spec §4.4).
func evalAttribute(receiver ast.Node, sel ast.Attribute, ctx *Context, ev Eval) (types.Value, error) {
	receiverVal, err := ev(receiver, ctx)
	if err != nil {
		return nil, err
	}
	if !ctx.HasFunction(sel.Name) {
		return nil, types.Errf(types.UnknownMember, "no member %q on %s", sel.Name, receiverVal.Kind())
	}
	return types.NewFunction(sel.Name).WithReceiver(receiverVal), nil
}

// evalIndex implements `receiver[expr]` for List (0-based) and Map.
func evalIndex(receiver ast.Node, sel ast.Index, ctx *Context, ev Eval) (types.Value, error) {
	receiverVal, err := ev(receiver, ctx)
	if err != nil {
		return nil, err
	}
	indexVal, err := ev(sel.Expr, ctx)
	if err != nil {
		return nil, err
	}

	switch container := receiverVal.(type) {
	case types.List:
		idx, ok := indexVal.(types.Integer)
		if !ok {
			return nil, types.Errf(types.TypeMismatch, "list index must be an integer, got %s", indexVal.Kind())
		}
		i := int(idx.Val)
		if i < 0 || i >= container.Len() {
			return nil, types.Errf(types.IndexOutOfRange, "index %d out of range for list of length %d", i, container.Len())
		}
		return container.Get(i), nil

	case types.Map:
		key, err := types.ToKey(indexVal)
		if err != nil {
			return nil, err
		}
		v, ok := container.Get(key)
		if !ok {
			return nil, types.Errf(types.NoSuchKey, "no key %s in map", key.String())
		}
		return v, nil

	default:
		return nil, types.Errf(types.TypeMismatch, "cannot index %s", receiverVal.Kind())
	}
}

// evalCall implements `callee(args...)`. callee must reduce to a
// Function handle (bound or unbound); args are passed to the
// registered Callable unevaluated, per the host-callable protocol
// (spec §4.4, §4.6).
func evalCall(callee ast.Node, sel ast.FunctionCall, ctx *Context, ev Eval) (types.Value, error) {
	calleeVal, err := ev(callee, ctx)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(types.Function)
	if !ok {
		return nil, types.Errf(types.NotCallable, "%s is not callable", calleeVal.Kind())
	}
	callable, ok := ctx.GetFunction(fn.Name)
	if !ok {
		return nil, types.Errf(types.UnknownFunction, "unknown function %q", fn.Name)
	}
	return callable(fn.Receiver, sel.Args, ctx, ev)
}
