package eval

import (
	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/trace"
	"github.com/mongoosemoo/cel/types"
)

// Evaluator walks an ast.Node tree, reducing it to a single types.Value
// against a Context (spec §4.5). It carries the per-call step budget and
// trace sink from Options; a fresh Evaluator is created for every top
// level Evaluate call so concurrent evaluations never share step state
// (spec §5), even though the Context they read from may be shared.
type Evaluator struct {
	opts  Options
	trace trace.Sink
	steps int
}

// Evaluate reduces node against ctx and returns its Value, or the first
// error raised during reduction (spec §4.5, §4.6). opts configures the
// step budget and trace sink for this call only; a non-zero
// opts.Precision changes the process-wide decimal precision.
func Evaluate(node ast.Node, ctx *Context, opts Options) (types.Value, error) {
	if opts.Precision != 0 {
		types.SetPrecision(opts.Precision)
	}
	e := &Evaluator{opts: opts, trace: opts.trace()}
	v, err := e.eval(node, ctx)
	if err != nil {
		e.trace.Error(nodeLabel(node), err)
	}
	return v, err
}

func (e *Evaluator) eval(node ast.Node, ctx *Context) (types.Value, error) {
	if e.opts.MaxSteps > 0 {
		e.steps++
		if e.steps > e.opts.MaxSteps {
			return nil, types.Err(types.StepBudgetExceeded)
		}
	}
	e.trace.Enter(nodeLabel(node))

	switch n := node.(type) {
	case ast.Atom:
		return n.Value, nil

	case ast.Ident:
		return e.evalIdent(n, ctx)

	case ast.Arithmetic:
		left, err := e.eval(n.Left, ctx)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Right, ctx)
		if err != nil {
			return nil, err
		}
		return evalArithmetic(n.Op, left, right)

	case ast.Relation:
		left, err := e.eval(n.Left, ctx)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Right, ctx)
		if err != nil {
			return nil, err
		}
		return evalRelation(n.Op, left, right)

	case ast.And:
		// Does NOT short-circuit (decided Open Question 1): both
		// operands are always reduced, even if Left is already falsy.
		left, err := e.eval(n.Left, ctx)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Right, ctx)
		if err != nil {
			return nil, err
		}
		return types.NewBool(left.Truthy() && right.Truthy()), nil

	case ast.Or:
		left, err := e.eval(n.Left, ctx)
		if err != nil {
			return nil, err
		}
		if left.Truthy() {
			return left, nil
		}
		return e.eval(n.Right, ctx)

	case ast.Ternary:
		cond, err := e.eval(n.Cond, ctx)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return e.eval(n.Then, ctx)
		}
		return e.eval(n.Else, ctx)

	case ast.Unary:
		v, err := e.eval(n.Expr, ctx)
		if err != nil {
			return nil, err
		}
		return evalUnary(n.Op, v)

	case ast.List:
		elements := make([]types.Value, len(n.Items))
		for i, item := range n.Items {
			v, err := e.eval(item, ctx)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return types.NewList(elements), nil

	case ast.Map:
		pairs := make([]types.MapPair, 0, len(n.Entries))
		for _, entry := range n.Entries {
			kv, err := e.eval(entry.Key, ctx)
			if err != nil {
				return nil, err
			}
			key, err := types.ToKey(kv)
			if err != nil {
				return nil, err
			}
			val, err := e.eval(entry.Val, ctx)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, types.MapPair{Key: key, Val: val})
		}
		return types.NewMap(pairs), nil

	case ast.Member:
		return evalMember(n, ctx, e.eval)

	default:
		return nil, types.Errf(types.Unsupported, "unsupported node %T", n)
	}
}

// evalIdent resolves a bare identifier. Functions shadow variables of
// the same name: a registered function yields an unbound Function
// handle, letting `size` on its own denote the callable, not a call
// (spec §4.3, §4.5).
func (e *Evaluator) evalIdent(n ast.Ident, ctx *Context) (types.Value, error) {
	if ctx.HasFunction(n.Name) {
		return types.NewFunction(n.Name), nil
	}
	if v, ok := ctx.GetVariable(n.Name); ok {
		return v, nil
	}
	return nil, types.Errf(types.UnknownIdent, "unknown identifier %q", n.Name)
}

// nodeLabel gives a short, stable name for trace output; it never
// carries evaluated values, only the node's syntactic kind.
func nodeLabel(node ast.Node) string {
	switch node.(type) {
	case ast.Atom:
		return "atom"
	case ast.Ident:
		return "ident"
	case ast.Arithmetic:
		return "arithmetic"
	case ast.Relation:
		return "relation"
	case ast.And:
		return "and"
	case ast.Or:
		return "or"
	case ast.Ternary:
		return "ternary"
	case ast.Unary:
		return "unary"
	case ast.List:
		return "list"
	case ast.Map:
		return "map"
	case ast.Member:
		return "member"
	default:
		return "node"
	}
}
