// Package ast defines the shape of tree the evaluator consumes (spec §4.1).
// Producing this tree from source text is an external collaborator's job
// (a parser); this package only fixes the interface between that parser
// and the evaluator in package eval.
package ast

import "github.com/mongoosemoo/cel/types"

// Node is the common interface of every AST node kind.
type Node interface {
	isNode()
}

// Atom wraps an already-constructed literal Value: Integer, Decimal,
// String, Bytes, Bool, or Null.
type Atom struct {
	Value types.Value
}

func (Atom) isNode() {}

// Ident is a bare identifier, resolved against a Context at evaluation
// time (functions before variables — spec §4.3/§4.5).
type Ident struct {
	Name string
}

func (Ident) isNode() {}

// ArithmeticOp is the operator of an Arithmetic node.
type ArithmeticOp int

const (
	Add ArithmeticOp = iota
	Sub
	Mul
	Div
	Mod
)

// Arithmetic is a binary +, -, *, /, or % expression.
type Arithmetic struct {
	Left, Right Node
	Op          ArithmeticOp
}

func (Arithmetic) isNode() {}

// RelationOp is the operator of a Relation node.
type RelationOp int

const (
	Lt RelationOp = iota
	Le
	Gt
	Ge
	Eq
	Ne
	In
)

// Relation is a binary comparison or membership test.
type Relation struct {
	Left, Right Node
	Op          RelationOp
}

func (Relation) isNode() {}

// And is logical &&. Per spec §4.5 (and SPEC_FULL.md Open Question 1)
// this does NOT short-circuit: both operands are always evaluated.
type And struct {
	Left, Right Node
}

func (And) isNode() {}

// Or is logical ||. It short-circuits: if Left is truthy, Right is never
// evaluated and Left's own value (not a coerced Bool) is the result.
type Or struct {
	Left, Right Node
}

func (Or) isNode() {}

// Ternary is `Cond ? Then : Else`; only the chosen branch is evaluated.
type Ternary struct {
	Cond, Then, Else Node
}

func (Ternary) isNode() {}

// UnaryOp is the operator of a Unary node.
type UnaryOp int

const (
	Not UnaryOp = iota
	DoubleNot
	Minus
	DoubleMinus
)

// Unary is a single-operand expression: !x, !!x, -x, or --x.
type Unary struct {
	Op   UnaryOp
	Expr Node
}

func (Unary) isNode() {}

// List is a list literal; elements are evaluated left-to-right.
type List struct {
	Items []Node
}

func (List) isNode() {}

// MapEntry is one key/value pair of a Map literal.
type MapEntry struct {
	Key, Val Node
}

// Map is a map literal. Keys are evaluated, coerced to types.Key, and
// inserted in iteration order; a duplicate key takes the later value.
type Map struct {
	Entries []MapEntry
}

func (Map) isNode() {}

// Selector is the member-access kind of a Member node.
type Selector interface {
	isSelector()
}

// Attribute is `.name` — attribute/method-handle access.
type Attribute struct {
	Name string
}

func (Attribute) isSelector() {}

// Index is `[expr]` — list or map indexing.
type Index struct {
	Expr Node
}

func (Index) isSelector() {}

// FunctionCall is `(args...)` applied to a preceding Function handle.
type FunctionCall struct {
	Args []Node
}

func (FunctionCall) isSelector() {}

// Fields is reserved for typed struct/message construction, which is out
// of scope (spec §4.1, §1 Non-goals). Encountering it fails evaluation
// with Unsupported.
type Fields struct{}

func (Fields) isSelector() {}

// Member is `Receiver<Selector>`: attribute access, indexing, or a
// function call applied to whatever Receiver reduces to.
type Member struct {
	Receiver Node
	Selector Selector
}

func (Member) isNode() {}
