// Package eval implements the recursive reduction of ast.Node trees to
// types.Value (spec §4.5), the binding Context (spec §4.3), and the
// function-call protocol (spec §4.4).
package eval

import (
	"github.com/mongoosemoo/cel/ast"
	"github.com/mongoosemoo/cel/types"
)

// Eval evaluates a single AST node against ctx, threading through the
// same step-budget and trace sink as the call that's already in
// progress. Host callables receive one of these so they can recursively
// evaluate their (unevaluated) argument nodes — spec §4.4 and §4.6.
type Eval func(node ast.Node, ctx *Context) (types.Value, error)

// Callable is the invocation convention for builtin and host functions
// (spec §4.4, §6). receiver is nil when the call is unbound. args are
// passed unevaluated so the callable can short-circuit, introspect, or
// skip evaluating some of them.
type Callable func(receiver types.Value, args []ast.Node, ctx *Context, eval Eval) (types.Value, error)

// Context is the binding environment: a pair of mappings from name to
// variable and from name to function (spec §3, §4.3). It is created and
// populated by the caller before evaluation and is read-only during
// evaluation; the same Context may be reused by concurrent evaluations
// of the same or different ASTs as long as its Callables are themselves
// safe to invoke concurrently (spec §5).
//
// Adapted from the teacher's eval.Environment, dropping the nested
// lexical-scope chain: this language has no let-binding or lambda forms
// to introduce a child scope, so a single flat namespace per mapping
// suffices.
type Context struct {
	variables map[string]types.Value
	functions map[string]Callable
}

// NewContext returns an empty Context (spec §4.3: "the default context
// is empty").
func NewContext() *Context {
	return &Context{
		variables: make(map[string]types.Value),
		functions: make(map[string]Callable),
	}
}

// SetVariable binds name to v, replacing any prior binding (shadowing).
func (c *Context) SetVariable(name string, v types.Value) {
	c.variables[name] = v
}

// SetFunction registers a callable under name, replacing any prior
// registration.
func (c *Context) SetFunction(name string, fn Callable) {
	c.functions[name] = fn
}

// GetVariable looks up a variable by exact name.
func (c *Context) GetVariable(name string) (types.Value, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// GetFunction looks up a registered callable by exact name.
func (c *Context) GetFunction(name string) (Callable, bool) {
	fn, ok := c.functions[name]
	return fn, ok
}

// HasFunction reports whether name is registered as a function, without
// returning the callable. Used by Ident/Attribute resolution, where
// functions take precedence over variables of the same name (spec §4.3).
func (c *Context) HasFunction(name string) bool {
	_, ok := c.functions[name]
	return ok
}
