package types

// Function is a handle carrying a function name and an optional bound
// receiver, produced by Ident/Member attribute resolution for the
// following FunctionCall member to consume. eval.Evaluate does not
// reject it as a final result: an expression that reduces to a handle,
// such as a bare registered function name, returns the handle itself.
type Function struct {
	Name     string
	Receiver Value // nil when unbound
}

// NewFunction constructs an unbound Function handle.
func NewFunction(name string) Function {
	return Function{Name: name}
}

// WithReceiver returns a copy of f bound to receiver.
func (f Function) WithReceiver(receiver Value) Function {
	return Function{Name: f.Name, Receiver: receiver}
}

func (f Function) Kind() Kind { return KindFunction }

func (f Function) String() string { return "function(" + f.Name + ")" }

// Truthy is always false: a Function reaching a truthiness check means
// it escaped member-call dispatch, which is itself an internal invariant
// violation (spec §9 Design Notes), but spec §4.2 still defines the
// truthiness table total over all kinds.
func (f Function) Truthy() bool { return false }

func (f Function) Equal(other Value) bool {
	o, ok := other.(Function)
	if !ok || f.Name != o.Name {
		return false
	}
	if (f.Receiver == nil) != (o.Receiver == nil) {
		return false
	}
	if f.Receiver == nil {
		return true
	}
	return f.Receiver.Equal(o.Receiver)
}
