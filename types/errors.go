package types

import "fmt"

// ErrorKind enumerates the failure modes the evaluator can surface (spec §7).
type ErrorKind int

const (
	TypeMismatch ErrorKind = iota
	InvalidKey
	IndexOutOfRange
	NoSuchKey
	UnknownIdent
	UnknownFunction
	UnknownMember
	NotCallable
	Unsupported
	DivideByZero
	// StepBudgetExceeded is an ambient addition (SPEC_FULL §F.1): the
	// evaluator stopped after Options.MaxSteps reductions rather than
	// let a runaway or adversarial AST run unbounded. It is not part of
	// spec.md's error table because spec.md leaves resource bounding to
	// the host; a host that sets no budget never observes it.
	StepBudgetExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidKey:
		return "InvalidKey"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case NoSuchKey:
		return "NoSuchKey"
	case UnknownIdent:
		return "UnknownIdent"
	case UnknownFunction:
		return "UnknownFunction"
	case UnknownMember:
		return "UnknownMember"
	case NotCallable:
		return "NotCallable"
	case Unsupported:
		return "Unsupported"
	case DivideByZero:
		return "DivideByZero"
	case StepBudgetExceeded:
		return "StepBudgetExceeded"
	default:
		return "Unknown"
	}
}

// EvalError is the error type returned by the evaluator. Hosts that need
// to branch on failure kind use errors.As against *EvalError.
type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errf constructs an *EvalError with a formatted message.
func Errf(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Err constructs a bare *EvalError with no message detail.
func Err(kind ErrorKind) *EvalError {
	return &EvalError{Kind: kind}
}
