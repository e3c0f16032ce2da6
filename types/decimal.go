package types

import (
	"github.com/cockroachdb/apd/v3"
)

// decCtx is the arithmetic context shared by all Decimal operations.
// Precision 34 comfortably exceeds spec.md's 28-significant-digit floor
// (grounded on cue-lang-cue's internal/core/adt/binop.go, which keeps a
// single package-level apd.Context rather than threading one through
// every call).
var decCtx = apd.BaseContext.WithPrecision(34)

// SetPrecision adjusts the shared decimal context's significant-digit
// count. It is not safe to call concurrently with in-flight Decimal
// arithmetic; hosts call it once during startup, the way cue-lang-cue
// sets its package-level apd.Context precision in an init() function.
func SetPrecision(digits uint32) {
	decCtx = decCtx.WithPrecision(digits)
}

// Precision reports the shared decimal context's current significant-digit count.
func Precision() uint32 {
	return decCtx.Precision
}

// Decimal is a fixed-point decimal backed by cockroachdb/apd, giving
// exact decimal arithmetic rather than binary floating point.
type Decimal struct {
	d *apd.Decimal
}

// NewDecimal wraps an *apd.Decimal. The caller must not mutate d after
// passing it in; Decimal treats it as immutable like every other Value.
func NewDecimal(d *apd.Decimal) Decimal { return Decimal{d: d} }

// NewDecimalFromInt64 promotes an integer to Decimal.
func NewDecimalFromInt64(v int64) Decimal { return Decimal{d: promoteInt(v)} }

// NewDecimalFromString parses a decimal literal, e.g. for test fixtures
// and YAML-driven conformance cases where a string is the natural
// on-disk representation of a Decimal atom.
func NewDecimalFromString(s string) (Decimal, error) {
	d, _, err := decCtx.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d: d}, nil
}

func promoteInt(v int64) *apd.Decimal {
	return apd.New(v, 0)
}

// Raw exposes the underlying *apd.Decimal for use by the evaluator's
// arithmetic dispatch (eval/operators.go); it is not part of the Value
// contract other variants need to know about.
func (d Decimal) Raw() *apd.Decimal { return d.d }

func (d Decimal) Kind() Kind { return KindDecimal }

func (d Decimal) String() string { return d.d.String() }

func (d Decimal) Truthy() bool { return !d.d.IsZero() }

func (d Decimal) Equal(other Value) bool {
	switch o := other.(type) {
	case Decimal:
		return d.d.Cmp(o.d) == 0
	case Integer:
		return d.d.Cmp(promoteInt(o.Val)) == 0
	default:
		return false
	}
}

// Cmp returns -1, 0, or 1 as d is less than, equal to, or greater than o.
func (d Decimal) Cmp(o Decimal) int { return d.d.Cmp(o.d) }

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	neg := new(apd.Decimal).Set(d.d)
	if !neg.IsZero() {
		neg.Negative = !neg.Negative
	}
	return Decimal{d: neg}
}

// decimalOp runs an apd.Context arithmetic method (Add/Sub/Mul/Quo/Rem)
// and maps its Condition/error outcome onto the evaluator's error
// domain, grounded on cue-lang-cue's numOp helper in
// internal/core/adt/binop.go.
func decimalOp(fn func(z, x, y *apd.Decimal) (apd.Condition, error), x, y Decimal) (Decimal, error) {
	var z apd.Decimal
	cond, err := fn(&z, x.d, y.d)
	if cond.DivisionByZero() {
		return Decimal{}, Err(DivideByZero)
	}
	if err != nil {
		return Decimal{}, Errf(TypeMismatch, "decimal arithmetic: %v", err)
	}
	return Decimal{d: &z}, nil
}

// AddDecimal returns x + y with exact decimal semantics.
func AddDecimal(x, y Decimal) (Decimal, error) { return decimalOp(decCtx.Add, x, y) }

// SubDecimal returns x - y with exact decimal semantics.
func SubDecimal(x, y Decimal) (Decimal, error) { return decimalOp(decCtx.Sub, x, y) }

// MulDecimal returns x * y with exact decimal semantics.
func MulDecimal(x, y Decimal) (Decimal, error) { return decimalOp(decCtx.Mul, x, y) }

// QuoDecimal returns x / y, rounded per the shared decimal context's
// precision and rounding rule (spec §4.2).
func QuoDecimal(x, y Decimal) (Decimal, error) { return decimalOp(decCtx.Quo, x, y) }

// RemDecimal returns x % y with exact decimal semantics.
func RemDecimal(x, y Decimal) (Decimal, error) { return decimalOp(decCtx.Rem, x, y) }
