package eval

import (
	"github.com/mongoosemoo/cel/trace"
	"github.com/mongoosemoo/cel/types"
)

// Options collects host-tunable knobs for a single Evaluate call
// (SPEC_FULL.md §F.1).
type Options struct {
	// MaxSteps bounds the number of AST node reductions before
	// evaluation fails with StepBudgetExceeded. Zero means unlimited.
	// This is the pre-evaluation-independent analogue of the teacher's
	// TaskContext.TicksRemaining/ConsumeTick (spec §5).
	MaxSteps int

	// Precision overrides the decimal arithmetic context's significant
	// digits (spec §3 requires at least 28; default 34). Zero keeps the
	// package default. Precision is process-wide, matching the
	// teacher's single package-level apd.Context, so set it once during
	// startup rather than per call in concurrent use.
	Precision uint32

	// Trace receives a call for every node the evaluator reduces, and
	// for every error it raises. Nil uses trace.Noop.
	Trace trace.Sink
}

func (o Options) trace() trace.Sink {
	if o.Trace == nil {
		return trace.Noop
	}
	return o.Trace
}

func init() {
	// Establish the package default up front so types.Precision queries
	// see a stable value even before any Evaluate call runs.
	types.SetPrecision(34)
}
