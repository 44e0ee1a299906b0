package assignment

import (
	"context"
	"fmt"
)

// Quantity is the integer type used for costs and prices.
type Quantity = int64

// Status is the outcome of a ComputeAssignment attempt.
type Status int

const (
	// NotSolved means no solve has been attempted, or a mutation has
	// happened since the last one.
	NotSolved Status = iota
	// Optimal means a valid minimum-cost perfect matching is available.
	Optimal
	// Infeasible means no perfect matching exists (a right-side price fell
	// below its feasibility lower bound during some refine phase).
	Infeasible
	// BadInput means setup detected a structural error before any work
	// began (e.g. a left node with no outgoing arcs).
	BadInput
	// BadResult means an internal invariant was violated at the end of a
	// solve; this indicates a defect, not a user error.
	BadResult
)

// String renders Status for debug output.
func (st Status) String() string {
	switch st {
	case NotSolved:
		return "NOT_SOLVED"
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case BadInput:
		return "BAD_INPUT"
	case BadResult:
		return "BAD_RESULT"
	default:
		return fmt.Sprintf("Status(%d)", int(st))
	}
}

// Config configures an assignment Engine, mirroring the flat-struct style
// used by maxflow.Config and mincostflow.Config.
type Config struct {
	// Alpha is the scaling divisor Α applied each outer-loop iteration.
	Alpha int64

	// UseStackOrder selects LIFO active-node ordering (true, the default)
	// over FIFO (false). Ordering changes runtime, not correctness.
	UseStackOrder bool

	// CheckResult re-verifies matching completeness (every left node
	// matched to a distinct right node) after a solve and returns BadResult
	// if it is violated. ε-optimality is not re-checked.
	CheckResult bool

	// Ctx, when non-nil, is checked for cancellation once per DoublePush
	// and once per refine phase.
	Ctx context.Context

	// Tick is an optional cooperative-cancellation hook, called once per
	// DoublePush and once per refine phase; returning false aborts the
	// solve, leaving status NotSolved.
	Tick func() bool

	// Verbose logs each refine-phase transition via fmt.Printf.
	Verbose bool
}

// DefaultConfig returns Config's documented defaults.
func DefaultConfig() Config {
	return Config{
		Alpha:         5,
		UseStackOrder: true,
		CheckResult:   false,
		Ctx:           context.Background(),
	}
}

func (c *Config) tick() bool {
	if c.Ctx != nil && c.Ctx.Err() != nil {
		return false
	}
	if c.Tick != nil {
		return c.Tick()
	}
	return true
}
