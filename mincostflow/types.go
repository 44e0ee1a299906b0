package mincostflow

import (
	"context"
	"errors"
	"fmt"
)

// Quantity is the integer type used for capacities, supplies, costs, and
// flow. Matches maxflow.Quantity so the feasibility oracle's results can be
// compared directly.
type Quantity = int64

// Status is the outcome of a solve attempt.
type Status int

const (
	// NotSolved means no solve has been attempted, or a mutation has
	// happened since the last one.
	NotSolved Status = iota
	// Optimal means a valid minimum-cost feasible flow is available.
	Optimal
	// Infeasible means the supplies/demands cannot be satisfied given arc
	// capacities; the feasibility pre-check's shortfall is inspectable via
	// UnsaturatedSupply/UnsaturatedDemand.
	Infeasible
	// Unbalanced means the node supplies do not sum to zero.
	Unbalanced
	// BadCostRange means costs × (n+1) could overflow Quantity.
	BadCostRange
	// BadInput means setup detected a structural error (e.g. negative
	// capacity) before any work began.
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
	case Unbalanced:
		return "UNBALANCED"
	case BadCostRange:
		return "BAD_COST_RANGE"
	case BadInput:
		return "BAD_INPUT"
	case BadResult:
		return "BAD_RESULT"
	default:
		return fmt.Sprintf("Status(%d)", int(st))
	}
}

// Sentinel errors for setup-time input validation.
var (
	// ErrNegativeCapacity is returned by SetArcCapacity for a negative cap.
	ErrNegativeCapacity = errors.New("mincostflow: negative arc capacity")
)

// Config configures a min-cost-flow Engine, mirroring the flat-struct style
// of maxflow.Config.
type Config struct {
	// Alpha is the scaling divisor Α applied each outer-loop iteration
	// (ε ← max(⌊ε/Α⌋, 1)). Not to be confused with the fixed structural
	// cost-scale factor (n+1), which is never configurable.
	Alpha int64

	// CheckFeasibility runs the max-flow-oracle feasibility pre-check
	// before cost-scaling begins.
	CheckFeasibility bool

	// CheckBalance verifies supplies sum to zero before solving.
	CheckBalance bool

	// CheckCosts runs the BAD_COST_RANGE overflow prediction at setup.
	CheckCosts bool

	// FastPotentialUpdate selects potential[v] -= ε relabeling (true) over
	// the slower, more diagnostic max-over-admissible-neighbors update
	// (false).
	FastPotentialUpdate bool

	// CheckResult re-verifies capacity/flow/conservation invariants after
	// a solve and returns BadResult if any are violated.
	CheckResult bool

	// Ctx, when non-nil, is checked for cancellation once per discharge
	// and once per refine phase.
	Ctx context.Context

	// Tick is an optional cooperative-cancellation hook, called once per
	// discharge and once per refine phase; returning false aborts the
	// solve, leaving status NotSolved.
	Tick func() bool

	// Verbose logs each refine-phase transition via fmt.Printf.
	Verbose bool
}

// DefaultConfig returns Config's documented defaults.
func DefaultConfig() Config {
	return Config{
		Alpha:               5,
		CheckFeasibility:    true,
		CheckBalance:        true,
		CheckCosts:          true,
		FastPotentialUpdate: true,
		CheckResult:         true,
		Ctx:                 context.Background(),
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
