package maxflow

import (
	"context"
	"errors"
	"fmt"
)

// Quantity is the integer type used for capacities, flows, and excess.
type Quantity = int64

// Status is the outcome of a solve attempt.
type Status int

const (
	// NotSolved means no solve has been attempted, or a mutation has
	// happened since the last one.
	NotSolved Status = iota
	// Optimal means a valid maximum flow is available.
	Optimal
	// IntOverflow means the true optimum exceeds Quantity's representable
	// range; OptimalFlow() holds a valid lower bound.
	IntOverflow
	// BadInput means setup detected a structural error (e.g. negative
	// capacity, source == sink) before any work began.
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
	case IntOverflow:
		return "INT_OVERFLOW"
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
	ErrNegativeCapacity = errors.New("maxflow: negative arc capacity")

	// ErrSourceEqualsSink names the source == sink input error. No function
	// in this package returns it; Solve reports that case as BadInput.
	ErrSourceEqualsSink = errors.New("maxflow: source and sink must differ")

	// ErrArcOutOfRange names an arc outside the graph's forward-arc range.
	// No function in this package returns it.
	ErrArcOutOfRange = errors.New("maxflow: arc index out of range")
)

// Config configures a max-flow Engine, as a flat struct of documented
// defaults rather than functional options, since every tunable here is a
// concrete field with a concrete default.
type Config struct {
	// UseGlobalUpdate enables periodic reverse-BFS-from-sink height
	// resynchronization.
	UseGlobalUpdate bool

	// UseTwoPhaseAlgorithm stops discharging a node once its potential
	// reaches NumNodes(), and runs the phase-two excess-return DFS
	// afterwards instead of continuing to discharge at heights ≥ n.
	UseTwoPhaseAlgorithm bool

	// ProcessNodeByHeight selects activeset.Buckets (true, the required
	// highest-label-first order) over activeset.Queue (false, FIFO,
	// simpler but with a weaker complexity bound).
	ProcessNodeByHeight bool

	// CheckInput runs input validation (negative capacity) eagerly even
	// when the caller never does so itself via SetArcCapacity's return.
	CheckInput bool

	// CheckResult re-verifies capacity/flow and conservation invariants
	// after a solve and returns BadResult if any are violated.
	CheckResult bool

	// GlobalUpdateInterval is the number of discharges between global
	// updates when UseGlobalUpdate is true. A value ≤ 0 means once every
	// NumNodes() discharges (at least 1).
	GlobalUpdateInterval int

	// SkipRelabelThreshold implements an optional "skip after repeated
	// tall relabel" heuristic: a node's discharge stops and the node is
	// re-queued once it has been relabeled more than this many times since
	// it was last re-queued this way (or since Solve began); its count then
	// restarts at zero. 0 disables the heuristic.
	SkipRelabelThreshold int

	// Ctx, when non-nil, is checked for cancellation once per discharge
	// and once per global update.
	Ctx context.Context

	// Tick is an optional cooperative-cancellation hook, called once per
	// discharge and once per global update; returning false aborts the
	// solve, leaving status NotSolved. Either Ctx or Tick (or both) may be
	// used.
	Tick func() bool

	// Verbose logs each global update via fmt.Printf.
	Verbose bool
}

// DefaultConfig returns Config's documented defaults.
func DefaultConfig() Config {
	return Config{
		UseGlobalUpdate:      true,
		UseTwoPhaseAlgorithm: true,
		ProcessNodeByHeight:  true,
		CheckInput:           false,
		CheckResult:          false,
		GlobalUpdateInterval: 0,
		SkipRelabelThreshold: 1,
		Ctx:                  context.Background(),
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
