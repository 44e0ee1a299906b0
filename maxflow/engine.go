package maxflow

import (
	"math"

	"github.com/katalvlaran/pushrelabel/activeset"
	"github.com/katalvlaran/pushrelabel/stargraph"
	"github.com/katalvlaran/pushrelabel/vecint"
)

// Engine computes maximum flow from source to sink over a frozen
// *stargraph.Graph using push-relabel.
//
// Engine owns its residual/potential/excess/first-admissible arrays
// exclusively; the graph is borrowed immutably for the engine's lifetime.
// Arrays are sized once at construction from the graph's reserved capacity
// and reset, not reallocated, on every Solve.
type Engine struct {
	g      *stargraph.Graph
	source stargraph.NodeIndex
	sink   stargraph.NodeIndex
	cfg    Config
	status Status

	capacity *vecint.Signed[Quantity] // as set by SetArcCapacity, survives Reset
	residual *vecint.Signed[Quantity]
	excess   *vecint.Dense[Quantity]
	height   *vecint.Dense[int64]
	first    *vecint.Dense[stargraph.ArcIndex]
	relabels *vecint.Dense[int32]
	inActive *vecint.Dense[int8]

	active           container
	dischargeCount   int
	globalUpdateStep int
	overflowPossible bool
}

// New constructs an Engine over g for the given source and sink. g need not
// be Build()-ed yet, but must not gain further arcs once attached to a
// solve: call g.Build() before Solve.
func New(g *stargraph.Graph, source, sink stargraph.NodeIndex, cfg Config) *Engine {
	n := g.MaxNodes()
	m := g.MaxArcs()

	e := &Engine{
		g:        g,
		source:   source,
		sink:     sink,
		cfg:      cfg,
		status:   NotSolved,
		capacity: vecint.NewSigned[Quantity](m),
		residual: vecint.NewSigned[Quantity](m),
		excess:   vecint.NewDense[Quantity](n),
		height:   vecint.NewDense[int64](n),
		first:    vecint.NewDense[stargraph.ArcIndex](n),
		relabels: vecint.NewDense[int32](n),
		inActive: vecint.NewDense[int8](n),
	}
	if cfg.ProcessNodeByHeight {
		e.active = bucketsContainer{activeset.NewBuckets(2 * n)}
	} else {
		e.active = queueContainer{activeset.NewQueue[int]()}
	}

	return e
}

// SetArcCapacity sets the capacity of forward arc a. Negative capacities
// are rejected with ErrNegativeCapacity. Any mutation moves Status back to
// NotSolved.
func (e *Engine) SetArcCapacity(a stargraph.ArcIndex, cap Quantity) error {
	if cap < 0 {
		return ErrNegativeCapacity
	}
	e.capacity.Set(int(a), cap)
	e.status = NotSolved

	return nil
}

// SetArcFlow sets the residual pair of arc a as if it carried flow f, so
// Flow(a) reports f until the next Solve. f is not checked against
// capacity(a), and the flow is not carried into Solve: Solve re-initializes
// every residual from the stored capacities.
func (e *Engine) SetArcFlow(a stargraph.ArcIndex, f Quantity) {
	cap := e.capacity.Get(int(a))
	e.residual.Set(int(a), cap-f)
	e.residual.Set(int(stargraph.Opposite(a)), f)
	e.status = NotSolved
}

// Status returns the outcome of the most recent Solve.
func (e *Engine) Status() Status { return e.status }

// OptimalFlow returns excess[sink], valid only when Status() == Optimal (or
// IntOverflow, where it is a valid lower bound).
func (e *Engine) OptimalFlow() Quantity { return e.excess.Get(int(e.sink)) }

// Flow returns flow(a) = residual_cap[~a] for a direct arc a.
func (e *Engine) Flow(a stargraph.ArcIndex) Quantity {
	if stargraph.IsDirect(a) {
		return e.residual.Get(int(stargraph.Opposite(a)))
	}
	return -e.residual.Get(int(a))
}

func (e *Engine) n() int { return e.g.NumNodes() }

// reset (re)initializes all engine-owned arrays from the stored capacities,
// without reallocating them. Scratch buffers of globalUpdate and the
// phase-two walk are still allocated on each Solve.
func (e *Engine) reset() {
	n := e.n()
	m := e.g.NumArcs()

	e.excess.Reset()
	e.height.Reset()
	e.relabels.Reset()
	e.inActive.Reset()
	e.active.reset()
	e.overflowPossible = false
	e.dischargeCount = 0

	for a := 0; a < m; a++ {
		c := e.capacity.Get(a)
		e.residual.Set(a, c)
		e.residual.Set(int(stargraph.Opposite(stargraph.ArcIndex(a))), 0)
	}
	for u := 0; u < n; u++ {
		e.first.Set(u, e.g.FirstIncident(stargraph.NodeIndex(u)))
	}
	e.height.Set(int(e.source), int64(n))
}

// initPreflow saturates every outgoing arc of the source. Individual pushes
// are clamped so the running total never exceeds Quantity's maximum;
// overflowPossible is set if clamping occurred.
func (e *Engine) initPreflow() {
	const maxQ = Quantity(math.MaxInt64)
	var total Quantity

	it := e.g.Outgoing(e.source)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		cap := e.residual.Get(int(a))
		if cap == 0 {
			continue
		}
		push := cap
		if total > maxQ-push {
			push = maxQ - total
			e.overflowPossible = true
		}
		if push <= 0 {
			e.overflowPossible = true
			continue
		}
		total += push

		e.residual.Add(int(a), -push)
		e.residual.Add(int(stargraph.Opposite(a)), push)

		head := e.g.Head(a)
		e.excess.Add(int(head), push)
		if head != e.sink {
			e.makeActive(head)
		}
	}
	e.excess.Set(int(e.source), -total)
}

func (e *Engine) makeActive(u stargraph.NodeIndex) {
	if u == e.source || u == e.sink {
		return
	}
	if e.cfg.UseTwoPhaseAlgorithm && e.height.Get(int(u)) >= int64(e.n()) {
		return
	}
	if e.inActive.Get(int(u)) != 0 {
		return
	}
	e.inActive.Set(int(u), 1)
	e.active.push(int(u), int(e.height.Get(int(u))))
}

// Solve runs push-relabel to completion and returns the final Status.
func (e *Engine) Solve() Status {
	if e.source == e.sink {
		e.status = BadInput
		return e.status
	}
	if e.cfg.CheckInput {
		for a := 0; a < e.g.NumArcs(); a++ {
			if e.capacity.Get(a) < 0 {
				e.status = BadInput
				return e.status
			}
		}
	}

	e.reset()
	e.initPreflow()

	if e.cfg.UseGlobalUpdate {
		e.globalUpdate()
	}

	for {
		node, ok := e.active.pop()
		if !ok {
			break
		}
		e.inActive.Set(node, 0)
		if e.excess.Get(node) <= 0 {
			continue
		}
		if !e.cfg.tick() {
			e.status = NotSolved
			return e.status
		}
		e.discharge(stargraph.NodeIndex(node))

		e.dischargeCount++
		if e.cfg.UseGlobalUpdate && e.dueForGlobalUpdate() {
			if !e.cfg.tick() {
				e.status = NotSolved
				return e.status
			}
			e.globalUpdate()
		}
	}

	if e.cfg.UseTwoPhaseAlgorithm {
		e.returnExcessToSource()
	}

	if e.cfg.CheckResult && !e.checkInvariants() {
		e.status = BadResult
		return e.status
	}

	if e.overflowPossible && e.augmentingPathExists() {
		e.status = IntOverflow
		return e.status
	}

	e.status = Optimal
	return e.status
}

func (e *Engine) dueForGlobalUpdate() bool {
	interval := e.cfg.GlobalUpdateInterval
	if interval <= 0 {
		interval = e.n()
		if interval == 0 {
			interval = 1
		}
	}
	return e.dischargeCount%interval == 0
}
