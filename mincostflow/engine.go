package mincostflow

import (
	"math/bits"

	"github.com/katalvlaran/pushrelabel/activeset"
	"github.com/katalvlaran/pushrelabel/maxflow"
	"github.com/katalvlaran/pushrelabel/stargraph"
	"github.com/katalvlaran/pushrelabel/vecint"
)

// Engine computes an integer minimum-cost feasible flow over a frozen
// *stargraph.Graph using cost-scaling push-relabel.
//
// Engine owns its residual/cost/potential/excess/first-admissible arrays
// exclusively; the graph is borrowed immutably for the engine's lifetime,
// matching maxflow.Engine's resource model.
type Engine struct {
	g   *stargraph.Graph
	cfg Config

	status                Status
	unsaturatedSupply     []stargraph.NodeIndex
	unsaturatedDemand     []stargraph.NodeIndex

	capacity  *vecint.Signed[Quantity] // as set by SetArcCapacity
	unitCost  *vecint.Signed[Quantity] // unscaled, as set by SetArcUnitCost
	scaled    *vecint.Signed[Quantity] // scaled_cost[a], negated on ~a
	supply    *vecint.Dense[Quantity]
	residual  *vecint.Signed[Quantity]
	potential *vecint.Dense[Quantity]
	excess    *vecint.Dense[Quantity]
	first     *vecint.Dense[stargraph.ArcIndex]

	active *activeset.Stack[int]

	eps       Quantity
	totalCost Quantity
}

// New constructs an Engine over g for the given Config. g need not be
// Build()-ed yet, but must not gain further arcs once attached to a solve.
func New(g *stargraph.Graph, cfg Config) *Engine {
	n := g.MaxNodes()
	m := g.MaxArcs()

	return &Engine{
		g:         g,
		cfg:       cfg,
		status:    NotSolved,
		capacity:  vecint.NewSigned[Quantity](m),
		unitCost:  vecint.NewSigned[Quantity](m),
		scaled:    vecint.NewSigned[Quantity](m),
		supply:    vecint.NewDense[Quantity](n),
		residual:  vecint.NewSigned[Quantity](m),
		potential: vecint.NewDense[Quantity](n),
		excess:    vecint.NewDense[Quantity](n),
		first:     vecint.NewDense[stargraph.ArcIndex](n),
		active:    activeset.NewStack[int](),
	}
}

// SetArcCapacity sets the capacity of forward arc a.
func (e *Engine) SetArcCapacity(a stargraph.ArcIndex, cap Quantity) error {
	if cap < 0 {
		return ErrNegativeCapacity
	}
	e.capacity.Set(int(a), cap)
	e.status = NotSolved

	return nil
}

// SetArcUnitCost sets the unscaled per-unit cost of forward arc a.
func (e *Engine) SetArcUnitCost(a stargraph.ArcIndex, cost Quantity) {
	e.unitCost.Set(int(a), cost)
	e.status = NotSolved
}

// SetNodeSupply sets node u's supply (positive) or demand (negative, q<0).
func (e *Engine) SetNodeSupply(u stargraph.NodeIndex, q Quantity) {
	e.supply.Set(int(u), q)
	e.status = NotSolved
}

// Status returns the outcome of the most recent Solve.
func (e *Engine) Status() Status { return e.status }

// TotalCost returns the sum of flow(a)*unitCost(a) over forward arcs, valid
// only when Status() == Optimal.
func (e *Engine) TotalCost() Quantity { return e.totalCost }

// Flow returns flow(a) = residual_cap[~a] for a direct arc a.
func (e *Engine) Flow(a stargraph.ArcIndex) Quantity {
	if stargraph.IsDirect(a) {
		return e.residual.Get(int(stargraph.Opposite(a)))
	}
	return -e.residual.Get(int(a))
}

// UnsaturatedSupply returns the supply nodes the feasibility pre-check
// could not fully saturate, valid only when Status() == Infeasible.
func (e *Engine) UnsaturatedSupply() []stargraph.NodeIndex { return e.unsaturatedSupply }

// UnsaturatedDemand returns the demand nodes the feasibility pre-check
// could not fully saturate, valid only when Status() == Infeasible.
func (e *Engine) UnsaturatedDemand() []stargraph.NodeIndex { return e.unsaturatedDemand }

func (e *Engine) n() int { return e.g.NumNodes() }

// Solve runs the feasibility pre-check (if enabled) and then cost-scaling
// push-relabel to completion, returning the final Status.
func (e *Engine) Solve() Status {
	if e.cfg.CheckBalance {
		var total Quantity
		for u := 0; u < e.n(); u++ {
			total += e.supply.Get(u)
		}
		if total != 0 {
			e.status = Unbalanced
			return e.status
		}
	}
	for a := 0; a < e.g.NumArcs(); a++ {
		if e.capacity.Get(a) < 0 {
			e.status = BadInput
			return e.status
		}
	}

	if e.cfg.CheckCosts {
		maxAbs := Quantity(0)
		for a := 0; a < e.g.NumArcs(); a++ {
			c := e.unitCost.Get(a)
			if c < 0 {
				c = -c
			}
			if c > maxAbs {
				maxAbs = c
			}
		}
		if bits.Len64(uint64(maxAbs))+bits.Len64(uint64(e.n()+1)) >= 62 {
			e.status = BadCostRange
			return e.status
		}
	}

	if e.cfg.CheckFeasibility {
		ok, shortSupply, shortDemand := e.checkFeasibility()
		if !ok {
			e.unsaturatedSupply = shortSupply
			e.unsaturatedDemand = shortDemand
			e.status = Infeasible
			return e.status
		}
	}

	e.setupCostScaling()
	e.initResidual()

	alpha := e.cfg.Alpha
	if alpha <= 1 {
		alpha = 5
	}

	for {
		if !e.cfg.tick() {
			e.status = NotSolved
			return e.status
		}
		feasible := e.refine()
		if !feasible {
			e.status = Infeasible
			return e.status
		}
		if e.eps <= 1 {
			break
		}
		e.eps = e.eps / alpha
		if e.eps < 1 {
			e.eps = 1
		}
	}

	e.computeTotalCost()

	if e.cfg.CheckResult && !e.checkInvariants() {
		e.status = BadResult
		return e.status
	}

	e.status = Optimal
	return e.status
}

// initResidual resets residual[a] = capacity(a), residual[~a] = 0 for every
// forward arc, and clears potential/excess/first cursors.
func (e *Engine) initResidual() {
	m := e.g.NumArcs()
	for a := 0; a < m; a++ {
		e.residual.Set(a, e.capacity.Get(a))
		e.residual.Set(int(stargraph.Opposite(stargraph.ArcIndex(a))), 0)
	}
	e.potential.Reset()
	e.excess.Reset()
	n := e.n()
	for u := 0; u < n; u++ {
		e.first.Set(u, e.g.FirstIncident(stargraph.NodeIndex(u)))
		e.excess.Set(u, e.supply.Get(u))
	}
}

// setupCostScaling multiplies every unit cost by α = n+1 and sets the
// initial ε to the largest scaled magnitude.
func (e *Engine) setupCostScaling() {
	n := Quantity(e.n())
	factor := n + 1
	m := e.g.NumArcs()

	var maxAbs Quantity
	for a := 0; a < m; a++ {
		sc := e.unitCost.Get(a) * factor
		e.scaled.Set(a, sc)
		e.scaled.Set(int(stargraph.Opposite(stargraph.ArcIndex(a))), -sc)
		abs := sc
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbs {
			maxAbs = abs
		}
	}
	e.eps = maxAbs
	if e.eps < 1 {
		e.eps = 1
	}
}

// checkFeasibility builds an auxiliary graph with a super-source connected
// to every supply node and a super-sink from every demand node, copying
// original arcs' capacities, and runs the max-flow engine as an oracle. The
// instance is feasible iff the optimal flow saturates every super-source
// arc.
func (e *Engine) checkFeasibility() (ok bool, shortSupply, shortDemand []stargraph.NodeIndex) {
	n := e.n()
	m := e.g.NumArcs()

	extra := 0
	for u := 0; u < n; u++ {
		if e.supply.Get(u) != 0 {
			extra++
		}
	}

	aux := stargraph.Reserve(n+2, m+extra)
	superSource := stargraph.NodeIndex(n)
	superSink := stargraph.NodeIndex(n + 1)

	origArcs := make([]stargraph.ArcIndex, m)
	for a := 0; a < m; a++ {
		arc := stargraph.ArcIndex(a)
		origArcs[a] = aux.AddArc(e.g.Tail(arc), e.g.Head(arc))
	}

	type supplyArc struct {
		node stargraph.NodeIndex
		arc  stargraph.ArcIndex
		cap  Quantity
	}
	var supplyArcs, demandArcs []supplyArc
	var totalSupply Quantity

	for u := 0; u < n; u++ {
		q := e.supply.Get(u)
		switch {
		case q > 0:
			a := aux.AddArc(superSource, stargraph.NodeIndex(u))
			supplyArcs = append(supplyArcs, supplyArc{node: stargraph.NodeIndex(u), arc: a, cap: q})
			totalSupply += q
		case q < 0:
			a := aux.AddArc(stargraph.NodeIndex(u), superSink)
			demandArcs = append(demandArcs, supplyArc{node: stargraph.NodeIndex(u), arc: a, cap: -q})
		}
	}
	aux.Build()

	mfCfg := maxflow.DefaultConfig()
	eng := maxflow.New(aux, superSource, superSink, mfCfg)
	for a := 0; a < m; a++ {
		_ = eng.SetArcCapacity(origArcs[a], e.capacity.Get(a))
	}
	for _, sa := range supplyArcs {
		_ = eng.SetArcCapacity(sa.arc, sa.cap)
	}
	for _, da := range demandArcs {
		_ = eng.SetArcCapacity(da.arc, da.cap)
	}

	status := eng.Solve()
	if status != maxflow.Optimal && status != maxflow.IntOverflow {
		return false, nil, nil
	}
	if eng.OptimalFlow() == totalSupply {
		return true, nil, nil
	}

	for _, sa := range supplyArcs {
		if eng.Flow(sa.arc) < sa.cap {
			shortSupply = append(shortSupply, sa.node)
		}
	}
	for _, da := range demandArcs {
		if eng.Flow(da.arc) < da.cap {
			shortDemand = append(shortDemand, da.node)
		}
	}

	return false, shortSupply, shortDemand
}

// computeTotalCost sums flow(a)*unitCost(a) over forward arcs.
func (e *Engine) computeTotalCost() {
	var total Quantity
	for a := 0; a < e.g.NumArcs(); a++ {
		total += e.Flow(stargraph.ArcIndex(a)) * e.unitCost.Get(a)
	}
	e.totalCost = total
}

// checkInvariants re-verifies capacity bounds and per-node conservation
// against supply.
func (e *Engine) checkInvariants() bool {
	for a := 0; a < e.g.NumArcs(); a++ {
		f := e.Flow(stargraph.ArcIndex(a))
		if f < 0 || f > e.capacity.Get(a) {
			return false
		}
	}
	for u := 0; u < e.n(); u++ {
		if e.excess.Get(u) != 0 {
			return false
		}
	}

	return true
}
