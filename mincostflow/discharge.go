package mincostflow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pushrelabel/stargraph"
	"github.com/katalvlaran/pushrelabel/vecint"
)

// reducedCost returns rc(a) = scaled_cost[a] + potential[tail(a)] -
// potential[head(a)].
func (e *Engine) reducedCost(a stargraph.ArcIndex) Quantity {
	tail := e.g.Tail(a)
	head := e.g.Head(a)

	return e.scaled.Get(int(a)) + e.potential.Get(int(tail)) - e.potential.Get(int(head))
}

// refine runs one ε-scaling phase: it first restores
// ε-optimality by saturating every currently-admissible arc, then
// discharges every active node to zero excess using the cost-based
// admissibility test in place of maxflow's height-based one. It always
// returns true: refine does not detect infeasibility itself (Solve checks
// feasibility up front with the max-flow oracle when CheckFeasibility is
// set).
func (e *Engine) refine() bool {
	n := e.n()
	m := e.g.NumArcs()

	// 1. saturate every admissible arc (rc < 0, residual > 0), both
	// directions, restoring ε-optimality at the start of the phase.
	for a := 0; a < m; a++ {
		e.saturateIfAdmissible(stargraph.ArcIndex(a))
		e.saturateIfAdmissible(stargraph.Opposite(stargraph.ArcIndex(a)))
	}

	// 2. initialize active-node container with every node currently
	// carrying excess.
	inActive := vecint.NewDense[int8](n)
	e.active.Reset()
	for u := 0; u < n; u++ {
		if e.excess.Get(u) > 0 {
			inActive.Set(u, 1)
			e.active.Push(u)
		}
	}

	// 3. discharge until no active node remains.
	for {
		u, ok := e.active.Pop()
		if !ok {
			break
		}
		inActive.Set(u, 0)
		if e.excess.Get(u) <= 0 {
			continue
		}
		if !e.cfg.tick() {
			return true
		}
		e.dischargeCost(stargraph.NodeIndex(u), inActive)
	}

	if e.cfg.Verbose {
		fmt.Printf("mincostflow: refine phase complete at eps=%d\n", e.eps)
	}

	return true
}

// saturateIfAdmissible pushes the full residual capacity of a if it is
// currently admissible (rc(a) < 0, residual[a] > 0).
func (e *Engine) saturateIfAdmissible(a stargraph.ArcIndex) {
	r := e.residual.Get(int(a))
	if r <= 0 {
		return
	}
	if e.reducedCost(a) >= 0 {
		return
	}

	tail := e.g.Tail(a)
	head := e.g.Head(a)
	e.residual.Add(int(a), -r)
	e.residual.Add(int(stargraph.Opposite(a)), r)
	e.excess.Add(int(tail), -r)
	e.excess.Add(int(head), r)
}

// dischargeCost pushes v's excess along cost-admissible arcs, relabeling
// (adjusting potential[v]) whenever the scan is exhausted without zeroing
// excess.
func (e *Engine) dischargeCost(v stargraph.NodeIndex, inActive *vecint.Dense[int8]) {
	for e.excess.Get(int(v)) > 0 {
		it := e.g.IncidentFrom(e.first.Get(int(v)))

		for {
			a, ok := it.Next()
			if !ok {
				break
			}
			if e.residual.Get(int(a)) <= 0 {
				continue
			}
			if e.reducedCost(a) >= 0 {
				continue
			}

			delta := e.excess.Get(int(v))
			if r := e.residual.Get(int(a)); r < delta {
				delta = r
			}
			head := e.g.Head(a)
			e.residual.Add(int(a), -delta)
			e.residual.Add(int(stargraph.Opposite(a)), delta)
			e.excess.Add(int(v), -delta)
			wasActive := e.excess.Get(int(head)) > 0
			e.excess.Add(int(head), delta)
			if !wasActive && inActive.Get(int(head)) == 0 && e.excess.Get(int(head)) > 0 {
				inActive.Set(int(head), 1)
				e.active.Push(int(head))
			}

			if e.excess.Get(int(v)) == 0 {
				e.first.Set(int(v), a)
				return
			}
		}

		e.relabelCost(v)
		e.first.Set(int(v), e.g.FirstIncident(v))
	}
}

// relabelCost adjusts potential[v] so at least one incident arc becomes
// admissible again.
func (e *Engine) relabelCost(v stargraph.NodeIndex) {
	if e.cfg.FastPotentialUpdate {
		e.potential.Add(int(v), -e.eps)
		return
	}

	// slow mode: choose potential[v] = max over residual-positive incident
	// arcs of (potential[head(a)] - scaled_cost[a]) - eps, which is the
	// largest value making some arc's reduced cost exactly -eps.
	best := int64(math.MinInt64)
	it := e.g.Incident(v)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		if e.residual.Get(int(a)) <= 0 {
			continue
		}
		cand := e.potential.Get(int(e.g.Head(a))) - e.scaled.Get(int(a))
		if cand > best {
			best = cand
		}
	}
	if best == int64(math.MinInt64) {
		// isolated node: fall back to the fast rule.
		e.potential.Add(int(v), -e.eps)
		return
	}
	e.potential.Set(int(v), best-e.eps)
}
