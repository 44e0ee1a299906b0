package assignment

import "github.com/katalvlaran/pushrelabel/stargraph"

// partialReducedCost returns prc(a) = scaled_cost[a] − price[head(a)].
func (e *Engine) partialReducedCost(a stargraph.ArcIndex) Quantity {
	return e.scaled.Get(int(a)) - e.price.Get(int(e.g.Head(a)))
}

// refine runs one ε-scaling phase: it unmatches every
// matching edge (the admissible set after unmatching is exactly the
// reverse arcs of the prior matching), seeds the active set with every left
// node, and DoublePushes until no left node carries excess. Returns false
// if infeasibility was detected.
func (e *Engine) refine() bool {
	totalExcess := 0
	e.active.reset()

	for l := 0; l < e.k; l++ {
		a := e.matchedArc.Get(l)
		if a != stargraph.NilArc {
			r := e.g.Head(a)
			e.matchedLeft.Set(int(r), stargraph.NilNode)
			e.matchedArc.Set(l, stargraph.NilArc)
		}
		totalExcess++
		e.active.push(l)
	}

	for totalExcess > 0 {
		l, ok := e.active.pop()
		if !ok {
			break
		}
		if !e.cfg.tick() {
			return true
		}
		if !e.doublePush(stargraph.NodeIndex(l), &totalExcess) {
			return false
		}
	}

	return true
}

// doublePush finds left's minimum and second-minimum partial-reduced-cost
// outgoing arc, matches left along the
// best one (displacing any prior match of the target right node back onto
// the active set), and relabels the right node by the gap between the two
// best arcs plus ε.
func (e *Engine) doublePush(left stargraph.NodeIndex, totalExcess *int) bool {
	const inf = Quantity(1) << 62

	best, second := inf, inf
	var bestArc stargraph.ArcIndex = stargraph.NilArc

	it := e.g.Outgoing(left)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		prc := e.partialReducedCost(a)
		if prc < best {
			second = best
			best = prc
			bestArc = a
		} else if prc < second {
			second = prc
		}
	}
	if bestArc == stargraph.NilArc {
		return false // no outgoing arc: infeasible
	}

	gap := second - best
	if gap >= inf {
		// only one outgoing arc exists; use |best| as the gap so the
		// relabel is still a finite, deterministic displacement.
		gap = best
		if gap < 0 {
			gap = -gap
		}
	}

	r := e.g.Head(bestArc)
	prevLeft := e.matchedLeft.Get(int(r))

	e.matchedArc.Set(int(left), bestArc)
	e.matchedLeft.Set(int(r), left)

	if prevLeft != stargraph.NilNode && prevLeft != left {
		e.matchedArc.Set(int(prevLeft), stargraph.NilArc)
		e.active.push(int(prevLeft))
	} else {
		*totalExcess--
	}

	e.price.Add(int(r), -(gap + e.eps))
	if e.price.Get(int(r)) < e.priceLowerBound {
		return false
	}

	return true
}
