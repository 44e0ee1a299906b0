package maxflow

import "github.com/katalvlaran/pushrelabel/stargraph"

// discharge pushes v's excess along admissible arcs, relabeling v whenever
// the scan from its saved cursor (first[v]) is exhausted without zeroing
// excess. Every arc yielded by g.Incident/IncidentFrom for node v satisfies
// tail(a) = v (by the forward/reverse-star construction), so the
// admissibility test only ever needs height[v] and height[head(a)].
func (e *Engine) discharge(v stargraph.NodeIndex) {
	n := int64(e.n())

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
			head := e.g.Head(a)
			if e.height.Get(int(v)) != e.height.Get(int(head))+1 {
				continue
			}

			// admissible: push min(excess[v], residual_cap[a])
			delta := e.excess.Get(int(v))
			if r := e.residual.Get(int(a)); r < delta {
				delta = r
			}
			e.residual.Add(int(a), -delta)
			e.residual.Add(int(stargraph.Opposite(a)), delta)
			e.excess.Add(int(v), -delta)
			wasActive := e.excess.Get(int(head)) > 0
			e.excess.Add(int(head), delta)
			if !wasActive && head != e.sink {
				e.makeActive(head)
			}

			if e.excess.Get(int(v)) == 0 {
				e.first.Set(int(v), a)
				return
			}
			// arc a is now saturated (it was the binding constraint since
			// v still has excess); resume scanning past it.
		}

		// scan exhausted without zeroing excess: relabel and retry.
		e.relabel(v)
		e.relabels.Add(int(v), 1)

		if e.cfg.UseTwoPhaseAlgorithm && e.height.Get(int(v)) >= n {
			// v can no longer reach the sink; leave its excess for phase two.
			return
		}
		if e.cfg.SkipRelabelThreshold > 0 && int(e.relabels.Get(int(v))) > e.cfg.SkipRelabelThreshold {
			// heuristic: defer a node that keeps relabeling instead of
			// pushing; a performance tunable only, with no effect on
			// correctness.
			e.relabels.Set(int(v), 0)
			e.makeActive(v)
			return
		}
	}
}

// relabel raises v's height to 1 + min over positive-residual incident
// arcs of head's height, and resets v's scan cursor to the start of its
// incidence chain.
func (e *Engine) relabel(v stargraph.NodeIndex) {
	best := int64(2*e.n() - 1)
	it := e.g.Incident(v)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		if e.residual.Get(int(a)) <= 0 {
			continue
		}
		h := e.height.Get(int(e.g.Head(a)))
		if h < best {
			best = h
		}
	}
	e.height.Set(int(v), best+1)
	e.first.Set(int(v), e.g.FirstIncident(v))
}
