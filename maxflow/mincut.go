package maxflow

import "github.com/katalvlaran/pushrelabel/stargraph"

// checkInvariants re-verifies, after a solve, that every direct arc's flow
// respects 0 ≤ flow ≤ capacity, that every non-source/non-sink node has
// zero excess, and that source's excess is the negation of sink's (flow
// conservation). It is only run when Config.CheckResult is set, since it
// costs an extra O(n+m) pass.
func (e *Engine) checkInvariants() bool {
	m := e.g.NumArcs()
	for a := 0; a < m; a++ {
		arc := stargraph.ArcIndex(a)
		f := e.Flow(arc)
		cap := e.capacity.Get(a)
		if f < 0 || f > cap {
			return false
		}
	}

	n := e.n()
	for u := 0; u < n; u++ {
		node := stargraph.NodeIndex(u)
		if node == e.source || node == e.sink {
			continue
		}
		if e.excess.Get(u) != 0 {
			return false
		}
	}

	return e.excess.Get(int(e.source)) == -e.excess.Get(int(e.sink))
}

// SourceSideMinCut returns the set of nodes reachable from source in the
// residual graph after Solve, valid only when Status() == Optimal (or
// IntOverflow): this is exactly the S side of a minimum s-t cut.
func (e *Engine) SourceSideMinCut() []stargraph.NodeIndex {
	n := e.n()
	visited := make([]bool, n)
	var side []stargraph.NodeIndex

	queue := []stargraph.NodeIndex{e.source}
	visited[int(e.source)] = true
	side = append(side, e.source)

	for i := 0; i < len(queue); i++ {
		u := queue[i]
		e.residualSuccessors(u, func(s stargraph.NodeIndex) {
			if visited[int(s)] {
				return
			}
			visited[int(s)] = true
			side = append(side, s)
			queue = append(queue, s)
		})
	}

	return side
}

// SinkSideMinCut returns the set of nodes that reach sink in the residual
// graph after Solve, valid only when Status() == Optimal (or IntOverflow):
// this is exactly the T side of a minimum s-t cut. It is computed as its
// own reverse-residual walk from sink rather than as the complement of
// SourceSideMinCut, since the two sets need not partition all of V — a node
// disconnected from both source and sink belongs to neither.
func (e *Engine) SinkSideMinCut() []stargraph.NodeIndex {
	n := e.n()
	visited := make([]bool, n)
	var side []stargraph.NodeIndex

	queue := []stargraph.NodeIndex{e.sink}
	visited[int(e.sink)] = true
	side = append(side, e.sink)

	for i := 0; i < len(queue); i++ {
		w := queue[i]
		e.residualPredecessors(w, func(p stargraph.NodeIndex) {
			if visited[int(p)] {
				return
			}
			visited[int(p)] = true
			side = append(side, p)
			queue = append(queue, p)
		})
	}

	return side
}
