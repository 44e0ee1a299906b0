package maxflow

import (
	"fmt"

	"github.com/katalvlaran/pushrelabel/stargraph"
	"github.com/katalvlaran/pushrelabel/vecint"
)

// residualPredecessors calls visit(p) once for every node p from which w is
// directly reachable by a positive-residual arc (tail=p, head=w). Since
// every arc e yielded by g.Incident(w) satisfies tail(e) = w, its opposite
// Opposite(e) is exactly the arc p→w, with p = head(e); this lets a single
// pass over w's own incidence chain enumerate w's predecessors without a
// second index.
func (e *Engine) residualPredecessors(w stargraph.NodeIndex, visit func(p stargraph.NodeIndex)) {
	it := e.g.Incident(w)
	for arc, ok := it.Next(); ok; arc, ok = it.Next() {
		into := stargraph.Opposite(arc)
		if e.residual.Get(int(into)) > 0 {
			visit(e.g.Head(arc))
		}
	}
}

// residualSuccessors calls visit(s) once for every node s directly
// reachable from u by a positive-residual arc (tail=u, head=s).
func (e *Engine) residualSuccessors(u stargraph.NodeIndex, visit func(s stargraph.NodeIndex)) {
	it := e.g.Incident(u)
	for arc, ok := it.Next(); ok; arc, ok = it.Next() {
		if e.residual.Get(int(arc)) > 0 {
			visit(e.g.Head(arc))
		}
	}
}

// bfsDistanceTo runs a backward BFS from root over positive-residual arcs,
// setting dist[u] to the shortest residual distance from u to root for
// every u it reaches, and marking reached[u] true for those nodes.
func (e *Engine) bfsDistanceTo(root stargraph.NodeIndex, dist *vecint.Dense[int64], reached *vecint.Dense[int8]) {
	n := e.n()
	queue := make([]stargraph.NodeIndex, 0, n)
	reached.Set(int(root), 1)
	dist.Set(int(root), 0)
	queue = append(queue, root)

	for i := 0; i < len(queue); i++ {
		w := queue[i]
		d := dist.Get(int(w))
		e.residualPredecessors(w, func(p stargraph.NodeIndex) {
			if reached.Get(int(p)) != 0 {
				return
			}
			reached.Set(int(p), 1)
			dist.Set(int(p), d+1)
			queue = append(queue, p)
		})
	}
}

// globalUpdate resynchronizes every node's height to its true residual
// distance to the sink (and, for nodes that cannot reach the sink, to
// n + distance-to-source). Every currently active node is then re-filed
// under its refreshed height.
func (e *Engine) globalUpdate() {
	n := e.n()
	distToSink := vecint.NewDense[int64](n)
	reachedSink := vecint.NewDense[int8](n)
	e.bfsDistanceTo(e.sink, distToSink, reachedSink)

	distToSource := vecint.NewDense[int64](n)
	reachedSource := vecint.NewDense[int8](n)
	e.bfsDistanceTo(e.source, distToSource, reachedSource)

	twoN1 := int64(2*n - 1)
	for u := 0; u < n; u++ {
		node := stargraph.NodeIndex(u)
		if node == e.source {
			continue
		}
		switch {
		case reachedSink.Get(u) != 0:
			e.height.Set(u, distToSink.Get(u))
		case reachedSource.Get(u) != 0:
			e.height.Set(u, int64(n)+distToSource.Get(u))
		default:
			e.height.Set(u, twoN1)
		}
	}

	if e.cfg.Verbose {
		fmt.Printf("maxflow: global update resynchronized %d node heights\n", n)
	}

	e.active.reset()
	e.inActive.Reset()
	for u := 0; u < n; u++ {
		node := stargraph.NodeIndex(u)
		if node == e.source || node == e.sink {
			continue
		}
		if e.excess.Get(u) > 0 {
			e.makeActive(node)
		}
	}
}

// augmentingPathExists reports whether sink is still forward-residual
// reachable from source; used to distinguish a true IntOverflow from a
// merely-clamped-but-still-optimal preflow.
func (e *Engine) augmentingPathExists() bool {
	n := e.n()
	visited := vecint.NewDense[int8](n)
	queue := make([]stargraph.NodeIndex, 0, n)
	visited.Set(int(e.source), 1)
	queue = append(queue, e.source)

	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == e.sink {
			return true
		}
		e.residualSuccessors(u, func(s stargraph.NodeIndex) {
			if visited.Get(int(s)) != 0 {
				return
			}
			visited.Set(int(s), 1)
			queue = append(queue, s)
		})
	}

	return visited.Get(int(e.sink)) != 0
}
