package maxflow

import "github.com/katalvlaran/pushrelabel/stargraph"

// frameState tags a node's color during the explicit-stack DFS below.
type frameState int8

const (
	white frameState = iota // unvisited
	gray                    // on the current DFS stack
	black                   // finished, postorder emitted
)

// dfsFrame is one explicit call-stack frame for the iterative cycle-
// canceling DFS. arcIn is the positive-flow arc used to reach node from its
// parent, or stargraph.NilArc for a root. it resumes the scan of node's
// incident arcs across re-entries to this frame, so no node is rescanned
// from its start.
type dfsFrame struct {
	node  stargraph.NodeIndex
	arcIn stargraph.ArcIndex
	it    *stargraph.ArcIter
}

// returnExcessToSource implements phase two of the two-phase algorithm:
// every node left with positive excess after phase one can no longer reach
// the sink (height ≥ n), so its excess must instead flow back to the source
// along the positive-flow subgraph. This walks an explicit stack rather
// than recursing, to bound stack depth independently of graph depth.
//
// The walk does two things in one pass over the positive-flow subgraph:
//  1. cancels any flow cycle it discovers (a back-edge to a gray ancestor),
//     which can only reduce total flow cost and never affects max-flow value;
//  2. emits nodes in postorder, which is exactly the reverse topological
//     order phase two needs: processing nodes in postorder guarantees a
//     node's positive-flow successors are already drained by the time the
//     node itself is visited, so pushing its excess back along a single
//     positive-flow predecessor arc at a time always has somewhere to land.
func (e *Engine) returnExcessToSource() {
	n := e.n()
	color := make([]frameState, n)
	postorder := make([]stargraph.NodeIndex, 0, n)

	for root := 0; root < n; root++ {
		if color[root] != white {
			continue
		}

		stack := []dfsFrame{{
			node:  stargraph.NodeIndex(root),
			arcIn: stargraph.NilArc,
			it:    e.g.Incident(stargraph.NodeIndex(root)),
		}}
		color[root] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			descended := false

			for {
				arc, ok := top.it.Next()
				if !ok {
					break
				}
				if e.Flow(arc) <= 0 {
					continue
				}
				head := e.g.Head(arc)

				switch color[int(head)] {
				case white:
					color[int(head)] = gray
					stack = append(stack, dfsFrame{node: head, arcIn: arc, it: e.g.Incident(head)})
					descended = true
				case gray:
					e.cancelCycle(stack, arc)
				case black:
					// already finished; nothing to do
				}
				if descended {
					break
				}
			}

			if !descended {
				color[int(top.node)] = black
				postorder = append(postorder, top.node)
				stack = stack[:len(stack)-1]
			}
		}
	}

	// process in postorder = reverse topological order: every node's
	// positive-flow successors are already fully drained by the time it is
	// visited, so pushing its excess back along one incoming positive-flow
	// arc at a time always terminates.
	for _, u := range postorder {
		for e.excess.Get(int(u)) > 0 && u != e.source && u != e.sink {
			arc, ok := e.anyPositiveFlowPredecessor(u)
			if !ok {
				break
			}
			delta := e.excess.Get(int(u))
			if f := e.Flow(arc); f < delta {
				delta = f
			}
			into := stargraph.Opposite(arc)
			e.residual.Add(int(into), -delta)
			e.residual.Add(int(arc), delta)
			e.excess.Add(int(u), -delta)
			e.excess.Add(int(e.g.Tail(arc)), delta)
		}
	}
}

// anyPositiveFlowPredecessor returns an arc p→u still carrying positive
// flow, found as the opposite of an outgoing arc u→p whose reverse
// direction (Flow(opposite) > 0) shows positive flow running into u.
func (e *Engine) anyPositiveFlowPredecessor(u stargraph.NodeIndex) (stargraph.ArcIndex, bool) {
	it := e.g.Incident(u)
	for arc, ok := it.Next(); ok; arc, ok = it.Next() {
		opp := stargraph.Opposite(arc)
		if e.Flow(opp) > 0 {
			return opp, true
		}
	}
	return stargraph.NilArc, false
}

// cancelCycle cancels the flow cycle closed by arc, which points from the
// current DFS top back to a gray ancestor elsewhere on stack. It reduces
// flow by the cycle's bottleneck along every arc in the cycle, including
// arc itself, zeroing out at least one arc's flow.
func (e *Engine) cancelCycle(stack []dfsFrame, arc stargraph.ArcIndex) {
	ancestorNode := e.g.Head(arc)

	start := -1
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].node == ancestorNode {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}

	bottleneck := e.Flow(arc)
	for i := start + 1; i < len(stack); i++ {
		if f := e.Flow(stack[i].arcIn); f < bottleneck {
			bottleneck = f
		}
	}
	if bottleneck <= 0 {
		return
	}

	e.residual.Add(int(arc), bottleneck)
	e.residual.Add(int(stargraph.Opposite(arc)), -bottleneck)
	for i := start + 1; i < len(stack); i++ {
		a := stack[i].arcIn
		e.residual.Add(int(a), bottleneck)
		e.residual.Add(int(stargraph.Opposite(a)), -bottleneck)
	}
}
