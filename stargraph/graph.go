package stargraph

import "github.com/katalvlaran/pushrelabel/vecint"

// Graph is a frozen-after-Build forward/reverse star graph. Zero value is
// not usable; construct with Reserve.
//
// Debug, when true, enables the range checks AddArc otherwise skips. It does
// not change the bounds checking of the backing vecint containers, whose own
// Debug fields stay false.
type Graph struct {
	Debug bool

	maxNodes int
	maxArcs  int
	numNodes int
	numArcs  int
	built    bool

	// node[a] = head(a) for a ∈ [0, maxArcs); node[~a] = tail(a).
	node *vecint.Signed[NodeIndex]

	// firstIncident[u] = head of u's incidence chain, or NilArc.
	firstIncident *vecint.Dense[ArcIndex]

	// nextAdjacent[a] = next arc in whichever node's chain a belongs to.
	nextAdjacent *vecint.Signed[ArcIndex]
}

// Reserve returns a new, empty Graph with backing storage for up to maxNodes
// nodes and maxArcs forward arcs (so 2*maxArcs signed slots). Each call
// returns a fresh Graph; a Graph returned earlier is left unchanged.
func Reserve(maxNodes, maxArcs int) *Graph {
	g := &Graph{
		maxNodes:      maxNodes,
		maxArcs:       maxArcs,
		numNodes:      maxNodes,
		firstIncident: vecint.NewDense[ArcIndex](maxNodes),
		nextAdjacent:  vecint.NewSigned[ArcIndex](maxArcs),
		node:          vecint.NewSigned[NodeIndex](maxArcs),
	}
	g.firstIncident.Fill(NilArc)
	g.nextAdjacent.Fill(NilArc)

	return g
}

// AddArc appends a forward arc tail→head, returning its index a = current
// NumArcs(). It attaches both a and ~a to the incidence chains of tail and
// head respectively. AddArc returns NilArc instead of a
// valid index once maxArcs forward arcs have been added, or once Build has
// been called; in Debug mode an out-of-range tail or head panics with
// ErrNodeOutOfRange rather than corrupting the chains.
func (g *Graph) AddArc(tail, head NodeIndex) ArcIndex {
	if g.built {
		return NilArc
	}
	if g.numArcs >= g.maxArcs {
		return NilArc
	}
	if g.Debug && (tail < 0 || int(tail) >= g.numNodes || head < 0 || int(head) >= g.numNodes) {
		panic(ErrNodeOutOfRange)
	}

	a := ArcIndex(g.numArcs)
	ra := Opposite(a)
	g.numArcs++

	g.node.Set(int(a), head)
	g.node.Set(int(ra), tail)

	g.nextAdjacent.Set(int(a), g.firstIncident.Get(int(tail)))
	g.firstIncident.Set(int(tail), a)

	g.nextAdjacent.Set(int(ra), g.firstIncident.Get(int(head)))
	g.firstIncident.Set(int(head), ra)

	return a
}

// Build freezes the graph: no further AddArc calls are accepted. Engines
// must only be attached to a built graph.
func (g *Graph) Build() { g.built = true }

// Built reports whether Build has been called.
func (g *Graph) Built() bool { return g.built }

// NumNodes returns n, the number of nodes reserved.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumArcs returns the number of forward arcs added so far.
func (g *Graph) NumArcs() int { return g.numArcs }

// MaxNodes returns the reserved node capacity.
func (g *Graph) MaxNodes() int { return g.maxNodes }

// MaxArcs returns the reserved forward-arc capacity.
func (g *Graph) MaxArcs() int { return g.maxArcs }

// FirstIncident returns the head of u's incidence chain (the arc Incident,
// Outgoing, and Incoming would each start scanning from), or NilArc if u
// has no incident arcs. Engines use this to reset a saved scan cursor
// (first_admissible) after a relabel.
func (g *Graph) FirstIncident(u NodeIndex) ArcIndex {
	return g.firstIncident.Get(int(u))
}

// IncidentFrom resumes a scan of u's incidence chain from an arc previously
// obtained from that same chain (e.g. a saved first_admissible cursor),
// rather than starting over at FirstIncident(u). The caller is responsible
// for ensuring start actually belongs to u's chain.
func (g *Graph) IncidentFrom(start ArcIndex) *ArcIter {
	return &ArcIter{g: g, next: start}
}

// Head returns head(a) = node[a], or NilNode if a is NilArc.
func (g *Graph) Head(a ArcIndex) NodeIndex {
	if a == NilArc {
		return NilNode
	}
	return NodeIndex(g.node.Get(int(a)))
}

// Tail returns tail(a) = node[~a], or NilNode if a is NilArc.
func (g *Graph) Tail(a ArcIndex) NodeIndex {
	if a == NilArc {
		return NilNode
	}
	return NodeIndex(g.node.Get(int(Opposite(a))))
}
