package stargraph

// ArcIter is a finite, one-shot cursor over a node's incidence chain. It is
// not restartable; obtain a fresh one from Outgoing, Incoming, or Incident
// to iterate again. Order within a sequence is insertion-order reversed,
// since each new arc is prepended to its chain (the chain is LIFO).
type ArcIter struct {
	g      *Graph
	next   ArcIndex
	filter func(ArcIndex) bool
}

// Next advances the cursor and reports whether an arc was produced.
func (it *ArcIter) Next() (ArcIndex, bool) {
	for it.next != NilArc {
		a := it.next
		it.next = it.g.nextAdjacent.Get(int(a))
		if it.filter == nil || it.filter(a) {
			return a, true
		}
	}
	return NilArc, false
}

// Outgoing yields only direct arcs (a ≥ 0) with tail = u.
func (g *Graph) Outgoing(u NodeIndex) *ArcIter {
	return &ArcIter{g: g, next: g.firstIncident.Get(int(u)), filter: IsDirect}
}

// Incoming yields only reverse arcs (a < 0) whose direct form has head = u.
func (g *Graph) Incoming(u NodeIndex) *ArcIter {
	return &ArcIter{g: g, next: g.firstIncident.Get(int(u)), filter: func(a ArcIndex) bool { return !IsDirect(a) }}
}

// Incident yields the union of Outgoing and Incoming, in stored chain order.
func (g *Graph) Incident(u NodeIndex) *ArcIter {
	return &ArcIter{g: g, next: g.firstIncident.Get(int(u))}
}
