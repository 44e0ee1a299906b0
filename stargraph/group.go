package stargraph

import "sort"

// GroupForwardArcsByTail permutes the forward arcs so that iterating
// ArcIndex(0)..ArcIndex(NumArcs()-1) yields them grouped by tail, per less's
// ordering of tail nodes (ties keep their relative order: the sort is
// stable). It recomputes the incidence lists from scratch and runs in
// O(n + m log m).
//
// It returns perm such that perm[newA] = oldA: the caller must apply this
// same permutation to any parallel per-arc annotation array (capacities,
// costs, ...), e.g. via (*vecint.Signed[T]).Permute(perm), to keep that data
// aligned with the arcs' new indices. There is no callback hook: the
// permutation is returned explicitly instead, so no per-arc dynamic
// dispatch is needed to keep annotations in lockstep.
func (g *Graph) GroupForwardArcsByTail(less func(a, b NodeIndex) bool) []int {
	m := g.numArcs
	oldTail := make([]NodeIndex, m)
	oldHead := make([]NodeIndex, m)
	for a := 0; a < m; a++ {
		oldHead[a] = g.Head(ArcIndex(a))
		oldTail[a] = g.Tail(ArcIndex(a))
	}

	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return less(oldTail[perm[i]], oldTail[perm[j]])
	})

	newNode := g.node
	newNode.Reset()
	g.firstIncident.Fill(NilArc)
	g.nextAdjacent.Fill(NilArc)

	for newA, oldA := range perm {
		a := ArcIndex(newA)
		ra := Opposite(a)
		tail, head := oldTail[oldA], oldHead[oldA]

		newNode.Set(newA, head)
		newNode.Set(int(ra), tail)

		g.nextAdjacent.Set(newA, g.firstIncident.Get(int(tail)))
		g.firstIncident.Set(int(tail), a)

		g.nextAdjacent.Set(int(ra), g.firstIncident.Get(int(head)))
		g.firstIncident.Set(int(head), ra)
	}

	return perm
}
