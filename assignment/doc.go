// Package assignment computes an integer minimum-cost perfect matching on a
// bipartite graph (the assignment problem) via Goldberg–Kennedy cost-
// scaling with asymmetric ε-optimality.
//
// Unlike mincostflow's symmetric potentials, only right-side nodes carry an
// explicit price; left-side potential is held implicitly as the negated
// minimum partial reduced cost over a left node's outgoing arcs. Each
// refine phase unmatches every edge (the admissible set after unmatching is
// exactly the reverse arcs of the prior matching), then repeatedly applies
// DoublePush to active (currently unmatched) left nodes: find the two
// smallest partial-reduced-cost outgoing arcs, match along the best one,
// relabel the right endpoint by the gap between them plus ε, and — if that
// right node was already matched — push its displaced left node back onto
// the active set.
//
// Complexity: O(k^3 log(kC)) with k left/right nodes and max cost magnitude
// C; memory O(k+m) words. Use this package for perfect bipartite matching;
// use mincostflow for general supply/demand transportation with unbalanced
// or non-bipartite topology.
package assignment
