// Package mincostflow computes an integer minimum-cost feasible flow (or
// circulation / transportation problem) over a stargraph.Graph, given
// per-arc capacity, per-arc unit cost, and per-node supply/demand.
//
// The engine first runs a feasibility pre-check using the maxflow package as
// an oracle (a super-source/super-sink auxiliary graph saturated iff the
// instance is feasible), then solves via Goldberg–Tarjan cost-scaling
// push-relabel: costs are scaled by α = n+1 so that ε-optimality at the
// final ε = 1 refine phase is exact optimality for the unscaled integer
// problem. Refine phases alternate full-saturation of newly admissible arcs
// with cost-admissible discharge, exactly mirroring maxflow's discharge
// loop but substituting reduced cost for height as the admissibility
// criterion.
//
// Complexity: O(n^2 m log(nC)) with fast potential updates, where C is the
// maximum unscaled cost magnitude; memory is O(n+m) words, matching
// maxflow. Use this package when flows must additionally minimize a linear
// cost; use the maxflow package alone when only a cardinality/capacity
// optimum is needed.
package mincostflow
