// Package maxflow implements the Goldberg–Tarjan push-relabel maximum-flow
// engine over a *stargraph.Graph.
//
// The key algorithm:
//
//   - Push-relabel with highest-label-first active-node selection over
//     per-height stacks (activeset.Buckets).
//
//   - Method: preflow saturation from the source, discharge/relabel until
//     no node can reach both source and sink with positive excess, then a
//     phase-two cycle-canceling DFS returns leftover excess to the source.
//
//   - Time:   O(n²√m) with highest-label-first selection and periodic
//     global updates; O(n²m) worst case with FIFO selection.
//
//   - Memory: O(n + m) for the residual, potential, excess, and
//     first_admissible arrays.
//
// # Graph support
//
// Engine operates on any *stargraph.Graph; capacities are attached
// separately via SetArcCapacity, never stored on the graph itself, so the
// same graph may be shared read-only by a min-cost-flow or assignment
// engine running alongside it.
//
// # API
//
// Config configures the engine (see DefaultConfig for production defaults).
// The core entry points:
//
//	e := maxflow.New(g, source, sink, DefaultConfig())
//	e.SetArcCapacity(a, cap)
//	status := e.Solve()
//	flow := e.OptimalFlow()
//
// # Errors
//
// Status-based: see Status, and ErrNegativeCapacity, which SetArcCapacity
// returns for a negative capacity.
//
// Tested invariants include capacity/flow bounds, flow conservation at
// every non-source/non-sink node, and max-flow equal to min-cut.
package maxflow
