// Package pushrelabel is a network-flow and matching core: three tightly
// coupled push-relabel engines sharing one graph substrate.
//
// What is pushrelabel?
//
//	A focused, zero-dependency-at-runtime library that brings together:
//
//	  • A packed graph substrate: forward/reverse star representation,
//	    bounds-checked in debug and unchecked in release
//	  • Max-flow: Goldberg–Tarjan push-relabel with global update and the
//	    two-phase algorithm
//	  • Min-cost-flow: Goldberg–Tarjan cost scaling, using max-flow as a
//	    feasibility oracle
//	  • Assignment: Goldberg–Kennedy cost-scaling bipartite matching with
//	    asymmetric ε-optimality and the double-push relabel
//
// Why choose pushrelabel?
//
//   - Allocation-disciplined — every engine sizes its per-node and per-arc
//     state arrays once at construction and resets them across repeated
//     solves; scratch buffers (global-update BFS, refine bookkeeping, the
//     feasibility oracle's auxiliary graph) are still allocated per solve
//   - Index-based            — no pointers; nodes and arcs are addressed by
//     signed integer index throughout, including the residual/reverse arcs
//   - Pure Go                — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under six subpackages:
//
//	vecint/      — packed dense and signed-index integer vectors
//	stargraph/   — the forward/reverse star graph substrate
//	activeset/   — active-node containers (stack, queue, height buckets)
//	maxflow/     — the maximum-flow engine
//	mincostflow/ — the minimum-cost-flow engine
//	assignment/  — the minimum-cost perfect bipartite matching engine
//
// Quick usage sketch: reserve a graph, add arcs, Build it, attach one
// engine, set per-arc/per-node data, Solve, read results.
//
//	g := stargraph.Reserve(numNodes, numArcs)
//	a := g.AddArc(u, v)
//	g.Build()
//	eng := maxflow.New(g, source, sink, maxflow.DefaultConfig())
//	eng.SetArcCapacity(a, cap)
//	status := eng.Solve()
//
// See DESIGN.md for the grounding of each package's algorithm and ambient
// stack, and SPEC_FULL.md for the full specification this module implements.
package pushrelabel
