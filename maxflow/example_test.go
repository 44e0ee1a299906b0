package maxflow_test

import (
	"fmt"

	"github.com/katalvlaran/pushrelabel/maxflow"
	"github.com/katalvlaran/pushrelabel/stargraph"
)

// Example demonstrates solving max-flow on the linear chain 0→1→2→3 with
// capacities 3, 2, 5, whose bottleneck forces a flow value of 2.
func Example() {
	g := stargraph.Reserve(4, 3)
	a01 := g.AddArc(0, 1)
	a12 := g.AddArc(1, 2)
	a23 := g.AddArc(2, 3)
	g.Build()

	eng := maxflow.New(g, 0, 3, maxflow.DefaultConfig())
	_ = eng.SetArcCapacity(a01, 3)
	_ = eng.SetArcCapacity(a12, 2)
	_ = eng.SetArcCapacity(a23, 5)

	status := eng.Solve()
	fmt.Println(status, eng.OptimalFlow())
	// Output: OPTIMAL 2
}

// Example_parallelPaths demonstrates a denser 6-node graph with several
// parallel source-to-sink routes; the bottleneck at the merge node caps the
// flow at 10 even though every individual arc has more spare capacity.
func Example_parallelPaths() {
	g := stargraph.Reserve(6, 9)
	edges := [][3]int{
		{0, 1, 5}, {0, 2, 8}, {0, 3, 5}, {0, 4, 3},
		{1, 3, 4}, {2, 3, 5}, {3, 4, 6}, {3, 5, 6}, {4, 5, 4},
	}
	arcs := make([]stargraph.ArcIndex, len(edges))
	for i, e := range edges {
		arcs[i] = g.AddArc(stargraph.NodeIndex(e[0]), stargraph.NodeIndex(e[1]))
	}
	g.Build()

	eng := maxflow.New(g, 0, 5, maxflow.DefaultConfig())
	for i, e := range edges {
		_ = eng.SetArcCapacity(arcs[i], maxflow.Quantity(e[2]))
	}

	status := eng.Solve()
	fmt.Println(status, eng.OptimalFlow())
	// Output: OPTIMAL 10
}

// Example_overflowBottleneck demonstrates that a set of huge parallel
// source arcs feeding a capacity-1 bottleneck never trips IntOverflow: the
// true optimum is small regardless of how large the individual arcs are.
func Example_overflowBottleneck() {
	const n = 4
	g := stargraph.Reserve(3, n+1)
	src, bottleneck, sink := stargraph.NodeIndex(0), stargraph.NodeIndex(1), stargraph.NodeIndex(2)

	var feedArcs []stargraph.ArcIndex
	for i := 0; i < n; i++ {
		feedArcs = append(feedArcs, g.AddArc(src, bottleneck))
	}
	out := g.AddArc(bottleneck, sink)
	g.Build()

	eng := maxflow.New(g, src, sink, maxflow.DefaultConfig())
	for _, a := range feedArcs {
		_ = eng.SetArcCapacity(a, maxflow.Quantity(1)<<60)
	}
	_ = eng.SetArcCapacity(out, 1)

	status := eng.Solve()
	fmt.Println(status, eng.OptimalFlow())
	// Output: OPTIMAL 1
}
