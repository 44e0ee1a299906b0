package mincostflow_test

import (
	"fmt"

	"github.com/katalvlaran/pushrelabel/mincostflow"
	"github.com/katalvlaran/pushrelabel/stargraph"
)

// Example demonstrates a two-node transportation problem: one unit of
// supply at node 0 must reach one unit of demand at node 1 over a single
// arc of unit cost 7.
func Example() {
	g := stargraph.Reserve(2, 1)
	a := g.AddArc(0, 1)
	g.Build()

	eng := mincostflow.New(g, mincostflow.DefaultConfig())
	eng.SetNodeSupply(0, 1)
	eng.SetNodeSupply(1, -1)
	_ = eng.SetArcCapacity(a, 1)
	eng.SetArcUnitCost(a, 7)

	status := eng.Solve()
	fmt.Println(status, eng.TotalCost())
	// Output: OPTIMAL 7
}

// Example_transportationMatrix demonstrates a 4x4 transportation problem
// with unit supplies and demands over the given cost matrix.
func Example_transportationMatrix() {
	costs := [4][4]mincostflow.Quantity{
		{90, 75, 75, 80},
		{35, 85, 55, 65},
		{125, 95, 90, 105},
		{45, 110, 95, 115},
	}

	g := stargraph.Reserve(8, 16)
	var arcs [4][4]stargraph.ArcIndex
	for l := 0; l < 4; l++ {
		for r := 0; r < 4; r++ {
			arcs[l][r] = g.AddArc(stargraph.NodeIndex(l), stargraph.NodeIndex(4+r))
		}
	}
	g.Build()

	eng := mincostflow.New(g, mincostflow.DefaultConfig())
	for l := 0; l < 4; l++ {
		eng.SetNodeSupply(stargraph.NodeIndex(l), 1)
	}
	for r := 0; r < 4; r++ {
		eng.SetNodeSupply(stargraph.NodeIndex(4+r), -1)
	}
	for l := 0; l < 4; l++ {
		for r := 0; r < 4; r++ {
			_ = eng.SetArcCapacity(arcs[l][r], 1)
			eng.SetArcUnitCost(arcs[l][r], costs[l][r])
		}
	}

	status := eng.Solve()
	fmt.Println(status, eng.TotalCost())
	// Output: OPTIMAL 275
}

// Example_infeasibleUnreachableDemand demonstrates a supply/demand instance
// with no arc path from supply to demand: the feasibility pre-check
// reports Infeasible instead of running cost-scaling on a hopeless input.
func Example_infeasibleUnreachableDemand() {
	g := stargraph.Reserve(4, 1)
	a := g.AddArc(0, 1)
	g.Build()

	eng := mincostflow.New(g, mincostflow.DefaultConfig())
	eng.SetNodeSupply(0, 1)
	eng.SetNodeSupply(3, -1)
	_ = eng.SetArcCapacity(a, 1)
	eng.SetArcUnitCost(a, 1)

	status := eng.Solve()
	fmt.Println(status)
	// Output: INFEASIBLE
}
