package stargraph_test

import (
	"fmt"

	"github.com/katalvlaran/pushrelabel/stargraph"
)

// ExampleGraph demonstrates building a tiny 3-node star graph and walking
// the outgoing arcs of node 0.
func ExampleGraph() {
	g := stargraph.Reserve(3, 3)
	g.AddArc(0, 1)
	g.AddArc(0, 2)
	g.AddArc(1, 2)
	g.Build()

	it := g.Outgoing(0)
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		fmt.Println(g.Tail(a), "->", g.Head(a))
	}
	// Output:
	// 0 -> 2
	// 0 -> 1
}
