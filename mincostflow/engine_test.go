package mincostflow_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pushrelabel/mincostflow"
	"github.com/katalvlaran/pushrelabel/stargraph"
)

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// TestTransportationMatrix reproduces S3: a 4x4 transportation problem with
// unit supplies/demands and the given cost matrix; expected total cost 275.
func (s *EngineSuite) TestTransportationMatrix() {
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

	cfg := mincostflow.DefaultConfig()
	eng := mincostflow.New(g, cfg)
	for l := 0; l < 4; l++ {
		eng.SetNodeSupply(stargraph.NodeIndex(l), 1)
	}
	for r := 0; r < 4; r++ {
		eng.SetNodeSupply(stargraph.NodeIndex(4+r), -1)
	}
	for l := 0; l < 4; l++ {
		for r := 0; r < 4; r++ {
			s.Require().NoError(eng.SetArcCapacity(arcs[l][r], 1))
			eng.SetArcUnitCost(arcs[l][r], costs[l][r])
		}
	}

	status := eng.Solve()
	s.Require().Equal(mincostflow.Optimal, status)
	s.Require().Equal(mincostflow.Quantity(275), eng.TotalCost())
}

// TestInfeasibleUnreachableDemand reproduces S5: supplies [1,0,0,-1] with a
// single arc 0→1 of capacity 1 and no path to node 3; infeasible.
func (s *EngineSuite) TestInfeasibleUnreachableDemand() {
	g := stargraph.Reserve(4, 1)
	a := g.AddArc(0, 1)
	g.Build()

	cfg := mincostflow.DefaultConfig()
	eng := mincostflow.New(g, cfg)
	eng.SetNodeSupply(0, 1)
	eng.SetNodeSupply(3, -1)
	s.Require().NoError(eng.SetArcCapacity(a, 1))
	eng.SetArcUnitCost(a, 1)

	status := eng.Solve()
	s.Require().Equal(mincostflow.Infeasible, status)
}

func (s *EngineSuite) TestUnbalancedSuppliesRejected() {
	g := stargraph.Reserve(2, 1)
	a := g.AddArc(0, 1)
	g.Build()

	eng := mincostflow.New(g, mincostflow.DefaultConfig())
	eng.SetNodeSupply(0, 2)
	eng.SetNodeSupply(1, -1)
	s.Require().NoError(eng.SetArcCapacity(a, 5))

	s.Require().Equal(mincostflow.Unbalanced, eng.Solve())
}

func (s *EngineSuite) TestNegativeCapacityRejected() {
	g := stargraph.Reserve(2, 1)
	a := g.AddArc(0, 1)
	g.Build()

	eng := mincostflow.New(g, mincostflow.DefaultConfig())
	s.Require().ErrorIs(eng.SetArcCapacity(a, -1), mincostflow.ErrNegativeCapacity)
}
