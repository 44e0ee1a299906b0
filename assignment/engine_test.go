package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pushrelabel/assignment"
	"github.com/katalvlaran/pushrelabel/stargraph"
)

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// TestFourByFourMatrix reproduces S4: the same cost matrix as mincostflow's
// S3, solved directly as an assignment problem; expected cost 275.
func (s *EngineSuite) TestFourByFourMatrix() {
	costs := [4][4]assignment.Quantity{
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

	eng := assignment.New(g, 4, assignment.DefaultConfig())
	for l := 0; l < 4; l++ {
		for r := 0; r < 4; r++ {
			eng.SetArcCost(arcs[l][r], costs[l][r])
		}
	}

	ok := eng.ComputeAssignment()
	s.Require().True(ok)
	s.Require().Equal(assignment.Optimal, eng.Status())
	s.Require().Equal(assignment.Quantity(275), eng.Cost())

	seen := make(map[stargraph.NodeIndex]bool)
	for l := 0; l < 4; l++ {
		mate := eng.Mate(stargraph.NodeIndex(l))
		s.Require().False(seen[mate], "right node %d matched twice", mate)
		seen[mate] = true
	}
}

func (s *EngineSuite) TestQueueOrderAgreesWithStack() {
	g := stargraph.Reserve(4, 4)
	a00 := g.AddArc(0, 2)
	a01 := g.AddArc(0, 3)
	a10 := g.AddArc(1, 2)
	a11 := g.AddArc(1, 3)
	g.Build()

	cfg := assignment.DefaultConfig()
	cfg.UseStackOrder = false
	eng := assignment.New(g, 2, cfg)
	eng.SetArcCost(a00, 1)
	eng.SetArcCost(a01, 4)
	eng.SetArcCost(a10, 3)
	eng.SetArcCost(a11, 2)

	ok := eng.ComputeAssignment()
	s.Require().True(ok)
	s.Require().Equal(assignment.Quantity(3), eng.Cost())
}

func (s *EngineSuite) TestUnmatchableLeftIsBadInput() {
	g := stargraph.Reserve(2, 0)
	g.Build()

	eng := assignment.New(g, 1, assignment.DefaultConfig())
	ok := eng.ComputeAssignment()
	s.Require().False(ok)
	s.Require().Equal(assignment.BadInput, eng.Status())
}
