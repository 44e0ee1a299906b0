package vecint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pushrelabel/vecint"
)

type SignedSuite struct {
	suite.Suite
}

func TestSignedSuite(t *testing.T) {
	suite.Run(t, new(SignedSuite))
}

func (s *SignedSuite) TestGetSetBothHalves() {
	v := vecint.NewSigned[int](4)
	require.Equal(s.T(), 4, v.Cap())

	v.Set(1, 10)
	v.Set(^1, -10) // opposite index of 1 is -2
	require.Equal(s.T(), 10, v.Get(1))
	require.Equal(s.T(), -10, v.Get(-2))
	require.Equal(s.T(), -10, v.Get(^1))
}

func (s *SignedSuite) TestAddResetFill() {
	v := vecint.NewSigned[int](3)
	v.Add(0, 5)
	v.Add(0, 2)
	require.Equal(s.T(), 7, v.Get(0))

	v.Fill(4)
	require.Equal(s.T(), 4, v.Get(-1))
	v.Reset()
	require.Equal(s.T(), 0, v.Get(-1))
}

func (s *SignedSuite) TestDebugBoundsPanic() {
	v := vecint.NewSigned[int](2)
	v.Debug = true
	require.Panics(s.T(), func() { v.Get(2) })
	require.Panics(s.T(), func() { v.Set(-3, 1) })
}

func (s *SignedSuite) TestPermuteKeepsOppositesAligned() {
	v := vecint.NewSigned[int](3)
	for a := 0; a < 3; a++ {
		v.Set(a, a*10)
		v.Set(^a, -a*10)
	}
	// swap arcs 0 and 2, keep 1 fixed
	perm := []int{2, 1, 0}
	v.Permute(perm)

	require.Equal(s.T(), 20, v.Get(0))
	require.Equal(s.T(), -20, v.Get(^0))
	require.Equal(s.T(), 10, v.Get(1))
	require.Equal(s.T(), -10, v.Get(^1))
	require.Equal(s.T(), 0, v.Get(2))
	require.Equal(s.T(), 0, v.Get(^2))
}
