package vecint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pushrelabel/vecint"
)

type DenseSuite struct {
	suite.Suite
}

func TestDenseSuite(t *testing.T) {
	suite.Run(t, new(DenseSuite))
}

func (s *DenseSuite) TestGetSetAdd() {
	d := vecint.NewDense[int](5)
	require.Equal(s.T(), 5, d.Len())

	d.Set(2, 7)
	require.Equal(s.T(), 7, d.Get(2))

	got := d.Add(2, 3)
	require.Equal(s.T(), 10, got)
	require.Equal(s.T(), 10, d.Get(2))
}

func (s *DenseSuite) TestResetFill() {
	d := vecint.NewDense[int64](4)
	d.Fill(9)
	for i := 0; i < d.Len(); i++ {
		require.Equal(s.T(), int64(9), d.Get(i))
	}
	d.Reset()
	for i := 0; i < d.Len(); i++ {
		require.Equal(s.T(), int64(0), d.Get(i))
	}
}

func (s *DenseSuite) TestDebugBoundsPanic() {
	d := vecint.NewDense[int](3)
	d.Debug = true
	require.Panics(s.T(), func() { d.Get(3) })
	require.Panics(s.T(), func() { d.Set(-1, 1) })
}

func (s *DenseSuite) TestReleaseModeSkipsCheck() {
	d := vecint.NewDense[int](3)
	require.NotPanics(s.T(), func() { _ = d.Get(2) })
}
