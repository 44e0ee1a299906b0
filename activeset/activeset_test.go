package activeset_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pushrelabel/activeset"
)

type ActiveSetSuite struct {
	suite.Suite
}

func TestActiveSetSuite(t *testing.T) {
	suite.Run(t, new(ActiveSetSuite))
}

func (s *ActiveSetSuite) TestStackIsLIFO() {
	st := activeset.NewStack[int]()
	st.Push(1)
	st.Push(2)
	st.Push(3)
	require.Equal(s.T(), 3, st.Len())

	v, ok := st.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 3, v)
	v, ok = st.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 2, v)

	st.Reset()
	_, ok = st.Pop()
	require.False(s.T(), ok)
}

func (s *ActiveSetSuite) TestQueueIsFIFO() {
	q := activeset.NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)
	require.Equal(s.T(), 3, q.Len())

	v, ok := q.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, v)
	v, ok = q.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 2, v)
	require.Equal(s.T(), 1, q.Len())
}

func (s *ActiveSetSuite) TestBucketsHighestLabelFirst() {
	b := activeset.NewBuckets(10)
	b.Push(1, 2)
	b.Push(2, 5)
	b.Push(3, 5)
	b.Push(4, 1)
	require.Equal(s.T(), 4, b.Len())

	node, height, ok := b.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 5, height)
	require.Equal(s.T(), 3, node)

	node, height, ok = b.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 5, height)
	require.Equal(s.T(), 2, node)

	node, height, ok = b.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 2, height)
	require.Equal(s.T(), 1, node)

	node, height, ok = b.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, height)
	require.Equal(s.T(), 4, node)

	_, _, ok = b.Pop()
	require.False(s.T(), ok)
}

func (s *ActiveSetSuite) TestBucketsResetReusable() {
	b := activeset.NewBuckets(4)
	b.Push(1, 3)
	b.Reset()
	require.Equal(s.T(), 0, b.Len())
	b.Push(2, 1)
	_, height, ok := b.Pop()
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, height)
}
