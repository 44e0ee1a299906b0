package assignment

import "github.com/katalvlaran/pushrelabel/activeset"

// container abstracts LIFO vs FIFO active-left-node ordering, selected
// once at engine construction from Config.UseStackOrder.
type container interface {
	push(left int)
	pop() (left int, ok bool)
	reset()
}

type stackContainer struct{ s *activeset.Stack[int] }

func (c stackContainer) push(left int)     { c.s.Push(left) }
func (c stackContainer) pop() (int, bool)  { return c.s.Pop() }
func (c stackContainer) reset()            { c.s.Reset() }

type queueContainer struct{ q *activeset.Queue[int] }

func (c queueContainer) push(left int)     { c.q.Push(left) }
func (c queueContainer) pop() (int, bool)  { return c.q.Pop() }
func (c queueContainer) reset()            { c.q.Reset() }
