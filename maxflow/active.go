package maxflow

import "github.com/katalvlaran/pushrelabel/activeset"

// container abstracts the two concrete active-node selection policies:
// Buckets for highest-label-first, Queue for FIFO. The choice is made once
// at engine construction from Config.ProcessNodeByHeight; no runtime
// dispatch happens inside the hot discharge loop beyond this single
// interface's two methods.
type container interface {
	push(node, height int)
	pop() (node int, ok bool)
	reset()
}

type bucketsContainer struct{ b *activeset.Buckets }

func (c bucketsContainer) push(node, height int) { c.b.Push(node, height) }
func (c bucketsContainer) pop() (int, bool)       { n, _, ok := c.b.Pop(); return n, ok }
func (c bucketsContainer) reset()                 { c.b.Reset() }

type queueContainer struct{ q *activeset.Queue[int] }

func (c queueContainer) push(node, _ int) { c.q.Push(node) }
func (c queueContainer) pop() (int, bool) { return c.q.Pop() }
func (c queueContainer) reset()           { c.q.Reset() }
