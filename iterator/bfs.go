// Package iterator: breadth-first mode.
package iterator

import "github.com/katalvlaran/exprdag/core"

// bfsNext dequeues the next pending node and enqueues its children.
//
// Children are stamped with the visited tag eagerly, at enqueue time:
// a node reachable through two parents must not be enqueued twice
// before its first dequeue, so marking at dequeue time would be too late.
func (it *Iterator) bfsNext() *core.Node {
	if it.head >= len(it.queue) {
		it.cur = nil

		return nil
	}
	n := it.queue[it.head]
	it.head = it.head + 1

	for _, c := range n.Children() {
		if !it.allowRevisit {
			cs := c.Slot(it.slot)
			if cs.VisitedTag == it.tag {
				continue
			}
			cs.VisitedTag = it.tag
		}
		it.queue = append(it.queue, c)
	}
	it.cur = n

	return n
}
