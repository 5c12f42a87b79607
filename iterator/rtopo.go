// Package iterator: reverse-topological mode.
//
// The traversal keeps an explicit stack of (node, next-child) frames.
// A node is yielded only when it is popped with every child expanded,
// which guarantees strict children-before-parent order even across
// shared sub-DAGs. Expanding a child pushes leftmost-descent frames
// (each marked as having consumed its first child) until a childless
// node is reached; that leaf is yielded immediately without a frame.
//
// Already-visited nodes are filtered when a descent is about to enter
// them, so a shared sub-DAG is never re-walked just to discover it was
// yielded before.
package iterator

import "github.com/katalvlaran/exprdag/core"

// rtNext produces the next node in reverse-topological order, or nil
// when the stack is exhausted.
func (it *Iterator) rtNext() *core.Node {
	for len(it.stack) > 0 {
		f := &it.stack[len(it.stack)-1]

		// 1. Fully expanded frame: pop and yield — every descendant of
		//    this node has been yielded already.
		if f.next >= f.node.ChildCount() {
			n := f.node
			it.stack = it.stack[:len(it.stack)-1]
			if !it.allowRevisit {
				ns := n.Slot(it.slot)
				if ns.VisitedTag == it.tag {
					continue
				}
				ns.VisitedTag = it.tag
			}
			it.cur = n

			return n
		}

		// 2. Expand the next child of the top frame.
		child := f.node.Child(f.next)
		f.next++
		if it.visited(child) {
			continue
		}

		// 3. Leftmost descent: push frames until a childless node.
		for child.ChildCount() > 0 {
			first := child.Child(0)
			it.stack = append(it.stack, rtFrame{node: child, next: 1})
			if it.visited(first) {
				child = nil

				break
			}
			child = first
		}
		if child == nil {
			continue // first grandchild already yielded; rescan from the frame
		}

		// 4. Childless node: yield without ever stacking it.
		if !it.allowRevisit {
			child.Slot(it.slot).VisitedTag = it.tag
		}
		it.cur = child

		return child
	}
	it.cur = nil

	return nil
}
