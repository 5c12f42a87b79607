// Package iterator: the depth-first four-stage state machine.
//
// The machine transliterates a recursive walk with four hooks into
// explicit transitions over inline per-node state:
//
//	StageEnter / StageVisitedChild
//	    scan forward for the next not-yet-visited child; found → descend
//	    (StageVisitingChild), none left → StageLeave.
//	StageVisitingChild
//	    push into the chosen child, recording the parent link; the child
//	    surfaces in StageEnter.
//	StageLeave
//	    stamp the node with the traversal tag and pop to the parent,
//	    which surfaces in StageVisitedChild; popping past the root ends
//	    the traversal.
//
// dfsAdvance loops these transitions until the stage is in the caller's
// stop-stage set, so only the selected events are ever observable.
package iterator

import (
	"fmt"

	"github.com/katalvlaran/exprdag/core"
)

// dfsAdvance repeats state-machine transitions until the iterator lands
// on a stop stage (returning the current node) or runs off the root
// (returning nil).
func (it *Iterator) dfsAdvance() *core.Node {
	for it.cur != nil {
		it.dfsStep()
		if it.cur != nil && it.stage&it.stopStages != 0 {
			return it.cur
		}
	}

	return nil
}

// dfsStep performs exactly one stage transition.
func (it *Iterator) dfsStep() {
	sd := it.cur.Slot(it.slot)
	switch it.stage {
	case StageEnter, StageVisitedChild:
		// Scan forward for the next child to visit.
		start := 0
		if it.stage == StageVisitedChild {
			start = sd.CurChild + 1
		}
		if k := it.scanChild(it.cur, start); k >= 0 {
			sd.CurChild = k
			it.stage = StageVisitingChild
		} else {
			it.stage = StageLeave
		}

	case StageVisitingChild:
		// Descend: record the way back up, reset the child's scan state.
		child := it.cur.Child(sd.CurChild)
		cs := child.Slot(it.slot)
		cs.Parent = it.cur
		cs.CurChild = 0
		it.cur = child
		it.stage = StageEnter

	default: // StageLeave
		// Stamp as visited and pop; the parent observes VisitedChild.
		if !it.allowRevisit {
			sd.VisitedTag = it.tag
		}
		it.cur = sd.Parent
		it.stage = StageVisitedChild
	}
}

// scanChild returns the index of the first child of n at or after start
// that is not yet visited under the current tag, or -1 if none remains.
func (it *Iterator) scanChild(n *core.Node, start int) int {
	for k := start; k < n.ChildCount(); k++ {
		if !it.visited(n.Child(k)) {
			return k
		}
	}

	return -1
}

// Stage returns the current depth-first stage.
// Panics when the iterator is not in DepthFirst mode.
func (it *Iterator) Stage() Stage {
	it.mustDFS("Stage")

	return it.stage
}

// ChildIndex returns the index of the child being visited (or just
// visited). Meaningful only in StageVisitingChild and StageVisitedChild;
// panics otherwise.
func (it *Iterator) ChildIndex() int {
	it.mustChildStage("ChildIndex")

	return it.cur.Slot(it.slot).CurChild
}

// Child returns the child node being visited (or just visited).
// Meaningful only in StageVisitingChild and StageVisitedChild; panics
// otherwise.
func (it *Iterator) Child() *core.Node {
	it.mustChildStage("Child")

	return it.cur.Child(it.cur.Slot(it.slot).CurChild)
}

// Parent returns the node the traversal will return to when leaving the
// current node (nil for the root).
// Panics when the iterator is not in DepthFirst mode or is at end.
func (it *Iterator) Parent() *core.Node {
	it.mustDFS("Parent")
	if it.cur == nil {
		panic("iterator: Parent called at end of traversal")
	}

	return it.cur.Slot(it.slot).Parent
}

// SetStopStages selects which depth-first stages pause the iterator.
// Changing the mask mid-traversal re-evaluates immediately: if the
// current stage is no longer a stop stage, the iterator advances to the
// next one. Panics on a non-depth-first iterator or an empty/invalid mask.
func (it *Iterator) SetStopStages(mask Stage) {
	it.mustDFS("SetStopStages")
	if mask == 0 || mask&^AllStages != 0 {
		panic(fmt.Sprintf("iterator: SetStopStages(%#x): invalid stage mask", uint8(mask)))
	}
	it.stopStages = mask
	if it.cur != nil && it.stage&mask == 0 {
		it.dfsAdvance()
	}
}

// Skip abandons part of the current node's traversal and advances to
// the next stop stage:
//
//   - in StageEnter or StageVisitedChild, all remaining children are
//     abandoned and the node proceeds to StageLeave;
//   - in StageVisitingChild, only the child about to be descended into
//     is abandoned, as if it had already been visited;
//   - in StageLeave there is nothing left to skip — that call is a
//     programming error and panics.
//
// Returns the node at the next stop stage, or nil if the traversal ends.
func (it *Iterator) Skip() *core.Node {
	it.mustDFS("Skip")
	if it.cur == nil {
		panic("iterator: Skip called at end of traversal")
	}
	switch it.stage {
	case StageEnter, StageVisitedChild:
		it.stage = StageLeave
		// LeaveExpr of this node is itself observable if selected.
		if it.stage&it.stopStages != 0 {
			return it.cur
		}
	case StageVisitingChild:
		// Pretend the chosen child was visited; scanning resumes after it.
		it.stage = StageVisitedChild
	default:
		panic("iterator: Skip called in LeaveExpr stage")
	}

	return it.dfsAdvance()
}

// UserData returns the caller's per-traversal storage for n.
// Storage is keyed by the iterator's slot, so it is valid only while
// this iterator stays initialized; panics on a slotless iterator.
func (it *Iterator) UserData(n *core.Node) any {
	return n.Slot(it.mustSlot()).UserData
}

// SetUserData stores v as the caller's per-traversal data on n.
func (it *Iterator) SetUserData(n *core.Node, v any) {
	n.Slot(it.mustSlot()).UserData = v
}

// mustDFS panics unless the iterator is in DepthFirst mode.
func (it *Iterator) mustDFS(op string) {
	if it.mode != DepthFirst {
		panic(fmt.Sprintf("iterator: %s requires depth-first mode, iterator is %s", op, it.mode))
	}
}

// mustChildStage panics unless the iterator is positioned on a child
// event (StageVisitingChild or StageVisitedChild).
func (it *Iterator) mustChildStage(op string) {
	it.mustDFS(op)
	if it.cur == nil {
		panic(fmt.Sprintf("iterator: %s called at end of traversal", op))
	}
	if it.stage != StageVisitingChild && it.stage != StageVisitedChild {
		panic(fmt.Sprintf("iterator: %s called in stage %s", op, it.stage))
	}
}
