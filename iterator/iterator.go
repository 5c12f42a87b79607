// Package iterator: lifecycle (Init/Restart/Deinit) and the mode-generic
// cursor operations (Current/Next/IsEnd).
package iterator

import "github.com/katalvlaran/exprdag/core"

// needsSlot reports whether a configuration requires per-node inline
// bookkeeping: revisit tracking always does (visited tags), and
// depth-first always does (child index and parent link live on nodes).
func needsSlot(mode Mode, allowRevisit bool) bool {
	return !allowRevisit || mode == DepthFirst
}

// Init (re)configures the iterator to traverse the DAG rooted at root
// in the given mode. Any state from a previous traversal is discarded
// and a previously held slot is released first, so Init is also the
// re-initialization entry point.
//
// When the configuration needs a slot (depth-first mode, or revisit
// tracking in any mode) a slot index is claimed from the registry and,
// unless revisiting is allowed, a fresh visited tag is drawn. Init
// panics if such a configuration is requested on an iterator built with
// New(nil) — that is a wiring bug, not a runtime condition.
//
// A nil root leaves the iterator immediately at end. Otherwise the
// cursor is primed on the first node: the root itself in StageEnter for
// depth-first, the first produced node for the other modes.
func (it *Iterator) Init(root *core.Node, mode Mode, allowRevisit bool) {
	// 1. Discard prior traversal state (paired release on every re-init).
	it.reset()

	// 2. Fix the configuration.
	it.mode = mode
	it.allowRevisit = allowRevisit
	it.root = root
	it.stopStages = StageEnter

	// 3. Claim inline-bookkeeping resources when needed.
	if needsSlot(mode, allowRevisit) {
		if it.reg == nil {
			panic("iterator: depth-first or revisit-tracking traversal requires a core.Registry")
		}
		it.slot = it.reg.AcquireSlot()
		if !allowRevisit {
			it.tag = it.reg.NewVisitedTag()
		}
	}

	// 4. Prime the cursor.
	it.seed(root)
}

// Restart re-roots the iterator at newRoot without a full Init: the
// visited tag, slot and stop-stage configuration are preserved, so
// nodes already produced under the current tag stay "visited". If
// revisiting is disallowed and newRoot itself was already visited, the
// iterator goes directly to end.
func (it *Iterator) Restart(newRoot *core.Node) {
	it.root = newRoot
	it.queue = it.queue[:0]
	it.head = 0
	it.stack = it.stack[:0]
	it.cur = nil

	if newRoot != nil && !it.allowRevisit && newRoot.Slot(it.slot).VisitedTag == it.tag {
		return
	}
	it.seed(newRoot)
}

// Deinit releases the iterator's slot (if any) and drops all traversal
// state. It is safe to call repeatedly; Init calls it implicitly.
func (it *Iterator) Deinit() {
	it.reset()
}

// Current returns the node the iterator points at, or nil at end.
func (it *Iterator) Current() *core.Node {
	return it.cur
}

// IsEnd reports whether the traversal is exhausted.
func (it *Iterator) IsEnd() bool {
	return it.cur == nil
}

// Next advances the cursor and returns the new current node, or nil
// when the traversal is exhausted. Calling Next past the end keeps
// returning nil.
func (it *Iterator) Next() *core.Node {
	if it.cur == nil {
		return nil
	}
	switch it.mode {
	case DepthFirst:
		return it.dfsAdvance()
	case BreadthFirst:
		return it.bfsNext()
	default:
		return it.rtNext()
	}
}

// reset releases the slot and clears every mode-specific container.
func (it *Iterator) reset() {
	if it.slot != noSlot {
		it.reg.ReleaseSlot(it.slot)
		it.slot = noSlot
	}
	it.tag = 0
	it.root = nil
	it.cur = nil
	it.stage = 0
	it.queue = nil
	it.head = 0
	it.stack = nil
}

// seed primes the cursor for a (re)started traversal of root.
func (it *Iterator) seed(root *core.Node) {
	if root == nil {
		it.cur = nil

		return
	}
	switch it.mode {
	case DepthFirst:
		// The root enters with no parent; child scanning starts at 0.
		sd := root.Slot(it.slot)
		sd.Parent = nil
		sd.CurChild = 0
		it.cur = root
		it.stage = StageEnter
		if it.stage&it.stopStages == 0 {
			it.dfsAdvance()
		}
	case BreadthFirst:
		if !it.allowRevisit {
			root.Slot(it.slot).VisitedTag = it.tag
		}
		it.queue = append(it.queue, root)
		it.bfsNext()
	default:
		it.stack = append(it.stack, rtFrame{node: root})
		it.rtNext()
	}
}

// mustSlot returns the slot index, panicking when none is held.
func (it *Iterator) mustSlot() int {
	if it.slot == noSlot {
		panic("iterator: operation requires a slot-holding iterator")
	}

	return it.slot
}

// visited reports whether n carries the current traversal tag.
func (it *Iterator) visited(n *core.Node) bool {
	return !it.allowRevisit && n.Slot(it.slot).VisitedTag == it.tag
}
