// Package iterator provides a recursion-free cursor over shared
// expression DAGs with three traversal modes:
//
//   - DepthFirst: a four-stage state machine (StageEnter,
//     StageVisitingChild, StageVisitedChild, StageLeave) that emulates a
//     recursive walk with pre/in/post hooks. The caller chooses which
//     stages pause the iterator via SetStopStages, so the same cursor
//     serves pre-order, post-order, or fully instrumented algorithms.
//   - BreadthFirst: classic FIFO order from the root.
//   - ReverseTopological: strict children-before-parent order, even
//     across shared (multi-parent) sub-DAGs.
//
// A node reachable via several parents is produced once per traversal
// when revisiting is disallowed: the iterator claims a slot index from
// core.Registry and stamps nodes with a fresh visited tag, an O(1)
// compare instead of a hash lookup. Iterators that allow revisiting and
// are not depth-first need no slot and may be nested without limit;
// slot-holding iterators are bounded by core.MaxIterators.
//
// Depth-first state (current child index, parent link, user data) lives
// inline on the nodes in the iterator's slot, so arbitrarily deep
// expressions traverse in constant Go stack space.
//
// This is a programming-contract API: using a depth-first accessor in
// the wrong mode or stage, skipping in StageLeave, or exhausting the
// slot pool panics. End-of-traversal, by contrast, is ordinary data
// (Next returns nil, IsEnd reports true).
//
// Complexity: every mode visits O(V+E) node/edge pairs; memory is O(1)
// for depth-first (inline state), O(V) for the other modes' containers.
package iterator
