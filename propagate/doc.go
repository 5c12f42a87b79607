// Package propagate implements interval constraint propagation over
// expression DAGs: Forward computes every node's activity interval from
// the leaves up, Reverse pushes externally tightened bounds from a root
// back down to the variables until a fixpoint or an infeasibility.
//
// Forward drives a depth-first iterator stopping on StageEnter and
// StageLeave: the Leave event is a post-order visit, so children are
// always evaluated before their parents. Activities are memoized under
// the registry's bounds epoch — a node whose activity already carries
// the current epoch is skipped wholesale (Enter event + Skip), and any
// external bound change bumps the epoch to invalidate everything at
// once.
//
// Reverse drains a FIFO queue of nodes whose propagation bounds have
// just been tightened (seeded via TightenRoot or Queue.Seed). Each
// operator's inverse rule proposes candidate child intervals; a
// candidate that improves a child's bounds by more than the relative
// tolerance is committed and the child enqueued in turn. Propagation is
// monotone: committed tightenings are never undone, even when a later
// step discovers infeasibility, because interval arithmetic guarantees
// they never exclude a feasible point.
//
// Infeasibility (an empty interval anywhere) is an expected outcome and
// is reported through Result.Infeasible, never through an error or
// panic; callers must check the flag after every call and prune
// accordingly.
//
// Errors:
//
//	ErrNilRegistry - nil *core.Registry passed to an entry point.
//	core.ErrNilNode - nil root node.
package propagate
