// Package core defines the central expression-DAG types: Node, the
// operator Handler interface with the built-in algebraic operators
// (variable, constant, affine sum, product, integer power, exp, log),
// and the Registry that hands out iterator slots, visited tags and
// bounds epochs.
//
// Nodes form a directed acyclic graph: a node may be a child of many
// parents, so sub-expressions are shared rather than copied. Sharing is
// what makes traversal bookkeeping non-trivial — every Node carries a
// small fixed array of per-iterator scratch slots (visited tag, current
// child index, parent link, user data) so that up to MaxIterators
// simultaneously active traversals can walk overlapping DAGs without
// external maps. Only the iterator holding a slot may touch that slot's
// scratch data.
//
// The package is single-threaded by contract: no locks are taken, and
// correctness rests on strictly paired slot acquire/release plus the
// bounds-epoch invalidation protocol (any variable-bound change bumps
// the epoch, which makes every stored activity stale at once).
//
// Errors:
//
//	ErrNotVariable - variable-only operation applied to a non-variable node.
//	ErrNilNode     - nil *Node passed where a node is required.
//
// Contract violations (slot pool exhausted, releasing a free slot,
// malformed operator construction) panic; they are programmer errors,
// not recoverable runtime conditions.
package core
