// Package core: Registry — the process-wide allocator for iterator
// slots, visited tags and bounds epochs.
package core

import "fmt"

// Registry owns the shared counters that coordinate concurrent
// traversals and bound freshness over one family of DAGs:
//
//   - slot indices: which of the MaxIterators per-node scratch arrays a
//     revisit-tracking iterator may use;
//   - visited tags: monotonically increasing, never reused, so marking a
//     node visited is a single uint64 store and checking it a compare;
//   - bounds epoch: bumped on every external variable-bound change,
//     invalidating all stored activities at once.
//
// A Registry is not safe for concurrent use; the engine is
// single-threaded by contract (multiple *nested* iterators are fine,
// parallel goroutines are not).
type Registry struct {
	slotUsed [MaxIterators]bool // which slots are currently held
	lastTag  uint64             // last visited tag handed out
	epoch    uint64             // current bounds epoch
}

// NewRegistry returns a Registry with all slots free.
// The bounds epoch starts at 1 so that zero-valued node tags are stale.
func NewRegistry() *Registry {
	return &Registry{epoch: 1}
}

// AcquireSlot claims a free iterator slot index and returns it.
// Exhausting the pool means more than MaxIterators revisit-tracking
// iterators are simultaneously active — a resource-ownership bug, so
// AcquireSlot panics rather than corrupting a live traversal.
func (r *Registry) AcquireSlot() int {
	for i := range r.slotUsed {
		if !r.slotUsed[i] {
			r.slotUsed[i] = true

			return i
		}
	}
	panic(fmt.Sprintf("core: all %d iterator slots in use", MaxIterators))
}

// ReleaseSlot returns slot i to the pool.
// Releasing an out-of-range or already-free slot panics: acquire/release
// must be strictly paired on every exit path.
func (r *Registry) ReleaseSlot(i int) {
	if i < 0 || i >= MaxIterators {
		panic(fmt.Sprintf("core: ReleaseSlot(%d): slot index out of range", i))
	}
	if !r.slotUsed[i] {
		panic(fmt.Sprintf("core: ReleaseSlot(%d): slot is not held", i))
	}
	r.slotUsed[i] = false
}

// NewVisitedTag returns a fresh traversal tag. Tags strictly increase
// and are never reused, so a node stamped under an old tag is
// automatically unvisited under every newer one.
func (r *Registry) NewVisitedTag() uint64 {
	r.lastTag++

	return r.lastTag
}

// BoundsEpoch returns the current bounds epoch.
func (r *Registry) BoundsEpoch() uint64 {
	return r.epoch
}

// BumpBoundsEpoch advances the bounds epoch and returns the new value.
// Every activity stored under an older epoch becomes stale.
func (r *Registry) BumpBoundsEpoch() uint64 {
	r.epoch++

	return r.epoch
}

// SetVarBounds updates a variable leaf's bound box and bumps the bounds
// epoch, honoring the cache-invalidation contract between external bound
// changes and forward propagation.
// Returns ErrNilNode or ErrNotVariable on misuse.
func (r *Registry) SetVarBounds(n *Node, lb, ub float64) error {
	if n == nil {
		return ErrNilNode
	}
	if !n.IsVar() {
		return fmt.Errorf("%w: %s node", ErrNotVariable, n.handler.Name())
	}
	n.varLb = lb
	n.varUb = ub
	r.epoch++

	return nil
}
