// Package propagate: results, options, the pending queue and seeding.
package propagate

import (
	"errors"

	"github.com/katalvlaran/exprdag/core"
	"github.com/katalvlaran/exprdag/interval"
)

// ErrNilRegistry is returned when a nil *core.Registry is passed to a
// propagation entry point.
var ErrNilRegistry = errors.New("propagate: registry is nil")

// Result reports the outcome of one propagation call.
type Result struct {
	// Infeasible is true when some interval became empty: the DAG admits
	// no point within the current bounds. A frequent, valid outcome.
	Infeasible bool

	// Tightenings counts committed bound improvements (Reverse only).
	Tightenings int

	// Recomputations counts activity evaluations actually performed
	// (Forward only); memoized reuses do not count.
	Recomputations int
}

// merge folds other into r.
func (r *Result) merge(other *Result) {
	r.Infeasible = r.Infeasible || other.Infeasible
	r.Tightenings += other.Tightenings
	r.Recomputations += other.Recomputations
}

// Option configures optional behavior of Forward, Reverse and Run.
type Option func(*options)

// options holds configurable propagation parameters.
type options struct {
	tol     float64 // relative tightening tolerance
	respect bool    // intersect recomputed activities with stored ones
}

// defaultOptions returns the default parameters (interval.DefaultTol,
// no activity intersection).
func defaultOptions() options {
	return options{tol: interval.DefaultTol}
}

// WithTolerance returns an Option that sets the relative tolerance a
// candidate bound must beat to be committed. Non-positive tol falls
// back to interval.DefaultTol.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tol = tol
		}
	}
}

// WithRespectActivity returns an Option that makes Forward intersect a
// recomputed activity with the interval previously stored on the node
// instead of overwriting it. Valid only while external bound changes are
// monotone tightenings (the usual propagation loop), since then an older
// activity is still a correct enclosure.
func WithRespectActivity() Option {
	return func(o *options) {
		o.respect = true
	}
}

// Queue is the FIFO of nodes pending reverse propagation. Membership is
// recorded on the nodes themselves (InQueue), so a node is never queued
// twice between two of its drains.
type Queue struct {
	items []*core.Node
	head  int
}

// NewQueue returns an empty pending queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Len returns the number of pending nodes.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Push appends n unless it is already pending.
func (q *Queue) Push(n *core.Node) {
	if n == nil || n.InQueue() {
		return
	}
	n.SetInQueue(true)
	q.items = append(q.items, n)
}

// Pop removes and returns the oldest pending node, or nil when empty.
func (q *Queue) Pop() *core.Node {
	if q.head >= len(q.items) {
		q.items = q.items[:0]
		q.head = 0

		return nil
	}
	n := q.items[q.head]
	q.head++
	n.SetInQueue(false)

	return n
}

// Reset discards every pending entry, clearing the nodes' membership
// flags. Aborted drains must call it: the flag lives on the node, so a
// node left flagged would be silently skipped by Push in every later
// propagation round.
func (q *Queue) Reset() {
	for ; q.head < len(q.items); q.head++ {
		q.items[q.head].SetInQueue(false)
	}
	q.items = q.items[:0]
	q.head = 0
}

// Seed intersects root's current bounds with externally imposed side
// bounds (typically a constraint's left/right-hand sides) and, when the
// intersection is a genuine tightening, commits it and enqueues root.
//
// Returns (tightened, infeasible); an empty intersection reports
// infeasible without touching the committed bounds. Seed expects root's
// activity to be fresh, i.e. Forward must have run in this epoch.
func (q *Queue) Seed(reg *core.Registry, root *core.Node, side interval.Interval) (bool, bool) {
	epoch := reg.BoundsEpoch()
	cur := nodeBounds(root, epoch)
	tightened := cur.Intersect(side)
	if tightened.IsEmpty() {
		return false, true
	}
	if !interval.Tighter(tightened, cur, 0) {
		return false, false
	}
	root.SetPropBounds(tightened, epoch)
	q.Push(root)

	return true, false
}

// nodeBounds returns the node's tightest epoch-fresh interval: its
// propagation bounds when stamped in this epoch, its activity otherwise.
func nodeBounds(n *core.Node, epoch uint64) interval.Interval {
	if n.PropBoundsEpoch() == epoch {
		return n.PropBounds()
	}

	return n.Activity()
}

// TightenRoot is the one-constraint convenience around Queue.Seed: it
// allocates a queue, seeds it from root ∩ side and returns the queue
// together with the infeasibility flag.
func TightenRoot(reg *core.Registry, root *core.Node, side interval.Interval) (*Queue, bool) {
	q := NewQueue()
	_, infeasible := q.Seed(reg, root, side)

	return q, infeasible
}
