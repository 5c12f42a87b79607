// Package propagate: reverse (root-to-leaves) bound tightening.
package propagate

import (
	"github.com/katalvlaran/exprdag/core"
	"github.com/katalvlaran/exprdag/interval"
)

// Reverse drains the pending queue to a fixpoint: for each dequeued
// node, the operator's inverse rule proposes candidate intervals for
// every child; candidates that beat the relative tolerance are
// committed into the child's propagation bounds and the child is
// enqueued for its own reverse step (leaves have nothing below them and
// are committed without enqueueing).
//
// An empty candidate anywhere reports infeasibility and aborts the
// drain immediately. Tightenings committed before that point stand:
// interval arithmetic never excludes a feasible point, so monotone
// progress is safe to keep regardless of how the drain ends. Entries
// still pending at the abort are released (Queue.Reset), so the same
// nodes can be queued again in a later round.
//
// Termination: the DAG is finite, a node re-enters the queue only via a
// fresh tightening of its bounds, and every commit must shrink an
// interval by at least the relative tolerance — a bounded interval
// supports only finitely many such shrinks.
func Reverse(reg *core.Registry, q *Queue, opts ...Option) (*Result, error) {
	// 1. Validate input.
	if reg == nil {
		return nil, ErrNilRegistry
	}

	// 2. Apply options.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{}
	if q == nil {
		return res, nil
	}
	epoch := reg.BoundsEpoch()

	// 3. Fixpoint drain.
	var child []interval.Interval
	for {
		n := q.Pop()
		if n == nil {
			break
		}

		// 3a. Current child enclosures (prop bounds when fresh).
		child = child[:0]
		for _, c := range n.Children() {
			child = append(child, nodeBounds(c, epoch))
		}

		// 3b. Ask the operator for per-child candidates.
		cand, infeasible := n.Handler().ReverseProp(n, nodeBounds(n, epoch), child)
		if infeasible {
			res.Infeasible = true
			q.Reset()

			return res, nil
		}

		// 3c. Commit candidates that are genuine tightenings.
		for i, cv := range cand {
			c := n.Child(i)
			cur := child[i]
			cv = cv.Intersect(cur)
			if cv.IsEmpty() {
				res.Infeasible = true
				q.Reset()

				return res, nil
			}
			if !interval.Tighter(cv, cur, o.tol) {
				continue
			}
			c.SetPropBounds(cv, epoch)
			res.Tightenings++
			if c.ChildCount() > 0 {
				q.Push(c)
			}
		}
	}

	return res, nil
}
