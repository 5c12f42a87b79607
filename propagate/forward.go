// Package propagate: forward (leaves-to-root) activity propagation.
package propagate

import (
	"fmt"

	"github.com/katalvlaran/exprdag/core"
	"github.com/katalvlaran/exprdag/interval"
	"github.com/katalvlaran/exprdag/iterator"
)

// Forward computes the activity interval of every node reachable from
// root, children before parents, memoized under the registry's current
// bounds epoch:
//
//   - a node whose activity already carries the current epoch is reused
//     and its subtree skipped entirely;
//   - otherwise the node's operator evaluates over the children's fresh
//     activities, and the result also (re)initializes the node's
//     propagation bounds;
//   - an empty activity marks the result infeasible and stops the walk —
//     no further interval can be meaningful.
//
// Returns ErrNilRegistry / core.ErrNilNode on nil inputs; infeasibility
// is reported via Result.Infeasible, never as an error.
func Forward(reg *core.Registry, root *core.Node, opts ...Option) (*Result, error) {
	// 1. Validate input.
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if root == nil {
		return nil, fmt.Errorf("%w: forward propagation root", core.ErrNilNode)
	}

	// 2. Apply options.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{}
	epoch := reg.BoundsEpoch()

	// 3. Post-order walk: stop on Enter (to prune fresh subtrees) and on
	//    Leave (to evaluate with all children done).
	it := iterator.New(reg)
	it.Init(root, iterator.DepthFirst, false)
	defer it.Deinit()
	it.SetStopStages(iterator.StageEnter | iterator.StageLeave)

	var child []interval.Interval
	for n := it.Current(); n != nil; {
		if it.Stage() == iterator.StageEnter {
			if n.ActivityEpoch() == epoch {
				// Fresh subtree: nothing below can be stale either.
				n = it.Skip()
				continue
			}
			n = it.Next()
			continue
		}

		// StageLeave: children are evaluated, compute this node.
		if n.ActivityEpoch() != epoch {
			child = child[:0]
			for _, c := range n.Children() {
				child = append(child, c.Activity())
			}
			iv := n.Handler().EvalInterval(n, child)
			res.Recomputations++
			if o.respect && n.ActivityEpoch() != 0 {
				iv = iv.Intersect(n.Activity())
			}
			n.SetActivity(iv, epoch)
			n.SetPropBounds(iv, epoch)
			if iv.IsEmpty() {
				res.Infeasible = true

				return res, nil
			}
		}
		n = it.Next()
	}

	return res, nil
}
