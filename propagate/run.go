// Package propagate: the combined forward/reverse driver.
package propagate

import (
	"fmt"

	"github.com/katalvlaran/exprdag/core"
	"github.com/katalvlaran/exprdag/interval"
)

// Constraint couples an expression root with the side bounds imposed on
// it (the constraint's left/right-hand sides).
type Constraint struct {
	// Root is the constraint's expression DAG root.
	Root *core.Node

	// Side is the externally imposed interval the root must lie in.
	Side interval.Interval
}

// Run performs one full propagation round over a set of constraints
// sharing one DAG family: forward-propagate every root (shared
// sub-DAGs are evaluated once thanks to epoch memoization), seed a
// single queue with each root's activity ∩ side, then drain the queue
// once so tightenings from one constraint feed into the others.
//
// Returns the combined Result; as everywhere in this package,
// infeasibility is an outcome, not an error.
func Run(reg *core.Registry, constraints []Constraint, opts ...Option) (*Result, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	res := &Result{}
	q := NewQueue()

	// 1. Forward pass + queue seeding per constraint.
	for k := range constraints {
		cons := &constraints[k]
		if cons.Root == nil {
			q.Reset()

			return nil, fmt.Errorf("%w: constraint %d root", core.ErrNilNode, k)
		}
		fres, err := Forward(reg, cons.Root, opts...)
		if err != nil {
			q.Reset()

			return nil, err
		}
		res.merge(fres)
		if res.Infeasible {
			q.Reset()

			return res, nil
		}
		if _, infeasible := q.Seed(reg, cons.Root, cons.Side); infeasible {
			res.Infeasible = true
			q.Reset()

			return res, nil
		}
	}

	// 2. One shared reverse drain to the fixpoint.
	rres, err := Reverse(reg, q, opts...)
	if err != nil {
		return nil, err
	}
	res.merge(rres)

	return res, nil
}
