// Package core: the affine sum operator c₀ + Σ coefᵢ·childᵢ.
package core

import (
	"fmt"

	"github.com/katalvlaran/exprdag/interval"
)

// sumHandler implements the affine sum. The constant offset and the
// per-child coefficients live on the handler instance, so each sum node
// owns its own copy.
type sumHandler struct {
	constant float64
	coefs    []float64
}

func (h *sumHandler) Name() string { return "sum" }

// EvalInterval computes c₀ + Σ coefᵢ·childᵢ over intervals.
func (h *sumHandler) EvalInterval(_ *Node, child []interval.Interval) interval.Interval {
	res := interval.Point(h.constant)
	for i, ci := range child {
		res = res.Add(ci.Scale(h.coefs[i]))
	}

	return res
}

// ReverseProp solves the sum for each child in turn:
//
//	childᵢ = (bounds − c₀ − Σ_{j≠i} coefⱼ·childⱼ) / coefᵢ
//
// Later children see the candidates already derived for earlier ones,
// which can only make their enclosures tighter.
func (h *sumHandler) ReverseProp(_ *Node, bounds interval.Interval, child []interval.Interval) ([]interval.Interval, bool) {
	cur := append([]interval.Interval(nil), child...)
	cand := make([]interval.Interval, len(child))
	for i := range cur {
		// A zero coefficient carries no information about its child.
		if h.coefs[i] == 0 {
			cand[i] = cur[i]
			continue
		}
		rest := interval.Point(h.constant)
		for j := range cur {
			if j != i {
				rest = rest.Add(cur[j].Scale(h.coefs[j]))
			}
		}
		c := bounds.Sub(rest).Scale(1 / h.coefs[i]).Intersect(cur[i])
		cand[i] = c
		if c.IsEmpty() {
			return cand, true
		}
		cur[i] = c
	}

	return cand, false
}

// NewSum creates the affine node constant + Σ coefs[i]·children[i].
// NewSum panics when the coefficient and child counts differ or a child
// is nil; these are construction-time programming errors.
func NewSum(constant float64, coefs []float64, children ...*Node) *Node {
	mustChildren("NewSum", children)
	if len(coefs) != len(children) {
		panic(fmt.Sprintf("core: NewSum: %d coefficients for %d children", len(coefs), len(children)))
	}

	return &Node{
		handler:  &sumHandler{constant: constant, coefs: append([]float64(nil), coefs...)},
		children: append([]*Node(nil), children...),
	}
}
