// Package core: the product operator coef·Π childᵢ.
package core

import "github.com/katalvlaran/exprdag/interval"

// productHandler implements coef·Π childᵢ.
type productHandler struct {
	coef float64
}

func (h *productHandler) Name() string { return "product" }

// EvalInterval multiplies the children's intervals under the leading
// coefficient.
func (h *productHandler) EvalInterval(_ *Node, child []interval.Interval) interval.Interval {
	res := interval.Point(h.coef)
	for _, ci := range child {
		res = res.Mul(ci)
	}

	return res
}

// ReverseProp divides the node bounds by the partial product of the
// other factors:
//
//	childᵢ = bounds / (coef·Π_{j≠i} childⱼ)
//
// Extended division makes zero-containing partial products sound (they
// widen to half-lines or Entire instead of failing). As in the sum
// rule, later children see earlier candidates; for a product with
// zero-crossing factors this sequential refinement is what pins down
// the sign of the remaining factors.
func (h *productHandler) ReverseProp(_ *Node, bounds interval.Interval, child []interval.Interval) ([]interval.Interval, bool) {
	cur := append([]interval.Interval(nil), child...)
	cand := make([]interval.Interval, len(child))
	for i := range cur {
		rest := interval.Point(h.coef)
		for j := range cur {
			if j != i {
				rest = rest.Mul(cur[j])
			}
		}
		c := bounds.Div(rest).Intersect(cur[i])
		cand[i] = c
		if c.IsEmpty() {
			return cand, true
		}
		cur[i] = c
	}

	return cand, false
}

// NewProduct creates the node coef·children[0]·…·children[k-1].
// NewProduct panics on an empty or nil-containing child list.
func NewProduct(coef float64, children ...*Node) *Node {
	mustChildren("NewProduct", children)

	return &Node{
		handler:  &productHandler{coef: coef},
		children: append([]*Node(nil), children...),
	}
}
