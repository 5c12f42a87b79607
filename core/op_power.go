// Package core: the integer power operator child^n.
package core

import (
	"math"

	"github.com/katalvlaran/exprdag/interval"
)

// powHandler implements child^exponent for integer exponents.
type powHandler struct {
	exponent int
}

func (h *powHandler) Name() string { return "pow" }

func (h *powHandler) EvalInterval(_ *Node, child []interval.Interval) interval.Interval {
	return child[0].PowInt(h.exponent)
}

// ReverseProp inverts x^n ∈ bounds:
//
//   - n odd: the signed n-th root is monotone, so the root of the bounds
//     is exact.
//   - n even with a sign-definite child: take the one-sided root, using
//     a positive lower bound on x^n to lift the child's magnitude.
//   - n even across zero: fall back to the symmetric hull [-r, r].
//   - n < 0: x^n ∈ bounds ⇔ x^|n| ∈ 1/bounds.
//   - n = 0: x^0 = 1; bounds excluding 1 are infeasible, otherwise no
//     information flows to the child.
func (h *powHandler) ReverseProp(_ *Node, bounds interval.Interval, child []interval.Interval) ([]interval.Interval, bool) {
	cur := child[0]

	n := h.exponent
	if n == 0 {
		if !bounds.Contains(1) {
			return []interval.Interval{interval.Empty()}, true
		}

		return []interval.Interval{cur}, false
	}
	if n < 0 {
		bounds = interval.Point(1).Div(bounds)
		n = -n
	}

	var c interval.Interval
	switch {
	case n%2 == 1:
		c = bounds.RootInt(n)
	case cur.Inf >= 0:
		c = evenRootOneSided(bounds, n)
	case cur.Sup <= 0:
		c = evenRootOneSided(bounds, n).Neg()
	default:
		c = bounds.RootInt(n)
	}

	c = c.Intersect(cur)

	return []interval.Interval{c}, c.IsEmpty()
}

// evenRootOneSided returns { x ≥ 0 : x^n ∈ bounds } for even n ≥ 2.
func evenRootOneSided(bounds interval.Interval, n int) interval.Interval {
	if bounds.Sup < 0 {
		return interval.Empty()
	}
	lo := 0.0
	if bounds.Inf > 0 && !math.IsInf(bounds.Inf, 1) {
		lo = math.Pow(bounds.Inf, 1/float64(n))
	}
	hi := math.Inf(1)
	if !math.IsInf(bounds.Sup, 1) {
		hi = math.Pow(bounds.Sup, 1/float64(n))
	}

	return interval.Interval{Inf: lo, Sup: hi}
}

// NewPow creates the node child^exponent.
// NewPow panics on a nil child.
func NewPow(child *Node, exponent int) *Node {
	mustChildren("NewPow", []*Node{child})

	return &Node{
		handler:  &powHandler{exponent: exponent},
		children: []*Node{child},
	}
}
