// Package core: the exponential and natural-logarithm operators.
// The two reverse rules invert each other, which keeps both one-liners.
package core

import "github.com/katalvlaran/exprdag/interval"

// expHandler implements e^child.
type expHandler struct{}

func (h *expHandler) Name() string { return "exp" }

func (h *expHandler) EvalInterval(_ *Node, child []interval.Interval) interval.Interval {
	return child[0].Exp()
}

// ReverseProp inverts e^x ∈ bounds to x ∈ log(bounds); bounds entirely
// nonpositive are infeasible (the exponential is strictly positive).
func (h *expHandler) ReverseProp(_ *Node, bounds interval.Interval, child []interval.Interval) ([]interval.Interval, bool) {
	c := bounds.Log().Intersect(child[0])

	return []interval.Interval{c}, c.IsEmpty()
}

// logHandler implements ln(child).
type logHandler struct{}

func (h *logHandler) Name() string { return "log" }

func (h *logHandler) EvalInterval(_ *Node, child []interval.Interval) interval.Interval {
	return child[0].Log()
}

// ReverseProp inverts ln(x) ∈ bounds to x ∈ exp(bounds).
func (h *logHandler) ReverseProp(_ *Node, bounds interval.Interval, child []interval.Interval) ([]interval.Interval, bool) {
	c := bounds.Exp().Intersect(child[0])

	return []interval.Interval{c}, c.IsEmpty()
}

// NewExp creates the node e^child. Panics on a nil child.
func NewExp(child *Node) *Node {
	mustChildren("NewExp", []*Node{child})

	return &Node{handler: &expHandler{}, children: []*Node{child}}
}

// NewLog creates the node ln(child). Panics on a nil child.
func NewLog(child *Node) *Node {
	mustChildren("NewLog", []*Node{child})

	return &Node{handler: &logHandler{}, children: []*Node{child}}
}
