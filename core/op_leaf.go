// Package core: leaf operators — variables and constants.
package core

import "github.com/katalvlaran/exprdag/interval"

// varHandler is the operator of a variable leaf. Its forward rule reads
// the variable's current bound box; it has no children to reverse into.
type varHandler struct{}

func (h *varHandler) Name() string { return "var" }

func (h *varHandler) EvalInterval(n *Node, _ []interval.Interval) interval.Interval {
	// An inverted box (lb > ub) is already the empty interval.
	return interval.Interval{Inf: n.varLb, Sup: n.varUb}
}

func (h *varHandler) ReverseProp(*Node, interval.Interval, []interval.Interval) ([]interval.Interval, bool) {
	return nil, false
}

// constHandler is the operator of a constant leaf.
type constHandler struct{}

func (h *constHandler) Name() string { return "const" }

func (h *constHandler) EvalInterval(n *Node, _ []interval.Interval) interval.Interval {
	return interval.Point(n.constVal)
}

func (h *constHandler) ReverseProp(*Node, interval.Interval, []interval.Interval) ([]interval.Interval, bool) {
	return nil, false
}

// NewVar creates a variable leaf named name with bound box [lb, ub].
func NewVar(name string, lb, ub float64) *Node {
	return &Node{
		handler: &varHandler{},
		varName: name,
		varLb:   lb,
		varUb:   ub,
	}
}

// NewConst creates a constant leaf with value v.
func NewConst(v float64) *Node {
	return &Node{
		handler:  &constHandler{},
		constVal: v,
	}
}

// mustChildren validates an operator's child list at construction time.
// A nil child is a programming error and panics immediately rather than
// surfacing as a nil dereference mid-traversal.
func mustChildren(op string, children []*Node) {
	if len(children) == 0 {
		panic("core: " + op + ": operator needs at least one child")
	}
	for _, c := range children {
		if c == nil {
			panic("core: " + op + ": nil child")
		}
	}
}
