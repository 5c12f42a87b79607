// Package interval: core type, constructors, predicates and set operations.
package interval

import (
	"fmt"
	"math"
)

// DefaultTol is the relative tolerance used by Tighter when deciding
// whether a candidate bound is a genuine improvement. Propagation loops
// use it to guarantee termination on finite DAGs.
const DefaultTol = 1e-9

// Interval is a closed real interval [Inf, Sup]. Endpoints may be ±Inf.
// The zero value is the degenerate point interval [0, 0].
type Interval struct {
	// Inf is the lower endpoint.
	Inf float64

	// Sup is the upper endpoint.
	Sup float64
}

// New returns the interval [lo, hi].
// New panics if lo or hi is NaN; NaN endpoints are a programming error,
// infeasibility must be expressed via Empty instead.
func New(lo, hi float64) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		panic(fmt.Sprintf("interval: New(%g, %g): NaN endpoint", lo, hi))
	}

	return Interval{Inf: lo, Sup: hi}
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval {
	return New(v, v)
}

// Empty returns the canonical empty interval [+Inf, -Inf].
func Empty() Interval {
	return Interval{Inf: math.Inf(1), Sup: math.Inf(-1)}
}

// Entire returns the interval [-Inf, +Inf].
func Entire() Interval {
	return Interval{Inf: math.Inf(-1), Sup: math.Inf(1)}
}

// IsEmpty reports whether i contains no points (Inf > Sup).
func (i Interval) IsEmpty() bool {
	return i.Inf > i.Sup
}

// IsEntire reports whether i is [-Inf, +Inf].
func (i Interval) IsEntire() bool {
	return math.IsInf(i.Inf, -1) && math.IsInf(i.Sup, 1)
}

// IsPoint reports whether i holds exactly one finite point.
func (i Interval) IsPoint() bool {
	return i.Inf == i.Sup && !math.IsInf(i.Inf, 0)
}

// Contains reports whether v lies within i.
func (i Interval) Contains(v float64) bool {
	return i.Inf <= v && v <= i.Sup
}

// ContainsZero reports whether 0 lies within i.
func (i Interval) ContainsZero() bool {
	return i.Contains(0)
}

// Intersect returns the intersection of i and o (Empty when disjoint).
func (i Interval) Intersect(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	res := Interval{Inf: math.Max(i.Inf, o.Inf), Sup: math.Min(i.Sup, o.Sup)}
	if res.IsEmpty() {
		return Empty()
	}

	return res
}

// Union returns the convex hull of i and o.
// The union of an interval with Empty is the interval itself.
func (i Interval) Union(o Interval) Interval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}

	return Interval{Inf: math.Min(i.Inf, o.Inf), Sup: math.Max(i.Sup, o.Sup)}
}

// Width returns Sup-Inf; +Inf for unbounded intervals, -Inf for Empty.
func (i Interval) Width() float64 {
	return i.Sup - i.Inf
}

// String renders i as "[lo,hi]", or "∅" when empty.
func (i Interval) String() string {
	if i.IsEmpty() {
		return "∅"
	}

	return fmt.Sprintf("[%g,%g]", i.Inf, i.Sup)
}
