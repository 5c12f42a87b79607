// Package interval implements closed real intervals [Inf, Sup] with
// ±Inf endpoints, the arithmetic images needed by forward propagation
// (Add, Mul, PowInt, Exp, Log, …) and the inverse rules needed by
// reverse propagation (Div, RootInt, tolerance-gated tightening).
//
// Conventions:
//
//   - An empty interval is the canonical sentinel Empty() with
//     Inf > Sup; it is the only infeasibility signal. No operation in
//     this package ever produces NaN endpoints.
//   - Entire() is [-Inf, +Inf]; dividing by a zero-straddling interval
//     returns the convex hull of the exact (possibly disconnected)
//     result, which is sound for bound propagation.
//   - Multiplication treats 0·±Inf as 0, so a zero coefficient never
//     poisons an unbounded operand.
//
// Complexity: every operation is O(1).
package interval
