// Package interval: the tolerance-gated tightening test used by the
// propagation fixpoint to decide whether a candidate bound is worth
// committing. Gating by a relative tolerance is what guarantees the
// reverse-propagation queue drains in finitely many steps.
package interval

import "math"

// betterLower reports whether cand improves cur as a lower bound by more
// than the relative tolerance tol.
func betterLower(cand, cur, tol float64) bool {
	if math.IsInf(cand, -1) {
		return false
	}
	if math.IsInf(cur, -1) {
		return true
	}

	return cand > cur+tol*math.Max(1, math.Abs(cur))
}

// betterUpper reports whether cand improves cur as an upper bound by more
// than the relative tolerance tol.
func betterUpper(cand, cur, tol float64) bool {
	if math.IsInf(cand, 1) {
		return false
	}
	if math.IsInf(cur, 1) {
		return true
	}

	return cand < cur-tol*math.Max(1, math.Abs(cur))
}

// Tighter reports whether cand strictly improves at least one bound of
// cur by more than the relative tolerance tol (DefaultTol when tol ≤ 0).
// An empty cand never counts as tighter; emptiness is infeasibility and
// must be handled by the caller before asking about tightness.
func Tighter(cand, cur Interval, tol float64) bool {
	if cand.IsEmpty() {
		return false
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	if cur.IsEmpty() {
		return false
	}

	return betterLower(cand.Inf, cur.Inf, tol) || betterUpper(cand.Sup, cur.Sup, tol)
}
