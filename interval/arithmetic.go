// Package interval: arithmetic images (forward) and inverse rules (reverse).
package interval

import "math"

// mulBound multiplies two endpoint values treating 0·±Inf as 0.
// This keeps zero coefficients exact even against unbounded operands.
func mulBound(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}

	return a * b
}

// divBound divides two endpoint values treating the Inf/Inf corners as
// their limit toward the finite side, 0. A finite numerator against an
// unbounded denominator already yields 0, so collapsing the doubly
// unbounded corner to 0 keeps the quotient hull sound and NaN-free.
func divBound(a, b float64) float64 {
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		return 0
	}

	return a / b
}

// Add returns the interval sum i + o: [a,b] + [c,d] = [a+c, b+d].
func (i Interval) Add(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}

	return Interval{Inf: i.Inf + o.Inf, Sup: i.Sup + o.Sup}
}

// Sub returns the interval difference i - o: [a,b] - [c,d] = [a-d, b-c].
func (i Interval) Sub(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}

	return Interval{Inf: i.Inf - o.Sup, Sup: i.Sup - o.Inf}
}

// Neg returns -i.
func (i Interval) Neg() Interval {
	if i.IsEmpty() {
		return Empty()
	}

	return Interval{Inf: -i.Sup, Sup: -i.Inf}
}

// Scale returns k·i. Scale by 0 yields the point [0,0] even for
// unbounded i (the 0·±Inf = 0 convention).
func (i Interval) Scale(k float64) Interval {
	if i.IsEmpty() {
		return Empty()
	}
	if k == 0 {
		return Point(0)
	}
	if k > 0 {
		return Interval{Inf: mulBound(k, i.Inf), Sup: mulBound(k, i.Sup)}
	}

	return Interval{Inf: mulBound(k, i.Sup), Sup: mulBound(k, i.Inf)}
}

// Mul returns the interval product i·o, the min/max over the four
// endpoint products.
func (i Interval) Mul(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	// 1. Four candidate endpoint products (0·Inf-safe).
	p1 := mulBound(i.Inf, o.Inf)
	p2 := mulBound(i.Inf, o.Sup)
	p3 := mulBound(i.Sup, o.Inf)
	p4 := mulBound(i.Sup, o.Sup)
	// 2. Result spans their extremes.
	return Interval{
		Inf: math.Min(math.Min(p1, p2), math.Min(p3, p4)),
		Sup: math.Max(math.Max(p1, p2), math.Max(p3, p4)),
	}
}

// Div returns the convex hull of i / o under extended interval division:
//
//   - 0 ∉ o: endpoint division.
//   - o == [0,0]: Entire when 0 ∈ i (u·0 = 0 for any u), Empty otherwise.
//   - o touches 0 at one endpoint: a half-line when i is sign-definite,
//     Entire when 0 ∈ i.
//   - o straddles 0: Entire (the exact result is disconnected; the hull
//     is the tightest single interval and remains sound for propagation).
func (i Interval) Div(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}

	// 1. Divisor is exactly zero.
	if o.Inf == 0 && o.Sup == 0 {
		if i.ContainsZero() {
			return Entire()
		}

		return Empty()
	}

	// 2. Divisor does not contain zero: plain endpoint division.
	if !o.ContainsZero() {
		q1 := divBound(i.Inf, o.Inf)
		q2 := divBound(i.Inf, o.Sup)
		q3 := divBound(i.Sup, o.Inf)
		q4 := divBound(i.Sup, o.Sup)

		return Interval{
			Inf: math.Min(math.Min(q1, q2), math.Min(q3, q4)),
			Sup: math.Max(math.Max(q1, q2), math.Max(q3, q4)),
		}
	}

	// 3. Zero inside the divisor and inside the dividend: anything goes.
	if i.ContainsZero() {
		return Entire()
	}

	// 4. Divisor touches zero from one side only.
	switch {
	case o.Inf == 0: // o = [0, d], d > 0
		if i.Inf > 0 {
			return Interval{Inf: divBound(i.Inf, o.Sup), Sup: math.Inf(1)}
		}

		return Interval{Inf: math.Inf(-1), Sup: divBound(i.Sup, o.Sup)}
	case o.Sup == 0: // o = [c, 0], c < 0
		if i.Inf > 0 {
			return Interval{Inf: math.Inf(-1), Sup: divBound(i.Inf, o.Inf)}
		}

		return Interval{Inf: divBound(i.Sup, o.Inf), Sup: math.Inf(1)}
	}

	// 5. Zero strictly inside the divisor: disconnected exact result.
	return Entire()
}

// Sqr returns the image of x² over i.
func (i Interval) Sqr() Interval {
	return i.PowInt(2)
}

// Sqrt returns the image of √x over i ∩ [0, +Inf]; Empty when i < 0.
func (i Interval) Sqrt() Interval {
	nn := i.Intersect(Interval{Inf: 0, Sup: math.Inf(1)})
	if nn.IsEmpty() {
		return Empty()
	}

	return Interval{Inf: math.Sqrt(nn.Inf), Sup: math.Sqrt(nn.Sup)}
}

// PowInt returns the image of x^n over i for integer n.
// Negative exponents are computed as 1 / x^(-n).
func (i Interval) PowInt(n int) Interval {
	if i.IsEmpty() {
		return Empty()
	}
	switch {
	case n == 0:
		return Point(1)
	case n < 0:
		return Point(1).Div(i.PowInt(-n))
	case n%2 == 1: // odd powers are monotone
		return Interval{Inf: powB(i.Inf, n), Sup: powB(i.Sup, n)}
	case i.Inf >= 0: // even power, nonnegative operand
		return Interval{Inf: powB(i.Inf, n), Sup: powB(i.Sup, n)}
	case i.Sup <= 0: // even power, nonpositive operand
		return Interval{Inf: powB(i.Sup, n), Sup: powB(i.Inf, n)}
	default: // even power across zero
		return Interval{Inf: 0, Sup: math.Max(powB(-i.Inf, n), powB(i.Sup, n))}
	}
}

// RootInt returns the convex hull of { x : x^n ∈ i } for integer n ≥ 1,
// the inverse rule used when reverse-propagating through PowInt.
// Even roots of an entirely negative interval are Empty.
func (i Interval) RootInt(n int) Interval {
	if i.IsEmpty() || n < 1 {
		return Empty()
	}
	if n == 1 {
		return i
	}
	if n%2 == 1 {
		// Odd root is monotone and sign-preserving.
		return Interval{Inf: rootB(i.Inf, n), Sup: rootB(i.Sup, n)}
	}
	// Even root: only the nonnegative part of i has preimages, and they
	// come in symmetric pairs ±r; the hull is [-max, max].
	if i.Sup < 0 {
		return Empty()
	}
	r := rootB(i.Sup, n)

	return Interval{Inf: -r, Sup: r}
}

// Exp returns the image of e^x over i.
func (i Interval) Exp() Interval {
	if i.IsEmpty() {
		return Empty()
	}

	return Interval{Inf: math.Exp(i.Inf), Sup: math.Exp(i.Sup)}
}

// Log returns the image of ln(x) over i ∩ (0, +Inf]; Empty when i ≤ 0.
func (i Interval) Log() Interval {
	if i.IsEmpty() || i.Sup <= 0 {
		return Empty()
	}
	lo := math.Inf(-1)
	if i.Inf > 0 {
		lo = math.Log(i.Inf)
	}

	return Interval{Inf: lo, Sup: math.Log(i.Sup)}
}

// powB raises a single (possibly infinite) endpoint to a positive
// integer power without math.Pow's NaN corners for infinities.
func powB(v float64, n int) float64 {
	if math.IsInf(v, 0) {
		if v > 0 || n%2 == 1 {
			return v
		}

		return math.Inf(1)
	}

	return math.Pow(v, float64(n))
}

// rootB takes the signed n-th root of a single endpoint (odd n), or the
// plain n-th root of a nonnegative endpoint.
func rootB(v float64, n int) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	if v < 0 {
		return -math.Pow(-v, 1/float64(n))
	}

	return math.Pow(v, 1/float64(n))
}
