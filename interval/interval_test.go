package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/exprdag/interval"
)

func TestNew_Predicates(t *testing.T) {
	i := interval.New(-2, 3)
	assert.False(t, i.IsEmpty())
	assert.False(t, i.IsEntire())
	assert.True(t, i.Contains(0))
	assert.True(t, i.Contains(-2))
	assert.True(t, i.Contains(3))
	assert.False(t, i.Contains(3.5))

	assert.True(t, interval.Empty().IsEmpty())
	assert.True(t, interval.Entire().IsEntire())
	assert.True(t, interval.Point(4).IsPoint())
	assert.False(t, interval.Entire().IsPoint())
}

func TestNew_NaNPanics(t *testing.T) {
	assert.Panics(t, func() { interval.New(math.NaN(), 1) })
	assert.Panics(t, func() { interval.New(0, math.NaN()) })
}

func TestIntersect_Union(t *testing.T) {
	a := interval.New(0, 5)
	b := interval.New(3, 8)
	assert.Equal(t, interval.New(3, 5), a.Intersect(b))
	assert.Equal(t, interval.New(0, 8), a.Union(b))

	// Disjoint intersection is canonical Empty.
	c := interval.New(6, 7)
	assert.True(t, a.Intersect(c).IsEmpty())

	// Union with Empty is identity.
	assert.Equal(t, a, a.Union(interval.Empty()))
	assert.Equal(t, a, interval.Empty().Union(a))
}

func TestAdd_Sub_Neg_Scale(t *testing.T) {
	a := interval.New(-1, 2)
	b := interval.New(3, 4)
	assert.Equal(t, interval.New(2, 6), a.Add(b))
	assert.Equal(t, interval.New(-5, -1), a.Sub(b))
	assert.Equal(t, interval.New(-2, 1), a.Neg())
	assert.Equal(t, interval.New(-2, 4), a.Scale(2))
	assert.Equal(t, interval.New(-4, 2), a.Scale(-2))

	// Scaling an unbounded interval by zero stays the exact point zero.
	assert.Equal(t, interval.Point(0), interval.Entire().Scale(0))

	// Empty absorbs everything.
	assert.True(t, interval.Empty().Add(b).IsEmpty())
	assert.True(t, a.Sub(interval.Empty()).IsEmpty())
}

func TestMul(t *testing.T) {
	assert.Equal(t, interval.New(-6, 6), interval.New(-2, 2).Mul(interval.New(0, 3)))
	assert.Equal(t, interval.New(2, 12), interval.New(1, 3).Mul(interval.New(2, 4)))
	assert.Equal(t, interval.New(-12, -2), interval.New(1, 3).Mul(interval.New(-4, -2)))

	// 0·±Inf is 0, not NaN.
	z := interval.Point(0).Mul(interval.Entire())
	assert.Equal(t, interval.Point(0), z)
}

func TestDiv(t *testing.T) {
	// Sign-definite divisor: endpoint division.
	assert.Equal(t, interval.New(2, 6), interval.New(4, 12).Div(interval.New(2, 2)))
	assert.Equal(t, interval.New(-6, -2), interval.New(4, 12).Div(interval.New(-2, -2)))

	// Divisor touching zero from above: half-line.
	q := interval.New(1, 8).Div(interval.New(0, 6))
	assert.InDelta(t, 1.0/6.0, q.Inf, 1e-12)
	assert.True(t, math.IsInf(q.Sup, 1))

	// Divisor touching zero from below, positive dividend.
	q = interval.New(1, 8).Div(interval.New(-6, 0))
	assert.True(t, math.IsInf(q.Inf, -1))
	assert.InDelta(t, -1.0/6.0, q.Sup, 1e-12)

	// Zero-straddling divisor with sign-definite dividend: Entire hull.
	assert.True(t, interval.New(1, 8).Div(interval.New(-1, 1)).IsEntire())

	// Zero point divisor: Empty unless the dividend admits zero.
	assert.True(t, interval.New(1, 2).Div(interval.Point(0)).IsEmpty())
	assert.True(t, interval.New(-1, 2).Div(interval.Point(0)).IsEntire())
}

func TestDiv_DoublyUnbounded(t *testing.T) {
	// Dividend and divisor both unbounded: the Inf/Inf corner must
	// collapse to its finite limit, never to NaN.
	q := interval.New(1, math.Inf(1)).Div(interval.New(2, math.Inf(1)))
	assert.Equal(t, 0.0, q.Inf)
	assert.True(t, math.IsInf(q.Sup, 1))

	q = interval.New(math.Inf(-1), -1).Div(interval.New(2, math.Inf(1)))
	assert.True(t, math.IsInf(q.Inf, -1))
	assert.Equal(t, 0.0, q.Sup)

	q = interval.New(1, math.Inf(1)).Div(interval.New(math.Inf(-1), -2))
	assert.True(t, math.IsInf(q.Inf, -1))
	assert.Equal(t, 0.0, q.Sup)

	// Unbounded dividend over a zero-touching unbounded divisor.
	q = interval.New(1, math.Inf(1)).Div(interval.New(0, math.Inf(1)))
	assert.Equal(t, 0.0, q.Inf)
	assert.True(t, math.IsInf(q.Sup, 1))
}

func TestPowInt(t *testing.T) {
	a := interval.New(-2, 3)
	assert.Equal(t, interval.Point(1), a.PowInt(0))
	assert.Equal(t, a, a.PowInt(1))
	assert.Equal(t, interval.New(0, 9), a.PowInt(2))
	assert.Equal(t, interval.New(-8, 27), a.PowInt(3))
	assert.Equal(t, interval.New(4, 9), interval.New(-3, -2).PowInt(2))

	// Negative exponent routes through reciprocal.
	inv := interval.New(2, 4).PowInt(-1)
	assert.InDelta(t, 0.25, inv.Inf, 1e-12)
	assert.InDelta(t, 0.5, inv.Sup, 1e-12)
}

func TestRootInt(t *testing.T) {
	// Odd root is signed and exact.
	r := interval.New(-8, 27).RootInt(3)
	assert.InDelta(t, -2, r.Inf, 1e-9)
	assert.InDelta(t, 3, r.Sup, 1e-9)

	// Even root: symmetric hull.
	r = interval.New(4, 9).RootInt(2)
	assert.InDelta(t, -3, r.Inf, 1e-9)
	assert.InDelta(t, 3, r.Sup, 1e-9)

	// Even root of a negative interval has no preimage.
	assert.True(t, interval.New(-9, -4).RootInt(2).IsEmpty())
}

func TestExp_Log(t *testing.T) {
	e := interval.New(0, 1).Exp()
	assert.InDelta(t, 1, e.Inf, 1e-12)
	assert.InDelta(t, math.E, e.Sup, 1e-12)

	l := interval.New(1, math.E).Log()
	assert.InDelta(t, 0, l.Inf, 1e-12)
	assert.InDelta(t, 1, l.Sup, 1e-12)

	// Log clips at zero from below, and is Empty for nonpositive input.
	l = interval.New(-1, 1).Log()
	assert.True(t, math.IsInf(l.Inf, -1))
	assert.InDelta(t, 0, l.Sup, 1e-12)
	assert.True(t, interval.New(-2, -1).Log().IsEmpty())
	assert.True(t, interval.New(-2, 0).Log().IsEmpty())
}

func TestSqrt(t *testing.T) {
	s := interval.New(4, 9).Sqrt()
	assert.InDelta(t, 2, s.Inf, 1e-12)
	assert.InDelta(t, 3, s.Sup, 1e-12)

	// Negative part is clipped; all-negative input is Empty.
	s = interval.New(-4, 4).Sqrt()
	assert.Equal(t, 0.0, s.Inf)
	assert.InDelta(t, 2, s.Sup, 1e-12)
	assert.True(t, interval.New(-4, -1).Sqrt().IsEmpty())
}

func TestTighter(t *testing.T) {
	cur := interval.New(-2, 2)

	// Clear improvement on either bound.
	assert.True(t, interval.Tighter(interval.New(-1.5, 2), cur, 0))
	assert.True(t, interval.Tighter(interval.New(-2, 1), cur, 0))

	// Identical bounds or sub-tolerance nudges do not count.
	assert.False(t, interval.Tighter(cur, cur, 0))
	assert.False(t, interval.Tighter(interval.New(-2+1e-12, 2), cur, 0))

	// Going from unbounded to finite is always an improvement.
	assert.True(t, interval.Tighter(interval.New(0, 1), interval.Entire(), 0))

	// Empty candidates are infeasibility, never "tighter".
	assert.False(t, interval.Tighter(interval.Empty(), cur, 0))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[-1.5,2]", interval.New(-1.5, 2).String())
	assert.Equal(t, "∅", interval.Empty().String())
}
