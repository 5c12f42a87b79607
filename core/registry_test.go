package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exprdag/core"
)

func TestRegistry_SlotLifecycle(t *testing.T) {
	reg := core.NewRegistry()

	// Claim the whole pool; indices must be distinct.
	seen := make(map[int]bool, core.MaxIterators)
	slots := make([]int, 0, core.MaxIterators)
	for i := 0; i < core.MaxIterators; i++ {
		s := reg.AcquireSlot()
		assert.False(t, seen[s], "slot %d handed out twice", s)
		seen[s] = true
		slots = append(slots, s)
	}

	// Pool exhausted: acquiring one more is a contract violation.
	assert.Panics(t, func() { reg.AcquireSlot() })

	// Release one and the pool serves again.
	reg.ReleaseSlot(slots[0])
	assert.NotPanics(t, func() { reg.AcquireSlot() })
}

func TestRegistry_ReleaseMisuse(t *testing.T) {
	reg := core.NewRegistry()
	assert.Panics(t, func() { reg.ReleaseSlot(-1) })
	assert.Panics(t, func() { reg.ReleaseSlot(core.MaxIterators) })
	// Releasing a slot nobody holds is as fatal as double release.
	assert.Panics(t, func() { reg.ReleaseSlot(0) })
}

func TestRegistry_VisitedTagsMonotonic(t *testing.T) {
	reg := core.NewRegistry()
	prev := reg.NewVisitedTag()
	for i := 0; i < 100; i++ {
		next := reg.NewVisitedTag()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestRegistry_BoundsEpoch(t *testing.T) {
	reg := core.NewRegistry()
	e0 := reg.BoundsEpoch()
	assert.NotZero(t, e0, "epoch must start above the zero-value node tag")
	assert.Equal(t, e0+1, reg.BumpBoundsEpoch())
	assert.Equal(t, e0+1, reg.BoundsEpoch())
}

func TestRegistry_SetVarBounds(t *testing.T) {
	reg := core.NewRegistry()
	x := core.NewVar("x", -1, 1)

	e0 := reg.BoundsEpoch()
	require.NoError(t, reg.SetVarBounds(x, 0, 2))
	lb, ub, err := x.VarBounds()
	require.NoError(t, err)
	assert.Equal(t, 0.0, lb)
	assert.Equal(t, 2.0, ub)
	assert.Equal(t, e0+1, reg.BoundsEpoch(), "bound change must bump the epoch")

	// Misuse surfaces as sentinel errors, not panics.
	assert.ErrorIs(t, reg.SetVarBounds(nil, 0, 1), core.ErrNilNode)
	assert.ErrorIs(t, reg.SetVarBounds(core.NewConst(3), 0, 1), core.ErrNotVariable)

	_, _, err = core.NewConst(3).VarBounds()
	assert.ErrorIs(t, err, core.ErrNotVariable)
}
