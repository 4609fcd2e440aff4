package langlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_PushPopOrder(t *testing.T) {
	base := TopLevel()

	l1 := NewLevel("one", nil)
	PushLevel(l1)
	assert.Equal(t, l1, TopLevel())

	l2 := NewLevel("two", nil)
	PushLevel(l2)
	assert.Equal(t, l2, TopLevel())
	assert.Equal(t, l1, l2.Prior())

	PopLevel(l2)
	assert.Equal(t, l1, TopLevel())
	PopLevel(l1)
	assert.Equal(t, base, TopLevel())
}

func TestLevel_PopOutOfOrderPanics(t *testing.T) {
	l1 := NewLevel("one", nil)
	l2 := NewLevel("two", nil)
	PushLevel(l1)
	PushLevel(l2)

	assert.Panics(t, func() { PopLevel(l1) })

	PopLevel(l2)
	PopLevel(l1)
}

func TestLevel_SpareScratchAreDistinctCells(t *testing.T) {
	l := NewLevel("x", nil)
	Copy(l.Spare(), &Cell{header: baseCellMask, heart: HeartInteger, lift: LiftPlain})
	assert.NotSame(t, l.Spare(), l.Scratch())
}

func TestLevel_FulfillingFlagToggles(t *testing.T) {
	l := NewLevel("x", nil)
	assert.False(t, l.fulfilling)
	l.BeginFulfilling()
	assert.True(t, l.fulfilling)
	l.EndFulfilling()
	assert.False(t, l.fulfilling)
}

func TestLevel_DropLevelMarksOwnedVarlistFailed(t *testing.T) {
	l := NewLevel("x", nil)
	v := NewVarlist(ContextFrame, 0)
	l.BindVarlist(v)

	require.False(t, v.Failed())
	l.dropLevel()
	assert.True(t, v.Failed())
}
