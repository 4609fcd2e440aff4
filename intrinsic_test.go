package langlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrinsic_RegisteredPredicatesDispatch(t *testing.T) {
	require.True(t, CanDispatchAsIntrinsic("null?"))
	require.True(t, CanDispatchAsIntrinsic("void?"))
	assert.False(t, CanDispatchAsIntrinsic("not-a-real-intrinsic"))

	l := NewLevel("test", nil)
	result, ok := DispatchIntrinsic("null?", l, NullAntiform())
	require.True(t, ok)
	val, isLogic := result.IsLogicAntiform()
	require.True(t, isLogic)
	assert.True(t, val)

	result, ok = DispatchIntrinsic("null?", l, NewInteger(5))
	require.True(t, ok)
	val, _ = result.IsLogicAntiform()
	assert.False(t, val)
}

func TestIntrinsic_UnknownNameReportsNotFound(t *testing.T) {
	l := NewLevel("test", nil)
	_, ok := DispatchIntrinsic("no-such-predicate", l, NewInteger(1))
	assert.False(t, ok)
}

func TestIntrinsic_ReusesCallerScratchCell(t *testing.T) {
	l := NewLevel("test", nil)
	arg := NewText("hello")
	DispatchIntrinsic("void?", l, arg)
	assert.Equal(t, "hello", l.Scratch().AsText())
}

func TestIntrinsic_PanicsIfBodyPushesALevel(t *testing.T) {
	RegisterIntrinsic("test-misbehaving", func(l *Level, arg Cell) Cell {
		PushLevel(NewLevel("rogue", nil))
		return LogicAntiform(true)
	})

	caller := NewLevel("caller", nil)
	assert.Panics(t, func() {
		DispatchIntrinsic("test-misbehaving", caller, NewInteger(1))
	})

	// clean up the level the misbehaving intrinsic pushed, so later
	// tests don't inherit a corrupted call stack.
	PopLevel(TopLevel())
}
