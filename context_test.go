package langlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarlist_AppendFindGet(t *testing.T) {
	v := NewVarlist(ContextObject, 4)
	foo := InternString("foo")
	bar := InternString("bar")

	v.Append(foo, NewInteger(1))
	v.Append(bar, NewText("hi"))

	assert.Equal(t, 2, v.Len())

	i, ok := v.Find(foo)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	val, ok := v.Get(bar)
	require.True(t, ok)
	assert.Equal(t, "hi", val.AsText())

	_, ok = v.Find(InternString("nope"))
	assert.False(t, ok)
}

func TestVarlist_SetOverwritesExistingSlot(t *testing.T) {
	v := NewVarlist(ContextObject, 2)
	x := InternString("x")
	v.Append(x, NewInteger(1))

	v.Set(x, NewInteger(2))
	val, _ := v.Get(x)
	assert.Equal(t, int64(2), val.AsInteger())
}

func TestVarlist_SetUnboundFails(t *testing.T) {
	v := NewVarlist(ContextObject, 1)
	outcome := Rescue(func() {
		v.Set(InternString("ghost"), NewInteger(1))
	})
	require.NotNil(t, outcome.Err)
}

func TestVarlist_RootvarAndHeart(t *testing.T) {
	v := NewVarlist(ContextError, 1)
	assert.Equal(t, ContextError, v.Heart())
	root := v.Rootvar()
	assert.Equal(t, HeartObject, root.Heart())
}

func TestVarlist_MarkFailed(t *testing.T) {
	v := NewVarlist(ContextFrame, 0)
	assert.False(t, v.Failed())
	v.MarkFailed()
	assert.True(t, v.Failed())
}

func TestVarlist_KeyAtRootvarHasNoKey(t *testing.T) {
	v := NewVarlist(ContextObject, 1)
	assert.Nil(t, v.KeyAt(0))
	sym := InternString("slot1")
	v.Append(sym, NewInteger(0))
	assert.Equal(t, sym, v.KeyAt(1))
}
