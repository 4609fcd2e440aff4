package langlang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorFromCategory_PlaceholderCountEnforced(t *testing.T) {
	outcome := Rescue(func() {
		NewErrorFromCategory("script", "no-value") // wants 1 arg, got 0
	})
	require.NotNil(t, outcome.Err)
}

func TestNewErrorFromCategory_RendersTemplate(t *testing.T) {
	var e *ScriptError
	outcome := Rescue(func() {
		e = NewErrorFromCategory("script", "no-value", NewWord(InternString("x")))
	})
	require.Nil(t, outcome.Err)
	assert.Equal(t, "x has no value", e.Message())
	assert.Equal(t, "no-value", e.ID())
	assert.Equal(t, "script", e.Type())
}

func TestNewErrorFromText_LeavesIDAndTypeNull(t *testing.T) {
	e := NewErrorFromText("custom message")
	assert.Equal(t, "", e.ID())
	assert.Equal(t, "", e.Type())
	assert.Equal(t, "custom message", e.Message())
}

func TestNewErrorFromVarlist_RequiresErrorShapedContext(t *testing.T) {
	v := NewVarlist(ContextObject, 0)
	outcome := Rescue(func() { NewErrorFromVarlist(v) })
	require.NotNil(t, outcome.Err)
}

func TestSetLocationOfError_WalksLevelChain(t *testing.T) {
	src := []byte("do something wrong here")
	idx := NewLineIndex(src)

	outer := NewLevel("outer-func", nil)
	outer.SetSource(idx, NewRange(3, 12), InternString("script.r")) // "something"
	PushLevel(outer)
	defer PopLevel(outer)

	inner := NewLevel("inner-func", nil)
	inner.SetSource(idx, NewRange(13, 18), nil) // "wrong"
	PushLevel(inner)
	defer PopLevel(inner)

	e := NewErrorFromText("boom")
	Set_Location_Of_Error(e, TopLevel())

	assert.Contains(t, e.Error(), "inner-func")
	assert.Contains(t, e.Error(), "outer-func")
}

func TestMoldError_FormatAndOmission(t *testing.T) {
	e := NewErrorFromText("something broke")
	out := MoldError(e)
	assert.True(t, strings.HasPrefix(out, "** Error: something broke"))
	assert.NotContains(t, out, "** Where:")
	assert.NotContains(t, out, "** File:")
}

func TestMoldError_IncludesCategoryTitleCase(t *testing.T) {
	var e *ScriptError
	Rescue(func() {
		e = NewErrorFromCategory("script", "bad-value", NewInteger(1))
	})
	out := MoldError(e)
	assert.True(t, strings.HasPrefix(out, "** Script Error:"))
}

func TestPreallocatedErrors_AreBooted(t *testing.T) {
	require.NotNil(t, oomError)
	require.NotNil(t, stackError)
	require.NotNil(t, haltError)
	assert.Equal(t, "halt", haltError.ID())
}
