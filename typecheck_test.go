package langlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordCell(name string) Cell { return NewWord(InternString(name)) }

func TestParamSpec_DatatypeMatch(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)
	assert.True(t, spec.Match(NewInteger(1)))
	assert.False(t, spec.Match(NewText("nope")))
}

func TestParamSpec_MatchAnyAcrossAlternatives(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!"), wordCell("text!")}, nil)
	assert.True(t, spec.Match(NewInteger(1)))
	assert.True(t, spec.Match(NewText("hi")))
	assert.False(t, spec.Match(wordCell("word")))
}

func TestParamSpec_MatchAllViaGroup(t *testing.T) {
	all := NewGroup([]Cell{wordCell("integer!")})
	spec := ParseTypeSpecBlock([]Cell{all}, nil)
	assert.True(t, spec.Match(NewInteger(5)))
}

func TestParamSpec_NestedMatchAnyBlock(t *testing.T) {
	nested := NewBlock([]Cell{wordCell("integer!"), wordCell("text!")})
	spec := ParseTypeSpecBlock([]Cell{nested}, nil)
	assert.True(t, spec.Match(NewInteger(1)))
	assert.True(t, spec.Match(NewText("x")))
}

func TestParamSpec_TagNull(t *testing.T) {
	nullSpec := ParseTypeSpecBlock([]Cell{NewTag(InternString("null"))}, nil)
	assert.True(t, nullSpec.Match(NullAntiform()))
	assert.False(t, nullSpec.Match(NewInteger(1)))
}

func TestParamSpec_VoidOptOutByDefault(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)
	assert.False(t, spec.Match(VoidAntiform()), "void must be rejected unless <void> is explicit")

	withVoid := ParseTypeSpecBlock([]Cell{wordCell("integer!"), NewTag(InternString("void"))}, nil)
	assert.True(t, withVoid.Match(VoidAntiform()))
}

func TestParamSpec_QuotedLiteralMatch(t *testing.T) {
	lit := Quote(NewInteger(7))
	spec := ParseTypeSpecBlock([]Cell{lit}, nil)
	assert.True(t, spec.Match(Quote(NewInteger(7))))
	assert.False(t, spec.Match(Quote(NewInteger(8))))
	assert.False(t, spec.Match(NewInteger(7)))
}

func TestParamSpec_ResolvesBoundWordAlias(t *testing.T) {
	binding := NewVarlist(ContextObject, 1)
	binding.Append(InternString("numeric-alias"), NewBlock([]Cell{wordCell("integer!"), wordCell("text!")}))

	spec := ParseTypeSpecBlock([]Cell{wordCell("numeric-alias")}, binding)
	assert.True(t, spec.Match(NewInteger(1)))
	assert.True(t, spec.Match(NewText("1.5")))
	assert.False(t, spec.Match(wordCell("word")))
}

func TestParamSpec_UnboundWordFails(t *testing.T) {
	binding := NewVarlist(ContextObject, 0)
	outcome := Rescue(func() {
		ParseTypeSpecBlock([]Cell{wordCell("no-such-alias")}, binding)
	})
	require.NotNil(t, outcome.Err)
}

func TestParamSpec_WordWithNoBindingFails(t *testing.T) {
	outcome := Rescue(func() {
		ParseTypeSpecBlock([]Cell{wordCell("no-such-alias")}, nil)
	})
	require.NotNil(t, outcome.Err)
}

func TestPackSpec_MatchesPerSlot(t *testing.T) {
	pack := PackSpec{slots: []TypeSpec{DatatypeSpec{heart: HeartInteger}, DatatypeSpec{heart: HeartText}}}
	good := NewPack([]Cell{NewInteger(1), NewText("a")})
	bad := NewPack([]Cell{NewText("a"), NewInteger(1)})
	assert.True(t, pack.Match(good))
	assert.False(t, pack.Match(bad))
}
