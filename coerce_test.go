package langlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceArgument_PlainMatch(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)
	res := CoerceArgument(SigilNone, spec, CoerceFlags{}, NewInteger(1), nil)
	assert.True(t, res.OK)
}

func TestCoerceArgument_MetaUnliftsAndRelifts(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("word!")}, nil)
	anti := NullAntiform() // antiform word

	res := CoerceArgument(SigilMeta, spec, CoerceFlags{}, anti, nil)
	require.True(t, res.OK, "meta parameter should match the unlifted plain word shape")
	assert.Equal(t, LiftAntiform, res.Value.Lift(), "result must be re-lifted back to its original form")
}

func TestCoerceArgument_DecaysSingleElementPackOnce(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)
	pack := NewPack([]Cell{NewInteger(42)})

	res := CoerceArgument(SigilNone, spec, CoerceFlags{}, pack, nil)
	require.True(t, res.OK)
	assert.Equal(t, int64(42), res.Value.AsInteger())
}

func TestCoerceArgument_MultiElementPackCannotDecay(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)
	pack := NewPack([]Cell{NewInteger(1), NewInteger(2)})

	res := CoerceArgument(SigilNone, spec, CoerceFlags{}, pack, nil)
	assert.False(t, res.OK)
}

func TestCoerceArgument_ErrorAntiformEscalates(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)
	errCell := Cell{header: baseCellMask, heart: HeartError, lift: LiftAntiform}

	outcome := Rescue(func() {
		CoerceArgument(SigilNone, spec, CoerceFlags{}, errCell, nil)
	})
	require.NotNil(t, outcome.Err)
}

func TestCoerceArgument_ActionAntiformUnwrapsAndRetries(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)
	action := Cell{header: baseCellMask, heart: HeartAction, lift: LiftAntiform}

	ran := false
	runAction := func(c Cell) Cell {
		ran = true
		return NewInteger(99)
	}

	res := CoerceArgument(SigilNone, spec, CoerceFlags{}, action, runAction)
	assert.True(t, ran)
	require.True(t, res.OK)
	assert.Equal(t, int64(99), res.Value.AsInteger())
}

func TestCoerceArgument_ShortcutFlagsBypassSpec(t *testing.T) {
	spec := ParseTypeSpecBlock([]Cell{wordCell("integer!")}, nil)

	res := CoerceArgument(SigilNone, spec, CoerceFlags{NullOK: true}, NullAntiform(), nil)
	assert.True(t, res.OK)

	res = CoerceArgument(SigilNone, spec, CoerceFlags{VoidOK: true}, VoidAntiform(), nil)
	assert.True(t, res.OK)

	res = CoerceArgument(SigilNone, spec, CoerceFlags{}, NullAntiform(), nil)
	assert.False(t, res.OK, "without the shortcut, null must fail an integer!-only spec")
}
