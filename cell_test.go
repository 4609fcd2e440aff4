package langlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_GatingStates(t *testing.T) {
	var erased Cell
	assert.True(t, erased.IsErased())
	assert.True(t, erased.IsInitable())
	assert.False(t, erased.IsReadable())

	c := NewInteger(42)
	assert.True(t, c.IsReadable())
	assert.True(t, c.IsWritable())
	assert.False(t, c.IsPoisoned())
	assert.False(t, c.IsErased())

	c.Protect()
	assert.True(t, c.IsReadable())
	assert.False(t, c.IsWritable())
	assert.False(t, c.IsInitable())

	c.Unprotect()
	assert.True(t, c.IsWritable())
}

func TestCell_PoisonAndInitUnreadable(t *testing.T) {
	var c Cell
	c.Poison()
	assert.True(t, c.IsPoisoned())
	assert.False(t, c.IsReadable())
	assert.False(t, c.IsInitable())

	var d Cell
	d.InitUnreadable()
	assert.False(t, d.IsReadable())
	assert.True(t, d.IsInitable()) // unreadable sentinel is still initable
}

func TestCell_PersistenceSurvivesCopy(t *testing.T) {
	dst := NewInteger(0)
	dst.SetRoot(true)
	dst.SetManaged(true)

	src := NewInteger(7)
	Copy(&dst, &src)

	assert.Equal(t, int64(7), dst.AsInteger())
	assert.True(t, dst.IsRoot(), "persistence bits must survive a Copy")
	assert.True(t, dst.IsManaged())
}

func TestCell_CopyFailsFromUnreadableSource(t *testing.T) {
	var src Cell // erased, not readable
	dst := NewInteger(0)

	outcome := Rescue(func() { Copy(&dst, &src) })
	require.NotNil(t, outcome.Err)
}

func TestCell_BlitRequiresPoisonedOrErasedDest(t *testing.T) {
	dst := NewInteger(1)
	src := NewInteger(2)

	outcome := Rescue(func() { Blit(&dst, &src) })
	require.NotNil(t, outcome.Err)

	var erased Cell
	Blit(&erased, &src) // should not fail: erased dest is allowed
	assert.Equal(t, int64(2), erased.AsInteger())
}

func TestCell_EraseRejectsCorruptHeader(t *testing.T) {
	c := NewInteger(1)
	c.header |= flagCrumb0 // corrupt: not erased/readable/poisoned combination alone
	c.header &^= flagBase  // now neither erased (nonzero) nor well-formed

	outcome := Rescue(func() { c.Erase() })
	require.NotNil(t, outcome.Err)
}

func TestQuotedLift_RoundTrips(t *testing.T) {
	for depth := 1; depth <= 4; depth++ {
		l := QuotedLift(depth)
		assert.True(t, l.IsQuoted())
		assert.Equal(t, depth, l.QuoteDepth())
	}
}

func TestQuoteUnlift_RoundTrip(t *testing.T) {
	c := NewInteger(9)
	q1 := Quote(c)
	assert.Equal(t, 1, q1.Lift().QuoteDepth())

	q2 := Quote(q1)
	assert.Equal(t, 2, q2.Lift().QuoteDepth())

	back1 := Unlift(q2)
	assert.Equal(t, 1, back1.Lift().QuoteDepth())

	back0 := Unlift(back1)
	assert.Equal(t, LiftPlain, back0.Lift())
}

func TestQuasi_RejectsNonQuasiLegalHeart(t *testing.T) {
	assert.Panics(t, func() {
		Quasi(NewInteger(1)) // integer! is not in quasiLegalHearts
	})
}

func TestProjectedType_OrderedRules(t *testing.T) {
	plain := NewInteger(1)
	assert.Equal(t, Datatype{Heart: HeartInteger, Lift: LiftPlain}, ProjectedType(&plain))

	anti := NullAntiform()
	pt := ProjectedType(&anti)
	assert.Equal(t, LiftAntiform, pt.Lift)
	assert.Equal(t, HeartWord, pt.Heart)

	quasi := Quasi(wordAntiform(symTrue))
	qt := ProjectedType(&quasi)
	assert.Equal(t, LiftQuasi, qt.Lift)

	quoted := Quote(NewInteger(1))
	qdt := ProjectedType(&quoted)
	assert.Equal(t, liftQuotedBase, qdt.Lift)
}

func TestDatatype_Equal(t *testing.T) {
	a := Datatype{Heart: HeartInteger, Lift: LiftPlain}
	b := Datatype{Heart: HeartInteger, Lift: LiftPlain}
	assert.True(t, a.Equal(b))

	c := Datatype{Heart: HeartText, Lift: LiftPlain}
	assert.False(t, a.Equal(c))
}
