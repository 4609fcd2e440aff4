package langlang

// This file provides small, concrete constructors for the handful of
// cell shapes the rest of the core needs to build and inspect: words,
// integers, text, blocks, and the antiform/quasiform keyword trio
// (null, okay/true/false, void, trash) that spec.md §4.2 calls out by
// name. It plays the role the teacher's value.go constructors
// (NewString, NewSequence, NewNode, NewError) played for its AST
// values, generalized to cells.

// NewInteger returns a plain integer! cell.
func NewInteger(n int64) Cell {
	return Cell{header: baseCellMask, heart: HeartInteger, lift: LiftPlain, payload: [2]CellSlot{{Bits: uint64(n)}}}
}

// AsInteger extracts the payload of an integer! cell.
func (c *Cell) AsInteger() int64 { return int64(c.payload[0].Bits) }

// NewText returns a plain text! cell wrapping a Go string stored in a
// heap Stub (see stub.go).
func NewText(s string) Cell {
	stub := NewStringStub(s)
	return Cell{header: baseCellMask, heart: HeartText, lift: LiftPlain, extra: CellSlot{Stub: stub}}
}

// AsText extracts the Go string carried by a text! cell.
func (c *Cell) AsText() string {
	if c.extra.Stub == nil {
		return ""
	}
	return c.extra.Stub.str
}

// NewWord returns a plain word! cell bound to sym.
func NewWord(sym *Symbol) Cell {
	return Cell{header: baseCellMask, heart: HeartWord, lift: LiftPlain, extra: CellSlot{Bits: uint64(sym.id)}, payload: [2]CellSlot{{Stub: sym.stub}}}
}

// AsSymbol returns the Symbol carried by a word! cell, or nil.
func (c *Cell) AsSymbol() *Symbol {
	if c.payload[0].Stub == nil {
		return nil
	}
	sym, _ := Lookup(c.payload[0].Stub.str)
	return sym
}

// NewBlock returns a plain block! cell over items, backed by an array Stub.
func NewBlock(items []Cell) Cell {
	stub := NewArrayStub(items)
	return Cell{header: baseCellMask, heart: HeartBlock, lift: LiftPlain, extra: CellSlot{Stub: stub}}
}

// Items returns the element cells of a block!/group! cell, or nil if
// it carries no array Stub.
func (c *Cell) Items() []Cell {
	if c.extra.Stub == nil {
		return nil
	}
	return c.extra.Stub.cells
}

// NewTag returns a plain tag! cell wrapping sym, e.g. the `<null>` /
// `<void>` pseudo-type tokens a type spec block may contain.
func NewTag(sym *Symbol) Cell {
	return Cell{header: baseCellMask, heart: HeartTag, lift: LiftPlain, extra: CellSlot{Bits: uint64(sym.id)}, payload: [2]CellSlot{{Stub: sym.stub}}}
}

// NewGroup returns a plain group! cell over items.
func NewGroup(items []Cell) Cell {
	g := NewBlock(items)
	g.heart = HeartGroup
	return g
}

// wordAntiform builds an antiform word! cell for one of the three
// keyword antiforms (null/true/false), identified by symbol.
func wordAntiform(sym *Symbol) Cell {
	w := NewWord(sym)
	w.lift = LiftAntiform
	return w
}

// NullAntiform is the ~null~ antiform.
func NullAntiform() Cell { return wordAntiform(symNull) }

// TrueAntiform is the okay/~true~ antiform (spec.md §4.2).
func TrueAntiform() Cell { return wordAntiform(symTrue) }

// FalseAntiform is the ~false~ antiform.
func FalseAntiform() Cell { return wordAntiform(symFalse) }

// LogicAntiform converts a Go bool into the corresponding logic antiform.
func LogicAntiform(v bool) Cell {
	if v {
		return TrueAntiform()
	}
	return FalseAntiform()
}

// VoidAntiform is the ~()~ void antiform: a heart-less "no value"
// result, carried as its own dedicated heart (HeartVoid) so that
// ordinary datatype specs never accidentally match it, matching the
// opt-out-by-default edge case of spec.md §4.6.
func VoidAntiform() Cell {
	return Cell{header: baseCellMask, heart: HeartVoid, lift: LiftAntiform}
}

// TrashQuasiform is the invalid-but-writable sentinel ~ ~ used as a
// placeholder in not-yet-set slots.
func TrashQuasiform() Cell {
	return Cell{header: baseCellMask, heart: HeartSpace, lift: LiftQuasi}
}

// IsNull reports whether c is the ~null~ antiform.
func (c *Cell) IsNull() bool {
	return c.lift == LiftAntiform && c.heart == HeartWord && c.AsSymbol() == symNull
}

// IsVoid reports whether c is the ~()~ void antiform.
func (c *Cell) IsVoid() bool { return c.lift == LiftAntiform && c.heart == HeartVoid }

// IsLogicAntiform reports whether c is a true/false logic antiform,
// and if so, its boolean value.
func (c *Cell) IsLogicAntiform() (value, ok bool) {
	if c.lift != LiftAntiform || c.heart != HeartWord {
		return false, false
	}
	switch c.AsSymbol() {
	case symTrue:
		return true, true
	case symFalse:
		return false, true
	default:
		return false, false
	}
}

// NewPack builds a pack antiform: a multi-value return represented as
// a block antiform (glossary: "Pack").
func NewPack(items []Cell) Cell {
	p := NewBlock(items)
	p.lift = LiftAntiform
	return p
}

// IsPack reports whether c is a pack antiform.
func (c *Cell) IsPack() bool { return c.lift == LiftAntiform && c.heart == HeartBlock }

// unstableHearts is the subset of antiform hearts spec.md §4.7 treats
// as "unstable": a caller demanding a stable value must reject or
// decay them.
var unstableHearts = map[Heart]bool{
	HeartBlock: true, // pack
	HeartError: true, // raised error antiform
	HeartComma: true, // barrier/comma antiform
}

// IsUnstable reports whether c is an antiform of one of the unstable
// hearts (pack, error, barrier), per spec.md §4.7.
func (c *Cell) IsUnstable() bool {
	return c.lift == LiftAntiform && unstableHearts[c.heart]
}

// Quasi lifts a plain cell one step into its surface quasiform, or
// panics if heart is not quasi-legal (spec.md §3.1 invariant).
func Quasi(c Cell) Cell {
	if !quasiLegalHearts[c.heart] {
		panic("langlang: heart " + c.heart.String() + " is not quasi-legal")
	}
	c.lift = LiftQuasi
	return c
}

// Unlift drops one level of Quasi/Antiform lifting, returning the
// plain cell underneath. Quoted cells decrement their depth by one
// instead, becoming plain once depth reaches zero.
func Unlift(c Cell) Cell {
	switch {
	case c.lift.IsQuoted():
		if d := c.lift.QuoteDepth(); d > 1 {
			c.lift = QuotedLift(d - 1)
		} else {
			c.lift = LiftPlain
		}
		return c
	case c.lift == LiftQuasi || c.lift == LiftAntiform:
		c.lift = LiftPlain
		return c
	default:
		return c
	}
}

// Relift re-applies the lift that Unlift most recently removed, given
// the original lift kind. Used by coerce.go's meta-parameter handling
// (spec.md §4.7 rule 1: "Re-lift before returning regardless of outcome").
func Relift(c Cell, lift Lift) Cell {
	c.lift = lift
	return c
}

// Quote wraps c one level deeper in quotation.
func Quote(c Cell) Cell {
	if c.lift.IsQuoted() {
		c.lift = QuotedLift(c.lift.QuoteDepth() + 1)
	} else {
		c.lift = QuotedLift(1)
	}
	return c
}

// StructurallyEqual implements the structural-equality comparator
// spec.md §4.6 requires for quoted-literal ('X) spec matching. It is
// intentionally shallow-but-recursive rather than going through the
// (out of scope, §6) generic per-datatype comparator table.
func StructurallyEqual(a, b Cell) bool {
	if a.heart != b.heart || a.lift != b.lift || a.sigil != b.sigil {
		return false
	}
	switch a.heart {
	case HeartInteger:
		return a.AsInteger() == b.AsInteger()
	case HeartText:
		return a.AsText() == b.AsText()
	case HeartWord:
		return a.AsSymbol() == b.AsSymbol()
	case HeartBlock, HeartGroup:
		ai, bi := a.Items(), b.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !StructurallyEqual(ai[i], bi[i]) {
				return false
			}
		}
		return true
	default:
		return a.payload == b.payload && a.extra == b.extra
	}
}
