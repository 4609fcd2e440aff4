package langlang

import "fmt"

// Heart is the structural type identity of a value, independent of
// quote/quasi/antiform lifting. The zero value, HeartExtension, is
// reserved for user-defined datatypes identified by the cell's
// ExtraHeart pointer (a field of its own, beside the Extra slot)
// instead of by this byte.
type Heart byte

const (
	HeartExtension Heart = iota // heart=0: user-defined, see Cell.ExtraHeart
	HeartWord
	HeartBlock
	HeartGroup
	HeartTuple
	HeartPath
	HeartInteger
	HeartDecimal
	HeartText
	HeartTag
	HeartLogic
	HeartAction
	HeartError
	HeartObject
	HeartFrame
	HeartModule
	HeartSpace
	HeartComma
	HeartVoid
	heartCount
)

var heartNames = map[Heart]string{
	HeartExtension: "extension!",
	HeartWord:      "word!",
	HeartBlock:     "block!",
	HeartGroup:     "group!",
	HeartTuple:     "tuple!",
	HeartPath:      "path!",
	HeartInteger:   "integer!",
	HeartDecimal:   "decimal!",
	HeartText:      "text!",
	HeartTag:       "tag!",
	HeartLogic:     "logic!",
	HeartAction:    "action!",
	HeartError:     "error!",
	HeartObject:    "object!",
	HeartFrame:     "frame!",
	HeartModule:    "module!",
	HeartSpace:     "space!",
	HeartComma:     "comma!",
	HeartVoid:      "void!",
}

func (h Heart) String() string {
	if n, ok := heartNames[h]; ok {
		return n
	}
	return fmt.Sprintf("heart(%d)", byte(h))
}

// isotopicHearts is the restricted subset of hearts legal as the heart
// of an antiform cell (spec.md §3.1 invariant: "Antiform + heart must
// be from a restricted subset").
var isotopicHearts = map[Heart]bool{
	HeartWord:   true, // ~true~ / ~false~ / ~null~
	HeartAction: true, // action-antiform ("activated" function)
	HeartError:  true, // raised-but-not-yet-failed error antiform
	HeartBlock:  true, // splice / pack antiform
	HeartLogic:  true, // okay antiform
	HeartVoid:   true,
	HeartComma:  true, // barrier/comma antiform
	HeartSpace:  true, // trash
}

// quasiLegalHearts restricts which hearts may appear under a quasiform
// lift, mirroring isotopicHearts per spec.md §3.1.
var quasiLegalHearts = isotopicHearts

// Sigil is a 2-bit ornament on a cell orthogonal to heart and lift.
type Sigil byte

const (
	SigilNone Sigil = iota
	SigilMeta
	SigilPin
	SigilTie
)

func (s Sigil) String() string {
	switch s {
	case SigilMeta:
		return "meta"
	case SigilPin:
		return "pin"
	case SigilTie:
		return "tie"
	default:
		return "none"
	}
}

// Lift selects one of the four forms layered over every heart.
type Lift byte

const (
	_            Lift = iota // 0 is not a valid lift; an erased cell has no lift
	LiftAntiform             // unstable, evaluation-only result form
	LiftPlain                // the ordinary, "noquote" form
	LiftQuasi                // surface literal, evaluates to the antiform
	liftQuotedBase
)

// QuotedLift returns the Lift byte for an N-level quotation, mirroring
// the source's "LIFT_BYTE - 3 == depth" encoding.
func QuotedLift(depth int) Lift {
	if depth < 1 {
		panic("langlang: quote depth must be >= 1")
	}
	return Lift(int(liftQuotedBase) + depth - 1)
}

// IsQuoted reports whether l is a quoted lift (depth >= 1).
func (l Lift) IsQuoted() bool { return l >= liftQuotedBase }

// QuoteDepth returns l's quote depth, or 0 if l is not quoted.
func (l Lift) QuoteDepth() int {
	if !l.IsQuoted() {
		return 0
	}
	return int(l-liftQuotedBase) + 1
}

func (l Lift) String() string {
	switch {
	case l == LiftAntiform:
		return "antiform"
	case l == LiftPlain:
		return "plain"
	case l == LiftQuasi:
		return "quasiform"
	case l.IsQuoted():
		return fmt.Sprintf("quoted(%d)", l.QuoteDepth())
	default:
		return "erased"
	}
}

// headerFlags is the cell's header bit field (spec.md §3.1, §4.1).
type headerFlags uint16

const (
	flagBase headerFlags = 1 << iota
	flagCell
	flagUnreadable
	flagProtected
	flagRoot
	flagManaged
	flagMarked
	flagNoMarkExtra
	flagNoMarkPayload0
	flagNoMarkPayload1
	flagCrumb0
	flagCrumb1
)

const (
	baseCellMask    = flagBase | flagCell
	persistenceMask = flagRoot | flagManaged | flagMarked
	noMarkMask      = flagNoMarkExtra | flagNoMarkPayload0 | flagNoMarkPayload1
	crumbMask       = flagCrumb0 | flagCrumb1
	// copyMask is the set of header bits a Copy carries over from the
	// source cell. Persistence, protection, and the unreadable bit are
	// excluded: the destination's persistence bits survive instead,
	// and a copied cell is always readable/writable.
	copyMask = baseCellMask | noMarkMask | crumbMask
)

// CellSlot is one Extra or Payload slot: either a pointer into the
// Stub pool that the GC must follow, or inert bits.
type CellSlot struct {
	Stub *Stub
	Bits uint64
}

// Cell is the fixed-size polymorphic value record (spec.md §3.1).
type Cell struct {
	header     headerFlags
	heart      Heart
	sigil      Sigil
	lift       Lift
	extraHeart *Stub // valid only when heart == HeartExtension
	extra      CellSlot
	payload    [2]CellSlot
}

// Heart returns the cell's structural type, ignoring lift and sigil.
func (c *Cell) Heart() Heart { return c.heart }

// Sigil returns the cell's 2-bit ornament.
func (c *Cell) Sigil() Sigil { return c.sigil }

// Lift returns the cell's coarse antiform/plain/quasiform/quoted class.
func (c *Cell) Lift() Lift { return c.lift }

// ExtraHeart returns the identity pointer of a user-defined datatype.
// Only meaningful when Heart() == HeartExtension.
func (c *Cell) ExtraHeart() *Stub { return c.extraHeart }

// Extra returns the cell's Extra slot.
func (c *Cell) Extra() CellSlot { return c.extra }

// Payload returns the cell's two Payload slots.
func (c *Cell) Payload() [2]CellSlot { return c.payload }

// MarkableSlots reports, for each of Extra/Payload0/Payload1, whether
// the GC mark phase must follow it. The mark phase itself is an
// external collaborator (spec.md §6) and is not implemented here.
func (c *Cell) MarkableSlots() (extra, payload0, payload1 bool) {
	return c.header&flagNoMarkExtra == 0,
		c.header&flagNoMarkPayload0 == 0,
		c.header&flagNoMarkPayload1 == 0
}

// ---- Read/Write/Init gating (spec.md §4.1) ----

// IsReadable reports whether c may be read.
func (c *Cell) IsReadable() bool {
	return c.header&baseCellMask == baseCellMask && c.header&flagUnreadable == 0
}

// IsWritable reports whether c may be mutated in place.
func (c *Cell) IsWritable() bool {
	return c.IsReadable() && c.header&flagProtected == 0
}

// IsPoisoned reports whether c is an array guard slot produced by Poison.
func (c *Cell) IsPoisoned() bool {
	return c.header&baseCellMask == baseCellMask &&
		c.header&flagUnreadable != 0 &&
		c.header&flagProtected != 0
}

// IsErased reports whether c is in the distinguished all-zero state.
func (c *Cell) IsErased() bool { return c.header == 0 }

// IsInitable reports whether c may receive new conceptual content via
// Copy/Move. Erased cells and any well-formed, unprotected cell
// (including the write-only "unreadable" sentinel) are initable;
// poisoned and protected cells are not — those require Blit or an
// explicit Unprotect.
func (c *Cell) IsInitable() bool {
	if c.IsErased() {
		return true
	}
	return c.header&baseCellMask == baseCellMask && c.header&flagProtected == 0
}

// ---- Persistence / GC-API metadata ----

func (c *Cell) SetManaged(v bool) { c.setFlag(flagManaged, v) }
func (c *Cell) SetRoot(v bool)    { c.setFlag(flagRoot, v) }
func (c *Cell) SetMarked(v bool)  { c.setFlag(flagMarked, v) }
func (c *Cell) IsManaged() bool   { return c.header&flagManaged != 0 }
func (c *Cell) IsRoot() bool      { return c.header&flagRoot != 0 }
func (c *Cell) IsMarked() bool    { return c.header&flagMarked != 0 }

func (c *Cell) setFlag(f headerFlags, v bool) {
	if v {
		c.header |= f
	} else {
		c.header &^= f
	}
}

// Protect marks c unwritable without affecting readability.
func (c *Cell) Protect() { c.header |= flagProtected }

// Unprotect clears the protection bit.
func (c *Cell) Unprotect() { c.header &^= flagProtected }

// ---- Gated operations (spec.md §4.1) ----

// Erase sets c's header to zero, including its persistence bits. It
// fails (via the failure scope) unless c is erased, poisoned, or
// well-formed.
func (c *Cell) Erase() {
	if !(c.IsErased() || c.IsReadable() || c.IsPoisoned()) {
		Fail(fmt.Sprintf("langlang: erase of corrupt cell header %#04x", c.header))
		return
	}
	*c = Cell{}
}

// ForceErase sets c's header to zero unconditionally, for raw memory
// that carries no prior cell-shaped guarantee.
func (c *Cell) ForceErase() { *c = Cell{} }

// Poison marks c unreadable and unwritable, for array guard slots.
// The destination's persistence bits survive.
func (c *Cell) Poison() {
	persisted := c.header & persistenceMask
	*c = Cell{header: baseCellMask | flagUnreadable | flagProtected | persisted}
}

// InitUnreadable writes a write-only sentinel over c, preserving its
// persistence bits. c must be initable.
func (c *Cell) InitUnreadable() {
	if !c.IsInitable() {
		Fail("langlang: init_unreadable on non-initable cell")
		return
	}
	persisted := c.header & persistenceMask
	*c = Cell{header: baseCellMask | flagUnreadable | persisted}
}

// Copy overwrites dst with src's conceptual contents. src must be
// readable and dst must be initable; dst's persistence bits survive
// the overwrite (spec.md §4.1's persistence mask).
func Copy(dst, src *Cell) {
	if !src.IsReadable() {
		Fail("langlang: copy from unreadable cell")
		return
	}
	if !dst.IsInitable() {
		Fail("langlang: copy into non-initable cell")
		return
	}
	persisted := dst.header & persistenceMask
	newHeader := (src.header & copyMask) | baseCellMask | persisted
	*dst = Cell{
		header:     newHeader,
		heart:      src.heart,
		sigil:      src.sigil,
		lift:       src.lift,
		extraHeart: src.extraHeart,
		extra:      src.extra,
		payload:    src.payload,
	}
}

// Move copies src into dst and then invalidates src by erasing it.
func Move(dst, src *Cell) {
	Copy(dst, src)
	src.Erase()
}

// Blit raw-overwrites dst with src's entire record, including header
// bits. dst must be poisoned or erased — this is the one operation
// that may write over a poisoned guard slot.
func Blit(dst, src *Cell) {
	if !(dst.IsPoisoned() || dst.IsErased()) {
		Fail("langlang: blit into a cell that is neither poisoned nor erased")
		return
	}
	*dst = *src
}

// ---- Value type projection (spec.md §4.2) ----

// Datatype is the externally-visible "type" of a cell, derived from
// its (lift, heart, sigil) per spec.md §4.2.
type Datatype struct {
	Heart      Heart
	Lift       Lift // LiftAntiform | LiftPlain | LiftQuasi | liftQuotedBase
	Sigil      Sigil
	ExtraHeart *Stub
}

func (d Datatype) String() string {
	switch {
	case d.Lift == LiftAntiform && d.Heart == HeartExtension:
		return "extension-antiform"
	case d.Lift == LiftAntiform:
		return "~" + heartNames[d.Heart] + "~"
	case d.Lift == LiftQuasi:
		return "quasiform!"
	case d.Lift.IsQuoted():
		return "quoted!"
	case d.Sigil == SigilMeta:
		return "metaform!"
	case d.Sigil == SigilPin:
		return "pinned!"
	case d.Sigil == SigilTie:
		return "tied!"
	case d.Heart == HeartExtension:
		return "extension!"
	default:
		return d.Heart.String()
	}
}

// Equal reports structural equality of two projected types. Extension
// types compare by ExtraHeart identity, per spec.md §4.2.
func (d Datatype) Equal(o Datatype) bool {
	if d.Heart == HeartExtension && o.Heart == HeartExtension {
		return d.ExtraHeart == o.ExtraHeart && d.Lift == o.Lift
	}
	return d == o
}

// ProjectedType computes c's externally-visible datatype, applying the
// rules of spec.md §4.2 in order.
func ProjectedType(c *Cell) Datatype {
	switch {
	case c.lift == LiftAntiform:
		return Datatype{Heart: c.heart, Lift: LiftAntiform, ExtraHeart: c.extraHeart}
	case c.lift == LiftQuasi:
		return Datatype{Lift: LiftQuasi}
	case c.lift.IsQuoted():
		return Datatype{Lift: liftQuotedBase}
	case c.sigil != SigilNone:
		return Datatype{Sigil: c.sigil, Lift: LiftPlain}
	default:
		return Datatype{Heart: c.heart, Lift: LiftPlain, ExtraHeart: c.extraHeart}
	}
}
