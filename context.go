package langlang

// ContextHeart distinguishes what kind of thing a Varlist's rootvar
// represents (spec.md §3.4: "the heart mark that distinguishes
// object / error / frame / module").
type ContextHeart byte

const (
	ContextObject ContextHeart = iota
	ContextError
	ContextFrame
	ContextModule
)

func (h ContextHeart) String() string {
	switch h {
	case ContextError:
		return "error"
	case ContextFrame:
		return "frame"
	case ContextModule:
		return "module"
	default:
		return "object"
	}
}

// Varlist is an ordered name->slot mapping used for objects, errors,
// and frames (spec.md §3.4). Slot i holds a value cell, and the
// parallel keylist holds the symbol bound to it; slot 0 is the
// rootvar, carrying the archetype and the ContextHeart.
//
// Grounded on the teacher's tree.go side-tables (a node's children
// addressed by parallel index arrays alongside a `strs []string`
// name table), generalized here from positional AST children to
// symbol-keyed slots.
type Varlist struct {
	keylist *Stub
	values  *Stub
	heart   ContextHeart
	failed  bool // set by a RescueScope unwind past a live action dispatch
}

// NewVarlist allocates an empty Varlist of the given ContextHeart with
// room for cap slots (plus the rootvar).
func NewVarlist(heart ContextHeart, cap int) *Varlist {
	keys := make([]*Symbol, 1, cap+1) // slot 0 has no key (archetype)
	vals := make([]Cell, 1, cap+1)
	vals[0] = Cell{header: baseCellMask, heart: HeartObject, lift: LiftPlain}
	return &Varlist{
		keylist: NewKeylistStub(keys),
		values:  NewArrayStub(vals),
		heart:   heart,
	}
}

// Heart reports what kind of context this is.
func (v *Varlist) Heart() ContextHeart { return v.heart }

// Len returns the number of named slots, excluding the rootvar.
func (v *Varlist) Len() int { return len(v.values.cells) - 1 }

// Find performs a linear search for sym, returning its slot index (1
// based, 0 is the rootvar) and whether it was found. spec.md §3.4
// permits either a linear or hashed lookup; linear is chosen here to
// mirror the teacher's own small-map lookups (config.go's map is the
// one exception, used for distinct typed settings rather than ordered
// named slots).
func (v *Varlist) Find(sym *Symbol) (int, bool) {
	for i, k := range v.keylist.keys {
		if k == sym {
			return i, true
		}
	}
	return 0, false
}

// Get returns the value bound to sym, and whether it was found.
func (v *Varlist) Get(sym *Symbol) (*Cell, bool) {
	i, ok := v.Find(sym)
	if !ok {
		return nil, false
	}
	return &v.values.cells[i], true
}

// Set overwrites the value bound to sym, failing if sym is unbound.
func (v *Varlist) Set(sym *Symbol, c Cell) {
	i, ok := v.Find(sym)
	if !ok {
		Fail("langlang: varlist has no slot named " + sym.Name())
		return
	}
	v.values.cells[i] = c
}

// Append binds a new slot named sym to c, returning its index. The
// caller must ensure sym is not already bound (Append does not check:
// the keylist is constructed once at object-creation time in the
// source, and duplicate-key guarding belongs to that construction
// step, out of scope here per spec.md §1).
func (v *Varlist) Append(sym *Symbol, c Cell) int {
	v.keylist.keys = append(v.keylist.keys, sym)
	v.values.cells = append(v.values.cells, c)
	return len(v.values.cells) - 1
}

// KeyAt returns the symbol bound at slot i (0 is the rootvar, whose
// key is nil).
func (v *Varlist) KeyAt(i int) *Symbol {
	if i < 0 || i >= len(v.keylist.keys) {
		return nil
	}
	return v.keylist.keys[i]
}

// ValueAt returns the value cell at slot i.
func (v *Varlist) ValueAt(i int) *Cell { return &v.values.cells[i] }

// Rootvar returns the archetype slot (slot 0).
func (v *Varlist) Rootvar() *Cell { return &v.values.cells[0] }

// MarkFailed flags v as belonging to a dropped action level, so that
// any still-live API handle observes the failure (spec.md §4.5 step
// 4: "mark its varlist FAILED").
func (v *Varlist) MarkFailed() { v.failed = true }

// Failed reports whether MarkFailed was called on v.
func (v *Varlist) Failed() bool { return v.failed }
