package langlang

// This file implements the Type Spec Evaluator (spec.md §4.6): given a
// parameter's type-spec block and a candidate cell, decide whether the
// cell satisfies it. The matcher is a small visitor over spec forms,
// grounded on the teacher's grammar_ast_visitor.go double-dispatch
// shape — one Match method per concrete spec node instead of a single
// sprawling switch.

// TypeSpec is one node of a parsed type specification.
type TypeSpec interface {
	// Match reports whether c satisfies this spec node. The
	// opt-out-by-default void rule is not applied here: ParamSpec.Match
	// applies it once at the top level, consulting allowsVoid so that a
	// nested <void> tag deep inside a match-any block still opts in.
	Match(c Cell) bool

	// allowsVoid reports whether this node, on its own, is a spec that
	// is meant to test a void input (e.g. the <void> tag, or a
	// match-any block containing it).
	allowsVoid() bool
}

// datatypeNames maps the recognized `word!`-style spec tokens onto the
// Heart they test for. Only the plain, non-antiform form is matched;
// antiform acceptance is expressed with a QuasiSpec or PredicateSpec
// instead, per spec.md §4.2's projected-type rules.
var datatypeNames = map[string]Heart{
	"word!":    HeartWord,
	"block!":   HeartBlock,
	"group!":   HeartGroup,
	"tuple!":   HeartTuple,
	"path!":    HeartPath,
	"integer!": HeartInteger,
	"decimal!": HeartDecimal,
	"text!":    HeartText,
	"tag!":     HeartTag,
	"logic!":   HeartLogic,
	"action!":  HeartAction,
	"error!":   HeartError,
	"object!":  HeartObject,
	"frame!":   HeartFrame,
	"module!":  HeartModule,
	"space!":   HeartSpace,
	"comma!":   HeartComma,
}

// DatatypeSpec matches a plain cell of one specific Heart.
type DatatypeSpec struct{ heart Heart }

func (d DatatypeSpec) Match(c Cell) bool {
	return c.Lift() == LiftPlain && c.Heart() == d.heart
}
func (d DatatypeSpec) allowsVoid() bool { return false }

// AnySpec is a match-any group (spec.md §4.6: a block! spec form):
// satisfied if any child spec matches.
type AnySpec struct{ children []TypeSpec }

func (a AnySpec) Match(c Cell) bool {
	for _, child := range a.children {
		if child.Match(c) {
			return true
		}
	}
	return false
}
func (a AnySpec) allowsVoid() bool {
	for _, child := range a.children {
		if child.allowsVoid() {
			return true
		}
	}
	return false
}

// AllSpec is a match-all group (spec.md §4.6: a group! spec form):
// satisfied only if every child spec matches.
type AllSpec struct{ children []TypeSpec }

func (a AllSpec) Match(c Cell) bool {
	for _, child := range a.children {
		if !child.Match(c) {
			return false
		}
	}
	return true
}
func (a AllSpec) allowsVoid() bool {
	for _, child := range a.children {
		if !child.allowsVoid() {
			return false
		}
	}
	return len(a.children) > 0
}

// TagSpec implements the two fixed pseudo-types spec.md §4.6 calls
// out: <null> (matches the ~null~ antiform) and <void> (matches the
// ~()~ antiform, the one way to opt back into accepting a void input).
type TagSpec struct{ name string }

func (t TagSpec) Match(c Cell) bool {
	switch t.name {
	case "null":
		return c.IsNull()
	case "void":
		return c.IsVoid()
	default:
		return false
	}
}
func (t TagSpec) allowsVoid() bool { return t.name == "void" }

// QuasiSpec matches a quasiform cell whose unlifted word equals word —
// e.g. `~null~` as a spec token tests for the *quasiform* (not
// antiform) surface literal.
type QuasiSpec struct{ word *Symbol }

func (q QuasiSpec) Match(c Cell) bool {
	if c.Lift() != LiftQuasi || c.Heart() != HeartWord {
		return false
	}
	return c.AsSymbol() == q.word
}
func (q QuasiSpec) allowsVoid() bool { return false }

// PackSpec matches a pack antiform (spec.md glossary "Pack") whose
// slots pairwise satisfy per-slot specs, written `~[T1 T2]~`.
type PackSpec struct{ slots []TypeSpec }

func (p PackSpec) Match(c Cell) bool {
	if !c.IsPack() {
		return false
	}
	items := c.Items()
	if len(items) != len(p.slots) {
		return false
	}
	for i, slot := range p.slots {
		if !slot.Match(items[i]) {
			return false
		}
	}
	return true
}
func (p PackSpec) allowsVoid() bool { return false }

// QuotedSpec matches a quoted cell whose unwrapped value is
// structurally equal to literal — the `'X` literal-match spec form.
type QuotedSpec struct{ literal Cell }

func (q QuotedSpec) Match(c Cell) bool {
	if !c.Lift().IsQuoted() {
		return false
	}
	return StructurallyEqual(Unlift(c), q.literal)
}
func (q QuotedSpec) allowsVoid() bool { return false }

// PredicateSpec matches via an arbitrary Go predicate function — the
// `&predicate` spec form, used for intrinsic-dispatchable tests like
// `&blank?` (spec.md §4.8's "can-dispatch-as-intrinsic" predicates are
// exactly this shape).
type PredicateSpec struct {
	name string
	fn   func(Cell) bool
}

func (p PredicateSpec) Match(c Cell) bool { return p.fn(c) }
func (p PredicateSpec) allowsVoid() bool  { return false }

// ParamSpec is the top-level entry point: a parameter's full type
// spec, which is always implicitly a match-any over its listed forms
// (spec.md §4.6: "a parameter's type block is itself a match-any").
type ParamSpec struct {
	any AnySpec
}

// NewParamSpec builds a ParamSpec from the already-parsed list of
// alternative forms.
func NewParamSpec(alternatives []TypeSpec) ParamSpec {
	return ParamSpec{any: AnySpec{children: alternatives}}
}

// Match implements spec.md §4.6's full rule, including the
// opt-out-by-default void edge case: a void input cell is rejected
// unless the spec explicitly lists <void> (directly, or nested inside
// a match-any/match-all alternative).
func (p ParamSpec) Match(c Cell) bool {
	if c.IsVoid() && !p.any.allowsVoid() {
		return false
	}
	return p.any.Match(c)
}

// ParseTypeSpecBlock builds a ParamSpec by walking the cells of a
// block! spec (each element already evaluated into spec-form shape).
// Each element becomes one alternative of the top-level match-any.
//
// binding resolves spec.md §4.6's sixth spec form — a plain word!
// token that is neither a recognized datatype name nor a quasiform:
// "look up in binding; treat result as spec recursively" (e.g. a spec
// block containing `my-integer-alias`, where that word is bound
// elsewhere to `[integer! decimal!]`). Pass nil when the spec block is
// known to carry no such aliases.
func ParseTypeSpecBlock(items []Cell, binding *Varlist) ParamSpec {
	return NewParamSpec(parseAll(items, binding))
}

func parseOneSpecForm(item Cell, binding *Varlist) TypeSpec {
	if item.Lift().IsQuoted() {
		return QuotedSpec{literal: Unlift(item)}
	}
	switch item.Heart() {
	case HeartWord:
		sym := item.AsSymbol()
		if sym == nil {
			return DatatypeSpec{}
		}
		if item.Lift() == LiftQuasi {
			return QuasiSpec{word: sym}
		}
		if heart, ok := datatypeNames[sym.Name()]; ok {
			return DatatypeSpec{heart: heart}
		}
		return resolveBoundWordSpec(sym, binding)
	case HeartTag:
		if sym := item.AsSymbol(); sym != nil {
			return TagSpec{name: sym.Name()}
		}
		return TagSpec{}
	case HeartBlock:
		if item.Lift() == LiftQuasi {
			return PackSpec{slots: parseAll(item.Items(), binding)}
		}
		return AnySpec{children: parseAll(item.Items(), binding)}
	case HeartGroup:
		return AllSpec{children: parseAll(item.Items(), binding)}
	default:
		return DatatypeSpec{heart: item.Heart()}
	}
}

func parseAll(items []Cell, binding *Varlist) []TypeSpec {
	out := make([]TypeSpec, 0, len(items))
	for _, it := range items {
		out = append(out, parseOneSpecForm(it, binding))
	}
	return out
}

// resolveBoundWordSpec looks sym up in binding and parses its bound
// value as a spec form in turn, so a type alias resolves exactly like
// writing its definition inline. A word with no binding to resolve
// against, or bound to nothing, is a malformed spec — unlike a
// recognized refinement/parameter-name token (which never reaches
// here, since it appears outside the type-spec portion of a parameter
// description), there is no silent match-anything fallback.
func resolveBoundWordSpec(sym *Symbol, binding *Varlist) TypeSpec {
	if binding == nil {
		Fail("langlang: type spec word " + sym.Name() + " has no binding to resolve")
		return DatatypeSpec{}
	}
	bound, ok := binding.Get(sym)
	if !ok {
		Fail("langlang: type spec word " + sym.Name() + " is unbound")
		return DatatypeSpec{}
	}
	return parseOneSpecForm(*bound, binding)
}
