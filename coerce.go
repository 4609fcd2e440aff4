package langlang

// This file implements Argument Coercion (spec.md §4.7): the fixed
// sequence of steps that turns a raw evaluated argument cell into the
// form a parameter's type spec actually sees, before and after
// matching. Grounded on the teacher's grammar_builtin_handler.go
// argument-adaptation shims (coerce a captured value into the shape a
// specific builtin wants before dispatch), generalized here into the
// general parameter-fulfillment rule set.

// CoerceFlags carries the handful of refinement shortcut flags a
// parameter spec may set, each opting a specific "ordinarily
// rejected" input back in without it having to appear literally in
// the type spec block (spec.md §4.7).
type CoerceFlags struct {
	AnyStableOK bool // accept any stable (non-unstable-antiform) value
	AnyAtomOK   bool // accept literally anything, including unstable antiforms
	NullOK      bool // accept ~null~ even if absent from the spec
	VoidOK      bool // accept void even if absent from the spec
	TrashOK     bool // accept ~ ~ (trash quasiform) even if absent
	SpaceOK     bool // accept the space! datatype even if absent
}

// CoerceResult is what CoerceArgument reports back: the (possibly
// transformed) value to bind, and whether it satisfied the spec.
type CoerceResult struct {
	Value Cell
	OK    bool
}

// CoerceArgument runs the full spec.md §4.7 sequence for one parameter:
//
//  1. Meta parameters (sigil == SigilMeta) have their argument unlifted
//     once before matching, and the chosen lift is re-applied to the
//     result regardless of whether the match succeeded or failed —
//     "coercion may happen at most once" (rule 1).
//  2. A plain (non-meta) parameter handed an unstable antiform (pack,
//     raised error, comma/barrier) decays it exactly once: a
//     single-element pack unpacks to its one item, a raised error
//     antiform is escalated via Fail, and a barrier is rejected
//     outright unless AnyAtomOK is set (rule 2).
//  3. An action antiform handed to a parameter whose spec does not
//     itself accept action! is unwrapped by invoking it once through
//     runAction and the result is retried against the spec exactly
//     once — never recursively (rule 3).
//  4. The refinement shortcut flags bypass the spec entirely for a
//     small set of well-known non-values (rule 4).
//
// runAction is supplied by the caller (the dispatch path, once it
// exists) rather than imported directly, keeping this file free of a
// dependency on the not-yet-implemented evaluator trampoline
// (spec.md §6, out of scope).
func CoerceArgument(sigil Sigil, spec ParamSpec, flags CoerceFlags, value Cell, runAction func(Cell) Cell) CoerceResult {
	if ok, res := coerceByShortcut(flags, value); ok {
		return res
	}

	if sigil == SigilMeta {
		return coerceMeta(spec, value)
	}

	if value.IsUnstable() {
		decayed, ok := decayOnce(value)
		if !ok {
			return CoerceResult{Value: value, OK: false}
		}
		value = decayed
	}

	if isActionAntiform(value) && !spec.any.acceptsHeart(HeartAction) {
		if runAction == nil {
			Fail("langlang: action-antiform argument with no dispatch path to unwrap it")
			return CoerceResult{Value: value, OK: false}
		}
		value = runAction(value)
		// Retried exactly once: whatever comes back is matched as-is,
		// even if it is itself an action antiform.
	}

	return CoerceResult{Value: value, OK: spec.Match(value)}
}

// coerceByShortcut implements rule 4: the refinement shortcut flags.
func coerceByShortcut(flags CoerceFlags, value Cell) (handled bool, result CoerceResult) {
	switch {
	case flags.AnyAtomOK:
		return true, CoerceResult{Value: value, OK: true}
	case flags.AnyStableOK && !value.IsUnstable():
		return true, CoerceResult{Value: value, OK: true}
	case flags.NullOK && value.IsNull():
		return true, CoerceResult{Value: value, OK: true}
	case flags.VoidOK && value.IsVoid():
		return true, CoerceResult{Value: value, OK: true}
	case flags.TrashOK && value.Heart() == HeartSpace && value.Lift() == LiftQuasi:
		return true, CoerceResult{Value: value, OK: true}
	case flags.SpaceOK && value.Heart() == HeartSpace && value.Lift() == LiftPlain:
		return true, CoerceResult{Value: value, OK: true}
	default:
		return false, CoerceResult{}
	}
}

// coerceMeta implements rule 1: unlift once, match, re-lift
// unconditionally before returning.
func coerceMeta(spec ParamSpec, value Cell) CoerceResult {
	originalLift := value.Lift()
	unlifted := Unlift(value)
	ok := spec.Match(unlifted)
	return CoerceResult{Value: Relift(unlifted, originalLift), OK: ok}
}

// decayOnce implements rule 2. By the time it runs, CoerceArgument has
// already consulted coerceByShortcut, so AnyAtomOK has already let a
// barrier through — decayOnce only ever sees the AnyAtomOK == false
// case and always rejects comma!. It returns ok == false when the
// unstable value cannot be decayed into anything a plain parameter
// may legally receive, which the caller reports as a failed match
// rather than raising Fail directly — an error antiform is the one
// exception, since a plain parameter receiving one always escalates.
func decayOnce(value Cell) (Cell, bool) {
	switch value.Heart() {
	case HeartBlock: // pack
		items := value.Items()
		if len(items) == 1 {
			return items[0], true
		}
		return value, false
	case HeartError:
		Fail(value) // escalate: a plain parameter never silently absorbs an error antiform
		return value, false
	case HeartComma: // barrier, never reaches here with AnyAtomOK set
		return value, false
	default:
		return value, false
	}
}

func isActionAntiform(c Cell) bool {
	return c.Lift() == LiftAntiform && c.Heart() == HeartAction
}

// acceptsHeart reports whether any alternative of an AnySpec is a
// DatatypeSpec for heart — used by rule 3 to decide whether an action
// antiform needs unwrapping before matching.
func (a AnySpec) acceptsHeart(heart Heart) bool {
	for _, child := range a.children {
		if d, ok := child.(DatatypeSpec); ok && d.heart == heart {
			return true
		}
	}
	return false
}
