package langlang

// Intrinsic Dispatch (spec.md §4.8, C8): a handful of unary predicates
// are fast-pathed past the ordinary call-frame machinery entirely —
// they run against the calling Level's own spare/scratch cells rather
// than pushing a new Level. Grounded on the teacher's vm.go dispatch
// switch: a flat table keyed by opcode/name, invoked directly with no
// intervening frame object, generalized here from VM opcodes to
// predicate actions.

// IntrinsicFn is a frameless predicate body. It receives the calling
// Level (for its spare/scratch cells only — it must not push a Level
// of its own, per spec.md §4.8's defining constraint) and the single
// argument cell, and returns the result to bind to that Level's
// output.
type IntrinsicFn func(l *Level, arg Cell) Cell

var intrinsicRegistry = map[string]IntrinsicFn{}

// RegisterIntrinsic installs fn as the frameless body for name. The
// built-in predicates are registered by this file's init.
func RegisterIntrinsic(name string, fn IntrinsicFn) {
	intrinsicRegistry[name] = fn
}

// CanDispatchAsIntrinsic reports whether name has a registered
// frameless body — the "can-dispatch-as-intrinsic" tag spec.md §4.8
// attaches to qualifying natives.
func CanDispatchAsIntrinsic(name string) bool {
	_, ok := intrinsicRegistry[name]
	return ok
}

// DispatchIntrinsic runs name's frameless body against caller's own
// scratch cell, reusing caller as the Level the result settles into
// rather than pushing a new one. It panics if the body violates the
// no-new-levels constraint — a programming error in the intrinsic
// itself, not a recoverable script failure.
func DispatchIntrinsic(name string, caller *Level, arg Cell) (Cell, bool) {
	fn, ok := intrinsicRegistry[name]
	if !ok {
		return Cell{}, false
	}

	caller.SetIntrinsicLabel(name)
	before := topLevel
	*caller.Scratch() = arg

	result := fn(caller, arg)

	if topLevel != before {
		panic("langlang: intrinsic " + name + " pushed a Level, violating the frameless dispatch contract")
	}
	return result, true
}

func init() {
	RegisterIntrinsic("null?", func(l *Level, arg Cell) Cell {
		return LogicAntiform(arg.IsNull())
	})
	RegisterIntrinsic("void?", func(l *Level, arg Cell) Cell {
		return LogicAntiform(arg.IsVoid())
	})
	RegisterIntrinsic("blank?", func(l *Level, arg Cell) Cell {
		return LogicAntiform(arg.Heart() == HeartSpace && arg.Lift() == LiftPlain)
	})
	RegisterIntrinsic("word?", func(l *Level, arg Cell) Cell {
		return LogicAntiform(arg.Heart() == HeartWord && arg.Lift() == LiftPlain)
	})
	RegisterIntrinsic("quoted?", func(l *Level, arg Cell) Cell {
		return LogicAntiform(arg.Lift().IsQuoted())
	})
}
