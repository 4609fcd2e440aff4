package langlang

import "bytes"

// This file implements the Failure Scope (spec.md §4.5, §5): the
// abrupt, nonlocal `fail` escape discipline, distinguished from the
// ordinary thrown-value mechanic (not implemented in this package),
// plus the four LIFO
// resource stacks a RescueScope snapshots and truncates.
//
// Grounded on the teacher's own nonlocal-escape discipline: vm.go's
// `fail:` label unwinds vm.stack frame-by-frame exactly like a rescue
// scope unwinds levels, and vm_stack.go's LIFO push/pop is the same
// snapshot-truncate shape used here for the resource stacks. Go's
// panic/recover stands in for the source's setjmp/longjmp, per
// spec.md §9's explicit guidance to use the host language's unwinding
// primitive paired with explicit scope guards.

// ---- Data stack (spec.md §5) ----

var dataStack []Cell

// PushData pushes c onto the evaluator's data stack.
func PushData(c Cell) { dataStack = append(dataStack, c) }

// DropData pops and returns the top of the data stack.
func DropData() Cell {
	n := len(dataStack)
	if n == 0 {
		Fail("langlang: data stack underflow")
		return Cell{}
	}
	c := dataStack[n-1]
	dataStack = dataStack[:n-1]
	return c
}

// DataStackLen returns the current data stack depth.
func DataStackLen() int { return len(dataStack) }

func truncateData(n int) {
	if n > len(dataStack) {
		panic("langlang: invariant violation — data stack shorter than snapshot")
	}
	dataStack = dataStack[:n]
}

// ---- Mold buffer (spec.md §5) ----

var (
	moldBuffer bytes.Buffer
	moldStack  []int
)

// PushMold records the current mold buffer length, for a nested mold
// call to later pop back to.
func PushMold() { moldStack = append(moldStack, moldBuffer.Len()) }

// PopMold truncates the mold buffer back to its most recently pushed
// length and returns the text molded since.
func PopMold() string {
	n := len(moldStack)
	if n == 0 {
		Fail("langlang: mold stack underflow")
		return ""
	}
	mark := moldStack[n-1]
	moldStack = moldStack[:n-1]
	text := moldBuffer.String()[mark:]
	moldBuffer.Truncate(mark)
	return text
}

func moldBufferLen() int { return moldBuffer.Len() }
func moldStackLen() int  { return len(moldStack) }

func truncateMold(bufLen, stackLen int) {
	if bufLen > moldBuffer.Len() || stackLen > len(moldStack) {
		panic("langlang: invariant violation — mold buffer shorter than snapshot")
	}
	moldBuffer.Truncate(bufLen)
	moldStack = moldStack[:stackLen]
}

// ---- Rescue scope (spec.md §4.5) ----

// snapshot captures every LIFO resource stack's length, plus the
// topmost level, at a RescueScope's entry.
type snapshot struct {
	dataLen    int
	guardedLen int
	manualsLen int
	moldLen    int
	moldStkLen int
	level      *Level
}

func takeSnapshot() snapshot {
	return snapshot{
		dataLen:    DataStackLen(),
		guardedLen: guardedLen(),
		manualsLen: manualsLen(),
		moldLen:    moldBufferLen(),
		moldStkLen: moldStackLen(),
		level:      topLevel,
	}
}

// RescueScope is a dynamic region within which Fail is caught and
// delivered as a value (glossary: "Rescue scope").
type RescueScope struct {
	parent *RescueScope
	snap   snapshot
}

var currentScope *RescueScope

// failSignal is the payload panic()ed by Fail/Halt; it is never
// observed by user code, only by the matching Rescue's recover.
type failSignal struct {
	err    *ScriptError
	isHalt bool
}

// inUnwind guards against a fail raised while a RescueScope is itself
// unwinding — spec.md §4.5: "A fail raised during abrupt-failure
// handling is a fatal invariant violation."
var inUnwind bool

// Outcome is what a Rescue call reports: either body ran to
// completion (Err == nil), or it failed/halted.
type Outcome struct {
	Err    *ScriptError
	Halted bool
}

// Reraise propagates o's failure to the next enclosing RescueScope. A
// handler that does not want to swallow a HALT (spec.md §5
// cancellation, scenario S6) calls this.
func (o *Outcome) Reraise() {
	if o.Err == nil {
		return
	}
	panic(&failSignal{err: o.Err, isHalt: o.Halted})
}

// Rescue establishes a rescue scope, runs body, and reports how it
// finished. On abrupt failure, every level above the snapshot is
// dropped (and, if it owned a Varlist from an in-progress action
// dispatch, that Varlist is marked FAILED), then the four resource
// stacks are truncated to their snapshotted lengths, matching spec.md
// §4.5 steps 1-5.
func Rescue(body func()) (outcome Outcome) {
	if inUnwind {
		panic("langlang: fail raised during abrupt-failure handling (fatal)")
	}

	snap := takeSnapshot()
	scope := &RescueScope{parent: currentScope, snap: snap}
	prevScope := currentScope
	currentScope = scope

	defer func() {
		currentScope = prevScope
		r := recover()
		if r == nil {
			return
		}
		fs, ok := r.(*failSignal)
		if !ok {
			panic(r) // not ours: a genuine Go panic, never swallowed
		}
		unwind(scope)
		outcome = Outcome{Err: fs.err, Halted: fs.isHalt}
	}()

	body()
	return Outcome{}
}

// unwind performs spec.md §4.5 step 4: drop every level above the
// snapshot, then truncate every LIFO resource stack.
func unwind(scope *RescueScope) {
	inUnwind = true
	defer func() { inUnwind = false }()

	for l := topLevel; l != nil && l != scope.snap.level; l = l.prior {
		l.dropLevel()
	}
	topLevel = scope.snap.level

	truncateData(scope.snap.dataLen)
	truncateGuarded(scope.snap.guardedLen)
	truncateManuals(scope.snap.manualsLen)
	truncateMold(scope.snap.moldLen, scope.snap.moldStkLen)
}

// Fail raises an abrupt failure to the nearest enclosing RescueScope.
// The polymorphic entry point accepts a string (wrapped as a user
// error), a *ScriptError (used as-is), a *Varlist (wrapped via
// NewErrorFromVarlist), or any other value (a generic bad-value
// error describing it) — spec.md §4.5's "polymorphic entry point".
//
// A Fail with no active rescue scope, or before the error subsystem
// is initialized, is fatal (spec.md §4.5, §7 "Bootstrap errors").
func Fail(x any) {
	if inUnwind {
		panic("langlang: fail raised during abrupt-failure handling (fatal)")
	}
	if currentScope == nil {
		panic("langlang: fail with no active rescue scope (fatal)")
	}
	panic(&failSignal{err: errorFromAny(x)})
}

// Halt raises the special HALT signal (spec.md §5 "Cancellation"): an
// abrupt failure with a distinguished error id. The enclosing Rescue
// reports it with Outcome.Halted set; it travels no further unless
// that handler re-raises it via Outcome.Reraise.
func Halt() {
	if currentScope == nil {
		panic("langlang: halt with no active rescue scope (fatal)")
	}
	panic(&failSignal{err: haltError, isHalt: true})
}

func errorFromAny(x any) *ScriptError {
	switch v := x.(type) {
	case *ScriptError:
		return v
	case *Varlist:
		return NewErrorFromVarlist(v)
	case string:
		return NewErrorFromText(v)
	case error:
		return NewErrorFromText(v.Error())
	case Cell:
		return NewErrorFromCategory("script", "bad-value", v)
	default:
		return NewErrorFromText("bad value")
	}
}

// CurrentRescueDepth reports how many RescueScopes are nested right
// now; used by tests to assert S6's nesting shape (A ⊃ B).
func CurrentRescueDepth() int {
	n := 0
	for s := currentScope; s != nil; s = s.parent {
		n++
	}
	return n
}
