// Package-level Error Record (spec.md §3.5, §4.4). A ScriptError wraps
// a Varlist whose keylist begins with the fixed prefix id/type/message/
// where/near/file/line, followed by parameter slots named after the
// message template's placeholders.
//
// Grounded on the teacher's own two hand-rolled error shapes,
// ParsingError and backtrackingError (both "a small struct implementing
// `error`, formatted as `%s @ %s`"), generalized from a single flat
// message+span pair into the spec's fixed-shape record with a
// backtrace and a parameterized message template.
package langlang

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/clarete/langlang/go/ascii"
)

// ScriptError is spec.md §3.5's Error Record.
type ScriptError struct {
	vars *Varlist
}

// probeFailures mirrors the R3_PROBE_FAILURES environment variable
// (spec.md §6): when set and non-zero, every constructed ScriptError
// is printed immediately, with recursion suppressed.
var (
	probeFailures   bool
	probingFailures bool
)

func init() {
	if v := os.Getenv("R3_PROBE_FAILURES"); v != "" && v != "0" {
		probeFailures = true
	}
}

var (
	oomError   *ScriptError
	stackError *ScriptError
	haltError  *ScriptError
)

// bootPreallocatedErrors builds the OOM/stack-overflow/halt singletons
// once at boot (spec.md §4.4: "allocating at failure time is unsafe").
func bootPreallocatedErrors() {
	oomError = newRawError("internal", "out-of-memory", "out of memory")
	stackError = newRawError("internal", "stack-overflow", "stack overflow")
	haltError = newRawError("internal", "halt", "halted")
}

func newRawError(category, id, message string) *ScriptError {
	v := NewVarlist(ContextError, 7)
	v.Append(symID, NewWord(InternString(id)))
	v.Append(symType, NewWord(InternString(category)))
	v.Append(symMessage, NewText(message))
	v.Append(symWhere, NewBlock(nil))
	v.Append(symNear, NewText(""))
	v.Append(symFile, NewText(""))
	v.Append(symLine, NewInteger(0))
	return &ScriptError{vars: v}
}

// NewErrorFromCategory is spec.md §4.4 entry point 1: category + id +
// variadic args, looked up in the boot-time message-template catalog.
// The number of get-word placeholders in the template determines how
// many args are consumed (testable property 7).
func NewErrorFromCategory(category, id string, args ...Cell) *ScriptError {
	if !errBootReady {
		panic("langlang: error() called before the error catalog finished booting")
	}
	byID, ok := errCatalog[category]
	if !ok {
		Fail(fmt.Sprintf("langlang: unknown error category %q", category))
		return nil
	}
	tmpl, ok := byID[id]
	if !ok {
		Fail(fmt.Sprintf("langlang: unknown error id %q in category %q", id, category))
		return nil
	}
	if len(args) != len(tmpl.placeholders) {
		Fail(fmt.Sprintf(
			"langlang: error %s/%s expects %d argument(s), got %d",
			category, id, len(tmpl.placeholders), len(args)))
		return nil
	}

	v := NewVarlist(ContextError, 7+len(args))
	v.Append(symID, NewWord(InternString(id)))
	v.Append(symType, NewWord(InternString(category)))
	msg := tmpl.text
	for i, arg := range args {
		msg = strings.ReplaceAll(msg, "{"+strconv.Itoa(i)+"}", moldCellInline(arg))
	}
	v.Append(symMessage, NewText(msg))
	v.Append(symWhere, NewBlock(nil))
	v.Append(symNear, NewText(""))
	v.Append(symFile, NewText(""))
	v.Append(symLine, NewInteger(0))
	for i, ph := range tmpl.placeholders {
		v.Append(InternString(ph), args[i])
	}
	e := &ScriptError{vars: v}
	probe(e)
	return e
}

// NewErrorFromText is spec.md §4.4 entry point 2: a plain string
// becomes the message; id and type are left null. Equivalent to the
// user-level `make error! "text"`.
func NewErrorFromText(text string) *ScriptError {
	v := NewVarlist(ContextError, 7)
	v.Append(symID, NullAntiform())
	v.Append(symType, NullAntiform())
	v.Append(symMessage, NewText(text))
	v.Append(symWhere, NewBlock(nil))
	v.Append(symNear, NewText(""))
	v.Append(symFile, NewText(""))
	v.Append(symLine, NewInteger(0))
	e := &ScriptError{vars: v}
	probe(e)
	return e
}

// NewErrorFromVarlist is spec.md §4.4 entry point 3: an existing
// Varlist is used as-is, merged onto the standard error template.
// WHERE/NEAR are left for Set_Location_Of_Error to overwrite.
func NewErrorFromVarlist(src *Varlist) *ScriptError {
	if src.Heart() != ContextError {
		Fail("langlang: make error! requires an error-shaped context")
		return nil
	}
	e := &ScriptError{vars: src}
	probe(e)
	return e
}

func probe(e *ScriptError) {
	if !probeFailures || probingFailures {
		return
	}
	probingFailures = true
	defer func() { probingFailures = false }()
	fmt.Fprintln(os.Stderr, MoldError(e))
}

func (e *ScriptError) field(sym *Symbol) Cell {
	c, ok := e.vars.Get(sym)
	if !ok {
		return NullAntiform()
	}
	return *c
}

// ID returns the error's `id` field as a string, or "" if null.
func (e *ScriptError) ID() string {
	c := e.field(symID)
	if c.IsNull() {
		return ""
	}
	if sym := c.AsSymbol(); sym != nil {
		return sym.Name()
	}
	return ""
}

// Type returns the error's `type` (category) field as a string, or ""
// if null.
func (e *ScriptError) Type() string {
	c := e.field(symType)
	if c.IsNull() {
		return ""
	}
	if sym := c.AsSymbol(); sym != nil {
		return sym.Name()
	}
	return ""
}

// Message renders the error's message field: either plain text, or (if
// a block of text/get-word pairs) the rendered template.
func (e *ScriptError) Message() string {
	c := e.field(symMessage)
	if c.Heart() == HeartText {
		return c.AsText()
	}
	return renderMessageBlock(c, e.vars)
}

func renderMessageBlock(block Cell, params *Varlist) string {
	var b strings.Builder
	for i, item := range block.Items() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if sym := item.AsSymbol(); item.Heart() == HeartWord && sym != nil {
			if val, ok := params.Get(sym); ok {
				b.WriteString(moldCellInline(*val))
				continue
			}
		}
		b.WriteString(item.AsText())
	}
	return b.String()
}

func moldCellInline(c Cell) string {
	switch c.Heart() {
	case HeartText:
		return c.AsText()
	case HeartInteger:
		return strconv.FormatInt(c.AsInteger(), 10)
	case HeartWord:
		if sym := c.AsSymbol(); sym != nil {
			return sym.Name()
		}
		return "?word?"
	default:
		return c.Heart().String()
	}
}

// Vars exposes the backing Varlist, e.g. for typecheck/coerce code
// that needs to inspect additional parameter slots.
func (e *ScriptError) Vars() *Varlist { return e.vars }

func (e *ScriptError) Error() string {
	where := e.field(symWhere)
	nearCell := e.field(symNear)
	near := nearCell.AsText()
	label :=strings.Join(moldWhere(where), " -> ")
	if label == "" {
		return e.Message()
	}
	return fmt.Sprintf("%s @ %s [%s]", e.Message(), label, near)
}

func moldWhere(where Cell) []string {
	items := where.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, moldCellInline(it))
	}
	return out
}

// Set_Location_Of_Error walks the level chain from top downward,
// filling WHERE/NEAR/FILE/LINE (spec.md §4.4).
func Set_Location_Of_Error(e *ScriptError, top *Level) {
	var labels []Cell
	var near string
	var file string
	var line int64

	for l := top; l != nil; l = l.prior {
		label := l.executor
		if l.fulfilling {
			label = "[" + label + "]" // fence marker for in-progress arg gathering
		}
		if l.intrinsic != "" {
			label = l.intrinsic
		}
		if label != "" {
			labels = append(labels, NewText(label))
		}
		if near == "" && l.sourceIndex != nil {
			near = l.sourceIndex.Excerpt(l.sourceRange)
			line = int64(l.sourceIndex.LocationAt(l.sourceRange.Start).Line)
		}
		if file == "" && l.fileSym != nil {
			file = l.fileSym.Name()
		}
	}

	e.vars.Set(symWhere, NewBlock(labels))
	e.vars.Set(symNear, NewText(near))
	e.vars.Set(symFile, NewText(file))
	e.vars.Set(symLine, NewInteger(line))
}

// MoldError renders e in the §7 user-visible format. Fields absent
// from the record are omitted.
func MoldError(e *ScriptError) (out string) {
	if e == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			// A fail during mold of an error produces a shorter
			// fallback rather than recursing into a second error
			// mold (spec.md §9 open question, decided in
			// SPEC_FULL.md §5).
			out = fmt.Sprintf("** Error: %v (could not be fully molded)", r)
		}
	}()
	var b strings.Builder
	typ := e.Type()
	if typ == "" {
		typ = "Error"
	} else {
		typ = strings.ToUpper(typ[:1]) + typ[1:] + " Error"
	}
	fmt.Fprintf(&b, "** %s: %s\n", typ, e.Message())
	if where := moldWhere(e.field(symWhere)); len(where) > 0 {
		fmt.Fprintf(&b, "** Where: %s\n", strings.Join(where, " "))
	}
	if near := e.field(symNear); near.AsText() != "" {
		fmt.Fprintf(&b, "** Near: %s\n", near.AsText())
	}
	if file := e.field(symFile); file.AsText() != "" {
		fmt.Fprintf(&b, "** File: %s\n", file.AsText())
	}
	if line := e.field(symLine); line.AsInteger() != 0 {
		fmt.Fprintf(&b, "** Line: %d\n", line.AsInteger())
	}
	return strings.TrimRight(b.String(), "\n")
}

// MoldErrorColored renders e exactly as MoldError does, with the
// "** Type Error:" / "** Where:" / etc. labels painted per
// ascii.DefaultTheme — for terminal-facing diagnostics (cmd/langlang).
func MoldErrorColored(e *ScriptError) string {
	plain := MoldError(e)
	lines := strings.Split(plain, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, ":"); idx != -1 && strings.HasPrefix(line, "**") {
			lines[i] = ascii.Color(ascii.DefaultTheme.Error, "%s", line[:idx+1]) + line[idx+1:]
		}
	}
	return strings.Join(lines, "\n")
}
