package langlang

// boot.go builds, once at process init, the handful of well-known
// interned symbols and the error-message-template catalog the rest of
// the core relies on. Grounded on the teacher's
// grammar_parser_bootstrap.go pattern: a small table built once from
// an embedded description, rather than computed lazily per call.

var (
	symID      *Symbol
	symType    *Symbol
	symMessage *Symbol
	symWhere   *Symbol
	symNear    *Symbol
	symFile    *Symbol
	symLine    *Symbol

	symNull  *Symbol
	symTrue  *Symbol
	symFalse *Symbol
)

// errBootReady is false until boot() has built the error catalog. A
// Fail before it flips true is a bootstrap error (spec.md §7, fatal).
var errBootReady bool

// errTemplate is one entry of the boot-time message-template catalog
// (spec.md §4.4 entry point 1). Placeholder holds the get-word symbols
// that must be consumed, in order, from the variadic argument list.
type errTemplate struct {
	category     string
	id           string
	placeholders []string
	text         string // human-readable template with {N} standing for placeholders[N]
}

var errCatalog map[string]map[string]errTemplate

// builtinErrorDescriptions is the "errors description" spec.md §4.4
// says the boot table is built from — a flat list rather than a
// nested structure, mirroring how grammar_parser_bootstrap.go builds
// its own boot table from a flat slice of rules.
var builtinErrorDescriptions = []errTemplate{
	{category: "script", id: "no-value", placeholders: []string{"arg"}, text: "{0} has no value"},
	{category: "script", id: "bad-value", placeholders: []string{"arg"}, text: "invalid value: {0}"},
	{category: "script", id: "invalid-arg", placeholders: []string{"arg"}, text: "invalid argument: {0}"},
	{category: "script", id: "expect-arg", placeholders: []string{"label", "arg"}, text: "{0} expected {1} to have a compatible type"},
	{category: "script", id: "no-catch", placeholders: []string{"name"}, text: "no loop to {0}"},
	{category: "script", id: "protected-word", placeholders: []string{"arg"}, text: "{0} is protected"},
	{category: "script", id: "illegal-action", placeholders: []string{"action", "arg"}, text: "cannot use {0} on {1}"},
	{category: "script", id: "bad-return-type", placeholders: []string{"arg"}, text: "invalid return type for {0}"},
	{category: "internal", id: "out-of-memory", placeholders: nil, text: "out of memory"},
	{category: "internal", id: "stack-overflow", placeholders: nil, text: "stack overflow"},
	{category: "internal", id: "halt", placeholders: nil, text: "halted"},
	{category: "internal", id: "corrupt-cell", placeholders: []string{"detail"}, text: "corrupt cell: {0}"},
	{category: "internal", id: "no-rescue-scope", placeholders: nil, text: "fail with no active rescue scope"},
}

func boot() {
	symID = InternString("id")
	symType = InternString("type")
	symMessage = InternString("message")
	symWhere = InternString("where")
	symNear = InternString("near")
	symFile = InternString("file")
	symLine = InternString("line")

	symNull = InternString("null")
	symNull.id = 1
	symTrue = InternString("true")
	symTrue.id = 2
	symFalse = InternString("false")
	symFalse.id = 3

	errCatalog = make(map[string]map[string]errTemplate, 8)
	for _, d := range builtinErrorDescriptions {
		byID, ok := errCatalog[d.category]
		if !ok {
			byID = make(map[string]errTemplate, 8)
			errCatalog[d.category] = byID
		}
		byID[d.id] = d
	}

	bootPreallocatedErrors()
	errBootReady = true
}

func init() { boot() }

// ErrorCatalogReady reports whether the boot-time error catalog has
// finished building. Exposed for diagnostic tooling (cmd/langlang).
func ErrorCatalogReady() bool { return errBootReady }
