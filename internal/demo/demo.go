// Package demo holds the demonstration routines: a fixed ordered registry
// of self-contained examples, each printing deterministic output for fixed
// sample data. Routines share nothing; the only contract is the text they
// write and the order they run in.
package demo

import "io"

// Demo is one demonstration routine. Run writes the routine's fixed
// output lines to w; it holds no state and may be invoked repeatedly.
type Demo struct {
	// Name is the registry key, used by the CLI and harness scenarios.
	Name string

	// Summary is a one-line description for listings.
	Summary string

	// Run executes the routine, writing its output lines to w.
	Run func(w io.Writer) error
}

// Registry returns the demonstration routines in their fixed run order.
// The order is part of the program's output contract; never reorder.
func Registry() []Demo {
	return []Demo{
		{Name: "option-match", Summary: "exhaustive selection over an optional value", Run: runOptionMatch},
		{Name: "fallback-chain", Summary: "conditional checks tried in order with a default", Run: runFallbackChain},
		{Name: "drain-loop", Summary: "pop the last character until the buffer is empty", Run: runDrainLoop},
		{Name: "indexed-iteration", Summary: "iterate characters with their indexes", Run: runIndexedIteration},
		{Name: "tuple-destructure", Summary: "bind a 3-tuple into independent variables", Run: runTupleDestructure},
		{Name: "param-destructure", Summary: "destructure inside a function parameter", Run: runParamDestructure},
		{Name: "literal-match", Summary: "match string literals with a catch-all", Run: runLiteralMatch},
		{Name: "alternation", Summary: "several literals sharing one arm", Run: runAlternation},
		{Name: "char-range", Summary: "range patterns over characters", Run: runCharRange},
		{Name: "record-destructure", Summary: "bind record fields by name", Run: runRecordDestructure},
		{Name: "record-match", Summary: "field-value combinations, first match wins", Run: runRecordMatch},
		{Name: "nested-match", Summary: "outer and inner record fields in one pattern", Run: runNestedMatch},
		{Name: "wildcard-discard", Summary: "discard a value with the placeholder", Run: runWildcardDiscard},
		{Name: "joint-options", Summary: "match a pair of optional values jointly", Run: runJointOptions},
		{Name: "partial-record", Summary: "bind some fields, ignore the rest", Run: runPartialRecord},
		{Name: "first-and-last", Summary: "take the ends of a tuple, skip the middle", Run: runFirstAndLast},
		{Name: "guarded-match", Summary: "guard checked after the structural match", Run: runGuardedMatch},
		{Name: "range-binding", Summary: "bind a field and range-check it in one arm", Run: runRangeBinding},
	}
}

// Lookup finds a registered demo by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range Registry() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Names returns the registry names in run order.
func Names() []string {
	reg := Registry()
	names := make([]string, len(reg))
	for i, d := range reg {
		names[i] = d.Name
	}
	return names
}
