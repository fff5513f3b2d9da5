package harness

import (
	"fmt"
	"strings"

	"github.com/hferris/matchbook/internal/runner"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string         // Assertion type for categorization
	Expected string         // Human-readable expected outcome
	Actual   string         // Human-readable actual outcome
	Events   []runner.Event // Full transcript for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)

	// Expected vs Actual (most important info)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull transcript:\n")
	for _, event := range e.Events {
		fmt.Fprintf(&buf, "  [%d] %s: %s\n", event.Seq, event.Demo, event.Line)
	}

	return buf.String()
}

// evaluate dispatches an assertion against the transcript.
func evaluate(t *runner.Transcript, assertion Assertion) error {
	switch assertion.Type {
	case AssertOutputContains:
		return assertOutputContains(t, assertion)
	case AssertOutputOrder:
		return assertOutputOrder(t, assertion)
	case AssertLineCount:
		return assertLineCount(t, assertion)
	case AssertOutputExact:
		return assertOutputExact(t, assertion)
	default:
		return fmt.Errorf("unknown assertion type %q", assertion.Type)
	}
}

// assertOutputContains checks that the transcript printed the line.
func assertOutputContains(t *runner.Transcript, assertion Assertion) error {
	for _, line := range t.Lines() {
		if line == assertion.Line {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertOutputContains,
		Expected: fmt.Sprintf("line %q somewhere in the transcript", assertion.Line),
		Actual:   "not found",
		Events:   t.Events,
	}
}

// assertOutputOrder checks that the lines appear in the given order.
// Lines don't need to be consecutive (intervening lines are allowed).
func assertOutputOrder(t *runner.Transcript, assertion Assertion) error {
	lines := t.Lines()
	next := 0
	for _, line := range lines {
		if next < len(assertion.Lines) && line == assertion.Lines[next] {
			next++
		}
	}
	if next == len(assertion.Lines) {
		return nil
	}

	return &AssertionError{
		Type:     AssertOutputOrder,
		Expected: fmt.Sprintf("lines in order: %q", assertion.Lines),
		Actual:   fmt.Sprintf("matched %d of %d, first missing: %q", next, len(assertion.Lines), assertion.Lines[next]),
		Events:   t.Events,
	}
}

// assertLineCount checks the exact number of printed lines, for the whole
// transcript or for a single demo.
func assertLineCount(t *runner.Transcript, assertion Assertion) error {
	var actual int
	scope := "transcript"
	if assertion.Demo != "" {
		actual = len(t.ForDemo(assertion.Demo))
		scope = fmt.Sprintf("demo %q", assertion.Demo)
	} else {
		actual = len(t.Events)
	}

	if actual == assertion.Count {
		return nil
	}

	return &AssertionError{
		Type:     AssertLineCount,
		Expected: fmt.Sprintf("%d lines from %s", assertion.Count, scope),
		Actual:   fmt.Sprintf("%d lines", actual),
		Events:   t.Events,
	}
}

// assertOutputExact checks the whole transcript line-for-line.
func assertOutputExact(t *runner.Transcript, assertion Assertion) error {
	lines := t.Lines()
	if len(lines) == len(assertion.Lines) {
		match := true
		for i := range lines {
			if lines[i] != assertion.Lines[i] {
				match = false
				break
			}
		}
		if match {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertOutputExact,
		Expected: fmt.Sprintf("exactly %d lines: %q", len(assertion.Lines), assertion.Lines),
		Actual:   fmt.Sprintf("%d lines: %q", len(lines), lines),
		Events:   t.Events,
	}
}
