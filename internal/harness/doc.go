// Package harness provides conformance testing for the demonstration runner.
//
// The harness loads scenario files, runs the selected demos through the
// runner with a fixed run token, and validates the resulting transcript.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	demos:
//	  - option-match
//	  - guarded-match
//	run_token: "test-run-0001"
//	assertions:
//	  - type: output_contains
//	    line: "number: 5"
//	  - type: output_order
//	    lines: ["number: 5", "Some x is odd"]
//	  - type: line_count
//	    demo: drain-loop
//	    count: 4
//	  - type: output_exact
//	    lines: ["number: 5", "Some x is odd"]
//
// An empty demos list runs the full registry in its fixed order.
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - output_contains: Verifies a line appears somewhere in the transcript
//   - output_order: Verifies lines appear in the given order (gaps allowed)
//   - line_count: Verifies the transcript (or one demo) printed exactly N lines
//   - output_exact: Verifies the full transcript equals the given lines
//
// # Deterministic Testing
//
// All scenarios execute with a fixed run token and a fresh logical clock,
// so identical scenarios produce byte-identical transcripts across runs.
// That stability is what makes golden snapshot comparison possible.
package harness
