// Package runner executes the demonstration registry and records a
// transcript of everything the demos print.
//
// ARCHITECTURE:
//
// Single-Writer Sequential Loop:
// The runner executes demos one at a time in registry order, in the
// calling goroutine. This ensures:
// - Predictable output ordering
// - Reproducible transcripts across runs
// - Simple reasoning about what printed when
//
// Execution Flow:
// 1. Each demo writes its lines into a private buffer
// 2. The buffer is split into lines
// 3. Every line is stamped with a seq from the logical clock
// 4. Stamped lines are appended to the run's transcript
//
// CRITICAL PATTERNS:
//
// Logical Clock:
// All transcript events are stamped with a monotonic seq counter from
// Clock.Next(). NEVER use wall-clock timestamps for ordering.
//
// Deterministic Tokens:
// A run is tagged with a run token. Production runs use UUIDv7; tests and
// the harness inject a fixed token so transcripts compare byte-for-byte.
package runner
