// Package pattern implements structural pattern matching over the value model.
//
// The package has three layers:
//
//  1. Patterns: a sealed set of pattern shapes (literals, wildcards,
//     bindings, ranges, tuple and record destructuring, variant cases,
//     alternation). Match is all-or-nothing: either the whole pattern
//     matches and every binding is produced, or no bindings are produced.
//
//  2. Arms: ordered lists of (pattern, guard, body) evaluated
//     first-match-wins. A guard is a secondary predicate checked only
//     after the structural pattern matches; guard failure falls through
//     to the next arm.
//
// 3. Validation: arm lists are checked before anything is evaluated.
//
// CRITICAL PATTERNS:
//
// Deterministic Selection:
// Arms are evaluated strictly in declaration order. No reordering, no
// cost-based dispatch, no non-determinism.
//
// Static Rejection:
// Select validates its arm list before evaluating any arm, rejecting
// non-exhaustive and unreachable arm lists up front. Destructure accepts
// only irrefutable patterns. These checks stand in for the compile-time
// rejections a sum-type host compiler would make.
package pattern
