// Package value provides the sealed value model the demos match against.
//
// This package contains type definitions only. All other internal packages
// import value; value imports nothing internal. This ensures the value
// model remains the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Value is a sealed interface: only the types in this package implement it
//   - Numbers are always int64, never float64 (floats break deterministic
//     rendering and have no place in the demo data)
//   - Record fields are ordered slices, not maps, so rendering and matching
//     are deterministic without sorting
//   - Option (Some/None) and Outcome (Ok/Err) are closed variant sets; a
//     type switch over either is the compile-time exhaustiveness story
package value
