// Package lvalgo collects two small, pure sequence algorithms with the
// edge cases spelled out and every step observable.
//
// 🚀 What is lvalgo?
//
//	A zero-state library plus a CLI that bring together:
//		• Binary search over sorted int32 slices (half-open and closed windows)
//		• Lower/upper bounds and equal ranges for duplicate-aware lookups
//		• Balanced-bracket validation (stack and recursive forms)
//		• Diagnostics: failure reason, position, nesting depth
//		• Step traces: every search probe and every bracket stack op
//
// ✨ Why choose lvalgo?
//
//   - No panics on empty input, no index underflow, no midpoint overflow
//   - Absence and imbalance are values, not errors
//   - Pure functions, safe for concurrent use
//   - Hooks (OnProbe, OnOp) for visualizing or logging each step
//
// Packages:
//
//	bsearch/          Search, SearchClosed, Trace, LowerBound, UpperBound, EqualRange
//	brackets/         IsBalanced, IsBalancedRecursive, Check
//	internal/catalog  preset inputs with expected results (presets.yaml)
//	internal/cli      the lvalgo command: search, balanced, verify, catalog
//
// Quick example:
//
//	idx, ok := bsearch.Search(90, []int32{2, 4, 6, 80, 90, 120})  // 4, true
//	brackets.IsBalanced("a(b[c]d)e")                               // true
//
//	go install github.com/katalvlaran/lvalgo/cmd/lvalgo@latest
package lvalgo
