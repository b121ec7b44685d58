// Package bsearch implements binary search over a sorted sequence of
// 32‑bit signed integers, together with the lower/upper bound helpers
// and a step-recording trace used for visualization and diagnostics.
//
// What:
//
//   - Search: iterative bisection over the half-open window [low, high).
//     Returns (index, true) when the target is present, (-1, false) otherwise.
//   - SearchClosed: the same algorithm over the closed window [low, high]
//     using signed indices, kept as an alternate convention.
//   - Trace: runs either convention and records every probe
//     (window bounds, middle index, probed value, comparison outcome).
//   - LowerBound / UpperBound / EqualRange: insertion points and the range
//     of equal elements, for callers that need a specific occurrence.
//
// Window convention and termination:
//
//	HalfOpen (default): the window is [low, high). It starts as [0, len)
//	and is empty when low == high. Each step either returns, sets
//	high = middle, or sets low = middle+1; both strictly shrink high-low,
//	so the loop terminates. high is never decremented, so an index below
//	zero cannot be produced, even on an empty input.
//
//	Closed: the window is [low, high] with signed int bounds. An empty
//	input returns before high = len-1 is used, and high = middle-1 can at
//	worst reach -1, which simply fails the loop condition low <= high.
//
// Midpoint is low + (high-low)/2: integer floor division, and since both
// bounds lie in [0, len] the subtraction never overflows.
//
// Preconditions:
//
//   - items must be sorted in non-decreasing order. This is not verified;
//     on unsorted input the answer is unspecified but never panics.
//   - With duplicates, Search may return any index holding the target.
//     Use LowerBound or EqualRange for the first occurrence.
//
// Complexity:
//
//   - Search, SearchClosed, LowerBound, UpperBound: Time O(log n), Memory O(1)
//   - EqualRange:                                   Time O(log n), Memory O(1)
//   - Trace:                                        Time O(log n), Memory O(log n) when recording
//
// There are no errors: absence is a normal result, never a failure.
// All functions are pure and safe for concurrent use; items is only read.
package bsearch
