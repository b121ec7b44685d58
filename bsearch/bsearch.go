package bsearch

// Midpoint returns floor((low+high)/2) for non-negative bounds
// without overflowing int.
func Midpoint(low, high int) int {
	return low + (high-low)/2
}

// Search returns the index of target in the sorted slice items.
//
// Algorithm (half-open window [low, high)):
//  1. Return absent immediately for an empty slice.
//  2. While low < high, probe middle = Midpoint(low, high):
//     equal   → return middle;
//     greater → high = middle (target lies strictly left);
//     less    → low = middle + 1 (target lies strictly right).
//  3. Empty window → absent.
//
// Returns (index, true) with items[index] == target, or (NotFound, false).
// With duplicates any matching index may be returned.
//
// Complexity: Time O(log n), Memory O(1).
func Search(target int32, items []int32) (int, bool) {
	// 1. Nothing to search
	if len(items) == 0 {
		return NotFound, false
	}

	// 2. Bisect the half-open window
	low, high := 0, len(items)
	var middle int
	for low < high {
		middle = Midpoint(low, high)
		switch v := items[middle]; {
		case v == target:
			return middle, true
		case v > target:
			high = middle // exclude middle; never below low
		default:
			low = middle + 1
		}
	}

	// 3. Window exhausted
	return NotFound, false
}

// SearchClosed is Search over the closed window [low, high].
//
// The bounds are signed ints: after the empty-slice guard, high starts
// at len-1 >= 0, and high = middle-1 can reach -1 only when middle is 0,
// which ends the loop because low >= 0 > high.
//
// It agrees with Search on presence for every sorted input, and on the
// index whenever target occurs exactly once.
//
// Complexity: Time O(log n), Memory O(1).
func SearchClosed(target int32, items []int32) (int, bool) {
	// 1. Guard before computing len-1
	if len(items) == 0 {
		return NotFound, false
	}

	// 2. Bisect the closed window
	low, high := 0, len(items)-1
	var middle int
	for low <= high {
		middle = Midpoint(low, high)
		switch v := items[middle]; {
		case v == target:
			return middle, true
		case v > target:
			high = middle - 1
		default:
			low = middle + 1
		}
	}

	return NotFound, false
}

// Trace runs a binary search for target and reports each probe.
// The answer is identical to Search (HalfOpen) or SearchClosed (Closed).
//
// Options:
//
//   - WithConvention(c)      window representation (default HalfOpen).
//   - WithRecordProbes(b)    keep probes in Result.Probes (default true).
//   - WithOnProbe(fn)        stream probes to fn as they happen.
//
// Complexity: Time O(log n), Memory O(log n) when recording.
func Trace(target int32, items []int32, opts ...Option) *Result {
	// 1. Apply options
	topts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&topts)
	}

	res := &Result{Index: NotFound, Convention: topts.Convention}

	// 2. Empty input: no probes at all
	if len(items) == 0 {
		return res
	}

	// 3. Pick the window representation
	low, high := 0, len(items)
	if topts.Convention == Closed {
		high = len(items) - 1
	}
	open := func() bool {
		if topts.Convention == Closed {
			return low <= high
		}

		return low < high
	}

	// 4. Bisect, emitting a probe per comparison
	var p Probe
	for open() {
		p.Low, p.High = low, high
		p.Middle = Midpoint(low, high)
		p.Value = items[p.Middle]
		p.Order = compare(p.Value, target)

		res.Comparisons++
		if topts.RecordProbes {
			res.Probes = append(res.Probes, p)
		}
		if topts.OnProbe != nil {
			topts.OnProbe(p)
		}

		switch p.Order {
		case Equal:
			res.Index, res.Found = p.Middle, true

			return res
		case Greater:
			if topts.Convention == Closed {
				high = p.Middle - 1
			} else {
				high = p.Middle
			}
		default:
			low = p.Middle + 1
		}
	}

	return res
}
