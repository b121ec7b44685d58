package bsearch

// LowerBound returns the first index i in [0, len(items)] such that
// items[i] >= target, i.e. the leftmost insertion point for target.
// Time O(log n).
func LowerBound(target int32, items []int32) int {
	low, high := 0, len(items)
	var middle int
	for low < high {
		middle = Midpoint(low, high)
		if items[middle] < target {
			low = middle + 1
		} else {
			high = middle
		}
	}

	return low
}

// UpperBound returns the first index i in [0, len(items)] such that
// items[i] > target, i.e. the rightmost insertion point for target.
// Time O(log n).
func UpperBound(target int32, items []int32) int {
	low, high := 0, len(items)
	var middle int
	for low < high {
		middle = Midpoint(low, high)
		if items[middle] <= target {
			low = middle + 1
		} else {
			high = middle
		}
	}

	return low
}

// EqualRange returns the inclusive index range [first, last] of all
// elements equal to target. When target is absent it returns
// (NotFound, NotFound, false).
// Time O(log n).
func EqualRange(target int32, items []int32) (first, last int, found bool) {
	lo := LowerBound(target, items)
	if lo == len(items) || items[lo] != target {
		return NotFound, NotFound, false
	}

	return lo, UpperBound(target, items) - 1, true
}
