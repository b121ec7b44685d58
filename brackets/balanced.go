package brackets

// IsBalanced reports whether every bracket in input is matched and
// correctly nested. Non-bracket runes are ignored; "" is balanced.
//
// Algorithm:
//  1. Start with an empty stack of pending closers.
//  2. For each rune:
//     opener → push its closer;
//     closer → pop; an empty stack or a different closer fails at once;
//     other  → no change.
//  3. Balanced iff no closers remain pending.
//
// Complexity: Time O(n), Memory O(depth).
func IsBalanced(input string) bool {
	// 1. Pending closers, innermost last
	var stack []rune

	// 2. Scan left to right
	var (
		closer rune
		ok     bool
		top    int
	)
	for _, r := range input {
		if closer, ok = Closer(r); ok {
			stack = append(stack, closer)
			continue
		}
		if !IsCloser(r) {
			continue // inert
		}
		top = len(stack) - 1
		if top < 0 || stack[top] != r {
			return false
		}
		stack = stack[:top]
	}

	// 3. Nothing may remain open
	return len(stack) == 0
}

// noExpectation marks the outermost level, which expects end of input.
const noExpectation rune = -1

// expectWalker holds the input cursor shared by the recursive calls.
type expectWalker struct {
	runes []rune
	pos   int
}

// IsBalancedRecursive is the expectation-passing form of IsBalanced and
// returns the same verdict on every input.
//
// Each opener starts a nested expect call that must see the matching
// closer before control returns to the enclosing level. A closer, or the
// end of input, succeeds only when it is exactly what the current level
// expects; the outermost level expects end of input.
//
// Recursion depth equals nesting depth, so prefer IsBalanced for input
// that may contain long runs of openers.
func IsBalancedRecursive(input string) bool {
	w := &expectWalker{runes: []rune(input)}

	return w.expect(noExpectation)
}

// expect consumes runes until the closer end (or end of input when end is
// noExpectation) and reports whether it arrived in the right place.
func (w *expectWalker) expect(end rune) bool {
	var (
		r      rune
		closer rune
		ok     bool
	)
	for {
		// 1. End of input satisfies only the outermost level
		if w.pos >= len(w.runes) {
			return end == noExpectation
		}
		r = w.runes[w.pos]
		w.pos++

		// 2. Opener: the nested group must close first
		if closer, ok = Closer(r); ok {
			if !w.expect(closer) {
				return false
			}
			continue
		}

		// 3. Closer ends this level; it must be the expected one
		if IsCloser(r) {
			return r == end
		}

		// 4. Inert rune
	}
}
