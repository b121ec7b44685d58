// Package brackets validates that the brackets in a string are balanced:
// every closer matches the most recent unmatched opener of the same kind,
// every opener is closed later, and groups nest without interleaving.
//
// Only six glyphs are significant: the openers ( [ { and the closers ) ] }.
// Every other rune is inert.
//
// What:
//
//   - IsBalanced: single left-to-right pass with a stack of pending
//     closers. Opener → push its closer; closer → pop and compare, failing
//     fast on an empty stack or a mismatch; balanced iff the stack ends empty.
//   - IsBalancedRecursive: the expectation-passing form. Each opener
//     recurses expecting its closer; a closer or end of input succeeds only
//     if it equals the current expectation (end of input expects nothing).
//   - Check: the stack form with diagnostics: why and where the input
//     failed, the expected and found glyphs, the maximum nesting depth, and
//     an optional op-by-op trace.
//
// Why two forms:
//
//	Both give the same answer on every input. The recursive form uses one
//	call frame per nesting level, so a long run of openers grows the
//	goroutine stack with the input. IsBalanced and Check keep the pending
//	closers in a heap-allocated slice instead and are the preferred entry
//	points for untrusted input.
//
// Examples:
//
//	IsBalanced("")          == true
//	IsBalanced("a(b[c]d)e") == true   // letters are inert
//	IsBalanced("([)]")      == false  // interleaved groups
//	IsBalanced("(()")       == false  // unclosed opener
//
// Complexity:
//
//   - All forms: Time O(n), Memory O(d) where d is the maximum nesting depth.
//
// Functions are pure and safe for concurrent use.
package brackets
