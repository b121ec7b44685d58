package brackets

// pending is one unmatched opener: the closer it needs and where it was.
type pending struct {
	opener rune
	closer rune
	pos    int
}

// checker encapsulates state during a diagnostic scan.
type checker struct {
	opts  Options
	stack []pending
	rep   *Report
}

// Check scans input like IsBalanced and explains the verdict.
// Report.Balanced always equals IsBalanced(input).
//
// Options:
//
//   - WithRecordOps(true)     keep every step in Report.Ops.
//   - WithRecordInert(true)   also emit OpSkip for non-bracket runes.
//   - WithOnOp(fn)            stream steps to fn as they happen.
//
// Complexity: Time O(n), Memory O(depth) plus O(n) when recording ops.
func Check(input string, opts ...Option) *Report {
	// 1. Apply options
	copts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&copts)
	}

	c := &checker{
		opts: copts,
		rep:  &Report{Balanced: true, Reason: Balanced, Pos: -1},
	}

	// 2. Scan; stop at the first offending closer
	pos := 0
	var (
		r      rune
		closer rune
		ok     bool
	)
	for _, r = range input {
		if closer, ok = Closer(r); ok {
			c.push(r, closer, pos)
		} else if IsCloser(r) {
			if !c.pop(r, pos) {
				return c.finish()
			}
		} else if c.opts.RecordInert {
			c.emit(Op{Kind: OpSkip, Pos: pos, Glyph: r, Expected: c.top(), Depth: len(c.stack)})
		}
		pos++
	}

	// 3. Leftover openers: report the innermost one
	if n := len(c.stack); n > 0 {
		inner := c.stack[n-1]
		c.fail(UnclosedOpener, inner.pos, inner.closer, 0)
		c.emit(Op{Kind: OpUnclosed, Pos: inner.pos, Glyph: inner.opener, Expected: inner.closer, Depth: n})
	}

	return c.finish()
}

// push records an opener and its expected closer.
func (c *checker) push(opener, closer rune, pos int) {
	c.stack = append(c.stack, pending{opener: opener, closer: closer, pos: pos})
	if len(c.stack) > c.rep.MaxDepth {
		c.rep.MaxDepth = len(c.stack)
	}
	c.emit(Op{Kind: OpPush, Pos: pos, Glyph: opener, Expected: closer, Depth: len(c.stack)})
}

// pop matches closer r against the top of the stack.
// It returns false and records the failure when they disagree.
func (c *checker) pop(r rune, pos int) bool {
	n := len(c.stack)
	if n == 0 {
		c.fail(UnexpectedCloser, pos, 0, r)
		c.emit(Op{Kind: OpUnderflow, Pos: pos, Glyph: r, Depth: 0})

		return false
	}

	want := c.stack[n-1].closer
	if want != r {
		c.fail(MismatchedCloser, pos, want, r)
		c.emit(Op{Kind: OpMismatch, Pos: pos, Glyph: r, Expected: want, Depth: n})

		return false
	}

	c.stack = c.stack[:n-1]
	c.emit(Op{Kind: OpMatch, Pos: pos, Glyph: r, Expected: want, Depth: n - 1})

	return true
}

// top returns the closer currently expected, 0 if none.
func (c *checker) top() rune {
	if n := len(c.stack); n > 0 {
		return c.stack[n-1].closer
	}

	return 0
}

// fail stores the verdict; the first failure wins.
func (c *checker) fail(reason Reason, pos int, expected, found rune) {
	c.rep.Balanced = false
	c.rep.Reason = reason
	c.rep.Pos = pos
	c.rep.Expected = expected
	c.rep.Found = found
}

// finish emits the result op and returns the report.
func (c *checker) finish() *Report {
	c.emit(Op{Kind: OpResult, Pos: -1, Expected: c.top(), Depth: len(c.stack)})

	return c.rep
}

// emit forwards op to the recorder and the hook.
func (c *checker) emit(op Op) {
	if c.opts.RecordOps {
		c.rep.Ops = append(c.rep.Ops, op)
	}
	if c.opts.OnOp != nil {
		c.opts.OnOp(op)
	}
}
