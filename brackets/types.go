package brackets

// glyph pairs: opener → closer.
var closers = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// Closer returns the closer matching opener.
// ok is false when r is not an opener.
func Closer(opener rune) (closer rune, ok bool) {
	closer, ok = closers[opener]

	return closer, ok
}

// IsOpener reports whether r is one of ( [ {.
func IsOpener(r rune) bool {
	_, ok := closers[r]

	return ok
}

// IsCloser reports whether r is one of ) ] }.
func IsCloser(r rune) bool {
	switch r {
	case ')', ']', '}':
		return true
	}

	return false
}

// Reason classifies the outcome of Check.
type Reason int

const (
	// Balanced: every opener was closed in order.
	Balanced Reason = iota

	// UnexpectedCloser: a closer appeared with no pending opener.
	UnexpectedCloser

	// MismatchedCloser: a closer differed from the expected one.
	MismatchedCloser

	// UnclosedOpener: input ended with openers still pending.
	UnclosedOpener
)

// String returns a short human-readable description.
func (r Reason) String() string {
	switch r {
	case Balanced:
		return "balanced"
	case UnexpectedCloser:
		return "unexpected closer"
	case MismatchedCloser:
		return "mismatched closer"
	case UnclosedOpener:
		return "unclosed opener"
	default:
		return "unknown"
	}
}

// OpKind identifies one step recorded by Check.
type OpKind int

const (
	OpPush      OpKind = iota // opener seen, its closer pushed
	OpMatch                   // closer matched the top of the stack, popped
	OpMismatch                // closer differed from the top of the stack
	OpUnderflow               // closer seen on an empty stack
	OpSkip                    // inert rune
	OpUnclosed                // end of input with a pending closer
	OpResult                  // final verdict
)

// String returns the op name.
func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "push"
	case OpMatch:
		return "match"
	case OpMismatch:
		return "mismatch"
	case OpUnderflow:
		return "underflow"
	case OpSkip:
		return "skip"
	case OpUnclosed:
		return "unclosed"
	case OpResult:
		return "result"
	default:
		return "unknown"
	}
}

// Op is one recorded step.
type Op struct {
	Kind     OpKind
	Pos      int  // rune index in the input; -1 for OpResult
	Glyph    rune // rune at Pos (0 for OpResult)
	Expected rune // top of the pending-closers stack at this step, 0 if empty
	Depth    int  // stack depth after the step
}

// Report is the outcome of Check.
type Report struct {
	// Balanced is the verdict; equal to IsBalanced on the same input.
	Balanced bool

	// Reason explains the verdict.
	Reason Reason

	// Pos is the rune index of the offending closer, or of the innermost
	// unclosed opener; -1 when balanced.
	Pos int

	// Expected is the closer that was pending at the failure, 0 if none.
	Expected rune

	// Found is the closer seen at Pos for closer failures, 0 otherwise.
	Found rune

	// MaxDepth is the deepest nesting reached before the scan stopped.
	MaxDepth int

	// Ops lists every step in order. Nil unless recording is enabled.
	Ops []Op
}

// Option configures Check.
type Option func(*Options)

// Options holds the parameters of a diagnostic check.
type Options struct {
	// RecordOps stores each step in Report.Ops. Default false.
	RecordOps bool

	// RecordInert also emits OpSkip for inert runes. Default false.
	RecordInert bool

	// OnOp, if non-nil, is invoked for every emitted op.
	OnOp func(Op)
}

// DefaultOptions returns Options with recording disabled and no hook.
func DefaultOptions() Options {
	return Options{
		RecordOps:   false,
		RecordInert: false,
		OnOp:        nil,
	}
}

// WithRecordOps returns an Option that toggles op recording.
func WithRecordOps(record bool) Option {
	return func(o *Options) {
		o.RecordOps = record
	}
}

// WithRecordInert returns an Option that toggles OpSkip emission.
func WithRecordInert(record bool) Option {
	return func(o *Options) {
		o.RecordInert = record
	}
}

// WithOnOp returns an Option that installs fn as a per-op hook.
func WithOnOp(fn func(Op)) Option {
	return func(o *Options) {
		o.OnOp = fn
	}
}
