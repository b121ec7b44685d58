// Package bsearch defines the window conventions, probe records and
// functional options used by Trace.
package bsearch

// NotFound is the index reported alongside found == false.
const NotFound = -1

// Convention selects how the search window bounds are interpreted.
type Convention int

const (
	// HalfOpen keeps the window as [low, high); empty when low == high.
	HalfOpen Convention = iota

	// Closed keeps the window as [low, high]; empty when low > high.
	Closed
)

// String returns a lower-case name for the convention.
func (c Convention) String() string {
	switch c {
	case HalfOpen:
		return "half-open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Ordering is the outcome of comparing the probed element with the target.
type Ordering int

const (
	// Less means items[middle] < target; the window moves right.
	Less Ordering = iota - 1

	// Equal means items[middle] == target; the search stops.
	Equal

	// Greater means items[middle] > target; the window moves left.
	Greater
)

// String returns "<", "=" or ">".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "="
	default:
		return ">"
	}
}

// compare reports how v relates to target.
func compare(v, target int32) Ordering {
	if v < target {
		return Less
	}
	if v > target {
		return Greater
	}

	return Equal
}

// Probe records one bisection step.
// Low and High are the window bounds before the step, in the
// convention the search ran with.
type Probe struct {
	Low    int      // lower bound of the window
	High   int      // upper bound of the window (exclusive for HalfOpen)
	Middle int      // probed index
	Value  int32    // items[Middle]
	Order  Ordering // comparison of Value against the target
}

// Result is the outcome of Trace.
type Result struct {
	// Index of an element equal to the target, or NotFound.
	Index int

	// Found reports whether the target is present.
	Found bool

	// Convention the search ran with.
	Convention Convention

	// Probes lists every step in order. Nil unless recording is enabled.
	Probes []Probe

	// Comparisons counts probes, recorded or not.
	Comparisons int
}

// Option configures Trace.
type Option func(*Options)

// Options holds the parameters of a traced search.
type Options struct {
	// Convention selects the window representation. Default HalfOpen.
	Convention Convention

	// RecordProbes stores each probe in Result.Probes. Default true.
	RecordProbes bool

	// OnProbe, if non-nil, is invoked for each probe as it happens.
	OnProbe func(Probe)
}

// DefaultOptions returns Options with:
//   - HalfOpen convention
//   - probe recording enabled
//   - no OnProbe hook
func DefaultOptions() Options {
	return Options{
		Convention:   HalfOpen,
		RecordProbes: true,
		OnProbe:      nil,
	}
}

// WithConvention returns an Option that selects the window convention.
// Unknown values are ignored (HalfOpen is retained).
func WithConvention(c Convention) Option {
	return func(o *Options) {
		if c == HalfOpen || c == Closed {
			o.Convention = c
		}
	}
}

// WithRecordProbes returns an Option that toggles probe recording.
func WithRecordProbes(record bool) Option {
	return func(o *Options) {
		o.RecordProbes = record
	}
}

// WithOnProbe returns an Option that installs fn as a per-probe hook.
func WithOnProbe(fn func(Probe)) Option {
	return func(o *Options) {
		o.OnProbe = fn
	}
}
