package catalog

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvalgo/brackets"
	"github.com/katalvlaran/lvalgo/bsearch"
)

// ErrMismatch is wrapped by every verification failure.
var ErrMismatch = errors.New("catalog: result mismatch")

var reasons = map[string]brackets.Reason{
	brackets.Balanced.String():         brackets.Balanced,
	brackets.UnexpectedCloser.String(): brackets.UnexpectedCloser,
	brackets.MismatchedCloser.String(): brackets.MismatchedCloser,
	brackets.UnclosedOpener.String():   brackets.UnclosedOpener,
}

func knownReason(s string) bool {
	_, ok := reasons[s]

	return ok
}

// Verify runs every search implementation on the case.
// It checks the expectation and that the half-open, closed and traced
// searches agree. The returned error wraps ErrMismatch.
func (sc SearchCase) Verify() error {
	type run struct {
		name  string
		index int
		found bool
	}

	traced := bsearch.Trace(sc.Target, sc.Items)
	tracedClosed := bsearch.Trace(sc.Target, sc.Items, bsearch.WithConvention(bsearch.Closed))

	runs := make([]run, 0, 4)
	idx, ok := bsearch.Search(sc.Target, sc.Items)
	runs = append(runs, run{"Search", idx, ok})
	idx, ok = bsearch.SearchClosed(sc.Target, sc.Items)
	runs = append(runs, run{"SearchClosed", idx, ok})
	runs = append(runs,
		run{"Trace/half-open", traced.Index, traced.Found},
		run{"Trace/closed", tracedClosed.Index, tracedClosed.Found},
	)

	for _, r := range runs {
		if r.found != sc.Found {
			return fmt.Errorf("%w: %s %s(%d): found=%v, want %v", ErrMismatch, sc.Name, r.name, sc.Target, r.found, sc.Found)
		}
		if !r.found {
			if r.index != bsearch.NotFound {
				return fmt.Errorf("%w: %s %s(%d): absent with index %d", ErrMismatch, sc.Name, r.name, sc.Target, r.index)
			}
			continue
		}
		if sc.Items[r.index] != sc.Target {
			return fmt.Errorf("%w: %s %s(%d): index %d holds %d", ErrMismatch, sc.Name, r.name, sc.Target, r.index, sc.Items[r.index])
		}
		if sc.Index != nil && r.index != *sc.Index {
			return fmt.Errorf("%w: %s %s(%d): index %d, want %d", ErrMismatch, sc.Name, r.name, sc.Target, r.index, *sc.Index)
		}
	}

	return nil
}

// Verify runs the stack, recursive and diagnostic bracket checkers on
// the case. It checks the expectation, the optional reason, and that all
// three forms agree. The returned error wraps ErrMismatch.
func (bc BalanceCase) Verify() error {
	stack := brackets.IsBalanced(bc.Input)
	recursive := brackets.IsBalancedRecursive(bc.Input)
	rep := brackets.Check(bc.Input)

	if stack != recursive || stack != rep.Balanced {
		return fmt.Errorf("%w: %s %q: forms disagree (stack=%v recursive=%v check=%v)",
			ErrMismatch, bc.Name, bc.Input, stack, recursive, rep.Balanced)
	}
	if stack != bc.Balanced {
		return fmt.Errorf("%w: %s %q: balanced=%v, want %v", ErrMismatch, bc.Name, bc.Input, stack, bc.Balanced)
	}
	if bc.Reason != "" && rep.Reason != reasons[bc.Reason] {
		return fmt.Errorf("%w: %s %q: reason %q, want %q", ErrMismatch, bc.Name, bc.Input, rep.Reason, bc.Reason)
	}

	return nil
}
