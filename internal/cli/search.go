package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvalgo/bsearch"
)

// newSearchCommand creates the search subcommand
func newSearchCommand(a *app) *cobra.Command {
	var (
		target int32
		closed bool
	)

	cmd := &cobra.Command{
		Use:   "search --target N [items...]",
		Short: "Binary search a sorted list of integers",
		Long: `Search for --target in the given items, which must be sorted ascending.
Prints the index of a matching item, or "absent".

Use --closed to run the closed-window [low, high] variant instead of
the default half-open [low, high) window, and --trace to see each probe.`,
		Example: "  lvalgo search --target 90 2 4 6 80 90 120 180 900",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			if !slices.IsSorted(items) {
				a.log.Warn("items are not sorted; the result is unspecified", zap.Int("items", len(items)))
			}

			convention := bsearch.HalfOpen
			if closed {
				convention = bsearch.Closed
			}
			res := bsearch.Trace(target, items,
				bsearch.WithConvention(convention),
				bsearch.WithRecordProbes(a.cfg.Trace),
			)
			a.log.Debug("search finished",
				zap.Int32("target", target),
				zap.Int("items", len(items)),
				zap.Stringer("convention", convention),
				zap.Int("comparisons", res.Comparisons),
			)

			if a.cfg.Trace {
				a.out.SearchTrace(target, items, res)

				return nil
			}
			a.out.SearchResult(target, res.Index, res.Found)

			return nil
		},
	}

	cmd.Flags().Int32Var(&target, "target", 0, "value to search for")
	cmd.Flags().BoolVar(&closed, "closed", false, "use the closed [low, high] window")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// parseItems converts command-line arguments to int32 values.
func parseItems(args []string) ([]int32, error) {
	items := make([]int32, 0, len(args))
	for _, s := range args {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("search: item %q: %w", s, err)
		}
		items = append(items, int32(n))
	}

	return items, nil
}
