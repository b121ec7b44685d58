package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvalgo/internal/catalog"
)

// ErrVerifyFailed is returned when at least one catalog case fails.
var ErrVerifyFailed = errors.New("verify: cases failed")

// outcome is the result of one catalog case.
type outcome struct {
	kind string
	name string
	err  error
}

// newVerifyCommand creates the verify subcommand
func newVerifyCommand(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run every preset case against all implementations",
		Long: `Run each catalog case through every implementation (half-open,
closed and traced search; stack, recursive and diagnostic bracket
checks) and compare with the expected result.

Cases run concurrently, at most --workers at a time.
Exit code: 0 if all cases pass, 1 otherwise`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := runCatalog(cmd, cat, a.cfg.Workers)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				a.out.CaseLine(r.kind, r.name, r.err)
				if r.err != nil {
					failed++
					a.log.Warn("case failed", zap.String("kind", r.kind), zap.String("case", r.name), zap.Error(r.err))
				}
			}
			a.out.Summary(len(results), failed)
			a.log.Info("verification finished",
				zap.Int("cases", len(results)),
				zap.Int("failed", failed),
				zap.Int("workers", a.cfg.Workers),
				zap.Duration("elapsed", time.Since(start)),
			)

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrVerifyFailed, failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "maximum cases run at once (default from config)")

	return cmd
}

// runCatalog verifies every case with at most workers goroutines.
// Results keep catalog order: search cases first, then balanced cases.
func runCatalog(cmd *cobra.Command, cat *catalog.Catalog, workers int) ([]outcome, error) {
	results := make([]outcome, cat.Len())
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for i, sc := range cat.Search {
		i, sc := i, sc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = outcome{kind: "search", name: sc.Name, err: sc.Verify()}

			return nil
		})
	}

	offset := len(cat.Search)
	for i, bc := range cat.Balanced {
		i, bc := i, bc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[offset+i] = outcome{kind: "balanced", name: bc.Name, err: bc.Verify()}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	return results, nil
}
