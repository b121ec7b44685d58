package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvalgo/brackets"
)

// newBalancedCommand creates the balanced subcommand
func newBalancedCommand(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "balanced <input>",
		Short: "Check that brackets in the input are balanced",
		Long: `Check that every ( [ { in the input is closed by the matching ) ] }
in the right order. Other characters are ignored.

By default the stack-based checker runs and explains any failure.
--recursive runs the recursive checker instead, which reports only
the verdict. --trace prints every stack operation.`,
		Example: `  lvalgo balanced "a(b[c]d)e"
  lvalgo balanced --trace "([)]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			if recursive {
				ok := brackets.IsBalancedRecursive(input)
				a.log.Debug("recursive check finished", zap.Int("runes", len([]rune(input))), zap.Bool("balanced", ok))
				a.out.BalanceVerdict(input, ok)

				return nil
			}

			opts := []brackets.Option{}
			if a.cfg.Trace {
				opts = append(opts, brackets.WithRecordInert(true), brackets.WithOnOp(a.out.BalanceOp))
			}
			rep := brackets.Check(input, opts...)
			a.log.Debug("check finished",
				zap.Int("runes", len([]rune(input))),
				zap.Bool("balanced", rep.Balanced),
				zap.Stringer("reason", rep.Reason),
				zap.Int("max_depth", rep.MaxDepth),
			)
			a.out.BalanceResult(input, rep)

			return nil
		},
	}

	cmd.Flags().BoolVar(&recursive, "recursive", false, "use the recursive checker")

	return cmd
}
