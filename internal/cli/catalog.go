package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCatalogCommand creates the catalog subcommand
func newCatalogCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the preset cases used by verify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "search:")
			for _, sc := range cat.Search {
				want := "absent"
				if sc.Found {
					want = "found"
					if sc.Index != nil {
						want = fmt.Sprintf("index %d", *sc.Index)
					}
				}
				fmt.Fprintf(w, "  %-20s target=%-8d items=%v -> %s\n", sc.Name, sc.Target, sc.Items, want)
			}

			fmt.Fprintln(w, "balanced:")
			for _, bc := range cat.Balanced {
				fmt.Fprintf(w, "  %-20s %-14q -> %v\n", bc.Name, bc.Input, bc.Balanced)
			}

			return nil
		},
	}
}
