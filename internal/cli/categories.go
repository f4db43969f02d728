package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the twelve rule categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCatalog(cmd); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.CategoryTable(a.catalog))
			return nil
		},
	}
}
