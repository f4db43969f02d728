package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrules/ngrules/internal/catalog"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one rule in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCatalog(cmd); err != nil {
				return err
			}

			rule, err := a.catalog.Rule(args[0])
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					if hint := a.renderer.Suggestions(a.catalog.Suggest(args[0], 3)); hint != "" {
						fmt.Fprintln(cmd.ErrOrStderr(), hint)
					}
				}
				return err
			}

			return a.page(cmd, a.renderer.Rule(rule))
		},
	}
}
