package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>...",
		Short: "Search rules by slug, title, tags, and summaries",
		Long: `Search matches every term against each rule's slug, title, tags,
summary line, and impact description, case-insensitively. Rules matching
all terms are listed in category order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCatalog(cmd); err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results := a.catalog.Search(query)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no rules match %q\n", query)
				if hint := a.renderer.Suggestions(a.catalog.Suggest(query, 3)); hint != "" {
					fmt.Fprintln(cmd.OutOrStdout(), hint)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.RuleList(results))
			return nil
		},
	}
}
