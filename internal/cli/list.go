package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrules/ngrules/internal/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var (
		tag    string
		impact string
	)

	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List rules, optionally for one category",
		Long: `List rules one per line with their impact rating. With a category
prefix argument ("cd", "bundle-"), only that category's rules are shown.
The --tag and --impact flags filter further.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCatalog(cmd); err != nil {
				return err
			}

			rules := a.catalog.Rules()
			if len(args) == 1 {
				var err error
				rules, err = a.catalog.ByCategory(args[0])
				if err != nil {
					return err
				}
			}
			if tag != "" {
				rules = intersect(rules, a.catalog.ByTag(tag))
			}
			if impact != "" {
				parsed, ok := catalog.ParseImpact(impact)
				if !ok {
					return fmt.Errorf("unknown impact %q (use CRITICAL, HIGH, MEDIUM-HIGH, MEDIUM, or LOW)", impact)
				}
				rules = intersect(rules, a.catalog.ByImpact(parsed))
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.RuleList(rules))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only rules carrying this tag")
	cmd.Flags().StringVar(&impact, "impact", "", "only rules with this impact rating")
	return cmd
}

// intersect keeps the rules of a that also appear in b, preserving a's
// order.
func intersect(a, b []*catalog.Rule) []*catalog.Rule {
	inB := make(map[string]bool, len(b))
	for _, r := range b {
		inB[r.Slug] = true
	}
	var out []*catalog.Rule
	for _, r := range a {
		if inB[r.Slug] {
			out = append(out, r)
		}
	}
	return out
}
