package cli

import (
	"github.com/spf13/cobra"
)

func newReferenceCmd(a *app) *cobra.Command {
	var compiled bool

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Print the full rule reference",
		Long: `Print REFERENCE.md, the whole rule set as one document. With
--compiled the document is rebuilt from the loaded rule files instead,
which is how REFERENCE.md is regenerated after editing rules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCatalog(cmd); err != nil {
				return err
			}

			doc := a.catalog.Reference
			if compiled || doc == "" {
				doc = a.catalog.Compile()
			}
			return a.page(cmd, a.renderer.Markdown(doc))
		},
	}

	cmd.Flags().BoolVar(&compiled, "compiled", false, "rebuild the reference from the rule files")
	return cmd
}
