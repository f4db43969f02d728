package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ngrules/ngrules/internal/browse"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the rules interactively",
		Long: `Browse opens a terminal UI: pick a category, pick a rule, read it.
Press / to filter, esc to go back, q to quit. With --dir, edits to the
rule files reload live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("browse needs a terminal; try list or show")
			}
			if err := a.ensureCatalog(cmd); err != nil {
				return err
			}
			return browse.Run(a.catalog, browse.Options{
				ReloadDir: a.dir,
				Theme:     a.theme,
			})
		},
	}
}
