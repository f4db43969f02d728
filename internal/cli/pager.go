package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// page writes long output through the configured pager when stdout is a
// terminal, and directly otherwise. The pager command comes from
// settings, falling back to $PAGER.
func (a *app) page(cmd *cobra.Command, text string) error {
	pager := a.settings.Pager
	if pager == "" {
		pager = os.Getenv("PAGER")
	}
	if pager == "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	p := exec.Command("sh", "-c", pager)
	p.Stdin = strings.NewReader(text + "\n")
	p.Stdout = os.Stdout
	p.Stderr = os.Stderr
	if err := p.Run(); err != nil {
		// Broken pager should not eat the output.
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}
