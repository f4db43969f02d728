// Package cli implements the ngrules command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ngrules/ngrules"
	"github.com/ngrules/ngrules/internal/catalog"
	"github.com/ngrules/ngrules/internal/render"
	"github.com/ngrules/ngrules/internal/settings"
)

// app carries the state shared by all commands: merged settings, the
// loaded catalog, and the renderer built for the current output target.
type app struct {
	version string

	// Persistent flags.
	dir      string
	plain    bool
	theme    string
	logLevel string

	settings *settings.Settings
	catalog  *catalog.Catalog
	renderer *render.Renderer
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(version string) *cobra.Command {
	a := &app{version: version}

	cmd := &cobra.Command{
		Use:   "ngrules",
		Short: "Angular best-practices knowledge base",
		Long: `ngrules is a searchable knowledge base of Angular best practices:
57 rules across twelve categories, covering change detection, bundle
size, templates, components, routing, security, signals, HTTP, state,
forms, dependency injection, and code style.

The rule corpus ships inside the binary. Point --dir at a checkout to
work against rule files on disk instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.dir, "dir", "", "load the corpus from a directory instead of the built-in copy")
	pf.BoolVar(&a.plain, "plain", false, "plain output: no colors, raw markdown")
	pf.StringVar(&a.theme, "theme", "", "markdown style (dark, light, notty)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level for the mcp command (debug, info, warn, error)")

	cmd.AddCommand(
		newCategoriesCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newSearchCmd(a),
		newReferenceCmd(a),
		newBrowseCmd(a),
		newMCPCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return cmd
}

// init loads settings, resolves flag/settings precedence, and builds
// the renderer. Runs before every command; the catalog itself is loaded
// lazily by the commands that read it.
func (a *app) init(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	a.settings, err = settings.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// Flags win over settings; settings fill in unset flags.
	if a.dir == "" {
		a.dir = a.settings.Dir
	}
	if !cmd.Flags().Changed("plain") {
		a.plain = settings.BoolVal(a.settings.Plain, false)
	}
	if a.theme == "" {
		a.theme = a.settings.Theme
	}
	if a.logLevel == "" {
		a.logLevel = a.settings.LogLevel
	}
	if !a.plain && !term.IsTerminal(int(os.Stdout.Fd())) {
		a.plain = true
	}

	a.renderer = render.New(a.width(), a.plain, a.theme)
	return nil
}

// ensureCatalog loads the corpus on first use: from --dir when given,
// otherwise the embedded copy. Corpus defects are reported to stderr as
// warnings, not failures.
func (a *app) ensureCatalog(cmd *cobra.Command) error {
	if a.catalog != nil {
		return nil
	}

	var err error
	if a.dir != "" {
		a.catalog, err = catalog.LoadDir(a.dir)
		if err != nil {
			return fmt.Errorf("loading corpus from %s: %w", a.dir, err)
		}
	} else {
		a.catalog, err = catalog.Load(ngrules.Corpus())
		if err != nil {
			return err
		}
	}

	if len(a.catalog.Problems) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), a.renderer.Problems(a.catalog.Problems))
	}
	return nil
}

// width detects the terminal width for layout.
func (a *app) width() int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return width
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ngrules %s\n", a.version)
		},
	}
}
