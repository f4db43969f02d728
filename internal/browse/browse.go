// Package browse implements the interactive corpus browser: pick a
// category, pick a rule, read it. With a reload directory set, edits to
// the rule files on disk show up without restarting.
package browse

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	"github.com/ngrules/ngrules/internal/catalog"
)

// Options configures the browser.
type Options struct {
	// ReloadDir, when set, is the corpus directory to watch for edits.
	// It should be the directory the catalog was loaded from.
	ReloadDir string

	// Theme is a glamour style name or JSON style file for rule bodies.
	Theme string
}

// Run starts the browser and blocks until the user quits.
func Run(c *catalog.Catalog, opts Options) error {
	// Detect terminal size for the initial layout; a resize message
	// arrives on start anyway.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}

	m := newModel(c, opts, width, height)

	var w *fsnotify.Watcher
	if opts.ReloadDir != "" {
		var err error
		w, err = newWatcher(opts.ReloadDir)
		if err != nil {
			// Browsing still works, just without live reload.
			m.status = "live reload off: " + err.Error()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if w != nil {
		defer w.Close()
		go forwardChanges(w, p)
	}

	_, err := p.Run()
	return err
}
