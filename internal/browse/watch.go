package browse

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// newWatcher watches a corpus directory and its rules/ subdirectory.
func newWatcher(dir string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	// Rule files live one level down. A corpus without a rules
	// directory still loads, so ignore a failed add here.
	_ = w.Add(filepath.Join(dir, "rules"))
	return w, nil
}

// forwardChanges turns debounced file events into program messages.
// Editors save in several steps (write to a temp file, rename, chmod),
// so a short quiet period collapses them into one reload.
func forwardChanges(w *fsnotify.Watcher, p *tea.Program) {
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	dirty := false

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			dirty = true
			debounce.Reset(200 * time.Millisecond)

		case <-debounce.C:
			if dirty {
				dirty = false
				p.Send(corpusChangedMsg{})
			}

		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		}
	}
}
