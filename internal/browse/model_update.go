package browse

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngrules/ngrules/internal/catalog"
	"github.com/ngrules/ngrules/internal/render"
)

// corpusChangedMsg is posted by the file watcher when rule files change
// on disk.
type corpusChangedMsg struct{}

// corpusReloadedMsg carries the result of re-reading the corpus.
type corpusReloadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Terminal resize ──
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.renderer = render.New(msg.Width, false, m.theme)
			m.body.Width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
			m.body.Height = bodyHeight(msg.Height)
		}
		if m.current != nil {
			m.body.SetContent(m.renderer.Rule(m.current))
		}
		return m, nil

	// ── Key events ──
	case tea.KeyMsg:
		m.status = ""
		return m.handleKey(msg)

	// ── Live reload ──
	case corpusChangedMsg:
		return m, m.reloadCorpus()

	case corpusReloadedMsg:
		return m.handleReloaded(msg)
	}

	return m, nil
}

// handleKey dispatches key events by screen.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeRules:
		return m.handleRulesKey(msg)
	case modeRule:
		return m.handleRuleKey(msg)
	default:
		return m.handleCategoriesKey(msg)
	}
}

func (m model) handleCategoriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
		return m, nil

	case "down", "j":
		if m.catCursor < len(catalog.Categories)-1 {
			m.catCursor++
		}
		return m, nil

	case "enter", "l", "right":
		m.scopePrefix = catalog.Categories[m.catCursor].Prefix
		m.ruleCursor = 0
		m.filtering = false
		m.filter.Reset()
		m.mode = modeRules
		m.refreshRules()
		return m, nil

	case "/":
		// Filter across the whole corpus, not one category.
		m.scopePrefix = ""
		m.ruleCursor = 0
		m.mode = modeRules
		cmd := m.startFilter()
		return m, cmd
	}
	return m, nil
}

func (m model) handleRulesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "h", "left", "backspace":
		// An accepted filter is dropped first; a second press leaves
		// the list.
		if m.filter.Value() != "" {
			m.filter.Reset()
			m.refreshRules()
			return m, nil
		}
		m.mode = modeCategories
		return m, nil

	case "up", "k":
		if m.ruleCursor > 0 {
			m.ruleCursor--
		}
		return m, nil

	case "down", "j":
		if m.ruleCursor < len(m.rules)-1 {
			m.ruleCursor++
		}
		return m, nil

	case "enter", "l", "right":
		if len(m.rules) == 0 {
			return m, nil
		}
		m.openRule(m.rules[m.ruleCursor])
		return m, nil

	case "/":
		cmd := m.startFilter()
		return m, cmd
	}
	return m, nil
}

// handleFilterKey routes keys to the filter input while it has focus.
func (m model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEscape:
		// Drop the filter and show the full scope again.
		m.filtering = false
		m.filter.Blur()
		m.filter.Reset()
		m.refreshRules()
		return m, nil

	case tea.KeyEnter:
		// Keep the matches, move focus back to the list.
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case tea.KeyUp:
		if m.ruleCursor > 0 {
			m.ruleCursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.ruleCursor < len(m.rules)-1 {
			m.ruleCursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refreshRules()
	return m, cmd
}

func (m model) handleRuleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "h", "left", "backspace":
		m.mode = modeRules
		m.current = nil
		return m, nil
	}

	// Everything else scrolls the rule body.
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// reloadCorpus re-reads the corpus directory off the update loop.
func (m model) reloadCorpus() tea.Cmd {
	dir := m.reloadDir
	return func() tea.Msg {
		c, err := catalog.LoadDir(dir)
		return corpusReloadedMsg{catalog: c, err: err}
	}
}

func (m model) handleReloaded(msg corpusReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Keep showing the last good corpus.
		m.status = "reload failed: " + msg.err.Error()
		return m, nil
	}

	m.catalog = msg.catalog
	m.recount()
	m.refreshRules()

	if m.mode == modeRule && m.current != nil {
		r, err := m.catalog.Rule(m.current.Slug)
		if err != nil {
			// The rule went away; fall back to the list.
			m.mode = modeRules
			m.current = nil
		} else {
			m.current = r
			m.body.SetContent(m.renderer.Rule(r))
		}
	}

	m.status = fmt.Sprintf("reloaded %d rules", m.catalog.Len())
	if n := len(m.catalog.Problems); n > 0 {
		m.status = fmt.Sprintf("reloaded %d rules, %d problems", m.catalog.Len(), n)
	}
	return m, nil
}
