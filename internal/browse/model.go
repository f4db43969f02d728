package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngrules/ngrules/internal/catalog"
	"github.com/ngrules/ngrules/internal/render"
)

// uiMode identifies which screen the browser is showing.
type uiMode int

const (
	modeCategories uiMode = iota // the taxonomy
	modeRules                    // one category's rules, or a cross-corpus filter
	modeRule                     // a single rule, scrollable
)

// model holds all browser state. Bubble Tea passes it by value, so key
// handlers mutate a copy and return it.
type model struct {
	catalog  *catalog.Catalog
	renderer *render.Renderer
	theme    string

	width  int
	height int

	mode uiMode

	catCursor int
	counts    map[string]int // rules per category prefix

	scopePrefix string          // "" while filtering across the whole corpus
	rules       []*catalog.Rule // rows currently shown in the rule list
	ruleCursor  int

	filter    textinput.Model
	filtering bool

	body    viewport.Model
	current *catalog.Rule

	reloadDir string
	status    string

	quitting bool
}

func newModel(c *catalog.Catalog, opts Options, width, height int) model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "slug, title or tag"
	ti.CharLimit = 64

	m := model{
		catalog:   c,
		renderer:  render.New(width, false, opts.Theme),
		theme:     opts.Theme,
		width:     width,
		height:    height,
		filter:    ti,
		body:      viewport.New(width, bodyHeight(height)),
		reloadDir: opts.ReloadDir,
	}
	m.recount()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

// bodyHeight is the vertical space left between the two-line header and
// the two-line footer.
func bodyHeight(total int) int {
	h := total - 4
	if h < 1 {
		h = 1
	}
	return h
}

// recount refreshes the per-category rule counts after a (re)load.
func (m *model) recount() {
	counts := make(map[string]int, len(catalog.Categories))
	for _, r := range m.catalog.Rules() {
		counts[r.Category]++
	}
	m.counts = counts
}

// baseRules returns the unfiltered rule list for the current scope.
func (m model) baseRules() []*catalog.Rule {
	if m.scopePrefix == "" {
		return m.catalog.Rules()
	}
	rules, err := m.catalog.ByCategory(m.scopePrefix)
	if err != nil {
		return nil
	}
	return rules
}

// refreshRules recomputes the visible rows from the current scope and
// filter text, clamping the cursor to the new bounds.
func (m *model) refreshRules() {
	m.rules = filterRules(m.baseRules(), m.filter.Value())
	if m.ruleCursor >= len(m.rules) {
		m.ruleCursor = len(m.rules) - 1
	}
	if m.ruleCursor < 0 {
		m.ruleCursor = 0
	}
}

// filterRules keeps the rules whose slug, title or tags contain the
// query, case-insensitively. An empty query keeps everything.
func filterRules(rules []*catalog.Rule, query string) []*catalog.Rule {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rules
	}
	var out []*catalog.Rule
	for _, r := range rules {
		if strings.Contains(strings.ToLower(r.Slug), query) ||
			strings.Contains(strings.ToLower(r.Title), query) {
			out = append(out, r)
			continue
		}
		for _, t := range r.Tags {
			if strings.Contains(strings.ToLower(t), query) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// openRule switches to the rule view with the given rule loaded.
func (m *model) openRule(r *catalog.Rule) {
	m.current = r
	m.mode = modeRule
	m.body.SetContent(m.renderer.Rule(r))
	m.body.GotoTop()
}

// startFilter focuses the filter input and shows the current scope
// unfiltered until the user types.
func (m *model) startFilter() tea.Cmd {
	m.filtering = true
	m.filter.Reset()
	m.filter.Focus()
	m.refreshRules()
	return textinput.Blink
}
