package browse

import (
	"fmt"
	"strings"

	"github.com/ngrules/ngrules/internal/catalog"
	"github.com/ngrules/ngrules/internal/render"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeRules:
		return m.viewRules()
	case modeRule:
		return m.viewRule()
	default:
		return m.viewCategories()
	}
}

func (m model) viewCategories() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("ngrules"))
	b.WriteString(countStyle.Render(fmt.Sprintf("  %d rules in %d categories",
		m.catalog.Len(), len(catalog.Categories))))
	b.WriteString("\n\n")

	start, end := listWindow(len(catalog.Categories), m.catCursor, m.listHeight())
	for i := start; i < end; i++ {
		b.WriteString(m.categoryRow(catalog.Categories[i], i == m.catCursor))
		b.WriteString("\n")
	}

	b.WriteString(m.pad(2 + end - start))
	b.WriteString(m.footer("enter open · / filter all · q quit"))
	return b.String()
}

func (m model) viewRules() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("ngrules"))
	b.WriteString(crumbStyle.Render(" · " + m.scopeName()))
	if q := m.filter.Value(); q != "" {
		b.WriteString(countStyle.Render(fmt.Sprintf("  %d of %d rules",
			len(m.rules), len(m.baseRules()))))
	} else {
		b.WriteString(countStyle.Render(fmt.Sprintf("  %d rules", len(m.rules))))
	}
	b.WriteString("\n\n")

	lines := 0
	if len(m.rules) == 0 {
		b.WriteString(dimStyle.Render("no rules match"))
		b.WriteString("\n")
		lines = 1
	} else {
		start, end := listWindow(len(m.rules), m.ruleCursor, m.listHeight())
		for i := start; i < end; i++ {
			b.WriteString(m.ruleRow(m.rules[i], i == m.ruleCursor))
			b.WriteString("\n")
		}
		lines = end - start
	}

	b.WriteString(m.pad(2 + lines))
	b.WriteString(m.footer("enter read · / filter · esc back · q quit"))
	return b.String()
}

func (m model) viewRule() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("ngrules"))
	if m.current != nil {
		cat, _ := catalog.CategoryByPrefix(m.current.Category)
		b.WriteString(crumbStyle.Render(" · " + cat.Name + " · " + m.current.Slug))
	}
	b.WriteString("\n\n")

	b.WriteString(m.body.View())
	b.WriteString("\n")

	line := countStyle.Render(fmt.Sprintf("%3.0f%%", m.body.ScrollPercent()*100))
	if m.status != "" {
		line = statusStyle.Render(m.status) + "  " + line
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll · esc back · q quit"))
	return b.String()
}

func (m model) categoryRow(cat catalog.Category, selected bool) string {
	cursor := "  "
	prefix := fmt.Sprintf("%-10s", cat.Prefix+"-")
	name := fmt.Sprintf("%-29s", cat.Name)
	if selected {
		cursor = cursorStyle.Render("> ")
		prefix = selectedStyle.Render(prefix)
		name = selectedStyle.Render(name)
	} else {
		prefix = rowSlugStyle.Render(prefix)
	}
	impact := render.ImpactStyle(cat.Impact).Render(fmt.Sprintf("%-11s", string(cat.Impact)))
	count := countStyle.Render(fmt.Sprintf("%d rules", m.counts[cat.Prefix]))
	return cursor + prefix + "  " + name + "  " + impact + "  " + count
}

func (m model) ruleRow(r *catalog.Rule, selected bool) string {
	cursor := "  "
	slug := fmt.Sprintf("%-28s", r.Slug)
	title := truncate(r.Title, m.width-46)
	if selected {
		cursor = cursorStyle.Render("> ")
		slug = selectedStyle.Render(slug)
		title = selectedStyle.Render(title)
	} else {
		slug = rowSlugStyle.Render(slug)
	}
	impact := render.ImpactStyle(r.Impact).Render(fmt.Sprintf("%-11s", render.ImpactLabel(r.Impact)))
	return cursor + slug + "  " + impact + "  " + title
}

// scopeName is the breadcrumb for the rule list.
func (m model) scopeName() string {
	if m.scopePrefix == "" {
		return "all rules"
	}
	cat, ok := catalog.CategoryByPrefix(m.scopePrefix)
	if !ok {
		return m.scopePrefix
	}
	return cat.Name
}

func (m model) listHeight() int {
	return bodyHeight(m.height)
}

// pad fills the gap between the list and the footer so the footer sits
// on the bottom rows of the terminal.
func (m model) pad(used int) string {
	gap := m.height - used - 2
	if gap < 0 {
		gap = 0
	}
	return strings.Repeat("\n", gap)
}

// footer renders the status or filter line plus the key help line.
func (m model) footer(help string) string {
	line := ""
	switch {
	case m.filtering:
		line = m.filter.View()
	case m.status != "":
		line = statusStyle.Render(m.status)
	case m.filter.Value() != "":
		line = dimStyle.Render("filter: " + m.filter.Value())
	}
	return line + "\n" + helpStyle.Render(help)
}

// listWindow returns the slice bounds that keep the cursor visible in a
// window of h rows.
func listWindow(n, cursor, h int) (start, end int) {
	if h >= n {
		return 0, n
	}
	start = cursor - h + 1
	if start < 0 {
		start = 0
	}
	end = start + h
	if end > n {
		end = n
	}
	return start, end
}

// truncate shortens s to at most max runes, ending with an ellipsis.
func truncate(s string, max int) string {
	if max <= 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
