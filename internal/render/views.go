package render

import (
	"fmt"
	"strings"

	"github.com/ngrules/ngrules/internal/catalog"
)

// Rule renders one rule as a full card: metadata header plus the
// markdown body.
func (r *Renderer) Rule(rule *catalog.Rule) string {
	var b strings.Builder

	cat, _ := catalog.CategoryByPrefix(rule.Category)
	b.WriteString(r.styled(slugStyle, rule.Slug))
	b.WriteString(r.styled(tagStyle, " · "+cat.Name))
	b.WriteString("\n")
	b.WriteString(r.styled(titleStyle, rule.Title))
	b.WriteString("\n")

	if rule.Impact != "" {
		b.WriteString(r.styled(ImpactStyle(rule.Impact), string(rule.Impact)))
		if rule.ImpactDescription != "" {
			b.WriteString(r.styled(summaryStyle, " — "+rule.ImpactDescription))
		}
		b.WriteString("\n")
	}
	if len(rule.Tags) > 0 {
		b.WriteString(r.styled(tagStyle, "tags: "+strings.Join(rule.Tags, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.Markdown(rule.Body))
	return b.String()
}

// RuleList renders rules one per line with aligned columns: slug,
// impact, title.
func (r *Renderer) RuleList(rules []*catalog.Rule) string {
	if len(rules) == 0 {
		return r.styled(summaryStyle, "no rules")
	}

	slugWidth := 0
	for _, rule := range rules {
		if len(rule.Slug) > slugWidth {
			slugWidth = len(rule.Slug)
		}
	}

	var b strings.Builder
	for i, rule := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.styled(slugStyle, fmt.Sprintf("%-*s", slugWidth, rule.Slug)))
		b.WriteString("  ")
		b.WriteString(r.styled(ImpactStyle(rule.Impact), fmt.Sprintf("%-11s", ImpactLabel(rule.Impact))))
		b.WriteString("  ")
		b.WriteString(rule.Title)
	}
	return b.String()
}

// CategoryTable renders the taxonomy with per-category rule counts.
func (r *Renderer) CategoryTable(c *catalog.Catalog) string {
	var b strings.Builder
	for i, cat := range catalog.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		rules, _ := c.ByCategory(cat.Prefix)
		b.WriteString(r.styled(countStyle, fmt.Sprintf("%2d", cat.Priority)))
		b.WriteString("  ")
		b.WriteString(r.styled(slugStyle, fmt.Sprintf("%-10s", cat.Prefix+"-")))
		b.WriteString("  ")
		b.WriteString(r.styled(categoryStyle, fmt.Sprintf("%-29s", cat.Name)))
		b.WriteString("  ")
		b.WriteString(r.styled(ImpactStyle(cat.Impact), fmt.Sprintf("%-11s", string(cat.Impact))))
		b.WriteString("  ")
		b.WriteString(r.styled(countStyle, fmt.Sprintf("%d rules", len(rules))))
	}
	return b.String()
}

// Problems renders corpus defects one per line, for stderr.
func (r *Renderer) Problems(problems []catalog.Problem) string {
	var b strings.Builder
	for i, p := range problems {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.styled(problemStyle, "warning: "+p.String()))
	}
	return b.String()
}

// Suggestions renders a "did you mean" hint for a failed slug lookup.
func (r *Renderer) Suggestions(slugs []string) string {
	if len(slugs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("did you mean:\n")
	for _, s := range slugs {
		b.WriteString("  " + r.styled(slugStyle, s) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ImpactLabel is the list-column text for an impact, "-" when missing.
func ImpactLabel(impact catalog.Impact) string {
	if impact == "" {
		return "-"
	}
	return string(impact)
}
