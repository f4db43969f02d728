package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Compile renders the whole catalog as one long-form document in the
// same shape as REFERENCE.md: rules numbered sequentially, grouped
// under category headings in priority order. REFERENCE.md itself is
// maintained by hand; Compile exists so the two can be checked against
// each other and so surfaces can serve a reference built from whatever
// corpus they loaded.
func (c *Catalog) Compile() string {
	var b strings.Builder
	b.WriteString("# Angular Best Practices Reference\n\n")
	b.WriteString("The complete rule set in one document, for readers that cannot browse\n")
	b.WriteString("individual files. See SKILL.md for the category table and the quick\n")
	b.WriteString("reference.\n")

	n := 0
	for _, cat := range Categories {
		rules, _ := c.ByCategory(cat.Prefix)
		if len(rules) == 0 {
			continue
		}
		b.WriteString("\n## " + cat.Name + "\n")
		for _, r := range rules {
			n++
			fmt.Fprintf(&b, "\n### %d. %s\n", n, r.Title)
			if r.Impact != "" {
				b.WriteString("\n**Impact:** " + string(r.Impact))
				if r.ImpactDescription != "" {
					b.WriteString(" — " + r.ImpactDescription)
				}
				b.WriteString("\n")
			}
			if len(r.Tags) > 0 {
				b.WriteString("\n**Tags:** " + strings.Join(r.Tags, ", ") + "\n")
			}
			if r.Body != "" {
				b.WriteString("\n" + demoteHeadings(r.Body) + "\n")
			}
		}
	}
	return b.String()
}

// demoteHeadings shifts markdown headings down two levels so rule
// bodies nest under their numbered section heading. Lines inside
// fenced code blocks are left alone.
func demoteHeadings(md string) string {
	lines := strings.Split(md, "\n")
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "#") {
			lines[i] = "##" + line
		}
	}
	return strings.Join(lines, "\n")
}

// ReferenceSection is one numbered rule section of a compiled document.
type ReferenceSection struct {
	Number int
	Title  string
}

// ParseReferenceSections extracts the numbered "### n. Title" headings
// of a compiled document, in order. Fenced code blocks are skipped.
func ParseReferenceSections(doc string) []ReferenceSection {
	var out []ReferenceSection
	inFence := false
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(line, "### ") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, "### "))
		numStr, title, found := strings.Cut(rest, ".")
		if !found {
			continue
		}
		num, err := strconv.Atoi(strings.TrimSpace(numStr))
		if err != nil {
			continue
		}
		out = append(out, ReferenceSection{Number: num, Title: strings.TrimSpace(title)})
	}
	return out
}
