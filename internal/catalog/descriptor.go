package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor is the parsed skill descriptor (SKILL.md): the document a
// reader consults first to discover the taxonomy and the rule set.
type Descriptor struct {
	Name        string
	Description string
	Categories  []CategoryRow   // rows of the category table
	QuickRef    []QuickRefEntry // flat list of every rule with a one-line summary
	Body        string          // markdown body after the frontmatter
}

// CategoryRow is one row of the descriptor's category table. It mirrors
// a Category; crossCheck verifies the two stay in sync.
type CategoryRow struct {
	Priority int
	Prefix   string
	Name     string
	Impact   Impact
}

// QuickRefEntry is one bullet of the descriptor's quick-reference list.
type QuickRefEntry struct {
	Slug    string
	Summary string
}

// descriptorFrontmatter mirrors the YAML block at the top of SKILL.md.
type descriptorFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseDescriptor parses SKILL.md. The category table is recognized as
// pipe-table rows under a "## Categories" heading; quick-reference
// entries as "- `slug` — summary" bullets under "## Quick Reference".
// Defects are returned as problems alongside the best-effort result.
func ParseDescriptor(content string) (*Descriptor, []Problem) {
	d := &Descriptor{}
	var problems []Problem

	fm, body, err := splitFrontmatter(content)
	if err != nil {
		problems = append(problems, Problem{Path: DescriptorFile, Message: err.Error()})
		d.Body = strings.TrimSpace(content)
	} else {
		var meta descriptorFrontmatter
		if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
			problems = append(problems, Problem{Path: DescriptorFile, Message: fmt.Sprintf("invalid frontmatter: %v", err)})
		}
		d.Name = strings.TrimSpace(meta.Name)
		d.Description = strings.TrimSpace(meta.Description)
		d.Body = strings.TrimSpace(body)
	}

	if d.Name == "" {
		problems = append(problems, Problem{Path: DescriptorFile, Message: "missing name"})
	}
	if d.Description == "" {
		problems = append(problems, Problem{Path: DescriptorFile, Message: "missing description"})
	}

	section := ""
	for _, line := range strings.Split(d.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "## ") {
			section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")))
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "|") && strings.Contains(section, "categor"):
			if row, ok := parseCategoryRow(trimmed); ok {
				d.Categories = append(d.Categories, row)
			}
		case strings.HasPrefix(trimmed, "- `") && strings.Contains(section, "quick reference"):
			entry, ok := parseQuickRefEntry(trimmed)
			if !ok {
				problems = append(problems, Problem{Path: DescriptorFile, Message: "malformed quick reference entry: " + trimmed})
				continue
			}
			d.QuickRef = append(d.QuickRef, entry)
		}
	}

	return d, problems
}

// parseCategoryRow parses one pipe-table row. Header and separator rows
// are rejected because their first cell is not an integer priority.
func parseCategoryRow(line string) (CategoryRow, bool) {
	cells := splitTableRow(line)
	if len(cells) < 4 {
		return CategoryRow{}, false
	}
	priority, err := strconv.Atoi(cells[0])
	if err != nil {
		return CategoryRow{}, false
	}
	impact, ok := ParseImpact(cells[3])
	if !ok {
		return CategoryRow{}, false
	}
	prefix := strings.TrimSuffix(strings.Trim(cells[1], "`"), "-")
	return CategoryRow{
		Priority: priority,
		Prefix:   prefix,
		Name:     cells[2],
		Impact:   impact,
	}, true
}

// splitTableRow splits a markdown table row into trimmed cells.
func splitTableRow(line string) []string {
	line = strings.Trim(strings.TrimSpace(line), "|")
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// parseQuickRefEntry parses a "- `slug` — summary" bullet.
func parseQuickRefEntry(line string) (QuickRefEntry, bool) {
	rest := strings.TrimPrefix(strings.TrimSpace(line), "- ")
	if !strings.HasPrefix(rest, "`") {
		return QuickRefEntry{}, false
	}
	slug, rest, found := strings.Cut(rest[1:], "`")
	if !found || slug == "" {
		return QuickRefEntry{}, false
	}
	summary := strings.TrimSpace(rest)
	for _, sep := range []string{"—", "–", "-", ":"} {
		if strings.HasPrefix(summary, sep) {
			summary = strings.TrimSpace(strings.TrimPrefix(summary, sep))
			break
		}
	}
	return QuickRefEntry{Slug: slug, Summary: summary}, true
}
