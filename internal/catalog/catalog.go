package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is a loaded, indexed corpus. It is immutable after Load, so
// every surface can share one instance without locking.
type Catalog struct {
	Descriptor *Descriptor
	Reference  string // raw contents of REFERENCE.md
	Problems   []Problem

	rules   map[string]*Rule
	ordered []*Rule // category priority order, then slug
}

// Len returns the number of loaded rules.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Rules returns all rules in category priority order.
func (c *Catalog) Rules() []*Rule {
	out := make([]*Rule, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Rule looks up a rule by its exact slug.
func (c *Catalog) Rule(slug string) (*Rule, error) {
	r, ok := c.rules[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, fmt.Errorf("rule %q: %w", slug, ErrNotFound)
	}
	return r, nil
}

// ByCategory returns one category's rules, identified by prefix.
func (c *Catalog) ByCategory(prefix string) ([]*Rule, error) {
	cat, ok := CategoryByPrefix(prefix)
	if !ok {
		return nil, fmt.Errorf("category %q: %w", prefix, ErrNotFound)
	}
	var out []*Rule
	for _, r := range c.ordered {
		if r.Category == cat.Prefix {
			out = append(out, r)
		}
	}
	return out, nil
}

// ByTag returns all rules carrying the given tag.
func (c *Catalog) ByTag(tag string) []*Rule {
	tag = strings.ToLower(strings.TrimSpace(tag))
	var out []*Rule
	for _, r := range c.ordered {
		for _, t := range r.Tags {
			if strings.ToLower(t) == tag {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ByImpact returns all rules with the given impact rating.
func (c *Catalog) ByImpact(impact Impact) []*Rule {
	var out []*Rule
	for _, r := range c.ordered {
		if r.Impact == impact {
			out = append(out, r)
		}
	}
	return out
}

// Slugs returns every rule slug in category priority order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.ordered))
	for i, r := range c.ordered {
		out[i] = r.Slug
	}
	return out
}

// Tags returns the sorted set of distinct tags across all rules.
func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)
	for _, r := range c.ordered {
		for _, t := range r.Tags {
			seen[strings.ToLower(t)] = true
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Search returns the rules matching every term of query. A rule matches
// a term when the term is a substring of its slug, title, tags, summary,
// or impact description. Matching is case-insensitive; results keep
// catalog order.
func (c *Catalog) Search(query string) []*Rule {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}
	var out []*Rule
	for _, r := range c.ordered {
		hay := r.searchText()
		matched := true
		for _, t := range terms {
			if !strings.Contains(hay, t) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, r)
		}
	}
	return out
}

// searchText returns the lowercase haystack a search term is matched
// against.
func (r *Rule) searchText() string {
	parts := []string{r.Slug, r.Title, r.Summary, r.ImpactDescription}
	parts = append(parts, r.Tags...)
	return strings.ToLower(strings.Join(parts, "\n"))
}

// crossCheck validates the descriptor against the loaded rules: every
// quick-reference entry must name an existing rule, every rule must be
// listed, and the category table must mirror the fixed taxonomy.
func (c *Catalog) crossCheck() {
	if c.Descriptor == nil {
		return
	}

	listed := make(map[string]bool)
	for _, e := range c.Descriptor.QuickRef {
		listed[e.Slug] = true
		if _, ok := c.rules[e.Slug]; !ok {
			c.addProblem(DescriptorFile, fmt.Sprintf("quick reference lists missing rule %q", e.Slug))
		}
	}
	if len(c.Descriptor.QuickRef) == 0 {
		c.addProblem(DescriptorFile, "missing quick reference")
	} else {
		for _, r := range c.ordered {
			if !listed[r.Slug] {
				c.addProblem(DescriptorFile, fmt.Sprintf("rule %q not in quick reference", r.Slug))
			}
		}
	}

	rows := make(map[string]CategoryRow)
	for _, row := range c.Descriptor.Categories {
		rows[row.Prefix] = row
		if _, ok := CategoryByPrefix(row.Prefix); !ok {
			c.addProblem(DescriptorFile, fmt.Sprintf("category table has unknown prefix %q", row.Prefix))
		}
	}
	if len(rows) == 0 {
		c.addProblem(DescriptorFile, "missing category table")
		return
	}
	for _, cat := range Categories {
		row, ok := rows[cat.Prefix]
		if !ok {
			c.addProblem(DescriptorFile, fmt.Sprintf("category table missing %q", cat.Prefix))
			continue
		}
		if row.Impact != cat.Impact || row.Priority != cat.Priority {
			c.addProblem(DescriptorFile, fmt.Sprintf("category table row %q does not match taxonomy", cat.Prefix))
		}
	}
}

func (c *Catalog) addProblem(path, msg string) {
	c.Problems = append(c.Problems, Problem{Path: path, Message: msg})
}
