package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Corpus layout. Paths are relative to the corpus root.
const (
	DescriptorFile = "SKILL.md"
	ReferenceFile  = "REFERENCE.md"
	rulesPattern   = "rules/*.md"
)

// ruleFrontmatter mirrors the YAML block at the top of each rule file.
type ruleFrontmatter struct {
	Title             string   `yaml:"title"`
	Impact            string   `yaml:"impact"`
	ImpactDescription string   `yaml:"impactDescription"`
	Tags              []string `yaml:"tags"`
}

// Load reads a corpus from fsys and builds the catalog. It returns an
// error only for corpus-level failures (no descriptor, unreadable rules
// directory). Per-file defects become Problems on the returned catalog
// and loading continues past them.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{rules: make(map[string]*Rule)}

	data, err := fs.ReadFile(fsys, DescriptorFile)
	if err != nil {
		return nil, fmt.Errorf("reading skill descriptor: %w", err)
	}
	desc, descProblems := ParseDescriptor(string(data))
	c.Descriptor = desc
	c.Problems = append(c.Problems, descProblems...)

	if ref, err := fs.ReadFile(fsys, ReferenceFile); err == nil {
		c.Reference = string(ref)
	} else {
		c.addProblem(ReferenceFile, "compiled reference missing")
	}

	matches, err := doublestar.Glob(fsys, rulesPattern)
	if err != nil {
		return nil, fmt.Errorf("matching rule files: %w", err)
	}
	sort.Strings(matches)

	for _, p := range matches {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			c.addProblem(p, fmt.Sprintf("unreadable: %v", err))
			continue
		}
		rule, problems := parseRule(p, string(data))
		c.Problems = append(c.Problems, problems...)
		if rule == nil {
			continue
		}
		if _, dup := c.rules[rule.Slug]; dup {
			c.addProblem(p, fmt.Sprintf("duplicate slug %q", rule.Slug))
			continue
		}
		c.rules[rule.Slug] = rule
		c.ordered = append(c.ordered, rule)
	}

	sortRules(c.ordered)
	c.crossCheck()
	return c, nil
}

// LoadDir loads a corpus from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// parseRule parses a single rule file. Defects that leave the rule
// usable (missing title, bad impact, no tags) are recorded as problems
// and the rule is still returned, with fallbacks where needed. A nil
// rule means the file could not be placed in the catalog at all.
func parseRule(filePath, content string) (*Rule, []Problem) {
	slug := strings.ToLower(strings.TrimSuffix(path.Base(filePath), ".md"))
	var problems []Problem

	prefix := SlugPrefix(slug)
	if _, ok := CategoryByPrefix(prefix); !ok {
		problems = append(problems, Problem{Path: filePath, Message: fmt.Sprintf("unknown category prefix %q", prefix)})
		return nil, problems
	}

	fm, body, err := splitFrontmatter(content)
	if err != nil {
		problems = append(problems, Problem{Path: filePath, Message: err.Error()})
		return nil, problems
	}

	var meta ruleFrontmatter
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		problems = append(problems, Problem{Path: filePath, Message: fmt.Sprintf("invalid frontmatter: %v", err)})
		return nil, problems
	}

	r := &Rule{
		Slug:              slug,
		Title:             strings.TrimSpace(meta.Title),
		ImpactDescription: strings.TrimSpace(meta.ImpactDescription),
		Tags:              meta.Tags,
		Body:              strings.TrimSpace(body),
		Category:          prefix,
		FilePath:          filePath,
	}
	r.Summary = firstProseLine(r.Body)

	if r.Title == "" {
		problems = append(problems, Problem{Path: filePath, Message: "missing title"})
		// Use the slug as a fallback title so listings stay readable.
		r.Title = slug
	}

	if impact, ok := ParseImpact(meta.Impact); ok {
		r.Impact = impact
	} else if strings.TrimSpace(meta.Impact) == "" {
		problems = append(problems, Problem{Path: filePath, Message: "missing impact"})
	} else {
		problems = append(problems, Problem{Path: filePath, Message: fmt.Sprintf("invalid impact %q", meta.Impact)})
	}

	if len(r.Tags) == 0 {
		problems = append(problems, Problem{Path: filePath, Message: "missing tags"})
	}

	return r, problems
}

// splitFrontmatter separates the YAML frontmatter from the markdown
// body. Frontmatter is delimited by "---" lines at the top of the file.
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	if !strings.HasPrefix(content, "---") {
		return "", "", fmt.Errorf("missing frontmatter")
	}
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return "", "", fmt.Errorf("unterminated frontmatter")
	}
	return parts[1], parts[2], nil
}

// firstProseLine returns the first body line that is neither blank nor
// markup, for use as a one-line summary in listings.
func firstProseLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		return line
	}
	return ""
}

// sortRules orders rules by category priority, then slug.
func sortRules(rules []*Rule) {
	sort.Slice(rules, func(i, j int) bool {
		ci, _ := CategoryByPrefix(rules[i].Category)
		cj, _ := CategoryByPrefix(rules[j].Category)
		if ci.Priority != cj.Priority {
			return ci.Priority < cj.Priority
		}
		return rules[i].Slug < rules[j].Slug
	})
}
