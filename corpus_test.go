package ngrules

import (
	"strings"
	"testing"

	"github.com/ngrules/ngrules/internal/catalog"
)

func loadCorpus(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(Corpus())
	if err != nil {
		t.Fatalf("loading embedded corpus: %v", err)
	}
	return c
}

func TestCorpus_LoadsClean(t *testing.T) {
	c := loadCorpus(t)

	for _, p := range c.Problems {
		t.Errorf("corpus problem: %s", p)
	}
	if c.Len() != 57 {
		t.Errorf("expected 57 rules, got %d", c.Len())
	}
	if c.Descriptor.Name != "angular-best-practices" {
		t.Errorf("unexpected descriptor name %q", c.Descriptor.Name)
	}
	if c.Descriptor.Description == "" {
		t.Error("descriptor has no description")
	}
}

func TestCorpus_RuleMetadata(t *testing.T) {
	c := loadCorpus(t)

	for _, r := range c.Rules() {
		if r.Title == "" {
			t.Errorf("%s: empty title", r.Slug)
		}
		if !r.Impact.Valid() {
			t.Errorf("%s: invalid impact %q", r.Slug, r.Impact)
		}
		if r.ImpactDescription == "" {
			t.Errorf("%s: empty impact description", r.Slug)
		}
		if len(r.Tags) == 0 {
			t.Errorf("%s: no tags", r.Slug)
		}
		if r.Summary == "" {
			t.Errorf("%s: no summary line", r.Slug)
		}
		if !strings.Contains(r.Body, "## Incorrect") || !strings.Contains(r.Body, "## Correct") {
			t.Errorf("%s: missing incorrect/correct sections", r.Slug)
		}
	}
}

func TestCorpus_QuickReferenceComplete(t *testing.T) {
	c := loadCorpus(t)

	listed := make(map[string]bool)
	for _, e := range c.Descriptor.QuickRef {
		listed[e.Slug] = true
		if _, err := c.Rule(e.Slug); err != nil {
			t.Errorf("quick reference lists %q but no such rule file", e.Slug)
		}
		if e.Summary == "" {
			t.Errorf("quick reference entry %q has no summary", e.Slug)
		}
	}
	for _, slug := range c.Slugs() {
		if !listed[slug] {
			t.Errorf("rule %q missing from quick reference", slug)
		}
	}
}

func TestCorpus_CategoryCoverage(t *testing.T) {
	c := loadCorpus(t)

	for _, cat := range catalog.Categories {
		rules, err := c.ByCategory(cat.Prefix)
		if err != nil {
			t.Fatalf("category %q: %v", cat.Prefix, err)
		}
		if len(rules) == 0 {
			t.Errorf("category %q has no rules", cat.Prefix)
		}
	}

	// Every rule slug resolves to a declared category.
	for _, r := range c.Rules() {
		if _, ok := catalog.CategoryByPrefix(r.Category); !ok {
			t.Errorf("%s: undeclared category prefix %q", r.Slug, r.Category)
		}
	}

	if len(c.Descriptor.Categories) != len(catalog.Categories) {
		t.Errorf("descriptor table has %d rows, taxonomy has %d",
			len(c.Descriptor.Categories), len(catalog.Categories))
	}
}

func TestCorpus_ReferenceMatchesCompiled(t *testing.T) {
	c := loadCorpus(t)

	compiled := catalog.ParseReferenceSections(c.Compile())
	checkedIn := catalog.ParseReferenceSections(c.Reference)

	if len(compiled) != len(checkedIn) {
		t.Fatalf("compiled reference has %d sections, REFERENCE.md has %d",
			len(compiled), len(checkedIn))
	}
	for i := range compiled {
		if compiled[i].Number != checkedIn[i].Number || compiled[i].Title != checkedIn[i].Title {
			t.Errorf("section %d: compiled %q, checked in %q",
				compiled[i].Number, compiled[i].Title, checkedIn[i].Title)
		}
	}
}
