package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRule_Valid(t *testing.T) {
	content := `---
title: Use OnPush change detection
impact: CRITICAL
impactDescription: Every component re-renders on every event otherwise.
tags:
  - change-detection
  - performance
---

Components should opt into OnPush.

## Incorrect

` + "```typescript\n@Component({})\n```" + `
`

	rule, problems := parseRule("rules/cd-onpush.md", content)
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if rule.Slug != "cd-onpush" {
		t.Errorf("expected slug 'cd-onpush', got %q", rule.Slug)
	}
	if rule.Title != "Use OnPush change detection" {
		t.Errorf("unexpected title: %q", rule.Title)
	}
	if rule.Impact != ImpactCritical {
		t.Errorf("expected CRITICAL, got %q", rule.Impact)
	}
	if rule.ImpactDescription != "Every component re-renders on every event otherwise." {
		t.Errorf("unexpected impact description: %q", rule.ImpactDescription)
	}
	if len(rule.Tags) != 2 || rule.Tags[0] != "change-detection" {
		t.Errorf("unexpected tags: %v", rule.Tags)
	}
	if rule.Category != "cd" {
		t.Errorf("expected category 'cd', got %q", rule.Category)
	}
	if rule.Summary != "Components should opt into OnPush." {
		t.Errorf("unexpected summary: %q", rule.Summary)
	}
}

func TestParseRule_MissingTitle(t *testing.T) {
	content := `---
impact: HIGH
impactDescription: Something slow.
tags:
  - performance
---
Body.`

	rule, problems := parseRule("rules/cd-zones.md", content)
	if rule == nil {
		t.Fatal("expected rule despite missing title")
	}
	if rule.Title != "cd-zones" {
		t.Errorf("expected slug fallback title, got %q", rule.Title)
	}
	if !problemsContain(problems, "missing title") {
		t.Errorf("expected missing-title problem, got %v", problems)
	}
}

func TestParseRule_InvalidImpact(t *testing.T) {
	content := `---
title: Some rule
impact: SEVERE
impactDescription: Bad.
tags:
  - x
---
Body.`

	rule, problems := parseRule("rules/cd-x.md", content)
	if rule == nil {
		t.Fatal("expected rule despite invalid impact")
	}
	if rule.Impact != "" {
		t.Errorf("expected empty impact, got %q", rule.Impact)
	}
	if !problemsContain(problems, `invalid impact "SEVERE"`) {
		t.Errorf("expected invalid-impact problem, got %v", problems)
	}
}

func TestParseRule_MissingImpact(t *testing.T) {
	content := `---
title: Some rule
tags:
  - x
---
Body.`

	_, problems := parseRule("rules/cd-x.md", content)
	if !problemsContain(problems, "missing impact") {
		t.Errorf("expected missing-impact problem, got %v", problems)
	}
}

func TestParseRule_LowercasesImpact(t *testing.T) {
	content := `---
title: Some rule
impact: medium-high
impactDescription: Meh.
tags:
  - x
---
Body.`

	rule, problems := parseRule("rules/cd-x.md", content)
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if rule.Impact != ImpactMediumHigh {
		t.Errorf("expected MEDIUM-HIGH, got %q", rule.Impact)
	}
}

func TestParseRule_MissingTags(t *testing.T) {
	content := `---
title: Some rule
impact: LOW
impactDescription: Minor.
---
Body.`

	rule, problems := parseRule("rules/style-x.md", content)
	if rule == nil {
		t.Fatal("expected rule despite missing tags")
	}
	if !problemsContain(problems, "missing tags") {
		t.Errorf("expected missing-tags problem, got %v", problems)
	}
}

func TestParseRule_NoFrontmatter(t *testing.T) {
	rule, problems := parseRule("rules/cd-x.md", "Just a body.")
	if rule != nil {
		t.Errorf("expected nil rule, got %+v", rule)
	}
	if !problemsContain(problems, "missing frontmatter") {
		t.Errorf("expected missing-frontmatter problem, got %v", problems)
	}
}

func TestParseRule_UnterminatedFrontmatter(t *testing.T) {
	rule, problems := parseRule("rules/cd-x.md", "---\ntitle: Broken\n")
	if rule != nil {
		t.Errorf("expected nil rule, got %+v", rule)
	}
	if !problemsContain(problems, "unterminated frontmatter") {
		t.Errorf("expected unterminated-frontmatter problem, got %v", problems)
	}
}

func TestParseRule_UnknownPrefix(t *testing.T) {
	content := `---
title: Some rule
impact: LOW
impactDescription: Minor.
tags:
  - x
---
Body.`

	rule, problems := parseRule("rules/zone-x.md", content)
	if rule != nil {
		t.Errorf("expected nil rule for unknown prefix, got %+v", rule)
	}
	if !problemsContain(problems, `unknown category prefix "zone"`) {
		t.Errorf("expected unknown-prefix problem, got %v", problems)
	}
}

func TestParseRule_UppercaseFilename(t *testing.T) {
	content := `---
title: Some rule
impact: LOW
impactDescription: Minor.
tags:
  - x
---
Body.`

	rule, _ := parseRule("rules/STYLE-Naming.md", content)
	if rule == nil {
		t.Fatal("expected rule")
	}
	if rule.Slug != "style-naming" {
		t.Errorf("expected lowercased slug, got %q", rule.Slug)
	}
}

func TestFirstProseLine(t *testing.T) {
	if got := firstProseLine("\n\n## Head\n\nProse here.\nMore."); got != "Prose here." {
		t.Errorf("expected 'Prose here.', got %q", got)
	}
	if got := firstProseLine(""); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "SKILL.md", `---
name: angular-best-practices
description: Test corpus
---

## Quick Reference

- `+"`cd-onpush`"+` — Use OnPush
`)
	writeCorpusFile(t, dir, "REFERENCE.md", "# Reference\n")
	writeCorpusFile(t, dir, filepath.Join("rules", "cd-onpush.md"), `---
title: Use OnPush change detection
impact: CRITICAL
impactDescription: Re-renders everywhere.
tags:
  - performance
---
Body.`)

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 rule, got %d", c.Len())
	}
	if _, err := c.Rule("cd-onpush"); err != nil {
		t.Errorf("Rule: %v", err)
	}
}

func TestLoadDir_Missing(t *testing.T) {
	if _, err := LoadDir("/nonexistent/corpus"); err == nil {
		t.Fatal("expected error for nonexistent corpus dir")
	}
}

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func problemsContain(problems []Problem, substr string) bool {
	for _, p := range problems {
		if strings.Contains(p.Message, substr) {
			return true
		}
	}
	return false
}
