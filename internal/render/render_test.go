package render

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ngrules/ngrules/internal/catalog"
)

const testDescriptor = `---
name: angular-best-practices
description: Test corpus.
---

## Categories

| Priority | Prefix | Category | Impact |
| -------- | ------ | -------- | ------ |
| 1 | ` + "`cd-`" + ` | Change Detection | CRITICAL |
| 2 | ` + "`bundle-`" + ` | Bundle Size | CRITICAL |
| 3 | ` + "`template-`" + ` | Template Performance | HIGH |
| 4 | ` + "`component-`" + ` | Component Architecture | HIGH |
| 5 | ` + "`route-`" + ` | Routing & Lazy Loading | HIGH |
| 6 | ` + "`security-`" + ` | Security | HIGH |
| 7 | ` + "`signal-`" + ` | Signals & Reactivity | MEDIUM-HIGH |
| 8 | ` + "`http-`" + ` | HTTP & Data Loading | MEDIUM-HIGH |
| 9 | ` + "`state-`" + ` | State Management | MEDIUM-HIGH |
| 10 | ` + "`form-`" + ` | Forms | MEDIUM |
| 11 | ` + "`di-`" + ` | Dependency Injection | MEDIUM |
| 12 | ` + "`style-`" + ` | Code Style & Maintainability | LOW |

## Quick Reference

- ` + "`cd-onpush`" + ` — Use OnPush change detection
`

const testRule = `---
title: Use OnPush change detection
impact: CRITICAL
impactDescription: Every component re-renders on every event otherwise.
tags:
  - change-detection
  - performance
---

Set OnPush on every component.

## Why it matters

Fewer checks.

## Incorrect

` + "```typescript\nclass A {}\n```" + `

## Correct

` + "```typescript\nclass B {}\n```" + `
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"SKILL.md":           {Data: []byte(testDescriptor)},
		"REFERENCE.md":       {Data: []byte("# Angular Best Practices Reference\n")},
		"rules/cd-onpush.md": {Data: []byte(testRule)},
	}
	c, err := catalog.Load(fsys)
	if err != nil {
		t.Fatalf("loading test corpus: %v", err)
	}
	return c
}

func TestRule_PlainCard(t *testing.T) {
	c := testCatalog(t)
	rule, err := c.Rule("cd-onpush")
	if err != nil {
		t.Fatal(err)
	}

	out := New(80, true, "").Rule(rule)

	for _, want := range []string{
		"cd-onpush · Change Detection",
		"Use OnPush change detection",
		"CRITICAL — Every component re-renders on every event otherwise.",
		"tags: change-detection, performance",
		"## Why it matters",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected card to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRule_StyledCardKeepsContent(t *testing.T) {
	c := testCatalog(t)
	rule, err := c.Rule("cd-onpush")
	if err != nil {
		t.Fatal(err)
	}

	out := New(80, false, "").Rule(rule)
	if !strings.Contains(out, "cd-onpush") {
		t.Errorf("expected slug in styled card, got:\n%s", out)
	}
	if !strings.Contains(out, "OnPush") {
		t.Errorf("expected body content in styled card, got:\n%s", out)
	}
}

func TestRuleList_AlignsColumns(t *testing.T) {
	rules := []*catalog.Rule{
		{Slug: "cd-onpush", Title: "Use OnPush", Impact: catalog.ImpactCritical},
		{Slug: "bundle-lazy-everything", Title: "Lazy load", Impact: catalog.ImpactHigh},
	}

	out := New(80, true, "").RuleList(rules)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}

	// Both impact columns start at the same offset.
	first := strings.Index(lines[0], "CRITICAL")
	second := strings.Index(lines[1], "HIGH")
	if first == -1 || second == -1 {
		t.Fatalf("expected impact columns, got %q", out)
	}
	if first != second {
		t.Errorf("impact columns misaligned: %d vs %d", first, second)
	}
	if !strings.HasSuffix(lines[0], "Use OnPush") {
		t.Errorf("expected title at end of line, got %q", lines[0])
	}
}

func TestRuleList_MissingImpactPlaceholder(t *testing.T) {
	rules := []*catalog.Rule{{Slug: "cd-x", Title: "No impact"}}

	out := New(80, true, "").RuleList(rules)
	if !strings.Contains(out, " -  ") {
		t.Errorf("expected placeholder for missing impact, got %q", out)
	}
}

func TestRuleList_Empty(t *testing.T) {
	out := New(80, true, "").RuleList(nil)
	if out != "no rules" {
		t.Errorf("expected %q, got %q", "no rules", out)
	}
}

func TestCategoryTable(t *testing.T) {
	c := testCatalog(t)

	out := New(80, true, "").CategoryTable(c)
	lines := strings.Split(out, "\n")
	if len(lines) != len(catalog.Categories) {
		t.Fatalf("expected %d lines, got %d", len(catalog.Categories), len(lines))
	}
	if !strings.Contains(lines[0], "cd-") || !strings.Contains(lines[0], "1 rules") {
		t.Errorf("unexpected first row: %q", lines[0])
	}
	if !strings.Contains(lines[11], "style-") || !strings.Contains(lines[11], "0 rules") {
		t.Errorf("unexpected last row: %q", lines[11])
	}
}

func TestProblems(t *testing.T) {
	problems := []catalog.Problem{
		{Path: "SKILL.md", Message: "missing quick reference"},
		{Path: "rules/cd-x.md", Message: "missing title"},
	}

	out := New(80, true, "").Problems(problems)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "warning: SKILL.md: missing quick reference" {
		t.Errorf("unexpected problem line: %q", lines[0])
	}
}

func TestSuggestions(t *testing.T) {
	out := New(80, true, "").Suggestions([]string{"cd-onpush", "cd-signals"})
	if !strings.Contains(out, "did you mean:") {
		t.Errorf("expected hint header, got %q", out)
	}
	if !strings.Contains(out, "cd-onpush") || !strings.Contains(out, "cd-signals") {
		t.Errorf("expected suggested slugs, got %q", out)
	}

	if got := New(80, true, "").Suggestions(nil); got != "" {
		t.Errorf("expected empty output for no suggestions, got %q", got)
	}
}

func TestMarkdown_PlainPassthrough(t *testing.T) {
	md := "# Heading\n\nBody text.\n"
	if got := New(80, true, "").Markdown(md); got != md {
		t.Errorf("plain mode should pass markdown through, got %q", got)
	}
}
