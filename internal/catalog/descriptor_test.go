package catalog

import "testing"

func TestParseDescriptor_Full(t *testing.T) {
	content := `---
name: angular-best-practices
description: Angular performance best practices
---

# Angular Best Practices

Some intro.

## Categories

| Priority | Prefix | Category | Impact |
|----------|--------|----------|--------|
| 1 | ` + "`cd-`" + ` | Change Detection | CRITICAL |
| 2 | ` + "`bundle-`" + ` | Bundle Size | CRITICAL |

## Quick Reference

### Change Detection

- ` + "`cd-onpush`" + ` — Use OnPush change detection
- ` + "`cd-track`" + ` — Always provide track expressions
`

	d, problems := ParseDescriptor(content)
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if d.Name != "angular-best-practices" {
		t.Errorf("unexpected name: %q", d.Name)
	}
	if d.Description != "Angular performance best practices" {
		t.Errorf("unexpected description: %q", d.Description)
	}

	if len(d.Categories) != 2 {
		t.Fatalf("expected 2 category rows, got %d", len(d.Categories))
	}
	row := d.Categories[0]
	if row.Priority != 1 || row.Prefix != "cd" || row.Name != "Change Detection" || row.Impact != ImpactCritical {
		t.Errorf("unexpected first row: %+v", row)
	}

	if len(d.QuickRef) != 2 {
		t.Fatalf("expected 2 quick-ref entries, got %d", len(d.QuickRef))
	}
	if d.QuickRef[0].Slug != "cd-onpush" {
		t.Errorf("unexpected slug: %q", d.QuickRef[0].Slug)
	}
	if d.QuickRef[0].Summary != "Use OnPush change detection" {
		t.Errorf("unexpected summary: %q", d.QuickRef[0].Summary)
	}
}

func TestParseDescriptor_MissingMetadata(t *testing.T) {
	_, problems := ParseDescriptor("---\n---\n\nBody.")
	if !problemsContain(problems, "missing name") {
		t.Errorf("expected missing-name problem, got %v", problems)
	}
	if !problemsContain(problems, "missing description") {
		t.Errorf("expected missing-description problem, got %v", problems)
	}
}

func TestParseDescriptor_NoFrontmatter(t *testing.T) {
	d, problems := ParseDescriptor("# Just a heading\n")
	if !problemsContain(problems, "missing frontmatter") {
		t.Errorf("expected missing-frontmatter problem, got %v", problems)
	}
	if d.Body == "" {
		t.Error("expected body to be preserved")
	}
}

func TestParseDescriptor_MalformedQuickRef(t *testing.T) {
	content := `---
name: x
description: y
---

## Quick Reference

- ` + "`" + ` — no slug between backticks
`

	_, problems := ParseDescriptor(content)
	if !problemsContain(problems, "malformed quick reference entry") {
		t.Errorf("expected malformed-entry problem, got %v", problems)
	}
}

func TestParseDescriptor_BulletsOutsideQuickRefIgnored(t *testing.T) {
	content := `---
name: x
description: y
---

## Overview

- ` + "`some-code`" + ` — not a rule listing

## Quick Reference

- ` + "`cd-onpush`" + ` — Use OnPush
`

	d, problems := ParseDescriptor(content)
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if len(d.QuickRef) != 1 || d.QuickRef[0].Slug != "cd-onpush" {
		t.Errorf("expected only the quick-reference bullet, got %+v", d.QuickRef)
	}
}

func TestParseQuickRefEntry_SeparatorVariants(t *testing.T) {
	cases := []struct {
		line    string
		summary string
	}{
		{"- `cd-onpush` — Use OnPush", "Use OnPush"},
		{"- `cd-onpush` - Use OnPush", "Use OnPush"},
		{"- `cd-onpush`: Use OnPush", "Use OnPush"},
		{"- `cd-onpush`", ""},
	}
	for _, tc := range cases {
		entry, ok := parseQuickRefEntry(tc.line)
		if !ok {
			t.Errorf("parseQuickRefEntry(%q) failed", tc.line)
			continue
		}
		if entry.Slug != "cd-onpush" {
			t.Errorf("line %q: unexpected slug %q", tc.line, entry.Slug)
		}
		if entry.Summary != tc.summary {
			t.Errorf("line %q: expected summary %q, got %q", tc.line, tc.summary, entry.Summary)
		}
	}
}

func TestParseCategoryRow_SkipsHeaderAndSeparator(t *testing.T) {
	if _, ok := parseCategoryRow("| Priority | Prefix | Category | Impact |"); ok {
		t.Error("header row should not parse")
	}
	if _, ok := parseCategoryRow("|----------|--------|----------|--------|"); ok {
		t.Error("separator row should not parse")
	}
	row, ok := parseCategoryRow("| 3 | `template-` | Template Performance | HIGH |")
	if !ok {
		t.Fatal("valid row should parse")
	}
	if row.Prefix != "template" || row.Priority != 3 || row.Impact != ImpactHigh {
		t.Errorf("unexpected row: %+v", row)
	}
}
