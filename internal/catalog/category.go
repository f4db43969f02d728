package catalog

import "strings"

// Category is one of the twelve fixed rule groupings. Every rule slug
// starts with its category's prefix followed by a hyphen.
type Category struct {
	Prefix   string // slug prefix without the trailing hyphen, e.g. "cd"
	Name     string
	Impact   Impact // impact tier of the category as a whole
	Priority int    // 1 is highest; governs listing and compile order
}

// Categories is the fixed taxonomy, in priority order. The skill
// descriptor's category table mirrors this set.
var Categories = []Category{
	{Prefix: "cd", Name: "Change Detection", Impact: ImpactCritical, Priority: 1},
	{Prefix: "bundle", Name: "Bundle Size", Impact: ImpactCritical, Priority: 2},
	{Prefix: "template", Name: "Template Performance", Impact: ImpactHigh, Priority: 3},
	{Prefix: "component", Name: "Component Architecture", Impact: ImpactHigh, Priority: 4},
	{Prefix: "route", Name: "Routing & Lazy Loading", Impact: ImpactHigh, Priority: 5},
	{Prefix: "security", Name: "Security", Impact: ImpactHigh, Priority: 6},
	{Prefix: "signal", Name: "Signals & Reactivity", Impact: ImpactMediumHigh, Priority: 7},
	{Prefix: "http", Name: "HTTP & Data Loading", Impact: ImpactMediumHigh, Priority: 8},
	{Prefix: "state", Name: "State Management", Impact: ImpactMediumHigh, Priority: 9},
	{Prefix: "form", Name: "Forms", Impact: ImpactMedium, Priority: 10},
	{Prefix: "di", Name: "Dependency Injection", Impact: ImpactMedium, Priority: 11},
	{Prefix: "style", Name: "Code Style & Maintainability", Impact: ImpactLow, Priority: 12},
}

// CategoryByPrefix looks up a category by its slug prefix. Accepts the
// prefix with or without the trailing hyphen ("cd" and "cd-" both work).
func CategoryByPrefix(prefix string) (Category, bool) {
	prefix = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(prefix)), "-")
	for _, c := range Categories {
		if c.Prefix == prefix {
			return c, true
		}
	}
	return Category{}, false
}

// SlugPrefix returns the category prefix of a rule slug (the part before
// the first hyphen). Returns "" if the slug has no hyphen.
func SlugPrefix(slug string) string {
	prefix, _, found := strings.Cut(slug, "-")
	if !found {
		return ""
	}
	return prefix
}
