// Package catalog implements loading, indexing, and retrieval of the
// Angular best-practices knowledge base.
//
// A corpus is any fs.FS with the following layout:
//   - SKILL.md      (skill descriptor: metadata, category table, quick reference)
//   - REFERENCE.md  (compiled aggregate of all rules under numbered sections)
//   - rules/*.md    (one Markdown file per rule, with YAML frontmatter)
package catalog

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a slug or category prefix does not exist
// in the loaded corpus.
var ErrNotFound = errors.New("not found")

// Impact is a rule's impact rating. The set of valid values is closed.
type Impact string

const (
	ImpactCritical   Impact = "CRITICAL"
	ImpactHigh       Impact = "HIGH"
	ImpactMediumHigh Impact = "MEDIUM-HIGH"
	ImpactMedium     Impact = "MEDIUM"
	ImpactLow        Impact = "LOW"
)

// validImpacts is the closed set of impact ratings.
var validImpacts = map[Impact]bool{
	ImpactCritical:   true,
	ImpactHigh:       true,
	ImpactMediumHigh: true,
	ImpactMedium:     true,
	ImpactLow:        true,
}

// ParseImpact validates an impact string from frontmatter. Matching is
// case-insensitive but the canonical form is upper-case.
func ParseImpact(s string) (Impact, bool) {
	imp := Impact(strings.ToUpper(strings.TrimSpace(s)))
	if !validImpacts[imp] {
		return "", false
	}
	return imp, true
}

// Valid reports whether the impact is one of the closed enum values.
func (i Impact) Valid() bool {
	return validImpacts[i]
}

// Rule is a single best-practice document parsed from rules/<slug>.md.
type Rule struct {
	Slug              string   // filename without extension, e.g. "cd-onpush"
	Title             string   // title from frontmatter
	Impact            Impact   // impact rating from frontmatter
	ImpactDescription string   // one-line consequence statement from frontmatter
	Tags              []string // tags from frontmatter
	Summary           string   // first prose line of the body
	Body              string   // markdown body after the frontmatter
	Category          string   // category prefix derived from the slug
	FilePath          string   // corpus-relative source path
}

// Problem records a structural inconsistency found while loading a
// corpus: missing frontmatter fields, an invalid impact value, a
// dangling quick-reference entry, and so on. Problems are advisory;
// loading continues past them.
type Problem struct {
	Path    string // corpus-relative file the problem was found in
	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}
