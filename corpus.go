// Package ngrules embeds the Angular best-practices corpus: the skill
// descriptor (SKILL.md), one Markdown document per rule (rules/), and
// the compiled long-form reference (REFERENCE.md).
//
// The corpus is plain Markdown and can be read directly from the
// repository; this package exists so the ngrules CLI and MCP server
// ship with the content built in. Parsing and retrieval live in
// internal/catalog.
package ngrules

import (
	"embed"
	"io/fs"
)

//go:embed SKILL.md REFERENCE.md rules
var corpus embed.FS

// Corpus returns the embedded corpus as an fs.FS rooted at the
// repository root.
func Corpus() fs.FS {
	return corpus
}
