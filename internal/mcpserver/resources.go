package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ngrules/ngrules/internal/catalog"
)

const (
	skillURI       = "angular-rules://skill"
	referenceURI   = "angular-rules://reference"
	ruleURIPrefix  = "angular-rules://rules/"
	ruleURIPattern = "angular-rules://rules/{slug}"
)

// quickRefItem is one quick-reference entry in the skill resource.
type quickRefItem struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// skillPayload is the JSON body of the skill resource.
type skillPayload struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Categories     []CategoryInfo `json:"categories"`
	QuickReference []quickRefItem `json:"quick_reference"`
}

func skillResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "skill_descriptor",
		Title:       "Skill Descriptor",
		Description: "Corpus metadata: the category table and the quick-reference rule index",
		MIMEType:    "application/json",
		URI:         skillURI,
	}
}

func referenceResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "reference",
		Title:       "Compiled Reference",
		Description: "Every rule concatenated into one markdown document, ordered by category priority",
		MIMEType:    "text/markdown",
		URI:         referenceURI,
	}
}

func ruleResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "rule",
		Title:       "Rule",
		Description: "A single rule as markdown. URI format: " + ruleURIPattern,
		MIMEType:    "text/markdown",
		URITemplate: ruleURIPattern,
	}
}

func skillResourceHandler(c *catalog.Catalog) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		payload := skillPayload{
			Categories: make([]CategoryInfo, 0, len(catalog.Categories)),
		}
		if d := c.Descriptor; d != nil {
			payload.Name = d.Name
			payload.Description = d.Description
		}
		for _, cat := range catalog.Categories {
			rules, _ := c.ByCategory(cat.Prefix)
			payload.Categories = append(payload.Categories, CategoryInfo{
				Prefix:   cat.Prefix,
				Name:     cat.Name,
				Impact:   string(cat.Impact),
				Priority: cat.Priority,
				Rules:    len(rules),
			})
		}
		for _, r := range c.Rules() {
			payload.QuickReference = append(payload.QuickReference, quickRefItem{
				Slug:  r.Slug,
				Title: r.Title,
			})
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal skill descriptor: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: skillURI, MIMEType: "application/json", Text: string(data)},
			},
		}, nil
	}
}

func referenceResourceHandler(c *catalog.Catalog) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		doc := c.Reference
		if doc == "" {
			doc = c.Compile()
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: referenceURI, MIMEType: "text/markdown", Text: doc},
			},
		}, nil
	}
}

func ruleResourceHandler(c *catalog.Catalog) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("resource uri is required")
		}
		uri := req.Params.URI
		slug, ok := strings.CutPrefix(uri, ruleURIPrefix)
		if !ok || slug == "" {
			return nil, fmt.Errorf("resource uri %q does not match %s", uri, ruleURIPattern)
		}

		rule, err := c.Rule(slug)
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: uri, MIMEType: "text/markdown", Text: ruleMarkdown(rule)},
			},
		}, nil
	}
}

// ruleMarkdown renders one rule as a standalone markdown document, in
// the same shape the compiled reference uses for its sections.
func ruleMarkdown(r *catalog.Rule) string {
	var b strings.Builder
	b.WriteString("# " + r.Title + "\n\n")
	b.WriteString("**Impact:** " + string(r.Impact))
	if r.ImpactDescription != "" {
		b.WriteString(" — " + r.ImpactDescription)
	}
	b.WriteString("\n\n")
	if len(r.Tags) > 0 {
		b.WriteString("**Tags:** " + strings.Join(r.Tags, ", ") + "\n\n")
	}
	b.WriteString(strings.TrimSpace(r.Body))
	b.WriteString("\n")
	return b.String()
}
