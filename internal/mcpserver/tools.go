package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ngrules/ngrules/internal/catalog"
)

// CategoryInfo describes one category in tool results.
type CategoryInfo struct {
	Prefix   string `json:"prefix" jsonschema:"slug prefix without the trailing hyphen"`
	Name     string `json:"name" jsonschema:"human-readable category name"`
	Impact   string `json:"impact" jsonschema:"impact tier of the category as a whole"`
	Priority int    `json:"priority" jsonschema:"listing priority, 1 is highest"`
	Rules    int    `json:"rules" jsonschema:"number of rules in the category"`
}

// RuleInfo is the compact rule form used in list and search results.
type RuleInfo struct {
	Slug    string   `json:"slug" jsonschema:"rule identifier, category prefix plus topic"`
	Title   string   `json:"title" jsonschema:"one-line imperative title"`
	Impact  string   `json:"impact" jsonschema:"impact rating"`
	Tags    []string `json:"tags,omitempty" jsonschema:"freeform topic tags"`
	Summary string   `json:"summary,omitempty" jsonschema:"first prose line of the rule body"`
}

// ListCategoriesInput is the (empty) input for list_categories.
type ListCategoriesInput struct{}

// ListCategoriesResult is the output of list_categories.
type ListCategoriesResult struct {
	Categories []CategoryInfo `json:"categories" jsonschema:"the twelve rule categories in priority order"`
}

// ListRulesInput is the input for list_rules. All filters are optional
// and combine.
type ListRulesInput struct {
	Category string `json:"category,omitempty" jsonschema:"restrict to one category prefix, e.g. cd or cd-"`
	Tag      string `json:"tag,omitempty" jsonschema:"restrict to rules carrying this tag"`
	Impact   string `json:"impact,omitempty" jsonschema:"restrict to one impact rating, e.g. CRITICAL"`
}

// ListRulesResult is the output of list_rules.
type ListRulesResult struct {
	Rules []RuleInfo `json:"rules" jsonschema:"matching rules in category priority order"`
	Count int        `json:"count" jsonschema:"number of matching rules"`
}

// GetRuleInput is the input for get_rule.
type GetRuleInput struct {
	Slug string `json:"slug" jsonschema:"rule slug, e.g. cd-onpush"`
}

// GetRuleResult is the output of get_rule: the full rule document.
type GetRuleResult struct {
	Slug              string   `json:"slug" jsonschema:"rule identifier"`
	Title             string   `json:"title" jsonschema:"one-line imperative title"`
	Impact            string   `json:"impact" jsonschema:"impact rating"`
	ImpactDescription string   `json:"impact_description" jsonschema:"one-line consequence of ignoring the rule"`
	Tags              []string `json:"tags,omitempty" jsonschema:"freeform topic tags"`
	Category          string   `json:"category" jsonschema:"category prefix"`
	CategoryName      string   `json:"category_name" jsonschema:"human-readable category name"`
	Body              string   `json:"body" jsonschema:"full markdown body with incorrect and correct examples"`
}

// SearchRulesInput is the input for search_rules.
type SearchRulesInput struct {
	Query string `json:"query" jsonschema:"terms matched against slug, title, tags and summary; all terms must match"`
}

// SearchRulesResult is the output of search_rules.
type SearchRulesResult struct {
	Rules       []RuleInfo `json:"rules" jsonschema:"matching rules in category priority order"`
	Count       int        `json:"count" jsonschema:"number of matching rules"`
	Suggestions []string   `json:"suggestions,omitempty" jsonschema:"closest slugs when nothing matched"`
}

func listCategoriesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_categories",
		Description: "Lists the twelve rule categories with impact tier and rule count",
	}
}

func listRulesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_rules",
		Description: "Lists rules, optionally filtered by category, tag or impact",
	}
}

func getRuleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_rule",
		Description: "Returns one rule in full, including its markdown body",
	}
}

func searchRulesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_rules",
		Description: "Searches rules by free-text query across slug, title, tags and summary",
	}
}

func listCategoriesHandler(c *catalog.Catalog, log *slog.Logger) mcp.ToolHandlerFor[ListCategoriesInput, ListCategoriesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesResult, error) {
		log.Debug("tool call", "tool", "list_categories")

		out := ListCategoriesResult{Categories: make([]CategoryInfo, 0, len(catalog.Categories))}
		for _, cat := range catalog.Categories {
			rules, _ := c.ByCategory(cat.Prefix)
			out.Categories = append(out.Categories, CategoryInfo{
				Prefix:   cat.Prefix,
				Name:     cat.Name,
				Impact:   string(cat.Impact),
				Priority: cat.Priority,
				Rules:    len(rules),
			})
		}
		return nil, out, nil
	}
}

func listRulesHandler(c *catalog.Catalog, log *slog.Logger) mcp.ToolHandlerFor[ListRulesInput, ListRulesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListRulesInput) (*mcp.CallToolResult, ListRulesResult, error) {
		log.Debug("tool call", "tool", "list_rules",
			"category", input.Category, "tag", input.Tag, "impact", input.Impact)

		rules := c.Rules()
		if input.Category != "" {
			var err error
			rules, err = c.ByCategory(input.Category)
			if err != nil {
				return nil, ListRulesResult{}, err
			}
		}
		if input.Tag != "" {
			tag := strings.ToLower(strings.TrimSpace(input.Tag))
			var kept []*catalog.Rule
			for _, r := range rules {
				for _, t := range r.Tags {
					if strings.ToLower(t) == tag {
						kept = append(kept, r)
						break
					}
				}
			}
			rules = kept
		}
		if input.Impact != "" {
			impact, ok := catalog.ParseImpact(input.Impact)
			if !ok {
				return nil, ListRulesResult{}, fmt.Errorf(
					"impact %q is not one of CRITICAL, HIGH, MEDIUM-HIGH, MEDIUM, LOW", input.Impact)
			}
			var kept []*catalog.Rule
			for _, r := range rules {
				if r.Impact == impact {
					kept = append(kept, r)
				}
			}
			rules = kept
		}

		return nil, ListRulesResult{Rules: ruleInfos(rules), Count: len(rules)}, nil
	}
}

func getRuleHandler(c *catalog.Catalog, log *slog.Logger) mcp.ToolHandlerFor[GetRuleInput, GetRuleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetRuleInput) (*mcp.CallToolResult, GetRuleResult, error) {
		log.Debug("tool call", "tool", "get_rule", "slug", input.Slug)

		rule, err := c.Rule(input.Slug)
		if err != nil {
			if suggestions := c.Suggest(input.Slug, 3); len(suggestions) > 0 {
				return nil, GetRuleResult{}, fmt.Errorf("rule %q not found; did you mean %s",
					input.Slug, strings.Join(suggestions, ", "))
			}
			return nil, GetRuleResult{}, err
		}

		cat, _ := catalog.CategoryByPrefix(rule.Category)
		return nil, GetRuleResult{
			Slug:              rule.Slug,
			Title:             rule.Title,
			Impact:            string(rule.Impact),
			ImpactDescription: rule.ImpactDescription,
			Tags:              rule.Tags,
			Category:          rule.Category,
			CategoryName:      cat.Name,
			Body:              rule.Body,
		}, nil
	}
}

func searchRulesHandler(c *catalog.Catalog, log *slog.Logger) mcp.ToolHandlerFor[SearchRulesInput, SearchRulesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchRulesInput) (*mcp.CallToolResult, SearchRulesResult, error) {
		log.Debug("tool call", "tool", "search_rules", "query", input.Query)

		matches := c.Search(input.Query)
		out := SearchRulesResult{Rules: ruleInfos(matches), Count: len(matches)}
		if len(matches) == 0 {
			out.Suggestions = c.Suggest(input.Query, 3)
		}
		return nil, out, nil
	}
}

func ruleInfos(rules []*catalog.Rule) []RuleInfo {
	out := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleInfo{
			Slug:    r.Slug,
			Title:   r.Title,
			Impact:  string(r.Impact),
			Tags:    r.Tags,
			Summary: r.Summary,
		})
	}
	return out
}
