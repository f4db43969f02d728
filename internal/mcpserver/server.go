// Package mcpserver exposes the rule corpus over the Model Context
// Protocol, so coding agents can query categories, rules and the
// compiled reference through a standard tool interface.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ngrules/ngrules/internal/catalog"
)

// serverName identifies this MCP server to clients.
const serverName = "angular-best-practices"

// Config configures the MCP server.
type Config struct {
	// Catalog is the loaded corpus every tool and resource reads from.
	Catalog *catalog.Catalog

	// Version is reported to clients during initialization.
	Version string

	// Logger receives request logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Run serves the corpus over stdio until the context is cancelled or
// the client disconnects.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Catalog == nil {
		return fmt.Errorf("mcp server needs a loaded catalog")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	server := newServer(cfg)
	cfg.Logger.Info("mcp server listening on stdio",
		"name", serverName, "version", cfg.Version, "rules", cfg.Catalog.Len())

	err := server.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return err
}

// newServer assembles the MCP server with every tool and resource
// registered. The catalog is immutable, so handlers share it without
// locking.
func newServer(cfg Config) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: cfg.Version}, nil)

	mcp.AddTool(s, listCategoriesTool(), listCategoriesHandler(cfg.Catalog, cfg.Logger))
	mcp.AddTool(s, listRulesTool(), listRulesHandler(cfg.Catalog, cfg.Logger))
	mcp.AddTool(s, getRuleTool(), getRuleHandler(cfg.Catalog, cfg.Logger))
	mcp.AddTool(s, searchRulesTool(), searchRulesHandler(cfg.Catalog, cfg.Logger))

	s.AddResource(skillResource(), skillResourceHandler(cfg.Catalog))
	s.AddResource(referenceResource(), referenceResourceHandler(cfg.Catalog))
	s.AddResourceTemplate(ruleResourceTemplate(), ruleResourceHandler(cfg.Catalog))

	return s
}
