package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ngrules/ngrules/internal/mcpserver"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the rules over the Model Context Protocol",
		Long: `Serve the catalog to MCP clients over stdio: tools for listing,
fetching, and searching rules, plus the descriptor and reference as
resources. Register it with a client as "ngrules mcp".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureCatalog(cmd); err != nil {
				return err
			}

			// stdout carries the protocol, so logs go to stderr.
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLogLevel(a.logLevel),
			}))

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return mcpserver.Run(ctx, mcpserver.Config{
				Catalog: a.catalog,
				Version: a.version,
				Logger:  logger,
			})
		},
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
