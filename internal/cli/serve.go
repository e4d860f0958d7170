package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/firefly-mcp/firefly-mcp/internal/mcp"
)

type serveOptions struct {
	http bool
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Firefly III tools over MCP",
		Long: `Start the MCP server. By default three consolidated tools are exposed
(firefly_execute, firefly_list_operations, firefly_get_schema). With --direct
every operation becomes its own tool named <entity>_<operation>.`,
		Example: `  # Serve over stdio (for desktop MCP clients)
  firefly-mcp serve

  # One tool per operation for accounts and budgets
  firefly-mcp serve --direct --entities account,budget

  # Serve over streamable HTTP
  FIREFLY_HTTP_TOKEN=secret firefly-mcp serve --http --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().Bool("direct", false, "expose one tool per operation")
	cmd.Flags().Bool("utility-tools", false, "also expose get_version and echo")
	cmd.Flags().String("log-file", "", "also write logs to this file")
	cmd.Flags().String("api-url", "", "Firefly III API base URL")
	cmd.Flags().BoolVar(&opts.http, "http", false, "serve streamable HTTP instead of stdio")
	cmd.Flags().String("addr", "", "listen address for --http")

	return cmd
}

func runServe(cmd *cobra.Command, opts serveOptions) error {
	a, err := newApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcpserver.NewServer(a.registry, mcpserver.Options{
		Version:      version,
		UtilityTools: a.cfg.UtilityTools,
		Logger:       a.log,
	})
	if err := server.RegisterTools(ctx); err != nil {
		return err
	}

	if opts.http {
		if a.cfg.HTTPToken == "" {
			a.log.Warn("HTTP transport has no bearer token; set FIREFLY_HTTP_TOKEN to require one")
		}
		return server.RunHTTP(ctx, mcpserver.HTTPOptions{
			Addr:  a.cfg.HTTPAddr,
			Token: a.cfg.HTTPToken,
		})
	}

	a.log.WithField("base_url", a.client.BaseURL()).Info("serving MCP over stdio")
	return server.Run(ctx)
}
