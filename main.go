package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v2"

	"github.com/railsdocs/mcp-server/internal/config"
	"github.com/railsdocs/mcp-server/tools"
)

const (
	version     = "0.3.0"
	serverName  = "rails-docs-mcp-server"
	description = "MCP server for searching Rails API reference documentation"
)

func main() {
	// A .env file is optional; ignore when absent.
	_ = godotenv.Load()

	app := &cli.App{
		Name:    serverName,
		Usage:   description,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML group manifest",
				EnvVars: []string{config.EnvConfig},
			},
			&cli.StringFlag{
				Name:    "docs-dir",
				Usage:   "Directory holding the HTML documentation files",
				EnvVars: []string{config.EnvDocsDir},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "transport",
				Usage: "MCP transport to serve on (stdio, http)",
				Value: "stdio",
			},
			&cli.StringFlag{
				Name:  "http-addr",
				Usage: "Listen address for the http transport",
				Value: ":8080",
			},
		},
		Before: setupLogger,
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	logger := slog.Default()
	logger.Info("starting", "name", serverName, "version", version)

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if dir := c.String("docs-dir"); dir != "" {
		cfg.DocsDir = dir
	}

	service, err := tools.NewDocService(cfg, tools.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("load documentation: %w", err)
	}

	server := createMCPServer()
	service.RegisterTools(server)
	service.RegisterResources(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch transport := c.String("transport"); transport {
	case "stdio":
		logger.Info("server ready", "transport", "stdio")
		return server.Run(ctx, &mcp.StdioTransport{})
	case "http":
		return serveHTTP(ctx, server, c.String("http-addr"), logger)
	default:
		return fmt.Errorf("unknown transport %q: must be stdio or http", transport)
	}
}

// createMCPServer initializes the MCP server.
func createMCPServer() *mcp.Server {
	return mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: version,
		},
		&mcp.ServerOptions{
			Instructions: "Use the search tool to find Rails API documentation sections. " +
				"list_sections shows the available documentation groups, and each group " +
				"is also readable as a rails-api:// resource.",
		},
	)
}

// serveHTTP exposes the MCP server over the streamable HTTP transport and
// shuts it down when the context is cancelled.
func serveHTTP(ctx context.Context, server *mcp.Server, addr string, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server ready", "transport", "http", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Log to stderr: stdout belongs to the stdio transport.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
