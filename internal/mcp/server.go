// Package mcp wires the fetch and prompt-assembly tools into a Model
// Context Protocol server reachable over stdio or streamable HTTP.
package mcp

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/mcp/prompts"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/mcp/tools"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/monitoring"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/version"
)

// ServerName is the MCP implementation name announced to clients.
const ServerName = "coldopen-coach"

// Server wraps the MCP server with the social-fetch tool surface.
type Server struct {
	mcpServer *mcp.Server
	fetcher   tools.Fetcher
	logger    logging.Logger
}

// Config holds configuration for the MCP server. Metrics is optional and
// only set when a Prometheus collector is running.
type Config struct {
	Fetcher tools.Fetcher
	Logger  logging.Logger
	Metrics *monitoring.FetchMetrics
}

// NewServer creates a new MCP server with all tools and prompts registered.
func NewServer(cfg Config) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version.Version,
	}, nil)

	s := &Server{
		mcpServer: mcpServer,
		fetcher:   cfg.Fetcher,
		logger:    cfg.Logger,
	}

	tools.RegisterSocialTools(mcpServer, cfg.Fetcher, cfg.Logger, cfg.Metrics)
	tools.RegisterApproachTools(mcpServer, cfg.Logger)
	prompts.RegisterPrompts(mcpServer, cfg.Logger)

	logging.WithComponent(cfg.Logger, "mcp").WithFields(logging.Fields{
		"tools":   3,
		"prompts": 1,
	}).Debug("Registered MCP surface")

	return s
}

// MCPServer exposes the underlying SDK server, mainly for tests.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}

// RunStdio serves MCP over stdin/stdout until the context is cancelled.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("Starting MCP server on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns a streamable HTTP handler for the MCP server.
// Authentication is applied by the surrounding router.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server {
			return s.mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Stateless:    false,
			JSONResponse: false,
		},
	)
}
