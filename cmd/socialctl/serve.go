package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/apify"
	mcpserver "github.com/nossa-y/mistral-mcp-hackathon/internal/mcp"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/config"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/middleware"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/monitoring"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/server"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/version"
)

func newServeCmd() *cobra.Command {
	var (
		httpMode bool
		port     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio by default, HTTP with --http)",
		Example: `  socialctl serve
  socialctl serve --http --port 8000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			apifyToken := config.GetEnv("APIFY_TOKEN", "")
			if apifyToken == "" {
				logger.Warn("APIFY_TOKEN is not set - fetch tools will fail against the live API")
			}
			client := apify.NewClient(apifyToken,
				apify.WithLogger(logger),
				apify.WithPollInterval(time.Duration(config.GetEnvInt("APIFY_POLL_INTERVAL_SECONDS", 2))*time.Second),
			)

			var fetchMetrics *monitoring.FetchMetrics
			var metricsCollector *monitoring.MetricsCollector
			if httpMode {
				metricsCollector = monitoring.NewMetricsCollector(mcpserver.ServerName, version.Version, version.GitCommit)
				fetchMetrics = metricsCollector.CreateFetchMetrics()
			}

			srv := mcpserver.NewServer(mcpserver.Config{
				Fetcher: apify.NewFetcher(client),
				Logger:  logger,
				Metrics: fetchMetrics,
			})

			if !httpMode {
				return srv.RunStdio(cmd.Context())
			}

			healthChecker := monitoring.NewHealthChecker(mcpserver.ServerName, version.Version)
			healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
				"APIFY_TOKEN": apifyToken,
			}))
			healthChecker.AddCheck("apify", monitoring.HTTPServiceHealthCheck("apify", apify.DefaultBaseURL))

			app := server.SetupServiceRouter(logger, mcpserver.ServerName, healthChecker, metricsCollector)

			mcpGroup := app.Group("/mcp")
			mcpGroup.Use(middleware.BearerAuthMiddleware(config.GetEnv("SERVER_TOKEN", ""), logger))
			mcpGroup.Any("", gin.WrapH(srv.HTTPHandler()))

			return server.Start(server.DefaultConfig(mcpserver.ServerName, port), app, logger)
		},
	}

	cmd.Flags().BoolVar(&httpMode, "http", config.GetEnvBool("MCP_HTTP", false), "serve MCP over HTTP instead of stdio")
	cmd.Flags().StringVar(&port, "port", "8000", "HTTP port (http mode only)")

	return cmd
}
