package main

import (
	"context"
	"flag"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/apify"
	mcpserver "github.com/nossa-y/mistral-mcp-hackathon/internal/mcp"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/config"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/middleware"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/monitoring"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/server"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService(mcpserver.ServerName)
	config.LoadEnv(logger)

	httpMode := flag.Bool("http", config.GetEnvBool("MCP_HTTP", false), "serve MCP over HTTP instead of stdio")
	port := flag.String("port", config.GetEnv("PORT", "8000"), "HTTP port (http mode only)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		logger.SetLevel(logging.DebugLevel)
	}

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
	if *httpMode {
		metricsCollector = monitoring.NewMetricsCollector(mcpserver.ServerName, version.Version, version.GitCommit)
		fetchMetrics = metricsCollector.CreateFetchMetrics()
	}

	srv := mcpserver.NewServer(mcpserver.Config{
		Fetcher: apify.NewFetcher(client),
		Logger:  logger,
		Metrics: fetchMetrics,
	})

	if !*httpMode {
		if err := srv.RunStdio(context.Background()); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	healthChecker := monitoring.NewHealthChecker(mcpserver.ServerName, version.Version)
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"APIFY_TOKEN": apifyToken,
	}))
	healthChecker.AddCheck("apify", monitoring.HTTPServiceHealthCheck("apify", apify.DefaultBaseURL))

	app := server.SetupServiceRouter(logger, mcpserver.ServerName, healthChecker, metricsCollector)

	serverToken := config.GetEnv("SERVER_TOKEN", "")
	mcpGroup := app.Group("/mcp")
	mcpGroup.Use(middleware.BearerAuthMiddleware(serverToken, logger))
	mcpGroup.Any("", gin.WrapH(srv.HTTPHandler()))

	serverConfig := server.DefaultConfig(mcpserver.ServerName, *port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
