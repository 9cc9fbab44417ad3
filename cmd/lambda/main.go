package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/apify"
	mcpserver "github.com/nossa-y/mistral-mcp-hackathon/internal/mcp"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/config"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
)

// proxyHandler bridges API Gateway proxy events onto the streamable MCP
// HTTP handler.
type proxyHandler struct {
	mcp         http.Handler
	serverToken string
	logger      logging.Logger
}

func (h *proxyHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := h.authenticate(req); !ok {
		return resp, nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Body:       `{"error": "invalid base64 body"}`,
			}, nil
		}
		body = decoded
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.HTTPMethod, req.Path, bytes.NewReader(body))
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Body:       `{"error": "malformed request"}`,
		}, nil
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	h.mcp.ServeHTTP(recorder, httpReq)

	headers := make(map[string]string, len(recorder.Header()))
	for k := range recorder.Header() {
		headers[k] = recorder.Header().Get(k)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: recorder.Code,
		Headers:    headers,
		Body:       recorder.Body.String(),
	}, nil
}

// authenticate enforces the static bearer token. With no token configured
// all requests are allowed, matching the HTTP transport's behavior.
func (h *proxyHandler) authenticate(req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, bool) {
	if h.serverToken == "" {
		h.logger.Warn("No SERVER_TOKEN configured - allowing all requests")
		return events.APIGatewayProxyResponse{}, true
	}

	auth := req.Headers["Authorization"]
	if auth == "" {
		auth = req.Headers["authorization"]
	}
	if auth == "" {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusUnauthorized,
			Body:       `{"error": "Missing Authorization header"}`,
		}, false
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusUnauthorized,
			Body:       `{"error": "Invalid Authorization header format"}`,
		}, false
	}
	if parts[1] != h.serverToken {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusForbidden,
			Body:       `{"error": "Invalid token"}`,
		}, false
	}
	return events.APIGatewayProxyResponse{}, true
}

func main() {
	logger := logging.NewLoggerWithService(mcpserver.ServerName)
	config.LoadEnv(logger)

	client := apify.NewClient(config.RequireEnv("APIFY_TOKEN"), apify.WithLogger(logger))
	srv := mcpserver.NewServer(mcpserver.Config{
		Fetcher: apify.NewFetcher(client),
		Logger:  logger,
	})

	h := &proxyHandler{
		mcp:         srv.HTTPHandler(),
		serverToken: config.GetEnv("SERVER_TOKEN", ""),
		logger:      logger,
	}
	lambda.Start(h.Handle)
}
