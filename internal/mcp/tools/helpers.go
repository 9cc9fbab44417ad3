// Package tools implements the MCP tools exposed by the server: the two
// platform fetch tools and the approach prompt builder.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Fetcher is the upstream scraping collaborator the fetch tools call into.
type Fetcher interface {
	FetchXPosts(ctx context.Context, handle string, limit int) ([]any, error)
	FetchLinkedInPosts(ctx context.Context, profileURL string, limit int) ([]any, error)
}

// toolError returns an error result for a tool call.
func toolError(message string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}, nil, nil
}

// toolSuccessJSON returns a success result with the payload rendered as JSON.
func toolSuccessJSON(result interface{}) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return toolError(fmt.Sprintf("Failed to format result: %v", err))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, result, nil
}
