package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/approach"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
)

// RegisterApproachTools registers the prompt-assembly tool.
func RegisterApproachTools(server *mcp.Server, logger logging.Logger) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "build_approach_prompt",
			Description: "Merge social data bundles into structured prompt blocks for generating a conversation approach.",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args BuildApproachPromptInput) (*mcp.CallToolResult, any, error) {
			return handleBuildApproachPrompt(ctx, args, logger)
		},
	)
}

// BuildApproachPromptInput represents input for the build_approach_prompt tool.
type BuildApproachPromptInput struct {
	Bundles     []models.Bundle      `json:"bundles" jsonschema:"required" jsonschema_description:"Bundles returned by the fetch tools"`
	UserContext approach.UserContext `json:"user_context,omitempty" jsonschema_description:"Situational context: your name, shared signals, event context"`
	Preferences approach.Preferences `json:"preferences,omitempty" jsonschema_description:"Tone, language and freshness window preferences"`
}

func handleBuildApproachPrompt(_ context.Context, args BuildApproachPromptInput, logger logging.Logger) (*mcp.CallToolResult, any, error) {
	if len(args.Bundles) == 0 {
		return toolError(models.NewFetchError(models.ErrInvalidInput, "no bundles provided").Error())
	}

	blocks, err := approach.BuildPromptBlocks(args.Bundles, args.UserContext, args.Preferences, time.Now())
	if err != nil {
		logger.WithError(err).Warn("Failed to build approach prompt")
		return toolError(models.ClassifyError(err).Error())
	}

	logger.WithFields(logging.Fields{
		"bundles":       len(args.Bundles),
		"fallback_used": blocks.FallbackUsed,
	}).Info("Built approach prompt")

	return toolSuccessJSON(blocks)
}
