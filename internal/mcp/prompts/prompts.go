// Package prompts implements MCP prompts for guided agent interactions.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
)

// RegisterPrompts registers all MCP prompts.
func RegisterPrompts(server *mcp.Server, logger logging.Logger) {
	// approach_coach - Guide the host model through the fetch-then-build flow
	server.AddPrompt(&mcp.Prompt{
		Name:        "approach_coach",
		Description: "Coach a natural conversation opener for meeting someone, based on their recent public posts.",
		Arguments: []*mcp.PromptArgument{
			{Name: "x_handle", Description: "X/Twitter handle of the person", Required: false},
			{Name: "linkedin_url", Description: "LinkedIn profile URL of the person", Required: false},
			{Name: "event_context", Description: "Where you will meet them (conference, meetup, intro call)", Required: false},
		},
	}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := map[string]string{}
		if req.Params != nil && req.Params.Arguments != nil {
			args = req.Params.Arguments
		}
		return handleApproachCoachPrompt(ctx, args, logger)
	})
}

func handleApproachCoachPrompt(_ context.Context, args map[string]string, logger logging.Logger) (*mcp.GetPromptResult, error) {
	xHandle := args["x_handle"]
	linkedInURL := args["linkedin_url"]
	eventContext := args["event_context"]

	var steps []string
	steps = append(steps, "# Conversation Approach Coaching\n")
	steps = append(steps, "Help me prepare a natural, respectful conversation opener for meeting someone.")

	if eventContext != "" {
		steps = append(steps, fmt.Sprintf("\n**Context**: %s", eventContext))
	}

	steps = append(steps, "\n## Steps")
	step := 1
	if xHandle != "" {
		steps = append(steps, fmt.Sprintf("%d. Call `get_x_posts` with handle `%s` to fetch their recent X posts.", step, xHandle))
		step++
	}
	if linkedInURL != "" {
		steps = append(steps, fmt.Sprintf("%d. Call `get_linkedin_posts` with profile_url `%s` to fetch their recent LinkedIn posts.", step, linkedInURL))
		step++
	}
	if step == 1 {
		steps = append(steps, "1. Ask me for the person's X handle or LinkedIn profile URL, then use the matching fetch tool.")
		step = 2
	}
	steps = append(steps, fmt.Sprintf("%d. Pass the returned bundles to `build_approach_prompt` along with my context.", step))
	steps = append(steps, fmt.Sprintf("%d. Follow the generated prompt blocks to craft the opener. If `fallback_used` is true, rely on shared signals instead of post content.", step+1))

	steps = append(steps, "\n**Remember**: never reference their posts directly; speak to themes and interests.")

	logger.WithFields(logging.Fields{
		"has_x_handle":      xHandle != "",
		"has_linkedin":      linkedInURL != "",
		"has_event_context": eventContext != "",
	}).Debug("Rendered approach_coach prompt")

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: strings.Join(steps, "\n")},
		}},
	}, nil
}
