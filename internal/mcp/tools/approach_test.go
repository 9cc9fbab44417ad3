package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/approach"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
)

func freshBundle() models.Bundle {
	return models.Bundle{
		Person: models.Person{Name: "@demo", Platform: models.PlatformX},
		Posts: []models.Post{{
			Platform:       models.PlatformX,
			PostID:         "1",
			URL:            "https://twitter.com/demo/status/1",
			CreatedAtISO:   time.Now().UTC().Format(time.RFC3339),
			Text:           "Shipping a new feature",
			Hashtags:       []string{},
			Mentions:       []string{},
			Engagement:     map[string]int{"likes": 5},
			InferredThemes: []string{"shipping_quality"},
		}},
		Meta: models.Meta{Source: "get_x_posts", Limit: 20, TotalFound: 1},
	}
}

func TestBuildApproachPromptTool(t *testing.T) {
	result, payload, err := handleBuildApproachPrompt(context.Background(), BuildApproachPromptInput{
		Bundles:     []models.Bundle{freshBundle()},
		UserContext: approach.UserContext{YourName: "Sam"},
	}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	blocks, ok := payload.(approach.PromptBlocks)
	if !ok {
		t.Fatalf("expected PromptBlocks payload, got %T", payload)
	}
	if blocks.FallbackUsed {
		t.Error("expected fallback_used=false for a fresh post")
	}

	var decoded approach.PromptBlocks
	if err := json.Unmarshal([]byte(resultText(t, result)), &decoded); err != nil {
		t.Fatalf("tool text is not JSON prompt blocks: %v", err)
	}
	if decoded.System == "" || decoded.Developer == "" || decoded.User == "" {
		t.Error("expected all three blocks rendered")
	}
}

func TestBuildApproachPromptNoBundles(t *testing.T) {
	result, _, err := handleBuildApproachPrompt(context.Background(), BuildApproachPromptInput{}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error with no bundles")
	}
	if !strings.HasPrefix(resultText(t, result), "Error: INVALID_INPUT - ") {
		t.Errorf("expected INVALID_INPUT, got %q", resultText(t, result))
	}
}
