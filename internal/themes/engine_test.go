package themes

import (
	"reflect"
	"testing"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
)

func xPost(text string, hashtags ...string) models.Post {
	return models.Post{
		Platform: models.PlatformX,
		PostID:   "1",
		Text:     text,
		Hashtags: hashtags,
	}
}

func TestInferThemesKeywordMatch(t *testing.T) {
	tests := []struct {
		name     string
		post     models.Post
		expected []string
	}{
		{
			name:     "text match on two themes",
			post:     xPost("Shipping a new #AI feature", "#AI"),
			expected: []string{"ai_agents", "shipping_quality"},
		},
		{
			name:     "no hits yields empty list",
			post:     xPost("just had a coffee"),
			expected: []string{},
		},
		{
			name:     "empty text with no hashtags",
			post:     xPost(""),
			expected: []string{},
		},
		{
			name:     "multi-word phrase",
			post:     xPost("raised our series a this week"),
			expected: []string{"fundraising"},
		},
		{
			name:     "case insensitive",
			post:     xPost("OPEN SOURCE is great"),
			expected: []string{"open_source"},
		},
		{
			name:     "hashtag only",
			post:     xPost("no keywords here at all", "#blockchain"),
			expected: []string{"crypto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferThemes(tt.post, DefaultMaxThemes)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestInferThemesWordBoundary(t *testing.T) {
	// "ai" must match as a whole word only.
	tests := []struct {
		text      string
		wantMatch bool
	}{
		{"new AI tool", true},
		{"she said it works", false},
		{"mainly focused on payroll", false},
		{"ai is everywhere", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := InferThemes(xPost(tt.text), DefaultMaxThemes)
			matched := false
			for _, theme := range got {
				if theme == "ai_agents" {
					matched = true
				}
			}
			if matched != tt.wantMatch {
				t.Errorf("text %q: expected ai_agents match=%v, got themes %v", tt.text, tt.wantMatch, got)
			}
		})
	}
}

func TestInferThemesIdempotent(t *testing.T) {
	post := xPost("Shipping a new #AI feature", "#AI")

	first := InferThemes(post, DefaultMaxThemes)
	post.InferredThemes = first
	second := InferThemes(post, DefaultMaxThemes)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected idempotent inference, got %v then %v", first, second)
	}
}

func TestInferThemesSortedAndCapped(t *testing.T) {
	// Text hitting many themes must come back alphabetical and capped.
	post := xPost("Our team is hiring engineers to ship an open source AI product with bitcoin support in the football season")

	got := InferThemes(post, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 themes after cap, got %d: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("expected alphabetical order, got %v", got)
		}
	}
}

func TestInferThemesHashtagSubstring(t *testing.T) {
	// Normalized keyword as substring of the normalized hashtag counts.
	got := InferThemes(xPost("irrelevant words", "#OpenSourceSummit"), DefaultMaxThemes)
	found := false
	for _, theme := range got {
		if theme == "open_source" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected open_source via hashtag substring, got %v", got)
	}
}

func TestInferThemesBulk(t *testing.T) {
	posts := []models.Post{
		xPost("Shipping a new feature"),
		xPost("nothing relevant"),
	}

	out := InferThemesBulk(posts, DefaultMaxThemes)
	if len(out) != 2 {
		t.Fatalf("expected all posts returned, got %d", len(out))
	}
	if !reflect.DeepEqual(out[0].InferredThemes, []string{"shipping_quality"}) {
		t.Errorf("expected shipping_quality, got %v", out[0].InferredThemes)
	}
	if !reflect.DeepEqual(out[1].InferredThemes, []string{}) {
		t.Errorf("expected empty list, not omission, got %#v", out[1].InferredThemes)
	}
}
