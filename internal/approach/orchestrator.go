// Package approach merges fetched bundles into model-ready prompt blocks
// for a downstream conversation-coaching generation step.
package approach

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/normalize"
)

const (
	// DefaultFreshnessDays is the recency window applied when the caller
	// does not specify one.
	DefaultFreshnessDays = 30

	// maxDetailedPosts caps how many posts get per-post detail in the
	// rendered user block. The theme set still covers all fresh posts.
	maxDetailedPosts = 5

	previewRunes = 200
)

// UserContext carries caller-supplied situational information.
type UserContext struct {
	YourName      string `json:"your_name"`
	SharedSignals string `json:"shared_signals"`
	EventContext  string `json:"event_context"`
}

// Preferences control tone, language and the freshness window.
type Preferences struct {
	Tone          string `json:"tone"`
	Language      string `json:"language"`
	FreshnessDays int    `json:"freshness_days"`
}

func (p Preferences) withDefaults() Preferences {
	if p.Tone == "" {
		p.Tone = "friendly"
	}
	if p.Language == "" {
		p.Language = "en"
	}
	if p.FreshnessDays <= 0 {
		p.FreshnessDays = DefaultFreshnessDays
	}
	return p
}

// PromptBlocks is the orchestrator output: three text blocks plus a
// top-level fallback flag callers can branch on without re-parsing prompt
// text.
type PromptBlocks struct {
	System       string `json:"system"`
	Developer    string `json:"developer"`
	User         string `json:"user"`
	FallbackUsed bool   `json:"fallback_used"`
}

type postSummary struct {
	Index       int             `json:"index"`
	Platform    models.Platform `json:"platform"`
	Date        string          `json:"date"`
	TextPreview string          `json:"text_preview"`
	Themes      []string        `json:"themes"`
	URL         string          `json:"url"`
	Engagement  map[string]int  `json:"engagement"`
}

type userPayload struct {
	PersonContext   UserContext   `json:"person_context"`
	RecentPosts     []postSummary `json:"recent_posts"`
	DetectedThemes  []string      `json:"detected_themes"`
	PostsConsidered int           `json:"posts_considered"`
	FreshnessWindow string        `json:"freshness_window"`
	Preferences     struct {
		Tone     string `json:"tone"`
		Language string `json:"language"`
	} `json:"preferences"`
	FallbackMode bool   `json:"fallback_mode"`
	FallbackNote string `json:"fallback_note,omitempty"`
}

const systemPrompt = "You are a conversation coach helping someone start a natural, respectful conversation " +
	"at a networking event. Use only the provided public social media posts to craft your approach. " +
	"Important rules:\n" +
	"- Never say 'I saw your post' or reference seeing their content directly\n" +
	"- Keep openers short and human-sounding, not scripted\n" +
	"- Reference themes and interests, not specific posts\n" +
	"- Be respectful and professional\n" +
	"- Focus on shared interests or genuine curiosity"

const fallbackNote = "No recent posts found within the freshness window. " +
	"Use shared signals and general professional networking approach."

// MergeBundles concatenates posts from all bundles in input order.
func MergeBundles(bundles []models.Bundle) []models.Post {
	var posts []models.Post
	for _, b := range bundles {
		posts = append(posts, b.Posts...)
	}
	return posts
}

// FilterFresh keeps posts created within the freshness window. A post whose
// timestamp fails to parse is kept, consistent with the normalizer's
// fail-open timestamp policy.
func FilterFresh(posts []models.Post, freshnessDays int, now time.Time) []models.Post {
	cutoff := now.Add(-time.Duration(freshnessDays) * 24 * time.Hour)
	fresh := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		t, err := normalize.ParseTimestamp(post.CreatedAtISO)
		if err != nil || !t.Before(cutoff) {
			fresh = append(fresh, post)
		}
	}
	return fresh
}

// SortByRecency orders posts most-recent-first. Ties and unparseable
// timestamps keep their original relative order.
func SortByRecency(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, erri := normalize.ParseTimestamp(posts[i].CreatedAtISO)
		tj, errj := normalize.ParseTimestamp(posts[j].CreatedAtISO)
		if erri != nil || errj != nil {
			return false
		}
		return ti.After(tj)
	})
}

// ExtractThemes returns the union of inferred themes across posts, sorted.
func ExtractThemes(posts []models.Post) []string {
	seen := make(map[string]struct{})
	for _, post := range posts {
		for _, theme := range post.InferredThemes {
			seen[theme] = struct{}{}
		}
	}
	themes := make([]string, 0, len(seen))
	for theme := range seen {
		themes = append(themes, theme)
	}
	sort.Strings(themes)
	return themes
}

// BuildPromptBlocks assembles the three prompt blocks from one or more
// bundles plus caller context and preferences.
func BuildPromptBlocks(bundles []models.Bundle, userCtx UserContext, prefs Preferences, now time.Time) (PromptBlocks, error) {
	prefs = prefs.withDefaults()

	merged := MergeBundles(bundles)
	fresh := FilterFresh(merged, prefs.FreshnessDays, now)
	SortByRecency(fresh)

	fallbackUsed := len(fresh) == 0

	var detectedThemes []string
	summaries := []postSummary{}
	if !fallbackUsed {
		detectedThemes = ExtractThemes(fresh)
		for i, post := range fresh {
			if i >= maxDetailedPosts {
				break
			}
			summaries = append(summaries, postSummary{
				Index:       i + 1,
				Platform:    post.Platform,
				Date:        datePart(post.CreatedAtISO),
				TextPreview: preview(post.Text),
				Themes:      post.InferredThemes,
				URL:         post.URL,
				Engagement:  post.Engagement,
			})
		}
	} else {
		detectedThemes = []string{}
	}

	developer := map[string]any{
		"instructions": "Generate a conversation approach with exactly these fields:",
		"required_output": map[string]any{
			"opener_bold":        "1-2 sentence conversation starter (bold, natural tone)",
			"follow_up_question": "Light follow-up question to keep conversation flowing",
			"coaching_note":      "Brief advice on tone and delivery",
			"rationale": map[string]any{
				"theme_used":  "Primary theme that influenced the approach",
				"source_refs": []string{"List of post URLs that informed this approach"},
				"confidence":  "high/medium/low - how well the posts inform this approach",
			},
			"fallback_used": "boolean - true if no recent posts were available",
		},
	}
	developerJSON, err := json.MarshalIndent(developer, "", "  ")
	if err != nil {
		return PromptBlocks{}, fmt.Errorf("marshal developer block: %w", err)
	}

	payload := userPayload{
		PersonContext:   userCtx,
		RecentPosts:     summaries,
		DetectedThemes:  detectedThemes,
		PostsConsidered: len(fresh),
		FreshnessWindow: fmt.Sprintf("%d days", prefs.FreshnessDays),
		FallbackMode:    fallbackUsed,
	}
	payload.Preferences.Tone = prefs.Tone
	payload.Preferences.Language = prefs.Language
	if fallbackUsed {
		payload.FallbackNote = fallbackNote
	}

	userJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return PromptBlocks{}, fmt.Errorf("marshal user block: %w", err)
	}

	return PromptBlocks{
		System:       systemPrompt,
		Developer:    string(developerJSON),
		User:         string(userJSON),
		FallbackUsed: fallbackUsed,
	}, nil
}

func datePart(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}
