package normalize

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
)

func TestXNormalizerBasic(t *testing.T) {
	n := &XNormalizer{Handle: "demo"}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	post, err := n.Normalize(RawItem{
		"id":        "1",
		"text":      "Shipping a new #AI feature",
		"createdAt": "2024-01-15T10:00:00",
		"likeCount": float64(5),
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if post.PostID != "1" {
		t.Errorf("expected post_id '1', got %q", post.PostID)
	}
	if post.URL != "https://twitter.com/demo/status/1" {
		t.Errorf("expected synthesized URL, got %q", post.URL)
	}
	if !reflect.DeepEqual(post.Hashtags, []string{"#AI"}) {
		t.Errorf("expected hashtags [#AI], got %v", post.Hashtags)
	}
	expectedEngagement := map[string]int{"likes": 5, "retweets": 0, "replies": 0, "quotes": 0}
	if !reflect.DeepEqual(post.Engagement, expectedEngagement) {
		t.Errorf("expected engagement %v, got %v", expectedEngagement, post.Engagement)
	}
	if !strings.HasSuffix(post.CreatedAtISO, "Z") {
		t.Errorf("expected UTC marker on timestamp, got %q", post.CreatedAtISO)
	}
	if post.CreatedAtISO != "2024-01-15T10:00:00Z" {
		t.Errorf("expected 2024-01-15T10:00:00Z, got %q", post.CreatedAtISO)
	}
	if post.TimestampEstimated {
		t.Error("parseable timestamp should not be flagged as estimated")
	}
}

func TestXNormalizerEntities(t *testing.T) {
	n := &XNormalizer{Handle: "demo"}

	post, err := n.Normalize(RawItem{
		"id":   "2",
		"text": "great chat",
		"entities": map[string]any{
			"hashtags": []any{
				map[string]any{"text": "golang"},
			},
			"user_mentions": []any{
				map[string]any{"screen_name": "someone"},
			},
		},
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(post.Hashtags, []string{"#golang"}) {
		t.Errorf("expected hashtags from entities, got %v", post.Hashtags)
	}
	if !reflect.DeepEqual(post.Mentions, []string{"someone"}) {
		t.Errorf("expected mentions from entities, got %v", post.Mentions)
	}
}

func TestXNormalizerMissingTimestamp(t *testing.T) {
	n := &XNormalizer{Handle: "demo"}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	post, err := n.Normalize(RawItem{"id": "3", "text": "no date here"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.CreatedAtISO != "2024-06-01T12:00:00Z" {
		t.Errorf("expected fallback to now, got %q", post.CreatedAtISO)
	}
	if !post.TimestampEstimated {
		t.Error("fallback timestamp should be flagged as estimated")
	}
	if _, err := ParseTimestamp(post.CreatedAtISO); err != nil {
		t.Errorf("fallback timestamp must be parseable: %v", err)
	}
}

func TestLinkedInNormalizerAliases(t *testing.T) {
	n := &LinkedInNormalizer{ProfileURL: "https://linkedin.com/in/demo"}
	now := time.Now()

	tests := []struct {
		name string
		item RawItem
		want models.Post
	}{
		{
			name: "primary aliases",
			item: RawItem{
				"postId":        "abc",
				"postUrl":       "https://linkedin.com/posts/abc",
				"text":          "We're hiring engineers! #hiring",
				"postedAt":      "2024-03-10T08:30:00Z",
				"likesCount":    float64(12),
				"commentsCount": float64(3),
				"sharesCount":   float64(1),
			},
			want: models.Post{
				PostID:     "abc",
				URL:        "https://linkedin.com/posts/abc",
				Engagement: map[string]int{"likes": 12, "comments": 3, "shares": 1},
			},
		},
		{
			name: "fallback aliases",
			item: RawItem{
				"id":          "def",
				"url":         "https://linkedin.com/posts/def",
				"content":     "Launching soon",
				"publishedAt": "2024-03-11T09:00:00Z",
				"reactions":   float64(7),
				"reposts":     float64(2),
			},
			want: models.Post{
				PostID:     "def",
				URL:        "https://linkedin.com/posts/def",
				Engagement: map[string]int{"likes": 7, "comments": 0, "shares": 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := n.Normalize(tt.item, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if post.PostID != tt.want.PostID {
				t.Errorf("expected post_id %q, got %q", tt.want.PostID, post.PostID)
			}
			if post.URL != tt.want.URL {
				t.Errorf("expected url %q, got %q", tt.want.URL, post.URL)
			}
			if !reflect.DeepEqual(post.Engagement, tt.want.Engagement) {
				t.Errorf("expected engagement %v, got %v", tt.want.Engagement, post.Engagement)
			}
			if post.Platform != models.PlatformLinkedIn {
				t.Errorf("expected linkedin platform, got %s", post.Platform)
			}
		})
	}
}

func TestLinkedInNormalizerTextExtraction(t *testing.T) {
	n := &LinkedInNormalizer{ProfileURL: "https://linkedin.com/in/demo"}

	post, err := n.Normalize(RawItem{
		"postId":   "x",
		"text":     "Thanks @alice for the #OpenSource shoutout",
		"postedAt": "2024-03-10T08:30:00Z",
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(post.Hashtags, []string{"#OpenSource"}) {
		t.Errorf("expected [#OpenSource], got %v", post.Hashtags)
	}
	if !reflect.DeepEqual(post.Mentions, []string{"alice"}) {
		t.Errorf("expected [alice], got %v", post.Mentions)
	}
}

func TestBatchFailSoft(t *testing.T) {
	n := &XNormalizer{Handle: "demo"}

	items := []any{
		map[string]any{"id": "1", "text": "first", "createdAt": "2024-01-01T00:00:00Z"},
		"not an object",
		map[string]any{"id": "2", "text": "second", "createdAt": "2024-01-02T00:00:00Z"},
		float64(42),
	}

	posts := Batch(n, items, nil)
	if len(posts) != 2 {
		t.Fatalf("expected 2 survivors out of 4, got %d", len(posts))
	}
	if posts[0].PostID != "1" || posts[1].PostID != "2" {
		t.Errorf("expected survivor order preserved, got %v", posts)
	}
}

func TestBatchAllMalformed(t *testing.T) {
	n := &XNormalizer{Handle: "demo"}

	posts := Batch(n, []any{"a", "b"}, nil)
	if len(posts) != 0 {
		t.Errorf("expected no survivors, got %d", len(posts))
	}
}

func TestBatchEmptyObjectSurvives(t *testing.T) {
	// An empty but well-formed object normalizes with defaults rather than
	// being dropped.
	n := &LinkedInNormalizer{ProfileURL: "https://linkedin.com/in/demo"}

	posts := Batch(n, []any{map[string]any{}}, nil)
	if len(posts) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(posts))
	}
	if posts[0].PostID != "" || posts[0].Text != "" {
		t.Errorf("expected zero-value fields, got %+v", posts[0])
	}
	if posts[0].Engagement["likes"] != 0 {
		t.Error("expected engagement keys present with zero counts")
	}
	if !posts[0].TimestampEstimated {
		t.Error("expected fallback timestamp flag for missing date")
	}
}
