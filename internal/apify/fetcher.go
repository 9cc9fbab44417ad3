package apify

import (
	"context"

	"github.com/nossa-y/mistral-mcp-hackathon/pkg/config"
)

// Default actor IDs, overridable via environment.
const (
	DefaultTwitterActor       = "apidojo/tweet-scraper"
	DefaultLinkedInPostsActor = "apimaestro/linkedin-profile-posts"
)

// Fetcher issues platform-specific actor runs and returns the raw dataset
// items for normalization downstream.
type Fetcher struct {
	client        *Client
	twitterActor  string
	linkedInActor string
}

// NewFetcher builds a Fetcher reading actor IDs from the environment.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{
		client:        client,
		twitterActor:  config.GetEnv("APIFY_TWITTER_ACTOR", DefaultTwitterActor),
		linkedInActor: config.GetEnv("APIFY_LINKEDIN_POSTS_ACTOR", DefaultLinkedInPostsActor),
	}
}

// FetchXPosts pulls up to limit recent posts for an X handle (without @).
func (f *Fetcher) FetchXPosts(ctx context.Context, handle string, limit int) ([]any, error) {
	return f.client.RunActor(ctx, f.twitterActor, map[string]any{
		"handles":         []string{handle},
		"tweetsPerQuery":  limit,
		"includeReplies":  false,
		"includeRetweets": false,
	})
}

// FetchLinkedInPosts pulls up to limit recent posts for a LinkedIn profile URL.
func (f *Fetcher) FetchLinkedInPosts(ctx context.Context, profileURL string, limit int) ([]any, error) {
	return f.client.RunActor(ctx, f.linkedInActor, map[string]any{
		"profiles":        []string{profileURL},
		"postsPerProfile": limit,
		"includeComments": false,
	})
}
