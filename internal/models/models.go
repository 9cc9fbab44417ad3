// Package models defines the normalized data shapes shared by the fetch,
// tagging and prompt-assembly pipeline. Pure data, no behavior.
package models

// Platform identifies the source social network. Closed set; adding a
// platform requires a new normalizer variant.
type Platform string

const (
	PlatformX        Platform = "x"
	PlatformLinkedIn Platform = "linkedin"
)

// Person represents the profile a Bundle is about. Immutable once
// constructed from fetch results.
type Person struct {
	Name          string   `json:"name"`
	Platform      Platform `json:"platform"`
	ProfileURL    string   `json:"profile_url,omitempty"`
	Handle        string   `json:"handle,omitempty"`
	HeadlineOrBio string   `json:"headline_or_bio"`
}

// Post is one normalized social media post. PostID plus Platform uniquely
// identify a post. CreatedAtISO is always parseable; records with a missing
// or malformed upstream timestamp get a fallback value and are flagged via
// TimestampEstimated rather than rejected.
type Post struct {
	Platform           Platform       `json:"platform"`
	PostID             string         `json:"post_id"`
	URL                string         `json:"url"`
	CreatedAtISO       string         `json:"created_at_iso"`
	Text               string         `json:"text"`
	Hashtags           []string       `json:"hashtags"`
	Mentions           []string       `json:"mentions"`
	Engagement         map[string]int `json:"engagement"`
	InferredThemes     []string       `json:"inferred_themes"`
	TimestampEstimated bool           `json:"timestamp_estimated,omitempty"`
}

// Meta describes one fetch operation.
type Meta struct {
	Source       string `json:"source"`
	FetchedAtISO string `json:"fetched_at_iso"`
	Limit        int    `json:"limit"`
	TotalFound   int    `json:"total_found"`
}

// Bundle is the complete normalized result of one platform fetch for one
// profile. Owned solely by the request that produced it.
type Bundle struct {
	Person Person `json:"person"`
	Posts  []Post `json:"posts"`
	Meta   Meta   `json:"meta"`
}
