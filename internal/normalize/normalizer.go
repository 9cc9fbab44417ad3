package normalize

import (
	"fmt"
	"time"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
)

// Normalizer converts one raw upstream item into a Post, or fails.
type Normalizer interface {
	Platform() models.Platform
	Normalize(item RawItem, now time.Time) (models.Post, error)
}

// XNormalizer maps tweet-scraper actor output onto the Post schema.
type XNormalizer struct {
	// Handle is used to synthesize a post URL when the item carries none.
	Handle string
}

func (n *XNormalizer) Platform() models.Platform { return models.PlatformX }

func (n *XNormalizer) Normalize(item RawItem, now time.Time) (models.Post, error) {
	postID := stringField(item, "id", "postId")
	url := stringField(item, "url", "postUrl", "twitterUrl")
	if url == "" && n.Handle != "" && postID != "" {
		url = fmt.Sprintf("https://twitter.com/%s/status/%s", n.Handle, postID)
	}
	text := CleanText(stringField(item, "text", "fullText"))
	iso, estimated := NormalizeTimestamp(stringField(item, "createdAt", "created_at"), now)

	// The actor sometimes provides structured entities; fall back to text
	// extraction when it does not.
	var hashtags, mentions []string
	if entities := objectField(item, "entities"); entities != nil {
		for _, raw := range listField(entities, "hashtags") {
			if tag, ok := raw.(map[string]any); ok {
				if t := stringField(RawItem(tag), "text"); t != "" {
					hashtags = append(hashtags, "#"+t)
				}
			}
		}
		for _, raw := range listField(entities, "user_mentions") {
			if mention, ok := raw.(map[string]any); ok {
				if name := stringField(RawItem(mention), "screen_name"); name != "" {
					mentions = append(mentions, name)
				}
			}
		}
	}
	if hashtags == nil {
		hashtags = ExtractHashtags(text)
	}
	if mentions == nil {
		mentions = ExtractMentions(text)
	}

	return models.Post{
		Platform:     models.PlatformX,
		PostID:       postID,
		URL:          url,
		CreatedAtISO: iso,
		Text:         text,
		Hashtags:     hashtags,
		Mentions:     mentions,
		Engagement: map[string]int{
			"likes":    intField(item, "likeCount", "favoriteCount"),
			"retweets": intField(item, "retweetCount"),
			"replies":  intField(item, "replyCount"),
			"quotes":   intField(item, "quoteCount"),
		},
		InferredThemes:     []string{},
		TimestampEstimated: estimated,
	}, nil
}

// LinkedInNormalizer maps LinkedIn posts actor output onto the Post schema.
type LinkedInNormalizer struct {
	ProfileURL string
}

func (n *LinkedInNormalizer) Platform() models.Platform { return models.PlatformLinkedIn }

func (n *LinkedInNormalizer) Normalize(item RawItem, now time.Time) (models.Post, error) {
	text := CleanText(stringField(item, "text", "content"))
	iso, estimated := NormalizeTimestamp(stringField(item, "postedAt", "publishedAt", "createdAt"), now)

	return models.Post{
		Platform:     models.PlatformLinkedIn,
		PostID:       stringField(item, "postId", "id"),
		URL:          stringField(item, "postUrl", "url"),
		CreatedAtISO: iso,
		Text:         text,
		Hashtags:     ExtractHashtags(text),
		Mentions:     ExtractMentions(text),
		Engagement: map[string]int{
			"likes":    intField(item, "likesCount", "reactions"),
			"comments": intField(item, "commentsCount", "commentCount"),
			"shares":   intField(item, "sharesCount", "reposts"),
		},
		InferredThemes:     []string{},
		TimestampEstimated: estimated,
	}, nil
}

// Batch normalizes a list of raw upstream values. A failing item is dropped
// with a warning; the batch never aborts. Callers decide what an empty
// result means.
func Batch(n Normalizer, items []any, logger logging.Logger) []models.Post {
	now := time.Now()
	posts := make([]models.Post, 0, len(items))
	for i, raw := range items {
		item, err := asRawItem(raw)
		if err != nil {
			logWarn(logger, n, i, err)
			continue
		}
		post, err := n.Normalize(item, now)
		if err != nil {
			logWarn(logger, n, i, err)
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

func logWarn(logger logging.Logger, n Normalizer, index int, err error) {
	if logger == nil {
		return
	}
	logger.WithFields(logging.Fields{
		"platform": n.Platform(),
		"index":    index,
	}).WithError(err).Warn("Failed to normalize post, dropping item")
}
