package themes

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
)

// DefaultMaxThemes caps the number of tags attached to a single post.
const DefaultMaxThemes = 5

// keywordPatterns holds a compiled whole-word pattern per keyword, built
// once at startup so per-post inference does no regex compilation.
var keywordPatterns = buildPatterns()

func buildPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, keywords := range themeKeywords {
		for _, kw := range keywords {
			if _, ok := patterns[kw]; ok {
				continue
			}
			patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
		}
	}
	return patterns
}

// InferThemes returns the themes detected in a post's text and hashtags,
// sorted alphabetically and truncated to maxThemes. Pure function: the post
// is not modified, and repeated calls on the same post yield the same
// result.
func InferThemes(post models.Post, maxThemes int) []string {
	if maxThemes <= 0 {
		maxThemes = DefaultMaxThemes
	}

	detected := make(map[string]struct{})

	if post.Text != "" {
		textLower := strings.ToLower(post.Text)
		for theme, keywords := range themeKeywords {
			for _, kw := range keywords {
				if keywordPatterns[kw].MatchString(textLower) {
					detected[theme] = struct{}{}
					break
				}
			}
		}
	}

	// Hashtags match on equality or keyword-substring after stripping '#'
	// from the tag and spaces from the keyword.
	for _, hashtag := range post.Hashtags {
		tagLower := strings.ToLower(strings.ReplaceAll(hashtag, "#", ""))
		if tagLower == "" {
			continue
		}
		for theme, keywords := range themeKeywords {
			for _, kw := range keywords {
				normalized := strings.ToLower(strings.ReplaceAll(kw, " ", ""))
				if tagLower == normalized || strings.Contains(tagLower, normalized) {
					detected[theme] = struct{}{}
				}
			}
		}
	}

	result := make([]string, 0, len(detected))
	for theme := range detected {
		result = append(result, theme)
	}
	sort.Strings(result)
	if len(result) > maxThemes {
		result = result[:maxThemes]
	}
	return result
}

// InferThemesBulk populates inferred_themes on every post in place and
// returns the same slice. Posts with no keyword hits get an empty list.
func InferThemesBulk(posts []models.Post, maxThemes int) []models.Post {
	for i := range posts {
		posts[i].InferredThemes = InferThemes(posts[i], maxThemes)
	}
	return posts
}
