package normalize

import (
	"regexp"
	"strings"
)

var (
	trackingURLPattern = regexp.MustCompile(`(?i)https?://(t\.co|bit\.ly|tinyurl\.com)/\w+`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	hashtagPattern     = regexp.MustCompile(`#(\w+)`)
	mentionPattern     = regexp.MustCompile(`@(\w+)`)
)

// CleanText strips shortened tracking URLs and collapses runs of whitespace.
func CleanText(text string) string {
	cleaned := trackingURLPattern.ReplaceAllString(text, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// ExtractHashtags pulls hashtags out of free text. The contiguous
// word-character run after '#' is captured, so "#AI" yields "#AI" and
// "#AI-powered" yields "#AI". Tags keep their original case and '#' prefix.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, "#"+m[1])
	}
	return tags
}

// ExtractMentions pulls @-mentions out of free text, without the '@' prefix.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		mentions = append(mentions, m[1])
	}
	return mentions
}
