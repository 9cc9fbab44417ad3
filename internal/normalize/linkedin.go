package normalize

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractLinkedInUsername pulls the username out of a LinkedIn profile URL
// of the form https://linkedin.com/in/<username>. A bare host is tolerated;
// anything without a recognizable /in/ path segment is rejected.
func ExtractLinkedInUsername(profileURL string) (string, error) {
	raw := strings.TrimSpace(profileURL)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid LinkedIn profile URL: %w", err)
	}
	if !strings.Contains(parsed.Host, "linkedin.com") {
		return "", fmt.Errorf("invalid LinkedIn profile URL: host %q is not linkedin.com", parsed.Host)
	}

	path := strings.Trim(parsed.Path, "/")
	if strings.HasPrefix(path, "in/") {
		username := strings.Trim(path[3:], "/")
		// Drop anything after the username segment
		if idx := strings.Index(username, "/"); idx >= 0 {
			username = username[:idx]
		}
		if username != "" {
			return username, nil
		}
	}

	return "", fmt.Errorf("could not extract username from LinkedIn URL %q", profileURL)
}
