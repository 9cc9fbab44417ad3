package normalize

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing upstream timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeTimestamp coerces a raw upstream timestamp into an RFC 3339 UTC
// string. Missing or unparseable values fall back to now, with estimated
// reporting whether the fallback was taken.
// A value lacking both a Z suffix and an explicit offset is assumed UTC.
func NormalizeTimestamp(raw string, now time.Time) (iso string, estimated bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC().Format(time.RFC3339), true
	}

	candidates := []string{raw}
	if !strings.HasSuffix(raw, "Z") && !strings.Contains(raw, "+") {
		candidates = append(candidates, raw+"Z")
	}

	for _, candidate := range candidates {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t.UTC().Format(time.RFC3339), false
			}
		}
	}

	return now.UTC().Format(time.RFC3339), true
}

// ParseTimestamp parses an already-normalized created_at_iso value.
func ParseTimestamp(iso string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return time.Parse(time.RFC3339, iso)
	}
	return t, nil
}
