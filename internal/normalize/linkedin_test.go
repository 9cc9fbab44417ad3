package normalize

import "testing"

func TestExtractLinkedInUsername(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"full url", "https://www.linkedin.com/in/jane-doe", "jane-doe", false},
		{"no scheme", "linkedin.com/in/jane-doe", "jane-doe", false},
		{"trailing slash", "https://linkedin.com/in/jane-doe/", "jane-doe", false},
		{"extra path segment", "https://linkedin.com/in/jane-doe/recent-activity", "jane-doe", false},
		{"wrong host", "https://example.com/in/jane-doe", "", true},
		{"no profile segment", "https://linkedin.com/company/acme", "", true},
		{"empty username", "https://linkedin.com/in/", "", true},
		{"empty input", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractLinkedInUsername(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
