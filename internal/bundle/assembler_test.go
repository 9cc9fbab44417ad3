package bundle

import (
	"errors"
	"testing"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/normalize"
)

func demoPerson() models.Person {
	return models.Person{
		Name:       "@demo",
		Platform:   models.PlatformX,
		Handle:     "demo",
		ProfileURL: "https://twitter.com/demo",
	}
}

func TestAssembleSuccess(t *testing.T) {
	a := &Assembler{Source: "mcp_x"}
	n := &normalize.XNormalizer{Handle: "demo"}

	items := []any{
		map[string]any{"id": "1", "text": "Shipping a new #AI feature", "createdAt": "2024-01-15T10:00:00", "likeCount": float64(5)},
		map[string]any{"id": "2", "text": "hello world", "createdAt": "2024-01-16T10:00:00Z"},
	}

	b, err := a.Assemble(demoPerson(), n, items, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(b.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(b.Posts))
	}
	if b.Meta.TotalFound != 2 {
		t.Errorf("expected total_found=2, got %d", b.Meta.TotalFound)
	}
	if b.Meta.Limit != 20 {
		t.Errorf("expected limit=20, got %d", b.Meta.Limit)
	}
	if b.Meta.Source != "mcp_x" {
		t.Errorf("expected source mcp_x, got %s", b.Meta.Source)
	}
	if b.Posts[0].InferredThemes == nil {
		t.Error("expected themes to be populated before assembly finishes")
	}
	if len(b.Posts[0].InferredThemes) == 0 {
		t.Errorf("expected themes on first post, got %v", b.Posts[0].InferredThemes)
	}
}

func TestAssembleNotFound(t *testing.T) {
	a := &Assembler{Source: "mcp_x"}
	n := &normalize.XNormalizer{Handle: "demo"}

	_, err := a.Assemble(demoPerson(), n, nil, 20)
	var fe *models.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Kind != models.ErrNotFound {
		t.Errorf("expected NOT_FOUND, got %s", fe.Kind)
	}
}

func TestAssembleSchemaMismatch(t *testing.T) {
	a := &Assembler{Source: "mcp_x"}
	n := &normalize.XNormalizer{Handle: "demo"}

	_, err := a.Assemble(demoPerson(), n, []any{"garbage", float64(1)}, 20)
	var fe *models.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Kind != models.ErrSchemaMismatch {
		t.Errorf("expected SCHEMA_MISMATCH, got %s", fe.Kind)
	}
}

func TestAssemblePartialSurvival(t *testing.T) {
	a := &Assembler{Source: "mcp_x"}
	n := &normalize.XNormalizer{Handle: "demo"}

	items := []any{
		map[string]any{"id": "1", "text": "ok", "createdAt": "2024-01-15T10:00:00Z"},
		"garbage",
	}

	b, err := a.Assemble(demoPerson(), n, items, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Meta.TotalFound != 1 {
		t.Errorf("expected total_found to count survivors only, got %d", b.Meta.TotalFound)
	}
}
