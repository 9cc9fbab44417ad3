// Package bundle packages normalized posts into the Bundle shape returned
// by the fetch tools.
package bundle

import (
	"time"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/normalize"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/themes"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/monitoring"
)

// Assembler turns raw upstream items into a complete Bundle: normalize,
// tag, attach metadata. Construction is all-or-nothing once the survivor
// check passes. Metrics is optional; stdio deployments run without it.
type Assembler struct {
	Source  string
	Logger  logging.Logger
	Metrics *monitoring.FetchMetrics
}

// Assemble builds one Bundle for a person from raw upstream items.
// Fails NOT_FOUND when upstream returned nothing at all, and
// SCHEMA_MISMATCH when items existed but none survived normalization.
func (a *Assembler) Assemble(person models.Person, n normalize.Normalizer, items []any, limit int) (*models.Bundle, error) {
	if len(items) == 0 {
		return nil, models.NewFetchError(models.ErrNotFound, "no recent posts found for %s", person.Name)
	}

	posts := normalize.Batch(n, items, a.Logger)
	if a.Metrics != nil {
		platform := string(n.Platform())
		a.Metrics.PostsNormalized.WithLabelValues(platform).Add(float64(len(posts)))
		a.Metrics.PostsDropped.WithLabelValues(platform).Add(float64(len(items) - len(posts)))
	}
	if len(posts) == 0 {
		return nil, models.NewFetchError(models.ErrSchemaMismatch, "could not parse any posts")
	}

	themes.InferThemesBulk(posts, themes.DefaultMaxThemes)

	return &models.Bundle{
		Person: person,
		Posts:  posts,
		Meta: models.Meta{
			Source:       a.Source,
			FetchedAtISO: time.Now().UTC().Format(time.RFC3339),
			Limit:        limit,
			TotalFound:   len(posts),
		},
	}, nil
}
