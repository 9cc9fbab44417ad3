package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/bundle"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/normalize"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/monitoring"
)

// Default fetch limits per platform. LinkedIn actors are slower and pricier
// per item, hence the smaller default.
const (
	DefaultXLimit        = 20
	DefaultLinkedInLimit = 10
)

// RegisterSocialTools registers the platform fetch tools. Metrics may be
// nil when no collector is running (stdio mode).
func RegisterSocialTools(server *mcp.Server, fetcher Fetcher, logger logging.Logger, metrics *monitoring.FetchMetrics) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_x_posts",
			Description: "Fetch recent posts for an X/Twitter handle and return them as a normalized bundle with inferred themes.",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args GetXPostsInput) (*mcp.CallToolResult, any, error) {
			return handleGetXPosts(ctx, args, fetcher, logger, metrics)
		},
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_linkedin_posts",
			Description: "Fetch recent posts for a LinkedIn profile URL and return them as a normalized bundle with inferred themes.",
		},
		func(ctx context.Context, req *mcp.CallToolRequest, args GetLinkedInPostsInput) (*mcp.CallToolResult, any, error) {
			return handleGetLinkedInPosts(ctx, args, fetcher, logger, metrics)
		},
	)
}

func recordFetch(metrics *monitoring.FetchMetrics, platform models.Platform, start time.Time, err error) {
	if metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = string(models.ClassifyError(err).Kind)
	}
	metrics.FetchesTotal.WithLabelValues(string(platform), status).Inc()
	metrics.FetchDuration.WithLabelValues(string(platform)).Observe(time.Since(start).Seconds())
}

// GetXPostsInput represents input for the get_x_posts tool.
type GetXPostsInput struct {
	Handle string `json:"handle" jsonschema:"required" jsonschema_description:"X/Twitter handle, with or without the leading @"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum number of posts to fetch (default 20)"`
}

// GetLinkedInPostsInput represents input for the get_linkedin_posts tool.
type GetLinkedInPostsInput struct {
	ProfileURL string `json:"profile_url" jsonschema:"required" jsonschema_description:"LinkedIn profile URL, e.g. https://linkedin.com/in/username"`
	Limit      int    `json:"limit,omitempty" jsonschema_description:"Maximum number of posts to fetch (default 10)"`
}

func handleGetXPosts(ctx context.Context, args GetXPostsInput, fetcher Fetcher, logger logging.Logger, metrics *monitoring.FetchMetrics) (*mcp.CallToolResult, any, error) {
	handle := strings.TrimSpace(strings.ReplaceAll(args.Handle, "@", ""))
	if handle == "" {
		return toolError(models.NewFetchError(models.ErrInvalidInput, "handle is required").Error())
	}

	limit := args.Limit
	if limit <= 0 {
		limit = DefaultXLimit
	}

	logger.WithFields(logging.Fields{
		"handle": handle,
		"limit":  limit,
	}).Info("Fetching X posts")

	start := time.Now()
	items, err := fetcher.FetchXPosts(ctx, handle, limit)
	recordFetch(metrics, models.PlatformX, start, err)
	if err != nil {
		fe := models.ClassifyError(err)
		logger.WithError(err).WithField("handle", handle).Warn("X fetch failed")
		return toolError(fe.Error())
	}

	person := models.Person{
		Name:       "@" + handle,
		Platform:   models.PlatformX,
		Handle:     handle,
		ProfileURL: "https://twitter.com/" + handle,
	}

	assembler := &bundle.Assembler{Source: "get_x_posts", Logger: logger, Metrics: metrics}
	b, err := assembler.Assemble(person, &normalize.XNormalizer{Handle: handle}, items, limit)
	if err != nil {
		return toolError(models.ClassifyError(err).Error())
	}

	return toolSuccessJSON(b)
}

func handleGetLinkedInPosts(ctx context.Context, args GetLinkedInPostsInput, fetcher Fetcher, logger logging.Logger, metrics *monitoring.FetchMetrics) (*mcp.CallToolResult, any, error) {
	profileURL := strings.TrimSpace(args.ProfileURL)
	if profileURL == "" {
		return toolError(models.NewFetchError(models.ErrInvalidInput, "profile URL is required").Error())
	}

	username, err := normalize.ExtractLinkedInUsername(profileURL)
	if err != nil {
		return toolError(models.NewFetchError(models.ErrInvalidInput, "%v", err).Error())
	}

	limit := args.Limit
	if limit <= 0 {
		limit = DefaultLinkedInLimit
	}

	logger.WithFields(logging.Fields{
		"profile_url": profileURL,
		"limit":       limit,
	}).Info("Fetching LinkedIn posts")

	start := time.Now()
	items, err := fetcher.FetchLinkedInPosts(ctx, profileURL, limit)
	recordFetch(metrics, models.PlatformLinkedIn, start, err)
	if err != nil {
		fe := models.ClassifyError(err)
		logger.WithError(err).WithField("profile_url", profileURL).Warn("LinkedIn fetch failed")
		return toolError(fe.Error())
	}

	person := models.Person{
		Name:       fmt.Sprintf("LinkedIn User (%s)", username),
		Platform:   models.PlatformLinkedIn,
		ProfileURL: profileURL,
	}

	assembler := &bundle.Assembler{Source: "get_linkedin_posts", Logger: logger, Metrics: metrics}
	b, err := assembler.Assemble(person, &normalize.LinkedInNormalizer{ProfileURL: profileURL}, items, limit)
	if err != nil {
		return toolError(models.ClassifyError(err).Error())
	}

	return toolSuccessJSON(b)
}
