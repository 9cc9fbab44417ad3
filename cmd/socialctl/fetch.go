package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/apify"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/bundle"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/normalize"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/config"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch recent posts for a profile and print the normalized bundle",
	}

	cmd.AddCommand(newFetchXCmd())
	cmd.AddCommand(newFetchLinkedInCmd())

	return cmd
}

func newFetchXCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "x <handle>",
		Short:   "Fetch recent X/Twitter posts",
		Example: "  socialctl fetch x jack --limit 5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			handle := strings.TrimSpace(strings.ReplaceAll(args[0], "@", ""))
			if handle == "" {
				return models.NewFetchError(models.ErrInvalidInput, "handle is required")
			}

			fetcher, err := newFetcher(logger)
			if err != nil {
				return err
			}

			items, err := fetcher.FetchXPosts(cmd.Context(), handle, limit)
			if err != nil {
				return models.ClassifyError(err)
			}

			person := models.Person{
				Name:       "@" + handle,
				Platform:   models.PlatformX,
				Handle:     handle,
				ProfileURL: "https://twitter.com/" + handle,
			}
			assembler := &bundle.Assembler{Source: "socialctl", Logger: logger}
			b, err := assembler.Assemble(person, &normalize.XNormalizer{Handle: handle}, items, limit)
			if err != nil {
				return err
			}

			return printJSON(cmd, b)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of posts to fetch")

	return cmd
}

func newFetchLinkedInCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "linkedin <profile-url>",
		Short:   "Fetch recent LinkedIn posts",
		Example: "  socialctl fetch linkedin https://linkedin.com/in/jane-doe --limit 5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			profileURL := strings.TrimSpace(args[0])
			username, err := normalize.ExtractLinkedInUsername(profileURL)
			if err != nil {
				return models.NewFetchError(models.ErrInvalidInput, "%v", err)
			}

			fetcher, err := newFetcher(logger)
			if err != nil {
				return err
			}

			items, err := fetcher.FetchLinkedInPosts(cmd.Context(), profileURL, limit)
			if err != nil {
				return models.ClassifyError(err)
			}

			person := models.Person{
				Name:       fmt.Sprintf("LinkedIn User (%s)", username),
				Platform:   models.PlatformLinkedIn,
				ProfileURL: profileURL,
			}
			assembler := &bundle.Assembler{Source: "socialctl", Logger: logger}
			b, err := assembler.Assemble(person, &normalize.LinkedInNormalizer{ProfileURL: profileURL}, items, limit)
			if err != nil {
				return err
			}

			return printJSON(cmd, b)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of posts to fetch")

	return cmd
}

func newFetcher(logger logging.Logger) (*apify.Fetcher, error) {
	token := config.GetEnv("APIFY_TOKEN", "")
	if token == "" {
		return nil, fmt.Errorf("APIFY_TOKEN environment variable is required")
	}
	return apify.NewFetcher(apify.NewClient(token, apify.WithLogger(logger))), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
