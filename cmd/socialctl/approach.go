package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nossa-y/mistral-mcp-hackathon/internal/approach"
	"github.com/nossa-y/mistral-mcp-hackathon/internal/models"
)

func newApproachCmd() *cobra.Command {
	var (
		bundleFiles   []string
		yourName      string
		sharedSignals string
		eventContext  string
		tone          string
		language      string
		freshnessDays int
	)

	cmd := &cobra.Command{
		Use:   "approach",
		Short: "Build approach prompt blocks from saved bundle files",
		Long:  "Reads one or more bundle JSON files (as produced by 'socialctl fetch') and prints the assembled prompt blocks.",
		Example: `  socialctl fetch x jack > jack.json
  socialctl approach --bundle jack.json --name Sam --event "tech conference"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(bundleFiles) == 0 {
				return fmt.Errorf("at least one --bundle file is required")
			}

			bundles := make([]models.Bundle, 0, len(bundleFiles))
			for _, path := range bundleFiles {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read bundle %s: %w", path, err)
				}
				var b models.Bundle
				if err := json.Unmarshal(data, &b); err != nil {
					return fmt.Errorf("parse bundle %s: %w", path, err)
				}
				bundles = append(bundles, b)
			}

			blocks, err := approach.BuildPromptBlocks(bundles,
				approach.UserContext{
					YourName:      yourName,
					SharedSignals: sharedSignals,
					EventContext:  eventContext,
				},
				approach.Preferences{
					Tone:          tone,
					Language:      language,
					FreshnessDays: freshnessDays,
				},
				time.Now(),
			)
			if err != nil {
				return err
			}

			return printJSON(cmd, blocks)
		},
	}

	cmd.Flags().StringArrayVar(&bundleFiles, "bundle", nil, "bundle JSON file (repeatable)")
	cmd.Flags().StringVar(&yourName, "name", "", "your name")
	cmd.Flags().StringVar(&sharedSignals, "signals", "", "shared connections or interests")
	cmd.Flags().StringVar(&eventContext, "event", "", "event or meeting context")
	cmd.Flags().StringVar(&tone, "tone", "friendly", "conversation tone")
	cmd.Flags().StringVar(&language, "language", "en", "language code")
	cmd.Flags().IntVar(&freshnessDays, "freshness", approach.DefaultFreshnessDays, "freshness window in days")

	return cmd
}
