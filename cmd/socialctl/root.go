package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nossa-y/mistral-mcp-hackathon/pkg/config"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/version"
)

var verbose bool

// NewRootCmd returns the root command for socialctl.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "socialctl",
		Short:         "Fetch social posts and build approach prompts from the command line",
		Long:          "socialctl exercises the coldopen-coach pipeline without an MCP host: fetch recent posts for a profile, inspect the normalized bundle, and assemble prompt blocks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newApproachCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger builds the CLI logger honoring the --verbose flag.
func newLogger() logging.Logger {
	logger := logging.NewLoggerWithService("socialctl")
	config.LoadEnv(logger)
	if verbose {
		logger.SetLevel(logging.DebugLevel)
	}
	return logger
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "socialctl %s (commit %s, built %s)\n",
				info.Version, version.GetShortCommit(), info.BuildDate)
		},
	}
}
