// Package cli implements the insight command line tool, which runs the same
// analysis as the HTTP API without a server.
package cli

import (
	"log/slog"

	"insight-agent/internal/logging"

	"github.com/spf13/cobra"
)

var logLevel string

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "insight",
		Short:        "Text statistics and lexicon sentiment for feedback snippets",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logging.NewLogger(cmd.ErrOrStderr(), logLevel, false))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newAnalyzeCommand())
	root.AddCommand(newLexiconCommand())
	return root
}
