package cli

import (
	"fmt"
	"strings"

	"insight-agent/internal/analyzer"

	"github.com/spf13/cobra"
)

func newLexiconCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "Print the positive and negative word lists",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			pos, neg := analyzer.Lexicon()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "positive: %s\n", strings.Join(pos, ", "))
			fmt.Fprintf(out, "negative: %s\n", strings.Join(neg, ", "))
		},
	}
}
