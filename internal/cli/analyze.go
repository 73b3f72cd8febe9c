package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"insight-agent/internal/adapter/store"
	"insight-agent/internal/analyzer"
	"insight-agent/internal/domain/entity"
	"insight-agent/internal/usecase"

	"github.com/spf13/cobra"
)

const cliClientID = "cli"

type analyzeOptions struct {
	file    string
	compact bool
}

func newAnalyzeCommand() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [text|-]",
		Short: "Analyze text given as an argument, a file, or stdin",
		Example: `  insight analyze "I love cloud engineering!"
  echo "Terrible awful bad" | insight analyze -
  insight analyze --file feedback.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), opts.file, args)
			if err != nil {
				return err
			}
			return runAnalyze(cmd, text, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read text from file")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print JSON on a single line")
	return cmd
}

func readInput(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("use either --file or a text argument, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		return args[0], nil
	}
}

func runAnalyze(cmd *cobra.Command, text string, opts *analyzeOptions) error {
	orch := usecase.NewOrchestrator(analyzer.New(), store.NoopLimiter{})

	resp, err := orch.Execute(cmd.Context(), cliClientID, entity.AnalysisRequest{Text: text})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}
