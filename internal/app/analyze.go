package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harmonia-app/harmonia/internal/assistant"
	"github.com/harmonia-app/harmonia/internal/config"
)

var (
	analyzeFile    string
	analyzeLLM     bool
	analyzeCheckin bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [signal=value ...]",
	Short: "Assistant state for a custom context",
	Long: `Run the assistant pipeline against a partial context. Signals can be
given as key=value pairs or as a JSON file; anything not supplied keeps
its default. Values use the same names and units as the HTTP API.

Examples:
  harmonia analyze heartRate=94 calendarLoad=0.85
  harmonia analyze unreadEmails=120 sentimentScore=-0.6 --json
  harmonia analyze --file context.json
  cat context.json | harmonia analyze --file -
  harmonia analyze calendarLoad=0.9 --checkin`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "JSON file with a partial context ('-' for stdin)")
	analyzeCmd.Flags().BoolVar(&analyzeLLM, "llm", false, "Enrich the plan with the configured LLM")
	analyzeCmd.Flags().BoolVar(&analyzeCheckin, "checkin", false, "Merge the latest logged check-in beneath the supplied signals")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var patch *assistant.ContextPatch
	switch {
	case analyzeFile != "":
		if len(args) > 0 {
			return fmt.Errorf("use either --file or key=value arguments, not both")
		}
		var data []byte
		if analyzeFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(analyzeFile)
		}
		if err != nil {
			return fmt.Errorf("reading context: %w", err)
		}
		patch, err = assistant.ParsePatch(data)
		if err != nil {
			return fmt.Errorf("parsing context: %w", err)
		}
	default:
		patch, err = patchFromArgs(args)
		if err != nil {
			return err
		}
	}

	if analyzeCheckin {
		patch, err = mergeLatestCheckin(patch)
		if err != nil {
			return err
		}
	}

	builder := newBuilder(cfg, analyzeLLM)
	state := builder.Build(cmd.Context(), patch)

	if flagJSON {
		return printJSON(state)
	}

	renderState(state, cfg.Output)
	return nil
}
