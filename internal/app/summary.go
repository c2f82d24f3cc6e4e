package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harmonia-app/harmonia/internal/assistant"
	"github.com/harmonia-app/harmonia/internal/config"
)

var (
	summaryLLM     bool
	summaryCheckin bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Assistant state for the default day context",
	Long: `Run the full assistant pipeline against the built-in default day
context and print the resulting state: stress assessment, metrics,
recommendations, automations, and timeline.

Examples:
  harmonia summary
  harmonia summary --json
  harmonia summary --checkin
  harmonia summary --llm`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryLLM, "llm", false, "Enrich the plan with the configured LLM")
	summaryCmd.Flags().BoolVar(&summaryCheckin, "checkin", false, "Merge the latest logged check-in over the defaults")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var patch *assistant.ContextPatch
	if summaryCheckin {
		patch, err = mergeLatestCheckin(nil)
		if err != nil {
			return err
		}
	}

	builder := newBuilder(cfg, summaryLLM)
	state := builder.Build(cmd.Context(), patch)

	if flagJSON {
		return printJSON(state)
	}

	renderState(state, cfg.Output)
	return nil
}
