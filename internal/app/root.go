// Package app contains the Cobra command tree for harmonia.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harmonia-app/harmonia/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Adaptive wellbeing and productivity assistant",
	Long: `harmonia turns partial "life context" signals (biometrics, calendar,
inbox, sleep) into a full assistant state: normalized wellbeing metrics, a
stress assessment, recommendations, automations, a focus schedule, and a
day plan. The pipeline is deterministic; an optional LLM pass enriches the
plan and falls back to the rule engines per field.

Run 'harmonia summary' for a quick read on the default day, or 'harmonia
serve' to expose the assistant over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.DetectColor(flagNoColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("harmonia", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  summary    Assistant state for the default day context")
		fmt.Println("  analyze    Assistant state for a custom context")
		fmt.Println("  scenarios  List and run the built-in demo scenarios")
		fmt.Println("  log        Record a check-in and review the journal")
		fmt.Println("  serve      Expose the assistant over HTTP")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/harmonia/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
