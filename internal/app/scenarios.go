package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harmonia-app/harmonia/internal/config"
	"github.com/harmonia-app/harmonia/internal/output"
	"github.com/harmonia-app/harmonia/internal/scenario"
)

var scenariosLLM bool

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [key]",
	Short: "List and run the built-in demo scenarios",
	Long: `Without arguments, list the built-in demo scenarios. With a key, run
the assistant pipeline against that scenario's context.

Examples:
  harmonia scenarios
  harmonia scenarios crunch-day
  harmonia scenarios recovery-morning --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScenarios,
}

func init() {
	scenariosCmd.Flags().BoolVar(&scenariosLLM, "llm", false, "Enrich the plan with the configured LLM")
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	catalog, err := scenario.Load()
	if err != nil {
		return fmt.Errorf("loading scenario catalog: %w", err)
	}

	if len(args) == 0 {
		return listScenarios(catalog)
	}

	key := args[0]
	patch, ok := catalog.Context(key)
	if !ok {
		return fmt.Errorf("unknown scenario %q; run 'harmonia scenarios' to list them", key)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	builder := newBuilder(cfg, scenariosLLM)
	state := builder.Build(cmd.Context(), patch)

	if flagJSON {
		return printJSON(state)
	}

	renderState(state, cfg.Output)
	return nil
}

func listScenarios(catalog *scenario.Catalog) error {
	infos := catalog.List()

	if flagJSON {
		return printJSON(infos)
	}

	fmt.Println(output.Section("Demo Scenarios"))
	fmt.Println()

	tbl := output.NewTable("Key", "Label", "Description")
	for _, info := range infos {
		tbl.AddRow(info.ID, info.Label, info.Description)
	}
	tbl.Print()

	fmt.Println()
	fmt.Println(output.StyleMuted.Render("Run one with 'harmonia scenarios <key>'."))
	return nil
}
