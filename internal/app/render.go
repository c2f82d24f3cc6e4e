package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/harmonia-app/harmonia/internal/assistant"
	"github.com/harmonia-app/harmonia/internal/config"
	"github.com/harmonia-app/harmonia/internal/enrich"
	"github.com/harmonia-app/harmonia/internal/output"
)

// newBuilder wires the optional LLM enricher from config. The builder
// stays deterministic unless withLLM is set and an API key is present.
func newBuilder(cfg *config.Config, withLLM bool) *assistant.Builder {
	b := &assistant.Builder{}
	if withLLM && cfg.LLM.Enabled() {
		b.Enricher = enrich.NewClient(enrich.Config{
			APIKey:   cfg.LLM.APIKey,
			Model:    cfg.LLM.Model,
			Endpoint: cfg.LLM.Endpoint,
			Timeout:  cfg.LLM.Timeout(),
		})
	}
	return b
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderState prints the assistant state as a styled terminal report.
// Bar widths scale with the configured output width.
func renderState(state assistant.State, out config.Output) {
	if !out.Color {
		output.SetNoColor(true)
	}
	barWidth := out.Width - 56
	if barWidth < 16 {
		barWidth = 16
	}
	if barWidth > 40 {
		barWidth = 40
	}

	level := output.LevelStyle(state.Stress.Level)

	fmt.Println(output.Section(fmt.Sprintf("Harmonia • %s", state.Context.DisplayName)))
	fmt.Println()
	fmt.Printf(" %s %s\n", output.StyleBold.Render(state.Stress.Label), level(fmt.Sprintf("(%s)", state.Stress.Level)))
	fmt.Printf(" %s\n", output.StyleMuted.Render(state.Stress.Headline))
	fmt.Println()

	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Stress score"), output.GaugeBar(state.Stress.Score, barWidth))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Cognitive load"), output.GaugeBar(state.Metrics.CognitiveLoad, barWidth))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Fatigue"), output.GaugeBar(state.Metrics.Fatigue, barWidth))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Focus readiness"), output.ReadinessBar(state.Metrics.FocusReadiness, barWidth))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Buffer time"), output.ReadinessBar(state.Metrics.BufferTime, barWidth))

	if len(state.Stress.Rationale) > 0 {
		fmt.Println(output.Section("Why"))
		for _, r := range state.Stress.Rationale {
			fmt.Printf("  • %s\n", r)
		}
	}

	fmt.Println(output.Section("Recommendations"))
	for _, rec := range state.Recommendations {
		fmt.Printf("  %s %s\n", output.StyleBold.Render(rec.Title), output.StyleMuted.Render(fmt.Sprintf("[%s • %s]", rec.Impact, rec.Timeframe)))
		fmt.Printf("    %s\n", rec.Description)
	}

	fmt.Println(output.Section("Automations"))
	for _, auto := range state.Automations {
		fmt.Printf("  %s %s\n", output.StyleBold.Render(auto.Title), output.StyleMuted.Render(fmt.Sprintf("[%s]", auto.Status)))
		fmt.Printf("    %s\n", auto.Detail)
	}

	fmt.Println(output.Section("Timeline"))
	tbl := output.NewTable("Time", "Item", "Type", "Status")
	for _, item := range state.Timeline {
		tbl.AddRow(item.TimeLabel, item.Label, item.Type, item.Status)
	}
	fmt.Println()
	tbl.Print()

	if fw := state.FocusSchedule.NextFocusBlock; fw != nil {
		fmt.Println(output.Section("Focus"))
		fmt.Printf("  Next block: %s at %s (%d min)\n", fw.Title, fw.Start.Time().Format("3:04 PM"), fw.DurationMinutes)
		rb := state.FocusSchedule.NextRecoveryBlock
		fmt.Printf("  Recovery:   %s at %s (%d min)\n", rb.Title, rb.Start.Time().Format("3:04 PM"), rb.DurationMinutes)
	}

	if state.LLM.Enabled {
		status := "not used"
		if state.LLM.Used {
			status = "used"
		}
		fmt.Println()
		fmt.Printf(" %s\n", output.StyleMuted.Render("LLM enrichment "+status))
		for _, note := range state.LLM.Notes {
			fmt.Printf(" %s\n", output.StyleMuted.Render("  "+note))
		}
	}
	fmt.Println()
}

// patchFromArgs builds a context patch from key=value arguments, e.g.
// "heartRate=92 calendarLoad=0.8". Values are decoded as JSON scalars,
// falling back to a plain string.
func patchFromArgs(args []string) (*assistant.ContextPatch, error) {
	if len(args) == 0 {
		return nil, nil
	}
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		fields[key] = v
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return assistant.ParsePatch(data)
}
