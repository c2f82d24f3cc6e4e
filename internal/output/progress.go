package output

import (
	"fmt"
	"strings"
)

// GaugeBar renders a visual bar for a 0-1 metric where higher values
// indicate more strain. Example: "██████░░░░ 54%"
func GaugeBar(value float64, width int) string {
	return fractionBar(value, width, false)
}

// ReadinessBar renders a visual bar for a 0-1 metric where higher values
// are better, such as focus readiness.
func ReadinessBar(value float64, width int) string {
	return fractionBar(value, width, true)
}

func fractionBar(value float64, width int, higherIsBetter bool) string {
	if width <= 0 {
		width = 20
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	good := value
	if !higherIsBetter {
		good = 1 - value
	}

	var style func(string) string
	switch {
	case good >= 0.6:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case good >= 0.3:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f%%", value*100)))
}

// LevelStyle returns a render function matching a stress level.
func LevelStyle(level string) func(string) string {
	switch level {
	case "critical":
		return func(s string) string { return StyleError.Render(s) }
	case "elevated":
		return func(s string) string { return StyleWarning.Render(s) }
	default:
		return func(s string) string { return StyleSuccess.Render(s) }
	}
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
// The higherIsBetter parameter indicates whether an increase is an improvement.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.2f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.2f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
