package assistant

// Stress level boundaries. Scores in [elevatedThreshold,
// criticalThreshold) classify as elevated; at or above
// criticalThreshold as critical.
const (
	elevatedThreshold = 0.4
	criticalThreshold = 0.7
)

// classifyStress maps a stress score onto its level, label, and
// headline. The boundaries are inclusive on the high side.
func classifyStress(score float64) (level, label, headline string) {
	switch {
	case score >= criticalThreshold:
		return LevelCritical, "Critical Strain",
			"High activation detected — recovery needed before the next push"
	case score >= elevatedThreshold:
		return LevelElevated, "Elevated Load",
			"Cognitive and physiological load trending high — recommend intervention"
	default:
		return LevelSteady, "Centered", "Systems steady and ready to focus"
	}
}

// AssessStress scores the context's stress from the weighted metric
// composites and classifies it. Rationale always carries at least one
// entry.
func AssessStress(ctx LifeContext, m Metrics) Stress {
	score := clamp(
		0.35*m.HeartRateNorm+
			0.2*m.CognitiveLoad+
			0.15*m.Fatigue+
			0.15*(1-m.FocusReadiness)+
			0.1*m.SentimentNorm+
			0.05*m.LastBreakNorm,
		0, 1)

	level, label, headline := classifyStress(score)

	var rationale []string
	if m.HeartRateNorm > 0.6 {
		rationale = append(rationale, "Heart rate trending above calm baseline")
	}
	if m.CognitiveLoad > 0.6 {
		rationale = append(rationale, "High cognitive load from meetings and open loops")
	}
	if m.Fatigue > 0.6 {
		rationale = append(rationale, "Recovery debt detected from limited sleep and movement")
	}
	if m.LastBreakNorm > 0.6 {
		rationale = append(rationale, "Extended time since last break")
	}
	if len(rationale) == 0 {
		rationale = append(rationale, "All systems within target range")
	}

	return Stress{
		Score:     score,
		Level:     level,
		Label:     label,
		Headline:  headline,
		Rationale: rationale,
		Signals: StressSignals{
			HeartRate:            ctx.HeartRate,
			HeartRateVariability: ctx.HRV,
			UnreadEmails:         ctx.UnreadEmails,
			CalendarLoad:         ctx.CalendarLoad,
			LastBreakMinutesAgo:  ctx.LastBreakMinutesAgo,
			SleepQuality:         ctx.SleepQuality,
		},
	}
}
