package assistant

// recommendationRule inspects the context and metrics and returns a
// recommendation when its guard condition holds, nil otherwise.
type recommendationRule func(ctx LifeContext, s Stress, m Metrics) *Recommendation

var recommendationRules = []recommendationRule{
	ruleGuidedRegulation,
	ruleProtectFocus,
	ruleInboxTriage,
	ruleSleepPriming,
}

// Recommendations runs the rule set in order and collects every
// recommendation whose guard fires. When nothing fires it returns the
// single maintain-flow default, so the list is never empty.
func Recommendations(ctx LifeContext, s Stress, m Metrics) []Recommendation {
	var recs []Recommendation
	for _, rule := range recommendationRules {
		if r := rule(ctx, s, m); r != nil {
			recs = append(recs, *r)
		}
	}
	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			ID:          "maintain-flow",
			Title:       "Maintain current cadence",
			Description: "All systems are aligned. Continue current focus block with 25-minute check-ins.",
			Impact:      "Low",
			Category:    "focus",
			Timeframe:   "Next 90 minutes",
		})
	}
	return recs
}

func ruleGuidedRegulation(_ LifeContext, s Stress, m Metrics) *Recommendation {
	if s.Level == LevelSteady && m.CognitiveLoad <= 0.55 {
		return nil
	}
	return &Recommendation{
		ID:          "guided-regulation",
		Title:       "Start a guided regulation micro-break",
		Description: "Launch a 3-minute breathing reset and light movement to recover your nervous system.",
		Impact:      "High",
		Category:    "recovery",
		Timeframe:   "Start now",
	}
}

func ruleProtectFocus(_ LifeContext, _ Stress, m Metrics) *Recommendation {
	if m.BufferTime >= 0.3 {
		return nil
	}
	return &Recommendation{
		ID:          "protect-focus",
		Title:       "Create a focus protection window",
		Description: "Block 60 minutes this afternoon and silence notifications while inbox is auto-triaged.",
		Impact:      "High",
		Category:    "focus",
		Timeframe:   "Today, 3:00 PM",
	}
}

func ruleInboxTriage(ctx LifeContext, _ Stress, _ Metrics) *Recommendation {
	if ctx.UnreadEmails <= 25 {
		return nil
	}
	return &Recommendation{
		ID:          "inbox-triage",
		Title:       "Auto-triage low-urgency messages",
		Description: "Assistant can draft replies and delay non-critical emails until after your focus block.",
		Impact:      "Medium",
		Category:    "automation",
		Timeframe:   "Queued for 4:15 PM",
	}
}

func ruleSleepPriming(ctx LifeContext, _ Stress, m Metrics) *Recommendation {
	if m.Fatigue <= 0.5 && ctx.SleepQuality >= 0.65 {
		return nil
	}
	return &Recommendation{
		ID:          "sleep-priming",
		Title:       "Prime recovery for tonight",
		Description: "Wind-down protocol with hydration reminder and light stretching at 9:30 PM.",
		Impact:      "Medium",
		Category:    "wellbeing",
		Timeframe:   "Tonight",
	}
}
