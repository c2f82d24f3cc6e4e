package assistant

import "math"

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// normalize maps v from [lo,hi] onto [0,1], clamping at the edges.
// NaN and a degenerate range both yield 0.
func normalize(v, lo, hi float64) float64 {
	if math.IsNaN(v) || hi == lo {
		return 0
	}
	return clamp((v-lo)/(hi-lo), 0, 1)
}

// ComputeMetrics derives the normalized signal set from a sanitized
// context. The composite weights are tuned so that a fully loaded
// calendar, an overflowing inbox, and a short night each move their
// composite by a visible amount without saturating it alone.
func ComputeMetrics(ctx LifeContext) Metrics {
	m := Metrics{
		HeartRateNorm: normalize(ctx.HeartRate, 55, 110),
		HRVNorm:       1 - normalize(ctx.HRV, 20, 90),
		UnreadNorm:    normalize(float64(ctx.UnreadEmails), 0, 120),
		SentimentNorm: normalize(ctx.SentimentScore, -1, 1),
		LastBreakNorm: normalize(float64(ctx.LastBreakMinutesAgo), 0, 150),
		MovementNorm:  1 - normalize(float64(ctx.StepsToday), 0, 8000),
		SleepDebt:     1 - ctx.SleepQuality,
		HydrationDebt: 1 - ctx.Hydration,
		CalendarLoad:  clamp(ctx.CalendarLoad, 0, 1),
	}

	m.CognitiveLoad = clamp(
		0.4*m.CalendarLoad+
			0.35*m.UnreadNorm+
			0.25*m.SentimentNorm,
		0, 1)

	m.Fatigue = clamp(
		0.45*m.SleepDebt+
			0.25*m.MovementNorm+
			0.2*m.LastBreakNorm+
			0.1*m.HydrationDebt,
		0, 1)

	m.FocusReadiness = clamp(1-(0.55*m.CognitiveLoad+0.45*m.Fatigue), 0, 1)
	m.BufferTime = clamp(1-m.CalendarLoad, 0, 1)

	return m
}
