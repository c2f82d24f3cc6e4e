package assistant

import "testing"

func TestClassifyStressBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, LevelSteady},
		{0.399, LevelSteady},
		{0.4, LevelElevated},
		{0.699, LevelElevated},
		{0.7, LevelCritical},
		{1, LevelCritical},
	}
	for _, tt := range tests {
		level, label, headline := classifyStress(tt.score)
		if level != tt.want {
			t.Errorf("classifyStress(%v) = %q, want %q", tt.score, level, tt.want)
		}
		if label == "" || headline == "" {
			t.Errorf("classifyStress(%v) returned empty label or headline", tt.score)
		}
	}
}

func TestAssessStressDefault(t *testing.T) {
	ctx := DefaultContext(testNow)
	m := ComputeMetrics(ctx)
	s := AssessStress(ctx, m)

	if !almostEqual(s.Score, 0.541337519) {
		t.Errorf("Score = %v, want 0.541337519", s.Score)
	}
	if s.Level != LevelElevated {
		t.Errorf("Level = %q, want elevated", s.Level)
	}
	if s.Label != "Elevated Load" {
		t.Errorf("Label = %q", s.Label)
	}

	// Default context trips only the break guard; the other signals
	// sit just under their 0.6 thresholds.
	want := []string{"Extended time since last break"}
	if len(s.Rationale) != len(want) {
		t.Fatalf("Rationale = %v, want %v", s.Rationale, want)
	}
	for i := range want {
		if s.Rationale[i] != want[i] {
			t.Errorf("Rationale[%d] = %q, want %q", i, s.Rationale[i], want[i])
		}
	}
}

func TestAssessStressCalm(t *testing.T) {
	ctx := calmContext()
	m := ComputeMetrics(ctx)
	s := AssessStress(ctx, m)

	if s.Level != LevelSteady {
		t.Errorf("Level = %q, want steady", s.Level)
	}
	if len(s.Rationale) != 1 || s.Rationale[0] != "All systems within target range" {
		t.Errorf("Rationale = %v", s.Rationale)
	}
}

func TestAssessStressSignalsEcho(t *testing.T) {
	ctx := DefaultContext(testNow)
	s := AssessStress(ctx, ComputeMetrics(ctx))

	if s.Signals.HeartRate != ctx.HeartRate {
		t.Errorf("Signals.HeartRate = %v", s.Signals.HeartRate)
	}
	if s.Signals.HeartRateVariability != ctx.HRV {
		t.Errorf("Signals.HeartRateVariability = %v", s.Signals.HeartRateVariability)
	}
	if s.Signals.UnreadEmails != ctx.UnreadEmails {
		t.Errorf("Signals.UnreadEmails = %v", s.Signals.UnreadEmails)
	}
	if s.Signals.SleepQuality != ctx.SleepQuality {
		t.Errorf("Signals.SleepQuality = %v", s.Signals.SleepQuality)
	}
}

func TestAssessStressRationaleGuards(t *testing.T) {
	// Push every guarded signal past its 0.6 threshold.
	ctx := Sanitize(&ContextPatch{
		HeartRate:           fptr(110),
		UnreadEmails:        iptr(120),
		CalendarLoad:        fptr(1),
		SleepQuality:        fptr(0),
		StepsToday:          iptr(0),
		LastBreakMinutesAgo: iptr(150),
		SentimentScore:      fptr(1),
		Hydration:           fptr(0),
	}, testNow)
	m := ComputeMetrics(ctx)
	s := AssessStress(ctx, m)

	if s.Level != LevelCritical {
		t.Errorf("Level = %q, want critical", s.Level)
	}
	if len(s.Rationale) != 4 {
		t.Errorf("Rationale = %v, want all four guards", s.Rationale)
	}
}
