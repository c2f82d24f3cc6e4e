package assistant

import "testing"

func automationIDs(autos []Automation) []string {
	ids := make([]string, len(autos))
	for i, a := range autos {
		ids[i] = a.ID
	}
	return ids
}

func TestAutomationsDefault(t *testing.T) {
	ctx := DefaultContext(testNow)
	m := ComputeMetrics(ctx)
	s := AssessStress(ctx, m)

	got := automationIDs(Automations(ctx, s, m))
	want := []string{"snooze-email", "buffer-created"}
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAutomationsBufferAlwaysPresent(t *testing.T) {
	ctx := calmContext()
	m := ComputeMetrics(ctx)
	s := AssessStress(ctx, m)

	autos := Automations(ctx, s, m)
	if len(autos) != 1 || autos[0].ID != "buffer-created" {
		t.Fatalf("autos = %v, want single buffer-created", automationIDs(autos))
	}
	if autos[0].Status != "completed" || autos[0].Type != "buffer" {
		t.Errorf("buffer = %+v", autos[0])
	}
}

func TestAutomationsRescheduleOnCriticalStrain(t *testing.T) {
	ctx := Sanitize(&ContextPatch{
		HeartRate:           fptr(120),
		SleepQuality:        fptr(0.1),
		StepsToday:          iptr(0),
		LastBreakMinutesAgo: iptr(150),
		CalendarLoad:        fptr(1),
		UnreadEmails:        iptr(100),
		SentimentScore:      fptr(0.9),
		Hydration:           fptr(0.1),
	}, testNow)
	m := ComputeMetrics(ctx)
	s := AssessStress(ctx, m)
	if s.Level != LevelCritical {
		t.Fatalf("fixture not critical: level %q, score %v", s.Level, s.Score)
	}

	got := automationIDs(Automations(ctx, s, m))
	want := []string{"reschedule-flexible", "snooze-email", "buffer-created"}
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAutomationsRescheduleOnFatigueAlone(t *testing.T) {
	ctx := calmContext()
	ctx.SleepQuality = 0
	ctx.StepsToday = 0
	ctx.LastBreakMinutesAgo = 150
	ctx.Hydration = 0
	m := ComputeMetrics(ctx)
	if m.Fatigue <= 0.65 {
		t.Fatalf("fixture fatigue %v not above 0.65", m.Fatigue)
	}
	s := AssessStress(ctx, m)

	found := false
	for _, id := range automationIDs(Automations(ctx, s, m)) {
		if id == "reschedule-flexible" {
			found = true
		}
	}
	if !found {
		t.Errorf("reschedule-flexible did not fire on high fatigue")
	}
}
