package app

import (
	"testing"

	"github.com/harmonia-app/harmonia/internal/store"
)

func seedCheckin(t *testing.T, db *store.DB) {
	t.Helper()
	_, err := db.InsertCheckin(&store.CheckinRow{
		HeartRate:           64,
		HRV:                 70,
		CalendarLoad:        0.3,
		UnreadEmails:        12,
		SleepQuality:        0.85,
		StepsToday:          2500,
		LastBreakMinutesAgo: 20,
		SentimentScore:      0.3,
		Hydration:           0.8,
		LastNightSleepHours: 8,
		StressScore:         0.2,
		StressLevel:         "steady",
	})
	if err != nil {
		t.Fatalf("seeding check-in: %v", err)
	}
}

func TestMergeCheckin_EmptyJournal(t *testing.T) {
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer func() { _ = db.Close() }()

	patch, err := patchFromArgs([]string{"heartRate=94"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	merged, err := mergeCheckin(db, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged != patch {
		t.Error("expected patch to pass through unchanged with no check-ins")
	}
}

func TestMergeCheckin_NilPatch(t *testing.T) {
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer func() { _ = db.Close() }()
	seedCheckin(t, db)

	merged, err := mergeCheckin(db, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged == nil {
		t.Fatal("expected a patch built from the check-in")
	}
	if merged.HeartRate == nil || *merged.HeartRate != 64 {
		t.Errorf("heartRate = %v, want 64", merged.HeartRate)
	}
	if merged.UnreadEmails == nil || *merged.UnreadEmails != 12 {
		t.Errorf("unreadEmails = %v, want 12", merged.UnreadEmails)
	}
}

func TestMergeCheckin_UserSignalsWin(t *testing.T) {
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer func() { _ = db.Close() }()
	seedCheckin(t, db)

	patch, err := patchFromArgs([]string{"heartRate=110", "calendarLoad=0.9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	merged, err := mergeCheckin(db, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *merged.HeartRate != 110 {
		t.Errorf("heartRate = %v, want the supplied 110", *merged.HeartRate)
	}
	if *merged.CalendarLoad != 0.9 {
		t.Errorf("calendarLoad = %v, want the supplied 0.9", *merged.CalendarLoad)
	}
	// Unsupplied signals come from the check-in.
	if merged.SleepQuality == nil || *merged.SleepQuality != 0.85 {
		t.Errorf("sleepQuality = %v, want 0.85 from the check-in", merged.SleepQuality)
	}
	if merged.HRV == nil || *merged.HRV != 70 {
		t.Errorf("hrv = %v, want 70 from the check-in", merged.HRV)
	}
}
