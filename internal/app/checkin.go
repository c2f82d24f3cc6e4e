package app

import (
	"fmt"

	"github.com/harmonia-app/harmonia/internal/assistant"
	"github.com/harmonia-app/harmonia/internal/config"
	"github.com/harmonia-app/harmonia/internal/store"
)

// mergeLatestCheckin layers the newest logged check-in beneath the
// given patch: any signal the caller did not supply takes the logged
// value before falling back to the built-in defaults. With no
// check-ins logged the patch passes through unchanged.
func mergeLatestCheckin(patch *assistant.ContextPatch) (*assistant.ContextPatch, error) {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return mergeCheckin(db, patch)
}

func mergeCheckin(db *store.DB, patch *assistant.ContextPatch) (*assistant.ContextPatch, error) {
	row, err := db.LatestCheckin()
	if err != nil {
		return nil, fmt.Errorf("loading latest check-in: %w", err)
	}
	if row == nil {
		return patch, nil
	}

	base := patchFromCheckin(row)
	if patch == nil {
		return base, nil
	}

	if patch.HeartRate == nil {
		patch.HeartRate = base.HeartRate
	}
	if patch.HRV == nil {
		patch.HRV = base.HRV
	}
	if patch.CalendarLoad == nil {
		patch.CalendarLoad = base.CalendarLoad
	}
	if patch.UnreadEmails == nil {
		patch.UnreadEmails = base.UnreadEmails
	}
	if patch.SleepQuality == nil {
		patch.SleepQuality = base.SleepQuality
	}
	if patch.StepsToday == nil {
		patch.StepsToday = base.StepsToday
	}
	if patch.LastBreakMinutesAgo == nil {
		patch.LastBreakMinutesAgo = base.LastBreakMinutesAgo
	}
	if patch.SentimentScore == nil {
		patch.SentimentScore = base.SentimentScore
	}
	if patch.Hydration == nil {
		patch.Hydration = base.Hydration
	}
	if patch.LastNightSleepHours == nil {
		patch.LastNightSleepHours = base.LastNightSleepHours
	}
	return patch, nil
}

// patchFromCheckin converts a stored check-in row into a context
// patch over the scalar signals it carries.
func patchFromCheckin(row *store.CheckinRow) *assistant.ContextPatch {
	return &assistant.ContextPatch{
		HeartRate:           &row.HeartRate,
		HRV:                 &row.HRV,
		CalendarLoad:        &row.CalendarLoad,
		UnreadEmails:        &row.UnreadEmails,
		SleepQuality:        &row.SleepQuality,
		StepsToday:          &row.StepsToday,
		LastBreakMinutesAgo: &row.LastBreakMinutesAgo,
		SentimentScore:      &row.SentimentScore,
		Hydration:           &row.Hydration,
		LastNightSleepHours: &row.LastNightSleepHours,
	}
}
