package assistant

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultContext returns the baseline context: a loaded but
// recoverable workday. Any field the caller omits keeps these values.
// Meeting and focus-block starts are anchored to the given day.
func DefaultContext(now time.Time) LifeContext {
	return LifeContext{
		DisplayName:         "Jordan",
		HeartRate:           86,
		HRV:                 42,
		CalendarLoad:        0.82,
		UnreadEmails:        47,
		SleepQuality:        0.58,
		StepsToday:          1320,
		LastBreakMinutesAgo: 96,
		SentimentScore:      -0.35,
		FocusEnergy:         0.42,
		Hydration:           0.5,
		Meetings: []Meeting{
			{
				ID:              "standup",
				Title:           "Team Standup",
				Start:           todayAt(now, 9, 30),
				DurationMinutes: 20,
				Category:        "sync",
				Priority:        "required",
				Location:        "Zoom",
			},
			{
				ID:              "client-review",
				Title:           "Client Feedback Review",
				Start:           todayAt(now, 10, 30),
				DurationMinutes: 60,
				Category:        "deep-work",
				Priority:        "critical",
				Location:        "Notion",
			},
			{
				ID:              "one-on-one",
				Title:           "1:1 with Maya",
				Start:           todayAt(now, 13, 0),
				DurationMinutes: 30,
				Category:        "support",
				Priority:        "flexible",
				Location:        "Cafe",
			},
		},
		FocusBlocks: []FocusBlock{
			{
				ID:              "deep-work-block",
				Title:           "Deep Work: Strategy Narrative",
				Start:           todayAt(now, 15, 30),
				DurationMinutes: 90,
				Mode:            "focus",
			},
		},
		Notifications:       Notifications{Pending: 24, Urgent: 4},
		LastNightSleepHours: 5.8,
	}
}

func todayAt(now time.Time, hour, min int) Millis {
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	return Millis(t.UnixMilli())
}

// ParsePatch decodes a caller payload into a ContextPatch. The context
// may arrive either flat or wrapped in a "context" field; both forms
// are accepted. Only syntactically invalid JSON is an error: wrong
// field types inside a valid payload are absorbed by sanitization.
func ParsePatch(data []byte) (*ContextPatch, error) {
	var wrapper struct {
		Context json.RawMessage `json:"context"`
	}
	body := data
	if err := json.Unmarshal(data, &wrapper); err == nil {
		if len(wrapper.Context) > 0 && string(wrapper.Context) != "null" {
			body = wrapper.Context
		}
	} else if !json.Valid(data) {
		return nil, fmt.Errorf("decoding context payload: %w", err)
	}
	var patch ContextPatch
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, fmt.Errorf("decoding context payload: %w", err)
	}
	return &patch, nil
}

// Sanitize merges a partial patch over the defaults and clamps every
// numeric field to its domain. A nil patch yields the defaults.
// Malformed meeting or focus-block sequences are replaced wholesale
// with the default sequences rather than merged item by item.
func Sanitize(patch *ContextPatch, now time.Time) LifeContext {
	ctx := DefaultContext(now)
	if patch == nil {
		return ctx
	}

	if patch.DisplayName != nil {
		ctx.DisplayName = *patch.DisplayName
	}
	if patch.HeartRate != nil {
		ctx.HeartRate = *patch.HeartRate
	}
	if patch.HRV != nil {
		ctx.HRV = *patch.HRV
	}
	if patch.CalendarLoad != nil {
		ctx.CalendarLoad = *patch.CalendarLoad
	}
	if patch.UnreadEmails != nil {
		ctx.UnreadEmails = *patch.UnreadEmails
	}
	if patch.SleepQuality != nil {
		ctx.SleepQuality = *patch.SleepQuality
	}
	if patch.StepsToday != nil {
		ctx.StepsToday = *patch.StepsToday
	}
	if patch.LastBreakMinutesAgo != nil {
		ctx.LastBreakMinutesAgo = *patch.LastBreakMinutesAgo
	}
	if patch.SentimentScore != nil {
		ctx.SentimentScore = *patch.SentimentScore
	}
	if patch.FocusEnergy != nil {
		ctx.FocusEnergy = *patch.FocusEnergy
	}
	if patch.Hydration != nil {
		ctx.Hydration = *patch.Hydration
	}
	if patch.LastNightSleepHours != nil {
		ctx.LastNightSleepHours = *patch.LastNightSleepHours
	}
	if patch.Notifications != nil {
		if patch.Notifications.Pending != nil {
			ctx.Notifications.Pending = *patch.Notifications.Pending
		}
		if patch.Notifications.Urgent != nil {
			ctx.Notifications.Urgent = *patch.Notifications.Urgent
		}
	}

	if meetings, ok := decodeSequence[Meeting](patch.Meetings); ok {
		ctx.Meetings = meetings
	}
	if blocks, ok := decodeSequence[FocusBlock](patch.FocusBlocks); ok {
		ctx.FocusBlocks = blocks
	}

	ctx.SleepQuality = clamp(ctx.SleepQuality, 0, 1)
	ctx.CalendarLoad = clamp(ctx.CalendarLoad, 0, 1)
	ctx.FocusEnergy = clamp(ctx.FocusEnergy, 0, 1)
	ctx.Hydration = clamp(ctx.Hydration, 0, 1)
	ctx.SentimentScore = clamp(ctx.SentimentScore, -1, 1)
	ctx.LastNightSleepHours = clamp(ctx.LastNightSleepHours, 0, 12)
	ctx.StepsToday = max(ctx.StepsToday, 0)
	ctx.LastBreakMinutesAgo = max(ctx.LastBreakMinutesAgo, 0)
	ctx.UnreadEmails = max(ctx.UnreadEmails, 0)
	if ctx.HeartRate < 40 {
		ctx.HeartRate = 40
	}
	if ctx.HRV < 10 {
		ctx.HRV = 10
	}

	return ctx
}

// decodeSequence reports ok only when raw holds a valid JSON array of
// T. Absent, null, or malformed values keep the defaults.
func decodeSequence[T any](raw json.RawMessage) ([]T, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []T{}
	}
	return items, true
}
