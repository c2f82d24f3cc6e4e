package assistant

import (
	"fmt"
	"time"
)

// BuildFocusSchedule computes the next focus window, the next recovery
// window, and the notification suppression hold for the context.
func BuildFocusSchedule(ctx LifeContext, m Metrics, s Stress, now time.Time) FocusSchedule {
	var nextFocus *FocusWindow
	if len(ctx.FocusBlocks) > 0 {
		fb := ctx.FocusBlocks[0]
		nextFocus = &FocusWindow{
			ID:              fb.ID,
			Title:           fb.Title,
			Start:           fb.Start,
			End:             fb.Start + Millis(fb.DurationMinutes)*60000,
			DurationMinutes: fb.DurationMinutes,
			Mode:            fb.Mode,
			Readiness:       m.FocusReadiness,
		}
	}

	recovery := RecoveryBlock{
		ID:              "guided-reset",
		Title:           "Guided Walk & Breath Reset",
		Start:           Millis(now.UnixMilli()) + 60*60*1000,
		DurationMinutes: 12,
		Focus:           "sustain focus balance",
	}
	if s.Level == LevelCritical {
		recovery.DurationMinutes = 20
		recovery.Focus = "down-regulate stress response"
	}

	suppressUntil := Millis(now.UnixMilli()) + 45*60000
	if nextFocus != nil {
		suppressUntil = nextFocus.Start
	}

	return FocusSchedule{
		NextFocusBlock:    nextFocus,
		NextRecoveryBlock: recovery,
		SuppressedNotifications: SuppressedNotifications{
			Until: suppressUntil,
			Count: ctx.Notifications.Pending,
		},
	}
}

// BuildTimeline merges meetings and automations into one display
// timeline. Meetings come first in calendar order, then automations in
// the order they were generated.
func BuildTimeline(ctx LifeContext, autos []Automation) []TimelineItem {
	items := make([]TimelineItem, 0, len(ctx.Meetings)+len(autos))

	for _, meeting := range ctx.Meetings {
		status := "locked"
		if meeting.Priority == "flexible" {
			status = "adjustable"
		}
		items = append(items, TimelineItem{
			ID:        meeting.ID,
			TimeLabel: meeting.Start.Time().Format("3:04 PM"),
			Label:     meeting.Title,
			Type:      "meeting",
			Status:    status,
			Detail:    fmt.Sprintf("%d min • %s", meeting.DurationMinutes, meeting.Location),
		})
	}

	for _, auto := range autos {
		items = append(items, TimelineItem{
			ID:        auto.ID + "-timeline",
			TimeLabel: "auto",
			Label:     auto.Title,
			Type:      "automation",
			Status:    auto.Status,
			Detail:    auto.Detail,
		})
	}

	return items
}
