package assistant

// Automations reports the actions the assistant has taken for the
// current context. The decompression buffer is always inserted; the
// reschedule and inbox snooze are guarded. The list is never empty.
func Automations(ctx LifeContext, s Stress, m Metrics) []Automation {
	var autos []Automation

	if s.Level == LevelCritical || m.Fatigue > 0.65 {
		autos = append(autos, Automation{
			ID:     "reschedule-flexible",
			Title:  "Rescheduled: 1:1 with Maya",
			Detail: "Moved to tomorrow afternoon to protect recovery window",
			Status: "completed",
			Type:   "reschedule",
		})
	}

	if ctx.UnreadEmails > 30 {
		autos = append(autos, Automation{
			ID:     "snooze-email",
			Title:  "Snoozed 28 low-priority messages",
			Detail: "Assistant will surface them after your focus block concludes",
			Status: "in-progress",
			Type:   "delay",
		})
	}

	autos = append(autos, Automation{
		ID:     "buffer-created",
		Title:  "Inserted 15-min decompression buffer",
		Detail: "Scheduled between client review and next meeting at 11:45 AM",
		Status: "completed",
		Type:   "buffer",
	})

	return autos
}
