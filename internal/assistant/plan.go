package assistant

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FallbackProjects derives the schedule projects from the meetings in
// the context, one project per meeting.
func FallbackProjects(ctx LifeContext) []Project {
	projects := make([]Project, 0, len(ctx.Meetings))
	for i, meeting := range ctx.Meetings {
		category := meeting.Category
		if category == "" {
			category = "Operations"
		}
		duration := meeting.DurationMinutes
		if duration == 0 {
			duration = 30
		}
		label := meeting.Category
		if label == "" {
			label = "Meeting"
		}
		location := meeting.Location
		if location == "" {
			location = "Remote"
		}
		start := meeting.Start.Time()
		end := start.Add(time.Duration(duration) * time.Minute)
		projects = append(projects, Project{
			ID:           i + 1,
			Title:        meeting.Title,
			Description:  fmt.Sprintf("%s • %s", label, location),
			ResearchArea: category,
			StartDate:    start.UTC().Format(time.RFC3339),
			EndDate:      end.UTC().Format(time.RFC3339),
			Institution:  meeting.Location,
			Status:       "scheduled",
			Priority:     meeting.Priority,
		})
	}
	return projects
}

// FallbackTasks buckets the generated recommendations and automations
// into the task plan: recommendations land today, rescheduled items
// land tomorrow, and focus blocks become upcoming entries.
func FallbackTasks(ctx LifeContext, recs []Recommendation, autos []Automation) TaskPlan {
	plan := TaskPlan{
		Today:    []TaskItem{},
		Tomorrow: []TaskItem{},
		Upcoming: []TaskItem{},
	}

	for _, rec := range recs {
		plan.Today = append(plan.Today, TaskItem{
			ID:         "task-" + rec.ID,
			Title:      rec.Title,
			Detail:     rec.Timeframe,
			Suggestion: rec.Description,
			Action:     "Apply",
			Type:       rec.Category,
			Urgency:    strings.ToLower(rec.Impact),
		})
	}

	for _, auto := range autos {
		if auto.Type != "reschedule" {
			continue
		}
		plan.Tomorrow = append(plan.Tomorrow, TaskItem{
			ID:      "task-" + auto.ID,
			Title:   auto.Title,
			Detail:  auto.Detail,
			Type:    auto.Type,
			Urgency: "medium",
		})
	}

	for _, fb := range ctx.FocusBlocks {
		plan.Upcoming = append(plan.Upcoming, TaskItem{
			ID:      "task-" + fb.ID,
			Title:   fb.Title,
			Detail:  fmt.Sprintf("%d min focus window", fb.DurationMinutes),
			Type:    "focus",
			Urgency: "low",
		})
	}

	return plan
}

// FallbackInsights pairs the baseline trend curves with highlights
// computed from the current metrics and stress assessment.
func FallbackInsights(m Metrics, s Stress) Insights {
	highlights := []string{
		fmt.Sprintf("Focus readiness at %d%%", percent(m.FocusReadiness)),
		fmt.Sprintf("Cognitive load at %d%%", percent(m.CognitiveLoad)),
	}
	if len(s.Rationale) > 0 {
		highlights = append(highlights, s.Rationale[0])
	}
	return Insights{
		FlowHistory: []FlowPoint{
			{Time: "07:00", Focus: 20},
			{Time: "09:00", Focus: 32},
			{Time: "11:00", Focus: 28},
			{Time: "15:00", Focus: 20},
			{Time: "21:00", Focus: 18},
		},
		LoadTrend: []LoadPoint{
			{Day: "Mon", Load: 20},
			{Day: "Tue", Load: 45},
			{Day: "Wed", Load: 30},
			{Day: "Thu", Load: 25},
			{Day: "Fri", Load: 22},
			{Day: "Sat", Load: 18},
		},
		Highlights: highlights,
	}
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

// FallbackIntegrations returns the default connected-service list.
func FallbackIntegrations() []Integration {
	return []Integration{
		{
			ID:          "google_calendar",
			Service:     "Google Calendar",
			Description: "Access your calendar to schedule tasks",
			Connected:   true,
			Premium:     false,
			Category:    "calendar",
		},
		{
			ID:          "slack",
			Service:     "Slack",
			Description: "Sync with your team communications",
			Connected:   true,
			Premium:     true,
			Category:    "communication",
		},
		{
			ID:          "gmail",
			Service:     "Gmail",
			Description: "Read emails to help manage communication",
			Connected:   false,
			Premium:     false,
			Category:    "email",
		},
	}
}
