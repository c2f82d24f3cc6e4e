package enrich

import (
	"encoding/json"
	"fmt"

	"github.com/harmonia-app/harmonia/internal/assistant"
)

// Loose payload shapes: everything optional, ids and sub-fields filled
// in during mapping.
type planPayload struct {
	Recommendations []looseRecommendation `json:"recommendations"`
	Automations     []looseAutomation     `json:"automations"`
	Notes           []string              `json:"notes"`
	Schedule        *struct {
		Projects []looseProject `json:"projects"`
	} `json:"schedule"`
	Tasks        *looseTasks        `json:"tasks"`
	Insights     *looseInsights     `json:"insights"`
	Integrations []looseIntegration `json:"integrations"`
}

type looseRecommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Category    string `json:"category"`
	Timeframe   string `json:"timeframe"`
}

type looseAutomation struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

type looseProject struct {
	ID           float64 `json:"_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ResearchArea string  `json:"research_area"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Institution  string  `json:"institution"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
}

type looseTask struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
	Suggestion string `json:"suggestion"`
	Action     string `json:"action"`
	Type       string `json:"type"`
	Urgency    string `json:"urgency"`
}

type looseTasks struct {
	Today    []looseTask `json:"today"`
	Tomorrow []looseTask `json:"tomorrow"`
	Upcoming []looseTask `json:"upcoming"`
}

type looseInsights struct {
	FlowHistory []struct {
		Time  string  `json:"time"`
		Focus float64 `json:"focus"`
	} `json:"flowHistory"`
	LoadTrend []struct {
		Day  string  `json:"day"`
		Load float64 `json:"load"`
	} `json:"loadTrend"`
	Highlights []string `json:"highlights"`
}

type looseIntegration struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Connected   bool   `json:"connected"`
	Premium     bool   `json:"premium"`
	Category    string `json:"category"`
}

// mapPlan converts raw model output into a canonical enrichment.
// Unparseable input yields nil: no enrichment rather than an error.
func mapPlan(raw string) *assistant.Enrichment {
	if raw == "" {
		return nil
	}
	var payload planPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil
	}

	e := &assistant.Enrichment{Notes: payload.Notes}

	for i, r := range payload.Recommendations {
		if r.Title == "" {
			continue
		}
		e.Recommendations = append(e.Recommendations, assistant.Recommendation{
			ID:          fallbackID(r.ID, "recommendation", i),
			Title:       r.Title,
			Description: r.Description,
			Impact:      orDefault(r.Impact, "Medium"),
			Category:    orDefault(r.Category, "focus"),
			Timeframe:   orDefault(r.Timeframe, "Today"),
		})
	}

	for i, a := range payload.Automations {
		if a.Title == "" {
			continue
		}
		e.Automations = append(e.Automations, assistant.Automation{
			ID:     fallbackID(a.ID, "automation", i),
			Title:  a.Title,
			Detail: a.Detail,
			Status: orDefault(a.Status, "completed"),
			Type:   orDefault(a.Type, "assist"),
		})
	}

	if payload.Schedule != nil {
		for i, p := range payload.Schedule.Projects {
			if p.Title == "" {
				continue
			}
			id := int(p.ID)
			if id == 0 {
				id = i + 1
			}
			e.Projects = append(e.Projects, assistant.Project{
				ID:           id,
				Title:        p.Title,
				Description:  p.Description,
				ResearchArea: orDefault(p.ResearchArea, "Operations"),
				StartDate:    p.StartDate,
				EndDate:      p.EndDate,
				Institution:  p.Institution,
				Status:       p.Status,
				Priority:     p.Priority,
			})
		}
	}

	if payload.Tasks != nil {
		tasks := assistant.TaskPlan{
			Today:    mapTasks(payload.Tasks.Today),
			Tomorrow: mapTasks(payload.Tasks.Tomorrow),
			Upcoming: mapTasks(payload.Tasks.Upcoming),
		}
		e.Tasks = &tasks
	}

	if payload.Insights != nil {
		ins := assistant.Insights{Highlights: payload.Insights.Highlights}
		for _, p := range payload.Insights.FlowHistory {
			ins.FlowHistory = append(ins.FlowHistory, assistant.FlowPoint{Time: p.Time, Focus: p.Focus})
		}
		for _, p := range payload.Insights.LoadTrend {
			ins.LoadTrend = append(ins.LoadTrend, assistant.LoadPoint{Day: p.Day, Load: p.Load})
		}
		e.Insights = &ins
	}

	for i, in := range payload.Integrations {
		if in.Service == "" {
			continue
		}
		e.Integrations = append(e.Integrations, assistant.Integration{
			ID:          fallbackID(in.ID, "integration", i),
			Service:     in.Service,
			Description: in.Description,
			Connected:   in.Connected,
			Premium:     in.Premium,
			Category:    in.Category,
		})
	}

	return e
}

func mapTasks(items []looseTask) []assistant.TaskItem {
	tasks := make([]assistant.TaskItem, 0, len(items))
	for i, t := range items {
		if t.Title == "" {
			continue
		}
		tasks = append(tasks, assistant.TaskItem{
			ID:         fallbackID(t.ID, "task", i),
			Title:      t.Title,
			Detail:     t.Detail,
			Suggestion: t.Suggestion,
			Action:     t.Action,
			Type:       orDefault(t.Type, "default"),
			Urgency:    orDefault(t.Urgency, "medium"),
		})
	}
	return tasks
}

func fallbackID(id, kind string, index int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", kind, index+1)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
