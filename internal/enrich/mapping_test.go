package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"leading prose", `Sure! {"a":1}`, `{"a":1}`},
		{"markdown fences", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"trailing prose", `{"a":1} done`, `{"a":1}`},
		{"no braces", "nothing here", "nothing here"},
		{"reversed braces", "} {", "} {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestMapPlanDefaults(t *testing.T) {
	raw := `{
		"recommendations": [
			{"title": "Hydrate", "description": "Drink water."},
			{"id": "own-id", "title": "Walk", "description": "Outside.", "impact": "High", "category": "recovery", "timeframe": "Now"}
		],
		"automations": [{"title": "Muted channels", "detail": "Until 3 PM"}],
		"integrations": [{"service": "Linear", "description": "Issue sync"}]
	}`

	e := mapPlan(raw)
	require.NotNil(t, e)

	require.Len(t, e.Recommendations, 2)
	assert.Equal(t, "recommendation-1", e.Recommendations[0].ID)
	assert.Equal(t, "Medium", e.Recommendations[0].Impact)
	assert.Equal(t, "focus", e.Recommendations[0].Category)
	assert.Equal(t, "Today", e.Recommendations[0].Timeframe)
	assert.Equal(t, "own-id", e.Recommendations[1].ID)
	assert.Equal(t, "High", e.Recommendations[1].Impact)

	require.Len(t, e.Automations, 1)
	assert.Equal(t, "automation-1", e.Automations[0].ID)
	assert.Equal(t, "completed", e.Automations[0].Status)

	require.Len(t, e.Integrations, 1)
	assert.Equal(t, "integration-1", e.Integrations[0].ID)
	assert.Equal(t, "Linear", e.Integrations[0].Service)
}

func TestMapPlanSkipsUntitledEntries(t *testing.T) {
	raw := `{"recommendations":[{"description":"no title"},{"title":"Kept","description":"ok"}]}`
	e := mapPlan(raw)
	require.NotNil(t, e)
	require.Len(t, e.Recommendations, 1)
	assert.Equal(t, "Kept", e.Recommendations[0].Title)
}

func TestMapPlanNestedSections(t *testing.T) {
	raw := `{
		"schedule": {"projects": [{"title": "Quarterly narrative", "research_area": "writing"}]},
		"tasks": {"today": [{"title": "Draft intro"}], "tomorrow": [], "upcoming": []},
		"insights": {"flowHistory": [{"time": "09:00", "focus": 40}], "loadTrend": [{"day": "Mon", "load": 12}], "highlights": ["good pace"]}
	}`

	e := mapPlan(raw)
	require.NotNil(t, e)

	require.Len(t, e.Projects, 1)
	assert.Equal(t, 1, e.Projects[0].ID)
	assert.Equal(t, "writing", e.Projects[0].ResearchArea)

	require.NotNil(t, e.Tasks)
	require.Len(t, e.Tasks.Today, 1)
	assert.Equal(t, "task-1", e.Tasks.Today[0].ID)
	assert.Equal(t, "medium", e.Tasks.Today[0].Urgency)
	assert.Empty(t, e.Tasks.Tomorrow)

	require.NotNil(t, e.Insights)
	require.Len(t, e.Insights.FlowHistory, 1)
	assert.Equal(t, "09:00", e.Insights.FlowHistory[0].Time)
	assert.Equal(t, []string{"good pace"}, e.Insights.Highlights)
}

func TestMapPlanMissingResearchAreaDefaults(t *testing.T) {
	raw := `{"schedule":{"projects":[{"title":"Untagged"}]}}`
	e := mapPlan(raw)
	require.NotNil(t, e)
	require.Len(t, e.Projects, 1)
	assert.Equal(t, "Operations", e.Projects[0].ResearchArea)
}

func TestMapPlanInvalid(t *testing.T) {
	assert.Nil(t, mapPlan(""))
	assert.Nil(t, mapPlan("not json"))
	assert.Nil(t, mapPlan(`{"recommendations": "should be an array"}`))
}
