package assistant

import (
	"context"
	"log"
	"time"
)

// EnrichmentInput is the trimmed view of the pipeline state handed to
// an enricher.
type EnrichmentInput struct {
	Context LifeContext
	Metrics Metrics
	Stress  Stress
}

// Enrichment is a partial plan produced by an enricher. Nil or empty
// fields mean the enricher had nothing for that slot and the fallback
// generator remains responsible for it.
type Enrichment struct {
	Recommendations []Recommendation
	Automations     []Automation
	Notes           []string
	Projects        []Project
	Tasks           *TaskPlan
	Insights        *Insights
	Integrations    []Integration
}

// Enricher produces an optional partial plan for a context. A nil
// result with a nil error means the enricher declined; an error means
// it was unavailable. Either way the caller falls back per field.
type Enricher interface {
	Enrich(ctx context.Context, in EnrichmentInput) (*Enrichment, error)
}

// timestampLayout is RFC 3339 with millisecond precision, matching the
// wire format consumers already parse.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Builder assembles assistant states. A nil Enricher disables the
// enrichment step entirely; Now defaults to time.Now.
type Builder struct {
	Enricher Enricher
	Now      func() time.Time
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Build sanitizes the patch, computes metrics and stress, attempts
// enrichment, and fills every remaining slot with the fallback
// generators. Enrichment failures never fail the build.
func (b *Builder) Build(ctx context.Context, patch *ContextPatch) State {
	now := b.now()
	life := Sanitize(patch, now)
	metrics := ComputeMetrics(life)
	stress := AssessStress(life, metrics)

	var (
		recs         []Recommendation
		autos        []Automation
		notes        = []string{}
		projects     []Project
		tasks        *TaskPlan
		insights     *Insights
		integrations []Integration
		used         bool
	)

	if b.Enricher != nil {
		result, err := b.Enricher.Enrich(ctx, EnrichmentInput{
			Context: life,
			Metrics: metrics,
			Stress:  stress,
		})
		if err != nil {
			log.Printf("enrichment unavailable, using rule engines: %v", err)
		}
		if err == nil && result != nil {
			used = true
			recs = result.Recommendations
			autos = result.Automations
			projects = result.Projects
			tasks = result.Tasks
			insights = result.Insights
			integrations = result.Integrations
			if len(result.Notes) > 0 {
				notes = result.Notes
			}
		}
	}

	if len(recs) == 0 {
		recs = Recommendations(life, stress, metrics)
	}
	if len(autos) == 0 {
		autos = Automations(life, stress, metrics)
	}
	if len(projects) == 0 {
		projects = FallbackProjects(life)
	}
	if tasks == nil || (len(tasks.Today) == 0 && len(tasks.Tomorrow) == 0 && len(tasks.Upcoming) == 0) {
		fallback := FallbackTasks(life, recs, autos)
		tasks = &fallback
	}
	if insights == nil || (len(insights.FlowHistory) == 0 && len(insights.LoadTrend) == 0 && len(insights.Highlights) == 0) {
		fallback := FallbackInsights(metrics, stress)
		insights = &fallback
	}
	if len(integrations) == 0 {
		integrations = FallbackIntegrations()
	}

	schedule := BuildFocusSchedule(life, metrics, stress, now)
	timeline := BuildTimeline(life, autos)

	return State{
		Timestamp:       now.UTC().Format(timestampLayout),
		Context:         life,
		Stress:          stress,
		Metrics:         metrics.Public(),
		Recommendations: recs,
		Automations:     autos,
		FocusSchedule:   schedule,
		Timeline:        timeline,
		Plan: Plan{
			Schedule: PlanSchedule{
				Projects:   projects,
				Highlights: stress.Rationale,
			},
			Tasks:        *tasks,
			Insights:     *insights,
			Integrations: integrations,
		},
		LLM: LLMStatus{
			Enabled: b.Enricher != nil,
			Used:    used,
			Notes:   notes,
		},
	}
}
