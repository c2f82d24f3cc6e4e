// Package assistant implements the heuristic pipeline that turns a
// partial "life context" (biometrics, calendar, inbox, sleep) into a
// full assistant state: normalized metrics, a stress assessment,
// recommendations, automations, a focus schedule, and a plan surface.
package assistant

import (
	"encoding/json"
	"strconv"
	"time"
)

// Millis is a moment in time carried as Unix milliseconds on the wire.
// Callers may send either a numeric epoch-millisecond value or an
// RFC 3339 string; both decode to the same representation.
type Millis int64

// Time converts the millisecond timestamp to a time.Time in the local zone.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(m), 10)), nil
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		*m = Millis(t.UnixMilli())
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Millis(int64(n))
	return nil
}

// Meeting is a calendar entry in the day being analyzed.
type Meeting struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           Millis `json:"start"`
	DurationMinutes int    `json:"durationMinutes"`
	Category        string `json:"category,omitempty"`
	Priority        string `json:"priority,omitempty"`
	Location        string `json:"location,omitempty"`
}

// FocusBlock is a planned deep-work window.
type FocusBlock struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           Millis `json:"start"`
	DurationMinutes int    `json:"durationMinutes"`
	Mode            string `json:"mode,omitempty"`
}

// Notifications summarizes the pending notification queue.
type Notifications struct {
	Pending int `json:"pending"`
	Urgent  int `json:"urgent"`
}

// LifeContext is the fully sanitized pipeline input. Every numeric
// field is present and clamped to its domain; missing or invalid
// caller input has already fallen back to the defaults.
type LifeContext struct {
	DisplayName         string        `json:"displayName"`
	HeartRate           float64       `json:"heartRate"`
	HRV                 float64       `json:"hrv"`
	CalendarLoad        float64       `json:"calendarLoad"`
	UnreadEmails        int           `json:"unreadEmails"`
	SleepQuality        float64       `json:"sleepQuality"`
	StepsToday          int           `json:"stepsToday"`
	LastBreakMinutesAgo int           `json:"lastBreakMinutesAgo"`
	SentimentScore      float64       `json:"sentimentScore"`
	FocusEnergy         float64       `json:"focusEnergy"`
	Hydration           float64       `json:"hydration"`
	Meetings            []Meeting     `json:"meetings"`
	FocusBlocks         []FocusBlock  `json:"focusBlocks"`
	Notifications       Notifications `json:"notifications"`
	LastNightSleepHours float64       `json:"lastNightSleepHours"`
}

// ContextPatch is the caller-supplied partial context. Nil fields keep
// their defaults. Meetings and FocusBlocks stay raw so a malformed
// sequence falls back to the default sequence instead of rejecting the
// whole payload.
type ContextPatch struct {
	DisplayName         *string             `json:"displayName"`
	HeartRate           *float64            `json:"heartRate"`
	HRV                 *float64            `json:"hrv"`
	CalendarLoad        *float64            `json:"calendarLoad"`
	UnreadEmails        *int                `json:"unreadEmails"`
	SleepQuality        *float64            `json:"sleepQuality"`
	StepsToday          *int                `json:"stepsToday"`
	LastBreakMinutesAgo *int                `json:"lastBreakMinutesAgo"`
	SentimentScore      *float64            `json:"sentimentScore"`
	FocusEnergy         *float64            `json:"focusEnergy"`
	Hydration           *float64            `json:"hydration"`
	LastNightSleepHours *float64            `json:"lastNightSleepHours"`
	Meetings            json.RawMessage     `json:"meetings"`
	FocusBlocks         json.RawMessage     `json:"focusBlocks"`
	Notifications       *NotificationsPatch `json:"notifications"`
}

// NotificationsPatch is the partial form of Notifications.
type NotificationsPatch struct {
	Pending *int `json:"pending"`
	Urgent  *int `json:"urgent"`
}

// UnmarshalJSON decodes each patch field individually: a field that is
// absent, null, or the wrong type stays nil so sanitization falls back
// to its default. Only syntactically invalid JSON is an error.
func (p *ContextPatch) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		if json.Valid(data) {
			// A valid non-object payload carries no fields.
			return nil
		}
		return err
	}

	decodeField(fields["displayName"], &p.DisplayName)
	decodeField(fields["heartRate"], &p.HeartRate)
	decodeField(fields["hrv"], &p.HRV)
	decodeField(fields["calendarLoad"], &p.CalendarLoad)
	decodeField(fields["unreadEmails"], &p.UnreadEmails)
	decodeField(fields["sleepQuality"], &p.SleepQuality)
	decodeField(fields["stepsToday"], &p.StepsToday)
	decodeField(fields["lastBreakMinutesAgo"], &p.LastBreakMinutesAgo)
	decodeField(fields["sentimentScore"], &p.SentimentScore)
	decodeField(fields["focusEnergy"], &p.FocusEnergy)
	decodeField(fields["hydration"], &p.Hydration)
	decodeField(fields["lastNightSleepHours"], &p.LastNightSleepHours)
	decodeField(fields["notifications"], &p.Notifications)
	p.Meetings = fields["meetings"]
	p.FocusBlocks = fields["focusBlocks"]
	return nil
}

// UnmarshalJSON applies the same per-field tolerance to the nested
// notification counts.
func (n *NotificationsPatch) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		if json.Valid(data) {
			return nil
		}
		return err
	}
	decodeField(fields["pending"], &n.Pending)
	decodeField(fields["urgent"], &n.Urgent)
	return nil
}

// decodeField decodes raw into a fresh T, leaving the target nil when
// the field is absent, null, or fails to decode.
func decodeField[T any](raw json.RawMessage, target **T) {
	if len(raw) == 0 || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*target = &v
}

// Metrics holds every normalized signal derived from a context. Only
// the Public subset is exposed on the wire; the rest feeds the stress
// assessment and the rule engines.
type Metrics struct {
	HeartRateNorm  float64
	HRVNorm        float64
	UnreadNorm     float64
	SentimentNorm  float64
	LastBreakNorm  float64
	MovementNorm   float64
	SleepDebt      float64
	HydrationDebt  float64
	CalendarLoad   float64
	CognitiveLoad  float64
	Fatigue        float64
	FocusReadiness float64
	BufferTime     float64
}

// PublicMetrics is the subset of Metrics included in responses.
type PublicMetrics struct {
	CognitiveLoad  float64 `json:"cognitiveLoad"`
	Fatigue        float64 `json:"fatigue"`
	FocusReadiness float64 `json:"focusReadiness"`
	BufferTime     float64 `json:"bufferTime"`
}

// Public returns the wire-visible subset of the metrics.
func (m Metrics) Public() PublicMetrics {
	return PublicMetrics{
		CognitiveLoad:  m.CognitiveLoad,
		Fatigue:        m.Fatigue,
		FocusReadiness: m.FocusReadiness,
		BufferTime:     m.BufferTime,
	}
}

// Stress level values, lowest to highest.
const (
	LevelSteady   = "steady"
	LevelElevated = "elevated"
	LevelCritical = "critical"
)

// Stress is the classified stress assessment for a context.
type Stress struct {
	Score     float64       `json:"score"`
	Level     string        `json:"level"`
	Label     string        `json:"label"`
	Headline  string        `json:"headline"`
	Rationale []string      `json:"rationale"`
	Signals   StressSignals `json:"signals"`
}

// StressSignals echoes the raw inputs that drove the assessment.
type StressSignals struct {
	HeartRate            float64 `json:"heartRate"`
	HeartRateVariability float64 `json:"heartRateVariability"`
	UnreadEmails         int     `json:"unreadEmails"`
	CalendarLoad         float64 `json:"calendarLoad"`
	LastBreakMinutesAgo  int     `json:"lastBreakMinutesAgo"`
	SleepQuality         float64 `json:"sleepQuality"`
}

// Recommendation is a suggested intervention.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact,omitempty"`
	Category    string `json:"category,omitempty"`
	Timeframe   string `json:"timeframe,omitempty"`
}

// Automation is an action the assistant has taken or queued on the
// user's behalf.
type Automation struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
}

// FocusWindow is a focus block enriched with its computed end and the
// current focus readiness.
type FocusWindow struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Start           Millis  `json:"start"`
	End             Millis  `json:"end"`
	DurationMinutes int     `json:"durationMinutes"`
	Mode            string  `json:"mode,omitempty"`
	Readiness       float64 `json:"readiness"`
}

// RecoveryBlock is the next suggested recovery window.
type RecoveryBlock struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           Millis `json:"start"`
	DurationMinutes int    `json:"durationMinutes"`
	Focus           string `json:"focus"`
}

// SuppressedNotifications describes the active notification hold.
type SuppressedNotifications struct {
	Until Millis `json:"until"`
	Count int    `json:"count"`
}

// FocusSchedule groups the computed focus and recovery windows.
type FocusSchedule struct {
	NextFocusBlock          *FocusWindow            `json:"nextFocusBlock"`
	NextRecoveryBlock       RecoveryBlock           `json:"nextRecoveryBlock"`
	SuppressedNotifications SuppressedNotifications `json:"suppressedNotifications"`
}

// TimelineItem is one entry in the merged day timeline.
type TimelineItem struct {
	ID        string `json:"id"`
	TimeLabel string `json:"timeLabel"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Detail    string `json:"detail"`
}

// Project is a schedule entry on the plan surface. Field names follow
// the dashboard's calendar contract.
type Project struct {
	ID           int    `json:"_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ResearchArea string `json:"research_area"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Institution  string `json:"institution,omitempty"`
	Status       string `json:"status,omitempty"`
	Role         string `json:"role,omitempty"`
	Priority     string `json:"priority,omitempty"`
}

// TaskItem is one actionable item in a task bucket.
type TaskItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Detail     string `json:"detail,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Action     string `json:"action,omitempty"`
	Type       string `json:"type,omitempty"`
	Urgency    string `json:"urgency,omitempty"`
}

// TaskPlan buckets tasks by horizon.
type TaskPlan struct {
	Today    []TaskItem `json:"today"`
	Tomorrow []TaskItem `json:"tomorrow"`
	Upcoming []TaskItem `json:"upcoming"`
}

// FlowPoint is one sample on the focus-flow chart.
type FlowPoint struct {
	Time  string  `json:"time"`
	Focus float64 `json:"focus"`
}

// LoadPoint is one sample on the weekly load chart.
type LoadPoint struct {
	Day  string  `json:"day"`
	Load float64 `json:"load"`
}

// Insights carries the trend data and highlights for the dashboard.
type Insights struct {
	FlowHistory []FlowPoint `json:"flowHistory"`
	LoadTrend   []LoadPoint `json:"loadTrend"`
	Highlights  []string    `json:"highlights"`
}

// Integration describes one connected (or connectable) service.
type Integration struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Connected   bool   `json:"connected"`
	Premium     bool   `json:"premium"`
	Category    string `json:"category,omitempty"`
}

// PlanSchedule is the schedule slice of the plan surface.
type PlanSchedule struct {
	Projects   []Project `json:"projects"`
	Highlights []string  `json:"highlights,omitempty"`
}

// Plan is the extended planning surface rendered by the dashboard.
type Plan struct {
	Schedule     PlanSchedule  `json:"schedule"`
	Tasks        TaskPlan      `json:"tasks"`
	Insights     Insights      `json:"insights"`
	Integrations []Integration `json:"integrations"`
}

// LLMStatus reports whether enrichment was available and used.
type LLMStatus struct {
	Enabled bool     `json:"enabled"`
	Used    bool     `json:"used"`
	Notes   []string `json:"notes"`
}

// State is the full assistant response for one request.
type State struct {
	Timestamp       string           `json:"timestamp"`
	Context         LifeContext      `json:"context"`
	Stress          Stress           `json:"stress"`
	Metrics         PublicMetrics    `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
	Automations     []Automation     `json:"automations"`
	FocusSchedule   FocusSchedule    `json:"focusSchedule"`
	Timeline        []TimelineItem   `json:"timeline"`
	Plan            Plan             `json:"plan"`
	LLM             LLMStatus        `json:"llm"`
}
