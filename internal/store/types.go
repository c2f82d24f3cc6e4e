// Package store provides SQLite persistence for user-logged check-ins:
// the raw signals a user reports from the CLI, together with the
// stress assessment computed at log time.
package store

// CheckinRow is one logged check-in.
type CheckinRow struct {
	ID                  int64   `json:"id"`
	LoggedAt            string  `json:"logged_at"`
	HeartRate           float64 `json:"heart_rate"`
	HRV                 float64 `json:"hrv"`
	CalendarLoad        float64 `json:"calendar_load"`
	UnreadEmails        int     `json:"unread_emails"`
	SleepQuality        float64 `json:"sleep_quality"`
	StepsToday          int     `json:"steps_today"`
	LastBreakMinutesAgo int     `json:"last_break_minutes_ago"`
	SentimentScore      float64 `json:"sentiment_score"`
	Hydration           float64 `json:"hydration"`
	LastNightSleepHours float64 `json:"last_night_sleep_hours"`
	StressScore         float64 `json:"stress_score"`
	StressLevel         string  `json:"stress_level"`
	Note                string  `json:"note,omitempty"`
}
