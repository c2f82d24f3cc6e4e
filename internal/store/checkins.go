package store

import (
	"database/sql"
	"time"
)

const checkinColumns = `id, logged_at, heart_rate, hrv, calendar_load, unread_emails,
	sleep_quality, steps_today, last_break_minutes_ago, sentiment_score,
	hydration, last_night_sleep_hours, stress_score, stress_level, note`

// InsertCheckin inserts a check-in and returns its ID. LoggedAt is
// filled with the current time when empty.
func (db *DB) InsertCheckin(c *CheckinRow) (int64, error) {
	loggedAt := c.LoggedAt
	if loggedAt == "" {
		loggedAt = time.Now().UTC().Format(time.RFC3339)
	}
	result, err := db.conn.Exec(
		`INSERT INTO checkins
		(logged_at, heart_rate, hrv, calendar_load, unread_emails, sleep_quality,
		 steps_today, last_break_minutes_ago, sentiment_score, hydration,
		 last_night_sleep_hours, stress_score, stress_level, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loggedAt, c.HeartRate, c.HRV, c.CalendarLoad, c.UnreadEmails, c.SleepQuality,
		c.StepsToday, c.LastBreakMinutesAgo, c.SentimentScore, c.Hydration,
		c.LastNightSleepHours, c.StressScore, c.StressLevel, c.Note,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// LatestCheckin returns the most recent check-in, or nil if none exist.
func (db *DB) LatestCheckin() (*CheckinRow, error) {
	row := db.conn.QueryRow(
		"SELECT " + checkinColumns + " FROM checkins ORDER BY id DESC LIMIT 1",
	)
	return scanCheckin(row)
}

// ListCheckins returns check-ins newest first, optionally limited to
// the last N days. A limit of 0 means no row cap.
func (db *DB) ListCheckins(days, limit int) ([]CheckinRow, error) {
	query := "SELECT " + checkinColumns + " FROM checkins"
	var args []any

	if days > 0 {
		cutoff := time.Now().AddDate(0, 0, -days).UTC().Format(time.RFC3339)
		query += " WHERE logged_at >= ?"
		args = append(args, cutoff)
	}
	query += " ORDER BY logged_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []CheckinRow
	for rows.Next() {
		var c CheckinRow
		var note sql.NullString
		if err := rows.Scan(
			&c.ID, &c.LoggedAt, &c.HeartRate, &c.HRV, &c.CalendarLoad, &c.UnreadEmails,
			&c.SleepQuality, &c.StepsToday, &c.LastBreakMinutesAgo, &c.SentimentScore,
			&c.Hydration, &c.LastNightSleepHours, &c.StressScore, &c.StressLevel, &note,
		); err != nil {
			return nil, err
		}
		c.Note = note.String
		results = append(results, c)
	}
	return results, rows.Err()
}

func scanCheckin(row *sql.Row) (*CheckinRow, error) {
	var c CheckinRow
	var note sql.NullString
	err := row.Scan(
		&c.ID, &c.LoggedAt, &c.HeartRate, &c.HRV, &c.CalendarLoad, &c.UnreadEmails,
		&c.SleepQuality, &c.StepsToday, &c.LastBreakMinutesAgo, &c.SentimentScore,
		&c.Hydration, &c.LastNightSleepHours, &c.StressScore, &c.StressLevel, &note,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Note = note.String
	return &c, nil
}
