package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the check-in journal tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS checkins (
			id                     INTEGER PRIMARY KEY AUTOINCREMENT,
			logged_at              TEXT NOT NULL,
			heart_rate             REAL NOT NULL,
			hrv                    REAL NOT NULL,
			calendar_load          REAL NOT NULL,
			unread_emails          INTEGER NOT NULL,
			sleep_quality          REAL NOT NULL,
			steps_today            INTEGER NOT NULL,
			last_break_minutes_ago INTEGER NOT NULL,
			sentiment_score        REAL NOT NULL,
			hydration              REAL NOT NULL,
			last_night_sleep_hours REAL NOT NULL,
			stress_score           REAL NOT NULL,
			stress_level           TEXT NOT NULL,
			note                   TEXT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_checkins_logged_at ON checkins(logged_at)`,
		`CREATE INDEX IF NOT EXISTS idx_checkins_level ON checkins(stress_level)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
