package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harmonia-app/harmonia/internal/assistant"
	"github.com/harmonia-app/harmonia/internal/config"
	"github.com/harmonia-app/harmonia/internal/output"
	"github.com/harmonia-app/harmonia/internal/store"
)

var (
	logNote  string
	logList  bool
	logDays  int
	logLimit int
)

var logCmd = &cobra.Command{
	Use:   "log [signal=value ...]",
	Short: "Record a check-in and review the journal",
	Long: `Log a check-in to the harmonia database. Signals use the same names
and units as the HTTP API; anything not supplied keeps its default. The
stress assessment computed at log time is stored with the check-in.

Examples:
  harmonia log heartRate=94 calendarLoad=0.85
  harmonia log sleepQuality=0.4 lastNightSleepHours=5 --note "rough night"
  harmonia log --list
  harmonia log --list --days 7 --limit 20`,
	Args: cobra.ArbitraryArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logNote, "note", "", "Optional note")
	logCmd.Flags().BoolVar(&logList, "list", false, "List logged check-ins")
	logCmd.Flags().IntVar(&logDays, "days", 0, "Filter --list to last N days")
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Cap --list to N rows")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if logList {
		return runLogList(db)
	}

	patch, err := patchFromArgs(args)
	if err != nil {
		return err
	}

	now := time.Now()
	life := assistant.Sanitize(patch, now)
	metrics := assistant.ComputeMetrics(life)
	stress := assistant.AssessStress(life, metrics)

	checkin := &store.CheckinRow{
		LoggedAt:            now.UTC().Format(time.RFC3339),
		HeartRate:           life.HeartRate,
		HRV:                 life.HRV,
		CalendarLoad:        life.CalendarLoad,
		UnreadEmails:        life.UnreadEmails,
		SleepQuality:        life.SleepQuality,
		StepsToday:          life.StepsToday,
		LastBreakMinutesAgo: life.LastBreakMinutesAgo,
		SentimentScore:      life.SentimentScore,
		Hydration:           life.Hydration,
		LastNightSleepHours: life.LastNightSleepHours,
		StressScore:         stress.Score,
		StressLevel:         stress.Level,
		Note:                logNote,
	}

	id, err := db.InsertCheckin(checkin)
	if err != nil {
		return fmt.Errorf("inserting check-in: %w", err)
	}

	if flagJSON {
		checkin.ID = id
		return printJSON(checkin)
	}

	level := output.LevelStyle(stress.Level)
	fmt.Printf("Logged check-in #%d: %s (score %.2f)\n", id, level(stress.Level), stress.Score)
	if len(stress.Rationale) > 0 {
		for _, r := range stress.Rationale {
			fmt.Printf("  • %s\n", r)
		}
	}
	return nil
}

// runLogList queries and displays the check-in journal, newest first.
func runLogList(db *store.DB) error {
	rows, err := db.ListCheckins(logDays, logLimit)
	if err != nil {
		return fmt.Errorf("querying check-ins: %w", err)
	}

	if flagJSON {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No check-ins logged yet. Use 'harmonia log <signal=value ...>' to start.")
		return nil
	}

	fmt.Println(output.Section("Check-in Journal"))
	fmt.Println()

	tbl := output.NewTable("Time", "Level", "Score", "Trend", "HR", "Sleep", "Note")
	for i, r := range rows {
		timeStr := r.LoggedAt
		if t, err := time.Parse(time.RFC3339, r.LoggedAt); err == nil {
			timeStr = t.Local().Format("2006-01-02 15:04")
		}

		// Rows are newest first; the trend compares against the next
		// (older) row.
		trend := output.StyleMuted.Render("─")
		if i+1 < len(rows) {
			trend = output.TrendArrow(r.StressScore-rows[i+1].StressScore, false)
		}

		level := output.LevelStyle(r.StressLevel)
		tbl.AddRow(
			timeStr,
			level(r.StressLevel),
			fmt.Sprintf("%.2f", r.StressScore),
			trend,
			fmt.Sprintf("%.0f", r.HeartRate),
			fmt.Sprintf("%.1fh", r.LastNightSleepHours),
			r.Note,
		)
	}
	tbl.Print()

	return nil
}
