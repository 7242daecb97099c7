// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines daily_summaries and weekly_averages tables.
package storage

// initSchema creates or updates the database schema. Both tables hold
// derived data and are rebuilt from raw records on every pipeline run.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_summaries (
		date TEXT PRIMARY KEY,
		carbs_g REAL,
		protein_g REAL,
		fat_g REAL,
		fiber_g REAL,
		calories REAL,
		sleep_asleep_hours REAL,
		sleep_in_bed_hours REAL,
		sleep_deep_hours REAL,
		sleep_efficiency_pct INTEGER NOT NULL DEFAULT 0,
		bedtime TEXT NOT NULL DEFAULT '',
		waketime TEXT NOT NULL DEFAULT '',
		steps REAL,
		weight_kg REAL,
		exercise_minutes REAL,
		mindful_minutes REAL,
		active_day INTEGER NOT NULL DEFAULT 0,
		mindful_day INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS weekly_averages (
		week_ending TEXT PRIMARY KEY,
		carbs_g REAL,
		protein_g REAL,
		fat_g REAL,
		fiber_g REAL,
		calories REAL,
		calories_sum REAL,
		sleep_asleep_hours REAL,
		sleep_in_bed_hours REAL,
		sleep_deep_hours REAL,
		sleep_efficiency_pct REAL,
		steps REAL,
		weight_kg REAL,
		exercise_minutes REAL,
		mindful_minutes REAL
	);

	CREATE INDEX IF NOT EXISTS idx_daily_date ON daily_summaries(date DESC);
	CREATE INDEX IF NOT EXISTS idx_weekly_ending ON weekly_averages(week_ending DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
