// ABOUTME: Daily summary and weekly average persistence for SQLite storage.
// ABOUTME: Rebuild-from-scratch writes; reads sorted by date descending.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/namtonthat/healthsum/internal/models"
)

const dateLayout = "2006-01-02"

// ReplaceAll atomically replaces both derived tables with a fresh pipeline
// result. The pipeline recomputes from raw records, so there is no
// incremental mutation path: every write is a full rebuild.
func (d *DB) ReplaceAll(days []models.DailySummary, weekly []models.WeeklyAverage) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM daily_summaries"); err != nil {
		return fmt.Errorf("clear daily summaries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM weekly_averages"); err != nil {
		return fmt.Errorf("clear weekly averages: %w", err)
	}

	dayStmt, err := tx.Prepare(`
		INSERT INTO daily_summaries (
			date, carbs_g, protein_g, fat_g, fiber_g, calories,
			sleep_asleep_hours, sleep_in_bed_hours, sleep_deep_hours,
			sleep_efficiency_pct, bedtime, waketime,
			steps, weight_kg, exercise_minutes, mindful_minutes,
			active_day, mindful_day
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare daily insert: %w", err)
	}
	defer dayStmt.Close()

	for _, day := range days {
		_, err := dayStmt.Exec(
			day.Date.Format(dateLayout),
			nullable(day.CarbsG), nullable(day.ProteinG), nullable(day.FatG), nullable(day.FiberG),
			nullable(day.Calories),
			nullable(day.SleepAsleepHours), nullable(day.SleepInBedHours), nullable(day.SleepDeepHours),
			day.SleepEfficiencyPct, day.Bedtime, day.Waketime,
			nullable(day.Steps), nullable(day.WeightKg),
			nullable(day.ExerciseMinutes), nullable(day.MindfulMinutes),
			boolToInt(day.ActiveDay), boolToInt(day.MindfulDay),
		)
		if err != nil {
			return fmt.Errorf("insert summary %s: %w", day.Date.Format(dateLayout), err)
		}
	}

	weekStmt, err := tx.Prepare(`
		INSERT INTO weekly_averages (
			week_ending, carbs_g, protein_g, fat_g, fiber_g, calories, calories_sum,
			sleep_asleep_hours, sleep_in_bed_hours, sleep_deep_hours, sleep_efficiency_pct,
			steps, weight_kg, exercise_minutes, mindful_minutes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare weekly insert: %w", err)
	}
	defer weekStmt.Close()

	for _, w := range weekly {
		_, err := weekStmt.Exec(
			w.WeekEnding.Format(dateLayout),
			nullable(w.CarbsG), nullable(w.ProteinG), nullable(w.FatG), nullable(w.FiberG),
			nullable(w.Calories), nullable(w.CaloriesSum),
			nullable(w.SleepAsleepHours), nullable(w.SleepInBedHours), nullable(w.SleepDeepHours),
			nullable(w.SleepEfficiencyPct),
			nullable(w.Steps), nullable(w.WeightKg),
			nullable(w.ExerciseMinutes), nullable(w.MindfulMinutes),
		)
		if err != nil {
			return fmt.Errorf("insert weekly %s: %w", w.WeekEnding.Format(dateLayout), err)
		}
	}

	return tx.Commit()
}

// GetSummary retrieves the summary for one date.
func (d *DB) GetSummary(date time.Time) (*models.DailySummary, error) {
	row := d.db.QueryRow(selectDaily+" WHERE date = ?", models.DateOf(date).Format(dateLayout))
	day, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no summary for %s", date.Format(dateLayout))
	}
	return day, err
}

// ListSummaries returns summaries sorted by date descending.
func (d *DB) ListSummaries(limit int) ([]*models.DailySummary, error) {
	query := selectDaily + " ORDER BY date DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var out []*models.DailySummary
	for rows.Next() {
		day, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, rows.Err()
}

// ListWeeklyAverages returns weekly rows sorted by week ending descending.
func (d *DB) ListWeeklyAverages(limit int) ([]*models.WeeklyAverage, error) {
	query := `
		SELECT week_ending, carbs_g, protein_g, fat_g, fiber_g, calories, calories_sum,
		       sleep_asleep_hours, sleep_in_bed_hours, sleep_deep_hours, sleep_efficiency_pct,
		       steps, weight_kg, exercise_minutes, mindful_minutes
		FROM weekly_averages ORDER BY week_ending DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weekly averages: %w", err)
	}
	defer rows.Close()

	var out []*models.WeeklyAverage
	for rows.Next() {
		var w models.WeeklyAverage
		var weekEnding string
		var carbs, protein, fat, fiber, calories, caloriesSum sql.NullFloat64
		var asleep, inBed, deep, eff, steps, weight, exercise, mindful sql.NullFloat64

		err := rows.Scan(&weekEnding, &carbs, &protein, &fat, &fiber, &calories, &caloriesSum,
			&asleep, &inBed, &deep, &eff, &steps, &weight, &exercise, &mindful)
		if err != nil {
			return nil, fmt.Errorf("scan weekly average: %w", err)
		}

		w.WeekEnding, err = time.Parse(dateLayout, weekEnding)
		if err != nil {
			return nil, fmt.Errorf("parse week ending: %w", err)
		}
		w.CarbsG = fromNull(carbs)
		w.ProteinG = fromNull(protein)
		w.FatG = fromNull(fat)
		w.FiberG = fromNull(fiber)
		w.Calories = fromNull(calories)
		w.CaloriesSum = fromNull(caloriesSum)
		w.SleepAsleepHours = fromNull(asleep)
		w.SleepInBedHours = fromNull(inBed)
		w.SleepDeepHours = fromNull(deep)
		w.SleepEfficiencyPct = fromNull(eff)
		w.Steps = fromNull(steps)
		w.WeightKg = fromNull(weight)
		w.ExerciseMinutes = fromNull(exercise)
		w.MindfulMinutes = fromNull(mindful)

		out = append(out, &w)
	}
	return out, rows.Err()
}

const selectDaily = `
	SELECT date, carbs_g, protein_g, fat_g, fiber_g, calories,
	       sleep_asleep_hours, sleep_in_bed_hours, sleep_deep_hours,
	       sleep_efficiency_pct, bedtime, waketime,
	       steps, weight_kg, exercise_minutes, mindful_minutes,
	       active_day, mindful_day
	FROM daily_summaries
`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSummary(row scanner) (*models.DailySummary, error) {
	var day models.DailySummary
	var date string
	var carbs, protein, fat, fiber, calories sql.NullFloat64
	var asleep, inBed, deep, steps, weight, exercise, mindful sql.NullFloat64
	var activeDay, mindfulDay int

	err := row.Scan(&date, &carbs, &protein, &fat, &fiber, &calories,
		&asleep, &inBed, &deep,
		&day.SleepEfficiencyPct, &day.Bedtime, &day.Waketime,
		&steps, &weight, &exercise, &mindful,
		&activeDay, &mindfulDay)
	if err != nil {
		return nil, err
	}

	day.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse summary date: %w", err)
	}
	day.CarbsG = fromNull(carbs)
	day.ProteinG = fromNull(protein)
	day.FatG = fromNull(fat)
	day.FiberG = fromNull(fiber)
	day.Calories = fromNull(calories)
	day.SleepAsleepHours = fromNull(asleep)
	day.SleepInBedHours = fromNull(inBed)
	day.SleepDeepHours = fromNull(deep)
	day.Steps = fromNull(steps)
	day.WeightKg = fromNull(weight)
	day.ExerciseMinutes = fromNull(exercise)
	day.MindfulMinutes = fromNull(mindful)
	day.ActiveDay = activeDay != 0
	day.MindfulDay = mindfulDay != 0

	return &day, nil
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func fromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
