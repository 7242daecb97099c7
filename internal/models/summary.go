// ABOUTME: DailySummary and WeeklyAverage models, the canonical pipeline output.
// ABOUTME: One DailySummary per calendar date; weekly rows anchored on Sundays.
package models

import "time"

// DailySummary is the canonical one-row-per-date output of the pipeline.
// Nil pointer fields mean the metric was absent for that date. Derived
// fields (Calories, SleepEfficiencyPct, ActiveDay, MindfulDay) are
// recomputed on every run from the resolved base metrics and are never
// persisted independently of their inputs.
type DailySummary struct {
	Date time.Time

	// Nutrition
	CarbsG   *float64
	ProteinG *float64
	FatG     *float64
	FiberG   *float64
	Calories *float64

	// Sleep
	SleepAsleepHours *float64
	SleepInBedHours  *float64
	SleepDeepHours   *float64
	// SleepEfficiencyPct is 0 when in-bed hours are zero or missing. The
	// zero value deliberately conflates "no data" with a computed 0%;
	// display code shows "No sleep data." when asleep hours are also nil.
	SleepEfficiencyPct int
	Bedtime            string
	Waketime           string

	// Activity and body
	Steps           *float64
	WeightKg        *float64
	ExerciseMinutes *float64
	MindfulMinutes  *float64
	ActiveDay       bool
	MindfulDay      bool
}

// WeeklyAverage is one weekly-summary row, anchored on a Sunday and computed
// over the trailing 7 daily rows (that Sunday included). Rows are emitted
// only for Sundays with a full 7-row trailing window. Each average skips
// nil inputs; a field is nil when no day in the window had a value.
type WeeklyAverage struct {
	WeekEnding time.Time // always a Sunday

	CarbsG             *float64
	ProteinG           *float64
	FatG               *float64
	FiberG             *float64
	Calories           *float64
	CaloriesSum        *float64 // trailing 7-row total, not a mean
	SleepAsleepHours   *float64
	SleepInBedHours    *float64
	SleepDeepHours     *float64
	SleepEfficiencyPct *float64
	Steps              *float64
	WeightKg           *float64
	ExerciseMinutes    *float64
	MindfulMinutes     *float64
}
