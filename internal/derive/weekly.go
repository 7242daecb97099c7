// ABOUTME: Weekly trailing averages over daily summaries, anchored on Sundays.
// ABOUTME: Emits one row per Sunday that has a full 7-row trailing window.
package derive

import (
	"sort"
	"time"

	"github.com/namtonthat/healthsum/internal/models"
)

// windowSize is the number of trailing daily rows a weekly row averages
// over: the anchoring Sunday plus the 6 rows before it.
const windowSize = 7

// WeeklyAverages computes the trailing 7-row mean of every numeric field,
// one output row per Sunday. Sundays with fewer than 7 trailing rows are
// excluded entirely; a leading partial week never appears. Calories also
// get a trailing 7-row sum (the weekly calorie budget figure).
//
// Nil inputs are skipped per field: a mean covers only the days that had a
// value, and stays nil when none did.
func WeeklyAverages(days []models.DailySummary) []models.WeeklyAverage {
	sorted := make([]models.DailySummary, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var out []models.WeeklyAverage
	for i := windowSize - 1; i < len(sorted); i++ {
		if sorted[i].Date.Weekday() != time.Sunday {
			continue
		}
		window := sorted[i-windowSize+1 : i+1]

		w := models.WeeklyAverage{WeekEnding: sorted[i].Date}
		w.CarbsG = meanOf(window, func(d *models.DailySummary) *float64 { return d.CarbsG })
		w.ProteinG = meanOf(window, func(d *models.DailySummary) *float64 { return d.ProteinG })
		w.FatG = meanOf(window, func(d *models.DailySummary) *float64 { return d.FatG })
		w.FiberG = meanOf(window, func(d *models.DailySummary) *float64 { return d.FiberG })
		w.Calories = meanOf(window, func(d *models.DailySummary) *float64 { return d.Calories })
		w.CaloriesSum = sumOf(window, func(d *models.DailySummary) *float64 { return d.Calories })
		w.SleepAsleepHours = meanOf(window, func(d *models.DailySummary) *float64 { return d.SleepAsleepHours })
		w.SleepInBedHours = meanOf(window, func(d *models.DailySummary) *float64 { return d.SleepInBedHours })
		w.SleepDeepHours = meanOf(window, func(d *models.DailySummary) *float64 { return d.SleepDeepHours })
		w.SleepEfficiencyPct = meanOf(window, func(d *models.DailySummary) *float64 {
			eff := float64(d.SleepEfficiencyPct)
			return &eff
		})
		w.Steps = meanOf(window, func(d *models.DailySummary) *float64 { return d.Steps })
		w.WeightKg = meanOf(window, func(d *models.DailySummary) *float64 { return d.WeightKg })
		w.ExerciseMinutes = meanOf(window, func(d *models.DailySummary) *float64 { return d.ExerciseMinutes })
		w.MindfulMinutes = meanOf(window, func(d *models.DailySummary) *float64 { return d.MindfulMinutes })

		out = append(out, w)
	}
	return out
}

func meanOf(window []models.DailySummary, get func(*models.DailySummary) *float64) *float64 {
	sum, n := 0.0, 0
	for i := range window {
		if v := get(&window[i]); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

func sumOf(window []models.DailySummary, get func(*models.DailySummary) *float64) *float64 {
	sum, n := 0.0, 0
	for i := range window {
		if v := get(&window[i]); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return &sum
}
