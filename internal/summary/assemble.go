// ABOUTME: Daily summary assembler: joins base and sleep records per date.
// ABOUTME: General export anchors the join; wearable sleep overrides per field.
package summary

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/namtonthat/healthsum/internal/derive"
	"github.com/namtonthat/healthsum/internal/models"
)

// sleepOverrideMetrics are the only fields a wearable-specific sleep export
// may win. Everything else (food, activity, weight) always comes from the
// general health export.
var sleepOverrideMetrics = map[string]bool{
	models.MetricSleepAsleep: true,
	models.MetricSleepInBed:  true,
	models.MetricSleepDeep:   true,
	models.MetricBedtime:     true,
	models.MetricWaketime:    true,
}

type recordIndex map[time.Time]map[string]*models.MetricRecord

func indexRecords(records []*models.MetricRecord) recordIndex {
	idx := make(recordIndex)
	for _, r := range records {
		byName, ok := idx[r.Date]
		if !ok {
			byName = make(map[string]*models.MetricRecord)
			idx[r.Date] = byName
		}
		byName[r.Name] = r
	}
	return idx
}

// Assemble merges deduplicated general-export and wearable-sleep records
// into one DailySummary per date.
//
// The general export is the anchor: a date present only in the sleep source
// is dropped entirely. For each sleep field, the wearable value wins when
// present and concrete; the general-export value is the fallback. All
// derived fields are computed against the post-override base values.
func Assemble(health, sleep []*models.MetricRecord, log *zap.Logger) []models.DailySummary {
	healthIdx := indexRecords(health)
	sleepIdx := indexRecords(sleep)

	for date := range sleepIdx {
		if _, ok := healthIdx[date]; !ok {
			log.Debug("dropping sleep-only date with no general-export anchor",
				zap.Time("date", date))
		}
	}

	dates := make([]time.Time, 0, len(healthIdx))
	for date := range healthIdx {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]models.DailySummary, 0, len(dates))
	for _, date := range dates {
		base := healthIdx[date]
		wearable := sleepIdx[date]

		day := models.DailySummary{Date: date}
		day.CarbsG = numeric(base, models.MetricCarbs)
		day.ProteinG = numeric(base, models.MetricProtein)
		day.FatG = numeric(base, models.MetricFat)
		day.FiberG = numeric(base, models.MetricFiber)
		day.Steps = numeric(base, models.MetricSteps)
		day.WeightKg = numeric(base, models.MetricWeight)
		day.ExerciseMinutes = numeric(base, models.MetricExerciseMins)
		day.MindfulMinutes = numeric(base, models.MetricMindfulMins)

		day.SleepAsleepHours = resolveNumeric(base, wearable, models.MetricSleepAsleep)
		day.SleepInBedHours = resolveNumeric(base, wearable, models.MetricSleepInBed)
		day.SleepDeepHours = resolveNumeric(base, wearable, models.MetricSleepDeep)
		day.Bedtime = resolveText(base, wearable, models.MetricBedtime)
		day.Waketime = resolveText(base, wearable, models.MetricWaketime)

		day.Calories = derive.Calories(day.CarbsG, day.FatG, day.ProteinG)
		day.SleepEfficiencyPct = derive.SleepEfficiencyPct(day.SleepAsleepHours, day.SleepInBedHours)
		day.ActiveDay = derive.ActiveDay(day.ExerciseMinutes)
		day.MindfulDay = derive.MindfulDay(day.MindfulMinutes)

		out = append(out, day)
	}
	return out
}

func numeric(byName map[string]*models.MetricRecord, name string) *float64 {
	r, ok := byName[name]
	if !ok || r.Value == nil {
		return nil
	}
	v := *r.Value
	return &v
}

func text(byName map[string]*models.MetricRecord, name string) string {
	r, ok := byName[name]
	if !ok {
		return ""
	}
	return r.Text
}

// resolveNumeric applies the per-field precedence: wearable wins when it has
// a concrete value for the date, general export otherwise.
func resolveNumeric(base, wearable map[string]*models.MetricRecord, name string) *float64 {
	if !sleepOverrideMetrics[name] {
		return numeric(base, name)
	}
	if v := numeric(wearable, name); v != nil {
		return v
	}
	return numeric(base, name)
}

func resolveText(base, wearable map[string]*models.MetricRecord, name string) string {
	if s := text(wearable, name); s != "" {
		return s
	}
	return text(base, name)
}
