// ABOUTME: Per-day derived metrics: calories from macros, sleep efficiency,
// ABOUTME: and activity/mindfulness threshold booleans. All pure functions.
package derive

// Calories computes calories from macro grams:
//
//	calories = carbs*4 + fat*9 + protein*4
//
// If any macro is missing the result is nil, never zero and never a partial
// sum.
func Calories(carbsG, fatG, proteinG *float64) *float64 {
	if carbsG == nil || fatG == nil || proteinG == nil {
		return nil
	}
	cal := *carbsG*4 + *fatG*9 + *proteinG*4
	return &cal
}

// SleepEfficiencyPct computes asleep/in-bed as a truncated integer
// percentage. Zero or missing in-bed hours yield an explicit 0, not nil:
// downstream display relies on efficiency 0 plus absent asleep hours to
// mean "no sleep data".
func SleepEfficiencyPct(asleepHours, inBedHours *float64) int {
	if asleepHours == nil || inBedHours == nil || *inBedHours == 0 {
		return 0
	}
	return int(*asleepHours / *inBedHours * 100)
}

// Thresholds for the daily completion buckets. Earlier revisions rounded
// minutes into 1-hour / 7-minute blocks; the boolean thresholds superseded
// that so charting keeps the raw continuous minutes.
const (
	activeDayMinutes  = 30
	mindfulDayMinutes = 5
)

// ActiveDay reports whether the day counts as active: more than 30 minutes
// of exercise.
func ActiveDay(exerciseMins *float64) bool {
	return exerciseMins != nil && *exerciseMins > activeDayMinutes
}

// MindfulDay reports whether the day had mindful practice: more than 5
// mindful minutes.
func MindfulDay(mindfulMins *float64) bool {
	return mindfulMins != nil && *mindfulMins > mindfulDayMinutes
}
