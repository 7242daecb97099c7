// ABOUTME: Strength derivations: Epley estimated 1RM, DOTS score, and the
// ABOUTME: running-best 1RM total across squat, bench, and deadlift.
package derive

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/namtonthat/healthsum/internal/models"
)

// EstimateOneRepMax estimates a one-repetition max from a sub-maximal set
// via the Epley formula: weight * (1 + reps/30). A single rep is already a
// max. Non-positive weight or reps are undefined (nil), not zero.
func EstimateOneRepMax(weightKg float64, reps int) *float64 {
	if weightKg <= 0 || reps <= 0 {
		return nil
	}
	e1rm := weightKg
	if reps > 1 {
		e1rm = weightKg * (1 + float64(reps)/30)
	}
	return &e1rm
}

// DOTS coefficients by sex, IPF formula.
var dotsCoefficients = map[models.Sex][5]float64{
	models.SexMale:   {47.46178854, 8.472061379, 0.07369410346, -0.001395833811, 7.076659730e-06},
	models.SexFemale: {-125.4255398, 13.71219419, -0.03307250631, 0.00004840116767, -1.812303927e-08},
}

// DOTS computes the bodyweight-normalized relative-strength score for a
// lifted total, rounded to 2 decimal places. A sex outside {male, female}
// is a caller bug and fails fast.
func DOTS(totalKg, bodyweightKg float64, sex models.Sex) (float64, error) {
	coeff, ok := dotsCoefficients[sex]
	if !ok {
		return 0, fmt.Errorf("sex must be %q or %q, got %q", models.SexMale, models.SexFemale, sex)
	}

	bw := bodyweightKg
	denom := coeff[0] + coeff[1]*bw + coeff[2]*bw*bw + coeff[3]*bw*bw*bw + coeff[4]*bw*bw*bw*bw
	return math.Round(500/denom*totalKg*100) / 100, nil
}

// RollingBestTotal computes, per workout date, the best (maximum) Epley
// estimated 1RM observed up to and including that date for each of the big
// three lifts, plus their sum. This is a running maximum joined across
// lifts, not a windowed average: once a best is set it persists until
// beaten. The total appears once all three lifts have been observed.
//
// liftNames maps exact exported exercise names (e.g. "Bench Press
// (Barbell)") to lifts; sets for other exercises are ignored.
func RollingBestTotal(sets []models.WorkoutSet, liftNames map[string]models.Lift) []models.E1RMPoint {
	// Best estimate per date per lift first, so same-day sets collapse.
	type dayKey struct {
		date time.Time
		lift models.Lift
	}
	dayBest := make(map[dayKey]float64)
	dates := make(map[time.Time]bool)

	for _, s := range sets {
		lift, ok := liftNames[s.Exercise]
		if !ok {
			continue
		}
		e1rm := EstimateOneRepMax(s.WeightKg, s.Reps)
		if e1rm == nil {
			continue
		}
		date := models.DateOf(s.Date)
		k := dayKey{date: date, lift: lift}
		if *e1rm > dayBest[k] {
			dayBest[k] = *e1rm
		}
		dates[date] = true
	}

	ordered := make([]time.Time, 0, len(dates))
	for d := range dates {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	best := make(map[models.Lift]float64)
	out := make([]models.E1RMPoint, 0, len(ordered))
	for _, date := range ordered {
		for _, lift := range []models.Lift{models.LiftSquat, models.LiftBench, models.LiftDeadlift} {
			if v, ok := dayBest[dayKey{date: date, lift: lift}]; ok && v > best[lift] {
				best[lift] = v
			}
		}

		p := models.E1RMPoint{Date: date}
		p.Squat = liftValue(best, models.LiftSquat)
		p.Bench = liftValue(best, models.LiftBench)
		p.Deadlift = liftValue(best, models.LiftDeadlift)
		if p.Squat != nil && p.Bench != nil && p.Deadlift != nil {
			total := *p.Squat + *p.Bench + *p.Deadlift
			p.EstimatedTotal = &total
		}
		out = append(out, p)
	}
	return out
}

func liftValue(best map[models.Lift]float64, lift models.Lift) *float64 {
	v, ok := best[lift]
	if !ok {
		return nil
	}
	return &v
}
