// ABOUTME: Tests for Epley 1RM, DOTS golden values, and rolling best totals.
// ABOUTME: DOTS fixtures are pinned reference values computed from the formula.
package derive

import (
	"math"
	"testing"

	"github.com/namtonthat/healthsum/internal/models"
)

func TestEstimateOneRepMax(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		reps     int
		want     *float64
	}{
		{"single rep is already a max", 140, 1, f(140)},
		{"epley above one rep", 100, 5, f(100 * (1 + 5.0/30.0))},
		{"ten reps", 90, 10, f(90 * (1 + 10.0/30.0))},
		{"zero weight undefined", 0, 5, nil},
		{"negative weight undefined", -10, 5, nil},
		{"zero reps undefined", 100, 0, nil},
		{"negative reps undefined", 100, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateOneRepMax(tt.weightKg, tt.reps)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("EstimateOneRepMax = %v, want %v", got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-9 {
				t.Errorf("EstimateOneRepMax = %v, want %v", *got, *tt.want)
			}
		})
	}
}

// Golden-value fixtures: computed once from the coefficient formula and
// pinned. A 500kg total at 83kg bodyweight.
func TestDOTSGoldenValues(t *testing.T) {
	male, err := DOTS(500, 83, models.SexMale)
	if err != nil {
		t.Fatalf("DOTS male: %v", err)
	}
	if math.Abs(male-314.05) > 0.01 {
		t.Errorf("DOTS(500, 83, male) = %.2f, want 314.05", male)
	}

	female, err := DOTS(500, 83, models.SexFemale)
	if err != nil {
		t.Fatalf("DOTS female: %v", err)
	}
	if math.Abs(female-308.01) > 0.01 {
		t.Errorf("DOTS(500, 83, female) = %.2f, want 308.01", female)
	}
}

func TestDOTSRoundsToTwoDecimals(t *testing.T) {
	got, err := DOTS(500, 83, models.SexMale)
	if err != nil {
		t.Fatal(err)
	}
	if got != math.Round(got*100)/100 {
		t.Errorf("DOTS = %v, want 2-decimal rounding", got)
	}
}

func TestDOTSInvalidSexFailsFast(t *testing.T) {
	if _, err := DOTS(500, 83, models.Sex("unknown")); err == nil {
		t.Fatal("expected configuration error for invalid sex")
	}
	if _, err := DOTS(500, 83, models.Sex("")); err == nil {
		t.Fatal("expected configuration error for empty sex")
	}
}

var testLifts = map[string]models.Lift{
	"Squat (Barbell)":       models.LiftSquat,
	"Bench Press (Barbell)": models.LiftBench,
	"Sumo Deadlift":         models.LiftDeadlift,
}

func set(date, exercise string, weightKg float64, reps int) models.WorkoutSet {
	return models.WorkoutSet{
		Date:     models.MustDate(date),
		Exercise: exercise,
		WeightKg: weightKg,
		Reps:     reps,
	}
}

func TestRollingBestTotalPersistsUntilBeaten(t *testing.T) {
	points := RollingBestTotal([]models.WorkoutSet{
		set("2024-06-01", "Squat (Barbell)", 140, 1),
		set("2024-06-01", "Bench Press (Barbell)", 100, 1),
		set("2024-06-03", "Sumo Deadlift", 180, 1),
		// Weaker squat later must not lower the running best.
		set("2024-06-05", "Squat (Barbell)", 120, 1),
		// Bench PR via Epley: 95x5 -> 110.83, beats 100.
		set("2024-06-07", "Bench Press (Barbell)", 95, 5),
	}, testLifts)

	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}

	// Day 1: no deadlift yet, so no total.
	if points[0].EstimatedTotal != nil {
		t.Error("total must stay nil until all three lifts observed")
	}
	if *points[0].Squat != 140 || *points[0].Bench != 100 {
		t.Errorf("day 1 squat/bench = %v/%v", *points[0].Squat, *points[0].Bench)
	}

	// Day 2 (06-03): all three present.
	if points[1].EstimatedTotal == nil {
		t.Fatal("expected total once deadlift observed")
	}
	if math.Abs(*points[1].EstimatedTotal-(140+100+180)) > 1e-9 {
		t.Errorf("total = %v, want 420", *points[1].EstimatedTotal)
	}

	// Day 3 (06-05): the 120kg squat does not beat 140.
	if *points[2].Squat != 140 {
		t.Errorf("squat best = %v, want 140 (running max persists)", *points[2].Squat)
	}

	// Day 4 (06-07): bench best beaten by Epley estimate.
	wantBench := 95 * (1 + 5.0/30.0)
	if math.Abs(*points[3].Bench-wantBench) > 1e-9 {
		t.Errorf("bench best = %v, want %v", *points[3].Bench, wantBench)
	}
	wantTotal := 140 + wantBench + 180
	if math.Abs(*points[3].EstimatedTotal-wantTotal) > 1e-9 {
		t.Errorf("total = %v, want %v", *points[3].EstimatedTotal, wantTotal)
	}
}

func TestRollingBestTotalIgnoresOtherExercises(t *testing.T) {
	points := RollingBestTotal([]models.WorkoutSet{
		set("2024-06-01", "Leg Press", 300, 10),
		set("2024-06-01", "Squat (Barbell)", 0, 5), // undefined e1RM
	}, testLifts)
	if len(points) != 0 {
		t.Fatalf("got %d points, want 0", len(points))
	}
}
