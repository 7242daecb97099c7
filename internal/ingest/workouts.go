// ABOUTME: Workout set CSV reader for the strength exports.
// ABOUTME: Produces WorkoutSets for the e1RM rolling-total calculator.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/namtonthat/healthsum/internal/models"
	"github.com/namtonthat/healthsum/internal/normalize"
)

// Workout export column names, matching the Hevy-style CSV layout.
const (
	colStartTime     = "start_time"
	colExerciseTitle = "exercise_title"
	colWeightKg      = "weight_kg"
	colReps          = "reps"
)

// ReadWorkoutCSV parses a workout export into sets. Malformed rows are
// skipped and logged; the batch never aborts for one bad row.
func ReadWorkoutCSV(path string, log *zap.Logger) ([]models.WorkoutSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workout export: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read workout export: %w", err)
	}
	if len(all) < 2 {
		return nil, nil
	}

	col := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		col[name] = i
	}
	for _, required := range []string{colStartTime, colExerciseTitle, colWeightKg, colReps} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("workout export missing column %q", required)
		}
	}

	var sets []models.WorkoutSet
	for i, rec := range all[1:] {
		date, err := normalize.ParseDate(rec[col[colStartTime]])
		if err != nil {
			log.Warn("skipping workout row with bad date", zap.Int("row", i), zap.Error(err))
			continue
		}
		weight, err := strconv.ParseFloat(rec[col[colWeightKg]], 64)
		if err != nil {
			log.Warn("skipping workout row with bad weight", zap.Int("row", i), zap.String("value", rec[col[colWeightKg]]))
			continue
		}
		reps, err := strconv.Atoi(rec[col[colReps]])
		if err != nil {
			log.Warn("skipping workout row with bad reps", zap.Int("row", i), zap.String("value", rec[col[colReps]]))
			continue
		}

		sets = append(sets, models.WorkoutSet{
			Date:     date,
			Exercise: rec[col[colExerciseTitle]],
			WeightKg: weight,
			Reps:     reps,
		})
	}
	return sets, nil
}
