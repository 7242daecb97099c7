// ABOUTME: Parquet export of daily summaries for the dashboard's semantic layer.
// ABOUTME: Missing metrics serialize as NaN with a validity flag alongside.
package export

import (
	"fmt"
	"math"
	"os"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/namtonthat/healthsum/internal/models"
)

type summaryParquetRow struct {
	Date               string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CarbsG             float64 `parquet:"name=carbs_g, type=DOUBLE"`
	ProteinG           float64 `parquet:"name=protein_g, type=DOUBLE"`
	FatG               float64 `parquet:"name=fat_g, type=DOUBLE"`
	FiberG             float64 `parquet:"name=fiber_g, type=DOUBLE"`
	Calories           float64 `parquet:"name=calories, type=DOUBLE"`
	SleepAsleepHours   float64 `parquet:"name=sleep_asleep_hours, type=DOUBLE"`
	SleepInBedHours    float64 `parquet:"name=sleep_in_bed_hours, type=DOUBLE"`
	SleepDeepHours     float64 `parquet:"name=sleep_deep_hours, type=DOUBLE"`
	SleepEfficiencyPct int32   `parquet:"name=sleep_efficiency_pct, type=INT32"`
	Bedtime            string  `parquet:"name=bedtime, type=BYTE_ARRAY, convertedtype=UTF8"`
	Waketime           string  `parquet:"name=waketime, type=BYTE_ARRAY, convertedtype=UTF8"`
	Steps              float64 `parquet:"name=steps, type=DOUBLE"`
	WeightKg           float64 `parquet:"name=weight_kg, type=DOUBLE"`
	ExerciseMinutes    float64 `parquet:"name=exercise_minutes, type=DOUBLE"`
	MindfulMinutes     float64 `parquet:"name=mindful_minutes, type=DOUBLE"`
	ActiveDay          bool    `parquet:"name=active_day, type=BOOLEAN"`
	MindfulDay         bool    `parquet:"name=mindful_day, type=BOOLEAN"`
	ValidCalories      bool    `parquet:"name=valid_calories, type=BOOLEAN"`
	ValidSleep         bool    `parquet:"name=valid_sleep, type=BOOLEAN"`
}

// MarshalSummaries encodes daily summaries as a Snappy-compressed Parquet
// file in memory.
func MarshalSummaries(days []models.DailySummary) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(summaryParquetRow), 4)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, day := range days {
		row := summaryParquetRow{
			Date:               day.Date.Format("2006-01-02"),
			CarbsG:             valueOrNaN(day.CarbsG),
			ProteinG:           valueOrNaN(day.ProteinG),
			FatG:               valueOrNaN(day.FatG),
			FiberG:             valueOrNaN(day.FiberG),
			Calories:           valueOrNaN(day.Calories),
			SleepAsleepHours:   valueOrNaN(day.SleepAsleepHours),
			SleepInBedHours:    valueOrNaN(day.SleepInBedHours),
			SleepDeepHours:     valueOrNaN(day.SleepDeepHours),
			SleepEfficiencyPct: int32(day.SleepEfficiencyPct),
			Bedtime:            day.Bedtime,
			Waketime:           day.Waketime,
			Steps:              valueOrNaN(day.Steps),
			WeightKg:           valueOrNaN(day.WeightKg),
			ExerciseMinutes:    valueOrNaN(day.ExerciseMinutes),
			MindfulMinutes:     valueOrNaN(day.MindfulMinutes),
			ActiveDay:          day.ActiveDay,
			MindfulDay:         day.MindfulDay,
			ValidCalories:      day.Calories != nil,
			ValidSleep:         day.SleepAsleepHours != nil,
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, fmt.Errorf("write parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finalize parquet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("close parquet buffer: %w", err)
	}
	return append([]byte(nil), fw.Bytes()...), nil
}

// WriteSummaries writes the Parquet encoding of days to path.
func WriteSummaries(path string, days []models.DailySummary) error {
	data, err := MarshalSummaries(days)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
