// ABOUTME: Tests for the metric record normalizer.
// ABOUTME: Covers coercion, missing values, unmapped columns, and bad rows.
package normalize

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/namtonthat/healthsum/internal/models"
)

var testCols = ColumnMap{
	"Date":              {Name: DateColumn},
	"Carbohydrates (g)": {Name: models.MetricCarbs, Units: "g"},
	"Steps (count)":     {Name: models.MetricSteps, Units: "count"},
	"bedtime":           {Name: models.MetricBedtime, Type: TypeClock},
	"asleep":            {Name: models.MetricSleepAsleep, Type: TypeDuration, Units: "hr"},
}

func testBatch(rows ...RawRow) Batch {
	return Batch{
		Source:     "HealthAutoExport",
		IngestedAt: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC),
		Rows:       rows,
	}
}

func findRecord(t *testing.T, recs []*models.MetricRecord, name string) *models.MetricRecord {
	t.Helper()
	for _, r := range recs {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no record named %s", name)
	return nil
}

func TestNormalizeNumeric(t *testing.T) {
	recs := Normalize(testBatch(RawRow{
		"Date":              "2024-06-01",
		"Carbohydrates (g)": "200",
		"Steps (count)":     "10500",
		"Ignored Column":    "42",
	}), testCols, zap.NewNop())

	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (unmapped columns are dropped)", len(recs))
	}

	carbs := findRecord(t, recs, models.MetricCarbs)
	if carbs.Value == nil || *carbs.Value != 200 {
		t.Errorf("carbs value = %v, want 200", carbs.Value)
	}
	if carbs.Date != models.MustDate("2024-06-01") {
		t.Errorf("carbs date = %v", carbs.Date)
	}
	if carbs.Source != "HealthAutoExport" {
		t.Errorf("carbs source = %s", carbs.Source)
	}
	if carbs.Units != "g" {
		t.Errorf("carbs units = %s, want g", carbs.Units)
	}
}

func TestNormalizeWhitespaceIsMissingNotZero(t *testing.T) {
	recs := Normalize(testBatch(RawRow{
		"Date":              "2024-06-01",
		"Carbohydrates (g)": "   ",
	}), testCols, zap.NewNop())

	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1 (missing-value record is retained)", len(recs))
	}
	if recs[0].Value != nil {
		t.Errorf("value = %v, want nil for whitespace-only input", *recs[0].Value)
	}
	if recs[0].HasValue() {
		t.Error("whitespace-only quantity must not count as a value")
	}
}

func TestNormalizeBadDateSkipsRow(t *testing.T) {
	recs := Normalize(testBatch(
		RawRow{"Date": "not-a-date", "Steps (count)": "100"},
		RawRow{"Date": "2024-06-01", "Steps (count)": "200"},
	), testCols, zap.NewNop())

	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1 (bad-date row skipped, batch continues)", len(recs))
	}
	if *recs[0].Value != 200 {
		t.Errorf("surviving value = %v, want 200", *recs[0].Value)
	}
}

func TestNormalizeNonNumericDropsRecordOnly(t *testing.T) {
	recs := Normalize(testBatch(RawRow{
		"Date":              "2024-06-01",
		"Carbohydrates (g)": "lots",
		"Steps (count)":     "9000",
	}), testCols, zap.NewNop())

	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Name != models.MetricSteps {
		t.Errorf("surviving record = %s, want steps", recs[0].Name)
	}
}

func TestNormalizeDateOnlyRowEmitsNothing(t *testing.T) {
	recs := Normalize(testBatch(RawRow{"Date": "2024-06-01"}), testCols, zap.NewNop())
	if len(recs) != 0 {
		t.Fatalf("got %d records, want 0 for a row with only its date", len(recs))
	}
}

func TestNormalizeClockAndDuration(t *testing.T) {
	recs := Normalize(testBatch(RawRow{
		"Date":    "2024-06-01",
		"bedtime": "2024-06-01 22:45:00",
		"asleep":  "7:21",
	}), testCols, zap.NewNop())

	bed := findRecord(t, recs, models.MetricBedtime)
	if bed.Text != "10:45 PM" {
		t.Errorf("bedtime = %q, want %q", bed.Text, "10:45 PM")
	}
	if bed.Value != nil {
		t.Error("clock fields carry no numeric value")
	}

	asleep := findRecord(t, recs, models.MetricSleepAsleep)
	if asleep.Text != "7h 21m" {
		t.Errorf("asleep title = %q, want %q", asleep.Text, "7h 21m")
	}
	if asleep.Value == nil {
		t.Fatal("duration fields carry numeric hours")
	}
	if got, want := *asleep.Value, 7.0+21.0/60.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("asleep hours = %v, want %v", got, want)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-06-01 22:45:00 +1000", "10:45 PM", false},
		{"2024-06-01 06:05:00", "6:05 AM", false},
		{"22:45", "10:45 PM", false},
		{"nonsense", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		in        string
		wantHours float64
		wantTitle string
		wantErr   bool
	}{
		{"7:21", 7.35, "7h 21m", false},
		{"7:21:00", 7.35, "7h 21m", false},
		{"7.5", 7.5, "7h 30m", false},
		{"x:y", 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hours, title, err := ParseHours(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHours(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if hours < tt.wantHours-1e-9 || hours > tt.wantHours+1e-9 {
				t.Errorf("hours = %v, want %v", hours, tt.wantHours)
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
		})
	}
}
