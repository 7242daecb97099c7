// ABOUTME: MetricRecord model and canonical metric names for health exports.
// ABOUTME: One record is a single observation of one metric on one calendar date.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Canonical metric names produced by the normalizer. Raw export columns are
// mapped onto these via the per-source column maps in the config package.
const (
	// Nutrition
	MetricCarbs        = "carbohydrates"
	MetricProtein      = "protein"
	MetricFat          = "total_fat"
	MetricFiber        = "fiber"
	MetricActiveEnergy = "active_energy"

	// Sleep
	MetricSleepAsleep = "sleep_asleep"
	MetricSleepInBed  = "sleep_in_bed"
	MetricSleepDeep   = "sleep_deep"
	MetricBedtime     = "bedtime"
	MetricWaketime    = "waketime"

	// Activity and body
	MetricSteps        = "steps"
	MetricWeight       = "body_weight"
	MetricExerciseMins = "exercise_mins"
	MetricMindfulMins  = "mindful_mins"
)

// MetricRecord is one observation of a single metric on a single date from a
// single source. (Date, Name, Source) is not unique at ingestion; duplicate
// uploads are collapsed by the dedup package at (Date, Name) granularity.
type MetricRecord struct {
	ID   uuid.UUID
	Date time.Time // calendar date at UTC midnight, see DateOf
	Name string

	// Value holds the numeric quantity. It is nil when the export carried
	// no concrete value for the date; such records are retained because
	// their presence matters for source precedence, but they are excluded
	// from every aggregate.
	Value *float64

	// Text holds quantities that are time-of-day or duration strings once
	// normalized ("10:45 PM", "7h 21m"). Empty for purely numeric metrics.
	Text string

	Units      string
	Source     string
	IngestedAt time.Time
}

// NewMetricRecord creates a record with a generated UUID.
func NewMetricRecord(date time.Time, name, source string, ingestedAt time.Time) *MetricRecord {
	return &MetricRecord{
		ID:         uuid.New(),
		Date:       DateOf(date),
		Name:       name,
		Source:     source,
		IngestedAt: ingestedAt,
	}
}

// WithValue sets the numeric quantity.
func (r *MetricRecord) WithValue(v float64) *MetricRecord {
	r.Value = &v
	return r
}

// WithText sets a string quantity (bedtime, duration titles).
func (r *MetricRecord) WithText(s string) *MetricRecord {
	r.Text = s
	return r
}

// WithUnits sets the unit annotation. Units are informational only; no
// conversion happens downstream.
func (r *MetricRecord) WithUnits(u string) *MetricRecord {
	r.Units = u
	return r
}

// HasValue reports whether the record carries a concrete quantity, numeric
// or textual.
func (r *MetricRecord) HasValue() bool {
	return r.Value != nil || r.Text != ""
}

// DateOf truncates t to its calendar date as written, re-anchored at UTC
// midnight so dates compare and hash consistently regardless of the zone the
// export was produced in.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MustDate parses a YYYY-MM-DD string, panicking on failure. Test helper and
// fixture convenience; production parsing lives in the normalize package.
func MustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return DateOf(t)
}
