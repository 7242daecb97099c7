// ABOUTME: Metric record normalizer: raw export rows onto canonical MetricRecords.
// ABOUTME: Handles per-source column maps, type coercion, and missing values.
package normalize

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/namtonthat/healthsum/internal/models"
)

// RawRow is one unparsed export row keyed by raw column name. The normalizer
// is agnostic to whether rows came from CSV, JSON, or a table scan.
type RawRow map[string]string

// Column types, selecting how a raw value is coerced.
const (
	TypeNumber   = "number"   // float quantity (default)
	TypeClock    = "clock"    // time of day, re-expressed as "H:MM AM/PM"
	TypeDuration = "duration" // duration, numeric hours plus an "Hh Mm" title
)

// DateColumn is the reserved canonical name marking a raw column as the
// row's calendar date.
const DateColumn = "date"

// Column describes how one raw export column maps onto a canonical metric.
type Column struct {
	Name  string // canonical metric name, or DateColumn
	Type  string // TypeNumber when empty
	Units string // informational unit annotation
}

// ColumnMap maps raw export column names to canonical columns. Raw columns
// without an entry are dropped, not errored.
type ColumnMap map[string]Column

// Batch is a set of raw rows that share provenance: one export file, one
// source tag, one ingestion timestamp.
type Batch struct {
	Source     string
	IngestedAt time.Time
	Rows       []RawRow
}

// Normalize converts a batch of raw rows into canonical metric records.
//
// Rules:
//   - a row with no parseable date is skipped and logged, never fatal;
//   - a row carrying no mapped columns beyond the date produces zero
//     records and is logged;
//   - whitespace-only numeric strings are missing, never zero; the record
//     is still emitted (with a nil value) so its presence can participate
//     in source precedence;
//   - a non-numeric string in a numeric column drops that record only.
func Normalize(b Batch, cols ColumnMap, log *zap.Logger) []*models.MetricRecord {
	dateCol := ""
	// Iterate raw columns in a fixed order so identical input always yields
	// identically ordered records; the dedup tie-break depends on it.
	rawCols := make([]string, 0, len(cols))
	for raw, c := range cols {
		if c.Name == DateColumn {
			dateCol = raw
			continue
		}
		rawCols = append(rawCols, raw)
	}
	sort.Strings(rawCols)

	var out []*models.MetricRecord
	for i, row := range b.Rows {
		date, ok := rowDate(row, dateCol)
		if !ok {
			log.Warn("dropping row with unparseable date",
				zap.String("source", b.Source),
				zap.Int("row", i),
				zap.String("raw_date", row[dateCol]))
			continue
		}

		emitted := 0
		for _, raw := range rawCols {
			col := cols[raw]
			val, present := row[raw]
			if !present {
				continue
			}

			rec := models.NewMetricRecord(date, col.Name, b.Source, b.IngestedAt).WithUnits(col.Units)
			if strings.TrimSpace(val) == "" {
				// Missing quantity, retained: absence is meaningful for
				// precedence but excluded from every aggregate.
				out = append(out, rec)
				emitted++
				continue
			}

			switch col.Type {
			case TypeClock:
				clock, err := ParseClock(val)
				if err != nil {
					log.Warn("dropping malformed clock value",
						zap.String("source", b.Source),
						zap.String("metric", col.Name),
						zap.String("value", val),
						zap.Error(err))
					continue
				}
				rec.WithText(clock)
			case TypeDuration:
				hours, title, err := ParseHours(val)
				if err != nil {
					log.Warn("dropping malformed duration value",
						zap.String("source", b.Source),
						zap.String("metric", col.Name),
						zap.String("value", val),
						zap.Error(err))
					continue
				}
				rec.WithValue(hours).WithText(title)
			default:
				f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
				if err != nil {
					log.Warn("dropping non-numeric value",
						zap.String("source", b.Source),
						zap.String("metric", col.Name),
						zap.String("value", val))
					continue
				}
				rec.WithValue(f)
			}
			out = append(out, rec)
			emitted++
		}

		if emitted == 0 {
			log.Info("row has no mapped columns beyond its date",
				zap.String("source", b.Source),
				zap.Int("row", i))
		}
	}
	return out
}

// dateFormats covers the export variants seen in practice: plain dates,
// space-separated datetimes with and without zone, and ISO 8601.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

func rowDate(row RawRow, dateCol string) (time.Time, bool) {
	raw, ok := row[dateCol]
	if !ok {
		return time.Time{}, false
	}
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDate parses an export date-or-datetime string down to its calendar
// date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return models.DateOf(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
