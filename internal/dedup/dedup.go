// ABOUTME: Deduplicator: collapses duplicate (date, metric) observations.
// ABOUTME: Last write wins by ingestion time; ties resolve to input order.
package dedup

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/namtonthat/healthsum/internal/models"
)

type key struct {
	date time.Time
	name string
}

// Dedup selects exactly one winning record per (date, metric) pair.
//
// Precedence is "last write wins" by IngestedAt, the wall-clock capture
// time, never the observation time: a stale re-upload ingested later still
// overwrites. When two candidates share an IngestedAt the later one in
// input order wins, which keeps the result deterministic for identical
// input ordering; the tie is debug-logged for audit.
//
// A lone record is never competed away. Records with a zero date indicate a
// normalizer bug upstream; they are dropped and logged rather than raised.
func Dedup(records []*models.MetricRecord, log *zap.Logger) []*models.MetricRecord {
	winners := make(map[key]*models.MetricRecord, len(records))
	for _, r := range records {
		if r.Date.IsZero() {
			log.Warn("dropping record with missing date",
				zap.String("metric", r.Name),
				zap.String("source", r.Source))
			continue
		}

		k := key{date: r.Date, name: r.Name}
		cur, ok := winners[k]
		if !ok {
			winners[k] = r
			continue
		}
		if cur.IngestedAt.Equal(r.IngestedAt) {
			log.Debug("ingestion-time tie, keeping later input",
				zap.Time("date", r.Date),
				zap.String("metric", r.Name),
				zap.Time("ingested_at", r.IngestedAt))
		}
		// Equivalent to a stable ascending sort on IngestedAt keeping the
		// last element: strictly older candidates lose, equal ones defer
		// to input order.
		if !r.IngestedAt.Before(cur.IngestedAt) {
			winners[k] = r
		}
	}

	out := make([]*models.MetricRecord, 0, len(winners))
	for _, r := range winners {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
