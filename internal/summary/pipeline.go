// ABOUTME: Pipeline entry point: normalize, dedup, assemble, derive weekly.
// ABOUTME: A run is a fresh total recomputation; reruns are byte-identical.
package summary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/namtonthat/healthsum/internal/config"
	"github.com/namtonthat/healthsum/internal/dedup"
	"github.com/namtonthat/healthsum/internal/derive"
	"github.com/namtonthat/healthsum/internal/models"
	"github.com/namtonthat/healthsum/internal/normalize"
)

// Pipeline wires the normalizer, deduplicator, calculator, and assembler
// behind one entry point. It holds no state between runs.
type Pipeline struct {
	cfg *config.Config
	log *zap.Logger
}

// Result is one full recomputation of the canonical tables.
type Result struct {
	Days   []models.DailySummary
	Weekly []models.WeeklyAverage
}

// New creates a pipeline. A nil logger falls back to a no-op logger.
func New(cfg *config.Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Run recomputes the daily and weekly summary tables from raw export
// batches. Batches from sources the config does not know are a caller bug
// and fail fast; bad rows inside a known batch are skipped and logged.
func (p *Pipeline) Run(batches []normalize.Batch) (Result, error) {
	var healthRecords, sleepRecords []*models.MetricRecord

	for _, b := range batches {
		kind, err := p.cfg.SourceKind(b.Source)
		if err != nil {
			return Result{}, fmt.Errorf("classify batch: %w", err)
		}
		cols, err := p.cfg.ColumnMap(b.Source)
		if err != nil {
			return Result{}, fmt.Errorf("column map: %w", err)
		}

		records := normalize.Normalize(b, cols, p.log)
		switch kind {
		case config.KindHealth:
			healthRecords = append(healthRecords, records...)
		case config.KindSleep:
			sleepRecords = append(sleepRecords, records...)
		}
	}

	// Dedup runs per join side: precedence across sides is per-field and
	// belongs to the assembler, not to last-write-wins.
	health := dedup.Dedup(healthRecords, p.log)
	sleep := dedup.Dedup(sleepRecords, p.log)

	days := Assemble(health, sleep, p.log)
	weekly := derive.WeeklyAverages(days)

	p.log.Info("pipeline run complete",
		zap.Int("raw_health_records", len(healthRecords)),
		zap.Int("raw_sleep_records", len(sleepRecords)),
		zap.Int("daily_summaries", len(days)),
		zap.Int("weekly_rows", len(weekly)))

	return Result{Days: days, Weekly: weekly}, nil
}
