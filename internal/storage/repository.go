// ABOUTME: Repository interface for summary storage.
// ABOUTME: Defines the contract consumed by the CLI and MCP server.
package storage

import (
	"time"

	"github.com/namtonthat/healthsum/internal/models"
)

// Repository defines the storage interface for canonical summaries.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// ReplaceAll rebuilds both derived tables from a pipeline run.
	ReplaceAll(days []models.DailySummary, weekly []models.WeeklyAverage) error

	GetSummary(date time.Time) (*models.DailySummary, error)
	ListSummaries(limit int) ([]*models.DailySummary, error)
	ListWeeklyAverages(limit int) ([]*models.WeeklyAverage, error)

	Close() error
}
