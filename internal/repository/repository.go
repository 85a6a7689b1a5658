package repository

import (
	"context"
	"database/sql"
	"time"

	"chiller_guard/internal/models"
)

// TimeLayout is how timestamps are stored: fixed width, UTC, lexically sortable.
const TimeLayout = "2006-01-02 15:04:05.000"

type ReadingRepo interface {
	Save(ctx context.Context, rec models.ReadingRecord) error
	// Latest returns the newest stored record of an asset, or nil.
	Latest(ctx context.Context, assetID string) (*models.ReadingRecord, error)
	// Previous returns the newest stored reading strictly before at, or nil.
	Previous(ctx context.Context, assetID string, at time.Time) (*models.RawReading, error)
	List(ctx context.Context, assetID string, from, to time.Time, limit int) ([]models.ReadingRecord, error)
	Assets(ctx context.Context) ([]string, error)
	Summary(ctx context.Context, assetID string, from, to time.Time) (models.HealthSummary, error)
	// Delete removes every stored reading of an asset and reports how many.
	Delete(ctx context.Context, assetID string) (int64, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.Event) error
	List(ctx context.Context, f EventFilter) ([]models.Event, error)
}

// EventFilter narrows List. Zero fields do not filter.
type EventFilter struct {
	From    time.Time
	To      time.Time
	Type    string
	AssetID string
}

type Repository struct {
	ReadingRepo ReadingRepo
	EventRepo   EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ReadingRepo: NewReadingSQLite(db),
		EventRepo:   NewEventSQLite(db),
	}
}

func formatTime(t time.Time) string { return t.UTC().Format(TimeLayout) }

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.UTC)
}
