package service

import (
	"time"

	"chiller_guard/internal/models"
)

// IngestResult is the outcome of one reading. Health is nil for rejected readings.
type IngestResult struct {
	AssetID    string                  `json:"asset_id"`
	Timestamp  time.Time               `json:"time"`
	Derived    models.DerivedMetrics   `json:"derived"`
	Validation models.ValidationResult `json:"validation"`
	Health     *models.HealthScore     `json:"health,omitempty"`
	Stored     bool                    `json:"stored"`
}

// BatchItem is one entry of a batch. Error is set when storage failed.
type BatchItem struct {
	Index  int           `json:"index"`
	Result *IngestResult `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type BatchResult struct {
	BatchID  string      `json:"batch_id"`
	Total    int         `json:"total"`
	Accepted int         `json:"accepted"`
	Warnings int         `json:"accepted_with_warnings"`
	Rejected int         `json:"rejected"`
	Failed   int         `json:"failed"`
	Items    []BatchItem `json:"items,omitempty"`
}

type ValidateResult struct {
	Derived    models.DerivedMetrics   `json:"derived"`
	Validation models.ValidationResult `json:"validation"`
}

type ScoreResult struct {
	Derived models.DerivedMetrics `json:"derived"`
	Health  models.HealthScore    `json:"health"`
}

// HistoryQuery selects stored readings. Zero times leave the window open.
type HistoryQuery struct {
	AssetID string
	From    time.Time
	To      time.Time
	Limit   int
}

// LogFilter supports history filtering by time range, type and asset.
type LogFilter struct {
	From    time.Time // inclusive; zero means no lower bound
	To      time.Time // inclusive; zero means no upper bound
	Type    string    // "", "REJECTED", "WARNING", "HEALTH_ALERT", "SCENARIO"
	AssetID string
}

// GenerateParams describes one scenario request. Zero Days means the
// library default; zero Start means the run ends now.
type GenerateParams struct {
	Type     models.FailureType
	AssetID  string
	Days     int
	Interval time.Duration
	Start    time.Time
	Seed     int64
	Ingest   bool
	Strict   bool
}

type GenerateResult struct {
	Scenario  models.ScenarioInfo `json:"scenario"`
	Seed      int64               `json:"seed"`
	Start     time.Time           `json:"start"`
	End       time.Time           `json:"end"`
	Generated int                 `json:"readings_generated"`
	Batch     *BatchResult        `json:"ingest,omitempty"`
	Readings  []models.RawReading `json:"readings,omitempty"`
}

// ReplayParams configures the background simulator.
type ReplayParams struct {
	Spec models.ScenarioSpec
	Seed int64
	Loop bool
}
