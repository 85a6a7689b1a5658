package models

import "time"

// HealthCategory buckets an overall or per-metric score.
type HealthCategory string

const (
	CategoryExcellent        HealthCategory = "excellent"
	CategoryGood             HealthCategory = "good"
	CategoryFair             HealthCategory = "fair"
	CategoryPoor             HealthCategory = "poor"
	CategoryCritical         HealthCategory = "critical"
	CategoryInsufficientData HealthCategory = "insufficient_data"
)

// MetricScore explains how one metric contributed to the overall score.
type MetricScore struct {
	Metric          string         `json:"metric"`
	RawValue        float64        `json:"raw_value"`
	Score           float64        `json:"score"`
	Weight          float64        `json:"weight"`
	EffectiveWeight float64        `json:"effective_weight"`
	Contribution    float64        `json:"contribution"`
	Status          HealthCategory `json:"status"`
	Message         string         `json:"message"`
}

// HealthScore is the explainable 0-100 assessment of one reading.
// Overall is nil when no scored metric was present.
type HealthScore struct {
	Overall         *float64       `json:"overall_score"`
	Category        HealthCategory `json:"category"`
	Breakdown       []MetricScore  `json:"breakdown"`
	PrimaryConcern  string         `json:"primary_concern,omitempty"`
	Recommendations []string       `json:"recommendations"`
}

// Insufficient reports whether the score could not be computed.
func (h HealthScore) Insufficient() bool { return h.Category == CategoryInsufficientData }

// HealthSummary aggregates stored scores of one asset over a window.
type HealthSummary struct {
	AssetID        string         `json:"asset_id"`
	From           time.Time      `json:"from"`
	To             time.Time      `json:"to"`
	Readings       int            `json:"readings"`
	Min            *float64       `json:"min_score,omitempty"`
	Avg            *float64       `json:"avg_score,omitempty"`
	Max            *float64       `json:"max_score,omitempty"`
	LatestCategory HealthCategory `json:"latest_category,omitempty"`
}

// AssetHealth is the latest score of one asset in a fleet comparison.
type AssetHealth struct {
	AssetID     string         `json:"asset_id"`
	HealthScore float64        `json:"health_score"`
	Category    HealthCategory `json:"status"`
	LastReading time.Time      `json:"last_reading"`
}

// FleetComparison ranks assets by their latest score, worst first.
type FleetComparison struct {
	Timestamp      time.Time     `json:"timestamp"`
	AssetCount     int           `json:"asset_count"`
	Assets         []AssetHealth `json:"assets"`
	Healthiest     string        `json:"healthiest,omitempty"`
	MostConcerning string        `json:"most_concerning,omitempty"`
	AverageScore   *float64      `json:"average_score,omitempty"`
}

// Trend is a down-sampled time series of stored metrics. Series values line up
// with Times; nil marks a sample where the metric was not available.
type Trend struct {
	AssetID string                `json:"asset_id"`
	From    time.Time             `json:"from"`
	To      time.Time             `json:"to"`
	Points  int                   `json:"point_count"`
	Times   []time.Time           `json:"times"`
	Series  map[string][]*float64 `json:"series"`
}

// AssetDeletion reports how many stored readings were removed.
type AssetDeletion struct {
	AssetID         string `json:"asset_id"`
	DeletedReadings int64  `json:"deleted_readings"`
}
