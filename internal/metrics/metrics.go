// Package metrics exposes ingestion counters to Prometheus.
package metrics

import (
	"time"

	"chiller_guard/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	ReadingsTotal  *prometheus.CounterVec
	IssuesTotal    *prometheus.CounterVec
	HealthScore    *prometheus.GaugeVec
	IngestDuration prometheus.Histogram
	ScenarioRuns   *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// ReadingsTotal counts readings by validation outcome
		ReadingsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chiller_readings_ingested_total",
				Help: "Readings processed by the ingestion path, by validation status",
			},
			[]string{"status"},
		),
		// IssuesTotal counts triggered guard rules
		IssuesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chiller_validation_issues_total",
				Help: "Physics-guard rule findings, by rule and severity",
			},
			[]string{"rule_id", "severity"},
		),
		HealthScore: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chiller_health_score",
				Help: "Latest overall health score per asset",
			},
			[]string{"asset_id"},
		),
		IngestDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chiller_ingest_duration_seconds",
				Help:    "Time to derive, validate, score and persist one reading",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		ScenarioRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chiller_scenarios_generated_total",
				Help: "Scenario sequences generated, by failure type",
			},
			[]string{"type"},
		),
	}
}

// RecordValidation counts one reading and each of its findings.
func (m *Metrics) RecordValidation(res models.ValidationResult) {
	if m == nil {
		return
	}
	m.ReadingsTotal.WithLabelValues(string(res.Status)).Inc()
	for _, is := range res.Issues {
		m.IssuesTotal.WithLabelValues(is.RuleID, is.Severity.String()).Inc()
	}
}

// RecordHealth sets the asset's gauge. Insufficient data leaves it untouched.
func (m *Metrics) RecordHealth(assetID string, hs models.HealthScore) {
	if m == nil || hs.Overall == nil {
		return
	}
	m.HealthScore.WithLabelValues(assetID).Set(*hs.Overall)
}

// ObserveIngest records how long one ingest took.
func (m *Metrics) ObserveIngest(d time.Duration) {
	if m == nil {
		return
	}
	m.IngestDuration.Observe(d.Seconds())
}

// RecordScenario counts one generated scenario.
func (m *Metrics) RecordScenario(t models.FailureType) {
	if m == nil {
		return
	}
	m.ScenarioRuns.WithLabelValues(string(t)).Inc()
}
