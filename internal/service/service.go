package service

import (
	"context"
	"time"

	"chiller_guard/internal/guard"
	"chiller_guard/internal/health"
	"chiller_guard/internal/logger"
	"chiller_guard/internal/metrics"
	"chiller_guard/internal/models"
	"chiller_guard/internal/physics"
	"chiller_guard/internal/repository"
	"chiller_guard/internal/scenario"
)

// Ingest runs readings through derive → validate → score → persist.
type Ingest interface {
	Ingest(ctx context.Context, r models.RawReading, strict bool) (IngestResult, error)
	IngestBatch(ctx context.Context, rs []models.RawReading, strict bool) BatchResult
	Validate(ctx context.Context, r models.RawReading, strict bool) (ValidateResult, error)
	Derive(r models.RawReading) models.DerivedMetrics
	Score(r models.RawReading, weights map[string]float64) (ScoreResult, error)
}

// Monitoring exposes views over stored readings and their removal.
type Monitoring interface {
	Assets(ctx context.Context) ([]string, error)
	Latest(ctx context.Context, assetID string) (models.ReadingRecord, error)
	History(ctx context.Context, q HistoryQuery) ([]models.ReadingRecord, error)
	Summary(ctx context.Context, assetID string, window time.Duration) (models.HealthSummary, error)
	Compare(ctx context.Context) (models.FleetComparison, error)
	Trends(ctx context.Context, assetID string, window time.Duration, points int) (models.Trend, error)
	Delete(ctx context.Context, assetID string) (models.AssetDeletion, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.Event, error)
}

// Scenarios serves the scenario library and on-demand generation.
type Scenarios interface {
	Library() []models.ScenarioInfo
	Details(t models.FailureType) (models.ScenarioInfo, error)
	Generate(ctx context.Context, p GenerateParams) (GenerateResult, error)
	Preview(p GenerateParams, samples int) ([]models.RawReading, error)
}

// Simulator replays a scenario into the ingestion path.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Ingest
	Monitoring
	EventLog
	Scenarios
	Simulator
}

// Deps carries the domain objects built from configuration.
type Deps struct {
	Calculator  *physics.Calculator
	Guard       *guard.Guard
	Engine      *health.Engine
	Generator   *scenario.Generator
	Metrics     *metrics.Metrics
	Log         *logger.Logger
	HealthBelow float64
	Replay      ReplayParams
}

// NewService wires the repository layer and domain objects into concrete services.
func NewService(repos *repository.Repository, d Deps) *Service {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	ingest := NewIngestService(repos.ReadingRepo, repos.EventRepo, d)
	return &Service{
		Ingest:     ingest,
		Monitoring: NewMonitoringService(repos.ReadingRepo),
		EventLog:   NewEventLogService(repos.EventRepo),
		Scenarios:  NewScenarioService(d.Generator, ingest, repos.EventRepo, d.Metrics, d.Log),
		Simulator:  NewSimulatorService(d.Generator, ingest, d.Replay, d.Log),
	}
}
