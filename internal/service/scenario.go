package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chiller_guard/internal/logger"
	"chiller_guard/internal/metrics"
	"chiller_guard/internal/models"
	"chiller_guard/internal/repository"
	"chiller_guard/internal/scenario"
)

const (
	// MaxGeneratedReadings bounds one request; 90 days at 1 minute stays under it.
	MaxGeneratedReadings = 130_000
	// MaxIngestedReadings bounds a request that also ingests, which runs
	// synchronously inside the HTTP write timeout: 90 days at 5 minutes.
	MaxIngestedReadings  = 25_920
	DefaultPreviewSamples = 10
)

var (
	ErrInvalidScenario = errors.New("invalid scenario request")
	ErrTooManyReadings = errors.New("scenario would produce too many readings")
)

type ScenarioService struct {
	gen     *scenario.Generator
	ingest  Ingest
	events  repository.EventRepo
	metrics *metrics.Metrics
	log     *logger.Logger
	now     func() time.Time
}

func NewScenarioService(gen *scenario.Generator, ingest Ingest, events repository.EventRepo, m *metrics.Metrics, log *logger.Logger) *ScenarioService {
	if gen == nil {
		gen = scenario.NewGenerator(scenario.DefaultBaseline())
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ScenarioService{
		gen:     gen,
		ingest:  ingest,
		events:  events,
		metrics: m,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *ScenarioService) Library() []models.ScenarioInfo { return scenario.Library() }

func (s *ScenarioService) Details(t models.FailureType) (models.ScenarioInfo, error) {
	info, ok := scenario.Lookup(t)
	if !ok {
		return models.ScenarioInfo{}, fmt.Errorf("%w: scenario %q", ErrNotFound, t)
	}
	return info, nil
}

// spec resolves request defaults. The returned info reports the chosen duration.
func (s *ScenarioService) spec(p GenerateParams) (models.ScenarioInfo, models.ScenarioSpec, error) {
	info, ok := scenario.Lookup(p.Type)
	if !ok {
		return info, models.ScenarioSpec{}, fmt.Errorf("%w: %w: %q", ErrInvalidScenario, scenario.ErrUnknownType, p.Type)
	}
	if p.Days < 0 || p.Interval < 0 {
		return info, models.ScenarioSpec{}, fmt.Errorf("%w: days and interval must not be negative", ErrInvalidScenario)
	}
	if p.Days > 0 {
		info.DefaultDays = p.Days
	}
	interval := p.Interval
	if interval == 0 {
		interval = scenario.DefaultInterval
	}
	duration := time.Duration(info.DefaultDays) * 24 * time.Hour
	limit := int64(MaxGeneratedReadings)
	if p.Ingest {
		limit = MaxIngestedReadings
	}
	if n := scenario.ReadingCount(duration, interval); n > limit {
		return info, models.ScenarioSpec{}, fmt.Errorf("%w: %d > %d", ErrTooManyReadings, n, limit)
	}

	start := p.Start
	if start.IsZero() {
		start = s.now().Add(-duration).Truncate(time.Minute)
	}
	return info, models.ScenarioSpec{
		Type:     p.Type,
		AssetID:  p.AssetID,
		Start:    start.UTC(),
		Duration: duration,
		Interval: interval,
	}, nil
}

// Generate produces a scenario sequence and either returns it or ingests it
// through the full validation path.
func (s *ScenarioService) Generate(ctx context.Context, p GenerateParams) (GenerateResult, error) {
	info, spec, err := s.spec(p)
	if err != nil {
		return GenerateResult{}, err
	}
	seq, err := s.gen.Generate(spec, p.Seed)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	spec = seq.Spec()
	s.metrics.RecordScenario(spec.Type)

	res := GenerateResult{
		Scenario:  info,
		Seed:      p.Seed,
		Start:     spec.Start,
		End:       spec.Start.Add(spec.Duration),
		Generated: seq.Len(),
	}

	if p.Ingest && s.ingest != nil {
		batch := s.ingest.IngestBatch(ctx, seq.Collect(), p.Strict)
		batch.Items = nil
		res.Batch = &batch
	} else {
		res.Readings = seq.Collect()
	}

	meta := map[string]any{
		"scenario": spec.Type,
		"seed":     p.Seed,
		"readings": res.Generated,
		"ingested": p.Ingest,
	}
	if err := s.events.Append(ctx, models.Event{
		AssetID:     spec.AssetID,
		Type:        models.EventScenario,
		Description: fmt.Sprintf("generated %d readings of %s", res.Generated, info.Name),
		Metadata:    meta,
	}); err != nil {
		s.log.Errorw("event_append_failed", "type", models.EventScenario, "err", err)
	}

	s.log.Infow("scenario_generated",
		"scenario", spec.Type,
		"asset_id", spec.AssetID,
		"seed", p.Seed,
		"readings", res.Generated,
		"ingested", p.Ingest,
	)
	return res, nil
}

// Preview returns evenly spaced samples of a sequence, first and last included.
func (s *ScenarioService) Preview(p GenerateParams, samples int) ([]models.RawReading, error) {
	_, spec, err := s.spec(p)
	if err != nil {
		return nil, err
	}
	seq, err := s.gen.Generate(spec, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if samples <= 0 {
		samples = DefaultPreviewSamples
	}
	n := seq.Len()
	if samples >= n {
		return seq.Collect(), nil
	}
	out := make([]models.RawReading, 0, samples)
	for i := range samples {
		idx := 0
		if samples > 1 {
			idx = i * (n - 1) / (samples - 1)
		}
		out = append(out, seq.At(idx))
	}
	return out, nil
}
