package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chiller_guard/internal/guard"
	"chiller_guard/internal/health"
	"chiller_guard/internal/logger"
	"chiller_guard/internal/metrics"
	"chiller_guard/internal/models"
	"chiller_guard/internal/physics"
	"chiller_guard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrMissingAsset   = errors.New("asset_id is required")
	ErrInvalidWeights = errors.New("invalid weights")
)

type IngestService struct {
	readings repository.ReadingRepo
	events   repository.EventRepo

	calc    *physics.Calculator
	guard   *guard.Guard
	engine  *health.Engine
	metrics *metrics.Metrics
	log     *logger.Logger

	healthBelow float64
	now         func() time.Time
}

func NewIngestService(readings repository.ReadingRepo, events repository.EventRepo, d Deps) *IngestService {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &IngestService{
		readings:    readings,
		events:      events,
		calc:        d.Calculator,
		guard:       d.Guard,
		engine:      d.Engine,
		metrics:     d.Metrics,
		log:         log,
		healthBelow: d.HealthBelow,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// prepare trims the asset id and stamps readings that arrive without a time.
func (s *IngestService) prepare(r *models.RawReading) {
	r.AssetID = strings.TrimSpace(r.AssetID)
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now()
	}
	r.Timestamp = r.Timestamp.UTC()
}

// Ingest derives, validates, scores and stores one reading. Rejected readings
// are logged as events and never stored. Per-reading outcomes are values; the
// error is reserved for storage failures and malformed requests.
func (s *IngestService) Ingest(ctx context.Context, r models.RawReading, strict bool) (IngestResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveIngest(time.Since(start)) }()

	s.prepare(&r)
	if r.AssetID == "" {
		return IngestResult{}, ErrMissingAsset
	}

	derived := s.calc.Derive(r)
	prev, err := s.readings.Previous(ctx, r.AssetID, r.Timestamp)
	if err != nil {
		return IngestResult{}, fmt.Errorf("load previous reading: %w", err)
	}

	res := IngestResult{AssetID: r.AssetID, Timestamp: r.Timestamp, Derived: derived}
	res.Validation = s.guard.Validate(&r, &derived, prev, strict)
	s.metrics.RecordValidation(res.Validation)

	log := s.log.With("asset_id", r.AssetID, "time", r.Timestamp)

	if !res.Validation.Accepted() {
		log.Warnw("reading_rejected", "violations", res.Validation.Count(models.SeverityViolation))
		s.appendEvent(ctx, log, models.Event{
			AssetID:     r.AssetID,
			OccurredAt:  r.Timestamp,
			Type:        models.EventRejected,
			Description: firstMessage(res.Validation, models.SeverityViolation),
			Metadata:    map[string]any{"rules": ruleIDs(res.Validation, models.SeverityViolation)},
		})
		return res, nil
	}

	hs := s.engine.Score(&derived, &r)
	res.Health = &hs

	rec := models.ReadingRecord{
		RawReading:       r,
		Derived:          derived,
		ValidationStatus: res.Validation.Status,
		HealthScore:      hs.Overall,
		HealthCategory:   hs.Category,
	}
	if err := s.readings.Save(ctx, rec); err != nil {
		log.Errorw("reading_save_failed", "err", err)
		return res, fmt.Errorf("save reading: %w", err)
	}
	res.Stored = true
	s.metrics.RecordHealth(r.AssetID, hs)

	if res.Validation.Status == models.StatusAcceptedWithWarnings {
		s.appendEvent(ctx, log, models.Event{
			AssetID:     r.AssetID,
			OccurredAt:  r.Timestamp,
			Type:        models.EventWarning,
			Description: firstMessage(res.Validation, models.SeverityWarning),
			Metadata:    map[string]any{"rules": ruleIDs(res.Validation, models.SeverityWarning)},
		})
	}

	if hs.Overall != nil && *hs.Overall < s.healthBelow {
		log.Infow("health_alert", "score", *hs.Overall, "primary_concern", hs.PrimaryConcern)
		s.appendEvent(ctx, log, models.Event{
			AssetID:     r.AssetID,
			OccurredAt:  r.Timestamp,
			Type:        models.EventHealthAlert,
			Description: fmt.Sprintf("health score %.1f below %.1f (%s)", *hs.Overall, s.healthBelow, hs.Category),
			Metadata: map[string]any{
				"score":           *hs.Overall,
				"category":        hs.Category,
				"primary_concern": hs.PrimaryConcern,
			},
		})
	}

	log.Debugw("reading_ingested", "status", res.Validation.Status, "category", hs.Category)
	return res, nil
}

// IngestBatch ingests in order and keeps going past rejections and failures.
func (s *IngestService) IngestBatch(ctx context.Context, rs []models.RawReading, strict bool) BatchResult {
	out := BatchResult{
		BatchID: uuid.NewString(),
		Total:   len(rs),
		Items:   make([]BatchItem, 0, len(rs)),
	}
	for i, r := range rs {
		if err := ctx.Err(); err != nil {
			out.Failed += len(rs) - i
			out.Items = append(out.Items, BatchItem{Index: i, Error: err.Error()})
			break
		}
		res, err := s.Ingest(ctx, r, strict)
		if err != nil {
			out.Failed++
			out.Items = append(out.Items, BatchItem{Index: i, Error: err.Error()})
			continue
		}
		switch res.Validation.Status {
		case models.StatusAccepted:
			out.Accepted++
		case models.StatusAcceptedWithWarnings:
			out.Warnings++
		case models.StatusRejected:
			out.Rejected++
		}
		out.Items = append(out.Items, BatchItem{Index: i, Result: &res})
	}
	s.log.Infow("batch_ingested",
		"batch_id", out.BatchID,
		"total", out.Total,
		"accepted", out.Accepted,
		"warnings", out.Warnings,
		"rejected", out.Rejected,
		"failed", out.Failed,
	)
	return out
}

// Validate runs the guard without storing anything. The stored predecessor is
// used for rate checks when the reading names an asset.
func (s *IngestService) Validate(ctx context.Context, r models.RawReading, strict bool) (ValidateResult, error) {
	s.prepare(&r)
	derived := s.calc.Derive(r)

	var prev *models.RawReading
	if r.AssetID != "" {
		var err error
		if prev, err = s.readings.Previous(ctx, r.AssetID, r.Timestamp); err != nil {
			return ValidateResult{}, fmt.Errorf("load previous reading: %w", err)
		}
	}
	return ValidateResult{
		Derived:    derived,
		Validation: s.guard.Validate(&r, &derived, prev, strict),
	}, nil
}

func (s *IngestService) Derive(r models.RawReading) models.DerivedMetrics {
	return s.calc.Derive(r)
}

// Score rates a reading without validating or storing it. A non-nil weights
// map replaces the configured weights for this call only.
func (s *IngestService) Score(r models.RawReading, weights map[string]float64) (ScoreResult, error) {
	engine := s.engine
	if weights != nil {
		var err error
		if engine, err = s.engine.WithWeights(weights); err != nil {
			return ScoreResult{}, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
		}
	}
	derived := s.calc.Derive(r)
	return ScoreResult{Derived: derived, Health: engine.Score(&derived, &r)}, nil
}

func (s *IngestService) appendEvent(ctx context.Context, log *logger.Logger, e models.Event) {
	if err := s.events.Append(ctx, e); err != nil {
		log.Errorw("event_append_failed", "type", e.Type, "err", err)
	}
}

func firstMessage(v models.ValidationResult, sev models.Severity) string {
	for _, is := range v.Issues {
		if is.Severity == sev {
			return is.Message
		}
	}
	return string(v.Status)
}

func ruleIDs(v models.ValidationResult, sev models.Severity) []string {
	var ids []string
	for _, is := range v.Issues {
		if is.Severity == sev {
			ids = append(ids, is.RuleID)
		}
	}
	return ids
}
