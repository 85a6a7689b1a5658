package service

import (
	"context"
	"time"

	"chiller_guard/internal/logger"
	"chiller_guard/internal/models"
	"chiller_guard/internal/scenario"
)

// SimulatorService feeds one generated reading into the ingestion path per
// tick. Each reading is stamped with the tick time, so a replay shows up in
// live views; guard rate checks compare consecutive samples, not wall time.
type SimulatorService struct {
	gen    *scenario.Generator
	ingest Ingest
	params ReplayParams
	log    *logger.Logger
}

func NewSimulatorService(gen *scenario.Generator, ingest Ingest, p ReplayParams, log *logger.Logger) *SimulatorService {
	if gen == nil {
		gen = scenario.NewGenerator(scenario.DefaultBaseline())
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatorService{gen: gen, ingest: ingest, params: p, log: log}
}

// Run ticks at the given interval until ctx is canceled or, without Loop,
// until the sequence is exhausted.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	cycle := int64(0)
	seq, ok := s.sequence(cycle)
	if !ok {
		return
	}
	s.log.Infow("replay_started",
		"scenario", s.params.Spec.Type,
		"asset_id", seq.Spec().AssetID,
		"readings", seq.Len(),
		"tick", tick,
	)

	t := time.NewTicker(tick)
	defer t.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if i >= seq.Len() {
				if !s.params.Loop {
					s.log.Infow("replay_finished", "cycles", cycle+1)
					return
				}
				cycle++
				if seq, ok = s.sequence(cycle); !ok {
					return
				}
				i = 0
			}
			s.step(ctx, seq.At(i), now)
			i++
		}
	}
}

// sequence builds the replay for one cycle. Each cycle reseeds so repeated
// loops are not identical.
func (s *SimulatorService) sequence(cycle int64) (scenario.Sequence, bool) {
	seq, err := s.gen.Generate(s.params.Spec, s.params.Seed+cycle)
	if err != nil {
		s.log.Errorw("replay_generate_failed", "scenario", s.params.Spec.Type, "err", err)
		return scenario.Sequence{}, false
	}
	if seq.Len() == 0 {
		s.log.Warnw("replay_empty", "scenario", s.params.Spec.Type)
		return scenario.Sequence{}, false
	}
	return seq, true
}

// step ingests one reading. Failures are logged; the replay keeps going.
func (s *SimulatorService) step(ctx context.Context, r models.RawReading, now time.Time) {
	r.Timestamp = now.UTC()
	res, err := s.ingest.Ingest(ctx, r, false)
	if err != nil {
		s.log.Errorw("replay_ingest_failed", "asset_id", r.AssetID, "err", err)
		return
	}
	if !res.Stored {
		s.log.Debugw("replay_reading_rejected", "asset_id", r.AssetID, "issues", len(res.Validation.Issues))
	}
}
