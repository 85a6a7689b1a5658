// Package health turns derived chiller metrics into an explainable 0-100
// health score with a per-metric breakdown and canned recommendations.
package health

import (
	"fmt"
	"maps"
	"math"
	"sort"

	"chiller_guard/internal/models"
)

// recommendBelow is the sub-score under which a metric is fair or worse and
// earns recommendations.
const recommendBelow = 75.0

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	weights map[string]float64
	bands   map[string]Band
}

// NewEngine validates cfg and returns an engine. Configuration errors wrap the
// package sentinels.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("health config: %w", err)
	}
	return &Engine{weights: maps.Clone(cfg.Weights), bands: maps.Clone(cfg.Bands)}, nil
}

// WithWeights returns a copy of the engine using caller-supplied weights.
func (e *Engine) WithWeights(w map[string]float64) (*Engine, error) {
	return NewEngine(Config{Weights: w, Bands: e.bands})
}

// Weights returns a copy of the configured weight map.
func (e *Engine) Weights() map[string]float64 { return maps.Clone(e.weights) }

// Score computes the health of one reading. raw is optional and supplies the
// vibration channel. A nil derived is a programming error and panics.
func (e *Engine) Score(derived *models.DerivedMetrics, raw *models.RawReading) models.HealthScore {
	if derived == nil {
		panic("health: Score called with nil derived metrics")
	}

	type present struct {
		name  string
		value float64
	}
	var in []present
	total := 0.0
	for _, name := range scoredMetrics {
		w, ok := e.weights[name]
		if !ok {
			continue
		}
		v := valueOf(name, derived, raw)
		if v == nil || math.IsNaN(*v) {
			continue
		}
		in = append(in, present{name, *v})
		total += w
	}

	if len(in) == 0 {
		return models.HealthScore{
			Category:        models.CategoryInsufficientData,
			Breakdown:       []models.MetricScore{},
			Recommendations: []string{},
		}
	}

	breakdown := make([]models.MetricScore, 0, len(in))
	overall := 0.0
	for _, p := range in {
		band := e.bands[p.name]
		score := band.Normalize(p.value)
		status := Categorize(score)
		w := e.weights[p.name]
		eff := w / total
		breakdown = append(breakdown, models.MetricScore{
			Metric:          p.name,
			RawValue:        p.value,
			Score:           score,
			Weight:          w,
			EffectiveWeight: eff,
			Contribution:    score * eff,
			Status:          status,
			Message:         band.message(status, p.value),
		})
		overall += score * eff
	}
	overall = math.Max(0, math.Min(100, overall))

	// weakest first; ties keep canonical order
	sort.SliceStable(breakdown, func(i, j int) bool { return breakdown[i].Score < breakdown[j].Score })

	hs := models.HealthScore{
		Overall:         &overall,
		Category:        Categorize(overall),
		Breakdown:       breakdown,
		Recommendations: []string{},
	}
	if breakdown[0].Score < recommendBelow {
		hs.PrimaryConcern = breakdown[0].Metric
	}

	seen := make(map[string]struct{})
	for _, ms := range breakdown {
		if ms.Score >= recommendBelow {
			break
		}
		for _, rec := range Recommend(ms.Metric, ms.Status) {
			if _, dup := seen[rec]; dup {
				continue
			}
			seen[rec] = struct{}{}
			hs.Recommendations = append(hs.Recommendations, rec)
		}
	}
	return hs
}

func valueOf(name string, d *models.DerivedMetrics, raw *models.RawReading) *float64 {
	if name == models.ChannelVibrationRMS {
		if raw == nil {
			return nil
		}
		return raw.VibrationRMS
	}
	return d.Metric(name)
}
