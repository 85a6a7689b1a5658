package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"chiller_guard/internal/models"
	"chiller_guard/internal/repository"
)

// DefaultSummaryWindow is used when Summary or Trends get a non-positive window.
const DefaultSummaryWindow = 24 * time.Hour

// DefaultTrendPoints is used when Trends gets a non-positive point count.
const DefaultTrendPoints = 100

// maxTrendReadings bounds how many stored rows one Trends call reads before sampling.
const maxTrendReadings = 20_000

// TrendSeries names the series Trends returns.
var TrendSeries = []string{
	"health_score",
	models.ChannelVibrationRMS,
	models.MetricApproachTemp,
	models.MetricPhaseImbalance,
	models.MetricKWPerTon,
	models.MetricDeltaT,
	models.MetricCOP,
	models.ChannelPowerKW,
	models.ChannelLoadPercent,
}

var (
	ErrNotFound         = errors.New("not found")
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
)

type MonitoringService struct {
	readings repository.ReadingRepo
	now      func() time.Time
}

func NewMonitoringService(readings repository.ReadingRepo) *MonitoringService {
	return &MonitoringService{
		readings: readings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *MonitoringService) Assets(ctx context.Context) ([]string, error) {
	return s.readings.Assets(ctx)
}

// Latest returns the newest stored record, or ErrNotFound.
func (s *MonitoringService) Latest(ctx context.Context, assetID string) (models.ReadingRecord, error) {
	rec, err := s.readings.Latest(ctx, strings.TrimSpace(assetID))
	if err != nil {
		return models.ReadingRecord{}, err
	}
	if rec == nil {
		return models.ReadingRecord{}, ErrNotFound
	}
	rec.Timestamp = normalizeToUTC(rec.Timestamp)
	return *rec, nil
}

func (s *MonitoringService) History(ctx context.Context, q HistoryQuery) ([]models.ReadingRecord, error) {
	from, to := normalizeToUTC(q.From), normalizeToUTC(q.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.readings.List(ctx, strings.TrimSpace(q.AssetID), from, to, q.Limit)
}

// Summary aggregates the trailing window ending now.
func (s *MonitoringService) Summary(ctx context.Context, assetID string, window time.Duration) (models.HealthSummary, error) {
	if window <= 0 {
		window = DefaultSummaryWindow
	}
	to := s.now()
	return s.readings.Summary(ctx, strings.TrimSpace(assetID), to.Add(-window), to)
}

// Compare ranks every asset by its latest stored score, worst first. Assets
// whose latest reading carries no score are left out.
func (s *MonitoringService) Compare(ctx context.Context) (models.FleetComparison, error) {
	ids, err := s.readings.Assets(ctx)
	if err != nil {
		return models.FleetComparison{}, err
	}

	out := models.FleetComparison{Timestamp: s.now(), Assets: []models.AssetHealth{}}
	for _, id := range ids {
		rec, err := s.readings.Latest(ctx, id)
		if err != nil {
			return models.FleetComparison{}, err
		}
		if rec == nil || rec.HealthScore == nil {
			continue
		}
		out.Assets = append(out.Assets, models.AssetHealth{
			AssetID:     id,
			HealthScore: *rec.HealthScore,
			Category:    rec.HealthCategory,
			LastReading: normalizeToUTC(rec.Timestamp),
		})
	}

	sort.SliceStable(out.Assets, func(i, j int) bool {
		a, b := out.Assets[i], out.Assets[j]
		if a.HealthScore != b.HealthScore {
			return a.HealthScore < b.HealthScore
		}
		return a.AssetID < b.AssetID
	})

	out.AssetCount = len(out.Assets)
	if out.AssetCount == 0 {
		return out, nil
	}
	out.MostConcerning = out.Assets[0].AssetID
	out.Healthiest = out.Assets[out.AssetCount-1].AssetID
	var sum float64
	for _, a := range out.Assets {
		sum += a.HealthScore
	}
	avg := math.Round(sum/float64(out.AssetCount)*10) / 10
	out.AverageScore = &avg
	return out, nil
}

// Trends samples the trailing window down to at most points entries, evenly by
// position. ErrNotFound when nothing is stored in the window.
func (s *MonitoringService) Trends(ctx context.Context, assetID string, window time.Duration, points int) (models.Trend, error) {
	if window <= 0 {
		window = DefaultSummaryWindow
	}
	if points <= 0 {
		points = DefaultTrendPoints
	}
	assetID = strings.TrimSpace(assetID)
	to := s.now()
	from := to.Add(-window)

	recs, err := s.readings.List(ctx, assetID, from, to, maxTrendReadings)
	if err != nil {
		return models.Trend{}, err
	}
	if len(recs) == 0 {
		return models.Trend{}, ErrNotFound
	}

	step := (len(recs) + points - 1) / points
	t := models.Trend{
		AssetID: assetID,
		From:    from,
		To:      to,
		Series:  make(map[string][]*float64, len(TrendSeries)),
	}
	for i := 0; i < len(recs); i += step {
		rec := &recs[i]
		t.Times = append(t.Times, normalizeToUTC(rec.Timestamp))
		for _, name := range TrendSeries {
			t.Series[name] = append(t.Series[name], trendValue(rec, name))
		}
	}
	t.Points = len(t.Times)
	return t, nil
}

func trendValue(rec *models.ReadingRecord, name string) *float64 {
	if name == "health_score" {
		return rec.HealthScore
	}
	if v := rec.Derived.Metric(name); v != nil {
		return v
	}
	return rec.Channel(name)
}

// Delete removes every stored reading of an asset. Events stay.
func (s *MonitoringService) Delete(ctx context.Context, assetID string) (models.AssetDeletion, error) {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return models.AssetDeletion{}, ErrMissingAsset
	}
	n, err := s.readings.Delete(ctx, assetID)
	if err != nil {
		return models.AssetDeletion{}, err
	}
	return models.AssetDeletion{AssetID: assetID, DeletedReadings: n}, nil
}
