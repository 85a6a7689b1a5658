package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chiller_guard/internal/models"
	"chiller_guard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockIngest struct {
	ingestResp service.IngestResult
	ingestErr  error
	batchResp  service.BatchResult
	validResp  service.ValidateResult
	validErr   error
	derived    models.DerivedMetrics
	scoreResp  service.ScoreResult
	scoreErr   error

	lastReading models.RawReading
	lastStrict  bool
	lastBatch   []models.RawReading
	lastWeights map[string]float64
	calls       int
}

func (m *mockIngest) Ingest(ctx context.Context, r models.RawReading, strict bool) (service.IngestResult, error) {
	m.calls++
	m.lastReading, m.lastStrict = r, strict
	return m.ingestResp, m.ingestErr
}

func (m *mockIngest) IngestBatch(ctx context.Context, rs []models.RawReading, strict bool) service.BatchResult {
	m.calls++
	m.lastBatch, m.lastStrict = rs, strict
	return m.batchResp
}

func (m *mockIngest) Validate(ctx context.Context, r models.RawReading, strict bool) (service.ValidateResult, error) {
	m.calls++
	m.lastReading, m.lastStrict = r, strict
	return m.validResp, m.validErr
}

func (m *mockIngest) Derive(r models.RawReading) models.DerivedMetrics {
	m.calls++
	m.lastReading = r
	return m.derived
}

func (m *mockIngest) Score(r models.RawReading, weights map[string]float64) (service.ScoreResult, error) {
	m.calls++
	m.lastReading, m.lastWeights = r, weights
	return m.scoreResp, m.scoreErr
}

type mockMonitoring struct {
	assets    []string
	latest    models.ReadingRecord
	latestErr error
	history   []models.ReadingRecord
	summary   models.HealthSummary
	compare   models.FleetComparison
	trend     models.Trend
	deleted   int64
	err       error

	lastAsset  string
	lastQuery  service.HistoryQuery
	lastWindow time.Duration
	lastPoints int
	deletes    int
}

func (m *mockMonitoring) Assets(ctx context.Context) ([]string, error) {
	return m.assets, m.err
}

func (m *mockMonitoring) Latest(ctx context.Context, assetID string) (models.ReadingRecord, error) {
	m.lastAsset = assetID
	return m.latest, m.latestErr
}

func (m *mockMonitoring) History(ctx context.Context, q service.HistoryQuery) ([]models.ReadingRecord, error) {
	m.lastQuery = q
	return m.history, m.err
}

func (m *mockMonitoring) Summary(ctx context.Context, assetID string, window time.Duration) (models.HealthSummary, error) {
	m.lastAsset, m.lastWindow = assetID, window
	return m.summary, m.err
}

func (m *mockMonitoring) Compare(ctx context.Context) (models.FleetComparison, error) {
	return m.compare, m.err
}

func (m *mockMonitoring) Trends(ctx context.Context, assetID string, window time.Duration, points int) (models.Trend, error) {
	m.lastAsset, m.lastWindow, m.lastPoints = assetID, window, points
	return m.trend, m.err
}

func (m *mockMonitoring) Delete(ctx context.Context, assetID string) (models.AssetDeletion, error) {
	m.lastAsset = assetID
	m.deletes++
	return models.AssetDeletion{AssetID: assetID, DeletedReadings: m.deleted}, m.err
}

type mockEventLog struct {
	resp       []models.Event
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.Event, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockScenarios struct {
	library []models.ScenarioInfo
	details models.ScenarioInfo
	genResp service.GenerateResult
	preview []models.RawReading
	err     error

	lastParams  service.GenerateParams
	lastSamples int
}

func (m *mockScenarios) Library() []models.ScenarioInfo { return m.library }

func (m *mockScenarios) Details(t models.FailureType) (models.ScenarioInfo, error) {
	m.lastParams.Type = t
	return m.details, m.err
}

func (m *mockScenarios) Generate(ctx context.Context, p service.GenerateParams) (service.GenerateResult, error) {
	m.lastParams = p
	return m.genResp, m.err
}

func (m *mockScenarios) Preview(p service.GenerateParams, samples int) ([]models.RawReading, error) {
	m.lastParams, m.lastSamples = p, samples
	return m.preview, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func f(v float64) *float64 { return &v }
