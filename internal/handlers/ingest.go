package handlers

import (
	"fmt"
	"net/http"

	"chiller_guard/internal/models"

	"github.com/gin-gonic/gin"
)

// MaxBatchSize bounds one /ingest/batch request.
const MaxBatchSize = 1000

const (
	errIngest   = "failed to ingest reading"
	errValidate = "failed to validate reading"
)

// BatchRequest is the /ingest/batch payload.
type BatchRequest struct {
	Readings []models.RawReading `json:"readings" binding:"required"`
}

// ScoreRequest is the /score payload. Weights, when set, must cover only
// known metrics and sum to 1.
type ScoreRequest struct {
	Reading models.RawReading  `json:"reading"`
	Weights map[string]float64 `json:"weights,omitempty"`
}

// @Summary      Ingest one reading
// @Description  Derives metrics, validates against physics rules, scores and stores the reading. Rejected readings are returned with status 200 and are not stored.
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        strict  query  bool               false  "Promote warnings to violations"
// @Param        body    body   models.RawReading  true   "Sensor reading"
// @Success      200     {object}  service.IngestResult
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/ingest [post]
func (h *Handler) ingest(c *gin.Context) {
	strict, ok := strictParam(c)
	if !ok {
		return
	}
	var r models.RawReading
	if !h.bindJSONOrBadRequest(c, &r) {
		return
	}
	res, err := h.services.Ingest.Ingest(c.Request.Context(), r, strict)
	if err != nil {
		h.serviceError(c, err, errIngest, "ingest_failed", "asset_id", r.AssetID)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Ingest a batch
// @Description  Each reading is processed independently, in order. Failures do not stop the batch.
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        strict  query  bool          false  "Promote warnings to violations"
// @Param        body    body   BatchRequest  true   "Readings"
// @Success      200     {object}  service.BatchResult
// @Failure      400     {object}  map[string]string
// @Router       /api/v1/ingest/batch [post]
func (h *Handler) ingestBatch(c *gin.Context) {
	strict, ok := strictParam(c)
	if !ok {
		return
	}
	var req BatchRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if n := len(req.Readings); n == 0 || n > MaxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("batch must hold 1..%d readings, got %d", MaxBatchSize, n)})
		return
	}
	c.JSON(http.StatusOK, h.services.Ingest.IngestBatch(c.Request.Context(), req.Readings, strict))
}

// @Summary      Validate without storing
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        strict  query  bool               false  "Promote warnings to violations"
// @Param        body    body   models.RawReading  true   "Sensor reading"
// @Success      200     {object}  service.ValidateResult
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/validate [post]
func (h *Handler) validate(c *gin.Context) {
	strict, ok := strictParam(c)
	if !ok {
		return
	}
	var r models.RawReading
	if !h.bindJSONOrBadRequest(c, &r) {
		return
	}
	res, err := h.services.Ingest.Validate(c.Request.Context(), r, strict)
	if err != nil {
		h.serviceError(c, err, errValidate, "validate_failed", "asset_id", r.AssetID)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Derived metrics only
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        body  body  models.RawReading  true  "Sensor reading"
// @Success      200   {object}  models.DerivedMetrics
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/derive [post]
func (h *Handler) derive(c *gin.Context) {
	var r models.RawReading
	if !h.bindJSONOrBadRequest(c, &r) {
		return
	}
	c.JSON(http.StatusOK, h.services.Ingest.Derive(r))
}

// @Summary      Health score for a reading
// @Description  Scores without validating or storing. Custom weights apply to this request only.
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        body  body  ScoreRequest  true  "Reading and optional weights"
// @Success      200   {object}  service.ScoreResult
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/score [post]
func (h *Handler) score(c *gin.Context) {
	var req ScoreRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Ingest.Score(req.Reading, req.Weights)
	if err != nil {
		h.serviceError(c, err, "failed to score reading", "score_failed")
		return
	}
	c.JSON(http.StatusOK, res)
}
