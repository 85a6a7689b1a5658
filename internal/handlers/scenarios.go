package handlers

import (
	"net/http"
	"strconv"
	"time"

	"chiller_guard/internal/models"
	"chiller_guard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	maxPreviewSamples = 100

	errSamplesInvalid = "invalid 'samples'; use 1..100"
	errDaysInvalid    = "invalid 'days'; use 1..90"
	errSeedInvalid    = "invalid 'seed'; use an integer"
)

// GenerateRequest is the /scenarios/generate payload.
type GenerateRequest struct {
	Type            models.FailureType `json:"scenario_type" binding:"required" example:"tube_fouling"`
	AssetID         string             `json:"asset_id,omitempty" example:"CH-001"`
	DurationDays    int                `json:"duration_days,omitempty" binding:"omitempty,min=1,max=90" example:"30"`
	IntervalMinutes int                `json:"interval_minutes,omitempty" binding:"omitempty,min=1,max=60" example:"5"`
	Start           *time.Time         `json:"start,omitempty"`
	Seed            int64              `json:"seed,omitempty" example:"42"`
	Ingest          bool               `json:"ingest,omitempty"`
	Strict          bool               `json:"strict,omitempty"`
}

func (r GenerateRequest) params() service.GenerateParams {
	p := service.GenerateParams{
		Type:     r.Type,
		AssetID:  r.AssetID,
		Days:     r.DurationDays,
		Interval: time.Duration(r.IntervalMinutes) * time.Minute,
		Seed:     r.Seed,
		Ingest:   r.Ingest,
		Strict:   r.Strict,
	}
	if r.Start != nil {
		p.Start = *r.Start
	}
	return p
}

// @Summary      List scenarios
// @Tags         scenarios
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, scenarios"
// @Router       /api/v1/scenarios [get]
func (h *Handler) listScenarios(c *gin.Context) {
	lib := h.services.Scenarios.Library()
	c.JSON(http.StatusOK, gin.H{"count": len(lib), "scenarios": lib})
}

// @Summary      Scenario details
// @Tags         scenarios
// @Produce      json
// @Param        type  path  string  true  "Failure type"
// @Success      200   {object}  models.ScenarioInfo
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/scenarios/{type} [get]
func (h *Handler) scenarioDetails(c *gin.Context) {
	info, err := h.services.Scenarios.Details(models.FailureType(c.Param("type")))
	if err != nil {
		h.serviceError(c, err, "failed to load scenario", "scenario_details_failed")
		return
	}
	c.JSON(http.StatusOK, info)
}

// @Summary      Preview scenario data
// @Description  Evenly spaced samples of a generated run; nothing is stored.
// @Tags         scenarios
// @Produce      json
// @Param        type      path   string  true   "Failure type"
// @Param        samples   query  int     false  "Number of samples (default 10)"
// @Param        days      query  int     false  "Duration in days (default 7)"
// @Param        asset_id  query  string  false  "Asset ID"
// @Param        seed      query  int     false  "Random seed"
// @Success      200  {object}  map[string]interface{}  "count, readings"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/scenarios/{type}/preview [get]
func (h *Handler) previewScenario(c *gin.Context) {
	samples, ok := intQuery(c, "samples", service.DefaultPreviewSamples, 1, maxPreviewSamples, errSamplesInvalid)
	if !ok {
		return
	}
	days, ok := intQuery(c, "days", 7, 1, 90, errDaysInvalid)
	if !ok {
		return
	}
	var seed int64
	if s := c.Query("seed"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errSeedInvalid})
			return
		}
		seed = v
	}

	readings, err := h.services.Scenarios.Preview(service.GenerateParams{
		Type:    models.FailureType(c.Param("type")),
		AssetID: c.Query("asset_id"),
		Days:    days,
		Seed:    seed,
	}, samples)
	if err != nil {
		h.serviceError(c, err, "failed to preview scenario", "scenario_preview_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(readings), "readings": readings})
}

// @Summary      Generate scenario data
// @Description  Generates a synthetic run ending now (or starting at 'start'). With ingest=true every reading goes through validation and storage and only counts are returned.
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        body  body  GenerateRequest  true  "Scenario request"
// @Success      200   {object}  service.GenerateResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/scenarios/generate [post]
func (h *Handler) generateScenario(c *gin.Context) {
	var req GenerateRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Scenarios.Generate(c.Request.Context(), req.params())
	if err != nil {
		h.serviceError(c, err, "failed to generate scenario", "scenario_generate_failed", "scenario", req.Type)
		return
	}
	c.JSON(http.StatusOK, res)
}

// intQuery reads an optional bounded integer; on failure it writes a 400.
func intQuery(c *gin.Context, key string, def, lo, hi int, msg string) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return 0, false
	}
	return v, true
}
