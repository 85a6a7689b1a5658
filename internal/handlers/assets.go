package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"chiller_guard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	maxSummaryHours = 24 * 90

	maxTrendHours  = 168
	minTrendPoints = 10
	maxTrendPoints = 500

	errLimitInvalid       = "invalid 'limit'; use a positive integer"
	errHoursInvalid       = "invalid 'hours'; use 1..2160"
	errTrendHoursInvalid  = "invalid 'hours'; use 1..168"
	errTrendPointsInvalid = "invalid 'points'; use 10..500"
	errConfirmRequired    = "deleting stored readings needs confirm=true"
)

// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, assets"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assets [get]
func (h *Handler) listAssets(c *gin.Context) {
	assets, err := h.services.Monitoring.Assets(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load assets", "assets_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(assets), "assets": assets})
}

// @Summary      Latest reading of an asset
// @Tags         assets
// @Produce      json
// @Param        id   path  string  true  "Asset ID"
// @Success      200  {object}  models.ReadingRecord
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assets/{id}/latest [get]
func (h *Handler) latest(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.services.Monitoring.Latest(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "failed to load reading", "latest_failed", "asset_id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Stored readings of an asset
// @Description  Oldest first. Times accept RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; a date-only 'to' covers the whole day.
// @Tags         assets
// @Produce      json
// @Param        id     path   string  true   "Asset ID"
// @Param        from   query  string  false  "Start of range"
// @Param        to     query  string  false  "End of range"
// @Param        limit  query  int     false  "Maximum rows (default 1000)"
// @Success      200    {object}  map[string]interface{}  "count, readings"
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/assets/{id}/readings [get]
func (h *Handler) readings(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errLimitInvalid})
			return
		}
		limit = v
	}
	id := c.Param("id")
	recs, err := h.services.Monitoring.History(c.Request.Context(), service.HistoryQuery{
		AssetID: id,
		From:    from,
		To:      to,
		Limit:   limit,
	})
	if err != nil {
		h.serviceError(c, err, "failed to load readings", "readings_list_failed", "asset_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(recs), "readings": recs})
}

// @Summary      Health summary of an asset
// @Tags         assets
// @Produce      json
// @Param        id     path   string  true   "Asset ID"
// @Param        hours  query  int     false  "Trailing window in hours (default 24)"
// @Success      200    {object}  models.HealthSummary
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/assets/{id}/health/summary [get]
func (h *Handler) healthSummary(c *gin.Context) {
	window := service.DefaultSummaryWindow
	if s := c.Query("hours"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 || v > maxSummaryHours {
			c.JSON(http.StatusBadRequest, gin.H{"error": errHoursInvalid})
			return
		}
		window = time.Duration(v) * time.Hour
	}
	id := c.Param("id")
	sum, err := h.services.Monitoring.Summary(c.Request.Context(), id, window)
	if err != nil {
		h.serviceError(c, err, "failed to summarize health", "health_summary_failed", "asset_id", id)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// @Summary      Compare assets by latest health
// @Description  Worst first. Assets whose latest reading has no score are left out.
// @Tags         assets
// @Produce      json
// @Success      200  {object}  models.FleetComparison
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assets/compare [get]
func (h *Handler) compareAssets(c *gin.Context) {
	cmp, err := h.services.Monitoring.Compare(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to compare assets", "assets_compare_failed", err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// @Summary      Metric trends of an asset
// @Description  Stored readings of the trailing window, sampled evenly down to at most 'points' entries.
// @Tags         assets
// @Produce      json
// @Param        id      path   string  true   "Asset ID"
// @Param        hours   query  int     false  "Trailing window in hours, 1..168 (default 24)"
// @Param        points  query  int     false  "Maximum points, 10..500 (default 100)"
// @Success      200     {object}  models.Trend
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/assets/{id}/trends [get]
func (h *Handler) trends(c *gin.Context) {
	hours, ok := intQuery(c, "hours", 24, 1, maxTrendHours, errTrendHoursInvalid)
	if !ok {
		return
	}
	points, ok := intQuery(c, "points", service.DefaultTrendPoints, minTrendPoints, maxTrendPoints, errTrendPointsInvalid)
	if !ok {
		return
	}
	id := c.Param("id")
	tr, err := h.services.Monitoring.Trends(c.Request.Context(), id, time.Duration(hours)*time.Hour, points)
	if err != nil {
		h.serviceError(c, err, "failed to load trends", "trends_failed", "asset_id", id)
		return
	}
	c.JSON(http.StatusOK, tr)
}

// @Summary      Delete stored readings of an asset
// @Description  Irreversible. Logged events are kept.
// @Tags         assets
// @Produce      json
// @Param        id       path   string  true  "Asset ID"
// @Param        confirm  query  bool    true  "Must be true"
// @Success      200      {object}  map[string]interface{}  "success, asset_id, deleted_readings, message"
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/v1/assets/{id} [delete]
func (h *Handler) deleteAsset(c *gin.Context) {
	if confirm, err := strconv.ParseBool(c.Query("confirm")); err != nil || !confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": errConfirmRequired})
		return
	}
	id := c.Param("id")
	del, err := h.services.Monitoring.Delete(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "failed to delete readings", "asset_delete_failed", "asset_id", id)
		return
	}
	if h.log != nil {
		h.log.Infow("asset_readings_deleted", "asset_id", del.AssetID, "deleted", del.DeletedReadings)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"asset_id":         del.AssetID,
		"deleted_readings": del.DeletedReadings,
		"message":          fmt.Sprintf("deleted %d readings of %s", del.DeletedReadings, del.AssetID),
	})
}
