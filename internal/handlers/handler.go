package handlers

import (
	"net/http"

	"chiller_guard/internal/logger"
	"chiller_guard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  http.Handler
}

// NewHandler constructs a new HTTP handler with dependencies. /metrics serves
// the default Prometheus registry unless WithGatherer replaces it.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, metrics: promhttp.Handler()}
}

// WithGatherer serves g on /metrics.
func (h *Handler) WithGatherer(g prometheus.Gatherer) *Handler {
	h.metrics = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(h.metrics))

	h.registerAPIRoutes(router)

	// live health feed (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerIngestRoutes(api)
		h.registerAssetRoutes(api)
		h.registerScenarioRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerIngestRoutes(api *gin.RouterGroup) {
	api.POST("/ingest", h.ingest)
	api.POST("/ingest/batch", h.ingestBatch)
	api.POST("/validate", h.validate)
	api.POST("/derive", h.derive)
	api.POST("/score", h.score)
}

func (h *Handler) registerAssetRoutes(api *gin.RouterGroup) {
	api.GET("/assets", h.listAssets)
	api.GET("/assets/compare", h.compareAssets)
	assets := api.Group("/assets/:id")
	{
		assets.DELETE("", h.deleteAsset)
		assets.GET("/latest", h.latest)
		assets.GET("/readings", h.readings)
		assets.GET("/health/summary", h.healthSummary)
		assets.GET("/trends", h.trends)
	}
}

func (h *Handler) registerScenarioRoutes(api *gin.RouterGroup) {
	scenarios := api.Group("/scenarios")
	{
		scenarios.GET("", h.listScenarios)
		scenarios.GET("/:type", h.scenarioDetails)
		scenarios.GET("/:type/preview", h.previewScenario)
		scenarios.POST("/generate", h.generateScenario)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	api.GET("/logs", h.getLogs)
}
