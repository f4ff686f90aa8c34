package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "lexdraft/internal/apidocs" // registers the OpenAPI document
	"lexdraft/internal/config"
	"lexdraft/internal/handler"
	"lexdraft/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Extraction *handler.ExtractionHandler
	Draft      *handler.DraftHandler
	Review     *handler.ReviewHandler
	Profile    *handler.ProfileHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h Handlers, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Extractions
	extractions := v1.Group("/extractions")
	extractions.POST("", h.Extraction.Upload)
	extractions.GET("", h.Extraction.List)
	extractions.GET("/:id", h.Extraction.GetByID)
	extractions.DELETE("/:id", h.Extraction.Delete)
	extractions.POST("/:id/reextract", h.Extraction.Reextract)
	extractions.GET("/:id/source", h.Extraction.Source)
	extractions.GET("/:id/export", h.Extraction.Export)

	// Drafts
	drafts := v1.Group("/drafts")
	drafts.POST("", h.Draft.Create)
	drafts.GET("/:id", h.Draft.GetByID)
	drafts.DELETE("/:id", h.Draft.Delete)
	drafts.POST("/:id/fill-from-profile", middleware.ClientKey(), h.Draft.FillFromProfile)

	// Review sessions
	reviews := v1.Group("/reviews")
	reviews.POST("", h.Review.Open)
	reviews.GET("/:id", h.Review.Get)
	reviews.DELETE("/:id", h.Review.Close)
	reviews.PUT("/:id/view", h.Review.SelectView)
	reviews.GET("/:id/views/:view", h.Review.RenderView)
	reviews.POST("/:id/apply/party", h.Review.ApplyParty)
	reviews.POST("/:id/apply/clause", h.Review.ApplyClause)
	reviews.POST("/:id/apply/amount", h.Review.ApplyAmount)
	reviews.POST("/:id/apply/dates", h.Review.ApplyDates)
	reviews.POST("/:id/clauses/:clauseId/copy", h.Review.CopyClause)
	reviews.GET("/:id/clipboard", h.Review.Clipboard)

	// Saved profiles, scoped by client key
	profiles := v1.Group("/profiles")
	profiles.Use(middleware.ClientKey())
	profiles.GET("", h.Profile.List)
	profiles.POST("", h.Profile.Create)
	profiles.GET("/default", h.Profile.Default)
	profiles.GET("/:id", h.Profile.GetByID)
	profiles.PATCH("/:id", h.Profile.Update)
	profiles.DELETE("/:id", h.Profile.Delete)
	profiles.PUT("/:id/default", h.Profile.SetDefault)
	profiles.POST("/:id/favorite", h.Profile.ToggleFavorite)

	return r
}
