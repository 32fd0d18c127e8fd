package routes

import (
	"draftroom/api/handlers"
	"draftroom/api/middleware"
	ratelimitservice "draftroom/api/services/ratelimit"
	"draftroom/pkg/messages"
	"draftroom/pkg/metrics"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Router struct {
	engine  *gin.Engine
	api     *gin.RouterGroup
	limiter middleware.RateLimiter
}

// NewRouter creates the router with permissive CORS and the JSON 404.
func NewRouter(engine *gin.Engine, limiter middleware.RateLimiter) *Router {
	engine.Use(cors.New(CorsConfig()))
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": messages.NotFound})
	})

	return &Router{
		engine:  engine,
		api:     engine.Group("/api"),
		limiter: limiter,
	}
}

// CorsConfig allows every origin, without credentials.
func CorsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.ReportHandler:
			r.registerReportHandler(handler)
		case *handlers.AdminHandler:
			r.registerAdminHandler(handler)
		case *handlers.HealthHandler:
			r.engine.GET("/healthz", handler.Health)
		case *metrics.Metrics:
			if handler != nil {
				r.engine.GET("/metrics", gin.WrapH(handler.Handler()))
			}
		}
	}
}

// Register the board and player vote routes.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	players := r.api.Group("/players")
	{
		players.GET("", handler.ListPlayers)
		players.GET("/:slug", handler.GetPlayer)
	}

	r.api.POST("/player-vote",
		middleware.RateLimit(r.limiter, ratelimitservice.PlayerVotePolicy, messages.PlayerVoteRateLimit),
		handler.TogglePlayerVote,
	)
}

// Register the community report routes.
func (r *Router) registerReportHandler(handler *handlers.ReportHandler) {
	r.api.POST("/reports",
		middleware.RateLimit(r.limiter, ratelimitservice.ReportPolicy, messages.ReportRateLimit),
		handler.SubmitReport,
	)
	r.api.POST("/vote",
		middleware.RateLimit(r.limiter, ratelimitservice.ReportVotePolicy, messages.ReportVoteRateLimit),
		handler.VoteReport,
	)
}

// Register the admin routes, not rate limited.
func (r *Router) registerAdminHandler(handler *handlers.AdminHandler) {
	admin := r.api.Group("/admin", handler.RequireAdmin)
	{
		admin.PUT("/expert-report", handler.UpsertExpertReport)
	}
}

// Engine exposes the gin engine, for serving and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
