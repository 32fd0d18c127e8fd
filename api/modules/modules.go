package modules

import (
	"draftroom/api/handlers"
	"draftroom/api/middleware"
	ratelimitservice "draftroom/api/services/ratelimit"
	"draftroom/pkg/logger"
	"draftroom/pkg/metrics"
	"draftroom/pkg/moderation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies are the shared resources every module is built from.
type ModuleDependencies struct {
	DB            *gorm.DB
	Logger        logger.Logger
	Metrics       *metrics.Metrics
	Gate          *moderation.Gate
	CounterStore  ratelimitservice.CounterStore
	Redis         handlers.Pinger
	AdminPassword string
}

// Module containing the necessary handlers.
type Module struct {
	Router      *gin.Engine
	RateLimiter *ratelimitservice.RateLimitService

	PlayerHandler *handlers.PlayerHandler
	ReportHandler *handlers.ReportHandler
	AdminHandler  *handlers.AdminHandler
	HealthHandler *handlers.HealthHandler
	Metrics       *metrics.Metrics
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(deps.Logger.Named("http")),
		middleware.Metrics(deps.Metrics),
	)

	services := initializeServices(deps)

	return &Module{
		Router:        router,
		RateLimiter:   initializeRateLimiter(deps),
		PlayerHandler: initializePlayerHandler(deps, services),
		ReportHandler: initializeReportHandler(deps, services),
		AdminHandler:  initializeAdminHandler(deps),
		HealthHandler: handlers.NewHealthHandler(&handlers.HealthHandlerDependencies{
			DB:    deps.DB,
			Redis: deps.Redis,
		}),
		Metrics: deps.Metrics,
	}
}

// Handlers returns every handler to register on the router.
func (m *Module) Handlers() []any {
	return []any{m.PlayerHandler, m.ReportHandler, m.AdminHandler, m.HealthHandler, m.Metrics}
}

func initializeRateLimiter(deps *ModuleDependencies) *ratelimitservice.RateLimitService {
	return ratelimitservice.NewRateLimitService(&ratelimitservice.RateLimitServiceDeps{
		Store:   deps.CounterStore,
		Logger:  deps.Logger.Named("ratelimit"),
		Metrics: deps.Metrics,
	})
}
