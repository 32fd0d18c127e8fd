package main

import (
	"context"
	"draftroom/api/cache"
	"draftroom/api/modules"
	"draftroom/api/routes"
	"draftroom/pkg/config"
	"draftroom/pkg/database"
	"draftroom/pkg/logger"
	"draftroom/pkg/metrics"
	"draftroom/pkg/moderation"
	"draftroom/pkg/redis"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't load the configuration: %v", err)
	}

	appLog := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}).Named("api")

	if err := run(cfg, appLog); err != nil {
		appLog.Error(context.Background(), "api stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLog logger.Logger) error {
	ctx := context.Background()

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		appLog.Debug(ctx, fmt.Sprintf(format, args...))
	})); err != nil {
		appLog.Warn(ctx, "couldn't set GOMAXPROCS", logger.Err(err))
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(cfg.Database, db); err != nil {
		return err
	}

	deps := &modules.ModuleDependencies{
		DB:            db,
		Logger:        appLog,
		Metrics:       metrics.New(),
		AdminPassword: cfg.Admin.Password,
	}

	deps.Gate, err = moderation.NewGateFromConfig(cfg.Moderation)
	if err != nil {
		return err
	}

	// Without Redis the counters live in process, which is only correct for a single instance.
	if cfg.Redis.Enabled() {
		redisClient, err := redis.NewClient(cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		deps.CounterStore = redisClient
		deps.Redis = redisClient
	} else {
		memCache := cache.NewMemCache()
		defer memCache.Close()

		deps.CounterStore = cache.NewCounterStore(memCache)
		appLog.Warn(ctx, "redis not configured, using the in-process counter store")
	}

	if cfg.Environment != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	module := modules.NewModule(deps)

	router := routes.NewRouter(module.Router, module.RateLimiter)
	router.SetupRoutes(module.Handlers()...)

	grpcServer, healthServer, err := startGRPCServer(cfg.Server.GrpcAddr, appLog)
	if err != nil {
		return fmt.Errorf("couldn't start the gRPC server: %w", err)
	}
	defer grpcServer.GracefulStop()

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.Engine(),
	}

	serverErr := make(chan error, 1)
	go func() {
		appLog.Info(ctx, "running http server", logger.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	return handleShutdown(server, healthServer, serverErr, cfg.Server, appLog)
}

// Handle the shutdown of the whole server.
func handleShutdown(
	server *http.Server,
	healthServer *health.Server,
	serverErr <-chan error,
	cfg config.ServerConfiguration,
	appLog logger.Logger,
) error {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	case <-signalCtx.Done():
	}

	// Stop receiving traffic from the orchestrator first.
	healthServer.SetServingStatus(healthServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	appLog.Info(context.Background(), "shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("couldn't shut down the http server: %w", err)
	}

	return nil
}
