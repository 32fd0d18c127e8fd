package main

import (
	"context"
	reportservice "draftroom/api/services/report"
	"draftroom/pkg/config"
	"draftroom/pkg/database"
	"draftroom/pkg/logger"
	"draftroom/pkg/storage"
	"draftroom/scheduler/jobs"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	if os.Getenv("ENVIRONMENT") != "docker" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	// Log lines are mirrored into a file that is shipped to the bucket.
	logFile, err := logger.CreateLogFile()
	if err != nil {
		log.Fatalf("Couldn't create the log file: %v", err)
	}
	defer logFile.Close()

	schedLog := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: io.MultiWriter(os.Stdout, logFile),
	}).Named("scheduler")

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		schedLog.Debug(context.Background(), fmt.Sprintf(format, args...))
	})); err != nil {
		schedLog.Warn(context.Background(), "couldn't set GOMAXPROCS", logger.Err(err))
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	if err := database.Migrate(cfg.Database, db); err != nil {
		log.Fatal(err)
	}

	reportService := reportservice.NewReportService(&reportservice.ReportServiceDeps{
		DB:     db,
		Logger: schedLog.Named("reconcile"),
	})

	schedLog.Info(context.Background(), "starting scheduler")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Score reconciliation - once per day at 3:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.ReconcileScores,
			reportService,
			schedLog,
		),
		gocron.WithName("score-reconciliation"),
		gocron.WithTags("reports"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create score reconciliation job: %v", err)
	}

	// Log shipping - every hour, only when a bucket is configured.
	if cfg.Bucket.LogBucket != "" {
		_, err = s.NewJob(
			gocron.DurationJob(time.Hour),
			gocron.NewTask(
				jobs.ShipLogs,
				logFile,
				storage.NewS3Client(cfg.Bucket),
				cfg.Bucket.LogBucket,
				time.Now,
				schedLog,
			),
			gocron.WithName("log-shipping"),
			gocron.WithTags("logs"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			log.Fatalf("Failed to create log shipping job: %v", err)
		}
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		if err := s.Shutdown(); err != nil {
			schedLog.Error(context.Background(), "error shutting down scheduler", logger.Err(err))
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	schedLog.Info(context.Background(), "shutting down scheduler")
}
