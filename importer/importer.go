package main

import (
	"context"
	"draftroom/pkg/config"
	"draftroom/pkg/database"
	"draftroom/pkg/logger"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"gorm.io/gorm"
)

const programName = "draftroom-importer"

// runtime is what every subcommand needs once the environment is loaded.
type runtime struct {
	cfg *config.Config
	log logger.Logger
	db  *gorm.DB
}

func commonRun() (*runtime, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the configuration: %w", err)
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}).Named("importer")

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		log.Debug(context.Background(), fmt.Sprintf(format, args...))
	})); err != nil {
		log.Warn(context.Background(), "couldn't set GOMAXPROCS", logger.Err(err))
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(cfg.Database, db); err != nil {
		database.Close(db)
		return nil, err
	}

	return &runtime{cfg: cfg, log: log, db: db}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Manage the prospect catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		importCommand(),
		reconcileCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
