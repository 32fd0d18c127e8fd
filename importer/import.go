package main

import (
	"context"
	playerrepo "draftroom/api/repositories/player"
	"draftroom/importer/prospects"
	"draftroom/pkg/database"
	"draftroom/pkg/logger"
	"draftroom/pkg/storage"
	"fmt"

	"github.com/spf13/cobra"
)

type importOptions struct {
	source  string
	logos   bool
	replace bool
}

// importDeps are the collaborators of an import run.
type importDeps struct {
	players playerrepo.PlayerRepository
	objects prospects.ObjectGetter
	logos   prospects.LogoFinder
	log     logger.Logger
}

// runImport loads the export and writes it to the catalog, returning the number of players saved.
func runImport(ctx context.Context, opts importOptions, deps importDeps) (int, error) {
	rc, err := prospects.Open(ctx, opts.source, deps.objects)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	file, err := prospects.Parse(rc)
	if err != nil {
		return 0, err
	}
	deps.log.Info(ctx, "prospects loaded", logger.String("source", opts.source), logger.Int("count", len(file.Prospects)))

	var finder prospects.LogoFinder
	if opts.logos {
		finder = deps.logos
	}

	players, err := prospects.ToPlayers(ctx, file, finder)
	if err != nil {
		return 0, err
	}

	if opts.replace {
		if err := deps.players.DeleteAll(ctx); err != nil {
			return 0, err
		}
		deps.log.Warn(ctx, "catalog cleared")
	}

	if err := deps.players.UpsertBySlug(ctx, players); err != nil {
		return 0, err
	}

	return len(players), nil
}

func importCommand() *cobra.Command {
	opts := importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import prospects from a JSON export (local path or s3://bucket/key)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := commonRun()
			if err != nil {
				return err
			}
			defer database.Close(rt.db)

			deps := importDeps{
				players: playerrepo.NewPlayerRepository(rt.db),
				log:     rt.log,
			}
			if _, _, ok := storage.ParseS3URI(opts.source); ok {
				deps.objects = storage.NewS3Client(rt.cfg.Bucket)
			}

			resolver := prospects.NewLogoResolver()
			if opts.logos {
				deps.logos = resolver
			}

			count, err := runImport(cmd.Context(), opts, deps)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			rt.log.Info(cmd.Context(), "import finished",
				logger.Int("players", count),
				logger.Int("logos", resolver.Hits()),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "", "path or s3://bucket/key of the prospect export")
	cmd.Flags().BoolVar(&opts.logos, "logos", false, "look up the school logos on the CDN")
	cmd.Flags().BoolVar(&opts.replace, "replace", false, "clear players, reports and votes before importing")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
