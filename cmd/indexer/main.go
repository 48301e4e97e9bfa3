package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/database"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/search"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/observability"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/config"
)

// The indexer backfills the Typesense collection from the record store. Run
// once after seeding, or on an interval to repair drift.
func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete the existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	_ = godotenv.Load()
	observability.InitLogger("school-directory-indexer", os.Getenv("ENV"))

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		parsed, err := time.ParseDuration(intervalValue)
		if err != nil || parsed <= 0 {
			log.Fatal().Str("interval", intervalValue).Msg("invalid reindex interval")
		}
		interval = parsed
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, reset); err != nil {
			log.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("indexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	if reset {
		if _, err := tsClient.Client().Collection(typesense.SchoolsCollection).Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to delete collection, continuing")
		}
	}
	if err := tsClient.InitSchema(ctx); err != nil {
		return err
	}

	schoolRepo := database.NewSchoolAdapter(pgClient)
	searchRepo := search.NewTypesenseAdapter(tsClient)

	schools, err := schoolRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	indexed := 0
	for _, school := range schools {
		if err := searchRepo.Index(ctx, school); err != nil {
			log.Warn().Err(err).Str("school_id", school.ID).Msg("failed to index school")
			continue
		}
		indexed++
	}

	log.Info().Int("indexed", indexed).Int("total", len(schools)).Msg("backfill finished")
	return nil
}
