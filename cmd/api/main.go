package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/cache"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/database"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/events"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/search"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/handlers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/middleware"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/routes"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/application/services"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/providers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/observability"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/config"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/secrets"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Vault runs before config.Load so fetched secrets land in the env the
	// config reads from.
	vaultCtx, vaultCancel := context.WithTimeout(context.Background(), 10*time.Second)
	vaultResult, err := secrets.ApplyVaultSecrets(vaultCtx, secrets.LoadVaultConfigFromEnv(""))
	vaultCancel()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load secrets from Vault")
	} else if vaultResult.Enabled {
		log.Info().Int("loaded", vaultResult.Loaded).Int("skipped", vaultResult.Skipped).
			Str("path", vaultResult.Path).Msg("Vault secrets applied")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("school-directory-api", cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Warn().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Redis and Typesense are optional: without them the directory still
	// serves, uncached and database-backed.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized")
	}

	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("Typesense unavailable, search served from database")
		typesenseClient = nil
	} else {
		log.Info().Msg("Typesense client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("event bus initialized")
	}

	baseSchoolAdapter := database.NewSchoolAdapter(pgClient)
	var schoolRepo repositories.SchoolRepository
	if cacheProvider != nil {
		schoolRepo = database.NewCachedSchoolAdapter(baseSchoolAdapter, cacheProvider)
		log.Info().Msg("school adapter wrapped with caching layer")
	} else {
		schoolRepo = baseSchoolAdapter
	}

	reviewRepo := database.NewReviewAdapter(pgClient)

	var searchRepo repositories.SchoolSearchRepository
	if typesenseClient != nil {
		if err := typesenseClient.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to init Typesense schema")
		}
		searchRepo = search.NewTypesenseAdapter(typesenseClient)
	}

	schoolService := services.NewSchoolService(schoolRepo, searchRepo, eventBus)
	reviewService := services.NewReviewService(reviewRepo, schoolRepo, eventBus)
	comparisonService := services.NewComparisonService(schoolRepo)

	if searchRepo != nil && eventBus != nil {
		indexSync := services.NewIndexSyncService(baseSchoolAdapter, searchRepo, eventBus)
		if err := indexSync.Start(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to start index sync service")
		}
	}

	if cacheProvider != nil {
		warming := services.NewCacheWarmingService(schoolRepo, cacheProvider)
		warming.StartPeriodicWarming(ctx, 5*time.Minute)
		log.Info().Msg("cache warming service started")
	}

	authMiddleware := middleware.NewAuthMiddleware(&cfg.Auth)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	router := routes.NewRouter(
		handlers.NewSchoolHandler(schoolService),
		handlers.NewReviewHandler(reviewService),
		handlers.NewCompareHandler(comparisonService),
		handlers.NewStateHandler(),
		handlers.NewAuthHandler(),
		authMiddleware,
		cacheMiddleware,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("error during server shutdown")
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing event bus")
		}
	}

	log.Info().Msg("server stopped")
}
