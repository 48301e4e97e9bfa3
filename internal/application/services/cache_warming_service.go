package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/providers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
)

const warmedSchoolTTL = 300 // seconds

// CacheWarmingService preloads the cache with the schools most likely to be
// requested first: the top-rated directory page.
type CacheWarmingService struct {
	repo  repositories.SchoolRepository
	cache providers.CacheProvider
}

// NewCacheWarmingService creates a new cache warming service
func NewCacheWarmingService(
	repo repositories.SchoolRepository,
	cache providers.CacheProvider,
) *CacheWarmingService {
	return &CacheWarmingService{
		repo:  repo,
		cache: cache,
	}
}

// WarmCache fetches the default directory page and caches each school
// individually, so the first wave of detail-page requests hits warm keys.
func (s *CacheWarmingService) WarmCache(ctx context.Context) error {
	schools, err := s.repo.List(ctx, repositories.SchoolQuery{
		SortBy: repositories.SortByRating,
		Limit:  repositories.DefaultSearchLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch schools for warming: %w", err)
	}

	items := make(map[string][]byte, len(schools))
	for _, school := range schools {
		data, err := json.Marshal(school)
		if err != nil {
			log.Warn().Err(err).Str("school_id", school.ID).Msg("failed to marshal school for warming")
			continue
		}
		items[fmt.Sprintf("school:%s", school.ID)] = data
	}

	if len(items) > 0 {
		if err := s.cache.SetMulti(ctx, items, warmedSchoolTTL); err != nil {
			return fmt.Errorf("failed to warm school cache: %w", err)
		}
	}

	log.Info().Int("schools", len(items)).Msg("cache warming completed")
	return nil
}

// StartPeriodicWarming re-warms the cache on the given interval until ctx
// is done. The initial warm runs immediately.
func (s *CacheWarmingService) StartPeriodicWarming(ctx context.Context, interval time.Duration) {
	go func() {
		if err := s.WarmCache(ctx); err != nil {
			log.Warn().Err(err).Msg("initial cache warming failed")
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.WarmCache(ctx); err != nil {
					log.Warn().Err(err).Msg("periodic cache warming failed")
				}
			}
		}
	}()
}
