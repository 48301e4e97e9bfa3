package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/providers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
)

// CachedSchoolAdapter wraps a SchoolRepository with cache-aside reads and
// write-through invalidation
type CachedSchoolAdapter struct {
	adapter repositories.SchoolRepository
	cache   providers.CacheProvider
}

// NewCachedSchoolAdapter creates a new cached school adapter
func NewCachedSchoolAdapter(adapter repositories.SchoolRepository, cache providers.CacheProvider) repositories.SchoolRepository {
	return &CachedSchoolAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	schoolByIDTTL  = 300 // 5 minutes for a single school
	schoolsListTTL = 120 // 2 minutes for query results
)

const schoolsListPrefix = "schools:list:"

func schoolCacheKey(id string) string {
	return fmt.Sprintf("school:%s", id)
}

func schoolsListCacheKey(q repositories.SchoolQuery) string {
	// The query struct is small and deterministic, so its JSON form is a
	// stable cache key.
	data, _ := json.Marshal(q)
	return schoolsListPrefix + string(data)
}

// GetByID retrieves a school by ID with caching
func (a *CachedSchoolAdapter) GetByID(ctx context.Context, id string) (*entities.School, error) {
	cacheKey := schoolCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var school entities.School
		unmarshalErr := json.Unmarshal(cached, &school)
		if unmarshalErr == nil {
			return &school, nil
		}
		log.Warn().Err(unmarshalErr).Str("school_id", id).Msg("failed to unmarshal cached school")
	}

	school, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(school); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, schoolByIDTTL); err != nil {
				log.Warn().Err(err).Str("school_id", id).Msg("failed to cache school")
			}
		}
	}()

	return school, nil
}

// GetByIDs retrieves multiple schools by IDs with batch caching. Order of
// the returned slice follows the requested IDs, cached or not.
func (a *CachedSchoolAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.School, error) {
	if len(ids) == 0 {
		return []*entities.School{}, nil
	}

	cacheKeys := make([]string, len(ids))
	for i, id := range ids {
		cacheKeys[i] = schoolCacheKey(id)
	}

	cached, _ := a.cache.GetMulti(ctx, cacheKeys)

	byID := make(map[string]*entities.School, len(ids))
	missingIDs := make([]string, 0)

	for i, id := range ids {
		if data, ok := cached[cacheKeys[i]]; ok {
			var school entities.School
			if err := json.Unmarshal(data, &school); err == nil {
				byID[id] = &school
				continue
			}
		}
		missingIDs = append(missingIDs, id)
	}

	if len(missingIDs) > 0 {
		dbSchools, err := a.adapter.GetByIDs(ctx, missingIDs)
		if err != nil {
			return nil, err
		}
		for _, school := range dbSchools {
			byID[school.ID] = school
		}

		// Backfill the cache in one batch write
		go func() {
			bgCtx := context.Background()
			items := make(map[string][]byte)
			for _, school := range dbSchools {
				if data, err := json.Marshal(school); err == nil {
					items[schoolCacheKey(school.ID)] = data
				}
			}
			if len(items) > 0 {
				if err := a.cache.SetMulti(bgCtx, items, schoolByIDTTL); err != nil {
					log.Warn().Err(err).Msg("failed to batch cache schools")
				}
			}
		}()
	}

	schools := make([]*entities.School, 0, len(ids))
	for _, id := range ids {
		if school, ok := byID[id]; ok {
			schools = append(schools, school)
		}
	}
	return schools, nil
}

// List retrieves schools matching a query with caching
func (a *CachedSchoolAdapter) List(ctx context.Context, q repositories.SchoolQuery) ([]*entities.School, error) {
	cacheKey := schoolsListCacheKey(q)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var schools []*entities.School
		unmarshalErr := json.Unmarshal(cached, &schools)
		if unmarshalErr == nil {
			return schools, nil
		}
		log.Warn().Err(unmarshalErr).Msg("failed to unmarshal cached school list")
	}

	schools, err := a.adapter.List(ctx, q)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(schools); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, schoolsListTTL); err != nil {
				log.Warn().Err(err).Msg("failed to cache school list")
			}
		}
	}()

	return schools, nil
}

// Create creates a school and invalidates list caches
func (a *CachedSchoolAdapter) Create(ctx context.Context, school *entities.School) error {
	if err := a.adapter.Create(ctx, school); err != nil {
		return err
	}
	go a.invalidateLists()
	return nil
}

// Update updates a school and invalidates its caches
func (a *CachedSchoolAdapter) Update(ctx context.Context, school *entities.School) error {
	if err := a.adapter.Update(ctx, school); err != nil {
		return err
	}
	go a.invalidateSchool(school.ID)
	return nil
}

// Delete deletes a school and invalidates its caches
func (a *CachedSchoolAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	go a.invalidateSchool(id)
	return nil
}

func (a *CachedSchoolAdapter) invalidateSchool(id string) {
	bgCtx := context.Background()
	if err := a.cache.Delete(bgCtx, schoolCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("school_id", id).Msg("failed to invalidate school cache")
	}
	a.invalidateLists()
}

func (a *CachedSchoolAdapter) invalidateLists() {
	bgCtx := context.Background()
	if err := a.cache.DeletePattern(bgCtx, schoolsListPrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate school list caches")
	}
}
