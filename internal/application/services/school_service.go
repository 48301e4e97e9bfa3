package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/providers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
)

// SchoolService handles business logic for schools
type SchoolService struct {
	repo       repositories.SchoolRepository
	searchRepo repositories.SchoolSearchRepository
	eventBus   providers.EventBus
}

// NewSchoolService creates a new school service. searchRepo and eventBus may
// be nil; the service degrades to database-only operation without them.
func NewSchoolService(
	repo repositories.SchoolRepository,
	searchRepo repositories.SchoolSearchRepository,
	eventBus providers.EventBus,
) *SchoolService {
	return &SchoolService{
		repo:       repo,
		searchRepo: searchRepo,
		eventBus:   eventBus,
	}
}

// Create creates a new school, indexes it, and announces the change
func (s *SchoolService) Create(ctx context.Context, school *entities.School) error {
	if err := s.repo.Create(ctx, school); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, school); err != nil {
			// Eventual consistency: the index sync picks this up later.
			log.Warn().Err(err).Str("school_id", school.ID).Msg("failed to index school")
		}
	}

	s.publish(ctx, entities.NewSchoolEvent(school.ID, entities.SchoolEventTypeCreated))
	return nil
}

// GetByID retrieves a school by ID
func (s *SchoolService) GetByID(ctx context.Context, id string) (*entities.School, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates a school, refreshes the index, and announces the change
func (s *SchoolService) Update(ctx context.Context, school *entities.School) error {
	if err := s.repo.Update(ctx, school); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, school); err != nil {
			log.Warn().Err(err).Str("school_id", school.ID).Msg("failed to refresh school index")
		}
	}

	s.publish(ctx, entities.NewSchoolEvent(school.ID, entities.SchoolEventTypeUpdated))
	return nil
}

// Delete deletes a school, drops it from the index, and announces the change
func (s *SchoolService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Str("school_id", id).Msg("failed to remove school from index")
		}
	}

	s.publish(ctx, entities.NewSchoolEvent(id, entities.SchoolEventTypeDeleted))
	return nil
}

// Search answers a declarative query from the search engine when one is
// wired, falling back to the record store otherwise or when the engine
// fails mid-request.
func (s *SchoolService) Search(ctx context.Context, q repositories.SchoolQuery) ([]*entities.School, error) {
	if s.searchRepo != nil {
		schools, err := s.searchRepo.Search(ctx, q)
		if err == nil {
			return schools, nil
		}
		log.Warn().Err(err).Msg("search engine unavailable, falling back to database")
	}
	return s.repo.List(ctx, q)
}

// List answers a declarative query from the record store directly
func (s *SchoolService) List(ctx context.Context, q repositories.SchoolQuery) ([]*entities.School, error) {
	return s.repo.List(ctx, q)
}

// Suggest returns a short name-first candidate list for the given term,
// used by the compare page's add box. An empty term yields no suggestions
// rather than the whole directory.
func (s *SchoolService) Suggest(ctx context.Context, text string) ([]*entities.School, error) {
	q := BuildSchoolQuery(SearchRequest{
		Text:   text,
		SortBy: string(repositories.SortByName),
		Limit:  repositories.SuggestLimit,
	})
	if q.Text == "" {
		return []*entities.School{}, nil
	}
	return s.Search(ctx, q)
}

// publish fans the event out to the directory-wide channel and the
// per-school channel. Per-school subscribers include SSE streams.
func (s *SchoolService) publish(ctx context.Context, event *entities.SchoolEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelSchoolUpdates, event); err != nil {
		log.Warn().Err(err).Str("school_id", event.SchoolID).Msg("failed to publish school event")
	}
	if err := s.eventBus.Publish(ctx, providers.GetSchoolChannel(event.SchoolID), event); err != nil {
		log.Warn().Err(err).Str("school_id", event.SchoolID).Msg("failed to publish school event")
	}
}
