package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/providers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/debounce"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

// DefaultSyncDebounce is the quiet period before a changed school is
// reindexed. Bursts of events for the same school collapse into one
// reindex.
const DefaultSyncDebounce = 2 * time.Second

// IndexSyncService keeps the search index consistent with the record store
// by listening to school events and reindexing after a debounce window.
type IndexSyncService struct {
	repo       repositories.SchoolRepository
	searchRepo repositories.SchoolSearchRepository
	eventBus   providers.EventBus
	pending    *debounce.Group
}

// NewIndexSyncService creates a new index sync service
func NewIndexSyncService(
	repo repositories.SchoolRepository,
	searchRepo repositories.SchoolSearchRepository,
	eventBus providers.EventBus,
) *IndexSyncService {
	return &IndexSyncService{
		repo:       repo,
		searchRepo: searchRepo,
		eventBus:   eventBus,
		pending:    debounce.NewGroup(DefaultSyncDebounce),
	}
}

// Start subscribes to school events and processes them until ctx is done.
func (s *IndexSyncService) Start(ctx context.Context) error {
	events, err := s.eventBus.Subscribe(ctx, providers.EventChannelSchoolUpdates)
	if err != nil {
		return err
	}

	go func() {
		defer s.pending.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				s.handle(event)
			}
		}
	}()

	log.Info().Msg("index sync service started")
	return nil
}

func (s *IndexSyncService) handle(event *entities.SchoolEvent) {
	if event == nil {
		return
	}
	schoolID := event.SchoolID

	switch event.EventType {
	case entities.SchoolEventTypeDeleted:
		// Deletions skip the debounce; a stale hit is worse than an
		// extra index call.
		if err := s.searchRepo.Delete(context.Background(), schoolID); err != nil {
			log.Warn().Err(err).Str("school_id", schoolID).Msg("failed to drop school from index")
		}
	default:
		s.pending.Trigger(schoolID, func() {
			s.reindex(schoolID)
		})
	}
}

func (s *IndexSyncService) reindex(schoolID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	school, err := s.repo.GetByID(ctx, schoolID)
	if apperrors.IsNotFound(err) {
		// Deleted between event and flush.
		if err := s.searchRepo.Delete(ctx, schoolID); err != nil {
			log.Warn().Err(err).Str("school_id", schoolID).Msg("failed to drop school from index")
		}
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("school_id", schoolID).Msg("failed to load school for reindex")
		return
	}

	if err := s.searchRepo.Index(ctx, school); err != nil {
		log.Warn().Err(err).Str("school_id", schoolID).Msg("failed to reindex school")
		return
	}
	log.Debug().Str("school_id", schoolID).Msg("school reindexed")
}
