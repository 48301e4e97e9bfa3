package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/providers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

// ReviewService handles business logic for reviews
type ReviewService struct {
	reviews  repositories.ReviewRepository
	schools  repositories.SchoolRepository
	eventBus providers.EventBus
}

// NewReviewService creates a new review service
func NewReviewService(
	reviews repositories.ReviewRepository,
	schools repositories.SchoolRepository,
	eventBus providers.EventBus,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		schools:  schools,
		eventBus: eventBus,
	}
}

// ListBySchool returns the most recent reviews for a school. The school
// must exist; an unknown id is a not-found error rather than an empty list
// so callers can distinguish "no reviews yet" from "no such school".
func (s *ReviewService) ListBySchool(ctx context.Context, schoolID string, limit, offset int) ([]*entities.Review, error) {
	if _, err := s.schools.GetByID(ctx, schoolID); err != nil {
		return nil, err
	}
	return s.reviews.ListBySchool(ctx, schoolID, limit, offset)
}

// GetByID retrieves a review by ID
func (s *ReviewService) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// Create persists a review and announces the ratings change. This path is
// exercised by seeding and ingestion, not by the public API.
func (s *ReviewService) Create(ctx context.Context, review *entities.Review) error {
	if review.SchoolID == "" {
		return apperrors.NewValidationError("review requires a school id")
	}
	if _, err := s.schools.GetByID(ctx, review.SchoolID); err != nil {
		return err
	}

	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return err
	}

	if s.eventBus != nil {
		event := entities.NewSchoolEvent(review.SchoolID, entities.SchoolEventTypeRatingsUpdate)
		if err := s.eventBus.Publish(ctx, providers.EventChannelSchoolUpdates, event); err != nil {
			log.Warn().Err(err).Str("school_id", review.SchoolID).Msg("failed to publish ratings event")
		}
		if err := s.eventBus.Publish(ctx, providers.GetSchoolChannel(review.SchoolID), event); err != nil {
			log.Warn().Err(err).Str("school_id", review.SchoolID).Msg("failed to publish ratings event")
		}
	}
	return nil
}
