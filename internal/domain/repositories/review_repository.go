package repositories

import (
	"context"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
)

// ReviewListLimit caps a single review page.
const ReviewListLimit = 50

// ReviewRepository defines the interface for review operations. The public
// API exposes only the read path; Create exists for seeding and the
// externally owned aggregation pipeline.
type ReviewRepository interface {
	// Create creates a new review
	Create(ctx context.Context, review *entities.Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*entities.Review, error)

	// ListBySchool retrieves reviews for a school, newest first. The page
	// starts offset rows in and holds at most limit rows, capped at
	// ReviewListLimit.
	ListBySchool(ctx context.Context, schoolID string, limit, offset int) ([]*entities.Review, error)
}
