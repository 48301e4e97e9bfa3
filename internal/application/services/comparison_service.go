package services

import (
	"context"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

// ComparisonResult is the side-by-side view of up to MaxCompare schools.
// Highlights maps each rating dimension to the ids of the schools holding
// that dimension's maximum; ties list every holder.
type ComparisonResult struct {
	Schools    []*entities.School              `json:"schools"`
	Highlights map[entities.Dimension][]string `json:"highlights"`
}

// ComparisonService builds side-by-side school comparisons
type ComparisonService struct {
	repo repositories.SchoolRepository
}

// NewComparisonService creates a new comparison service
func NewComparisonService(repo repositories.SchoolRepository) *ComparisonService {
	return &ComparisonService{repo: repo}
}

// Compare fetches the requested schools and computes per-dimension
// highlights. Duplicate ids collapse to their first occurrence, ids beyond
// the comparison cap are ignored, and the result preserves request order.
// Ids that resolve to no school are silently dropped; a request resolving
// to nothing at all is a validation error.
func (s *ComparisonService) Compare(ctx context.Context, ids []string) (*ComparisonResult, error) {
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("no school ids to compare")
	}

	schools, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.School, len(schools))
	for _, school := range schools {
		byID[school.ID] = school
	}

	set := entities.NewComparisonSet()
	for _, id := range ids {
		if school, ok := byID[id]; ok {
			set.Add(school)
		}
	}
	if set.Len() == 0 {
		return nil, apperrors.NewNotFoundError("none of the requested schools exist")
	}

	highlights := make(map[entities.Dimension][]string, len(entities.Dimensions()))
	for _, dim := range entities.Dimensions() {
		highlights[dim] = set.HighlightedIDs(dim)
	}

	return &ComparisonResult{
		Schools:    set.Schools(),
		Highlights: highlights,
	}, nil
}
