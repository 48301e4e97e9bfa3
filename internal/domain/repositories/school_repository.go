package repositories

import (
	"context"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
)

// SortOption selects the ordering of a school query.
type SortOption string

const (
	// SortByRating orders by overall rating, descending.
	SortByRating SortOption = "rating"

	// SortByReviews orders by total review count, descending.
	SortByReviews SortOption = "reviews"

	// SortByName orders by name, ascending.
	SortByName SortOption = "name"
)

// Result caps per consumer. There is no pagination beyond these.
const (
	// DefaultSearchLimit caps the main search and list results.
	DefaultSearchLimit = 50

	// SuggestLimit caps the compare-add suggest box results.
	SuggestLimit = 10
)

// SchoolQuery is the declarative filter/sort/limit specification handed to
// the record store. Zero-valued fields impose no constraint; a zero query
// matches every active school. Predicates combine conjunctively, except the
// text predicate which is itself a disjunction over name, city, and street
// address, matched as a case-insensitive substring.
type SchoolQuery struct {
	// Text is the free-text search term. Empty means no text predicate.
	Text string

	// Types restricts school_type to the given set. Empty means any.
	Types []string

	// GradeLevel, when non-empty, must appear as a substring of the
	// school's grade_levels label.
	GradeLevel string

	// MinRating is the inclusive lower bound on the overall rating.
	// Zero means no bound.
	MinRating float64

	// SortBy selects the ordering. Adapters treat anything outside the
	// SortOption values as SortByRating.
	SortBy SortOption

	// Limit caps the result size. Adapters treat non-positive values as
	// DefaultSearchLimit.
	Limit int
}

// IsUnfiltered reports whether the query carries no predicate at all.
func (q SchoolQuery) IsUnfiltered() bool {
	return q.Text == "" && len(q.Types) == 0 && q.GradeLevel == "" && q.MinRating <= 0
}

// SchoolRepository defines the interface for school record operations
type SchoolRepository interface {
	// Create creates a new school
	Create(ctx context.Context, school *entities.School) error

	// GetByID retrieves a school by ID
	GetByID(ctx context.Context, id string) (*entities.School, error)

	// GetByIDs retrieves multiple schools by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.School, error)

	// Update updates a school
	Update(ctx context.Context, school *entities.School) error

	// Delete deletes a school
	Delete(ctx context.Context, id string) error

	// List retrieves schools matching the query
	List(ctx context.Context, query SchoolQuery) ([]*entities.School, error)
}

// SchoolSearchRepository defines the interface for the search engine
// (e.g. Typesense). It answers the same declarative query as the record
// store, with equivalent predicate semantics.
type SchoolSearchRepository interface {
	// Search searches schools matching the query
	Search(ctx context.Context, query SchoolQuery) ([]*entities.School, error)

	// Index upserts a school into the index
	Index(ctx context.Context, school *entities.School) error

	// Delete removes a school from the index
	Delete(ctx context.Context, id string) error
}
