package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
)

func TestSearchTerm(t *testing.T) {
	assert.Equal(t, "*", searchTerm(repositories.SchoolQuery{}))
	assert.Equal(t, "*", searchTerm(repositories.SchoolQuery{Text: "   "}))
	assert.Equal(t, "Lincoln", searchTerm(repositories.SchoolQuery{Text: " Lincoln "}))
}

func TestSearchFilterBy(t *testing.T) {
	tests := []struct {
		name  string
		query repositories.SchoolQuery
		want  string
	}{
		{
			name:  "unfiltered keeps only the active guard",
			query: repositories.SchoolQuery{},
			want:  "is_active:=true",
		},
		{
			name:  "single type",
			query: repositories.SchoolQuery{Types: []string{"public"}},
			want:  "is_active:=true && school_type:=[public]",
		},
		{
			name:  "multiple types",
			query: repositories.SchoolQuery{Types: []string{"public", "charter"}},
			want:  "is_active:=true && school_type:=[public,charter]",
		},
		{
			name:  "grade level and minimum rating",
			query: repositories.SchoolQuery{GradeLevel: "9-12", MinRating: 4},
			want:  "is_active:=true && grade_levels:9-12 && overall_rating:>=4",
		},
		{
			name:  "fractional minimum rating",
			query: repositories.SchoolQuery{MinRating: 3.5},
			want:  "is_active:=true && overall_rating:>=3.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchFilterBy(tt.query))
		})
	}
}

func TestSearchSortBy(t *testing.T) {
	assert.Equal(t, "overall_rating:desc", searchSortBy(repositories.SortByRating))
	assert.Equal(t, "total_reviews:desc", searchSortBy(repositories.SortByReviews))
	assert.Equal(t, "name:asc", searchSortBy(repositories.SortByName))

	// Anything unrecognized falls back to rating order.
	assert.Equal(t, "overall_rating:desc", searchSortBy(repositories.SortOption("bogus")))
	assert.Equal(t, "overall_rating:desc", searchSortBy(repositories.SortOption("")))
}

func TestDocumentToSchool(t *testing.T) {
	doc := map[string]interface{}{
		"id":             "sch-1",
		"name":           "Lincoln High School",
		"city":           "Springfield",
		"street":         "1 Main St",
		"state":          "IL",
		"school_type":    "public",
		"grade_levels":   "9-12",
		"overall_rating": 4.5,
		"total_reviews":  float64(120),
		"is_active":      true,
		"created_at":     float64(1700000000),
	}

	school := documentToSchool(doc)
	assert.Equal(t, "sch-1", school.ID)
	assert.Equal(t, "Springfield", school.Address.City)
	assert.Equal(t, 4.5, school.Ratings.Overall)
	assert.Equal(t, 120, school.TotalReviews)
	assert.True(t, school.IsActive)
}

func TestDocumentToSchoolSparseDocument(t *testing.T) {
	school := documentToSchool(map[string]interface{}{"id": "sch-2"})
	assert.Equal(t, "sch-2", school.ID)
	assert.Zero(t, school.Ratings.Overall)
	assert.Empty(t, school.Name)
	assert.False(t, school.IsActive)
}
