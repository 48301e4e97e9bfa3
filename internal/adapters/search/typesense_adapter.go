package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	tsclient "github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/typesense"
)

// queryByFields is the text disjunction: a term matches when it appears in
// the name, city, or street address.
const queryByFields = "name,city,street"

// TypesenseAdapter implements school search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.SchoolSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// Index upserts a school into the index
func (a *TypesenseAdapter) Index(ctx context.Context, school *entities.School) error {
	document := map[string]interface{}{
		"id":                      school.ID,
		"name":                    school.Name,
		"street":                  school.Address.Street,
		"city":                    school.Address.City,
		"state":                   school.Address.State,
		"school_type":             school.SchoolType,
		"grade_levels":            school.GradeLevels,
		"overall_rating":          school.Ratings.Overall,
		"academics_rating":        school.Ratings.Academics,
		"facilities_rating":       school.Ratings.Facilities,
		"teachers_rating":         school.Ratings.Teachers,
		"safety_rating":           school.Ratings.Safety,
		"extracurriculars_rating": school.Ratings.Extracurriculars,
		"total_reviews":           school.TotalReviews,
		"is_active":               school.IsActive,
		"created_at":              school.CreatedAt.Unix(),
	}

	_, err := a.client.Client().Collection(tsclient.SchoolsCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index school: %w", err)
	}
	return nil
}

// Delete removes a school from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.SchoolsCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete school from index: %w", err)
	}
	return nil
}

// Search searches schools matching the declarative query
func (a *TypesenseAdapter) Search(ctx context.Context, q repositories.SchoolQuery) ([]*entities.School, error) {
	limit := q.Limit
	if limit <= 0 || limit > repositories.DefaultSearchLimit {
		limit = repositories.DefaultSearchLimit
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(searchTerm(q)),
		QueryBy: pointer.String(queryByFields),
		Infix:   pointer.String("always,always,always"),
		SortBy:  pointer.String(searchSortBy(q.SortBy)),
		PerPage: pointer.Int(limit),
	}
	if filterBy := searchFilterBy(q); filterBy != "" {
		searchParams.FilterBy = pointer.String(filterBy)
	}

	result, err := a.client.Client().Collection(tsclient.SchoolsCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search schools: %w", err)
	}

	schools := []*entities.School{}
	if result.Hits == nil {
		return schools, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		schools = append(schools, documentToSchool(*hit.Document))
	}
	return schools, nil
}

// searchTerm maps an empty text to the match-all query.
func searchTerm(q repositories.SchoolQuery) string {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return "*"
	}
	return text
}

// searchFilterBy composes the filter_by expression from the query's
// non-zero predicates. An unconstrained query yields only the is_active
// guard.
func searchFilterBy(q repositories.SchoolQuery) string {
	clauses := []string{"is_active:=true"}

	if len(q.Types) > 0 {
		clauses = append(clauses, fmt.Sprintf("school_type:=[%s]", strings.Join(q.Types, ",")))
	}
	if q.GradeLevel != "" {
		// Typesense string filters match whole values, not substrings, so
		// this clause only matches schools whose grade_levels field equals
		// the selected label. The database path matches by substring; the
		// two agree as long as labels are stored exactly as filtered.
		clauses = append(clauses, fmt.Sprintf("grade_levels:%s", q.GradeLevel))
	}
	if q.MinRating > 0 {
		clauses = append(clauses, fmt.Sprintf("overall_rating:>=%g", q.MinRating))
	}

	return strings.Join(clauses, " && ")
}

// searchSortBy maps a sort option to a sort_by expression, with the same
// rating-descending fallback the record store applies.
func searchSortBy(sortBy repositories.SortOption) string {
	switch sortBy {
	case repositories.SortByName:
		return "name:asc"
	case repositories.SortByReviews:
		return "total_reviews:desc"
	default:
		return "overall_rating:desc"
	}
}

// documentToSchool rebuilds a school entity from an index document. Every
// field is read with a safe cast so a sparse document degrades to zero
// values instead of panicking.
func documentToSchool(doc map[string]interface{}) *entities.School {
	school := &entities.School{}

	school.ID, _ = doc["id"].(string)
	school.Name, _ = doc["name"].(string)
	school.Address.Street, _ = doc["street"].(string)
	school.Address.City, _ = doc["city"].(string)
	school.Address.State, _ = doc["state"].(string)
	school.SchoolType, _ = doc["school_type"].(string)
	school.GradeLevels, _ = doc["grade_levels"].(string)
	school.IsActive, _ = doc["is_active"].(bool)

	school.Ratings = entities.Ratings{
		Overall:          docFloat(doc, "overall_rating"),
		Academics:        docFloat(doc, "academics_rating"),
		Facilities:       docFloat(doc, "facilities_rating"),
		Teachers:         docFloat(doc, "teachers_rating"),
		Safety:           docFloat(doc, "safety_rating"),
		Extracurriculars: docFloat(doc, "extracurriculars_rating"),
	}
	school.TotalReviews = int(docFloat(doc, "total_reviews"))

	if ts, ok := doc["created_at"].(float64); ok {
		school.CreatedAt = time.Unix(int64(ts), 0)
	}

	return school
}

func docFloat(doc map[string]interface{}, key string) float64 {
	v, _ := doc[key].(float64)
	return v
}
