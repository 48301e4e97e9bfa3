package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

const schoolsTable = "schools"

var schoolColumns = []interface{}{
	"id", "name", "street", "city", "state", "zip_code",
	"phone", "website", "description", "image_url",
	"school_type", "grade_levels",
	"overall_rating", "academics_rating", "facilities_rating",
	"teachers_rating", "safety_rating", "extracurriculars_rating",
	"total_reviews", "is_active", "created_at", "updated_at",
}

// SchoolAdapter implements the SchoolRepository interface on PostgreSQL
type SchoolAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSchoolAdapter creates a new school adapter
func NewSchoolAdapter(client *postgres.Client) *SchoolAdapter {
	return &SchoolAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new school
func (a *SchoolAdapter) Create(ctx context.Context, school *entities.School) error {
	record := goqu.Record{
		"id":                      school.ID,
		"name":                    school.Name,
		"street":                  school.Address.Street,
		"city":                    school.Address.City,
		"state":                   school.Address.State,
		"zip_code":                school.Address.ZipCode,
		"phone":                   school.Phone,
		"website":                 school.Website,
		"description":             school.Description,
		"image_url":               school.ImageURL,
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
		"created_at":              school.CreatedAt,
		"updated_at":              school.UpdatedAt,
	}

	query, args, err := a.db.Insert(schoolsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create school", err)
	}
	return nil
}

// GetByID retrieves a school by ID
func (a *SchoolAdapter) GetByID(ctx context.Context, id string) (*entities.School, error) {
	query, args, err := a.db.From(schoolsTable).
		Select(schoolColumns...).
		Where(goqu.Ex{"id": id, "is_active": true}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	school, err := scanSchool(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("school with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get school", err)
	}
	return school, nil
}

// GetByIDs retrieves multiple schools by their IDs
func (a *SchoolAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.School, error) {
	if len(ids) == 0 {
		return []*entities.School{}, nil
	}

	query, args, err := a.db.From(schoolsTable).
		Select(schoolColumns...).
		Where(goqu.C("id").In(ids), goqu.C("is_active").IsTrue()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.querySchools(ctx, query, args)
}

// Update updates a school
func (a *SchoolAdapter) Update(ctx context.Context, school *entities.School) error {
	school.UpdatedAt = time.Now()

	record := goqu.Record{
		"name":                    school.Name,
		"street":                  school.Address.Street,
		"city":                    school.Address.City,
		"state":                   school.Address.State,
		"zip_code":                school.Address.ZipCode,
		"phone":                   school.Phone,
		"website":                 school.Website,
		"description":             school.Description,
		"image_url":               school.ImageURL,
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
		"updated_at":              school.UpdatedAt,
	}

	query, args, err := a.db.Update(schoolsTable).
		Set(record).
		Where(goqu.Ex{"id": school.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update school", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("school with id %s not found", school.ID))
	}
	return nil
}

// Delete deletes a school (soft delete)
func (a *SchoolAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Update(schoolsTable).
		Set(goqu.Record{"is_active": false, "updated_at": time.Now()}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete school", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("school with id %s not found", id))
	}
	return nil
}

// List retrieves schools matching the declarative query
func (a *SchoolAdapter) List(ctx context.Context, q repositories.SchoolQuery) ([]*entities.School, error) {
	ds := a.db.From(schoolsTable).
		Select(schoolColumns...).
		Where(schoolPredicates(q)...).
		Order(schoolOrder(q.SortBy)...).
		Limit(uint(schoolLimit(q.Limit)))

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.querySchools(ctx, query, args)
}

// ListAll retrieves every active school without the List result cap. Used by
// the indexer backfill, which must cover the whole directory.
func (a *SchoolAdapter) ListAll(ctx context.Context) ([]*entities.School, error) {
	query, args, err := a.db.From(schoolsTable).
		Select(schoolColumns...).
		Where(goqu.C("is_active").IsTrue()).
		Order(goqu.C("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.querySchools(ctx, query, args)
}

// schoolPredicates translates a SchoolQuery into the conjunction of goqu
// expressions described by the query contract. An unfiltered query yields
// only the is_active guard.
func schoolPredicates(q repositories.SchoolQuery) []exp.Expression {
	predicates := []exp.Expression{goqu.C("is_active").IsTrue()}

	if text := strings.TrimSpace(q.Text); text != "" {
		pattern := "%" + text + "%"
		predicates = append(predicates, goqu.Or(
			goqu.C("name").ILike(pattern),
			goqu.C("city").ILike(pattern),
			goqu.C("street").ILike(pattern),
		))
	}
	if len(q.Types) > 0 {
		predicates = append(predicates, goqu.C("school_type").In(q.Types))
	}
	if q.GradeLevel != "" {
		predicates = append(predicates, goqu.C("grade_levels").ILike("%"+q.GradeLevel+"%"))
	}
	if q.MinRating > 0 {
		predicates = append(predicates, goqu.C("overall_rating").Gte(q.MinRating))
	}

	return predicates
}

// schoolOrder maps a sort option to an ordering, falling back to overall
// rating descending for anything unrecognized. Name is the stable
// tie-breaker on the rating and review orderings.
func schoolOrder(sortBy repositories.SortOption) []exp.OrderedExpression {
	switch sortBy {
	case repositories.SortByName:
		return []exp.OrderedExpression{goqu.C("name").Asc()}
	case repositories.SortByReviews:
		return []exp.OrderedExpression{goqu.C("total_reviews").Desc(), goqu.C("name").Asc()}
	default:
		return []exp.OrderedExpression{goqu.C("overall_rating").Desc(), goqu.C("name").Asc()}
	}
}

// schoolLimit clamps the requested limit into (0, DefaultSearchLimit].
func schoolLimit(limit int) int {
	if limit <= 0 || limit > repositories.DefaultSearchLimit {
		return repositories.DefaultSearchLimit
	}
	return limit
}

func (a *SchoolAdapter) querySchools(ctx context.Context, query string, args []interface{}) ([]*entities.School, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query schools", err)
	}
	defer rows.Close()

	schools := []*entities.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			// Log-and-skip: one malformed row must not sink the page.
			log.Warn().Err(err).Msg("skipping malformed school row")
			continue
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating schools", err)
	}
	return schools, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSchool maps one raw record into the School shape. Every nullable
// column carries a default: ratings map null to 0, text columns to "".
func scanSchool(row rowScanner) (*entities.School, error) {
	var (
		school                             entities.School
		phone, website, description, image sql.NullString
		overall, academics, facilities     sql.NullFloat64
		teachers, safety, extracurriculars sql.NullFloat64
	)

	err := row.Scan(
		&school.ID,
		&school.Name,
		&school.Address.Street,
		&school.Address.City,
		&school.Address.State,
		&school.Address.ZipCode,
		&phone,
		&website,
		&description,
		&image,
		&school.SchoolType,
		&school.GradeLevels,
		&overall,
		&academics,
		&facilities,
		&teachers,
		&safety,
		&extracurriculars,
		&school.TotalReviews,
		&school.IsActive,
		&school.CreatedAt,
		&school.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	school.Phone = phone.String
	school.Website = website.String
	school.Description = description.String
	school.ImageURL = image.String
	school.Ratings = entities.Ratings{
		Overall:          overall.Float64,
		Academics:        academics.Float64,
		Facilities:       facilities.Float64,
		Teachers:         teachers.Float64,
		Safety:           safety.Float64,
		Extracurriculars: extracurriculars.Float64,
	}

	return &school, nil
}
