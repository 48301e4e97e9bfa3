package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

const reviewsTable = "reviews"

var reviewColumns = []interface{}{
	"id", "school_id", "user_id", "title", "content",
	"overall_rating", "academics_rating", "facilities_rating",
	"teachers_rating", "safety_rating", "extracurriculars_rating",
	"pros", "cons", "would_recommend", "graduation_year",
	"relationship", "created_at",
}

// ReviewAdapter implements the ReviewRepository interface on PostgreSQL
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new review
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	record := goqu.Record{
		"id":                      review.ID,
		"school_id":               review.SchoolID,
		"user_id":                 review.UserID,
		"title":                   review.Title,
		"content":                 review.Content,
		"overall_rating":          review.Ratings.Overall,
		"academics_rating":        review.Ratings.Academics,
		"facilities_rating":       review.Ratings.Facilities,
		"teachers_rating":         review.Ratings.Teachers,
		"safety_rating":           review.Ratings.Safety,
		"extracurriculars_rating": review.Ratings.Extracurriculars,
		"pros":                    review.Pros,
		"cons":                    review.Cons,
		"would_recommend":         entities.RecommendToInt(review.WouldRecommend),
		"graduation_year":         review.GraduationYear,
		"relationship":            review.Relationship,
		"created_at":              review.CreatedAt,
	}

	query, args, err := a.db.Insert(reviewsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}
	return nil
}

// GetByID retrieves a review by ID
func (a *ReviewAdapter) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	query, args, err := a.db.From(reviewsTable).
		Select(reviewColumns...).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	review, err := scanReview(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("review with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get review", err)
	}
	return review, nil
}

// ListBySchool retrieves the most recent reviews for a school
func (a *ReviewAdapter) ListBySchool(ctx context.Context, schoolID string, limit, offset int) ([]*entities.Review, error) {
	if limit <= 0 || limit > repositories.ReviewListLimit {
		limit = repositories.ReviewListLimit
	}
	if offset < 0 {
		offset = 0
	}

	ds := a.db.From(reviewsTable).
		Select(reviewColumns...).
		Where(goqu.Ex{"school_id": schoolID}).
		Order(goqu.C("created_at").Desc()).
		Limit(uint(limit))
	if offset > 0 {
		ds = ds.Offset(uint(offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query reviews", err)
	}
	defer rows.Close()

	reviews := []*entities.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating reviews", err)
	}
	return reviews, nil
}

// scanReview maps one raw record into the Review shape. The recommendation
// flag is stored as an integer and coerced to a bool, and a null graduation
// year stays nil rather than defaulting to zero.
func scanReview(row rowScanner) (*entities.Review, error) {
	var (
		review         entities.Review
		title, content sql.NullString
		pros, cons     sql.NullString
		relationship   sql.NullString
		recommend      sql.NullInt64
		graduationYear sql.NullInt64
		overall        sql.NullFloat64
		academics      sql.NullFloat64
		facilities     sql.NullFloat64
		teachers       sql.NullFloat64
		safety         sql.NullFloat64
		extras         sql.NullFloat64
	)

	err := row.Scan(
		&review.ID,
		&review.SchoolID,
		&review.UserID,
		&title,
		&content,
		&overall,
		&academics,
		&facilities,
		&teachers,
		&safety,
		&extras,
		&pros,
		&cons,
		&recommend,
		&graduationYear,
		&relationship,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	review.Title = title.String
	review.Content = content.String
	review.Pros = pros.String
	review.Cons = cons.String
	review.Relationship = relationship.String
	review.WouldRecommend = entities.RecommendFromInt(recommend.Int64)
	if graduationYear.Valid {
		year := int(graduationYear.Int64)
		review.GraduationYear = &year
	}
	review.Ratings = entities.Ratings{
		Overall:          overall.Float64,
		Academics:        academics.Float64,
		Facilities:       facilities.Float64,
		Teachers:         teachers.Float64,
		Safety:           safety.Float64,
		Extracurriculars: extras.Float64,
	}

	return &review, nil
}
