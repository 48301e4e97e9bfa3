package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

func newMockSchoolAdapter(t *testing.T) (repositories.SchoolRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSchoolAdapter(postgres.NewClientFromDB(db)), mock
}

func schoolRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "street", "city", "state", "zip_code",
		"phone", "website", "description", "image_url",
		"school_type", "grade_levels",
		"overall_rating", "academics_rating", "facilities_rating",
		"teachers_rating", "safety_rating", "extracurriculars_rating",
		"total_reviews", "is_active", "created_at", "updated_at",
	})
}

func TestSchoolAdapterGetByID(t *testing.T) {
	adapter, mock := newMockSchoolAdapter(t)
	now := time.Now()

	rows := schoolRows().AddRow(
		"sch-1", "Lincoln High School", "1 Main St", "Springfield", "IL", "62701",
		"555-0100", "https://lincoln.example", "A school", "",
		"public", "9-12",
		4.5, 4.2, 3.9, 4.7, 4.1, 3.8,
		120, true, now, now,
	)
	mock.ExpectQuery(`SELECT .+ FROM "schools" WHERE .+"id" = 'sch-1'`).
		WillReturnRows(rows)

	school, err := adapter.GetByID(context.Background(), "sch-1")
	require.NoError(t, err)
	assert.Equal(t, "Lincoln High School", school.Name)
	assert.Equal(t, "Springfield", school.Address.City)
	assert.Equal(t, 4.5, school.Ratings.Overall)
	assert.Equal(t, 120, school.TotalReviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolAdapterGetByIDNullRatingsDefaultToZero(t *testing.T) {
	adapter, mock := newMockSchoolAdapter(t)
	now := time.Now()

	// A school with no reviews has NULL rating aggregates and NULL
	// optional text columns.
	rows := schoolRows().AddRow(
		"sch-2", "New Charter Academy", "2 Oak Ave", "Springfield", "IL", "62702",
		nil, nil, nil, nil,
		"charter", "K-8",
		nil, nil, nil, nil, nil, nil,
		0, true, now, now,
	)
	mock.ExpectQuery(`SELECT .+ FROM "schools" WHERE .+"id" = 'sch-2'`).
		WillReturnRows(rows)

	school, err := adapter.GetByID(context.Background(), "sch-2")
	require.NoError(t, err)
	assert.Zero(t, school.Ratings.Overall)
	assert.Zero(t, school.Ratings.Academics)
	assert.Zero(t, school.Ratings.Extracurriculars)
	assert.Empty(t, school.Phone)
	assert.Empty(t, school.Website)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolAdapterGetByIDNotFound(t *testing.T) {
	adapter, mock := newMockSchoolAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "schools" WHERE .+"id" = 'missing'`).
		WillReturnRows(schoolRows())

	_, err := adapter.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolAdapterListBuildsFilteredQuery(t *testing.T) {
	adapter, mock := newMockSchoolAdapter(t)
	now := time.Now()

	rows := schoolRows().AddRow(
		"sch-1", "Lincoln High School", "1 Main St", "Springfield", "IL", "62701",
		"", "", "", "",
		"public", "9-12",
		4.5, 4.2, 3.9, 4.7, 4.1, 3.8,
		120, true, now, now,
	)
	// Text matches name, city or street; type and rating narrow further.
	mock.ExpectQuery(`SELECT .+ FROM "schools" WHERE .+ILIKE.+ ORDER BY "name" ASC LIMIT`).
		WillReturnRows(rows)

	schools, err := adapter.List(context.Background(), repositories.SchoolQuery{
		Text:      "Lincoln",
		Types:     []string{"public"},
		MinRating: 4,
		SortBy:    repositories.SortByName,
		Limit:     20,
	})
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "sch-1", schools[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolAdapterListUnfilteredDefaultsToRatingOrder(t *testing.T) {
	adapter, mock := newMockSchoolAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "schools" WHERE \("is_active" IS TRUE\) ORDER BY "overall_rating" DESC, "name" ASC LIMIT 50`).
		WillReturnRows(schoolRows())

	schools, err := adapter.List(context.Background(), repositories.SchoolQuery{})
	require.NoError(t, err)
	assert.Empty(t, schools)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolLimitClamps(t *testing.T) {
	assert.Equal(t, repositories.DefaultSearchLimit, schoolLimit(0))
	assert.Equal(t, repositories.DefaultSearchLimit, schoolLimit(-3))
	assert.Equal(t, repositories.DefaultSearchLimit, schoolLimit(500))
	assert.Equal(t, 20, schoolLimit(20))
}
