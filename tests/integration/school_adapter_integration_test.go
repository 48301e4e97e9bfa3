//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/database"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

func TestSchoolAdapterRoundTrip(t *testing.T) {
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("Skipping integration test: TEST_DB_HOST not set")
	}

	client := newTestPostgresClient(t)
	defer client.Close()
	runMigrations(t, client, "../../migrations/001_initial_schema.sql")

	adapter := database.NewSchoolAdapter(client)
	ctx := context.Background()
	now := time.Now()

	school := &entities.School{
		ID:   uuid.New().String(),
		Name: "Integration Test Elementary",
		Address: entities.Address{
			Street: "1 Test Lane", City: "Testville", State: "IL", ZipCode: "60000",
		},
		SchoolType:  "public",
		GradeLevels: "K-5",
		Ratings:     entities.Ratings{Overall: 4.2, Academics: 4.0},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	require.NoError(t, adapter.Create(ctx, school))
	defer adapter.Delete(ctx, school.ID)

	got, err := adapter.GetByID(ctx, school.ID)
	require.NoError(t, err)
	assert.Equal(t, school.Name, got.Name)
	assert.Equal(t, "Testville", got.Address.City)
	assert.InDelta(t, 4.2, got.Ratings.Overall, 0.001)

	// Text predicate matches the city as a substring.
	results, err := adapter.List(ctx, repositories.SchoolQuery{Text: "estvil"})
	require.NoError(t, err)
	found := false
	for _, s := range results {
		if s.ID == school.ID {
			found = true
		}
	}
	assert.True(t, found, "expected the created school in the filtered list")

	school.Name = "Integration Test Elementary Renamed"
	require.NoError(t, adapter.Update(ctx, school))
	got, err = adapter.GetByID(ctx, school.ID)
	require.NoError(t, err)
	assert.Equal(t, "Integration Test Elementary Renamed", got.Name)

	// Soft delete hides the school from reads.
	require.NoError(t, adapter.Delete(ctx, school.ID))
	_, err = adapter.GetByID(ctx, school.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReviewAdapterListBySchool(t *testing.T) {
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("Skipping integration test: TEST_DB_HOST not set")
	}

	client := newTestPostgresClient(t)
	defer client.Close()
	runMigrations(t, client, "../../migrations/001_initial_schema.sql")

	schools := database.NewSchoolAdapter(client)
	reviews := database.NewReviewAdapter(client)
	ctx := context.Background()
	now := time.Now()

	school := &entities.School{
		ID:         uuid.New().String(),
		Name:       "Review Host School",
		SchoolType: "public",
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, schools.Create(ctx, school))
	defer schools.Delete(ctx, school.ID)

	older := &entities.Review{
		ID:        uuid.New().String(),
		SchoolID:  school.ID,
		UserID:    uuid.New().String(),
		Title:     "Older review",
		Ratings:   entities.Ratings{Overall: 3, Academics: 3, Facilities: 3, Teachers: 3, Safety: 3, Extracurriculars: 3},
		CreatedAt: now.Add(-time.Hour),
	}
	newer := &entities.Review{
		ID:             uuid.New().String(),
		SchoolID:       school.ID,
		UserID:         uuid.New().String(),
		Title:          "Newer review",
		WouldRecommend: true,
		Ratings:        entities.Ratings{Overall: 5, Academics: 5, Facilities: 5, Teachers: 5, Safety: 5, Extracurriculars: 5},
		CreatedAt:      now,
	}
	require.NoError(t, reviews.Create(ctx, older))
	require.NoError(t, reviews.Create(ctx, newer))

	got, err := reviews.ListBySchool(ctx, school.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer review", got[0].Title)
	assert.True(t, got[0].WouldRecommend)
	assert.Equal(t, "Older review", got[1].Title)

	// Offset pages past the newest review.
	paged, err := reviews.ListBySchool(ctx, school.ID, 10, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Older review", paged[0].Title)
}
