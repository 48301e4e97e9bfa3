//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/search"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
)

func TestTypesenseAdapterSearch(t *testing.T) {
	if os.Getenv("TEST_TYPESENSE_URL") == "" {
		t.Skip("Skipping integration test: TEST_TYPESENSE_URL not set")
	}

	client := newTestTypesenseClient(t)
	ctx := context.Background()
	require.NoError(t, client.InitSchema(ctx))

	adapter := search.NewTypesenseAdapter(client)

	school := &entities.School{
		ID:   "test-school-ts-1",
		Name: "Typesense Hillside Academy",
		Address: entities.Address{
			Street: "9 Hillcrest Road", City: "Granite Falls", State: "WA", ZipCode: "98252",
		},
		SchoolType:  "private",
		GradeLevels: "K-8",
		Ratings:     entities.Ratings{Overall: 4.9},
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	require.NoError(t, adapter.Index(ctx, school))
	defer adapter.Delete(ctx, school.ID)

	// Allow Typesense to commit the document.
	time.Sleep(1 * time.Second)

	// Substring of the name must match, mirroring the database ILIKE.
	results, err := adapter.Search(ctx, repositories.SchoolQuery{Text: "illside", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, school.ID, results[0].ID)
	assert.Equal(t, school.Name, results[0].Name)

	// The type filter excludes it.
	results, err = adapter.Search(ctx, repositories.SchoolQuery{
		Text:  "illside",
		Types: []string{"public"},
		Limit: 10,
	})
	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, school.ID, r.ID)
	}

	// Deleting removes it from the index.
	require.NoError(t, adapter.Delete(ctx, school.ID))
	time.Sleep(500 * time.Millisecond)
	results, err = adapter.Search(ctx, repositories.SchoolQuery{Text: "Hillside Academy", Limit: 10})
	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, school.ID, r.ID)
	}
}
