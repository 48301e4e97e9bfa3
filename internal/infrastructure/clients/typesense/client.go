package typesense

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/config"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/retry"
)

// SchoolsCollection is the Typesense collection holding the directory.
const SchoolsCollection = "schools"

// Client represents a Typesense client
type Client struct {
	client *typesense.Client
}

// NewClient creates a new Typesense client with exponential backoff retry
func NewClient(cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	err := retry.DoWithLog(
		context.Background(),
		retry.DefaultConfig(),
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := client.Health(ctx, 2*time.Second)
			return err
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Printf("Typesense connection attempt %d failed: %v. Retrying in %v...", attempt, err, nextDelay)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	return &Client{client: client}, nil
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}

// InitSchema ensures the schools collection exists. The text fields that
// participate in the substring disjunction (name, city, street) are
// infix-enabled so "contains" semantics match the database adapter's ILIKE.
func (c *Client) InitSchema(ctx context.Context) error {
	collections, err := c.client.Collections().Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve collections: %w", err)
	}

	for _, col := range collections {
		if col.Name == SchoolsCollection {
			return nil
		}
	}

	if _, err := c.client.Collections().Create(ctx, schoolsSchema()); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("Created Typesense collection %q", SchoolsCollection)
	return nil
}

// schoolsSchema builds the schools collection schema. name carries Sort
// because Typesense only accepts sortable string fields in sort_by.
func schoolsSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: SchoolsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string", Infix: pointer.True(), Sort: pointer.True()},
			{Name: "city", Type: "string", Infix: pointer.True()},
			{Name: "street", Type: "string", Infix: pointer.True()},
			{Name: "state", Type: "string", Facet: pointer.True()},
			{Name: "school_type", Type: "string", Facet: pointer.True()},
			{Name: "grade_levels", Type: "string", Infix: pointer.True()},
			{Name: "overall_rating", Type: "float", Facet: pointer.True()},
			{Name: "academics_rating", Type: "float", Optional: pointer.True()},
			{Name: "facilities_rating", Type: "float", Optional: pointer.True()},
			{Name: "teachers_rating", Type: "float", Optional: pointer.True()},
			{Name: "safety_rating", Type: "float", Optional: pointer.True()},
			{Name: "extracurriculars_rating", Type: "float", Optional: pointer.True()},
			{Name: "total_reviews", Type: "int32"},
			{Name: "is_active", Type: "bool"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("overall_rating"),
	}
}
