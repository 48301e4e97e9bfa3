package typesense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typesense/typesense-go/v2/typesense/api"
)

func schemaField(t *testing.T, schema *api.CollectionSchema, name string) api.Field {
	t.Helper()
	for _, f := range schema.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not in schema", name)
	return api.Field{}
}

func TestSchoolsSchemaSortableName(t *testing.T) {
	schema := schoolsSchema()

	name := schemaField(t, schema, "name")
	require.NotNil(t, name.Sort)
	assert.True(t, *name.Sort)
	require.NotNil(t, name.Infix)
	assert.True(t, *name.Infix)
}

func TestSchoolsSchemaCoversSortFields(t *testing.T) {
	schema := schoolsSchema()

	// Every sort_by target the search adapter emits must exist.
	for _, field := range []string{"name", "overall_rating", "total_reviews"} {
		schemaField(t, schema, field)
	}
	require.NotNil(t, schema.DefaultSortingField)
	assert.Equal(t, "overall_rating", *schema.DefaultSortingField)
}
