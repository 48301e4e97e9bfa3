package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func school(id string, ratings Ratings) *School {
	return &School{ID: id, Name: "School " + id, Ratings: ratings}
}

func TestComparisonSet_AddCapsAtFour(t *testing.T) {
	set := NewComparisonSet()

	for _, id := range []string{"a", "b", "c", "d"} {
		assert.True(t, set.Add(school(id, Ratings{})))
	}
	assert.False(t, set.Add(school("e", Ratings{})))
	assert.Equal(t, 4, set.Len())

	// Insertion order is preserved.
	ids := make([]string, 0, set.Len())
	for _, s := range set.Schools() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestComparisonSet_AddIsIdempotentOnDuplicateID(t *testing.T) {
	set := NewComparisonSet()

	assert.True(t, set.Add(school("a", Ratings{Overall: 4})))
	assert.False(t, set.Add(school("a", Ratings{Overall: 1})))
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 4.0, set.HighestInCategory(DimensionOverall))
}

func TestComparisonSet_Remove(t *testing.T) {
	set := NewComparisonSet()
	set.Add(school("a", Ratings{}))
	set.Add(school("b", Ratings{}))

	assert.True(t, set.Remove("a"))
	assert.False(t, set.Remove("a"))
	assert.Equal(t, 1, set.Len())
	assert.False(t, set.Contains("a"))
	assert.True(t, set.Contains("b"))
}

func TestComparisonSet_HighestInCategory(t *testing.T) {
	set := NewComparisonSet()
	assert.Equal(t, 0.0, set.HighestInCategory(DimensionAcademics))

	set.Add(school("a", Ratings{Academics: 4.0}))
	set.Add(school("b", Ratings{Academics: 4.5}))
	set.Add(school("c", Ratings{Academics: 4.5}))

	assert.Equal(t, 4.5, set.HighestInCategory(DimensionAcademics))
}

func TestComparisonSet_HighlightsAllTies(t *testing.T) {
	set := NewComparisonSet()
	set.Add(school("a", Ratings{Academics: 4.0}))
	set.Add(school("b", Ratings{Academics: 4.5}))
	set.Add(school("c", Ratings{Academics: 4.5}))

	assert.Equal(t, []string{"b", "c"}, set.HighlightedIDs(DimensionAcademics))
	assert.Nil(t, NewComparisonSet().HighlightedIDs(DimensionAcademics))
}

func TestRatings_Get(t *testing.T) {
	r := Ratings{
		Overall:          4.2,
		Academics:        4.0,
		Facilities:       3.5,
		Teachers:         4.8,
		Safety:           4.1,
		Extracurriculars: 3.9,
	}

	assert.Equal(t, 4.2, r.Get(DimensionOverall))
	assert.Equal(t, 4.8, r.Get(DimensionTeachers))
	assert.Equal(t, 0.0, r.Get(Dimension("bogus")))
}
