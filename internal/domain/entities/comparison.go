package entities

// MaxCompare is the hard cap on the comparison set size.
const MaxCompare = 4

// ComparisonSet is the bounded, ordered collection of schools selected for
// side-by-side comparison. Insertion order is preserved and membership is
// unique by school id.
type ComparisonSet struct {
	schools []*School
}

// NewComparisonSet creates an empty comparison set.
func NewComparisonSet() *ComparisonSet {
	return &ComparisonSet{}
}

// Add appends a school to the set. It is a no-op returning false when the
// set is full, the school is nil, or the id is already present.
func (s *ComparisonSet) Add(school *School) bool {
	if school == nil || len(s.schools) >= MaxCompare || s.Contains(school.ID) {
		return false
	}
	s.schools = append(s.schools, school)
	return true
}

// Remove drops the school with the given id, preserving the order of the
// rest. It returns false when the id is not in the set.
func (s *ComparisonSet) Remove(id string) bool {
	for i, school := range s.schools {
		if school.ID == id {
			s.schools = append(s.schools[:i], s.schools[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the set holds the given id.
func (s *ComparisonSet) Contains(id string) bool {
	for _, school := range s.schools {
		if school.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of schools in the set.
func (s *ComparisonSet) Len() int {
	return len(s.schools)
}

// Schools returns the members in insertion order.
func (s *ComparisonSet) Schools() []*School {
	out := make([]*School, len(s.schools))
	copy(out, s.schools)
	return out
}

// HighestInCategory returns the maximum value of the named rating dimension
// across the set, or 0 when the set is empty.
func (s *ComparisonSet) HighestInCategory(dim Dimension) float64 {
	max := 0.0
	for _, school := range s.schools {
		if v := school.Ratings.Get(dim); v > max {
			max = v
		}
	}
	return max
}

// HighlightedIDs returns the ids whose dimension value equals the maximum.
// Ties are all highlighted; an empty set highlights nothing.
func (s *ComparisonSet) HighlightedIDs(dim Dimension) []string {
	if len(s.schools) == 0 {
		return nil
	}
	max := s.HighestInCategory(dim)
	ids := make([]string, 0, len(s.schools))
	for _, school := range s.schools {
		if school.Ratings.Get(dim) == max {
			ids = append(ids, school.ID)
		}
	}
	return ids
}
