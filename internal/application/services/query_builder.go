package services

import (
	"strings"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/utils"
)

var termNormalizer = utils.NewSearchTermNormalizer()

// SearchRequest carries the raw, untrusted search inputs as they arrive from
// the client: free text, the filter panel state, and the sort selection.
type SearchRequest struct {
	Text        string
	SchoolTypes []string
	GradeLevel  string
	MinRating   float64
	SortBy      string
	Limit       int
}

// BuildSchoolQuery composes a SearchRequest into the declarative query the
// record store and search engine both understand. The composition is pure:
// the same request always yields the same query.
//
// Normalization rules:
//   - text is whitespace-trimmed, known typos are corrected and K-12
//     shorthand is expanded ("hs" to "high school"); a blank term imposes no
//     text predicate
//   - school types are trimmed, lowercased, mapped through their aliases and
//     deduplicated, preserving first-occurrence order; unknown labels pass
//     through (the store simply matches nothing for them)
//   - minRating is clamped into [0, 5]
//   - an unrecognized sortBy falls back to rating-descending
//   - a non-positive or oversized limit becomes DefaultSearchLimit
func BuildSchoolQuery(req SearchRequest) repositories.SchoolQuery {
	return repositories.SchoolQuery{
		Text:       termNormalizer.Normalize(req.Text),
		Types:      normalizeTypes(req.SchoolTypes),
		GradeLevel: strings.TrimSpace(req.GradeLevel),
		MinRating:  clampRating(req.MinRating),
		SortBy:     normalizeSort(req.SortBy),
		Limit:      normalizeLimit(req.Limit),
	}
}

func normalizeTypes(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(raw))
	types := make([]string, 0, len(raw))
	for _, t := range raw {
		t = termNormalizer.CanonicalSchoolType(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	if len(types) == 0 {
		return nil
	}
	return types
}

func clampRating(r float64) float64 {
	if r < 0 || r != r { // negative or NaN
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func normalizeSort(raw string) repositories.SortOption {
	switch repositories.SortOption(strings.ToLower(strings.TrimSpace(raw))) {
	case repositories.SortByReviews:
		return repositories.SortByReviews
	case repositories.SortByName:
		return repositories.SortByName
	default:
		return repositories.SortByRating
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > repositories.DefaultSearchLimit {
		return repositories.DefaultSearchLimit
	}
	return limit
}
