package evaluation

import (
	"context"
	"time"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/repositories"
)

// SearchResultProvider is the slice of the school service the runner needs.
type SearchResultProvider interface {
	Search(ctx context.Context, query repositories.SchoolQuery) ([]*entities.School, error)
}

// Runner runs evaluation across a set of golden queries.
type Runner struct {
	searchService SearchResultProvider
}

func NewRunner(svc SearchResultProvider) *Runner {
	return &Runner{searchService: svc}
}

// Run executes every golden query against the search service and aggregates
// recall and MRR. Relevance is judged on school ids when the query carries
// them, otherwise on school types.
func (r *Runner) Run(ctx context.Context, queries []GoldenQuery) (*EvalSummary, error) {
	summary := &EvalSummary{
		TotalQueries: len(queries),
		ByIntent:     make(map[Intent]*IntentSummary),
	}

	for _, gq := range queries {
		start := time.Now()
		query := repositories.SchoolQuery{
			Text:  gq.Query,
			Limit: 10,
		}

		schools, err := r.searchService.Search(ctx, query)
		duration := time.Since(start)

		if err != nil {
			continue
		}

		resIDs := make([]string, len(schools))
		resTypes := make([]string, len(schools))
		for i, school := range schools {
			resIDs[i] = school.ID
			resTypes[i] = school.SchoolType
		}

		relevant, retrieved := gq.ExpectedIDs, resIDs
		if len(relevant) == 0 {
			relevant, retrieved = gq.ExpectedTypes, resTypes
		}

		result := EvalResult{
			QueryID:        gq.ID,
			Query:          gq.Query,
			Intent:         gq.Intent,
			RecallAt10:     RecallAtK(relevant, retrieved, 10),
			MRRAt10:        MRRAtK(relevant, retrieved, 10),
			ResultCount:    len(schools),
			RetrievedTypes: resTypes,
			Latency:        duration,
		}

		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary)
	return summary, nil
}

func (r *Runner) updateSummary(s *EvalSummary, res EvalResult) {
	s.AvgRecallAt10 += res.RecallAt10
	s.AvgMRRAt10 += res.MRRAt10
	s.AvgLatency += res.Latency
	if res.ResultCount > 0 {
		s.QueriesWithHits++
	}

	if _, ok := s.ByIntent[res.Intent]; !ok {
		s.ByIntent[res.Intent] = &IntentSummary{}
	}
	is := s.ByIntent[res.Intent]
	is.Count++
	is.AvgRecallAt10 += res.RecallAt10
	is.AvgMRRAt10 += res.MRRAt10
}

func (r *Runner) finalizeSummary(s *EvalSummary) {
	if s.TotalQueries > 0 {
		n := float64(s.TotalQueries)
		s.AvgRecallAt10 /= n
		s.AvgMRRAt10 /= n
		s.AvgLatency /= time.Duration(s.TotalQueries)
	}

	for _, is := range s.ByIntent {
		if is.Count > 0 {
			n := float64(is.Count)
			is.AvgRecallAt10 /= n
			is.AvgMRRAt10 /= n
		}
	}
}
