package evaluation

import "time"

// Intent represents the kind of lookup a search query expresses.
type Intent string

const (
	IntentName     Intent = "name"     // e.g., "lincoln elementary"
	IntentLocation Intent = "location" // e.g., "springfield", "oakwood avenue"
	IntentType     Intent = "type"     // e.g., "charter", "magnet school"
	IntentGrade    Intent = "grade"    // e.g., "middle school", "K-5"
)

// ValidIntents returns all valid intent values.
func ValidIntents() []Intent {
	return []Intent{IntentName, IntentLocation, IntentType, IntentGrade}
}

// IsValid checks if the intent value is one of the defined constants.
func (i Intent) IsValid() bool {
	switch i {
	case IntentName, IntentLocation, IntentType, IntentGrade:
		return true
	}
	return false
}

// GoldenQuery represents a labeled test query with expected outcomes.
// ExpectedIDs name the schools that should surface for the query against the
// seeded directory; ExpectedTypes is a coarser check when exact ids are not
// stable across environments.
type GoldenQuery struct {
	ID            string   `json:"id"`
	Query         string   `json:"query"`
	Intent        Intent   `json:"intent"`
	ExpectedIDs   []string `json:"expected_ids"`
	ExpectedTypes []string `json:"expected_school_types"`
	Difficulty    string   `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the evaluation outcome for a single query.
type EvalResult struct {
	QueryID        string
	Query          string
	Intent         Intent
	RecallAt10     float64
	MRRAt10        float64
	ResultCount    int
	RetrievedTypes []string
	Latency        time.Duration
}

// EvalSummary holds aggregate metrics across all golden queries.
type EvalSummary struct {
	TotalQueries    int
	AvgRecallAt10   float64
	AvgMRRAt10      float64
	AvgLatency      time.Duration
	QueriesWithHits int // queries that returned at least 1 result
	ByIntent        map[Intent]*IntentSummary
}

// IntentSummary holds metrics grouped by intent type.
type IntentSummary struct {
	Count         int
	AvgRecallAt10 float64
	AvgMRRAt10    float64
}
